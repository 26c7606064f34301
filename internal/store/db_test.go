package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAndMigrate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	db, err := Open(path, 1, 1)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Migrate())
	assert.True(t, db.Migrator().HasTable(&ScoreRecord{}))
}

func TestOpenPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	db, err := Open(path, 1, 1)
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	require.NoError(t, NewRepository(db).Upsert(&ScoreRecord{ID: "persisted", FormScore: 75}))
	require.NoError(t, db.Close())

	reopened, err := Open(path, 1, 1)
	require.NoError(t, err)
	defer reopened.Close()
	require.NoError(t, reopened.Migrate())

	got, err := NewRepository(reopened).Get("persisted")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 75.0, got.FormScore)
}
