// Package testutil provides shared utilities for testing.
package testutil

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/palemoky/prosody-scorer/internal/store"
)

// SetupTestDB creates an in-memory SQLite score cache with migrations
// applied. Returns the DB wrapper and Repository. Automatically cleans up
// on test completion.
func SetupTestDB(t *testing.T) (*store.DB, *store.Repository) {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "Failed to open in-memory database")

	db := store.NewDBFromGorm(gormDB)
	require.NoError(t, db.Migrate(), "Failed to run migrations")

	repo := store.NewRepository(db)

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db, repo
}

// SetupTestGin creates a test Gin engine with test mode enabled.
func SetupTestGin() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// GormDB returns the underlying GORM database from a store.DB wrapper.
// This is useful for direct database manipulation in tests.
func GormDB(db *store.DB) *gorm.DB {
	return db.DB
}
