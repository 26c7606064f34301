// Package store persists scored poems to a SQLite-backed cache. The
// cmd/prosody commands only write to it; they re-score every record on
// each run and do not read earlier results back.
package store

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DB wraps the GORM database handle.
type DB struct {
	*gorm.DB
}

// Open opens (creating if necessary) the SQLite score cache at path.
func Open(path string, maxOpenConns, maxIdleConns int) (*DB, error) {
	gormDB, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open score cache: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return &DB{gormDB}, nil
}

// NewDBFromGorm wraps an already-open *gorm.DB, used by testutil to hand
// tests an in-memory database.
func NewDBFromGorm(gormDB *gorm.DB) *DB {
	return &DB{gormDB}
}

// Migrate runs GORM's auto-migration for the score cache schema.
func (db *DB) Migrate() error {
	return db.AutoMigrate(&ScoreRecord{})
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
