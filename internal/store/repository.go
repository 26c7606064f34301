package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Repository handles score-cache persistence.
type Repository struct {
	db *DB
}

// NewRepository creates a new repository.
func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// Upsert saves or replaces a cached score record.
func (r *Repository) Upsert(rec *ScoreRecord) error {
	if err := r.db.Save(rec).Error; err != nil {
		return fmt.Errorf("failed to save score record %s: %w", rec.ID, err)
	}
	return nil
}

// Get fetches a cached score record by id, returning (nil, nil) if absent.
func (r *Repository) Get(id string) (*ScoreRecord, error) {
	var rec ScoreRecord
	err := r.db.First(&rec, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load score record %s: %w", id, err)
	}
	return &rec, nil
}

// List returns every cached record, ordered by total score (form+tone+rhyme)
// descending, the ranking `extract` uses before applying per-form caps.
func (r *Repository) List() ([]ScoreRecord, error) {
	var recs []ScoreRecord
	err := r.db.Order("(form_score + tone_score + rhyme_score) desc").Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list score records: %w", err)
	}
	return recs, nil
}

// Count returns how many records are cached.
func (r *Repository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&ScoreRecord{}).Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count score records: %w", err)
	}
	return n, nil
}
