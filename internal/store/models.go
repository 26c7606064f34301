package store

import (
	"time"

	"gorm.io/datatypes"
)

// ScoreRecord is one cached scoring result: the input that was scored, the
// three C10 scores under the record's chosen rhyme book, the same rhyme
// score recomputed under the other two books, and the detailed report text
// (if requested) as an opaque JSON payload.
type ScoreRecord struct {
	ID                 string `gorm:"primaryKey"`
	Title              string
	Content            string `gorm:"type:text"`
	Instruct           string
	RhymeSystem        string
	FormScore          float64
	ToneScore          float64
	RhymeScore         float64
	RhymeScorePingshui float64
	RhymeScoreXin      float64
	RhymeScoreTong     float64
	Report             datatypes.JSON `gorm:"type:text"`
	Passthrough        datatypes.JSON `gorm:"type:text"` // opaque --keep-fields payload, see internal/dataset
	CreatedAt          time.Time
}

// MeanScore holds per-axis mean scores for one declared form. Nothing in
// this module fills it in; the cmd/prosody summary table prints
// batch-wide means instead.
type MeanScore struct {
	Form      string
	Count     int
	MeanForm  float64
	MeanTone  float64
	MeanRhyme float64
	MeanTotal float64
}
