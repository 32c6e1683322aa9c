package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/wellsync/internal/common"
)

// Exercise is a catalog entry pulled from the server. The catalog is never
// written locally, so it carries no SyncMeta.
type Exercise struct {
	ServerID        string
	Title           string
	Category        string
	DurationMinutes int
	Description     string
	UpdatedAt       time.Time
}

// ExerciseProgress records one completion of a catalog exercise.
type ExerciseProgress struct {
	SyncMeta
	// ExerciseID is the catalog exercise's server id.
	ExerciseID      string    `json:"exerciseId"`
	DurationSeconds int       `json:"durationSeconds"`
	Rating          int       `json:"rating,omitempty"`
	Note            string    `json:"note,omitempty"`
	CompletedAt     time.Time `json:"completedAt"`
}

const MaxRating = 5

func (p *ExerciseProgress) Validate() error {
	if strings.TrimSpace(p.ExerciseID) == "" {
		return fmt.Errorf("%w: exercise id is required", common.ErrorValidation)
	}
	if p.DurationSeconds < 0 {
		return fmt.Errorf("%w: duration cannot be negative", common.ErrorValidation)
	}
	if p.Rating < 0 || p.Rating > MaxRating {
		return fmt.Errorf("%w: rating must be between 0 and %d", common.ErrorValidation, MaxRating)
	}
	if p.CompletedAt.IsZero() {
		return fmt.Errorf("%w: completion time is required", common.ErrorValidation)
	}
	return nil
}

// ExerciseWithProgress joins a catalog entry with the user's completions.
type ExerciseWithProgress struct {
	Exercise
	Completions     int
	LastCompletedAt *time.Time
}
