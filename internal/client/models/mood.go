package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/wellsync/internal/common"
)

const (
	MinIntensity = 1
	MaxIntensity = 10
)

// Mood is a single mood check-in.
type Mood struct {
	SyncMeta
	Mood       string    `json:"mood"`
	Intensity  int       `json:"intensity"`
	Note       string    `json:"note,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	RecordedAt time.Time `json:"recordedAt"`
}

func (m *Mood) Validate() error {
	if strings.TrimSpace(m.Mood) == "" {
		return fmt.Errorf("%w: mood label is required", common.ErrorValidation)
	}
	if m.Intensity < MinIntensity || m.Intensity > MaxIntensity {
		return fmt.Errorf("%w: intensity must be between %d and %d", common.ErrorValidation, MinIntensity, MaxIntensity)
	}
	if m.RecordedAt.IsZero() {
		return fmt.Errorf("%w: recorded time is required", common.ErrorValidation)
	}
	return nil
}

// MoodStats summarises mood entries over a time window.
type MoodStats struct {
	Count            int
	AverageIntensity float64
	ByMood           map[string]int
}
