// Package moods persists mood entries in the local database.
package moods

import (
	"context"
	"time"

	"github.com/dmitrijs2005/wellsync/internal/client/models"
)

type Repository interface {
	Insert(ctx context.Context, m *models.Mood) error
	Get(ctx context.Context, userID, localID string) (*models.Mood, error)
	UpdatePayload(ctx context.Context, m *models.Mood) error
	ListRecent(ctx context.Context, userID string, limit int) ([]models.Mood, error)
	ListBetween(ctx context.Context, userID string, from, to time.Time) ([]models.Mood, error)
	Search(ctx context.Context, userID, text string) ([]models.Mood, error)
	Stats(ctx context.Context, userID string, from, to time.Time) (models.MoodStats, error)
}
