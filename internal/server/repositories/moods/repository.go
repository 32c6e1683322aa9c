// Package moods stores mood entries pushed by clients.
package moods

import (
	"context"
	"time"

	"github.com/dmitrijs2005/wellsync/internal/server/models"
)

type Repository interface {
	// Create inserts m, or returns the row already stored under
	// (m.UserID, m.RequestID). m.ID and m.UpdatedAt are set either way;
	// created reports whether a new row was written.
	Create(ctx context.Context, m *models.Mood) (created bool, err error)

	// ListSince returns userID's moods updated strictly after since,
	// oldest first. A zero since returns everything.
	ListSince(ctx context.Context, userID string, since time.Time) ([]models.Mood, error)
}
