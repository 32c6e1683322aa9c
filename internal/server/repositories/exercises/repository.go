// Package exercises reads the exercise catalog and stores per-user
// completion progress.
package exercises

import (
	"context"

	"github.com/dmitrijs2005/wellsync/internal/server/models"
)

type Repository interface {
	// List returns the whole catalog ordered by title.
	List(ctx context.Context) ([]models.Exercise, error)

	// CreateProgress inserts p, or resolves a replay of (p.UserID,
	// p.RequestID) to the stored row. An unknown exercise yields
	// common.ErrorValidation.
	CreateProgress(ctx context.Context, p *models.Progress) (created bool, err error)

	// ListProgress returns userID's progress, oldest completion first.
	ListProgress(ctx context.Context, userID string) ([]models.Progress, error)
}
