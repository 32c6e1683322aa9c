// Package users stores WellSync accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/wellsync/internal/server/models"
)

type Repository interface {
	// Create inserts user and returns it with ID set. A taken username
	// yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
}
