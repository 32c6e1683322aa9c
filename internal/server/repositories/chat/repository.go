// Package chat stores chat sessions and their messages.
package chat

import (
	"context"

	"github.com/dmitrijs2005/wellsync/internal/server/models"
)

type Repository interface {
	// CreateSession inserts s or resolves a replay of (s.UserID,
	// s.RequestID). On replay s is overwritten with the stored row.
	CreateSession(ctx context.Context, s *models.Session) (created bool, err error)

	// GetSession returns userID's session id or common.ErrorNotFound.
	GetSession(ctx context.Context, userID, id string) (*models.Session, error)

	// ListSessions returns userID's sessions of chatType, or of every type
	// when chatType is empty, most recently updated first.
	ListSessions(ctx context.Context, userID, chatType string) ([]models.Session, error)

	// RenameIfTitled sets the title of session id to title only while it
	// still equals current. It reports whether the row changed.
	RenameIfTitled(ctx context.Context, id, current, title string) (bool, error)

	CreateMessage(ctx context.Context, m *models.Message) (created bool, err error)

	// ListMessages returns the messages of sessionID in creation order.
	ListMessages(ctx context.Context, userID, sessionID string) ([]models.Message, error)
}
