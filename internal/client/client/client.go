package client

import (
	"context"
	"time"

	"github.com/dmitrijs2005/wellsync/internal/client/models"
)

// Tokens is an access/refresh token pair issued to UserID.
type Tokens struct {
	UserID       string
	AccessToken  string
	RefreshToken string
}

type Client interface {
	Close() error
	Ping(ctx context.Context) error

	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) (Tokens, error)
	SetTokens(t Tokens)

	CreateMood(ctx context.Context, m models.Mood) (string, error)
	CreateProgress(ctx context.Context, p models.ExerciseProgress) (string, error)
	CreateSession(ctx context.Context, s models.ChatSession) (string, error)
	CreateMessage(ctx context.Context, sessionServerID string, m models.ChatMessage) (string, error)

	GetMoods(ctx context.Context, since *time.Time) ([]models.Mood, error)
	GetExercisesWithProgress(ctx context.Context) ([]models.Exercise, []models.ExerciseProgress, error)
	GetSessions(ctx context.Context, chatType models.ChatType) ([]models.ChatSession, error)
	GetMessages(ctx context.Context, sessionServerID string) ([]models.ChatMessage, error)
}
