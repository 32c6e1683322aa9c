package store

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/wellsync/internal/client/models"
	"github.com/dmitrijs2005/wellsync/internal/client/repositories/chat"
	"github.com/dmitrijs2005/wellsync/internal/client/repositories/exercises"
	"github.com/dmitrijs2005/wellsync/internal/client/repositories/moods"
	"github.com/dmitrijs2005/wellsync/internal/client/repositories/progress"
	"github.com/dmitrijs2005/wellsync/internal/common"
)

func readErr(op string, err error) error {
	if err == nil || errors.Is(err, common.ErrorNotFound) {
		return err
	}
	return common.NewStorageError(op, err)
}

func (s *Store) GetMood(ctx context.Context, localID string) (*models.Mood, error) {
	userID, err := s.UserID()
	if err != nil {
		return nil, err
	}
	m, err := moods.NewSQLiteRepository(s.db).Get(ctx, userID, localID)
	return m, readErr("get mood", err)
}

// LastMoods returns up to n entries, newest first.
func (s *Store) LastMoods(ctx context.Context, n int) ([]models.Mood, error) {
	userID, err := s.UserID()
	if err != nil {
		return nil, err
	}
	list, err := moods.NewSQLiteRepository(s.db).ListRecent(ctx, userID, n)
	return list, readErr("list moods", err)
}

// TodayMood returns the latest entry recorded on now's calendar day (in
// now's location), or nil.
func (s *Store) TodayMood(ctx context.Context, now time.Time) (*models.Mood, error) {
	userID, err := s.UserID()
	if err != nil {
		return nil, err
	}
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	list, err := moods.NewSQLiteRepository(s.db).ListBetween(ctx, userID, start, start.AddDate(0, 0, 1))
	if err != nil {
		return nil, readErr("today mood", err)
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[len(list)-1], nil
}

func (s *Store) SearchMoods(ctx context.Context, text string) ([]models.Mood, error) {
	userID, err := s.UserID()
	if err != nil {
		return nil, err
	}
	list, err := moods.NewSQLiteRepository(s.db).Search(ctx, userID, text)
	return list, readErr("search moods", err)
}

// MoodStats aggregates entries recorded in [from, to).
func (s *Store) MoodStats(ctx context.Context, from, to time.Time) (models.MoodStats, error) {
	userID, err := s.UserID()
	if err != nil {
		return models.MoodStats{}, err
	}
	st, err := moods.NewSQLiteRepository(s.db).Stats(ctx, userID, from, to)
	return st, readErr("mood stats", err)
}

// ExercisesWithProgress lists the catalog joined with the user's completions.
func (s *Store) ExercisesWithProgress(ctx context.Context) ([]models.ExerciseWithProgress, error) {
	userID, err := s.UserID()
	if err != nil {
		return nil, err
	}
	list, err := exercises.NewSQLiteRepository(s.db).ListWithProgress(ctx, userID)
	return list, readErr("list exercises", err)
}

func (s *Store) GetProgress(ctx context.Context, localID string) (*models.ExerciseProgress, error) {
	userID, err := s.UserID()
	if err != nil {
		return nil, err
	}
	p, err := progress.NewSQLiteRepository(s.db).Get(ctx, userID, localID)
	return p, readErr("get progress", err)
}

func (s *Store) ListProgress(ctx context.Context) ([]models.ExerciseProgress, error) {
	userID, err := s.UserID()
	if err != nil {
		return nil, err
	}
	list, err := progress.NewSQLiteRepository(s.db).List(ctx, userID)
	return list, readErr("list progress", err)
}

func (s *Store) ListSessions(ctx context.Context, chatType models.ChatType) ([]models.ChatSession, error) {
	userID, err := s.UserID()
	if err != nil {
		return nil, err
	}
	list, err := chat.NewSQLiteRepository(s.db).ListSessions(ctx, userID, chatType)
	return list, readErr("list sessions", err)
}

func (s *Store) GetSession(ctx context.Context, localID string) (*models.ChatSession, error) {
	userID, err := s.UserID()
	if err != nil {
		return nil, err
	}
	cs, err := chat.NewSQLiteRepository(s.db).GetSession(ctx, userID, localID)
	return cs, readErr("get session", err)
}

func (s *Store) ListMessages(ctx context.Context, sessionLocalID string) ([]models.ChatMessage, error) {
	userID, err := s.UserID()
	if err != nil {
		return nil, err
	}
	list, err := chat.NewSQLiteRepository(s.db).ListMessages(ctx, userID, sessionLocalID)
	return list, readErr("list messages", err)
}

func (s *Store) GetMessage(ctx context.Context, localID string) (*models.ChatMessage, error) {
	userID, err := s.UserID()
	if err != nil {
		return nil, err
	}
	m, err := chat.NewSQLiteRepository(s.db).GetMessage(ctx, userID, localID)
	return m, readErr("get message", err)
}
