package store

import (
	"context"
	"time"

	"github.com/dmitrijs2005/wellsync/internal/client/models"
	"github.com/dmitrijs2005/wellsync/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/wellsync/internal/client/repositories/outbox"
	"github.com/dmitrijs2005/wellsync/internal/client/repositories/syncstate"
	"github.com/dmitrijs2005/wellsync/internal/common"
	"github.com/dmitrijs2005/wellsync/internal/dbx"
)

// Counters derives pending and failed counts per category from the record
// tables. The exercise catalog is pull-only and always reports zero.
func (s *Store) Counters(ctx context.Context) (map[models.Category]models.Counts, error) {
	userID, err := s.UserID()
	if err != nil {
		return nil, err
	}

	count := func(entity models.EntityType, chatType models.ChatType) (models.Counts, error) {
		repo, err := syncstate.NewSQLiteRepository(s.db, entity)
		if err != nil {
			return models.Counts{}, err
		}
		return repo.Counts(ctx, userID, chatType)
	}

	out := make(map[models.Category]models.Counts, len(models.Categories))
	out[models.CategoryExercises] = models.Counts{}

	if out[models.CategoryMoods], err = count(models.EntityMood, ""); err != nil {
		return nil, common.NewStorageError("counters", err)
	}
	if out[models.CategoryUserProgress], err = count(models.EntityProgress, ""); err != nil {
		return nil, common.NewStorageError("counters", err)
	}
	for _, t := range models.ChatTypes {
		sessions, err := count(models.EntitySession, t)
		if err != nil {
			return nil, common.NewStorageError("counters", err)
		}
		messages, err := count(models.EntityMessage, t)
		if err != nil {
			return nil, common.NewStorageError("counters", err)
		}
		out[models.ChatCategory(t)] = models.Counts{
			Pending: sessions.Pending + messages.Pending,
			Failed:  sessions.Failed + messages.Failed,
		}
	}
	return out, nil
}

// OutboxSize returns the number of queued deliveries of the active user.
func (s *Store) OutboxSize(ctx context.Context) (int, error) {
	userID, err := s.UserID()
	if err != nil {
		return 0, err
	}
	n, err := outbox.NewSQLiteRepository(s.db).Count(ctx, userID)
	return n, readErr("outbox size", err)
}

// LastSyncAt returns the end of the last completed full pass, or nil.
func (s *Store) LastSyncAt(ctx context.Context) (*time.Time, error) {
	userID, err := s.UserID()
	if err != nil {
		return nil, err
	}
	t, err := metadata.NewSQLiteRepository(s.db).GetTime(ctx, metadata.UserKey(metadata.KeyLastSyncAt, userID))
	return t, readErr("last sync", err)
}

func (s *Store) SetLastSyncAt(ctx context.Context, t time.Time) error {
	userID, err := s.UserID()
	if err != nil {
		return err
	}
	return s.write(ctx, "set last sync", func(ctx context.Context, tx dbx.DBTX) (bool, error) {
		return true, metadata.NewSQLiteRepository(tx).SetTime(ctx, metadata.UserKey(metadata.KeyLastSyncAt, userID), t)
	})
}

// Cursor returns the newest server update time pulled for category, or nil
// when the category was never pulled.
func (s *Store) Cursor(ctx context.Context, c models.Category) (*time.Time, error) {
	userID, err := s.UserID()
	if err != nil {
		return nil, err
	}
	t, err := metadata.NewSQLiteRepository(s.db).GetTime(ctx, metadata.UserKey(metadata.KeyPullCursor, userID, string(c)))
	return t, readErr("cursor", err)
}

func (s *Store) SetCursor(ctx context.Context, c models.Category, t time.Time) error {
	userID, err := s.UserID()
	if err != nil {
		return err
	}
	return s.write(ctx, "set cursor", func(ctx context.Context, tx dbx.DBTX) (bool, error) {
		return false, metadata.NewSQLiteRepository(tx).SetTime(ctx, metadata.UserKey(metadata.KeyPullCursor, userID, string(c)), t)
	})
}
