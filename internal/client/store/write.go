package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/wellsync/internal/client/models"
	"github.com/dmitrijs2005/wellsync/internal/client/repositories/chat"
	"github.com/dmitrijs2005/wellsync/internal/client/repositories/moods"
	"github.com/dmitrijs2005/wellsync/internal/client/repositories/outbox"
	"github.com/dmitrijs2005/wellsync/internal/client/repositories/progress"
	"github.com/dmitrijs2005/wellsync/internal/common"
	"github.com/dmitrijs2005/wellsync/internal/dbx"
	"github.com/oklog/ulid/v2"
)

// stamp fills the sync bookkeeping of a record about to be created.
func (s *Store) stamp(meta *models.SyncMeta, userID string) {
	now := s.now().UTC()
	meta.LocalID = newLocalID()
	meta.ServerID = ""
	meta.RequestID = newRequestID()
	meta.UserID = userID
	meta.Status = models.StatusPending
	meta.CreatedAt = now
	meta.UpdatedAt = now
}

// enqueue snapshots record into the outbox inside tx.
func (s *Store) enqueue(ctx context.Context, tx dbx.DBTX, entity models.EntityType, meta *models.SyncMeta, record any) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("snapshot %s: %w", entity, err)
	}
	return outbox.NewSQLiteRepository(tx).Enqueue(ctx, &models.OutboxEntry{
		EntryID:    ulid.Make().String(),
		UserID:     meta.UserID,
		EntityType: entity,
		LocalID:    meta.LocalID,
		Operation:  models.OperationCreate,
		Payload:    payload,
		RequestID:  meta.RequestID,
		EnqueuedAt: meta.CreatedAt,
	})
}

// RecordMood stores a mood entry for the active user and queues it for
// delivery. A zero RecordedAt means now.
func (s *Store) RecordMood(ctx context.Context, in models.Mood) (string, error) {
	userID, err := s.UserID()
	if err != nil {
		return "", err
	}
	m := in
	m.Mood = strings.TrimSpace(m.Mood)
	if m.RecordedAt.IsZero() {
		m.RecordedAt = s.now()
	}
	m.RecordedAt = m.RecordedAt.UTC()
	if err := m.Validate(); err != nil {
		return "", err
	}
	s.stamp(&m.SyncMeta, userID)

	err = s.write(ctx, "record mood", func(ctx context.Context, tx dbx.DBTX) (bool, error) {
		if err := moods.NewSQLiteRepository(tx).Insert(ctx, &m); err != nil {
			return false, err
		}
		return true, s.enqueue(ctx, tx, models.EntityMood, &m.SyncMeta, &m)
	})
	if err != nil {
		return "", err
	}
	s.logger.Debug(ctx, "mood recorded", "local_id", m.LocalID)
	return m.LocalID, nil
}

// RecordExerciseCompletion stores an exercise completion and queues it.
func (s *Store) RecordExerciseCompletion(ctx context.Context, in models.ExerciseProgress) (string, error) {
	userID, err := s.UserID()
	if err != nil {
		return "", err
	}
	p := in
	if p.CompletedAt.IsZero() {
		p.CompletedAt = s.now()
	}
	p.CompletedAt = p.CompletedAt.UTC()
	if err := p.Validate(); err != nil {
		return "", err
	}
	s.stamp(&p.SyncMeta, userID)

	err = s.write(ctx, "record exercise completion", func(ctx context.Context, tx dbx.DBTX) (bool, error) {
		if err := progress.NewSQLiteRepository(tx).Insert(ctx, &p); err != nil {
			return false, err
		}
		return true, s.enqueue(ctx, tx, models.EntityProgress, &p.SyncMeta, &p)
	})
	if err != nil {
		return "", err
	}
	return p.LocalID, nil
}

// CreateChatSession opens a new chat session of chatType.
func (s *Store) CreateChatSession(ctx context.Context, chatType models.ChatType) (string, error) {
	userID, err := s.UserID()
	if err != nil {
		return "", err
	}
	cs := models.ChatSession{ChatType: chatType}
	if err := cs.Validate(); err != nil {
		return "", err
	}
	s.stamp(&cs.SyncMeta, userID)

	err = s.write(ctx, "create chat session", func(ctx context.Context, tx dbx.DBTX) (bool, error) {
		if err := chat.NewSQLiteRepository(tx).InsertSession(ctx, &cs); err != nil {
			return false, err
		}
		return true, s.enqueue(ctx, tx, models.EntitySession, &cs.SyncMeta, &cs)
	})
	if err != nil {
		return "", err
	}
	return cs.LocalID, nil
}

// RecordChatMessage appends a message to one of the active user's sessions.
// The chat type is taken from the session.
func (s *Store) RecordChatMessage(ctx context.Context, sessionLocalID string, role models.Role, content string) (string, error) {
	userID, err := s.UserID()
	if err != nil {
		return "", err
	}
	msg := models.ChatMessage{SessionLocalID: sessionLocalID, Role: role, Content: strings.TrimSpace(content)}
	if err := msg.Validate(); err != nil {
		return "", err
	}
	s.stamp(&msg.SyncMeta, userID)

	err = s.write(ctx, "record chat message", func(ctx context.Context, tx dbx.DBTX) (bool, error) {
		repo := chat.NewSQLiteRepository(tx)
		session, err := repo.GetSession(ctx, userID, sessionLocalID)
		if errors.Is(err, common.ErrorNotFound) {
			return false, fmt.Errorf("%w: unknown chat session %s", common.ErrorValidation, sessionLocalID)
		}
		if err != nil {
			return false, err
		}
		msg.ChatType = session.ChatType

		if err := repo.InsertMessage(ctx, &msg); err != nil {
			return false, err
		}
		return true, s.enqueue(ctx, tx, models.EntityMessage, &msg.SyncMeta, &msg)
	})
	if err != nil {
		return "", err
	}
	return msg.LocalID, nil
}
