package syncmanager

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/wellsync/internal/client/models"
	"github.com/dmitrijs2005/wellsync/internal/common"
)

// errDeferred marks an entry that cannot be sent yet.
var errDeferred = errors.New("dependency not delivered")

// push delivers the claimed entries of entity oldest first. Transport
// failures are recorded on the record and never returned; only store
// failures and cancellation end the pass. Entries claimed but not settled
// when the pass ends are released so the next cycle picks them up.
func (m *Manager) push(ctx context.Context, entity models.EntityType, chatType models.ChatType, res *CategoryResult) error {
	entries, err := m.store.ClaimPushable(ctx, entity, chatType)
	if err != nil {
		return err
	}

	// Settling a claim must survive cancellation of the pass.
	settle := context.WithoutCancel(ctx)
	next := 0
	defer func() {
		for _, e := range entries[next:] {
			if err := m.store.Release(settle, entity, e.LocalID); err != nil {
				m.logger.Error(settle, "release failed", "entity", entity, "local_id", e.LocalID, "error", err)
			}
		}
	}()

	for ; next < len(entries); next++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		e := entries[next]
		serverID, err := m.send(ctx, e)
		switch {
		case errors.Is(err, errDeferred):
			if err := m.store.Release(settle, entity, e.LocalID); err != nil {
				return err
			}
			res.Deferred++
			continue
		case err != nil:
			terr := &common.TransportError{Op: "create " + string(entity), Err: err}
			m.logger.Warn(ctx, "push failed", "entity", entity, "local_id", e.LocalID, "attempt", e.AttemptCount+1, "error", err)
			if err := m.store.MarkFailed(settle, entity, e.LocalID, terr); err != nil {
				return err
			}
			res.Failed++
			continue
		}

		if err := m.store.Ack(settle, entity, e.LocalID, serverID); err != nil {
			var re *common.ReconciliationError
			if errors.As(err, &re) {
				m.logger.Warn(ctx, "ack dropped", "error", re)
				res.Dropped++
				continue
			}
			return err
		}
		res.Pushed++
	}
	return nil
}

// send issues the remote create for one outbox entry using the snapshot
// taken at write time and the entry's idempotency key.
func (m *Manager) send(ctx context.Context, e models.OutboxEntry) (string, error) {
	switch e.EntityType {
	case models.EntityMood:
		rec, err := decode[models.Mood](e)
		if err != nil {
			return "", err
		}
		return m.remote.CreateMood(ctx, rec)

	case models.EntityProgress:
		rec, err := decode[models.ExerciseProgress](e)
		if err != nil {
			return "", err
		}
		return m.remote.CreateProgress(ctx, rec)

	case models.EntitySession:
		rec, err := decode[models.ChatSession](e)
		if err != nil {
			return "", err
		}
		return m.remote.CreateSession(ctx, rec)

	case models.EntityMessage:
		rec, err := decode[models.ChatMessage](e)
		if err != nil {
			return "", err
		}
		session, err := m.store.GetSession(ctx, rec.SessionLocalID)
		if err != nil {
			return "", fmt.Errorf("resolve session %s: %w", rec.SessionLocalID, err)
		}
		if session.ServerID == "" {
			return "", errDeferred
		}
		return m.remote.CreateMessage(ctx, session.ServerID, rec)
	}
	return "", fmt.Errorf("unknown entity type %q", e.EntityType)
}

// decode restores the snapshot of an entry. The entry's request id is
// authoritative.
func decode[T any, PT interface {
	*T
	Meta() *models.SyncMeta
}](e models.OutboxEntry) (T, error) {
	var rec T
	if err := json.Unmarshal(e.Payload, &rec); err != nil {
		return rec, fmt.Errorf("decode %s snapshot: %w", e.EntityType, err)
	}
	PT(&rec).Meta().RequestID = e.RequestID
	return rec, nil
}
