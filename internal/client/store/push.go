package store

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/wellsync/internal/client/models"
	"github.com/dmitrijs2005/wellsync/internal/client/repositories/outbox"
	"github.com/dmitrijs2005/wellsync/internal/client/repositories/syncstate"
	"github.com/dmitrijs2005/wellsync/internal/common"
	"github.com/dmitrijs2005/wellsync/internal/dbx"
)

// ClaimPushable marks the active user's pending and failed records of
// entity as syncing and returns their outbox entries, oldest first.
// chatType narrows chat entities to one chat type.
func (s *Store) ClaimPushable(ctx context.Context, entity models.EntityType, chatType models.ChatType) ([]models.OutboxEntry, error) {
	userID, err := s.UserID()
	if err != nil {
		return nil, err
	}

	var claimed []models.OutboxEntry
	err = s.write(ctx, "claim "+string(entity), func(ctx context.Context, tx dbx.DBTX) (bool, error) {
		entries, err := outbox.NewSQLiteRepository(tx).ListRetryable(ctx, userID, entity, chatType)
		if err != nil {
			return false, err
		}
		state, err := syncstate.NewSQLiteRepository(tx, entity)
		if err != nil {
			return false, err
		}
		now := s.now()
		for _, e := range entries {
			ok, err := state.MarkSyncing(ctx, e.LocalID, now)
			if err != nil {
				return false, err
			}
			if ok {
				claimed = append(claimed, e)
			}
		}
		return len(claimed) > 0, nil
	})
	if err != nil {
		return nil, err
	}
	return claimed, nil
}

// MarkFailed records a failed delivery: the record becomes failed and the
// outbox entry keeps the attempt count and last error for the next cycle.
func (s *Store) MarkFailed(ctx context.Context, entity models.EntityType, localID string, cause error) error {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}
	return s.write(ctx, "mark failed", func(ctx context.Context, tx dbx.DBTX) (bool, error) {
		state, err := syncstate.NewSQLiteRepository(tx, entity)
		if err != nil {
			return false, err
		}
		if err := state.SetStatus(ctx, localID, models.StatusFailed, s.now()); err != nil {
			return false, err
		}
		err = outbox.NewSQLiteRepository(tx).RecordFailure(ctx, entity, localID, msg)
		if errors.Is(err, common.ErrorNotFound) {
			return true, nil
		}
		return true, err
	})
}

// Release returns a claimed record to the queue without counting an attempt.
// Used when delivery must wait for a dependency, such as a message whose
// session has no server id yet.
func (s *Store) Release(ctx context.Context, entity models.EntityType, localID string) error {
	return s.write(ctx, "release", func(ctx context.Context, tx dbx.DBTX) (bool, error) {
		status := models.StatusPending
		e, err := outbox.NewSQLiteRepository(tx).Get(ctx, entity, localID)
		switch {
		case errors.Is(err, common.ErrorNotFound):
		case err != nil:
			return false, err
		case e.AttemptCount > 0:
			status = models.StatusFailed
		}
		state, err := syncstate.NewSQLiteRepository(tx, entity)
		if err != nil {
			return false, err
		}
		return true, state.SetStatus(ctx, localID, status, s.now())
	})
}

// Ack binds a delivered record to its server id, marks it synced and drops
// its outbox entry. Repeating an ack with the same server id is a no-op.
// An unknown local id or a conflicting server id yields a
// *common.ReconciliationError and changes nothing.
func (s *Store) Ack(ctx context.Context, entity models.EntityType, localID, serverID string) error {
	userID, err := s.UserID()
	if err != nil {
		return err
	}

	reconcile := func(reason string) error {
		return &common.ReconciliationError{EntityType: string(entity), LocalID: localID, ServerID: serverID, Reason: reason}
	}

	return s.write(ctx, "ack", func(ctx context.Context, tx dbx.DBTX) (bool, error) {
		if serverID == "" {
			return false, reconcile("empty server id")
		}
		state, err := syncstate.NewSQLiteRepository(tx, entity)
		if err != nil {
			return false, err
		}
		meta, err := state.Get(ctx, localID)
		if errors.Is(err, common.ErrorNotFound) || (err == nil && meta.UserID != userID) {
			return false, reconcile("unknown local id")
		}
		if err != nil {
			return false, err
		}

		ob := outbox.NewSQLiteRepository(tx)
		if meta.ServerID == serverID && meta.Status == models.StatusSynced {
			return false, ob.Delete(ctx, entity, localID)
		}
		if meta.ServerID != "" && meta.ServerID != serverID {
			return false, reconcile("record already bound to server id " + meta.ServerID)
		}

		other, err := state.FindByServerID(ctx, userID, serverID)
		switch {
		case err == nil && other.LocalID != localID:
			return false, reconcile("server id already bound to local id " + other.LocalID)
		case err != nil && !errors.Is(err, common.ErrorNotFound):
			return false, err
		}

		if err := state.Bind(ctx, localID, serverID, s.now()); err != nil {
			return false, err
		}
		return true, ob.Delete(ctx, entity, localID)
	})
}
