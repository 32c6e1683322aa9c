// Package outbox stores the local log of creations awaiting remote
// acknowledgement.
package outbox

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/wellsync/internal/client/models"
	"github.com/dmitrijs2005/wellsync/internal/client/repositories/syncstate"
	"github.com/dmitrijs2005/wellsync/internal/common"
	"github.com/dmitrijs2005/wellsync/internal/dbx"
)

type Repository interface {
	Enqueue(ctx context.Context, e *models.OutboxEntry) error
	Get(ctx context.Context, entity models.EntityType, localID string) (*models.OutboxEntry, error)
	ListRetryable(ctx context.Context, userID string, entity models.EntityType, chatType models.ChatType) ([]models.OutboxEntry, error)
	RecordFailure(ctx context.Context, entity models.EntityType, localID, lastError string) error
	Delete(ctx context.Context, entity models.EntityType, localID string) error
	Count(ctx context.Context, userID string) (int, error)
}

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const columns = `o.entry_id, o.user_id, o.entity_type, o.local_id, o.operation, o.payload, o.request_id,
	o.attempt_count, o.last_error, o.enqueued_at`

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (models.OutboxEntry, error) {
	var e models.OutboxEntry
	err := s.Scan(&e.EntryID, &e.UserID, &e.EntityType, &e.LocalID, &e.Operation, &e.Payload, &e.RequestID,
		&e.AttemptCount, &e.LastError, dbx.ScanTime(&e.EnqueuedAt))
	return e, err
}

// Enqueue adds an entry. A second entry for the same record violates the
// (entity_type, local_id) constraint and fails.
func (r *SQLiteRepository) Enqueue(ctx context.Context, e *models.OutboxEntry) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO outbox
		(entry_id, user_id, entity_type, local_id, operation, payload, request_id, attempt_count, last_error, enqueued_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.EntryID, e.UserID, e.EntityType, e.LocalID, e.Operation, e.Payload, e.RequestID,
		e.AttemptCount, e.LastError, dbx.FormatTime(e.EnqueuedAt))
	if err != nil {
		return fmt.Errorf("failed to enqueue %s %s: %w", e.EntityType, e.LocalID, err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, entity models.EntityType, localID string) (*models.OutboxEntry, error) {
	e, err := scan(r.db.QueryRowContext(ctx,
		`SELECT `+columns+` FROM outbox o WHERE o.entity_type = ? AND o.local_id = ?`, entity, localID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox entry: %w", err)
	}
	return &e, nil
}

// ListRetryable returns the user's entries of entity whose record is pending
// or failed, oldest enqueued first. chatType narrows chat entities.
func (r *SQLiteRepository) ListRetryable(ctx context.Context, userID string, entity models.EntityType, chatType models.ChatType) ([]models.OutboxEntry, error) {
	table := syncstate.Table(entity)
	if table == "" {
		return nil, fmt.Errorf("unknown entity type %q", entity)
	}

	query := `SELECT ` + columns + ` FROM outbox o
		JOIN ` + table + ` t ON t.local_id = o.local_id
		WHERE o.user_id = ? AND o.entity_type = ? AND t.sync_status IN (?, ?)`
	args := []any{userID, entity, models.StatusPending, models.StatusFailed}
	if chatType != "" && syncstate.HasChatType(entity) {
		query += ` AND t.chat_type = ?`
		args = append(args, chatType)
	}
	query += ` ORDER BY o.enqueued_at, o.entry_id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select outbox: %w", err)
	}
	defer rows.Close()

	var result []models.OutboxEntry
	for rows.Next() {
		e, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan outbox entry: %w", err)
		}
		result = append(result, e)
	}
	return result, rows.Err()
}

// RecordFailure counts a failed delivery attempt.
func (r *SQLiteRepository) RecordFailure(ctx context.Context, entity models.EntityType, localID, lastError string) error {
	n, err := dbx.ExecAffected(ctx, r.db, `UPDATE outbox
		SET attempt_count = attempt_count + 1, last_error = ?
		WHERE entity_type = ? AND local_id = ?`, lastError, entity, localID)
	if err != nil {
		return fmt.Errorf("failed to record outbox failure: %w", err)
	}
	if n != 1 {
		return common.ErrorNotFound
	}
	return nil
}

// Delete removes the entry of a record; missing entries are not an error.
func (r *SQLiteRepository) Delete(ctx context.Context, entity models.EntityType, localID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM outbox WHERE entity_type = ? AND local_id = ?`, entity, localID); err != nil {
		return fmt.Errorf("failed to delete outbox entry: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Count(ctx context.Context, userID string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM outbox WHERE user_id = ?`, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count outbox: %w", err)
	}
	return n, nil
}
