// Package syncstate implements the delivery-state transitions shared by all
// syncable tables (claim, fail, release, bind to a server id) and the
// counters derived from them.
package syncstate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/wellsync/internal/client/models"
	"github.com/dmitrijs2005/wellsync/internal/common"
	"github.com/dmitrijs2005/wellsync/internal/dbx"
)

// Table returns the local table holding entity, or "" for unknown kinds.
func Table(entity models.EntityType) string {
	switch entity {
	case models.EntityMood:
		return "moods"
	case models.EntityProgress:
		return "exercise_progress"
	case models.EntitySession:
		return "chat_sessions"
	case models.EntityMessage:
		return "chat_messages"
	}
	return ""
}

// HasChatType reports whether entity's table carries a chat_type column.
func HasChatType(entity models.EntityType) bool {
	return entity == models.EntitySession || entity == models.EntityMessage
}

// SQLiteRepository operates on the sync columns of one entity table.
type SQLiteRepository struct {
	db     dbx.DBTX
	entity models.EntityType
	table  string
}

func NewSQLiteRepository(db dbx.DBTX, entity models.EntityType) (*SQLiteRepository, error) {
	table := Table(entity)
	if table == "" {
		return nil, fmt.Errorf("unknown entity type %q", entity)
	}
	return &SQLiteRepository{db: db, entity: entity, table: table}, nil
}

const metaColumns = `local_id, user_id, server_id, request_id, sync_status, created_at, updated_at`

func scanMeta(row *sql.Row) (models.SyncMeta, error) {
	var (
		m        models.SyncMeta
		serverID sql.NullString
	)
	err := row.Scan(&m.LocalID, &m.UserID, &serverID, &m.RequestID, &m.Status,
		dbx.ScanTime(&m.CreatedAt), dbx.ScanTime(&m.UpdatedAt))
	if errors.Is(err, sql.ErrNoRows) {
		return m, common.ErrorNotFound
	}
	if err != nil {
		return m, err
	}
	m.ServerID = serverID.String
	return m, nil
}

// Get returns the sync metadata of localID, or common.ErrorNotFound.
func (r *SQLiteRepository) Get(ctx context.Context, localID string) (models.SyncMeta, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+metaColumns+` FROM `+r.table+` WHERE local_id = ?`, localID)
	m, err := scanMeta(row)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return m, fmt.Errorf("failed to get %s %s: %w", r.entity, localID, err)
	}
	return m, err
}

// FindByServerID looks a user's row up by its server id.
func (r *SQLiteRepository) FindByServerID(ctx context.Context, userID, serverID string) (models.SyncMeta, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+metaColumns+` FROM `+r.table+` WHERE user_id = ? AND server_id = ?`, userID, serverID)
	m, err := scanMeta(row)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return m, fmt.Errorf("failed to find %s by server id: %w", r.entity, err)
	}
	return m, err
}

// FindByRequestID looks a user's row up by the idempotency key it was
// created with, whether or not it is bound yet.
func (r *SQLiteRepository) FindByRequestID(ctx context.Context, userID, requestID string) (models.SyncMeta, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+metaColumns+` FROM `+r.table+` WHERE user_id = ? AND request_id = ?`, userID, requestID)
	m, err := scanMeta(row)
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return m, fmt.Errorf("failed to find %s by request id: %w", r.entity, err)
	}
	return m, err
}

// MarkSyncing claims a retryable row for delivery. It reports false when the
// row is not pending or failed.
func (r *SQLiteRepository) MarkSyncing(ctx context.Context, localID string, now time.Time) (bool, error) {
	n, err := dbx.ExecAffected(ctx, r.db,
		`UPDATE `+r.table+` SET sync_status = ?, updated_at = ?
		 WHERE local_id = ? AND sync_status IN (?, ?)`,
		models.StatusSyncing, dbx.FormatTime(now), localID, models.StatusPending, models.StatusFailed)
	if err != nil {
		return false, fmt.Errorf("failed to claim %s %s: %w", r.entity, localID, err)
	}
	return n == 1, nil
}

// SetStatus moves an unsynced row to status. Synced rows are left alone.
func (r *SQLiteRepository) SetStatus(ctx context.Context, localID string, status models.SyncStatus, now time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE `+r.table+` SET sync_status = ?, updated_at = ? WHERE local_id = ? AND sync_status <> ?`,
		status, dbx.FormatTime(now), localID, models.StatusSynced)
	if err != nil {
		return fmt.Errorf("failed to set %s %s to %s: %w", r.entity, localID, status, err)
	}
	return nil
}

// Bind records the server id and marks the row synced.
func (r *SQLiteRepository) Bind(ctx context.Context, localID, serverID string, now time.Time) error {
	n, err := dbx.ExecAffected(ctx, r.db,
		`UPDATE `+r.table+` SET server_id = ?, sync_status = ?, updated_at = ?
		 WHERE local_id = ? AND (server_id IS NULL OR server_id = ?)`,
		serverID, models.StatusSynced, dbx.FormatTime(now), localID, serverID)
	if err != nil {
		return fmt.Errorf("failed to bind %s %s: %w", r.entity, localID, err)
	}
	if n != 1 {
		return common.ErrorNotFound
	}
	return nil
}

// ResetSyncing returns a user's rows stuck in syncing, left behind by an
// interrupted pass, to pending.
func (r *SQLiteRepository) ResetSyncing(ctx context.Context, userID string, now time.Time) (int64, error) {
	n, err := dbx.ExecAffected(ctx, r.db,
		`UPDATE `+r.table+` SET sync_status = ?, updated_at = ? WHERE user_id = ? AND sync_status = ?`,
		models.StatusPending, dbx.FormatTime(now), userID, models.StatusSyncing)
	if err != nil {
		return 0, fmt.Errorf("failed to reset syncing %s rows: %w", r.entity, err)
	}
	return n, nil
}

// Counts returns the user's unsynced and failed row counts. chatType narrows
// chat tables to one chat type and is ignored for other tables.
func (r *SQLiteRepository) Counts(ctx context.Context, userID string, chatType models.ChatType) (models.Counts, error) {
	query := `SELECT
		COALESCE(SUM(CASE WHEN sync_status <> ? THEN 1 ELSE 0 END), 0),
		COALESCE(SUM(CASE WHEN sync_status = ? THEN 1 ELSE 0 END), 0)
		FROM ` + r.table + ` WHERE user_id = ?`
	args := []any{models.StatusSynced, models.StatusFailed, userID}
	if chatType != "" && HasChatType(r.entity) {
		query += ` AND chat_type = ?`
		args = append(args, chatType)
	}

	var c models.Counts
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&c.Pending, &c.Failed); err != nil {
		return c, fmt.Errorf("failed to count %s rows: %w", r.entity, err)
	}
	return c, nil
}
