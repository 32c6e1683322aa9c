// Package chat persists chat sessions and their messages locally.
package chat

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/wellsync/internal/client/models"
	"github.com/dmitrijs2005/wellsync/internal/common"
	"github.com/dmitrijs2005/wellsync/internal/dbx"
)

type Repository interface {
	InsertSession(ctx context.Context, s *models.ChatSession) error
	GetSession(ctx context.Context, userID, localID string) (*models.ChatSession, error)
	UpdateSessionPayload(ctx context.Context, s *models.ChatSession) error
	ListSessions(ctx context.Context, userID string, chatType models.ChatType) ([]models.ChatSession, error)

	InsertMessage(ctx context.Context, m *models.ChatMessage) error
	GetMessage(ctx context.Context, userID, localID string) (*models.ChatMessage, error)
	UpdateMessagePayload(ctx context.Context, m *models.ChatMessage) error
	ListMessages(ctx context.Context, userID, sessionLocalID string) ([]models.ChatMessage, error)
}

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const sessionColumns = `local_id, user_id, server_id, request_id, chat_type, title, conversation_id,
	sync_status, created_at, updated_at`

func scanSession(s scanner) (models.ChatSession, error) {
	var (
		cs       models.ChatSession
		serverID sql.NullString
	)
	err := s.Scan(&cs.LocalID, &cs.UserID, &serverID, &cs.RequestID, &cs.ChatType, &cs.Title, &cs.ConversationID,
		&cs.Status, dbx.ScanTime(&cs.CreatedAt), dbx.ScanTime(&cs.UpdatedAt))
	cs.ServerID = serverID.String
	return cs, err
}

func (r *SQLiteRepository) InsertSession(ctx context.Context, s *models.ChatSession) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO chat_sessions (`+sessionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.LocalID, s.UserID, dbx.NullString(s.ServerID), s.RequestID, s.ChatType, s.Title, s.ConversationID,
		s.Status, dbx.FormatTime(s.CreatedAt), dbx.FormatTime(s.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert chat session: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetSession(ctx context.Context, userID, localID string) (*models.ChatSession, error) {
	s, err := scanSession(r.db.QueryRowContext(ctx,
		`SELECT `+sessionColumns+` FROM chat_sessions WHERE user_id = ? AND local_id = ?`, userID, localID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chat session: %w", err)
	}
	return &s, nil
}

// UpdateSessionPayload refreshes the server-computed fields.
func (r *SQLiteRepository) UpdateSessionPayload(ctx context.Context, s *models.ChatSession) error {
	n, err := dbx.ExecAffected(ctx, r.db, `UPDATE chat_sessions
		SET title = ?, conversation_id = ?, updated_at = ? WHERE local_id = ?`,
		s.Title, s.ConversationID, dbx.FormatTime(s.UpdatedAt), s.LocalID)
	if err != nil {
		return fmt.Errorf("failed to update chat session: %w", err)
	}
	if n != 1 {
		return common.ErrorNotFound
	}
	return nil
}

// ListSessions returns the user's sessions of chatType, newest first.
func (r *SQLiteRepository) ListSessions(ctx context.Context, userID string, chatType models.ChatType) ([]models.ChatSession, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+sessionColumns+` FROM chat_sessions
		WHERE user_id = ? AND chat_type = ? ORDER BY created_at DESC, local_id DESC`, userID, chatType)
	if err != nil {
		return nil, fmt.Errorf("failed to select chat sessions: %w", err)
	}
	defer rows.Close()

	var result []models.ChatSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chat session: %w", err)
		}
		result = append(result, s)
	}
	return result, rows.Err()
}

const messageColumns = `local_id, user_id, server_id, request_id, session_local_id, chat_type, role, content,
	sync_status, created_at, updated_at`

func scanMessage(s scanner) (models.ChatMessage, error) {
	var (
		m        models.ChatMessage
		serverID sql.NullString
	)
	err := s.Scan(&m.LocalID, &m.UserID, &serverID, &m.RequestID, &m.SessionLocalID, &m.ChatType, &m.Role, &m.Content,
		&m.Status, dbx.ScanTime(&m.CreatedAt), dbx.ScanTime(&m.UpdatedAt))
	m.ServerID = serverID.String
	return m, err
}

func (r *SQLiteRepository) InsertMessage(ctx context.Context, m *models.ChatMessage) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO chat_messages (`+messageColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.LocalID, m.UserID, dbx.NullString(m.ServerID), m.RequestID, m.SessionLocalID, m.ChatType, m.Role, m.Content,
		m.Status, dbx.FormatTime(m.CreatedAt), dbx.FormatTime(m.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetMessage(ctx context.Context, userID, localID string) (*models.ChatMessage, error) {
	m, err := scanMessage(r.db.QueryRowContext(ctx,
		`SELECT `+messageColumns+` FROM chat_messages WHERE user_id = ? AND local_id = ?`, userID, localID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chat message: %w", err)
	}
	return &m, nil
}

func (r *SQLiteRepository) UpdateMessagePayload(ctx context.Context, m *models.ChatMessage) error {
	n, err := dbx.ExecAffected(ctx, r.db, `UPDATE chat_messages
		SET role = ?, content = ?, updated_at = ? WHERE local_id = ?`,
		m.Role, m.Content, dbx.FormatTime(m.UpdatedAt), m.LocalID)
	if err != nil {
		return fmt.Errorf("failed to update chat message: %w", err)
	}
	if n != 1 {
		return common.ErrorNotFound
	}
	return nil
}

// ListMessages returns a session's messages in conversation order.
func (r *SQLiteRepository) ListMessages(ctx context.Context, userID, sessionLocalID string) ([]models.ChatMessage, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+messageColumns+` FROM chat_messages
		WHERE user_id = ? AND session_local_id = ? ORDER BY created_at, local_id`, userID, sessionLocalID)
	if err != nil {
		return nil, fmt.Errorf("failed to select chat messages: %w", err)
	}
	defer rows.Close()

	var result []models.ChatMessage
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		result = append(result, m)
	}
	return result, rows.Err()
}
