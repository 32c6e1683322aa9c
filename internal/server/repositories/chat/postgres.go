package chat

import (
	"context"

	"github.com/dmitrijs2005/wellsync/internal/dbx"
	"github.com/dmitrijs2005/wellsync/internal/server/models"
	"github.com/dmitrijs2005/wellsync/internal/server/repositories/pgerr"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db    dbx.DBTX
	newID func() string
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db, newID: uuid.NewString}
}

const sessionColumns = `id, request_id, chat_type, title, conversation_id, created_at, updated_at`

func scanSession(row interface{ Scan(...any) error }, s *models.Session) error {
	return row.Scan(&s.ID, &s.RequestID, &s.ChatType, &s.Title, &s.ConversationID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *PostgresRepository) CreateSession(ctx context.Context, s *models.Session) (bool, error) {
	query := `
		INSERT INTO chat_sessions (id, user_id, request_id, chat_type, title, conversation_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, request_id) DO UPDATE SET request_id = EXCLUDED.request_id
		RETURNING ` + sessionColumns + `, (xmax = 0) AS inserted
	`
	var inserted bool
	err := r.db.QueryRowContext(ctx, query,
		r.newID(), s.UserID, s.RequestID, s.ChatType, s.Title, s.ConversationID, s.CreatedAt,
	).Scan(&s.ID, &s.RequestID, &s.ChatType, &s.Title, &s.ConversationID, &s.CreatedAt, &s.UpdatedAt, &inserted)
	if err != nil {
		return false, pgerr.Map(err)
	}
	return inserted, nil
}

func (r *PostgresRepository) GetSession(ctx context.Context, userID, id string) (*models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM chat_sessions WHERE user_id = $1 AND id = $2`

	s := &models.Session{UserID: userID}
	if err := scanSession(r.db.QueryRowContext(ctx, query, userID, id), s); err != nil {
		return nil, pgerr.Map(err)
	}
	return s, nil
}

func (r *PostgresRepository) ListSessions(ctx context.Context, userID, chatType string) ([]models.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM chat_sessions
		WHERE user_id = $1 AND ($2 = '' OR chat_type = $2)
		ORDER BY updated_at DESC, id
	`
	rows, err := r.db.QueryContext(ctx, query, userID, chatType)
	if err != nil {
		return nil, pgerr.Map(err)
	}
	defer rows.Close()

	var out []models.Session
	for rows.Next() {
		s := models.Session{UserID: userID}
		if err := scanSession(rows, &s); err != nil {
			return nil, pgerr.Map(err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, pgerr.Map(err)
	}
	return out, nil
}

func (r *PostgresRepository) RenameIfTitled(ctx context.Context, id, current, title string) (bool, error) {
	query := `
		UPDATE chat_sessions SET title = $1, updated_at = now()
		WHERE id = $2 AND title = $3
	`
	n, err := dbx.ExecAffected(ctx, r.db, query, title, id, current)
	if err != nil {
		return false, pgerr.Map(err)
	}
	return n > 0, nil
}

func (r *PostgresRepository) CreateMessage(ctx context.Context, m *models.Message) (bool, error) {
	query := `
		INSERT INTO chat_messages (id, user_id, request_id, session_id, role, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, request_id) DO UPDATE SET request_id = EXCLUDED.request_id
		RETURNING id, (xmax = 0) AS inserted
	`
	var inserted bool
	err := r.db.QueryRowContext(ctx, query,
		r.newID(), m.UserID, m.RequestID, m.SessionID, m.Role, m.Content, m.CreatedAt,
	).Scan(&m.ID, &inserted)
	if err != nil {
		return false, pgerr.Map(err)
	}
	return inserted, nil
}

func (r *PostgresRepository) ListMessages(ctx context.Context, userID, sessionID string) ([]models.Message, error) {
	query := `
		SELECT id, request_id, role, content, created_at
		FROM chat_messages
		WHERE user_id = $1 AND session_id = $2
		ORDER BY created_at, id
	`
	rows, err := r.db.QueryContext(ctx, query, userID, sessionID)
	if err != nil {
		return nil, pgerr.Map(err)
	}
	defer rows.Close()

	var out []models.Message
	for rows.Next() {
		m := models.Message{UserID: userID, SessionID: sessionID}
		if err := rows.Scan(&m.ID, &m.RequestID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, pgerr.Map(err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, pgerr.Map(err)
	}
	return out, nil
}
