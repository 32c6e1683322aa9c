package moods

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

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

func (r *PostgresRepository) Create(ctx context.Context, m *models.Mood) (bool, error) {
	query := `
		INSERT INTO moods (id, user_id, request_id, mood, intensity, note, tags, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, request_id) DO UPDATE SET request_id = EXCLUDED.request_id
		RETURNING id, updated_at, (xmax = 0) AS inserted
	`
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return false, fmt.Errorf("encode tags: %w", err)
	}

	var inserted bool
	err = r.db.QueryRowContext(ctx, query,
		r.newID(), m.UserID, m.RequestID, m.Mood, m.Intensity, m.Note, string(tagsJSON), m.RecordedAt,
	).Scan(&m.ID, &m.UpdatedAt, &inserted)
	if err != nil {
		return false, pgerr.Map(err)
	}
	return inserted, nil
}

func (r *PostgresRepository) ListSince(ctx context.Context, userID string, since time.Time) ([]models.Mood, error) {
	query := `
		SELECT id, request_id, mood, intensity, note, tags, recorded_at, updated_at
		FROM moods
		WHERE user_id = $1 AND updated_at > $2
		ORDER BY updated_at, id
	`
	rows, err := r.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		return nil, pgerr.Map(err)
	}
	defer rows.Close()

	var out []models.Mood
	for rows.Next() {
		m := models.Mood{UserID: userID}
		var tags []byte
		if err := rows.Scan(&m.ID, &m.RequestID, &m.Mood, &m.Intensity, &m.Note, &tags, &m.RecordedAt, &m.UpdatedAt); err != nil {
			return nil, pgerr.Map(err)
		}
		if len(tags) > 0 {
			if err := json.Unmarshal(tags, &m.Tags); err != nil {
				return nil, fmt.Errorf("decode tags of mood %s: %w", m.ID, err)
			}
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, pgerr.Map(err)
	}
	return out, nil
}
