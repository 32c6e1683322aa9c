package exercises

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

func (r *PostgresRepository) List(ctx context.Context) ([]models.Exercise, error) {
	query := `
		SELECT id, title, category, duration_minutes, description
		FROM exercises
		ORDER BY title
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, pgerr.Map(err)
	}
	defer rows.Close()

	var out []models.Exercise
	for rows.Next() {
		var e models.Exercise
		if err := rows.Scan(&e.ID, &e.Title, &e.Category, &e.DurationMinutes, &e.Description); err != nil {
			return nil, pgerr.Map(err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, pgerr.Map(err)
	}
	return out, nil
}

func (r *PostgresRepository) CreateProgress(ctx context.Context, p *models.Progress) (bool, error) {
	query := `
		INSERT INTO exercise_progress (id, user_id, request_id, exercise_id, duration_seconds, rating, note, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, request_id) DO UPDATE SET request_id = EXCLUDED.request_id
		RETURNING id, updated_at, (xmax = 0) AS inserted
	`
	var inserted bool
	err := r.db.QueryRowContext(ctx, query,
		r.newID(), p.UserID, p.RequestID, p.ExerciseID, p.DurationSeconds, p.Rating, p.Note, p.CompletedAt,
	).Scan(&p.ID, &p.UpdatedAt, &inserted)
	if err != nil {
		return false, pgerr.Map(err)
	}
	return inserted, nil
}

func (r *PostgresRepository) ListProgress(ctx context.Context, userID string) ([]models.Progress, error) {
	query := `
		SELECT id, request_id, exercise_id, duration_seconds, rating, note, completed_at, updated_at
		FROM exercise_progress
		WHERE user_id = $1
		ORDER BY completed_at, id
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, pgerr.Map(err)
	}
	defer rows.Close()

	var out []models.Progress
	for rows.Next() {
		p := models.Progress{UserID: userID}
		if err := rows.Scan(&p.ID, &p.RequestID, &p.ExerciseID, &p.DurationSeconds, &p.Rating, &p.Note, &p.CompletedAt, &p.UpdatedAt); err != nil {
			return nil, pgerr.Map(err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, pgerr.Map(err)
	}
	return out, nil
}
