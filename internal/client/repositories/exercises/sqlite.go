// Package exercises stores the pull-only exercise catalog.
package exercises

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/wellsync/internal/client/models"
	"github.com/dmitrijs2005/wellsync/internal/dbx"
)

type Repository interface {
	Upsert(ctx context.Context, e *models.Exercise) (bool, error)
	ListWithProgress(ctx context.Context, userID string) ([]models.ExerciseWithProgress, error)
}

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Upsert inserts or refreshes a catalog entry. It reports whether anything
// changed.
func (r *SQLiteRepository) Upsert(ctx context.Context, e *models.Exercise) (bool, error) {
	n, err := dbx.ExecAffected(ctx, r.db, `
		INSERT INTO exercises (server_id, title, category, duration_minutes, description, sync_status, updated_at)
		VALUES (?, ?, ?, ?, ?, 'synced', ?)
		ON CONFLICT(server_id) DO UPDATE SET
			title = excluded.title,
			category = excluded.category,
			duration_minutes = excluded.duration_minutes,
			description = excluded.description,
			updated_at = excluded.updated_at
		WHERE title <> excluded.title
			OR category <> excluded.category
			OR duration_minutes <> excluded.duration_minutes
			OR description <> excluded.description`,
		e.ServerID, e.Title, e.Category, e.DurationMinutes, e.Description, dbx.FormatTime(e.UpdatedAt))
	if err != nil {
		return false, fmt.Errorf("failed to upsert exercise %s: %w", e.ServerID, err)
	}
	return n > 0, nil
}

// ListWithProgress joins the catalog with the user's completion count and
// last completion time.
func (r *SQLiteRepository) ListWithProgress(ctx context.Context, userID string) ([]models.ExerciseWithProgress, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT e.server_id, e.title, e.category, e.duration_minutes, e.description, e.updated_at,
			COUNT(p.local_id), MAX(p.completed_at)
		FROM exercises e
		LEFT JOIN exercise_progress p ON p.exercise_id = e.server_id AND p.user_id = ?
		GROUP BY e.server_id
		ORDER BY e.title, e.server_id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select exercises: %w", err)
	}
	defer rows.Close()

	var result []models.ExerciseWithProgress
	for rows.Next() {
		var ex models.ExerciseWithProgress
		if err := rows.Scan(&ex.ServerID, &ex.Title, &ex.Category, &ex.DurationMinutes, &ex.Description,
			dbx.ScanTime(&ex.UpdatedAt), &ex.Completions, dbx.ScanNullTime(&ex.LastCompletedAt)); err != nil {
			return nil, fmt.Errorf("failed to scan exercise: %w", err)
		}
		result = append(result, ex)
	}
	return result, rows.Err()
}
