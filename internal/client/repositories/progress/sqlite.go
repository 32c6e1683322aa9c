// Package progress persists exercise completions in the local database.
package progress

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
	Insert(ctx context.Context, p *models.ExerciseProgress) error
	Get(ctx context.Context, userID, localID string) (*models.ExerciseProgress, error)
	UpdatePayload(ctx context.Context, p *models.ExerciseProgress) error
	List(ctx context.Context, userID string) ([]models.ExerciseProgress, error)
}

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const columns = `local_id, user_id, server_id, request_id, exercise_id, duration_seconds, rating, note,
	completed_at, sync_status, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (models.ExerciseProgress, error) {
	var (
		p        models.ExerciseProgress
		serverID sql.NullString
	)
	err := s.Scan(&p.LocalID, &p.UserID, &serverID, &p.RequestID, &p.ExerciseID, &p.DurationSeconds, &p.Rating, &p.Note,
		dbx.ScanTime(&p.CompletedAt), &p.Status, dbx.ScanTime(&p.CreatedAt), dbx.ScanTime(&p.UpdatedAt))
	p.ServerID = serverID.String
	return p, err
}

func (r *SQLiteRepository) Insert(ctx context.Context, p *models.ExerciseProgress) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO exercise_progress (`+columns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.LocalID, p.UserID, dbx.NullString(p.ServerID), p.RequestID, p.ExerciseID, p.DurationSeconds, p.Rating, p.Note,
		dbx.FormatTime(p.CompletedAt), p.Status, dbx.FormatTime(p.CreatedAt), dbx.FormatTime(p.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert exercise progress: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, userID, localID string) (*models.ExerciseProgress, error) {
	p, err := scan(r.db.QueryRowContext(ctx,
		`SELECT `+columns+` FROM exercise_progress WHERE user_id = ? AND local_id = ?`, userID, localID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get exercise progress: %w", err)
	}
	return &p, nil
}

func (r *SQLiteRepository) UpdatePayload(ctx context.Context, p *models.ExerciseProgress) error {
	n, err := dbx.ExecAffected(ctx, r.db, `UPDATE exercise_progress
		SET exercise_id = ?, duration_seconds = ?, rating = ?, note = ?, completed_at = ?, updated_at = ?
		WHERE local_id = ?`,
		p.ExerciseID, p.DurationSeconds, p.Rating, p.Note, dbx.FormatTime(p.CompletedAt), dbx.FormatTime(p.UpdatedAt), p.LocalID)
	if err != nil {
		return fmt.Errorf("failed to update exercise progress: %w", err)
	}
	if n != 1 {
		return common.ErrorNotFound
	}
	return nil
}

// List returns the user's completions, newest first.
func (r *SQLiteRepository) List(ctx context.Context, userID string) ([]models.ExerciseProgress, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+columns+` FROM exercise_progress
		WHERE user_id = ? ORDER BY completed_at DESC, local_id DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select exercise progress: %w", err)
	}
	defer rows.Close()

	var result []models.ExerciseProgress
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan exercise progress: %w", err)
		}
		result = append(result, p)
	}
	return result, rows.Err()
}
