package moods

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/wellsync/internal/client/models"
	"github.com/dmitrijs2005/wellsync/internal/common"
	"github.com/dmitrijs2005/wellsync/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const columns = `local_id, user_id, server_id, request_id, mood, intensity, note, tags,
	recorded_at, sync_status, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scan(s scanner) (models.Mood, error) {
	var (
		m        models.Mood
		serverID sql.NullString
		tags     string
	)
	err := s.Scan(&m.LocalID, &m.UserID, &serverID, &m.RequestID, &m.Mood, &m.Intensity, &m.Note, &tags,
		dbx.ScanTime(&m.RecordedAt), &m.Status, dbx.ScanTime(&m.CreatedAt), dbx.ScanTime(&m.UpdatedAt))
	if err != nil {
		return m, err
	}
	m.ServerID = serverID.String
	if tags != "" {
		if err := json.Unmarshal([]byte(tags), &m.Tags); err != nil {
			return m, fmt.Errorf("decode tags: %w", err)
		}
	}
	return m, nil
}

func encodeTags(tags []string) (string, error) {
	if len(tags) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(tags)
	return string(b), err
}

// Insert stores a new mood row with the sync fields carried by m.
func (r *SQLiteRepository) Insert(ctx context.Context, m *models.Mood) error {
	tags, err := encodeTags(m.Tags)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `INSERT INTO moods (`+columns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.LocalID, m.UserID, dbx.NullString(m.ServerID), m.RequestID, m.Mood, m.Intensity, m.Note, tags,
		dbx.FormatTime(m.RecordedAt), m.Status, dbx.FormatTime(m.CreatedAt), dbx.FormatTime(m.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert mood: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, userID, localID string) (*models.Mood, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+columns+` FROM moods WHERE user_id = ? AND local_id = ?`, userID, localID)
	m, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mood: %w", err)
	}
	return &m, nil
}

// UpdatePayload overwrites the user-visible fields of an existing row.
// Identity and sync columns are untouched.
func (r *SQLiteRepository) UpdatePayload(ctx context.Context, m *models.Mood) error {
	tags, err := encodeTags(m.Tags)
	if err != nil {
		return err
	}
	n, err := dbx.ExecAffected(ctx, r.db, `UPDATE moods
		SET mood = ?, intensity = ?, note = ?, tags = ?, recorded_at = ?, updated_at = ?
		WHERE local_id = ?`,
		m.Mood, m.Intensity, m.Note, tags, dbx.FormatTime(m.RecordedAt), dbx.FormatTime(m.UpdatedAt), m.LocalID)
	if err != nil {
		return fmt.Errorf("failed to update mood: %w", err)
	}
	if n != 1 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *SQLiteRepository) list(ctx context.Context, query string, args ...any) ([]models.Mood, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select moods: %w", err)
	}
	defer rows.Close()

	var result []models.Mood
	for rows.Next() {
		m, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mood: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListRecent returns the newest entries first.
func (r *SQLiteRepository) ListRecent(ctx context.Context, userID string, limit int) ([]models.Mood, error) {
	return r.list(ctx, `SELECT `+columns+` FROM moods WHERE user_id = ?
		ORDER BY recorded_at DESC, local_id DESC LIMIT ?`, userID, limit)
}

// ListBetween returns entries recorded in [from, to), oldest first.
func (r *SQLiteRepository) ListBetween(ctx context.Context, userID string, from, to time.Time) ([]models.Mood, error) {
	return r.list(ctx, `SELECT `+columns+` FROM moods
		WHERE user_id = ? AND recorded_at >= ? AND recorded_at < ?
		ORDER BY recorded_at, local_id`, userID, dbx.FormatTime(from), dbx.FormatTime(to))
}

// Search matches text case-insensitively against label, note and tags.
func (r *SQLiteRepository) Search(ctx context.Context, userID, text string) ([]models.Mood, error) {
	pattern := "%" + escapeLike(strings.ToLower(text)) + "%"
	return r.list(ctx, `SELECT `+columns+` FROM moods
		WHERE user_id = ? AND (lower(mood) LIKE ? ESCAPE '\' OR lower(note) LIKE ? ESCAPE '\' OR lower(tags) LIKE ? ESCAPE '\')
		ORDER BY recorded_at DESC, local_id DESC`, userID, pattern, pattern, pattern)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// Stats aggregates entries recorded in [from, to).
func (r *SQLiteRepository) Stats(ctx context.Context, userID string, from, to time.Time) (models.MoodStats, error) {
	stats := models.MoodStats{ByMood: map[string]int{}}

	rows, err := r.db.QueryContext(ctx, `SELECT mood, COUNT(*), SUM(intensity) FROM moods
		WHERE user_id = ? AND recorded_at >= ? AND recorded_at < ?
		GROUP BY mood`, userID, dbx.FormatTime(from), dbx.FormatTime(to))
	if err != nil {
		return stats, fmt.Errorf("failed to aggregate moods: %w", err)
	}
	defer rows.Close()

	total := 0
	for rows.Next() {
		var (
			label    string
			count    int
			intenSum int
		)
		if err := rows.Scan(&label, &count, &intenSum); err != nil {
			return stats, fmt.Errorf("failed to scan mood stats: %w", err)
		}
		stats.ByMood[label] = count
		stats.Count += count
		total += intenSum
	}
	if err := rows.Err(); err != nil {
		return stats, err
	}
	if stats.Count > 0 {
		stats.AverageIntensity = float64(total) / float64(stats.Count)
	}
	return stats, nil
}
