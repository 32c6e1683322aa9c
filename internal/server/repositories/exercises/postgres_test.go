package exercises

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/wellsync/internal/common"
	"github.com/dmitrijs2005/wellsync/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	listQ         = `(?s)^SELECT\s+id,\s*title,\s*category,\s*duration_minutes,\s*description\s+FROM\s+exercises\s+ORDER\s+BY\s+title\s*$`
	insertQ       = `(?s)^INSERT\s+INTO\s+exercise_progress\b.*ON\s+CONFLICT\s+\(user_id,\s*request_id\).*RETURNING\s+id,\s*updated_at,\s*\(xmax\s*=\s*0\)\s+AS\s+inserted\s*$`
	listProgressQ = `(?s)^SELECT\s+id,\s*request_id,\s*exercise_id,.*FROM\s+exercise_progress\s+WHERE\s+user_id\s*=\s*\$1\s+ORDER\s+BY\s+completed_at,\s*id\s*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := NewPostgresRepository(db)
	repo.newID = func() string { return "p-new" }
	return repo, mock, db
}

func TestList(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	mock.ExpectQuery(listQ).WillReturnRows(sqlmock.NewRows([]string{"id", "title", "category", "duration_minutes", "description"}).
		AddRow("e1", "Body scan", "mindfulness", 10, "").
		AddRow("e2", "Box breathing", "breathing", 4, "Inhale"))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Exercise{
		{ID: "e1", Title: "Body scan", Category: "mindfulness", DurationMinutes: 10},
		{ID: "e2", Title: "Box breathing", Category: "breathing", DurationMinutes: 4, Description: "Inhale"},
	}, got)
}

func TestList_Error(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	mock.ExpectQuery(listQ).WillReturnError(errors.New("db down"))

	_, err := repo.List(context.Background())
	require.Error(t, err)
}

func TestCreateProgress(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	done := time.Date(2026, 4, 2, 7, 0, 0, 0, time.UTC)

	mock.ExpectQuery(insertQ).
		WithArgs("p-new", "u1", "r1", "e1", 600, 4, "nice", done).
		WillReturnRows(sqlmock.NewRows([]string{"id", "updated_at", "inserted"}).AddRow("p-new", done, true))

	p := &models.Progress{UserID: "u1", RequestID: "r1", ExerciseID: "e1", DurationSeconds: 600, Rating: 4, Note: "nice", CompletedAt: done}
	created, err := repo.CreateProgress(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "p-new", p.ID)
}

func TestCreateProgress_UnknownExercise(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	mock.ExpectQuery(insertQ).WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "exercise_progress_exercise_id_fkey"})

	_, err := repo.CreateProgress(context.Background(), &models.Progress{UserID: "u1", RequestID: "r1", ExerciseID: "missing"})
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestListProgress(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	done := time.Date(2026, 4, 2, 7, 0, 0, 0, time.UTC)
	mock.ExpectQuery(listProgressQ).WithArgs("u1").WillReturnRows(
		sqlmock.NewRows([]string{"id", "request_id", "exercise_id", "duration_seconds", "rating", "note", "completed_at", "updated_at"}).
			AddRow("p1", "r1", "e1", 300, 0, "", done, done))

	got, err := repo.ListProgress(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "u1", got[0].UserID)
	assert.Equal(t, 300, got[0].DurationSeconds)
}
