package moods

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/wellsync/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	insertQ = `(?s)^INSERT\s+INTO\s+moods\b.*ON\s+CONFLICT\s+\(user_id,\s*request_id\)\s+DO\s+UPDATE.*RETURNING\s+id,\s*updated_at,\s*\(xmax\s*=\s*0\)\s+AS\s+inserted\s*$`
	listQ   = `(?s)^SELECT\s+id,\s*request_id,\s*mood,.*FROM\s+moods\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+updated_at\s*>\s*\$2\s+ORDER\s+BY\s+updated_at,\s*id\s*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := NewPostgresRepository(db)
	repo.newID = func() string { return "m-new" }
	return repo, mock, db
}

func TestCreate_Inserted(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	recorded := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	updated := recorded.Add(time.Minute)

	mock.ExpectQuery(insertQ).
		WithArgs("m-new", "u1", "r1", "calm", 6, "tea", `["morning","home"]`, recorded).
		WillReturnRows(sqlmock.NewRows([]string{"id", "updated_at", "inserted"}).AddRow("m-new", updated, true))

	m := &models.Mood{UserID: "u1", RequestID: "r1", Mood: "calm", Intensity: 6, Note: "tea", Tags: []string{"morning", "home"}, RecordedAt: recorded}
	created, err := repo.Create(context.Background(), m)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "m-new", m.ID)
	assert.True(t, updated.Equal(m.UpdatedAt))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ReplayReturnsOriginalID(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectQuery(insertQ).
		WithArgs("m-new", "u1", "r1", "calm", 6, "", `[]`, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "updated_at", "inserted"}).AddRow("m-orig", time.Now(), false))

	m := &models.Mood{UserID: "u1", RequestID: "r1", Mood: "calm", Intensity: 6, RecordedAt: time.Now()}
	created, err := repo.Create(context.Background(), m)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "m-orig", m.ID)
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	mock.ExpectQuery(insertQ).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Mood{UserID: "u1", RequestID: "r1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
}

func TestListSince(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	since := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	t1 := since.Add(time.Hour)

	rows := sqlmock.NewRows([]string{"id", "request_id", "mood", "intensity", "note", "tags", "recorded_at", "updated_at"}).
		AddRow("m1", "r1", "calm", 6, "", []byte(`["a"]`), t1, t1).
		AddRow("m2", "r2", "tired", 3, "late", []byte(`[]`), t1, t1.Add(time.Second))
	mock.ExpectQuery(listQ).WithArgs("u1", since).WillReturnRows(rows)

	got, err := repo.ListSince(context.Background(), "u1", since)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"a"}, got[0].Tags)
	assert.Equal(t, "u1", got[0].UserID)
	assert.Equal(t, "tired", got[1].Mood)
	assert.Empty(t, got[1].Tags)
}

func TestListSince_BadTags(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	rows := sqlmock.NewRows([]string{"id", "request_id", "mood", "intensity", "note", "tags", "recorded_at", "updated_at"}).
		AddRow("m1", "r1", "calm", 6, "", []byte(`{`), time.Now(), time.Now())
	mock.ExpectQuery(listQ).WillReturnRows(rows)

	_, err := repo.ListSince(context.Background(), "u1", time.Time{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode tags")
}

func TestListSince_QueryError(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	mock.ExpectQuery(listQ).WillReturnError(errors.New("boom"))

	_, err := repo.ListSince(context.Background(), "u1", time.Time{})
	require.Error(t, err)
}
