package chat

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/wellsync/internal/common"
	"github.com/dmitrijs2005/wellsync/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionCols = []string{"id", "request_id", "chat_type", "title", "conversation_id", "created_at", "updated_at"}

const (
	insertSessionQ = `(?s)^INSERT\s+INTO\s+chat_sessions\b.*ON\s+CONFLICT\s+\(user_id,\s*request_id\).*RETURNING\s+id,.*\(xmax\s*=\s*0\)\s+AS\s+inserted\s*$`
	getSessionQ    = `(?s)^SELECT\s+id,.*FROM\s+chat_sessions\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+id\s*=\s*\$2$`
	listSessionsQ  = `(?s)^SELECT\s+id,.*FROM\s+chat_sessions\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+\(\$2\s*=\s*''\s+OR\s+chat_type\s*=\s*\$2\)\s+ORDER\s+BY\s+updated_at\s+DESC,\s*id\s*$`
	renameQ        = `(?s)^UPDATE\s+chat_sessions\s+SET\s+title\s*=\s*\$1,\s*updated_at\s*=\s*now\(\)\s+WHERE\s+id\s*=\s*\$2\s+AND\s+title\s*=\s*\$3\s*$`
	insertMessageQ = `(?s)^INSERT\s+INTO\s+chat_messages\b.*RETURNING\s+id,\s*\(xmax\s*=\s*0\)\s+AS\s+inserted\s*$`
	listMessagesQ  = `(?s)^SELECT\s+id,\s*request_id,\s*role,\s*content,\s*created_at\s+FROM\s+chat_messages\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+session_id\s*=\s*\$2\s+ORDER\s+BY\s+created_at,\s*id\s*$`
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	repo := NewPostgresRepository(db)
	repo.newID = func() string { return "id-new" }
	return repo, mock, db
}

func TestCreateSession_Inserted(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	at := time.Date(2026, 4, 3, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(insertSessionQ).
		WithArgs("id-new", "u1", "r1", "coach", "New conversation", "conv-1", at).
		WillReturnRows(sqlmock.NewRows(append(sessionCols, "inserted")).
			AddRow("id-new", "r1", "coach", "New conversation", "conv-1", at, at, true))

	s := &models.Session{UserID: "u1", RequestID: "r1", ChatType: "coach", Title: "New conversation", ConversationID: "conv-1", CreatedAt: at}
	created, err := repo.CreateSession(context.Background(), s)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "id-new", s.ID)
}

func TestCreateSession_ReplayReturnsStoredRow(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	at := time.Date(2026, 4, 3, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(insertSessionQ).
		WillReturnRows(sqlmock.NewRows(append(sessionCols, "inserted")).
			AddRow("s-orig", "r1", "coach", "Sleep trouble", "conv-orig", at, at, false))

	s := &models.Session{UserID: "u1", RequestID: "r1", ChatType: "coach", Title: "New conversation", ConversationID: "conv-2", CreatedAt: at}
	created, err := repo.CreateSession(context.Background(), s)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "s-orig", s.ID)
	assert.Equal(t, "conv-orig", s.ConversationID)
	assert.Equal(t, "Sleep trouble", s.Title)
}

func TestGetSession(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	at := time.Now()
	mock.ExpectQuery(getSessionQ).WithArgs("u1", "s1").
		WillReturnRows(sqlmock.NewRows(sessionCols).AddRow("s1", "r1", "event", "Hi", "c1", at, at))

	s, err := repo.GetSession(context.Background(), "u1", "s1")
	require.NoError(t, err)
	assert.Equal(t, "event", s.ChatType)
	assert.Equal(t, "u1", s.UserID)

	mock.ExpectQuery(getSessionQ).WithArgs("u1", "nope").WillReturnError(sql.ErrNoRows)
	_, err = repo.GetSession(context.Background(), "u1", "nope")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestListSessions(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	at := time.Now()
	mock.ExpectQuery(listSessionsQ).WithArgs("u1", "").
		WillReturnRows(sqlmock.NewRows(sessionCols).
			AddRow("s2", "r2", "event", "B", "c2", at, at).
			AddRow("s1", "r1", "coach", "A", "c1", at, at))

	got, err := repo.ListSessions(context.Background(), "u1", "")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "s2", got[0].ID)

	mock.ExpectQuery(listSessionsQ).WithArgs("u1", "coach").WillReturnError(errors.New("boom"))
	_, err = repo.ListSessions(context.Background(), "u1", "coach")
	require.Error(t, err)
}

func TestRenameIfTitled(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)

	mock.ExpectExec(renameQ).WithArgs("Sleep", "s1", "New conversation").WillReturnResult(sqlmock.NewResult(0, 1))
	ok, err := repo.RenameIfTitled(context.Background(), "s1", "New conversation", "Sleep")
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec(renameQ).WithArgs("Other", "s1", "New conversation").WillReturnResult(sqlmock.NewResult(0, 0))
	ok, err = repo.RenameIfTitled(context.Background(), "s1", "New conversation", "Other")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMessages(t *testing.T) {
	repo, mock, _ := newRepoWithMock(t)
	at := time.Date(2026, 4, 3, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(insertMessageQ).
		WithArgs("id-new", "u1", "r9", "s1", "user", "hello", at).
		WillReturnRows(sqlmock.NewRows([]string{"id", "inserted"}).AddRow("id-new", true))

	m := &models.Message{UserID: "u1", RequestID: "r9", SessionID: "s1", Role: "user", Content: "hello", CreatedAt: at}
	created, err := repo.CreateMessage(context.Background(), m)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "id-new", m.ID)

	mock.ExpectQuery(listMessagesQ).WithArgs("u1", "s1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "request_id", "role", "content", "created_at"}).
			AddRow("id-new", "r9", "user", "hello", at).
			AddRow("id-2", "r10", "assistant", "hi", at.Add(time.Second)))

	got, err := repo.ListMessages(context.Background(), "u1", "s1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "s1", got[1].SessionID)
	assert.Equal(t, "assistant", got[1].Role)
}
