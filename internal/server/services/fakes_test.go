package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/wellsync/internal/common"
	"github.com/dmitrijs2005/wellsync/internal/dbx"
	"github.com/dmitrijs2005/wellsync/internal/server/models"
	"github.com/dmitrijs2005/wellsync/internal/server/repositories/chat"
	"github.com/dmitrijs2005/wellsync/internal/server/repositories/exercises"
	"github.com/dmitrijs2005/wellsync/internal/server/repositories/moods"
	"github.com/dmitrijs2005/wellsync/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/wellsync/internal/server/repositories/users"
)

var errBoom = errors.New("boom")

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// newTxDB returns a mock database that accepts n transactions. Rollbacks
// are not expected; WithTx ignores their error.
func newTxDB(t *testing.T, n int) *sql.DB {
	t.Helper()
	db, mock := newSQLMockDB(t)
	mock.MatchExpectationsInOrder(false)
	for i := 0; i < n; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit()
	}
	return db
}

type fakeUsersRepo struct {
	byName    map[string]*models.User
	createErr error
	getErr    error
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.byName == nil {
		f.byName = map[string]*models.User{}
	}
	if _, ok := f.byName[u.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}
	u.ID = "u-" + u.UserName
	f.byName[u.UserName] = u
	return u, nil
}

func (f *fakeUsersRepo) GetUserByLogin(_ context.Context, name string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byName[name]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

type fakeRefreshRepo struct {
	tokens     map[string]*models.RefreshToken
	findErr    error
	delErr     error
	createErr  error
	expiredErr error
	pruned     int
}

func (f *fakeRefreshRepo) Create(_ context.Context, userID, token string, expires time.Time) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.tokens == nil {
		f.tokens = map[string]*models.RefreshToken{}
	}
	f.tokens[token] = &models.RefreshToken{UserID: userID, Token: token, Expires: expires}
	return nil
}

func (f *fakeRefreshRepo) Find(_ context.Context, token string) (*models.RefreshToken, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	rt, ok := f.tokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return rt, nil
}

func (f *fakeRefreshRepo) Delete(_ context.Context, token string) error {
	if f.delErr != nil {
		return f.delErr
	}
	delete(f.tokens, token)
	return nil
}

func (f *fakeRefreshRepo) DeleteExpired(_ context.Context, userID string, now time.Time) (int64, error) {
	if f.expiredErr != nil {
		return 0, f.expiredErr
	}
	var n int64
	for k, rt := range f.tokens {
		if rt.UserID == userID && rt.Expires.Before(now) {
			delete(f.tokens, k)
			n++
		}
	}
	f.pruned += int(n)
	return n, nil
}

// key is (userID, requestID).
type key struct{ user, req string }

type fakeMoodsRepo struct {
	rows    []*models.Mood
	byReq   map[key]*models.Mood
	err     error
	since   time.Time
}

func (f *fakeMoodsRepo) Create(_ context.Context, m *models.Mood) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.byReq == nil {
		f.byReq = map[key]*models.Mood{}
	}
	if prev, ok := f.byReq[key{m.UserID, m.RequestID}]; ok {
		m.ID = prev.ID
		return false, nil
	}
	m.ID = "mood-" + m.RequestID
	cp := *m
	f.byReq[key{m.UserID, m.RequestID}] = &cp
	f.rows = append(f.rows, &cp)
	return true, nil
}

func (f *fakeMoodsRepo) ListSince(_ context.Context, userID string, since time.Time) ([]models.Mood, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.since = since
	var out []models.Mood
	for _, m := range f.rows {
		if m.UserID == userID {
			out = append(out, *m)
		}
	}
	return out, nil
}

type fakeExercisesRepo struct {
	catalog  []models.Exercise
	progress []*models.Progress
	byReq    map[key]*models.Progress
	listErr  error
	err      error
}

func (f *fakeExercisesRepo) List(context.Context) ([]models.Exercise, error) {
	return f.catalog, f.listErr
}

func (f *fakeExercisesRepo) CreateProgress(_ context.Context, p *models.Progress) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if f.byReq == nil {
		f.byReq = map[key]*models.Progress{}
	}
	if prev, ok := f.byReq[key{p.UserID, p.RequestID}]; ok {
		p.ID = prev.ID
		return false, nil
	}
	p.ID = "prog-" + p.RequestID
	cp := *p
	f.byReq[key{p.UserID, p.RequestID}] = &cp
	f.progress = append(f.progress, &cp)
	return true, nil
}

func (f *fakeExercisesRepo) ListProgress(_ context.Context, userID string) ([]models.Progress, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Progress
	for _, p := range f.progress {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakeChatRepo struct {
	sessions    map[string]*models.Session
	sessByReq   map[key]*models.Session
	messages    []*models.Message
	msgByReq    map[key]*models.Message
	messageErr  error
	renameCalls int
}

func (f *fakeChatRepo) CreateSession(_ context.Context, s *models.Session) (bool, error) {
	if f.sessions == nil {
		f.sessions = map[string]*models.Session{}
		f.sessByReq = map[key]*models.Session{}
	}
	if prev, ok := f.sessByReq[key{s.UserID, s.RequestID}]; ok {
		*s = *prev
		return false, nil
	}
	s.ID = "sess-" + s.RequestID
	cp := *s
	f.sessions[s.ID] = &cp
	f.sessByReq[key{s.UserID, s.RequestID}] = &cp
	return true, nil
}

func (f *fakeChatRepo) GetSession(_ context.Context, userID, id string) (*models.Session, error) {
	s, ok := f.sessions[id]
	if !ok || s.UserID != userID {
		return nil, common.ErrorNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeChatRepo) ListSessions(_ context.Context, userID, chatType string) ([]models.Session, error) {
	var out []models.Session
	for _, s := range f.sessions {
		if s.UserID == userID && (chatType == "" || s.ChatType == chatType) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeChatRepo) RenameIfTitled(_ context.Context, id, current, title string) (bool, error) {
	f.renameCalls++
	s, ok := f.sessions[id]
	if !ok || s.Title != current {
		return false, nil
	}
	s.Title = title
	return true, nil
}

func (f *fakeChatRepo) CreateMessage(_ context.Context, m *models.Message) (bool, error) {
	if f.messageErr != nil {
		return false, f.messageErr
	}
	if f.msgByReq == nil {
		f.msgByReq = map[key]*models.Message{}
	}
	if prev, ok := f.msgByReq[key{m.UserID, m.RequestID}]; ok {
		m.ID = prev.ID
		return false, nil
	}
	m.ID = "msg-" + m.RequestID
	cp := *m
	f.msgByReq[key{m.UserID, m.RequestID}] = &cp
	f.messages = append(f.messages, &cp)
	return true, nil
}

func (f *fakeChatRepo) ListMessages(_ context.Context, userID, sessionID string) ([]models.Message, error) {
	var out []models.Message
	for _, m := range f.messages {
		if m.UserID == userID && m.SessionID == sessionID {
			out = append(out, *m)
		}
	}
	return out, nil
}

type fakeRepoManager struct {
	u  *fakeUsersRepo
	r  *fakeRefreshRepo
	m  *fakeMoodsRepo
	e  *fakeExercisesRepo
	ch *fakeChatRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		u:  &fakeUsersRepo{},
		r:  &fakeRefreshRepo{},
		m:  &fakeMoodsRepo{},
		e:  &fakeExercisesRepo{},
		ch: &fakeChatRepo{},
	}
}

func (f *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error     { return nil }
func (f *fakeRepoManager) Users(dbx.DBTX) users.Repository                 { return f.u }
func (f *fakeRepoManager) RefreshTokens(dbx.DBTX) refreshtokens.Repository { return f.r }
func (f *fakeRepoManager) Moods(dbx.DBTX) moods.Repository                 { return f.m }
func (f *fakeRepoManager) Exercises(dbx.DBTX) exercises.Repository         { return f.e }
func (f *fakeRepoManager) Chat(dbx.DBTX) chat.Repository                   { return f.ch }
