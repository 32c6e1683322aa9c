package services

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/dmitrijs2005/wellsync/internal/common"
	"github.com/dmitrijs2005/wellsync/internal/server/auth"
	"github.com/dmitrijs2005/wellsync/internal/server/config"
	"github.com/dmitrijs2005/wellsync/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func newUserService(t *testing.T, rm *fakeRepoManager) *UserService {
	t.Helper()
	db := newTxDB(t, 4)
	cfg := &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
	}
	s := NewUserService(db, rm, cfg)
	s.bcryptCost = bcrypt.MinCost
	s.now = func() time.Time { return fixedNow }
	return s
}

func registerUser(t *testing.T, s *UserService, name, pw string) *models.User {
	t.Helper()
	u, err := s.Register(context.Background(), name, pw)
	require.NoError(t, err)
	return u
}

func TestRegister(t *testing.T) {
	rm := newFakeRepoManager()
	s := newUserService(t, rm)

	u := registerUser(t, s, "  alice ", "secret1")
	assert.Equal(t, "u-alice", u.ID)
	assert.Equal(t, "alice", u.UserName)
	require.NoError(t, bcrypt.CompareHashAndPassword(u.PasswordHash, []byte("secret1")))

	_, err := s.Register(context.Background(), "alice", "secret2")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestRegister_Validation(t *testing.T) {
	s := newUserService(t, newFakeRepoManager())

	_, err := s.Register(context.Background(), " ", "secret1")
	assert.ErrorIs(t, err, common.ErrorValidation)

	_, err = s.Register(context.Background(), "bob", "123")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestRegister_RepoError(t *testing.T) {
	rm := newFakeRepoManager()
	rm.u.createErr = errBoom
	s := newUserService(t, rm)

	_, err := s.Register(context.Background(), "bob", "secret1")
	if err == nil || !regexp.MustCompile(`error creating user: .*boom`).MatchString(err.Error()) {
		t.Fatalf("Register expected wrapped error, got %v", err)
	}
}

func TestLogin_Flows(t *testing.T) {
	rm := newFakeRepoManager()
	s := newUserService(t, rm)
	registerUser(t, s, "alice", "secret1")

	_, err := s.Login(context.Background(), "ghost", "secret1")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, err = s.Login(context.Background(), "alice", "wrong-pw")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	pair, err := s.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "u-alice", pair.UserID)
	assert.NotEmpty(t, pair.RefreshToken)

	uid, err := s.UserIDFromAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u-alice", uid)

	stored, ok := rm.r.tokens[pair.RefreshToken]
	require.True(t, ok)
	assert.Equal(t, fixedNow.Add(2*time.Hour), stored.Expires)
}

func TestLogin_PrunesExpiredRefreshTokens(t *testing.T) {
	rm := newFakeRepoManager()
	s := newUserService(t, rm)
	registerUser(t, s, "alice", "secret1")
	require.NoError(t, rm.r.Create(context.Background(), "u-alice", "old", fixedNow.Add(-time.Minute)))

	_, err := s.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	assert.Equal(t, 1, rm.r.pruned)
	assert.NotContains(t, rm.r.tokens, "old")
}

func TestLogin_InternalError(t *testing.T) {
	rm := newFakeRepoManager()
	rm.u.getErr = errBoom
	s := newUserService(t, rm)

	_, err := s.Login(context.Background(), "alice", "secret1")
	assert.ErrorIs(t, err, common.ErrorInternal)
}

func TestRefreshToken_Rotates(t *testing.T) {
	rm := newFakeRepoManager()
	s := newUserService(t, rm)
	require.NoError(t, rm.r.Create(context.Background(), "u1", "refresh-xyz", fixedNow.Add(10*time.Minute)))

	pair, err := s.RefreshToken(context.Background(), "refresh-xyz")
	require.NoError(t, err)
	assert.Equal(t, "u1", pair.UserID)
	assert.NotEqual(t, "refresh-xyz", pair.RefreshToken)
	assert.NotContains(t, rm.r.tokens, "refresh-xyz")
	assert.Contains(t, rm.r.tokens, pair.RefreshToken)

	uid, err := auth.GetUserIDFromToken(pair.AccessToken, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, "u1", uid)

	_, err = s.RefreshToken(context.Background(), "refresh-xyz")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestRefreshToken_Expired(t *testing.T) {
	rm := newFakeRepoManager()
	s := newUserService(t, rm)
	require.NoError(t, rm.r.Create(context.Background(), "u1", "r", fixedNow.Add(-time.Minute)))

	_, err := s.RefreshToken(context.Background(), "r")
	assert.ErrorIs(t, err, common.ErrRefreshTokenExpired)
}

func TestRefreshToken_FindErr(t *testing.T) {
	rm := newFakeRepoManager()
	rm.r.findErr = errBoom
	s := newUserService(t, rm)

	_, err := s.RefreshToken(context.Background(), "r")
	if err == nil || !regexp.MustCompile(`error searching refresh token: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped find error, got %v", err)
	}
}

func TestRefreshToken_DeleteErr(t *testing.T) {
	rm := newFakeRepoManager()
	s := newUserService(t, rm)
	require.NoError(t, rm.r.Create(context.Background(), "u1", "r", fixedNow.Add(time.Minute)))
	rm.r.delErr = errBoom

	_, err := s.RefreshToken(context.Background(), "r")
	if err == nil || !regexp.MustCompile(`error deleting refresh token: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped delete error, got %v", err)
	}
}

func TestRefreshToken_CreateErr(t *testing.T) {
	rm := newFakeRepoManager()
	s := newUserService(t, rm)
	require.NoError(t, rm.r.Create(context.Background(), "u1", "r", fixedNow.Add(time.Minute)))
	rm.r.createErr = errBoom

	_, err := s.RefreshToken(context.Background(), "r")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrorInternal))
}
