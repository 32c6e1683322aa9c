// Package services contains application services for the WellSync client.
// This file defines the authentication service: online/offline login,
// register, token persistence and housekeeping of local auth metadata.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/wellsync/internal/client/client"
	"github.com/dmitrijs2005/wellsync/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/wellsync/internal/dbx"
	"golang.org/x/crypto/bcrypt"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - OnlineLogin: authenticate against the server, install the tokens on the
//     client and persist what offline login needs. Returns the user id.
//   - OfflineLogin: verify credentials against the locally cached hash and
//     restore the last known tokens so the next sync can use them.
//   - Register: create a new user on the server.
//   - SaveTokens: persist a refreshed token pair.
//   - ClearOfflineData: wipe locally cached auth metadata.
type AuthService interface {
	OfflineLogin(ctx context.Context, username string, password []byte) (string, error)
	OnlineLogin(ctx context.Context, username string, password []byte) (string, error)
	Register(ctx context.Context, username string, password []byte) error
	SaveTokens(ctx context.Context, t client.Tokens) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
	ClearOfflineData(ctx context.Context) error
}

var authKeys = []string{
	metadata.KeyUsername,
	metadata.KeyUserID,
	metadata.KeyPasswordHash,
	metadata.KeyAccessToken,
	metadata.KeyRefreshToken,
}

type authService struct {
	client client.Client
	db     *sql.DB
	cost   int
}

// NewAuthService constructs an AuthService bound to the given API client and DB.
func NewAuthService(client client.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db, cost: bcrypt.DefaultCost}
}

func (a *authService) getMetadataRepo() metadata.Repository {
	return metadata.NewSQLiteRepository(a.db)
}

// OfflineLogin checks password against the bcrypt hash saved by the last
// online login of the same user. Returns client.ErrLocalDataNotAvailable when
// nothing is cached and client.ErrUnauthorized on mismatch.
func (a *authService) OfflineLogin(ctx context.Context, username string, password []byte) (string, error) {
	repo := a.getMetadataRepo()

	values := make(map[string][]byte, len(authKeys))
	for _, k := range authKeys {
		v, err := repo.Get(ctx, k)
		if err != nil {
			return "", err
		}
		values[k] = v
	}

	if values[metadata.KeyUsername] == nil || values[metadata.KeyPasswordHash] == nil || values[metadata.KeyUserID] == nil {
		return "", client.ErrLocalDataNotAvailable
	}
	if string(values[metadata.KeyUsername]) != username {
		return "", client.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword(values[metadata.KeyPasswordHash], password); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", client.ErrUnauthorized
		}
		return "", err
	}

	userID := string(values[metadata.KeyUserID])
	a.client.SetTokens(client.Tokens{
		UserID:       userID,
		AccessToken:  string(values[metadata.KeyAccessToken]),
		RefreshToken: string(values[metadata.KeyRefreshToken]),
	})
	return userID, nil
}

// OnlineLogin authenticates against the server and saves offline metadata
// (username, password hash, tokens).
func (a *authService) OnlineLogin(ctx context.Context, username string, password []byte) (string, error) {
	tokens, err := a.client.Login(ctx, username, string(password))
	if err != nil {
		return "", fmt.Errorf("login error: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword(password, a.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	if err := a.saveOfflineData(ctx, username, hash, tokens); err != nil {
		return "", fmt.Errorf("offline data saving error: %w", err)
	}
	return tokens.UserID, nil
}

func (a *authService) saveOfflineData(ctx context.Context, username string, hash []byte, t client.Tokens) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		for k, v := range map[string][]byte{
			metadata.KeyUsername:     []byte(username),
			metadata.KeyPasswordHash: hash,
			metadata.KeyUserID:       []byte(t.UserID),
			metadata.KeyAccessToken:  []byte(t.AccessToken),
			metadata.KeyRefreshToken: []byte(t.RefreshToken),
		} {
			if err := repo.Set(ctx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

// SaveTokens stores a refreshed pair. It is registered as the client's token
// listener, so tokens rotated during a sync survive a restart.
func (a *authService) SaveTokens(ctx context.Context, t client.Tokens) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, metadata.KeyAccessToken, []byte(t.AccessToken)); err != nil {
			return err
		}
		return repo.Set(ctx, metadata.KeyRefreshToken, []byte(t.RefreshToken))
	})
}

func (a *authService) Register(ctx context.Context, username string, password []byte) error {
	if _, err := a.client.Register(ctx, username, string(password)); err != nil {
		return err
	}
	return nil
}

func (a *authService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

// ClearOfflineData forgets the cached credentials and drops the in-memory
// tokens. Records, cursors and the outbox stay; they are scoped by user id.
func (a *authService) ClearOfflineData(ctx context.Context) error {
	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		for _, k := range authKeys {
			if err := repo.Delete(ctx, k); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	a.client.SetTokens(client.Tokens{})
	return nil
}
