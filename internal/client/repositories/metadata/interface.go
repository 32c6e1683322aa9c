// Package metadata stores small engine-level key/value facts in the local
// database: tokens, the active user, last sync time and pull cursors.
package metadata

import (
	"context"
	"time"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error

	GetTime(ctx context.Context, key string) (*time.Time, error)
	SetTime(ctx context.Context, key string, t time.Time) error
}

// Well-known keys. Per-user keys are built with UserKey.
const (
	KeyUserID       = "user_id"
	KeyUsername     = "username"
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyPasswordHash = "password_hash"
	KeyLastSyncAt   = "last_sync_at"
	KeyPullCursor   = "pull_cursor"
)

// UserKey scopes key to userID, optionally narrowed by a suffix such as a
// category name.
func UserKey(key, userID string, suffix ...string) string {
	k := key + ":" + userID
	for _, s := range suffix {
		k += ":" + s
	}
	return k
}
