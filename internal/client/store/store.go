// Package store is the embedded, offline-first store of the sync engine.
//
// Every user-visible creation is written together with its outbox entry in
// one transaction and never touches the network. Delivery state changes
// (claim, failure, ack) and pulled rows flow back through the same store,
// and each committed mutation is announced on the reactive bridge.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/wellsync/internal/client/bridge"
	"github.com/dmitrijs2005/wellsync/internal/client/migrations"
	"github.com/dmitrijs2005/wellsync/internal/client/models"
	"github.com/dmitrijs2005/wellsync/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/wellsync/internal/client/repositories/syncstate"
	"github.com/dmitrijs2005/wellsync/internal/common"
	"github.com/dmitrijs2005/wellsync/internal/dbx"
	"github.com/dmitrijs2005/wellsync/internal/logging"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	_ "modernc.org/sqlite"
)

var syncableEntities = []models.EntityType{
	models.EntityMood,
	models.EntityProgress,
	models.EntitySession,
	models.EntityMessage,
}

type Store struct {
	db     *sql.DB
	bridge *bridge.Bridge
	logger logging.Logger
	now    func() time.Time

	// writeMu serialises mutations; the single connection serialises the rest.
	writeMu sync.Mutex

	userMu sync.RWMutex
	userID string
}

type Option func(*Store)

// WithClock overrides the time source used for record timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// Open opens (creating if needed) the SQLite database at dsn and applies
// migrations.
func Open(ctx context.Context, dsn string, b *bridge.Bridge, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, common.NewStorageError("open", err)
	}
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		`PRAGMA journal_mode = WAL`,
		`PRAGMA busy_timeout = 5000`,
		`PRAGMA foreign_keys = ON`,
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, common.NewStorageError("configure", fmt.Errorf("%s: %w", pragma, err))
		}
	}

	if err := migrations.Up(ctx, db); err != nil {
		_ = db.Close()
		return nil, common.NewStorageError("migrate", err)
	}
	return New(db, b, opts...), nil
}

// New wraps an already migrated database.
func New(db *sql.DB, b *bridge.Bridge, opts ...Option) *Store {
	s := &Store{db: db, bridge: b, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	if s.logger == nil {
		s.logger = logging.NewDiscardLogger()
	}
	s.logger = s.logger.With("module", "store")
	if s.bridge == nil {
		s.bridge = bridge.New(s.logger)
	}
	return s
}

func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying database to services that keep their own tables
// or metadata keys, such as the auth service.
func (s *Store) DB() *sql.DB { return s.db }

// Bridge returns the change notification channel of the store.
func (s *Store) Bridge() *bridge.Bridge { return s.bridge }

// Metadata exposes the key/value table for engine settings such as tokens.
func (s *Store) Metadata() metadata.Repository {
	return metadata.NewSQLiteRepository(s.db)
}

// Initialize makes userID the active user. Records left in syncing by an
// interrupted pass are returned to pending. Calling it again for the active
// user is a no-op; a different user replaces the active one.
func (s *Store) Initialize(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: user id is required", common.ErrorValidation)
	}

	s.userMu.Lock()
	current := s.userID
	s.userMu.Unlock()
	if current == userID {
		return nil
	}

	s.writeMu.Lock()
	var recovered int64
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, e := range syncableEntities {
			repo, err := syncstate.NewSQLiteRepository(tx, e)
			if err != nil {
				return err
			}
			n, err := repo.ResetSyncing(ctx, userID, s.now())
			if err != nil {
				return err
			}
			recovered += n
		}
		return metadata.NewSQLiteRepository(tx).Set(ctx, metadata.KeyUserID, []byte(userID))
	})
	s.writeMu.Unlock()
	if err != nil {
		return common.NewStorageError("initialize", err)
	}

	s.userMu.Lock()
	s.userID = userID
	s.userMu.Unlock()

	if recovered > 0 {
		s.logger.Warn(ctx, "recovered interrupted deliveries", "user_id", userID, "count", recovered)
		s.bridge.Notify()
	}
	s.logger.Info(ctx, "store initialized", "user_id", userID)
	return nil
}

// Cleanup detaches the active user. It is safe to call repeatedly.
func (s *Store) Cleanup() {
	s.userMu.Lock()
	defer s.userMu.Unlock()
	s.userID = ""
}

// UserID returns the active user or common.ErrNotInitialized.
func (s *Store) UserID() (string, error) {
	s.userMu.RLock()
	defer s.userMu.RUnlock()
	if s.userID == "" {
		return "", common.ErrNotInitialized
	}
	return s.userID, nil
}

// write runs fn in a transaction under the write lock. Validation and
// reconciliation errors pass through; anything else becomes a StorageError.
// The bridge is notified after a successful commit when fn reports a change.
func (s *Store) write(ctx context.Context, op string, fn func(ctx context.Context, tx dbx.DBTX) (bool, error)) error {
	var changed bool
	s.writeMu.Lock()
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		changed, err = fn(ctx, tx)
		return err
	})
	s.writeMu.Unlock()

	if err != nil {
		return classify(op, err)
	}
	if changed {
		s.bridge.Notify()
	}
	return nil
}

func classify(op string, err error) error {
	var re *common.ReconciliationError
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrorValidation), errors.Is(err, common.ErrNotInitialized), errors.As(err, &re):
		return err
	default:
		return common.NewStorageError(op, err)
	}
}

func newLocalID() string { return ulid.Make().String() }

func newRequestID() string { return uuid.NewString() }
