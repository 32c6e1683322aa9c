// Package syncmanager coordinates delivery of the local outbox to the remote
// store and the import of authoritative server rows.
//
// A pass runs per category: push (claim, create remotely, ack or fail) then
// pull (fetch, import). Categories run concurrently and independently; a
// category already in a pass rejects a second one with
// common.ErrSyncInProgress. Passes are triggered at Initialize, on every
// offline to online transition of the network monitor and on a timer.
package syncmanager

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/wellsync/internal/client/models"
	"github.com/dmitrijs2005/wellsync/internal/client/netmon"
	"github.com/dmitrijs2005/wellsync/internal/client/store"
	"github.com/dmitrijs2005/wellsync/internal/logging"
	"github.com/dmitrijs2005/wellsync/internal/ttlcache"
	"golang.org/x/sync/singleflight"
)

// Remote is the subset of the transport used by sync passes.
type Remote interface {
	CreateMood(ctx context.Context, m models.Mood) (string, error)
	CreateProgress(ctx context.Context, p models.ExerciseProgress) (string, error)
	CreateSession(ctx context.Context, s models.ChatSession) (string, error)
	CreateMessage(ctx context.Context, sessionServerID string, m models.ChatMessage) (string, error)

	GetMoods(ctx context.Context, since *time.Time) ([]models.Mood, error)
	GetExercisesWithProgress(ctx context.Context) ([]models.Exercise, []models.ExerciseProgress, error)
	GetSessions(ctx context.Context, chatType models.ChatType) ([]models.ChatSession, error)
	GetMessages(ctx context.Context, sessionServerID string) ([]models.ChatMessage, error)
}

// State is the phase of a category pass.
type State int32

const (
	StateIdle State = iota
	StatePushing
	StatePulling
)

func (s State) String() string {
	switch s {
	case StatePushing:
		return "pushing"
	case StatePulling:
		return "pulling"
	}
	return "idle"
}

const (
	DefaultSyncInterval = time.Minute
	DefaultCatalogTTL   = 15 * time.Minute
)

type catalog struct {
	exercises []models.Exercise
	progress  []models.ExerciseProgress
}

type Manager struct {
	store   *store.Store
	remote  Remote
	monitor *netmon.Monitor
	logger  logging.Logger
	now     func() time.Time

	interval time.Duration

	states map[models.Category]*atomic.Int32

	catalog       *ttlcache.Cache[string, catalog]
	catalogFlight singleflight.Group

	mu          sync.Mutex
	active      string
	stop        context.CancelFunc
	unsubscribe func()
	running     sync.WaitGroup
}

type Option func(*Manager)

func WithLogger(l logging.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithSyncInterval sets the period of background passes; zero disables the
// timer.
func WithSyncInterval(d time.Duration) Option {
	return func(m *Manager) { m.interval = d }
}

// WithCatalog replaces the cache holding the exercises response.
func WithCatalog(ttl time.Duration, clock ttlcache.Clock) Option {
	return func(m *Manager) { m.catalog = ttlcache.New[string, catalog](ttl, clock) }
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

func New(st *store.Store, remote Remote, monitor *netmon.Monitor, opts ...Option) *Manager {
	m := &Manager{
		store:    st,
		remote:   remote,
		monitor:  monitor,
		now:      time.Now,
		interval: DefaultSyncInterval,
		states:   make(map[models.Category]*atomic.Int32, len(models.Categories)),
	}
	for _, c := range models.Categories {
		m.states[c] = new(atomic.Int32)
	}
	for _, o := range opts {
		o(m)
	}
	if m.logger == nil {
		m.logger = logging.NewDiscardLogger()
	}
	m.logger = m.logger.With("module", "syncmanager")
	if m.catalog == nil {
		m.catalog = ttlcache.New[string, catalog](DefaultCatalogTTL, nil)
	}
	return m
}

// State reports the phase of category's pass.
func (m *Manager) State(c models.Category) State {
	st, ok := m.states[c]
	if !ok {
		return StateIdle
	}
	return State(st.Load())
}

// Initialize attaches userID to the store, subscribes to connectivity
// changes, starts the periodic timer and runs an initial pass in the
// background. Repeating it for the active user is a no-op.
func (m *Manager) Initialize(ctx context.Context, userID string) error {
	m.mu.Lock()
	if m.active == userID && m.stop != nil {
		m.mu.Unlock()
		return nil
	}
	m.mu.Unlock()
	m.Cleanup()

	if err := m.store.Initialize(ctx, userID); err != nil {
		return err
	}

	loopCtx, stop := context.WithCancel(context.WithoutCancel(ctx))
	m.mu.Lock()
	m.active = userID
	m.stop = stop
	m.unsubscribe = m.monitor.OnOnline(func() {
		m.logger.Info(loopCtx, "back online, syncing")
		m.background(loopCtx)
	})
	if m.interval > 0 {
		m.running.Add(1)
		go m.loop(loopCtx)
	}
	m.mu.Unlock()

	m.background(loopCtx)

	m.logger.Info(ctx, "sync manager initialized", "user_id", userID)
	return nil
}

// Cleanup stops the timer and the connectivity subscription, waits for
// passes in flight and detaches the store user. It is safe to call
// repeatedly.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	if m.stop != nil {
		m.stop()
	}
	unsubscribe := m.unsubscribe
	m.stop, m.unsubscribe, m.active = nil, nil, ""
	m.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	m.running.Wait()
	m.catalog.Purge()
	m.store.Cleanup()
}

func (m *Manager) loop(ctx context.Context) {
	defer m.running.Done()
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.runPass(ctx)
		}
	}
}

// background runs a pass without blocking the caller. The pass itself is
// not cancelled by Cleanup; Cleanup waits for it instead.
func (m *Manager) background(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ctx.Err() != nil {
		return
	}
	m.running.Add(1)
	go func() {
		defer m.running.Done()
		m.runPass(ctx)
	}()
}

func (m *Manager) runPass(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	res, err := m.SyncAll(context.WithoutCancel(ctx))
	if err != nil {
		m.logger.Warn(ctx, "sync pass not run", "error", err)
		return
	}
	if !res.Skipped {
		m.logger.Debug(ctx, "sync pass done", "processed", res.Processed, "errors", res.Errors)
	}
}

// GetSyncStatus re-derives the status surface from the store.
func (m *Manager) GetSyncStatus(ctx context.Context) (models.SyncStatusReport, error) {
	counts, err := m.store.Counters(ctx)
	if err != nil {
		return models.SyncStatusReport{}, err
	}
	last, err := m.store.LastSyncAt(ctx)
	if err != nil {
		return models.SyncStatusReport{}, err
	}

	r := models.SyncStatusReport{
		PendingCounts: make(map[models.Category]int, len(counts)),
		FailedCounts:  make(map[models.Category]int, len(counts)),
		LastSyncAt:    last,
	}
	for c, n := range counts {
		r.PendingCounts[c] = n.Pending
		r.FailedCounts[c] = n.Failed
	}
	return r, nil
}
