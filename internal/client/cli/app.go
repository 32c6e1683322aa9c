package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/wellsync/internal/client/client"
	"github.com/dmitrijs2005/wellsync/internal/client/config"
	"github.com/dmitrijs2005/wellsync/internal/client/models"
	"github.com/dmitrijs2005/wellsync/internal/client/netmon"
	"github.com/dmitrijs2005/wellsync/internal/client/services"
	"github.com/dmitrijs2005/wellsync/internal/client/store"
	"github.com/dmitrijs2005/wellsync/internal/client/syncmanager"
	"github.com/dmitrijs2005/wellsync/internal/filex"
	"github.com/dmitrijs2005/wellsync/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// syncEngine is the part of syncmanager.Manager the shell drives.
type syncEngine interface {
	Initialize(ctx context.Context, userID string) error
	Cleanup()
	SyncAll(ctx context.Context) (syncmanager.Result, error)
	GetSyncStatus(ctx context.Context) (models.SyncStatusReport, error)
}

// network is the part of netmon.Monitor the shell drives.
type network interface {
	State() netmon.State
	SetConnected(connected bool)
	Watch(ctx context.Context)
}

type App struct {
	config      *config.Config
	authService services.AuthService
	store       *store.Store
	engine      syncEngine
	network     network
	logger      logging.Logger

	userID   string
	userName string

	// Pending count shown in the prompt, refreshed after bridge notifications.
	countsFresh atomic.Bool
	pending     int
	pendingUser string

	reader *bufio.Reader
	out    io.Writer
	now    func() time.Time
}

// NewApp opens the local database and connects the engine to the remote
// store at c.ServerEndpointAddr. Nothing is sent over the network until a
// user logs in.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if _, err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		logger.Error(ctx, "error preparing data directory", "error", err)
		return nil, err
	}

	st, err := store.Open(ctx, c.DatabasePath, nil, store.WithLogger(logger))
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	a := &App{
		config: c,
		store:  st,
		logger: logger.With("module", "cli"),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		now:    time.Now,
	}

	apiClient, err := client.New(c.ServerEndpointAddr,
		client.WithRequestTimeout(c.RequestTimeout),
		client.WithTokenListener(a.persistTokens),
	)
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	a.authService = services.NewAuthService(apiClient, st.DB())

	monitor := netmon.New(apiClient, c.OnlineCheckInterval, logger)
	a.network = monitor
	a.engine = syncmanager.New(st, apiClient, monitor,
		syncmanager.WithLogger(logger),
		syncmanager.WithSyncInterval(c.SyncInterval),
		syncmanager.WithCatalog(c.CatalogTTL, nil),
	)
	return a, nil
}

// persistTokens is the client's token listener. Refreshes happen inside sync
// passes, so failures are only logged.
func (a *App) persistTokens(t client.Tokens) {
	if a.authService == nil {
		return
	}
	if err := a.authService.SaveTokens(context.Background(), t); err != nil {
		a.logger.Warn(context.Background(), "failed to persist refreshed tokens", "error", err)
	}
}

func (a *App) mode() Mode {
	if a.network == nil {
		return ""
	}
	if a.network.State().Online() {
		return ModeOnline
	}
	return ModeOffline
}

// Run starts the shell and releases every resource once it returns.
func (a *App) Run(ctx context.Context) {
	defer a.close(ctx)
	a.Root(ctx)
}

func (a *App) close(ctx context.Context) {
	if a.engine != nil {
		a.engine.Cleanup()
	}
	if a.authService != nil {
		if err := a.authService.Close(ctx); err != nil {
			a.logger.Warn(ctx, "failed to close client", "error", err)
		}
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.logger.Warn(ctx, "failed to close store", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.userID != ""
}
