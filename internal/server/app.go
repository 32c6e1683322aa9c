// Package server wires the WellSync remote store: PostgreSQL, the gRPC sync
// API and the HTTP health endpoints.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/wellsync/internal/logging"
	"github.com/dmitrijs2005/wellsync/internal/server/config"
	gs "github.com/dmitrijs2005/wellsync/internal/server/grpc"
	"github.com/dmitrijs2005/wellsync/internal/server/httpapi"
	"github.com/dmitrijs2005/wellsync/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/wellsync/internal/server/services"
	"golang.org/x/sync/errgroup"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	db        *sql.DB
	grpc      *gs.GRPCServer
	http      *httpapi.HTTPServer
	readiness *httpapi.Readiness
}

// NewApp connects to the database, applies migrations and builds both
// servers. Nothing listens until Run.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	return newApp(c, logger, db, rm), nil
}

func newApp(c *config.Config, logger logging.Logger, db *sql.DB, rm repomanager.RepositoryManager) *App {
	us := services.NewUserService(db, rm, c)
	rs := services.NewRecordService(db, rm)
	readiness := &httpapi.Readiness{}

	return &App{
		config:    c,
		logger:    logger,
		db:        db,
		grpc:      gs.NewGRPCServer(c.EndpointAddrGRPC, logger, us, rs, c.SecretKey),
		http:      httpapi.NewHTTPServer(c.EndpointAddrHTTP, logger, httpapi.NewRouter(db, readiness)),
		readiness: readiness,
	}
}

// Run serves until ctx is cancelled or either server fails, then closes
// the database.
func (app *App) Run(ctx context.Context) error {
	defer func() {
		if err := app.db.Close(); err != nil {
			app.logger.Error(ctx, "db close failed", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting app...")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.grpc.Run(ctx) })
	g.Go(func() error { return app.http.Run(ctx) })
	app.readiness.Set(true)

	err := g.Wait()
	app.readiness.Set(false)
	app.logger.Info(ctx, "App stopped")
	return err
}
