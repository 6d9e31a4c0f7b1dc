package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	apimw "github.com/phrazzld/bucketlist-api/internal/api/middleware"
	"github.com/phrazzld/bucketlist-api/internal/config"
	"github.com/phrazzld/bucketlist-api/internal/platform/postgres"
	"github.com/phrazzld/bucketlist-api/internal/platform/sqlite"
	"github.com/phrazzld/bucketlist-api/internal/service"
	"github.com/phrazzld/bucketlist-api/internal/service/auth"
	"github.com/phrazzld/bucketlist-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores
	userStore       store.UserStore
	bucketListStore store.BucketListStore
	itemStore       store.ItemStore

	// Services
	jwtService        auth.JWTService
	authenticator     *auth.Authenticator
	userService       service.UserService
	bucketListService service.BucketListService

	// metrics is nil when metrics.enabled is false.
	metrics *apimw.Metrics
}

// newApplication creates a new application instance with all dependencies initialized.
// The database connection must already be established and migrated.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	switch cfg.Database.Driver {
	case driverPostgres:
		app.userStore = postgres.NewPostgresUserStore(db, cfg.Auth.BCryptCost, logger)
		app.bucketListStore = postgres.NewPostgresBucketListStore(db, logger)
		app.itemStore = postgres.NewPostgresItemStore(db, logger)
	case driverSQLite:
		app.userStore = sqlite.NewUserStore(db, cfg.Auth.BCryptCost, logger)
		app.bucketListStore = sqlite.NewBucketListStore(db, logger)
		app.itemStore = sqlite.NewItemStore(db, logger)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	app.authenticator = auth.NewAuthenticator(app.userStore, auth.NewBcryptVerifier())
	app.userService = service.NewUserService(app.userStore, db, logger)

	app.bucketListService, err = service.NewBucketListService(
		app.bucketListStore,
		app.itemStore,
		db,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create bucketlist service: %w", err)
	}

	if cfg.Metrics.Enabled {
		app.metrics = apimw.NewMetrics()
	}

	return app, nil
}

// Run serves HTTP until ctx is canceled, then releases resources.
func (app *application) Run(ctx context.Context) error {
	defer app.cleanup()
	return app.startHTTPServer(ctx, app.setupRouter())
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database connection", "error", err)
		return
	}
	app.logger.Info("Database connection closed")
}
