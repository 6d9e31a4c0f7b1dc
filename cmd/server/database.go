package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/bucketlist-api/internal/config"
	"github.com/phrazzld/bucketlist-api/internal/platform/postgres"
	"github.com/phrazzld/bucketlist-api/internal/platform/sqlite"
	"github.com/phrazzld/bucketlist-api/internal/redact"
	"github.com/pressly/goose/v3"
)

// Supported values of database.driver.
const (
	driverPostgres = "postgres"
	driverSQLite   = "sqlite"
)

// setupAppDatabase opens and pings the configured database.
func setupAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)
	switch cfg.Database.Driver {
	case driverPostgres:
		db, err = postgres.Open(ctx, cfg.Database.URL, cfg.Database.MaxOpenConns)
	case driverSQLite:
		db, err = sqlite.Open(ctx, cfg.Database.URL, cfg.Database.MaxOpenConns)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		logger.Error("database connection failed", "error", redact.Error(err))
		return nil, fmt.Errorf("failed to connect to %s database: %w", cfg.Database.Driver, err)
	}

	logger.Info("Database connection established", "driver", cfg.Database.Driver)
	return db, nil
}

// newMigrationProvider returns the goose provider for the configured driver.
func newMigrationProvider(driver string, db *sql.DB) (*goose.Provider, error) {
	switch driver {
	case driverPostgres:
		return postgres.NewMigrationProvider(db)
	case driverSQLite:
		return sqlite.NewMigrationProvider(db)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
