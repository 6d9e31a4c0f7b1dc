package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/bucketlist-api/internal/config"
	"github.com/pressly/goose/v3"
)

// Supported -migrate commands.
const (
	migrateUp     = "up"
	migrateDown   = "down"
	migrateStatus = "status"
)

// handleMigrations executes a migration command against db.
func handleMigrations(ctx context.Context, cfg *config.Config, db *sql.DB, command string, logger *slog.Logger) error {
	provider, err := newMigrationProvider(cfg.Database.Driver, db)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	log := logger.With("component", "migrations", "command", command)

	switch command {
	case migrateUp:
		results, err := provider.Up(ctx)
		for _, res := range results {
			logResult(log, res)
		}
		if err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
		if len(results) == 0 {
			log.Info("no pending migrations")
		}

	case migrateDown:
		res, err := provider.Down(ctx)
		if res != nil {
			logResult(log, res)
		}
		if err != nil {
			return fmt.Errorf("failed to roll back migration: %w", err)
		}

	case migrateStatus:
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("failed to read migration status: %w", err)
		}
		for _, st := range statuses {
			log.Info("migration",
				"version", st.Source.Version,
				"path", st.Source.Path,
				"state", string(st.State),
				"applied_at", st.AppliedAt)
		}

	default:
		return fmt.Errorf("unknown migration command %q (want up, down or status)", command)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to read database version: %w", err)
	}
	log.Info("migrations complete", "version", version)
	return nil
}

func logResult(log *slog.Logger, res *goose.MigrationResult) {
	if res.Error != nil {
		log.Error("migration failed",
			"version", res.Source.Version,
			"path", res.Source.Path,
			"error", res.Error)
		return
	}
	log.Info("migration applied",
		"version", res.Source.Version,
		"path", res.Source.Path,
		"direction", res.Direction,
		"duration", res.Duration)
}
