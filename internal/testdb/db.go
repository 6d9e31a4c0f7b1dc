package testdb

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/phrazzld/bucketlist-api/internal/platform/postgres"
	"github.com/phrazzld/bucketlist-api/internal/platform/sqlite"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

// TestTimeout defines a default timeout for test database operations.
const TestTimeout = 10 * time.Second

// IsIntegrationTestEnvironment returns true if the DATABASE_URL environment
// variable is set, indicating that PostgreSQL tests can be run.
func IsIntegrationTestEnvironment() bool {
	return os.Getenv("DATABASE_URL") != ""
}

// Open returns a migrated SQLite database private to t. It is closed when
// the test finishes.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	dsn := "file:" + filepath.Join(t.TempDir(), "bucketlist.db")
	db, err := sqlite.Open(ctx, dsn, 4)
	require.NoError(t, err, "failed to open sqlite test database")
	t.Cleanup(func() { _ = db.Close() })

	provider, err := sqlite.NewMigrationProvider(db)
	require.NoError(t, err)
	migrate(ctx, t, provider)

	return db
}

// OpenPostgres returns a migrated connection to DATABASE_URL with every table
// emptied, or skips the test when DATABASE_URL is not set.
func OpenPostgres(t *testing.T) *sql.DB {
	t.Helper()

	if !IsIntegrationTestEnvironment() {
		t.Skip("DATABASE_URL not set - skipping PostgreSQL integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, err := postgres.Open(ctx, os.Getenv("DATABASE_URL"), 5)
	require.NoError(t, err, "failed to connect to DATABASE_URL")
	t.Cleanup(func() { _ = db.Close() })

	provider, err := postgres.NewMigrationProvider(db)
	require.NoError(t, err)
	migrate(ctx, t, provider)

	_, err = db.ExecContext(ctx, `TRUNCATE users, bucketlists, list_items RESTART IDENTITY CASCADE`)
	require.NoError(t, err, "failed to empty tables")

	return db
}

func migrate(ctx context.Context, t *testing.T, provider *goose.Provider) {
	t.Helper()
	_, err := provider.Up(ctx)
	require.NoError(t, err, "failed to apply migrations")
}

// WithTx runs fn inside a transaction that is always rolled back afterwards.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err, "failed to begin transaction")
	defer func() { _ = tx.Rollback() }()

	fn(t, tx)
}
