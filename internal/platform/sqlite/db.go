package sqlite

import (
	"context"
	"database/sql"
	sqldriver "database/sql/driver"
	"fmt"
	"strings"
	"time"

	driver "modernc.org/sqlite" // also registers the "sqlite" database/sql driver
)

// DriverName is the database/sql driver used for SQLite connections.
const DriverName = "sqlite"

// Connection options applied to every pooled connection. Transactions begin
// IMMEDIATE so a read-then-write never has to upgrade its lock; concurrent
// writers queue on busy_timeout instead of failing with SQLITE_BUSY.
const dsnOptions = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite&_txlock=immediate"

// foldFunc is the SQL name of a Unicode-aware lower(). SQLite's built-in
// lower() only folds ASCII letters.
const foldFunc = "unicode_lower"

func init() {
	driver.MustRegisterDeterministicScalarFunction(foldFunc, 1, unicodeLower)
}

func unicodeLower(_ *driver.FunctionContext, args []sqldriver.Value) (sqldriver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return nil, fmt.Errorf("%s: unsupported argument type %T", foldFunc, v)
	}
}

// Open opens the SQLite database described by dsn (a file path or file: URI)
// with foreign keys enforced. In-memory databases exist per connection, so
// their pool is pinned to a single connection that never expires.
func Open(ctx context.Context, dsn string, maxOpenConns int) (*sql.DB, error) {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}

	db, err := sql.Open(DriverName, dsn+sep+dsnOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if strings.Contains(dsn, ":memory:") || maxOpenConns <= 0 {
		maxOpenConns = 1
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxOpenConns)
	db.SetConnMaxLifetime(0)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
