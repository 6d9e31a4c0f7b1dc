package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/phrazzld/bucketlist-api/internal/domain"
	"github.com/phrazzld/bucketlist-api/internal/platform/logger"
	"github.com/phrazzld/bucketlist-api/internal/redact"
	"github.com/phrazzld/bucketlist-api/internal/store"
)

// PostgresItemStore implements the store.ItemStore interface
// using a PostgreSQL database as the storage backend.
type PostgresItemStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresItemStore creates a new PostgreSQL implementation of the
// ItemStore interface. If logger is nil, a default logger will be used.
func NewPostgresItemStore(db store.DBTX, logger *slog.Logger) *PostgresItemStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresItemStore{
		db:     db,
		logger: logger.With(slog.String("component", "item_store")),
	}
}

// Ensure PostgresItemStore implements store.ItemStore interface
var _ store.ItemStore = (*PostgresItemStore)(nil)

// WithTx implements store.ItemStore.WithTx
func (s *PostgresItemStore) WithTx(tx *sql.Tx) store.ItemStore {
	return &PostgresItemStore{db: tx, logger: s.logger}
}

// Create implements store.ItemStore.Create
// Returns store.ErrInvalidEntity if the bucketlist does not exist.
func (s *PostgresItemStore) Create(ctx context.Context, item *domain.ListItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO list_items (name, bucketlist_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query, item.Name, item.BucketListID, item.CreatedAt, item.UpdatedAt).
		Scan(&item.ID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to create bucketlist item",
			slog.String("error", redact.Error(err)),
			slog.Int64("bucketlist_id", item.BucketListID))
		return store.NewStoreError("bucketlist item", "create", "insert failed", mapError(err))
	}
	return nil
}

// Update implements store.ItemStore.Update
func (s *PostgresItemStore) Update(ctx context.Context, item *domain.ListItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE list_items
		SET name = $1, updated_at = $2
		WHERE id = $3 AND bucketlist_id = $4
	`
	result, err := s.db.ExecContext(ctx, query, item.Name, item.UpdatedAt, item.ID, item.BucketListID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to update bucketlist item",
			slog.String("error", redact.Error(err)),
			slog.Int64("item_id", item.ID))
		return store.NewStoreError("bucketlist item", "update", "update failed", mapError(err))
	}
	return checkRowsAffected(result, store.ErrItemNotFound)
}

// Delete implements store.ItemStore.Delete
func (s *PostgresItemStore) Delete(ctx context.Context, bucketListID, id int64) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM list_items WHERE id = $1 AND bucketlist_id = $2`, id, bucketListID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to delete bucketlist item",
			slog.String("error", redact.Error(err)),
			slog.Int64("item_id", id))
		return store.NewStoreError("bucketlist item", "delete", "delete failed", mapError(err))
	}
	return checkRowsAffected(result, store.ErrItemNotFound)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(row scanner) (domain.ListItem, error) {
	var item domain.ListItem
	err := row.Scan(&item.ID, &item.Name, &item.BucketListID, &item.CreatedAt, &item.UpdatedAt)
	return item, err
}
