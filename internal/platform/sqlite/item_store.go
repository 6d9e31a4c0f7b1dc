package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/bucketlist-api/internal/domain"
	"github.com/phrazzld/bucketlist-api/internal/platform/logger"
	"github.com/phrazzld/bucketlist-api/internal/redact"
	"github.com/phrazzld/bucketlist-api/internal/store"
)

const itemColumns = `id, name, bucketlist_id, created_at, updated_at`

// ItemStore implements store.ItemStore on SQLite.
type ItemStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewItemStore creates a SQLite ItemStore.
func NewItemStore(db store.DBTX, logger *slog.Logger) *ItemStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ItemStore{
		db:     db,
		logger: logger.With(slog.String("component", "item_store")),
	}
}

var _ store.ItemStore = (*ItemStore)(nil)

// WithTx implements store.ItemStore.WithTx
func (s *ItemStore) WithTx(tx *sql.Tx) store.ItemStore {
	return &ItemStore{db: tx, logger: s.logger}
}

// Create implements store.ItemStore.Create
func (s *ItemStore) Create(ctx context.Context, item *domain.ListItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO list_items (name, bucketlist_id, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		item.Name, item.BucketListID, item.CreatedAt, item.UpdatedAt)
	if err != nil {
		s.logError(ctx, "failed to create bucketlist item", err)
		return store.NewStoreError("bucketlist item", "create", "insert failed", mapError(err))
	}
	if item.ID, err = result.LastInsertId(); err != nil {
		return store.NewStoreError("bucketlist item", "create", "reading id failed", err)
	}
	return nil
}

// Update implements store.ItemStore.Update
func (s *ItemStore) Update(ctx context.Context, item *domain.ListItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE list_items SET name = ?, updated_at = ? WHERE id = ? AND bucketlist_id = ?`,
		item.Name, item.UpdatedAt, item.ID, item.BucketListID)
	if err != nil {
		s.logError(ctx, "failed to update bucketlist item", err)
		return store.NewStoreError("bucketlist item", "update", "update failed", mapError(err))
	}
	return checkRowsAffected(result, store.ErrItemNotFound)
}

// Delete implements store.ItemStore.Delete
func (s *ItemStore) Delete(ctx context.Context, bucketListID, id int64) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM list_items WHERE id = ? AND bucketlist_id = ?`, id, bucketListID)
	if err != nil {
		s.logError(ctx, "failed to delete bucketlist item", err)
		return store.NewStoreError("bucketlist item", "delete", "delete failed", mapError(err))
	}
	return checkRowsAffected(result, store.ErrItemNotFound)
}

func (s *ItemStore) logError(ctx context.Context, msg string, err error) {
	logger.FromContextOrDefault(ctx, s.logger).Error(msg, slog.String("error", redact.Error(err)))
}

func queryItems(ctx context.Context, db store.DBTX, query string, args ...any) ([]domain.ListItem, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	items := []domain.ListItem{}
	for rows.Next() {
		var item domain.ListItem
		if err := rows.Scan(&item.ID, &item.Name, &item.BucketListID, &item.CreatedAt, &item.UpdatedAt); err != nil {
			_ = rows.Close()
			return nil, err
		}
		items = append(items, item)
	}
	return items, errors.Join(rows.Err(), rows.Close())
}
