package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/phrazzld/bucketlist-api/internal/domain"
	"github.com/phrazzld/bucketlist-api/internal/platform/logger"
	"github.com/phrazzld/bucketlist-api/internal/redact"
	"github.com/phrazzld/bucketlist-api/internal/store"
)

const bucketListColumns = `id, name, owner_id, created_at, updated_at`

// BucketListStore implements store.BucketListStore on SQLite.
type BucketListStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewBucketListStore creates a SQLite BucketListStore.
func NewBucketListStore(db store.DBTX, logger *slog.Logger) *BucketListStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &BucketListStore{
		db:     db,
		logger: logger.With(slog.String("component", "bucketlist_store")),
	}
}

var _ store.BucketListStore = (*BucketListStore)(nil)

// WithTx implements store.BucketListStore.WithTx
func (s *BucketListStore) WithTx(tx *sql.Tx) store.BucketListStore {
	return &BucketListStore{db: tx, logger: s.logger}
}

// Create implements store.BucketListStore.Create
func (s *BucketListStore) Create(ctx context.Context, list *domain.BucketList) error {
	if err := list.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO bucketlists (name, owner_id, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		list.Name, list.OwnerID, list.CreatedAt, list.UpdatedAt,
	)
	if err != nil {
		s.logError(ctx, "failed to create bucketlist", err)
		return store.NewStoreError("bucketlist", "create", "insert failed", mapError(err))
	}
	if list.ID, err = result.LastInsertId(); err != nil {
		return store.NewStoreError("bucketlist", "create", "reading id failed", err)
	}
	return nil
}

// FindByOwnerAndID implements store.BucketListStore.FindByOwnerAndID
func (s *BucketListStore) FindByOwnerAndID(ctx context.Context, ownerID, id int64) (*domain.BucketList, error) {
	lists, err := s.query(ctx, "get",
		`SELECT `+bucketListColumns+` FROM bucketlists WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return nil, err
	}
	if len(lists) == 0 {
		return nil, store.ErrBucketListNotFound
	}
	return lists[0], nil
}

// ListByOwner implements store.BucketListStore.ListByOwner
func (s *BucketListStore) ListByOwner(
	ctx context.Context,
	ownerID int64,
	page store.Page,
) ([]*domain.BucketList, int, error) {
	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bucketlists WHERE owner_id = ?`, ownerID,
	).Scan(&total); err != nil {
		s.logError(ctx, "failed to count bucketlists", err)
		return nil, 0, store.NewStoreError("bucketlist", "list", "count failed", mapError(err))
	}

	lists, err := s.query(ctx, "list",
		`SELECT `+bucketListColumns+` FROM bucketlists WHERE owner_id = ? ORDER BY id LIMIT ? OFFSET ?`,
		ownerID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, err
	}
	return lists, total, nil
}

// SearchByOwnerAndName implements store.BucketListStore.SearchByOwnerAndName
func (s *BucketListStore) SearchByOwnerAndName(
	ctx context.Context,
	ownerID int64,
	query string,
) ([]*domain.BucketList, error) {
	return s.query(ctx, "search",
		`SELECT `+bucketListColumns+` FROM bucketlists
		 WHERE owner_id = ? AND `+foldFunc+`(name) LIKE `+foldFunc+`(?) ESCAPE '\'
		 ORDER BY id`,
		ownerID, store.ContainsPattern(query))
}

// Update implements store.BucketListStore.Update
func (s *BucketListStore) Update(ctx context.Context, list *domain.BucketList) error {
	if err := list.Validate(); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE bucketlists SET name = ?, updated_at = ? WHERE id = ? AND owner_id = ?`,
		list.Name, list.UpdatedAt, list.ID, list.OwnerID)
	if err != nil {
		s.logError(ctx, "failed to update bucketlist", err)
		return store.NewStoreError("bucketlist", "update", "update failed", mapError(err))
	}
	return checkRowsAffected(result, store.ErrBucketListNotFound)
}

// DeleteByOwnerAndID implements store.BucketListStore.DeleteByOwnerAndID
func (s *BucketListStore) DeleteByOwnerAndID(ctx context.Context, ownerID, id int64) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM bucketlists WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		s.logError(ctx, "failed to delete bucketlist", err)
		return store.NewStoreError("bucketlist", "delete", "delete failed", mapError(err))
	}
	return checkRowsAffected(result, store.ErrBucketListNotFound)
}

func (s *BucketListStore) logError(ctx context.Context, msg string, err error) {
	logger.FromContextOrDefault(ctx, s.logger).Error(msg, slog.String("error", redact.Error(err)))
}

// query runs a bucketlist SELECT and attaches the items of every row.
func (s *BucketListStore) query(ctx context.Context, operation, query string, args ...any) ([]*domain.BucketList, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logError(ctx, "failed to query bucketlists", err)
		return nil, store.NewStoreError("bucketlist", operation, "query failed", mapError(err))
	}

	lists := []*domain.BucketList{}
	for rows.Next() {
		list := &domain.BucketList{Items: []domain.ListItem{}}
		if err := rows.Scan(&list.ID, &list.Name, &list.OwnerID, &list.CreatedAt, &list.UpdatedAt); err != nil {
			_ = rows.Close()
			return nil, store.NewStoreError("bucketlist", operation, "scan failed", err)
		}
		lists = append(lists, list)
	}
	if err := errors.Join(rows.Err(), rows.Close()); err != nil {
		return nil, store.NewStoreError("bucketlist", operation, "row iteration failed", err)
	}

	if len(lists) == 0 {
		return lists, nil
	}
	return lists, s.attachItems(ctx, lists)
}

func (s *BucketListStore) attachItems(ctx context.Context, lists []*domain.BucketList) error {
	byID := make(map[int64]*domain.BucketList, len(lists))
	args := make([]any, len(lists))
	for i, list := range lists {
		byID[list.ID] = list
		args[i] = list.ID
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(lists)), ", ")

	items, err := queryItems(ctx, s.db,
		`SELECT `+itemColumns+` FROM list_items WHERE bucketlist_id IN (`+placeholders+`) ORDER BY id`,
		args...)
	if err != nil {
		s.logError(ctx, "failed to load bucketlist items", err)
		return store.NewStoreError("bucketlist item", "list", "query failed", mapError(err))
	}

	for _, item := range items {
		if list, ok := byID[item.BucketListID]; ok {
			list.Items = append(list.Items, item)
		}
	}
	return nil
}
