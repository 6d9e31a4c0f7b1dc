package postgres

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

// PostgresBucketListStore implements the store.BucketListStore interface
// using a PostgreSQL database as the storage backend.
type PostgresBucketListStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBucketListStore creates a new PostgreSQL implementation of the
// BucketListStore interface. If logger is nil, a default logger will be used.
func NewPostgresBucketListStore(db store.DBTX, logger *slog.Logger) *PostgresBucketListStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBucketListStore{
		db:     db,
		logger: logger.With(slog.String("component", "bucketlist_store")),
	}
}

// Ensure PostgresBucketListStore implements store.BucketListStore interface
var _ store.BucketListStore = (*PostgresBucketListStore)(nil)

// WithTx implements store.BucketListStore.WithTx
func (s *PostgresBucketListStore) WithTx(tx *sql.Tx) store.BucketListStore {
	return &PostgresBucketListStore{db: tx, logger: s.logger}
}

// Create implements store.BucketListStore.Create
func (s *PostgresBucketListStore) Create(ctx context.Context, list *domain.BucketList) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := list.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO bucketlists (name, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query, list.Name, list.OwnerID, list.CreatedAt, list.UpdatedAt).
		Scan(&list.ID)
	if err != nil {
		log.Error("failed to create bucketlist",
			slog.String("error", redact.Error(err)),
			slog.Int64("owner_id", list.OwnerID))
		return store.NewStoreError("bucketlist", "create", "insert failed", mapError(err))
	}

	log.Debug("bucketlist created",
		slog.Int64("bucketlist_id", list.ID),
		slog.Int64("owner_id", list.OwnerID))
	return nil
}

// FindByOwnerAndID implements store.BucketListStore.FindByOwnerAndID
func (s *PostgresBucketListStore) FindByOwnerAndID(
	ctx context.Context,
	ownerID, id int64,
) (*domain.BucketList, error) {
	query := `
		SELECT id, name, owner_id, created_at, updated_at
		FROM bucketlists
		WHERE id = $1 AND owner_id = $2
	`
	var list domain.BucketList
	err := s.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&list.ID,
		&list.Name,
		&list.OwnerID,
		&list.CreatedAt,
		&list.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrBucketListNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get bucketlist",
			slog.String("error", redact.Error(err)),
			slog.Int64("bucketlist_id", id))
		return nil, store.NewStoreError("bucketlist", "get", "query failed", mapError(err))
	}

	if err := s.attachItems(ctx, []*domain.BucketList{&list}); err != nil {
		return nil, err
	}
	return &list, nil
}

// ListByOwner implements store.BucketListStore.ListByOwner
func (s *PostgresBucketListStore) ListByOwner(
	ctx context.Context,
	ownerID int64,
	page store.Page,
) ([]*domain.BucketList, int, error) {
	var total int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bucketlists WHERE owner_id = $1`, ownerID).
		Scan(&total)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to count bucketlists",
			slog.String("error", redact.Error(err)),
			slog.Int64("owner_id", ownerID))
		return nil, 0, store.NewStoreError("bucketlist", "list", "count failed", mapError(err))
	}

	query := `
		SELECT id, name, owner_id, created_at, updated_at
		FROM bucketlists
		WHERE owner_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`
	lists, err := s.query(ctx, "list", query, ownerID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, err
	}
	return lists, total, nil
}

// SearchByOwnerAndName implements store.BucketListStore.SearchByOwnerAndName
func (s *PostgresBucketListStore) SearchByOwnerAndName(
	ctx context.Context,
	ownerID int64,
	query string,
) ([]*domain.BucketList, error) {
	sqlQuery := `
		SELECT id, name, owner_id, created_at, updated_at
		FROM bucketlists
		WHERE owner_id = $1 AND name ILIKE $2 ESCAPE '\'
		ORDER BY id
	`
	return s.query(ctx, "search", sqlQuery, ownerID, store.ContainsPattern(query))
}

// Update implements store.BucketListStore.Update
func (s *PostgresBucketListStore) Update(ctx context.Context, list *domain.BucketList) error {
	if err := list.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE bucketlists
		SET name = $1, updated_at = $2
		WHERE id = $3 AND owner_id = $4
	`
	result, err := s.db.ExecContext(ctx, query, list.Name, list.UpdatedAt, list.ID, list.OwnerID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to update bucketlist",
			slog.String("error", redact.Error(err)),
			slog.Int64("bucketlist_id", list.ID))
		return store.NewStoreError("bucketlist", "update", "update failed", mapError(err))
	}
	return checkRowsAffected(result, store.ErrBucketListNotFound)
}

// DeleteByOwnerAndID implements store.BucketListStore.DeleteByOwnerAndID
func (s *PostgresBucketListStore) DeleteByOwnerAndID(ctx context.Context, ownerID, id int64) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM bucketlists WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to delete bucketlist",
			slog.String("error", redact.Error(err)),
			slog.Int64("bucketlist_id", id))
		return store.NewStoreError("bucketlist", "delete", "delete failed", mapError(err))
	}
	return checkRowsAffected(result, store.ErrBucketListNotFound)
}

// query runs a bucketlist SELECT and attaches the items of every row.
func (s *PostgresBucketListStore) query(
	ctx context.Context,
	operation, query string,
	args ...any,
) ([]*domain.BucketList, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to query bucketlists",
			slog.String("operation", operation),
			slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("bucketlist", operation, "query failed", mapError(err))
	}
	defer func() { _ = rows.Close() }()

	lists := []*domain.BucketList{}
	for rows.Next() {
		var list domain.BucketList
		if err := rows.Scan(&list.ID, &list.Name, &list.OwnerID, &list.CreatedAt, &list.UpdatedAt); err != nil {
			return nil, store.NewStoreError("bucketlist", operation, "scan failed", err)
		}
		lists = append(lists, &list)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("bucketlist", operation, "row iteration failed", err)
	}

	if err := s.attachItems(ctx, lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// attachItems loads the items of all lists with a single query.
func (s *PostgresBucketListStore) attachItems(ctx context.Context, lists []*domain.BucketList) error {
	if len(lists) == 0 {
		return nil
	}

	ids := make([]int64, len(lists))
	byID := make(map[int64]*domain.BucketList, len(lists))
	for i, list := range lists {
		ids[i] = list.ID
		byID[list.ID] = list
		list.Items = []domain.ListItem{}
	}

	query := `
		SELECT id, name, bucketlist_id, created_at, updated_at
		FROM list_items
		WHERE bucketlist_id = ANY($1)
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query, ids)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to load bucketlist items",
			slog.String("error", redact.Error(err)))
		return store.NewStoreError("bucketlist item", "list", "query failed", mapError(err))
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return store.NewStoreError("bucketlist item", "list", "scan failed", err)
		}
		if list, ok := byID[item.BucketListID]; ok {
			list.Items = append(list.Items, item)
		}
	}
	if err := rows.Err(); err != nil {
		return store.NewStoreError("bucketlist item", "list", "row iteration failed", err)
	}
	return nil
}
