package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/bucketlist-api/internal/domain"
	"github.com/phrazzld/bucketlist-api/internal/platform/logger"
	"github.com/phrazzld/bucketlist-api/internal/store"
)

// BucketListService provides owner-scoped operations on bucketlists and their items.
type BucketListService interface {
	// Create makes a new bucketlist owned by ownerID.
	Create(ctx context.Context, ownerID int64, name string) (*domain.BucketList, error)

	// List returns one page of the owner's bucketlists in creation order and
	// the owner's total count.
	List(ctx context.Context, ownerID int64, page store.Page) ([]*domain.BucketList, int, error)

	// Search returns the owner's bucketlists whose name contains query,
	// ignoring case.
	Search(ctx context.Context, ownerID int64, query string) ([]*domain.BucketList, error)

	// Get returns a bucketlist with its items, or ErrBucketListNotFound.
	Get(ctx context.Context, ownerID, id int64) (*domain.BucketList, error)

	// Rename changes the bucketlist name, or returns ErrBucketListNotFound.
	Rename(ctx context.Context, ownerID, id int64, name string) (*domain.BucketList, error)

	// Delete removes a bucketlist and its items, or returns ErrBucketListNotFound.
	Delete(ctx context.Context, ownerID, id int64) error

	// AddItem creates an item in the bucketlist, or returns ErrBucketListNotFound.
	AddItem(ctx context.Context, ownerID, listID int64, name string) (*domain.ListItem, error)

	// GetItem returns an item of the bucketlist, or ErrItemNotFound when
	// either the bucketlist or the item cannot be found.
	GetItem(ctx context.Context, ownerID, listID, itemID int64) (*domain.ListItem, error)

	// UpdateItem renames an item, or returns ErrItemNotFound.
	UpdateItem(ctx context.Context, ownerID, listID, itemID int64, name string) (*domain.ListItem, error)

	// DeleteItem removes an item, or returns ErrItemNotFound.
	DeleteItem(ctx context.Context, ownerID, listID, itemID int64) error
}

// BucketListServiceImpl implements BucketListService on top of the store interfaces.
type BucketListServiceImpl struct {
	lists  store.BucketListStore
	items  store.ItemStore
	db     *sql.DB
	logger *slog.Logger
}

// NewBucketListService creates a new BucketListService.
func NewBucketListService(
	lists store.BucketListStore,
	items store.ItemStore,
	db *sql.DB,
	logger *slog.Logger,
) (*BucketListServiceImpl, error) {
	if lists == nil {
		return nil, errors.New("bucketlist store cannot be nil")
	}
	if items == nil {
		return nil, errors.New("item store cannot be nil")
	}
	if db == nil {
		return nil, errors.New("database cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &BucketListServiceImpl{
		lists:  lists,
		items:  items,
		db:     db,
		logger: logger.With("component", "bucketlist_service"),
	}, nil
}

var _ BucketListService = (*BucketListServiceImpl)(nil)

// Create implements BucketListService.Create
func (s *BucketListServiceImpl) Create(ctx context.Context, ownerID int64, name string) (*domain.BucketList, error) {
	list, err := domain.NewBucketList(ownerID, name)
	if err != nil {
		return nil, err
	}

	if err := s.lists.Create(ctx, list); err != nil {
		return nil, fmt.Errorf("failed to create bucketlist: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("bucketlist created",
		slog.Int64("bucketlist_id", list.ID),
		slog.Int64("owner_id", ownerID))
	return list, nil
}

// List implements BucketListService.List
func (s *BucketListServiceImpl) List(
	ctx context.Context,
	ownerID int64,
	page store.Page,
) ([]*domain.BucketList, int, error) {
	lists, total, err := s.lists.ListByOwner(ctx, ownerID, page)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bucketlists: %w", err)
	}
	return lists, total, nil
}

// Search implements BucketListService.Search
func (s *BucketListServiceImpl) Search(ctx context.Context, ownerID int64, query string) ([]*domain.BucketList, error) {
	lists, err := s.lists.SearchByOwnerAndName(ctx, ownerID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search bucketlists: %w", err)
	}
	return lists, nil
}

// Get implements BucketListService.Get
func (s *BucketListServiceImpl) Get(ctx context.Context, ownerID, id int64) (*domain.BucketList, error) {
	list, err := s.lists.FindByOwnerAndID(ctx, ownerID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get bucketlist: %w", err)
	}
	return list, nil
}

// Rename implements BucketListService.Rename
func (s *BucketListServiceImpl) Rename(
	ctx context.Context,
	ownerID, id int64,
	name string,
) (*domain.BucketList, error) {
	var list *domain.BucketList
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		lists := s.lists.WithTx(tx)

		var err error
		list, err = lists.FindByOwnerAndID(ctx, ownerID, id)
		if err != nil {
			return err
		}
		if err := list.Rename(name); err != nil {
			return err
		}
		return lists.Update(ctx, list)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to rename bucketlist: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("bucketlist renamed", slog.Int64("bucketlist_id", id))
	return list, nil
}

// Delete implements BucketListService.Delete
func (s *BucketListServiceImpl) Delete(ctx context.Context, ownerID, id int64) error {
	if err := s.lists.DeleteByOwnerAndID(ctx, ownerID, id); err != nil {
		return fmt.Errorf("failed to delete bucketlist: %w", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("bucketlist deleted", slog.Int64("bucketlist_id", id))
	return nil
}

// AddItem implements BucketListService.AddItem
func (s *BucketListServiceImpl) AddItem(
	ctx context.Context,
	ownerID, listID int64,
	name string,
) (*domain.ListItem, error) {
	var item *domain.ListItem
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := s.lists.WithTx(tx).FindByOwnerAndID(ctx, ownerID, listID); err != nil {
			return err
		}

		var err error
		item, err = domain.NewListItem(listID, name)
		if err != nil {
			return err
		}
		return s.items.WithTx(tx).Create(ctx, item)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add bucketlist item: %w", err)
	}
	return item, nil
}

// GetItem implements BucketListService.GetItem
func (s *BucketListServiceImpl) GetItem(ctx context.Context, ownerID, listID, itemID int64) (*domain.ListItem, error) {
	list, err := s.lists.FindByOwnerAndID(ctx, ownerID, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bucketlist item: %w", notFoundAsItem(err))
	}
	item := list.GetItem(itemID)
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// UpdateItem implements BucketListService.UpdateItem
func (s *BucketListServiceImpl) UpdateItem(
	ctx context.Context,
	ownerID, listID, itemID int64,
	name string,
) (*domain.ListItem, error) {
	var item *domain.ListItem
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		list, err := s.lists.WithTx(tx).FindByOwnerAndID(ctx, ownerID, listID)
		if err != nil {
			return notFoundAsItem(err)
		}
		if item = list.GetItem(itemID); item == nil {
			return ErrItemNotFound
		}
		if err := item.Rename(name); err != nil {
			return err
		}
		return s.items.WithTx(tx).Update(ctx, item)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update bucketlist item: %w", err)
	}
	return item, nil
}

// DeleteItem implements BucketListService.DeleteItem
func (s *BucketListServiceImpl) DeleteItem(ctx context.Context, ownerID, listID, itemID int64) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		list, err := s.lists.WithTx(tx).FindByOwnerAndID(ctx, ownerID, listID)
		if err != nil {
			return notFoundAsItem(err)
		}
		if list.GetItem(itemID) == nil {
			return ErrItemNotFound
		}
		return s.items.WithTx(tx).Delete(ctx, listID, itemID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete bucketlist item: %w", err)
	}
	return nil
}

// notFoundAsItem reports a missing parent bucketlist as a missing item, since
// item endpoints do not distinguish the two.
func notFoundAsItem(err error) error {
	if errors.Is(err, store.ErrBucketListNotFound) {
		return ErrItemNotFound
	}
	return err
}
