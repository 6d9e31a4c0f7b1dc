package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/bucketlist-api/internal/domain"
)

// Page selects a window of an ordered result set.
type Page struct {
	Limit  int
	Offset int
}

// BucketListStore defines owner-scoped persistence for bucketlists.
// Every lookup filters on the owner, so a bucketlist that belongs to another
// user is indistinguishable from one that does not exist.
type BucketListStore interface {
	// Create inserts a bucketlist and writes the generated ID back to list.ID.
	Create(ctx context.Context, list *domain.BucketList) error

	// FindByOwnerAndID returns the bucketlist with its items ordered by ID.
	// Returns ErrBucketListNotFound when no bucketlist matches both keys.
	FindByOwnerAndID(ctx context.Context, ownerID, id int64) (*domain.BucketList, error)

	// ListByOwner returns one page of the owner's bucketlists in creation
	// order, with items, plus the total number the owner has.
	ListByOwner(ctx context.Context, ownerID int64, page Page) ([]*domain.BucketList, int, error)

	// SearchByOwnerAndName returns the owner's bucketlists whose name
	// contains query, compared case-insensitively. Wildcard characters in
	// query are matched literally.
	SearchByOwnerAndName(ctx context.Context, ownerID int64, query string) ([]*domain.BucketList, error)

	// Update persists the mutable fields (name, updated_at) of list.
	// Returns ErrBucketListNotFound when list is not owned by list.OwnerID.
	Update(ctx context.Context, list *domain.BucketList) error

	// DeleteByOwnerAndID removes the bucketlist and, by cascade, its items.
	// Returns ErrBucketListNotFound when nothing was deleted.
	DeleteByOwnerAndID(ctx context.Context, ownerID, id int64) error

	// WithTx returns a BucketListStore bound to the given transaction.
	WithTx(tx *sql.Tx) BucketListStore
}
