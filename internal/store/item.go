package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/bucketlist-api/internal/domain"
)

// ItemStore defines writes for list items. Items are read through their
// parent with BucketListStore.FindByOwnerAndID, which also establishes that
// the parent belongs to the current user.
type ItemStore interface {
	// Create inserts an item and writes the generated ID back to item.ID.
	Create(ctx context.Context, item *domain.ListItem) error

	// Update persists the mutable fields (name, updated_at) of item.
	// Returns ErrItemNotFound when the item is not in item.BucketListID.
	Update(ctx context.Context, item *domain.ListItem) error

	// Delete removes an item from a bucketlist.
	// Returns ErrItemNotFound when nothing was deleted.
	Delete(ctx context.Context, bucketListID, id int64) error

	// WithTx returns an ItemStore bound to the given transaction.
	WithTx(tx *sql.Tx) ItemStore
}
