package domain

import (
	"fmt"
	"strings"
	"time"
)

// BucketList validation errors
var (
	ErrEmptyBucketListName  = fmt.Errorf("%w: bucketlist name cannot be empty", ErrValidation)
	ErrEmptyBucketListOwner = fmt.Errorf("%w: bucketlist owner cannot be empty", ErrValidation)
)

// BucketList is a named collection of goals owned by a single user.
type BucketList struct {
	ID        int64
	Name      string
	OwnerID   int64
	Items     []ListItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBucketList creates a bucketlist owned by ownerID. The ID is assigned by
// the store on insert.
func NewBucketList(ownerID int64, name string) (*BucketList, error) {
	now := time.Now().UTC()
	list := &BucketList{
		Name:      strings.TrimSpace(name),
		OwnerID:   ownerID,
		Items:     []ListItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := list.Validate(); err != nil {
		return nil, err
	}

	return list, nil
}

// Validate checks if the BucketList has valid data.
func (b *BucketList) Validate() error {
	if b.OwnerID <= 0 {
		return ErrEmptyBucketListOwner
	}
	if strings.TrimSpace(b.Name) == "" {
		return ErrEmptyBucketListName
	}
	return nil
}

// Rename changes the bucketlist name and bumps UpdatedAt.
func (b *BucketList) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyBucketListName
	}
	b.Name = name
	b.UpdatedAt = time.Now().UTC()
	return nil
}

// GetItem returns the item with the given id from the bucketlist's own
// collection, or nil when the bucketlist does not contain it.
func (b *BucketList) GetItem(itemID int64) *ListItem {
	for i := range b.Items {
		if b.Items[i].ID == itemID {
			return &b.Items[i]
		}
	}
	return nil
}
