package domain

import (
	"fmt"
	"strings"
	"time"
)

// ListItem validation errors
var (
	ErrEmptyItemName       = fmt.Errorf("%w: item name cannot be empty", ErrValidation)
	ErrEmptyItemBucketList = fmt.Errorf("%w: item bucketlist cannot be empty", ErrValidation)
)

// ListItem is a single goal inside a bucketlist.
type ListItem struct {
	ID           int64
	Name         string
	BucketListID int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewListItem creates an item belonging to bucketListID.
func NewListItem(bucketListID int64, name string) (*ListItem, error) {
	now := time.Now().UTC()
	item := &ListItem{
		Name:         strings.TrimSpace(name),
		BucketListID: bucketListID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks if the ListItem has valid data.
func (i *ListItem) Validate() error {
	if i.BucketListID <= 0 {
		return ErrEmptyItemBucketList
	}
	if strings.TrimSpace(i.Name) == "" {
		return ErrEmptyItemName
	}
	return nil
}

// Rename changes the item name and bumps UpdatedAt.
func (i *ListItem) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyItemName
	}
	i.Name = name
	i.UpdatedAt = time.Now().UTC()
	return nil
}
