package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListItem(t *testing.T) {
	t.Parallel()

	item, err := NewListItem(5, " Climb Kilimanjaro ")
	require.NoError(t, err)
	assert.Equal(t, "Climb Kilimanjaro", item.Name)
	assert.Equal(t, int64(5), item.BucketListID)

	_, err = NewListItem(5, "")
	assert.ErrorIs(t, err, ErrEmptyItemName)

	_, err = NewListItem(0, "Climb")
	assert.ErrorIs(t, err, ErrEmptyItemBucketList)
}

func TestListItemRename(t *testing.T) {
	t.Parallel()

	item := &ListItem{ID: 1, BucketListID: 1, Name: "Old"}
	require.NoError(t, item.Rename("New"))
	assert.Equal(t, "New", item.Name)
	assert.ErrorIs(t, item.Rename("  "), ErrEmptyItemName)
}
