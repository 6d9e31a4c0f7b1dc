package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntityErrorKinds(t *testing.T) {
	tests := []struct {
		err       error
		notFound  bool
		duplicate bool
	}{
		{err: ErrUserNotFound, notFound: true},
		{err: ErrBucketListNotFound, notFound: true},
		{err: fmt.Errorf("update item: %w", ErrItemNotFound), notFound: true},
		{err: ErrEmailExists, duplicate: true},
		{err: fmt.Errorf("create user: %w", ErrEmailExists), duplicate: true},
		{err: errors.New("connection reset")},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.notFound, errors.Is(tt.err, ErrNotFound))
			assert.Equal(t, tt.duplicate, errors.Is(tt.err, ErrDuplicate))
		})
	}
}

func TestEntityErrorsAreDistinct(t *testing.T) {
	assert.NotErrorIs(t, ErrBucketListNotFound, ErrItemNotFound)
	assert.NotErrorIs(t, ErrItemNotFound, ErrBucketListNotFound)
	assert.NotErrorIs(t, ErrUserNotFound, ErrBucketListNotFound)
	assert.Equal(t, "bucketlist item not found", ErrItemNotFound.Error())
}

func TestStoreError(t *testing.T) {
	cause := fmt.Errorf("%w: constraint failed", ErrDuplicate)
	err := NewStoreError("bucketlist", "create", "insert failed", cause)

	assert.Equal(t, "bucketlist create: insert failed: already exists: constraint failed", err.Error())
	assert.ErrorIs(t, err, ErrDuplicate)

	var storeErr *StoreError
	wrapped := fmt.Errorf("service: %w", err)
	if assert.ErrorAs(t, wrapped, &storeErr) {
		assert.Equal(t, "create", storeErr.Operation)
	}

	bare := NewStoreError("item", "delete", "no rows", nil)
	assert.Equal(t, "item delete: no rows", bare.Error())
	assert.Nil(t, bare.Unwrap())
}
