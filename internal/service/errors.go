package service

import (
	"errors"

	"github.com/phrazzld/bucketlist-api/internal/store"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check them with errors.Is.
var (
	// ErrBucketListNotFound indicates the bucketlist does not exist or is owned by someone else.
	ErrBucketListNotFound = store.ErrBucketListNotFound

	// ErrItemNotFound indicates the bucketlist or the item inside it does not exist.
	ErrItemNotFound = store.ErrItemNotFound

	// ErrEmailExists indicates the email is already registered.
	ErrEmailExists = store.ErrEmailExists
)

// IsNotFound reports whether err means the requested resource is absent for
// the caller.
func IsNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}
