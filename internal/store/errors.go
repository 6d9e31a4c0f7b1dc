package store

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every store implementation. Callers match them
// with errors.Is; implementations wrap driver errors with them.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicate         = errors.New("already exists")
	ErrInvalidEntity     = errors.New("invalid entity")
	ErrTransactionFailed = errors.New("transaction failed")
)

// Entity-specific errors. Each wraps one of the sentinels above, so a handler
// can test for the general kind or the exact entity.
var (
	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrBucketListNotFound = fmt.Errorf("bucketlist %w", ErrNotFound)
	ErrItemNotFound       = fmt.Errorf("bucketlist item %w", ErrNotFound)
	ErrEmailExists        = fmt.Errorf("email %w", ErrDuplicate)
)

// StoreError describes a failed store call. Err is usually a sentinel-wrapped
// driver error, which errors.Is and errors.As reach through Unwrap.
type StoreError struct {
	Entity    string
	Operation string
	Message   string
	Err       error
}

// NewStoreError returns a StoreError for operation on entity.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{Entity: entity, Operation: operation, Message: message, Err: err}
}

func (e *StoreError) Error() string {
	prefix := fmt.Sprintf("%s %s: %s", e.Entity, e.Operation, e.Message)
	if e.Err == nil {
		return prefix
	}
	return prefix + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
