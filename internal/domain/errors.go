package domain

import "errors"

var (
	// ErrValidation is wrapped by every entity validation error, so callers
	// can map all of them to a 400 with one errors.Is check.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned for ids that are not positive integers.
	ErrInvalidID = errors.New("invalid ID")
)
