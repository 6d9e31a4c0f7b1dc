package validate

import (
	"net/url"
	"strconv"
)

// Paging defaults for bucketlist listings.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// InvalidPagingMessage is reported when limit or offset is malformed.
const InvalidPagingMessage = "Invalid format for limit or offset. Should be integer"

// LimitOffset validates the limit and offset query parameters and returns the
// effective values. Absent parameters take their defaults; limit is capped at
// MaxLimit.
func LimitOffset(query url.Values) (limit, offset int, res Result) {
	limit, offset = DefaultLimit, 0

	if query.Has("limit") {
		n, ok := nonNegative(query.Get("limit"))
		if !ok {
			return 0, 0, fail(InvalidPagingMessage)
		}
		limit = min(n, MaxLimit)
	}

	if query.Has("offset") {
		n, ok := nonNegative(query.Get("offset"))
		if !ok {
			return 0, 0, fail(InvalidPagingMessage)
		}
		offset = n
	}

	return limit, offset, pass("")
}

func nonNegative(s string) (int, bool) {
	// "number" accepts only ASCII digits, which rules out signs and spaces.
	if err := checker.Var(s, "required,number"); err != nil {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
