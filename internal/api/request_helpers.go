package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/bucketlist-api/internal/api/shared"
	"github.com/phrazzld/bucketlist-api/internal/domain"
	"github.com/phrazzld/bucketlist-api/internal/service/auth"
	"github.com/phrazzld/bucketlist-api/internal/validate"
)

// Path parameter names used by the bucketlist routes.
const (
	BucketListIDParam = "id"
	ItemIDParam       = "item_id"
)

// pathID parses a positive integer path parameter.
func pathID(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", domain.ErrInvalidID, name, raw)
	}
	return id, nil
}

// requestScope extracts the current identity and the named path IDs. It
// writes the error response itself and returns false when extraction fails.
func requestScope(w http.ResponseWriter, r *http.Request, params ...string) (*domain.User, []int64, bool) {
	user, ok := shared.UserFromContext(r.Context())
	if !ok {
		HandleAPIError(w, r, auth.ErrMissingToken)
		return nil, nil, false
	}

	ids := make([]int64, 0, len(params))
	for _, name := range params {
		id, err := pathID(r, name)
		if err != nil {
			HandleAPIError(w, r, err)
			return nil, nil, false
		}
		ids = append(ids, id)
	}
	return user, ids, true
}

// decodePayload reads the JSON body, answering 400 for malformed input.
func decodePayload(w http.ResponseWriter, r *http.Request) (validate.Payload, bool) {
	p, err := shared.DecodePayload(w, r)
	if err != nil {
		HandleAPIError(w, r, err)
		return nil, false
	}
	return p, true
}
