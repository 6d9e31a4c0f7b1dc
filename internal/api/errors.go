package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/bucketlist-api/internal/api/shared"
	"github.com/phrazzld/bucketlist-api/internal/domain"
	"github.com/phrazzld/bucketlist-api/internal/service/auth"
	"github.com/phrazzld/bucketlist-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes for
// failures that no handler turns into its own message response.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrUnknownIdentity):
		return http.StatusUnauthorized

	// A path ID that does not fit in an int64 never matches a route.
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	case errors.Is(err, shared.ErrMalformedBody),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// descriptionFor returns the client-facing description for a status code.
func descriptionFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return shared.DescBadRequest
	case http.StatusUnauthorized:
		return "The server could not verify that you are authorized to access the URL requested."
	case http.StatusNotFound:
		return shared.DescNotFound
	case http.StatusMethodNotAllowed:
		return shared.DescMethodNotAllowed
	case http.StatusConflict:
		return "A conflict happened while processing the request."
	default:
		return shared.DescInternal
	}
}

// HandleAPIError writes the normalized error body for err. The raw error is
// only logged, after redaction.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, descriptionFor(status), err)
}

// NotFound is the router's handler for unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, shared.DescNotFound)
}

// MethodNotAllowed is the router's handler for known routes hit with the wrong method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, shared.DescMethodNotAllowed)
}
