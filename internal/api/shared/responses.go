package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/bucketlist-api/internal/platform/logger"
	"github.com/phrazzld/bucketlist-api/internal/redact"
)

// Descriptions used in normalized error bodies.
const (
	DescBadRequest       = "The browser (or proxy) sent a request that this server could not understand."
	DescNotFound         = "The requested URL was not found on the server. If you entered the URL manually please check your spelling and try again."
	DescMethodNotAllowed = "The method is not allowed for the requested URL."
	DescInternal         = "The server encountered an internal error and was unable to complete your request. Either the server is overloaded or there is an error in the application."
)

// ErrorResponse is the normalized body of every failure that is not a
// handler's own message response.
type ErrorResponse struct {
	StatusCode  int    `json:"status_code"`
	Error       string `json:"error"`
	Description string `json:"description"`
}

// MessageResponse is the common {"message": ...} envelope.
type MessageResponse struct {
	Message string `json:"message"`
}

// NewErrorResponse builds a normalized body whose error reads
// "<code> <Status Text>: <description>".
func NewErrorResponse(status int, description string) ErrorResponse {
	return ErrorResponse{
		StatusCode:  status,
		Error:       fmt.Sprintf("%d %s: %s", status, http.StatusText(status), description),
		Description: description,
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContextOrDefault(r.Context(), nil).Error("failed to encode JSON response",
			"error", err)
	}
}

// RespondWithMessage writes {"message": message} with the given status code.
func RespondWithMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondWithJSON(w, r, status, MessageResponse{Message: message})
}

// RespondWithError writes a normalized error body for status.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, description string) {
	RespondWithErrorAndLog(w, r, status, description, nil)
}

// RespondWithErrorAndLog writes a normalized error body and logs the detailed
// error. Only the description reaches the client; err is redacted and logged.
//
// 5xx responses are logged at ERROR level, everything else at DEBUG.
func RespondWithErrorAndLog(w http.ResponseWriter, r *http.Request, status int, description string, err error) {
	writeError(w, r, NewErrorResponse(status, description), err)
}

// RespondWithAuthError writes a normalized 401 body whose error field is the
// short title itself, e.g. "Invalid token".
func RespondWithAuthError(w http.ResponseWriter, r *http.Request, title, description string) {
	writeError(w, r, ErrorResponse{
		StatusCode:  http.StatusUnauthorized,
		Error:       title,
		Description: description,
	}, nil)
}

func writeError(w http.ResponseWriter, r *http.Request, body ErrorResponse, err error) {
	attrs := []slog.Attr{
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", body.StatusCode),
		slog.String("description", body.Description),
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	level := slog.LevelDebug
	if body.StatusCode >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	logger.FromContextOrDefault(r.Context(), nil).LogAttrs(r.Context(), level, "API error response", attrs...)

	RespondWithJSON(w, r, body.StatusCode, body)
}
