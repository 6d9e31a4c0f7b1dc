package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/bucketlist-api/internal/api/shared"
	"github.com/phrazzld/bucketlist-api/internal/platform/logger"
)

// Recoverer turns a panic in a handler into a normalized 500 response.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				// ALLOW-PANIC: net/http handles this sentinel itself
				panic(rec)
			}

			logger.FromContextOrDefault(r.Context(), nil).Error("recovered from panic",
				slog.Any("panic", rec),
				slog.String("stack", string(debug.Stack())))
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, shared.DescInternal,
				fmt.Errorf("panic: %v", rec))
		}()

		next.ServeHTTP(w, r)
	})
}
