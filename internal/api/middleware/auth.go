package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/bucketlist-api/internal/api/shared"
	"github.com/phrazzld/bucketlist-api/internal/domain"
	"github.com/phrazzld/bucketlist-api/internal/platform/logger"
	"github.com/phrazzld/bucketlist-api/internal/service/auth"
)

// DefaultAuthHeaderPrefix is the Authorization scheme expected when none is configured.
const DefaultAuthHeaderPrefix = "Bearer"

// IdentityResolver maps validated token claims to the current user.
type IdentityResolver interface {
	Identity(ctx context.Context, claims *auth.Claims) (*domain.User, error)
}

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
	identities IdentityResolver
	prefix     string
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, identities IdentityResolver, prefix string) *AuthMiddleware {
	if prefix == "" {
		prefix = DefaultAuthHeaderPrefix
	}
	return &AuthMiddleware{
		jwtService: jwtService,
		identities: identities,
		prefix:     prefix,
	}
}

// Authenticate requires "Authorization: <prefix> <token>", resolves the
// token's user and stores it in the request context. Failures respond 401
// without reaching next.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := m.token(w, r)
		if !ok {
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithAuthError(w, r, "Invalid token", "Signature has expired")
			case errors.Is(err, auth.ErrTokenNotYetValid):
				shared.RespondWithAuthError(w, r, "Invalid token", "The token is not yet valid")
			default:
				shared.RespondWithAuthError(w, r, "Invalid token", "Signature verification failed")
			}
			return
		}

		user, err := m.identities.Identity(r.Context(), claims)
		if err != nil {
			if errors.Is(err, auth.ErrUnknownIdentity) {
				shared.RespondWithAuthError(w, r, "Invalid JWT", "User does not exist")
				return
			}
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, shared.DescInternal, err)
			return
		}

		logger.FromContextOrDefault(r.Context(), nil).Debug("request authenticated",
			slog.Int64("user_id", user.ID))

		next.ServeHTTP(w, r.WithContext(shared.WithUser(r.Context(), user)))
	})
}

// token extracts the raw token from the Authorization header, writing the
// 401 response itself when the header is unusable.
func (m *AuthMiddleware) token(w http.ResponseWriter, r *http.Request) (string, bool) {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) == 0 {
		shared.RespondWithAuthError(w, r, "Authorization Required", "Request does not contain an access token")
		return "", false
	}

	switch {
	case !strings.EqualFold(parts[0], m.prefix):
		shared.RespondWithAuthError(w, r, "Invalid JWT header", "Unsupported authorization type")
		return "", false
	case len(parts) == 1:
		shared.RespondWithAuthError(w, r, "Invalid JWT header", "Token missing")
		return "", false
	case len(parts) > 2:
		shared.RespondWithAuthError(w, r, "Invalid JWT header", "Token contains spaces")
		return "", false
	}
	return parts[1], true
}

// CurrentUser returns the user stored by Authenticate.
func CurrentUser(r *http.Request) (*domain.User, bool) {
	return shared.UserFromContext(r.Context())
}
