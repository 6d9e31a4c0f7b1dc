package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/bucketlist-api/internal/domain"
	"github.com/phrazzld/bucketlist-api/internal/platform/logger"
	"github.com/phrazzld/bucketlist-api/internal/store"
)

// Authenticator resolves users from login credentials and from token claims.
type Authenticator struct {
	users    store.UserStore
	verifier PasswordVerifier
}

// NewAuthenticator creates an Authenticator backed by users.
func NewAuthenticator(users store.UserStore, verifier PasswordVerifier) *Authenticator {
	if verifier == nil {
		verifier = NewBcryptVerifier()
	}
	return &Authenticator{users: users, verifier: verifier}
}

// VerifyPassword returns the user registered with email if password matches
// the stored hash. Unknown emails and wrong passwords both yield
// ErrInvalidCredentials. email is normalized the same way as at registration.
func (a *Authenticator) VerifyPassword(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := a.users.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := a.verifier.Compare(user.HashedPassword, password); err != nil {
		logger.FromContext(ctx).Debug("password mismatch", slog.Int64("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Identity returns the user named by validated token claims, or
// ErrUnknownIdentity when that user no longer exists.
func (a *Authenticator) Identity(ctx context.Context, claims *Claims) (*domain.User, error) {
	if claims == nil {
		return nil, ErrInvalidToken
	}

	user, err := a.users.GetByID(ctx, claims.Identity)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUnknownIdentity
		}
		return nil, err
	}
	return user, nil
}
