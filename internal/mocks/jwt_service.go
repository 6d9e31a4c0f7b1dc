package mocks

import (
	"context"

	"github.com/phrazzld/bucketlist-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService. The Fn fields override the
// canned Token/Err and Claims/ValidateErr results.
type MockJWTService struct {
	GenerateTokenFn func(ctx context.Context, userID int64) (string, error)
	ValidateTokenFn func(ctx context.Context, tokenString string) (*auth.Claims, error)

	Token       string
	Err         error
	Claims      *auth.Claims
	ValidateErr error
}

var _ auth.JWTService = (*MockJWTService)(nil)

func (m *MockJWTService) GenerateToken(ctx context.Context, userID int64) (string, error) {
	if m.GenerateTokenFn == nil {
		return m.Token, m.Err
	}
	return m.GenerateTokenFn(ctx, userID)
}

func (m *MockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.ValidateTokenFn == nil {
		return m.Claims, m.ValidateErr
	}
	return m.ValidateTokenFn(ctx, tokenString)
}
