package mocks

import (
	"context"

	"github.com/phrazzld/bucketlist-api/internal/domain"
)

// MockUserService implements service.UserService for testing
type MockUserService struct {
	RegisterFn func(ctx context.Context, firstName, lastName, email, password string) (*domain.User, error)

	User *domain.User
	Err  error
}

// Register implements UserService.Register
func (m *MockUserService) Register(
	ctx context.Context,
	firstName, lastName, email, password string,
) (*domain.User, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, firstName, lastName, email, password)
	}
	return m.User, m.Err
}
