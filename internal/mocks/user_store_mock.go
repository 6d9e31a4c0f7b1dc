package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/bucketlist-api/internal/domain"
	"github.com/phrazzld/bucketlist-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// TestifyMockUserStore is a testify/mock store.UserStore for tests that
// assert on call arguments and counts. WithTx returns the mock itself unless
// an expectation supplies another store.
type TestifyMockUserStore struct {
	mock.Mock
}

var _ store.UserStore = (*TestifyMockUserStore)(nil)

func (m *TestifyMockUserStore) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *TestifyMockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return userResult(m.Called(ctx, id))
}

func (m *TestifyMockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return userResult(m.Called(ctx, email))
}

func (m *TestifyMockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	if s, ok := m.Called(tx).Get(0).(store.UserStore); ok {
		return s
	}
	return m
}

func userResult(args mock.Arguments) (*domain.User, error) {
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}
