package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/phrazzld/bucketlist-api/internal/domain"
	"github.com/phrazzld/bucketlist-api/internal/platform/sqlite"
	"github.com/phrazzld/bucketlist-api/internal/service"
	"github.com/phrazzld/bucketlist-api/internal/store"
	"github.com/phrazzld/bucketlist-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type services struct {
	users *service.UserServiceImpl
	lists *service.BucketListServiceImpl
}

func newServices(t *testing.T) services {
	t.Helper()
	db := testdb.Open(t)

	lists, err := service.NewBucketListService(
		sqlite.NewBucketListStore(db, nil),
		sqlite.NewItemStore(db, nil),
		db,
		nil,
	)
	require.NoError(t, err)

	return services{
		users: service.NewUserService(sqlite.NewUserStore(db, bcrypt.MinCost, nil), db, nil),
		lists: lists,
	}
}

func (s services) register(t *testing.T, email string) *domain.User {
	t.Helper()
	u, err := s.users.Register(context.Background(), "Test", "User", email, "password123")
	require.NoError(t, err)
	return u
}

func TestNewBucketListService_Validation(t *testing.T) {
	db := testdb.Open(t)
	lists := sqlite.NewBucketListStore(db, nil)
	items := sqlite.NewItemStore(db, nil)

	_, err := service.NewBucketListService(nil, items, db, nil)
	assert.Error(t, err)
	_, err = service.NewBucketListService(lists, nil, db, nil)
	assert.Error(t, err)
	_, err = service.NewBucketListService(lists, items, nil, nil)
	assert.Error(t, err)
}

func TestUserService_Register(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	u := s.register(t, "jane@example.com")
	assert.NotZero(t, u.ID)
	assert.NotEmpty(t, u.HashedPassword)
	assert.Empty(t, u.Password)

	_, err := s.users.Register(ctx, "Jane", "Again", "jane@example.com", "password123")
	assert.ErrorIs(t, err, service.ErrEmailExists)

	_, err = s.users.Register(ctx, "", "User", "x@example.com", "password123")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBucketListService_CRUD(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	owner := s.register(t, "owner@example.com")

	created, err := s.lists.Create(ctx, owner.ID, "Travel")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := s.lists.Get(ctx, owner.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Travel", got.Name)
	assert.Equal(t, owner.ID, got.OwnerID)

	renamed, err := s.lists.Rename(ctx, owner.ID, created.ID, "Adventures")
	require.NoError(t, err)
	assert.Equal(t, "Adventures", renamed.Name)

	got, err = s.lists.Get(ctx, owner.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Adventures", got.Name)

	_, err = s.lists.Rename(ctx, owner.ID, created.ID, "   ")
	assert.ErrorIs(t, err, domain.ErrValidation)

	require.NoError(t, s.lists.Delete(ctx, owner.ID, created.ID))
	_, err = s.lists.Get(ctx, owner.ID, created.ID)
	assert.ErrorIs(t, err, service.ErrBucketListNotFound)
	assert.True(t, service.IsNotFound(err))

	err = s.lists.Delete(ctx, owner.ID, created.ID)
	assert.ErrorIs(t, err, service.ErrBucketListNotFound)
}

func TestBucketListService_OwnerScoping(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	alice := s.register(t, "alice@example.com")
	bob := s.register(t, "bob@example.com")

	list, err := s.lists.Create(ctx, alice.ID, "Alice's list")
	require.NoError(t, err)
	item, err := s.lists.AddItem(ctx, alice.ID, list.ID, "Climb")
	require.NoError(t, err)

	_, err = s.lists.Get(ctx, bob.ID, list.ID)
	assert.ErrorIs(t, err, service.ErrBucketListNotFound)

	_, err = s.lists.Rename(ctx, bob.ID, list.ID, "Mine now")
	assert.ErrorIs(t, err, service.ErrBucketListNotFound)

	err = s.lists.Delete(ctx, bob.ID, list.ID)
	assert.ErrorIs(t, err, service.ErrBucketListNotFound)

	_, err = s.lists.AddItem(ctx, bob.ID, list.ID, "Sneak in")
	assert.ErrorIs(t, err, service.ErrBucketListNotFound)

	_, err = s.lists.UpdateItem(ctx, bob.ID, list.ID, item.ID, "Changed")
	assert.ErrorIs(t, err, service.ErrItemNotFound)

	err = s.lists.DeleteItem(ctx, bob.ID, list.ID, item.ID)
	assert.ErrorIs(t, err, service.ErrItemNotFound)

	lists, total, err := s.lists.List(ctx, bob.ID, store.Page{Limit: 20})
	require.NoError(t, err)
	assert.Empty(t, lists)
	assert.Zero(t, total)

	found, err := s.lists.Search(ctx, bob.ID, "alice")
	require.NoError(t, err)
	assert.Empty(t, found)

	got, err := s.lists.Get(ctx, alice.ID, list.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice's list", got.Name)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Climb", got.Items[0].Name)
}

func TestBucketListService_ListAndSearch(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	owner := s.register(t, "owner@example.com")

	for _, name := range []string{"Travel", "Books", "Travel 2025"} {
		_, err := s.lists.Create(ctx, owner.ID, name)
		require.NoError(t, err)
	}

	page, total, err := s.lists.List(ctx, owner.ID, store.Page{Limit: 2, Offset: 0})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 2)
	assert.Equal(t, "Travel", page[0].Name)
	assert.Equal(t, "Books", page[1].Name)

	page, _, err = s.lists.List(ctx, owner.ID, store.Page{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Travel 2025", page[0].Name)

	found, err := s.lists.Search(ctx, owner.ID, "TRAVEL")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = s.lists.Search(ctx, owner.ID, "%")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestBucketListService_Items(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	owner := s.register(t, "owner@example.com")

	list, err := s.lists.Create(ctx, owner.ID, "Travel")
	require.NoError(t, err)

	item, err := s.lists.AddItem(ctx, owner.ID, list.ID, "Visit Kyoto")
	require.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.Equal(t, list.ID, item.BucketListID)

	_, err = s.lists.AddItem(ctx, owner.ID, list.ID, "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	got, err := s.lists.GetItem(ctx, owner.ID, list.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Visit Kyoto", got.Name)

	updated, err := s.lists.UpdateItem(ctx, owner.ID, list.ID, item.ID, "Visit Osaka")
	require.NoError(t, err)
	assert.Equal(t, "Visit Osaka", updated.Name)

	got, err = s.lists.GetItem(ctx, owner.ID, list.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Visit Osaka", got.Name)

	_, err = s.lists.GetItem(ctx, owner.ID, list.ID, item.ID+100)
	assert.ErrorIs(t, err, service.ErrItemNotFound)

	_, err = s.lists.GetItem(ctx, owner.ID, list.ID+100, item.ID)
	assert.ErrorIs(t, err, service.ErrItemNotFound)

	require.NoError(t, s.lists.DeleteItem(ctx, owner.ID, list.ID, item.ID))
	err = s.lists.DeleteItem(ctx, owner.ID, list.ID, item.ID)
	assert.ErrorIs(t, err, service.ErrItemNotFound)

	got2, err := s.lists.Get(ctx, owner.ID, list.ID)
	require.NoError(t, err)
	assert.Empty(t, got2.Items)
}

func TestBucketListService_ConcurrentWrites(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	owner := s.register(t, "owner@example.com")
	list, err := s.lists.Create(ctx, owner.ID, "Travel")
	require.NoError(t, err)

	const writers = 40
	errs := make(chan error, writers)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.lists.AddItem(ctx, owner.ID, list.ID, fmt.Sprintf("Item %d", i))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}

	got, err := s.lists.Get(ctx, owner.ID, list.ID)
	require.NoError(t, err)
	assert.Len(t, got.Items, writers)
}
