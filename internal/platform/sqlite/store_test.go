package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/phrazzld/bucketlist-api/internal/domain"
	"github.com/phrazzld/bucketlist-api/internal/platform/sqlite"
	"github.com/phrazzld/bucketlist-api/internal/store"
	"github.com/phrazzld/bucketlist-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	db    *sql.DB
	users *sqlite.UserStore
	lists *sqlite.BucketListStore
	items *sqlite.ItemStore
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := testdb.Open(t)
	return fixture{
		db:    db,
		users: sqlite.NewUserStore(db, bcrypt.MinCost, nil),
		lists: sqlite.NewBucketListStore(db, nil),
		items: sqlite.NewItemStore(db, nil),
	}
}

func (f fixture) user(t *testing.T, email string) *domain.User {
	t.Helper()
	u, err := domain.NewUser("Test", "User", email, "password123")
	require.NoError(t, err)
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

func (f fixture) list(t *testing.T, ownerID int64, name string) *domain.BucketList {
	t.Helper()
	l, err := domain.NewBucketList(ownerID, name)
	require.NoError(t, err)
	require.NoError(t, f.lists.Create(context.Background(), l))
	return l
}

func TestUserStore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := f.user(t, "jane@example.com")
	assert.NotZero(t, u.ID)
	assert.Empty(t, u.Password)

	t.Run("get_by_email_and_id", func(t *testing.T) {
		byEmail, err := f.users.GetByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, byEmail.ID)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(byEmail.HashedPassword), []byte("password123")))
		assert.WithinDuration(t, u.CreatedAt, byEmail.CreatedAt, time.Second)

		byID, err := f.users.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", byID.Email)
	})

	t.Run("duplicate_email", func(t *testing.T) {
		dup, err := domain.NewUser("Other", "Person", "jane@example.com", "secret")
		require.NoError(t, err)
		assert.ErrorIs(t, f.users.Create(ctx, dup), store.ErrEmailExists)
	})

	t.Run("unknown_user", func(t *testing.T) {
		_, err := f.users.GetByID(ctx, 999)
		assert.ErrorIs(t, err, store.ErrUserNotFound)

		_, err = f.users.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestBucketListStore_OwnerScoping(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	alice := f.user(t, "alice@example.com")
	bob := f.user(t, "bob@example.com")
	travel := f.list(t, alice.ID, "Travel")

	found, err := f.lists.FindByOwnerAndID(ctx, alice.ID, travel.ID)
	require.NoError(t, err)
	assert.Equal(t, "Travel", found.Name)
	assert.NotNil(t, found.Items)

	_, err = f.lists.FindByOwnerAndID(ctx, bob.ID, travel.ID)
	assert.ErrorIs(t, err, store.ErrBucketListNotFound)

	renamed := *travel
	renamed.OwnerID = bob.ID
	renamed.Name = "Stolen"
	assert.ErrorIs(t, f.lists.Update(ctx, &renamed), store.ErrBucketListNotFound)
	assert.ErrorIs(t, f.lists.DeleteByOwnerAndID(ctx, bob.ID, travel.ID), store.ErrBucketListNotFound)

	bobLists, total, err := f.lists.ListByOwner(ctx, bob.ID, store.Page{Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, bobLists)
}

func TestBucketListStore_ListByOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.user(t, "owner@example.com")
	names := []string{"One", "Two", "Three"}
	for _, name := range names {
		f.list(t, owner.ID, name)
	}

	page, total, err := f.lists.ListByOwner(ctx, owner.ID, store.Page{Limit: 2, Offset: 0})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 2)
	assert.Equal(t, "One", page[0].Name)
	assert.Equal(t, "Two", page[1].Name)

	page, _, err = f.lists.ListByOwner(ctx, owner.ID, store.Page{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Three", page[0].Name)

	page, _, err = f.lists.ListByOwner(ctx, owner.ID, store.Page{Limit: 0})
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestBucketListStore_Search(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.user(t, "owner@example.com")
	other := f.user(t, "other@example.com")
	f.list(t, owner.ID, "Summer Travel")
	f.list(t, owner.ID, "travel_2030")
	f.list(t, owner.ID, "Books")
	f.list(t, owner.ID, "Ängste überwinden")
	f.list(t, other.ID, "Travel too")

	tests := []struct {
		query    string
		expected []string
	}{
		{"travel", []string{"Summer Travel", "travel_2030"}},
		{"TRAVEL", []string{"Summer Travel", "travel_2030"}},
		{"_", []string{"travel_2030"}},
		{"ängste", []string{"Ängste überwinden"}},
		{"ÜBERWINDEN", []string{"Ängste überwinden"}},
		{"Ä", []string{"Ängste überwinden"}},
		{"%", nil},
		{"kyoto", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			lists, err := f.lists.SearchByOwnerAndName(ctx, owner.ID, tt.query)
			require.NoError(t, err)

			var got []string
			for _, l := range lists {
				got = append(got, l.Name)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestItemStore(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.user(t, "owner@example.com")
	travel := f.list(t, owner.ID, "Travel")

	kyoto, err := domain.NewListItem(travel.ID, "Kyoto")
	require.NoError(t, err)
	require.NoError(t, f.items.Create(ctx, kyoto))

	lima, err := domain.NewListItem(travel.ID, "Lima")
	require.NoError(t, err)
	require.NoError(t, f.items.Create(ctx, lima))

	list, err := f.lists.FindByOwnerAndID(ctx, owner.ID, travel.ID)
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, kyoto.ID, list.Items[0].ID)

	require.NoError(t, lima.Rename("Cusco"))
	require.NoError(t, f.items.Update(ctx, lima))

	list, err = f.lists.FindByOwnerAndID(ctx, owner.ID, travel.ID)
	require.NoError(t, err)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "Cusco", list.Items[1].Name)

	require.NoError(t, f.items.Delete(ctx, travel.ID, kyoto.ID))
	assert.ErrorIs(t, f.items.Delete(ctx, travel.ID, kyoto.ID), store.ErrItemNotFound)

	missing := &domain.ListItem{ID: 999, BucketListID: travel.ID, Name: "Nowhere"}
	assert.ErrorIs(t, f.items.Update(ctx, missing), store.ErrItemNotFound)

	t.Run("unknown_bucketlist_violates_foreign_key", func(t *testing.T) {
		orphan, err := domain.NewListItem(12345, "Orphan")
		require.NoError(t, err)
		assert.ErrorIs(t, f.items.Create(ctx, orphan), store.ErrInvalidEntity)
	})

	t.Run("deleting_bucketlist_cascades", func(t *testing.T) {
		require.NoError(t, f.lists.DeleteByOwnerAndID(ctx, owner.ID, travel.ID))

		var n int
		require.NoError(t, f.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM list_items WHERE bucketlist_id = ?`, travel.ID).Scan(&n))
		assert.Zero(t, n)
	})
}

func TestStoresWithTx(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "owner@example.com")

	testdb.WithTx(t, f.db, func(t *testing.T, tx *sql.Tx) {
		l, err := domain.NewBucketList(owner.ID, "Rolled back")
		require.NoError(t, err)
		require.NoError(t, f.lists.WithTx(tx).Create(ctx, l))

		_, err = f.lists.WithTx(tx).FindByOwnerAndID(ctx, owner.ID, l.ID)
		require.NoError(t, err)
	})

	_, total, err := f.lists.ListByOwner(ctx, owner.ID, store.Page{Limit: 10})
	require.NoError(t, err)
	assert.Zero(t, total, "changes made inside the rolled back transaction should not persist")
}
