package mocks

import (
	"context"

	"github.com/phrazzld/bucketlist-api/internal/domain"
	"github.com/phrazzld/bucketlist-api/internal/store"
)

// MockBucketListService implements service.BucketListService for testing.
// Methods without a function field return the default values.
type MockBucketListService struct {
	CreateFn     func(ctx context.Context, ownerID int64, name string) (*domain.BucketList, error)
	ListFn       func(ctx context.Context, ownerID int64, page store.Page) ([]*domain.BucketList, int, error)
	SearchFn     func(ctx context.Context, ownerID int64, query string) ([]*domain.BucketList, error)
	GetFn        func(ctx context.Context, ownerID, id int64) (*domain.BucketList, error)
	RenameFn     func(ctx context.Context, ownerID, id int64, name string) (*domain.BucketList, error)
	DeleteFn     func(ctx context.Context, ownerID, id int64) error
	AddItemFn    func(ctx context.Context, ownerID, listID int64, name string) (*domain.ListItem, error)
	GetItemFn    func(ctx context.Context, ownerID, listID, itemID int64) (*domain.ListItem, error)
	UpdateItemFn func(ctx context.Context, ownerID, listID, itemID int64, name string) (*domain.ListItem, error)
	DeleteItemFn func(ctx context.Context, ownerID, listID, itemID int64) error

	// Default return values
	BucketList   *domain.BucketList
	Item         *domain.ListItem
	DefaultError error
}

// Create implements BucketListService.Create
func (m *MockBucketListService) Create(ctx context.Context, ownerID int64, name string) (*domain.BucketList, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, ownerID, name)
	}
	return m.BucketList, m.DefaultError
}

// List implements BucketListService.List
func (m *MockBucketListService) List(
	ctx context.Context,
	ownerID int64,
	page store.Page,
) ([]*domain.BucketList, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, ownerID, page)
	}
	return m.lists(), len(m.lists()), m.DefaultError
}

// Search implements BucketListService.Search
func (m *MockBucketListService) Search(ctx context.Context, ownerID int64, query string) ([]*domain.BucketList, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, ownerID, query)
	}
	return m.lists(), m.DefaultError
}

// Get implements BucketListService.Get
func (m *MockBucketListService) Get(ctx context.Context, ownerID, id int64) (*domain.BucketList, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, ownerID, id)
	}
	return m.BucketList, m.DefaultError
}

// Rename implements BucketListService.Rename
func (m *MockBucketListService) Rename(ctx context.Context, ownerID, id int64, name string) (*domain.BucketList, error) {
	if m.RenameFn != nil {
		return m.RenameFn(ctx, ownerID, id, name)
	}
	return m.BucketList, m.DefaultError
}

// Delete implements BucketListService.Delete
func (m *MockBucketListService) Delete(ctx context.Context, ownerID, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, ownerID, id)
	}
	return m.DefaultError
}

// AddItem implements BucketListService.AddItem
func (m *MockBucketListService) AddItem(ctx context.Context, ownerID, listID int64, name string) (*domain.ListItem, error) {
	if m.AddItemFn != nil {
		return m.AddItemFn(ctx, ownerID, listID, name)
	}
	return m.Item, m.DefaultError
}

// GetItem implements BucketListService.GetItem
func (m *MockBucketListService) GetItem(ctx context.Context, ownerID, listID, itemID int64) (*domain.ListItem, error) {
	if m.GetItemFn != nil {
		return m.GetItemFn(ctx, ownerID, listID, itemID)
	}
	return m.Item, m.DefaultError
}

// UpdateItem implements BucketListService.UpdateItem
func (m *MockBucketListService) UpdateItem(
	ctx context.Context,
	ownerID, listID, itemID int64,
	name string,
) (*domain.ListItem, error) {
	if m.UpdateItemFn != nil {
		return m.UpdateItemFn(ctx, ownerID, listID, itemID, name)
	}
	return m.Item, m.DefaultError
}

// DeleteItem implements BucketListService.DeleteItem
func (m *MockBucketListService) DeleteItem(ctx context.Context, ownerID, listID, itemID int64) error {
	if m.DeleteItemFn != nil {
		return m.DeleteItemFn(ctx, ownerID, listID, itemID)
	}
	return m.DefaultError
}

func (m *MockBucketListService) lists() []*domain.BucketList {
	if m.BucketList == nil {
		return nil
	}
	return []*domain.BucketList{m.BucketList}
}
