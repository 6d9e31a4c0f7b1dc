package api

import (
	"time"

	"github.com/phrazzld/bucketlist-api/internal/domain"
)

// TokenResponse is the successful login body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ResourceResponse is the body of the protected smoke endpoint.
type ResourceResponse struct {
	Msg string `json:"msg"`
}

// ItemResponse is the serialized form of a list item.
type ItemResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	DateCreated  string `json:"date_created"`
	DateModified string `json:"date_modified"`
}

// BucketListResponse is the serialized form of a bucketlist.
type BucketListResponse struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	CreatedBy    int64          `json:"created_by"`
	DateCreated  string         `json:"date_created"`
	DateModified string         `json:"date_modified"`
	Items        []ItemResponse `json:"items"`
}

// ListMeta describes the page returned by a listing.
type ListMeta struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// BucketListsResponse is the body of GET /bucketlists. Meta is only set for
// listings, not for search results.
type BucketListsResponse struct {
	BucketLists []BucketListResponse `json:"bucketlists"`
	Meta        *ListMeta            `json:"meta,omitempty"`
	Message     string               `json:"message,omitempty"`
}

// BucketListEnvelope is the body of GET /bucketlists/{id}. BucketList is an
// empty object when the bucketlist does not exist.
type BucketListEnvelope struct {
	BucketList interface{} `json:"bucketlist"`
	Meta       struct{}    `json:"meta"`
	Message    string      `json:"message,omitempty"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// NewItemResponse serializes an item.
func NewItemResponse(item domain.ListItem) ItemResponse {
	return ItemResponse{
		ID:           item.ID,
		Name:         item.Name,
		DateCreated:  formatTime(item.CreatedAt),
		DateModified: formatTime(item.UpdatedAt),
	}
}

// NewBucketListResponse serializes a bucketlist with its items.
func NewBucketListResponse(list *domain.BucketList) BucketListResponse {
	items := make([]ItemResponse, 0, len(list.Items))
	for _, item := range list.Items {
		items = append(items, NewItemResponse(item))
	}
	return BucketListResponse{
		ID:           list.ID,
		Name:         list.Name,
		CreatedBy:    list.OwnerID,
		DateCreated:  formatTime(list.CreatedAt),
		DateModified: formatTime(list.UpdatedAt),
		Items:        items,
	}
}

// NewBucketListResponses serializes a slice of bucketlists, never returning nil.
func NewBucketListResponses(lists []*domain.BucketList) []BucketListResponse {
	out := make([]BucketListResponse, 0, len(lists))
	for _, list := range lists {
		out = append(out, NewBucketListResponse(list))
	}
	return out
}
