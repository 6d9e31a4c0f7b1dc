package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/bucketlist-api/internal/api/shared"
	"github.com/phrazzld/bucketlist-api/internal/platform/logger"
	"github.com/phrazzld/bucketlist-api/internal/service"
	"github.com/phrazzld/bucketlist-api/internal/store"
	"github.com/phrazzld/bucketlist-api/internal/validate"
)

// Bucketlist response messages.
const (
	MsgNoBucketLists        = "No bucketlists exist."
	MsgNoSearchMatches      = "No bucketlists by that name found."
	MsgEmptySearchQuery     = "Search query cannot be empty."
	MsgBucketListNotFound   = "The requested bucketlist does not exist."
	MsgBucketListNotDeleted = "The bucketlist does not exist."
	MsgItemNotFound         = "The requested bucketlist or bucketlist item does not exist."
	MsgItemNotDeleted       = "The bucketlist or bucketlist item does not exist."
	msgBucketListUpdatedFmt = "Bucketlist %d successfully updated!"
	msgBucketListDeletedFmt = "The bucketlist with id %d has been deleted"
	msgItemUpdatedFmt       = "Bucketlist item %d successfully updated!"
	msgItemDeletedFmt       = "The bucketlist item with id %d has been deleted"
	searchQueryParam        = "q"
)

// BucketListHandler handles the bucketlist and nested item endpoints. Every
// operation is scoped to the current identity.
type BucketListHandler struct {
	lists  service.BucketListService
	logger *slog.Logger
}

// NewBucketListHandler creates a new BucketListHandler
func NewBucketListHandler(lists service.BucketListService, logger *slog.Logger) *BucketListHandler {
	if lists == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("bucketlist service cannot be nil for BucketListHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BucketListHandler{
		lists:  lists,
		logger: logger.With(slog.String("component", "bucketlist_handler")),
	}
}

// Create handles POST /bucketlists.
func (h *BucketListHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, _, ok := requestScope(w, r)
	if !ok {
		return
	}
	p, ok := decodePayload(w, r)
	if !ok {
		return
	}

	res := validate.BucketList(p)
	if !res.OK {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, res.Message)
		return
	}

	list, err := h.lists.Create(r.Context(), user.ID, shared.StringField(p, "name"))
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("bucketlist created",
		slog.Int64("bucketlist_id", list.ID))
	shared.RespondWithMessage(w, r, http.StatusCreated, res.Message)
}

// List handles GET /bucketlists. With a q parameter it searches by name;
// otherwise it returns one page of the owner's bucketlists.
func (h *BucketListHandler) List(w http.ResponseWriter, r *http.Request) {
	user, _, ok := requestScope(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	if query.Has(searchQueryParam) {
		h.search(w, r, user.ID, query.Get(searchQueryParam))
		return
	}

	limit, offset, res := validate.LimitOffset(query)
	if !res.OK {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, res.Message)
		return
	}

	lists, total, err := h.lists.List(r.Context(), user.ID, store.Page{Limit: limit, Offset: offset})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	resp := BucketListsResponse{
		BucketLists: NewBucketListResponses(lists),
		Meta:        &ListMeta{Limit: limit, Offset: offset, Total: total},
	}
	// An empty page past the end or with limit=0 is not an empty collection.
	if total == 0 {
		resp.Message = MsgNoBucketLists
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

func (h *BucketListHandler) search(w http.ResponseWriter, r *http.Request, ownerID int64, q string) {
	if q == "" {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, MsgEmptySearchQuery)
		return
	}

	lists, err := h.lists.Search(r.Context(), ownerID, q)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if len(lists) == 0 {
		shared.RespondWithJSON(w, r, http.StatusNotFound, BucketListsResponse{
			BucketLists: []BucketListResponse{},
			Message:     MsgNoSearchMatches,
		})
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, BucketListsResponse{BucketLists: NewBucketListResponses(lists)})
}

// Get handles GET /bucketlists/{id}. A missing bucketlist is still a 200.
func (h *BucketListHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ids, ok := requestScope(w, r, BucketListIDParam)
	if !ok {
		return
	}

	list, err := h.lists.Get(r.Context(), user.ID, ids[0])
	if err != nil {
		if service.IsNotFound(err) {
			shared.RespondWithJSON(w, r, http.StatusOK, BucketListEnvelope{
				BucketList: struct{}{},
				Message:    MsgBucketListNotFound,
			})
			return
		}
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, BucketListEnvelope{BucketList: NewBucketListResponse(list)})
}

// Update handles PUT /bucketlists/{id}. A missing bucketlist is a 409 and
// takes precedence over validation failures.
func (h *BucketListHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, ids, ok := requestScope(w, r, BucketListIDParam)
	if !ok {
		return
	}
	id := ids[0]
	p, ok := decodePayload(w, r)
	if !ok {
		return
	}

	res := validate.BucketList(p)
	if !res.OK {
		if _, err := h.lists.Get(r.Context(), user.ID, id); err != nil {
			h.updateFailed(w, r, err)
			return
		}
		shared.RespondWithMessage(w, r, http.StatusBadRequest, res.Message)
		return
	}

	if _, err := h.lists.Rename(r.Context(), user.ID, id, shared.StringField(p, "name")); err != nil {
		h.updateFailed(w, r, err)
		return
	}
	shared.RespondWithMessage(w, r, http.StatusOK, fmt.Sprintf(msgBucketListUpdatedFmt, id))
}

func (h *BucketListHandler) updateFailed(w http.ResponseWriter, r *http.Request, err error) {
	if service.IsNotFound(err) {
		shared.RespondWithMessage(w, r, http.StatusConflict, MsgBucketListNotFound)
		return
	}
	HandleAPIError(w, r, err)
}

// Delete handles DELETE /bucketlists/{id}.
func (h *BucketListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, ids, ok := requestScope(w, r, BucketListIDParam)
	if !ok {
		return
	}

	if err := h.lists.Delete(r.Context(), user.ID, ids[0]); err != nil {
		if service.IsNotFound(err) {
			shared.RespondWithMessage(w, r, http.StatusOK, MsgBucketListNotDeleted)
			return
		}
		HandleAPIError(w, r, err)
		return
	}
	shared.RespondWithMessage(w, r, http.StatusOK, fmt.Sprintf(msgBucketListDeletedFmt, ids[0]))
}

// CreateItem handles POST /bucketlists/{id}/items. A missing bucketlist is
// reported with 200 whether or not the payload is valid.
func (h *BucketListHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	user, ids, ok := requestScope(w, r, BucketListIDParam)
	if !ok {
		return
	}
	listID := ids[0]
	p, ok := decodePayload(w, r)
	if !ok {
		return
	}

	res := validate.Item(p)
	if !res.OK {
		if _, err := h.lists.Get(r.Context(), user.ID, listID); err != nil {
			h.itemParentMissing(w, r, err)
			return
		}
		shared.RespondWithMessage(w, r, http.StatusBadRequest, res.Message)
		return
	}

	item, err := h.lists.AddItem(r.Context(), user.ID, listID, shared.StringField(p, "name"))
	if err != nil {
		h.itemParentMissing(w, r, err)
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Debug("bucketlist item created",
		slog.Int64("bucketlist_id", listID),
		slog.Int64("item_id", item.ID))
	shared.RespondWithMessage(w, r, http.StatusCreated, res.Message)
}

func (h *BucketListHandler) itemParentMissing(w http.ResponseWriter, r *http.Request, err error) {
	if service.IsNotFound(err) {
		shared.RespondWithMessage(w, r, http.StatusOK, MsgBucketListNotFound)
		return
	}
	HandleAPIError(w, r, err)
}

// UpdateItem handles PUT /bucketlists/{id}/items/{item_id}.
func (h *BucketListHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	user, ids, ok := requestScope(w, r, BucketListIDParam, ItemIDParam)
	if !ok {
		return
	}
	listID, itemID := ids[0], ids[1]
	p, ok := decodePayload(w, r)
	if !ok {
		return
	}

	res := validate.Item(p)
	if !res.OK {
		if _, err := h.lists.GetItem(r.Context(), user.ID, listID, itemID); err != nil {
			h.itemMissing(w, r, err, MsgItemNotFound)
			return
		}
		shared.RespondWithMessage(w, r, http.StatusBadRequest, res.Message)
		return
	}

	if _, err := h.lists.UpdateItem(r.Context(), user.ID, listID, itemID, shared.StringField(p, "name")); err != nil {
		h.itemMissing(w, r, err, MsgItemNotFound)
		return
	}
	shared.RespondWithMessage(w, r, http.StatusOK, fmt.Sprintf(msgItemUpdatedFmt, itemID))
}

// DeleteItem handles DELETE /bucketlists/{id}/items/{item_id}.
func (h *BucketListHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	user, ids, ok := requestScope(w, r, BucketListIDParam, ItemIDParam)
	if !ok {
		return
	}
	listID, itemID := ids[0], ids[1]

	if err := h.lists.DeleteItem(r.Context(), user.ID, listID, itemID); err != nil {
		h.itemMissing(w, r, err, MsgItemNotDeleted)
		return
	}
	shared.RespondWithMessage(w, r, http.StatusOK, fmt.Sprintf(msgItemDeletedFmt, itemID))
}

func (h *BucketListHandler) itemMissing(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if service.IsNotFound(err) {
		shared.RespondWithMessage(w, r, http.StatusOK, msg)
		return
	}
	HandleAPIError(w, r, err)
}
