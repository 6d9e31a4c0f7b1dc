package api_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/bucketlist-api/internal/api"
	"github.com/phrazzld/bucketlist-api/internal/api/shared"
	"github.com/phrazzld/bucketlist-api/internal/domain"
	"github.com/phrazzld/bucketlist-api/internal/mocks"
	"github.com/phrazzld/bucketlist-api/internal/service/auth"
	"github.com/phrazzld/bucketlist-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{auth.ErrInvalidToken, http.StatusUnauthorized},
		{auth.ErrExpiredToken, http.StatusUnauthorized},
		{auth.ErrUnknownIdentity, http.StatusUnauthorized},
		{fmt.Errorf("lookup: %w", store.ErrBucketListNotFound), http.StatusNotFound},
		{domain.ErrInvalidID, http.StatusNotFound},
		{store.ErrEmailExists, http.StatusConflict},
		{shared.ErrMalformedBody, http.StatusBadRequest},
		{domain.ErrEmptyBucketListName, http.StatusBadRequest},
		{store.ErrInvalidEntity, http.StatusBadRequest},
		{errors.New("disk full"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, api.MapErrorToStatusCode(tt.err))
		})
	}
}

func TestHandlers_InternalErrorsAreNormalized(t *testing.T) {
	leaky := errors.New("pq: relation bucketlists does not exist at 10.0.0.5:5432")
	svc := &mocks.MockBucketListService{
		DefaultError: leaky,
		CreateFn: func(ctx context.Context, ownerID int64, name string) (*domain.BucketList, error) {
			return nil, leaky
		},
	}
	h := routes(nil, api.NewBucketListHandler(svc, nil), &domain.User{ID: 1})

	requests := []struct {
		method, path, body string
	}{
		{http.MethodPost, "/bucketlists", `{"name":"Travel"}`},
		{http.MethodGet, "/bucketlists", ""},
		{http.MethodGet, "/bucketlists?q=travel", ""},
		{http.MethodGet, "/bucketlists/1", ""},
		{http.MethodPut, "/bucketlists/1", `{"name":"Travel"}`},
		{http.MethodDelete, "/bucketlists/1", ""},
		{http.MethodPost, "/bucketlists/1/items", `{"name":"Kyoto"}`},
		{http.MethodPut, "/bucketlists/1/items/2", `{"name":"Kyoto"}`},
		{http.MethodDelete, "/bucketlists/1/items/2", ""},
	}

	for _, req := range requests {
		t.Run(req.method+" "+req.path, func(t *testing.T) {
			w, body := do(t, h, req.method, req.path, req.body)
			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, float64(http.StatusInternalServerError), body["status_code"])
			assert.Equal(t, shared.DescInternal, body["description"])
			assert.NotContains(t, w.Body.String(), "10.0.0.5")
			assert.NotContains(t, w.Body.String(), "relation")
		})
	}
}

func TestLogin_TokenFailure(t *testing.T) {
	users := mocks.NewMockUserStore()
	users.AddUser("jane@example.com", "hash")
	jwtService := &mocks.MockJWTService{Err: errors.New("signing key unavailable")}

	authH := api.NewAuthHandler(
		&mocks.MockUserService{},
		auth.NewAuthenticator(users, &mocks.MockPasswordVerifier{ShouldSucceed: true}),
		jwtService,
		nil,
	)
	h := routes(authH, api.NewBucketListHandler(&mocks.MockBucketListService{}, nil), nil)

	w, body := do(t, h, http.MethodPost, "/auth/login", `{"email":"jane@example.com","password":"pw"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, shared.DescInternal, body["description"])
}

func TestRegister_StoreFailure(t *testing.T) {
	authH := api.NewAuthHandler(
		&mocks.MockUserService{Err: errors.New("database is locked")},
		auth.NewAuthenticator(mocks.NewMockUserStore(), nil),
		&mocks.MockJWTService{},
		nil,
	)
	h := routes(authH, api.NewBucketListHandler(&mocks.MockBucketListService{}, nil), nil)

	w, body := do(t, h, http.MethodPost, "/auth/register",
		`{"first_name":"Jane","last_name":"Doe","email":"jane@example.com","password":"pw"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, float64(http.StatusInternalServerError), body["status_code"])
}
