package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/bucketlist-api/internal/api/shared"
	"github.com/phrazzld/bucketlist-api/internal/domain"
	"github.com/phrazzld/bucketlist-api/internal/platform/logger"
	"github.com/phrazzld/bucketlist-api/internal/service"
	"github.com/phrazzld/bucketlist-api/internal/service/auth"
	"github.com/phrazzld/bucketlist-api/internal/validate"
)

// Login response messages.
const (
	MsgInvalidAuthFields  = "Invalid authentication fields."
	MsgInvalidCredentials = "Invalid Credentials"
)

// PasswordChecker verifies login credentials.
type PasswordChecker interface {
	VerifyPassword(ctx context.Context, email, password string) (*domain.User, error)
}

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	users       service.UserService
	credentials PasswordChecker
	jwtService  auth.JWTService
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	users service.UserService,
	credentials PasswordChecker,
	jwtService auth.JWTService,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		users:       users,
		credentials: credentials,
		jwtService:  jwtService,
		logger:      logger.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /auth/register.
//
// A validation message about missing fields is a 400; any other validation
// failure is reported with 200.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	p, ok := decodePayload(w, r)
	if !ok {
		return
	}

	if res := validate.Registration(p); !res.OK {
		status := http.StatusOK
		if strings.Contains(res.Message, "Missing") {
			status = http.StatusBadRequest
		}
		shared.RespondWithMessage(w, r, status, res.Message)
		return
	}

	email := domain.NormalizeEmail(shared.StringField(p, "email"))
	user, err := h.users.Register(r.Context(),
		shared.StringField(p, "first_name"),
		shared.StringField(p, "last_name"),
		email,
		shared.StringField(p, "password"),
	)
	switch {
	case errors.Is(err, service.ErrEmailExists):
		shared.RespondWithMessage(w, r, http.StatusConflict,
			fmt.Sprintf("The user with the email %s already exists", email))
		return
	case errors.Is(err, domain.ErrInvalidEmail):
		shared.RespondWithMessage(w, r, http.StatusOK, fmt.Sprintf("Invalid email address %s.", email))
		return
	case err != nil:
		HandleAPIError(w, r, err)
		return
	}

	log.Info("user registered", slog.Int64("user_id", user.ID))
	shared.RespondWithMessage(w, r, http.StatusCreated,
		fmt.Sprintf("Successfully registered the user with the email %s.", user.Email))
}

// Login handles POST /auth/login. Both keys must be present; their values
// are then checked against the stored credentials.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	p, ok := decodePayload(w, r)
	if !ok {
		return
	}

	_, hasEmail := p["email"]
	_, hasPassword := p["password"]
	if !hasEmail || !hasPassword {
		shared.RespondWithMessage(w, r, http.StatusBadRequest, MsgInvalidAuthFields)
		return
	}

	user, err := h.credentials.VerifyPassword(r.Context(),
		shared.StringField(p, "email"),
		shared.StringField(p, "password"))
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			shared.RespondWithMessage(w, r, http.StatusUnauthorized, MsgInvalidCredentials)
			return
		}
		HandleAPIError(w, r, err)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Debug("user logged in", slog.Int64("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{AccessToken: token})
}

// Resource handles POST /resource, a protected endpoint for checking a token.
func Resource(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, ResourceResponse{Msg: "Hello world"})
}
