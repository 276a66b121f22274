package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/amihq/ami-auth/internal/service/auth"
)

// Canonical messages for missing-field errors, matching the response the
// frontend expects per endpoint.
const (
	signupFieldsRequired = "name, email and password are required"
	loginFieldsRequired  = "email and password are required"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	authService auth.AuthService
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
// If logger is nil, a default logger will be used.
func NewAuthHandler(authService auth.AuthService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		authService: authService,
		validator:   validator.New(),
		logger:      logger.With("component", "auth_handler"),
	}
}

// Signup handles the /api/auth/signup endpoint.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Absent fields fail here; whitespace-only fields fail in the service
	// after normalization. Both yield the same 400 response.
	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, signupFieldsRequired)
		return
	}

	userID, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrMissingField) {
			RespondWithError(w, r, http.StatusBadRequest, signupFieldsRequired)
			return
		}
		RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		Message: "User created",
		UserID:  userID,
	})
}

// Login handles the /api/auth/login endpoint.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := DecodeJSON(r, &req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, loginFieldsRequired)
		return
	}

	userID, err := h.authService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrMissingField) {
			RespondWithError(w, r, http.StatusBadRequest, loginFieldsRequired)
			return
		}
		// The 401 body is identical whether the email was unknown or the
		// password was wrong.
		RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		Message: "Login successful",
		UserID:  userID,
	})
}
