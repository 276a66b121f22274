package api

import (
	"github.com/google/uuid"
)

// Common request/response structures

// SignupRequest defines the payload for the account signup endpoint.
// Normalization (trimming, email lowercasing) happens in the service
// layer; the tags only reject absent or empty fields early.
type SignupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse defines the successful response for authentication endpoints.
// No token is issued; callers receive only confirmation of identity.
type AuthResponse struct {
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"userId"`
}

// HealthResponse defines the response for the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Error string `json:"error"`
}
