package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors
var (
	ErrEmptyAccountID = errors.New("account ID cannot be empty")
	ErrEmptyName      = errors.New("name cannot be empty")
	ErrEmptyEmail     = errors.New("email cannot be empty")
)

// SignUpMethodNormal marks accounts created through the email/password
// signup flow. Provider-based methods (OAuth) are not implemented.
const SignUpMethodNormal = "normal"

// Account represents a registered user of the Ami application.
// It is the sole persistent entity of the service.
type Account struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"email_verified"`
	PasswordHash  string    `json:"-"` // Never expose the password hash in JSON
	Providers     []string  `json:"providers"`
	SignUpMethod  string    `json:"sign_up_method"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	IsActive      bool      `json:"is_active"`
}

// NormalizeEmail canonicalizes an email address for storage and comparison.
// All lookups and uniqueness checks operate on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NewAccount creates a new Account with the given name and email.
// The name is trimmed and the email normalized before validation.
// It generates a new UUID for the account ID and sets the creation/update
// timestamps in UTC. Returns an error if validation fails.
//
// NOTE: the caller is responsible for setting PasswordHash before handing
// the account to a store; NewAccount never sees the plaintext password.
func NewAccount(name, email string) (*Account, error) {
	now := time.Now().UTC()
	account := &Account{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(name),
		Email:         NormalizeEmail(email),
		EmailVerified: false,
		Providers:     []string{},
		SignUpMethod:  SignUpMethodNormal,
		CreatedAt:     now,
		UpdatedAt:     now,
		IsActive:      true,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks if the Account has valid data.
// Returns an error if any field fails validation.
func (a *Account) Validate() error {
	if a.ID == uuid.Nil {
		return ErrEmptyAccountID
	}

	if a.Name == "" {
		return ErrEmptyName
	}

	if a.Email == "" {
		return ErrEmptyEmail
	}

	return nil
}
