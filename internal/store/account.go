package store

import (
	"context"

	"github.com/amihq/ami-auth/internal/domain"
)

// AccountStore defines the interface for account data persistence.
type AccountStore interface {
	// Create saves a new account to the store.
	// Returns ErrEmailExists if the normalized email is already taken;
	// the backing unique index makes this race-safe under concurrent
	// registrations for the same email.
	// Returns ErrUnavailable on backend connectivity or timeout errors.
	Create(ctx context.Context, account *domain.Account) error

	// GetByEmail retrieves an account by its normalized email address.
	// Returns ErrAccountNotFound if the account does not exist.
	// Returns ErrUnavailable on backend connectivity or timeout errors.
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
}
