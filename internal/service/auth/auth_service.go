package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/amihq/ami-auth/internal/domain"
	"github.com/amihq/ami-auth/internal/store"
)

// AuthService implements registration and authentication over an
// AccountStore and a password hasher. It is stateless; any number of
// calls may execute concurrently.
type AuthService interface {
	// Register creates a new account with the given name, email and
	// password and returns its identifier.
	// Returns ErrMissingField if any input is empty after normalization,
	// and ErrEmailTaken if the normalized email is already registered.
	Register(ctx context.Context, name, email, password string) (uuid.UUID, error)

	// Authenticate verifies the email/password pair and returns the
	// matching account's identifier.
	// Returns ErrMissingField if either input is empty after normalization,
	// and ErrInvalidCredentials on any authentication failure. No token or
	// session artifact is produced; credential issuance is a separate
	// concern layered above this service.
	Authenticate(ctx context.Context, email, password string) (uuid.UUID, error)
}

// AuthServiceImpl implements the AuthService interface.
type AuthServiceImpl struct {
	accounts store.AccountStore
	hasher   PasswordHasher
	logger   *slog.Logger
}

// NewAuthService creates a new AuthService backed by the given store and
// hasher. If logger is nil, a default logger will be used.
func NewAuthService(accounts store.AccountStore, hasher PasswordHasher, logger *slog.Logger) AuthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthServiceImpl{
		accounts: accounts,
		hasher:   hasher,
		logger:   logger.With("component", "auth_service"),
	}
}

// Register creates a new account.
// The password is hashed as-is, without trimming: leading or trailing
// whitespace in a password is legitimate.
func (s *AuthServiceImpl) Register(ctx context.Context, name, email, password string) (uuid.UUID, error) {
	name = strings.TrimSpace(name)
	email = domain.NormalizeEmail(email)

	if name == "" || email == "" || password == "" {
		return uuid.Nil, ErrMissingField
	}

	// Advisory duplicate check. The store's unique index is the sole
	// authority: two concurrent registrations can both pass this check,
	// and the loser of the insert race gets the same ErrEmailTaken.
	_, err := s.accounts.GetByEmail(ctx, email)
	if err == nil {
		s.logger.Debug("registration attempted with existing email")
		return uuid.Nil, ErrEmailTaken
	}
	if !errors.Is(err, store.ErrAccountNotFound) {
		s.logger.Error("failed to check for existing account", "error", err)
		return uuid.Nil, fmt.Errorf("failed to check for existing account: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return uuid.Nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account, err := domain.NewAccount(name, email)
	if err != nil {
		return uuid.Nil, ErrMissingField
	}
	account.PasswordHash = hash

	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			// The insert race the advisory check missed.
			s.logger.Debug("duplicate email at insert time")
			return uuid.Nil, ErrEmailTaken
		}
		s.logger.Error("failed to create account", "error", err)
		return uuid.Nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.Info("account registered", "account_id", account.ID)
	return account.ID, nil
}

// Authenticate verifies an email/password pair.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, email, password string) (uuid.UUID, error) {
	email = domain.NormalizeEmail(email)

	if email == "" || password == "" {
		return uuid.Nil, ErrMissingField
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return uuid.Nil, ErrInvalidCredentials
		}
		s.logger.Error("failed to get account by email", "error", err)
		return uuid.Nil, fmt.Errorf("failed to get account by email: %w", err)
	}

	// Accounts created through a provider flow carry no password hash and
	// cannot authenticate with a password.
	if account.PasswordHash == "" {
		return uuid.Nil, ErrInvalidCredentials
	}

	if err := s.hasher.Compare(account.PasswordHash, password); err != nil {
		return uuid.Nil, ErrInvalidCredentials
	}

	return account.ID, nil
}
