package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/amihq/ami-auth/internal/domain"
	"github.com/amihq/ami-auth/internal/store"
)

// defaultQueryTimeout bounds every store operation so a stalled backend
// surfaces as store.ErrUnavailable instead of hanging the request.
const defaultQueryTimeout = 5 * time.Second

// PostgresAccountStore implements the store.AccountStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAccountStore struct {
	db           store.DBTX
	logger       *slog.Logger
	queryTimeout time.Duration
}

// Ensure PostgresAccountStore implements store.AccountStore interface
var _ store.AccountStore = (*PostgresAccountStore)(nil)

// NewPostgresAccountStore creates a new PostgreSQL implementation of the
// AccountStore interface. It accepts a database connection that should be
// initialized and managed by the caller. If logger is nil, a default
// logger will be used.
func NewPostgresAccountStore(db store.DBTX, logger *slog.Logger) *PostgresAccountStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAccountStore{
		db:           db,
		logger:       logger.With(slog.String("component", "account_store")),
		queryTimeout: defaultQueryTimeout,
	}
}

func (s *PostgresAccountStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.queryTimeout)
}

// Create implements store.AccountStore.Create.
// It validates the account and inserts it, relying on the unique index on
// email as the sole authority for duplicate detection. Returns
// store.ErrEmailExists on a unique violation and store.ErrUnavailable on
// driver or timeout errors.
func (s *PostgresAccountStore) Create(ctx context.Context, account *domain.Account) error {
	if err := account.Validate(); err != nil {
		s.logger.Warn("account validation failed during create",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return err
	}

	providers, err := json.Marshal(account.Providers)
	if err != nil {
		return fmt.Errorf("failed to encode providers: %w", err)
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO accounts (id, name, email, email_verified, password_hash,
			providers, sign_up_method, created_at, updated_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		account.ID,
		account.Name,
		account.Email,
		account.EmailVerified,
		account.PasswordHash,
		providers,
		account.SignUpMethod,
		account.CreatedAt,
		account.UpdatedAt,
		account.IsActive,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			s.logger.Debug("duplicate email during account creation",
				slog.String("email", account.Email))
			return MapUniqueViolation(err, store.ErrEmailExists)
		}

		s.logger.Error("failed to create account",
			slog.String("error", err.Error()),
			slog.String("account_id", account.ID.String()))
		return MapError(err)
	}

	s.logger.Info("account created",
		slog.String("account_id", account.ID.String()),
		slog.String("sign_up_method", account.SignUpMethod))
	return nil
}

// GetByEmail implements store.AccountStore.GetByEmail.
// The email is expected to be normalized by the caller; the lookup is an
// exact match. Returns store.ErrAccountNotFound if no account exists.
func (s *PostgresAccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, name, email, email_verified, password_hash,
			providers, sign_up_method, created_at, updated_at, is_active
		FROM accounts
		WHERE email = $1
	`

	var (
		account   domain.Account
		providers []byte
	)
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.EmailVerified,
		&account.PasswordHash,
		&providers,
		&account.SignUpMethod,
		&account.CreatedAt,
		&account.UpdatedAt,
		&account.IsActive,
	)
	if err != nil {
		mapped := MapError(err)
		if store.IsNotFoundError(mapped) {
			return nil, fmt.Errorf("%w: %v", store.ErrAccountNotFound, err)
		}

		s.logger.Error("failed to get account by email",
			slog.String("error", err.Error()))
		return nil, mapped
	}

	if err := json.Unmarshal(providers, &account.Providers); err != nil {
		return nil, fmt.Errorf("failed to decode providers: %w", err)
	}

	return &account, nil
}
