// Package mocks provides shared test doubles for the store interfaces.
package mocks

import (
	"context"
	"sync"

	"github.com/amihq/ami-auth/internal/domain"
	"github.com/amihq/ami-auth/internal/store"
)

// MockAccountStore is an in-memory implementation of store.AccountStore
// for tests. It enforces email uniqueness the way the real unique index
// does, and can be primed with errors to simulate backend failures.
type MockAccountStore struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account // keyed by normalized email

	// CreateErr and GetErr, when set, are returned by the corresponding
	// method before any other logic runs.
	CreateErr error
	GetErr    error
}

// Ensure MockAccountStore implements store.AccountStore interface
var _ store.AccountStore = (*MockAccountStore)(nil)

// NewMockAccountStore creates an empty MockAccountStore.
func NewMockAccountStore() *MockAccountStore {
	return &MockAccountStore{
		accounts: make(map[string]*domain.Account),
	}
}

// Create implements store.AccountStore.Create.
func (m *MockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.accounts[account.Email]; exists {
		return store.ErrEmailExists
	}

	copied := *account
	m.accounts[account.Email] = &copied
	return nil
}

// GetByEmail implements store.AccountStore.GetByEmail.
func (m *MockAccountStore) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	account, exists := m.accounts[email]
	if !exists {
		return nil, store.ErrAccountNotFound
	}

	copied := *account
	return &copied, nil
}

// Len reports the number of stored accounts.
func (m *MockAccountStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.accounts)
}
