// Package adapter defines interfaces for external dependencies of the application layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence.
type AccountRepository interface {
	// Create creates a new account.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindAll retrieves all accounts.
	FindAll(ctx context.Context) ([]*entity.Account, error)

	// Update updates an account's name and color. The balance is not
	// written by Update; it only changes through ApplyBalanceDelta.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account.
	Delete(ctx context.Context, id uuid.UUID) error

	// ApplyBalanceDelta atomically adds the signed delta to the stored
	// balance. Additive application is what keeps concurrent mutations to
	// the same account from losing updates.
	ApplyBalanceDelta(ctx context.Context, id uuid.UUID, delta int64) error
}
