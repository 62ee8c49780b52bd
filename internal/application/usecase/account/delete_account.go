package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
)

// DeleteAccountInput represents the input for deleting an account.
type DeleteAccountInput struct {
	ID uuid.UUID
}

// DeleteAccountUseCase handles account deletion. Transactions referencing
// the account keep their nullable reference; their account lookup simply
// stops resolving.
type DeleteAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(accountRepo adapter.AccountRepository) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{accountRepo: accountRepo}
}

// Execute deletes the account.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	if err := uc.accountRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}
