package account

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// SetAccountBalanceInput represents the input for correcting an account
// balance to a target value.
type SetAccountBalanceInput struct {
	ID      uuid.UUID
	Balance int64
}

// SetAccountBalanceOutput represents the output of a balance correction.
type SetAccountBalanceOutput struct {
	Account *entity.Account
}

// SetAccountBalanceUseCase corrects an account balance. The target value
// is converted to a delta so the write composes with concurrent ledger
// mutations instead of overwriting them.
type SetAccountBalanceUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewSetAccountBalanceUseCase creates a new SetAccountBalanceUseCase instance.
func NewSetAccountBalanceUseCase(accountRepo adapter.AccountRepository) *SetAccountBalanceUseCase {
	return &SetAccountBalanceUseCase{accountRepo: accountRepo}
}

// Execute sets the balance.
func (uc *SetAccountBalanceUseCase) Execute(ctx context.Context, input SetAccountBalanceInput) (*SetAccountBalanceOutput, error) {
	account, err := uc.accountRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	delta := input.Balance - account.Balance
	if delta != 0 {
		if err := uc.accountRepo.ApplyBalanceDelta(ctx, input.ID, delta); err != nil {
			return nil, fmt.Errorf("failed to set account balance: %w", err)
		}
	}

	account.Balance = input.Balance
	return &SetAccountBalanceOutput{Account: account}, nil
}
