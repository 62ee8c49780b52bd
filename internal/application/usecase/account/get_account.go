package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// GetAccountInput represents the input for retrieving an account.
type GetAccountInput struct {
	ID uuid.UUID
}

// GetAccountOutput represents the output of retrieving an account.
type GetAccountOutput struct {
	Account *entity.Account
}

// GetAccountUseCase handles single account retrieval.
type GetAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewGetAccountUseCase creates a new GetAccountUseCase instance.
func NewGetAccountUseCase(accountRepo adapter.AccountRepository) *GetAccountUseCase {
	return &GetAccountUseCase{accountRepo: accountRepo}
}

// Execute retrieves the account by ID.
func (uc *GetAccountUseCase) Execute(ctx context.Context, input GetAccountInput) (*GetAccountOutput, error) {
	account, err := uc.accountRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetAccountOutput{Account: account}, nil
}
