// Package account contains the account lifecycle use cases.
package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
	domainerror "github.com/Avaria395/SmartExpenseTracker/internal/domain/error"
)

// CreateAccountInput represents the input for account creation. Balance is
// the opening balance in minor units and may be negative for liabilities.
type CreateAccountInput struct {
	Name    string
	Balance int64
	Color   string
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{accountRepo: accountRepo}
}

// Execute creates the account. An omitted color falls back to the color of
// the name's class.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeEmptyAccountName,
			"account name must not be empty",
			domainerror.ErrEmptyAccountName,
		)
	}

	account := entity.NewAccount(name, input.Balance, input.Color)
	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{Account: account}, nil
}
