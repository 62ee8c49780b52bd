package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
	domainerror "github.com/Avaria395/SmartExpenseTracker/internal/domain/error"
)

// UpdateAccountInput represents the input for renaming or recoloring an
// account. Balance changes go through SetAccountBalanceUseCase instead.
type UpdateAccountInput struct {
	ID    uuid.UUID
	Name  string
	Color string
}

// UpdateAccountOutput represents the output of updating an account.
type UpdateAccountOutput struct {
	Account *entity.Account
}

// UpdateAccountUseCase handles account name and color edits.
type UpdateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.AccountRepository) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{accountRepo: accountRepo}
}

// Execute updates the account.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeEmptyAccountName,
			"account name must not be empty",
			domainerror.ErrEmptyAccountName,
		)
	}

	account, err := uc.accountRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	account.Name = name
	if input.Color != "" {
		account.Color = input.Color
	} else {
		account.Color = entity.ClassifyAccount(name).Color
	}
	account.UpdatedAt = time.Now().UTC()

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return &UpdateAccountOutput{Account: account}, nil
}
