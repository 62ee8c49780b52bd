package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// UpdateTransactionInput represents the input for updating a transaction.
// All fields are replaced wholesale.
type UpdateTransactionInput struct {
	ID         uuid.UUID
	BookID     uuid.UUID
	CategoryID *uuid.UUID
	AccountID  *uuid.UUID
	Amount     int64
	Type       entity.TransactionType
	RecordTime int64
	Remark     string
}

// UpdateTransactionOutput represents the output of updating a transaction.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles in-place transaction edits.
//
// TODO: editing amount, type, account or category does not re-derive
// account balances or budget spent totals, so an edit can leave derived
// state describing the pre-edit transaction until Recalculate runs.
// Whether edits should replay as delete+record needs a product decision.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	statsCache      adapter.StatsCache
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	statsCache adapter.StatsCache,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		statsCache:      statsCache,
	}
}

// Execute updates the stored transaction fields directly.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if err := validateTransactionInput(input.Amount, input.Type, input.RecordTime); err != nil {
		return nil, err
	}

	transaction, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	transaction.BookID = input.BookID
	transaction.CategoryID = input.CategoryID
	transaction.AccountID = input.AccountID
	transaction.Amount = input.Amount
	transaction.Type = input.Type
	transaction.RecordTime = input.RecordTime
	transaction.Remark = input.Remark
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	invalidateStats(ctx, uc.statsCache)

	return &UpdateTransactionOutput{Transaction: transaction}, nil
}
