package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
)

// DeleteTransactionInput represents the input for deleting a transaction.
type DeleteTransactionInput struct {
	ID uuid.UUID
}

// DeleteTransactionUseCase handles transaction deletion together with the
// reversal of its balance and budget side effects.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	ledgerRepo      adapter.LedgerRepository
	statsCache      adapter.StatsCache
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	ledgerRepo adapter.LedgerRepository,
	statsCache adapter.StatsCache,
) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactionRepo: transactionRepo,
		ledgerRepo:      ledgerRepo,
		statsCache:      statsCache,
	}
}

// Execute deletes the transaction. The reversal deltas are derived from
// the row as stored, not from caller-supplied data, so a delete always
// mirrors exactly what the insert applied.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}

	if err := uc.ledgerRepo.DeleteTransaction(ctx, transaction); err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	invalidateStats(ctx, uc.statsCache)

	return nil
}
