// Package ledger contains the use cases that mutate the transaction log
// and its derived state (account balances, budget spent totals).
package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
	domainerror "github.com/Avaria395/SmartExpenseTracker/internal/domain/error"
)

// RecordTransactionInput represents the input for recording a transaction.
type RecordTransactionInput struct {
	BookID     uuid.UUID
	CategoryID *uuid.UUID
	AccountID  *uuid.UUID
	Amount     int64
	Type       entity.TransactionType
	RecordTime int64
	Remark     string
}

// RecordTransactionOutput represents the output of recording a transaction.
type RecordTransactionOutput struct {
	Transaction *entity.Transaction
}

// RecordTransactionUseCase handles transaction recording together with its
// balance and budget side effects.
type RecordTransactionUseCase struct {
	ledgerRepo adapter.LedgerRepository
	bookRepo   adapter.BookRepository
	statsCache adapter.StatsCache
}

// NewRecordTransactionUseCase creates a new RecordTransactionUseCase instance.
func NewRecordTransactionUseCase(
	ledgerRepo adapter.LedgerRepository,
	bookRepo adapter.BookRepository,
	statsCache adapter.StatsCache,
) *RecordTransactionUseCase {
	return &RecordTransactionUseCase{
		ledgerRepo: ledgerRepo,
		bookRepo:   bookRepo,
		statsCache: statsCache,
	}
}

// Execute records the transaction. The insert and every side effect land
// in one atomic unit; a failure anywhere rolls the whole mutation back.
func (uc *RecordTransactionUseCase) Execute(ctx context.Context, input RecordTransactionInput) (*RecordTransactionOutput, error) {
	if err := validateTransactionInput(input.Amount, input.Type, input.RecordTime); err != nil {
		return nil, err
	}

	if _, err := uc.bookRepo.FindByID(ctx, input.BookID); err != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnBookNotFound,
			"book not found",
			domainerror.ErrBookNotFoundForTransaction,
		)
	}

	transaction := entity.NewTransaction(
		input.BookID,
		input.CategoryID,
		input.AccountID,
		input.Amount,
		input.Type,
		input.RecordTime,
		input.Remark,
	)

	if err := uc.ledgerRepo.RecordTransaction(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	invalidateStats(ctx, uc.statsCache)

	return &RecordTransactionOutput{Transaction: transaction}, nil
}

// validateTransactionInput checks the fields shared by record and update.
func validateTransactionInput(amount int64, transactionType entity.TransactionType, recordTime int64) error {
	if amount < 0 {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNegativeAmount,
			"amount must not be negative",
			domainerror.ErrNegativeTransactionAmount,
		)
	}
	if !transactionType.Valid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 0 (expense), 1 (income) or 2 (transfer)",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if recordTime < 0 {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidRecordTime,
			"record time must be a non-negative epoch millisecond timestamp",
			domainerror.ErrInvalidRecordTime,
		)
	}
	return nil
}

// invalidateStats drops cached statistics after a mutation. Cache failures
// only cost freshness, so they are logged and swallowed.
func invalidateStats(ctx context.Context, cache adapter.StatsCache) {
	if cache == nil {
		return
	}
	invalidateCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()
	if err := cache.InvalidateAll(invalidateCtx); err != nil {
		slog.Warn("failed to invalidate statistics cache", "error", err)
	}
}
