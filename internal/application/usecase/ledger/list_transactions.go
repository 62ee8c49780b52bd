package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
	domainerror "github.com/Avaria395/SmartExpenseTracker/internal/domain/error"
)

// ListTransactionsInput represents the optional filters for listing
// transactions. Date bounds are calendar dates in "2006-01-02" form and
// expand to whole days in the use case's location.
type ListTransactionsInput struct {
	BookID    *uuid.UUID
	StartDate string
	EndDate   string
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
}

// ListTransactionsUseCase handles transaction listing with filters.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
	loc             *time.Location
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository, loc *time.Location) *ListTransactionsUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &ListTransactionsUseCase{
		transactionRepo: transactionRepo,
		loc:             loc,
	}
}

// Execute lists transactions, newest first. With no filters it returns
// everything; a date range is a closed interval covering both named days.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	if input.StartDate == "" && input.EndDate == "" {
		transactions, err := uc.findWithoutPeriod(ctx, input.BookID)
		if err != nil {
			return nil, err
		}
		return &ListTransactionsOutput{Transactions: transactions}, nil
	}

	start, end, err := uc.periodBounds(input.StartDate, input.EndDate)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.transactionRepo.FindByPeriod(ctx, start, end, input.BookID)
	if err != nil {
		return nil, err
	}
	return &ListTransactionsOutput{Transactions: transactions}, nil
}

func (uc *ListTransactionsUseCase) findWithoutPeriod(ctx context.Context, bookID *uuid.UUID) ([]*entity.Transaction, error) {
	if bookID != nil {
		return uc.transactionRepo.FindByBook(ctx, *bookID)
	}
	return uc.transactionRepo.FindAll(ctx)
}

// periodBounds expands the date filter to epoch-millisecond bounds. A
// missing start opens the interval at zero; a missing end closes it at now.
func (uc *ListTransactionsUseCase) periodBounds(startDate, endDate string) (int64, int64, error) {
	var start int64
	end := time.Now().In(uc.loc).UnixMilli()

	if startDate != "" {
		day, err := time.ParseInLocation("2006-01-02", startDate, uc.loc)
		if err != nil {
			return 0, 0, domainerror.NewStatisticsError(
				domainerror.ErrCodeInvalidPeriod,
				"start date must be in YYYY-MM-DD form",
				domainerror.ErrInvalidPeriod,
			)
		}
		start = day.UnixMilli()
	}

	if endDate != "" {
		day, err := time.ParseInLocation("2006-01-02", endDate, uc.loc)
		if err != nil {
			return 0, 0, domainerror.NewStatisticsError(
				domainerror.ErrCodeInvalidPeriod,
				"end date must be in YYYY-MM-DD form",
				domainerror.ErrInvalidPeriod,
			)
		}
		end = day.AddDate(0, 0, 1).UnixMilli() - 1
	}

	if end < start {
		return 0, 0, domainerror.NewStatisticsError(
			domainerror.ErrCodeInvalidPeriod,
			"end date must not precede start date",
			domainerror.ErrInvalidPeriod,
		)
	}

	return start, end, nil
}
