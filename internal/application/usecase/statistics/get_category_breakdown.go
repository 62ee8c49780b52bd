package statistics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// GetCategoryBreakdownInput represents the input for the per-category
// expense breakdown of one month.
type GetCategoryBreakdownInput struct {
	Year   int
	Month  int
	BookID *uuid.UUID
}

// GetCategoryBreakdownOutput represents the output of the breakdown.
type GetCategoryBreakdownOutput struct {
	Stats []entity.CategoryStat
}

// GetCategoryBreakdownUseCase aggregates expense totals per category for a
// month, largest first.
type GetCategoryBreakdownUseCase struct {
	transactionRepo adapter.TransactionRepository
	loc             *time.Location
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(transactionRepo adapter.TransactionRepository, loc *time.Location) *GetCategoryBreakdownUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &GetCategoryBreakdownUseCase{
		transactionRepo: transactionRepo,
		loc:             loc,
	}
}

// Execute computes the breakdown. Categories with no expenses in the month
// are absent from the result.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	if err := validateYearMonth(input.Year, input.Month); err != nil {
		return nil, err
	}

	start, end := MonthBounds(input.Year, input.Month, uc.loc)
	totals, err := uc.transactionRepo.CategoryTotals(ctx, start, end, input.BookID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute category breakdown: %w", err)
	}

	stats := make([]entity.CategoryStat, 0, len(totals))
	for _, total := range totals {
		stats = append(stats, entity.CategoryStat{
			CategoryID: total.CategoryID,
			Total:      total.Total,
		})
	}
	return &GetCategoryBreakdownOutput{Stats: stats}, nil
}
