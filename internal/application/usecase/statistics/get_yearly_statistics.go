package statistics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// GetYearlyStatisticsInput represents the input for the yearly view.
type GetYearlyStatisticsInput struct {
	Year int
}

// GetYearlyStatisticsOutput represents the output of the yearly view.
// The trend slices always have twelve slots; each slice sums to the
// corresponding yearly total.
type GetYearlyStatisticsOutput struct {
	Year          int
	Expense       int64
	Income        int64
	Balance       int64
	ExpenseTrend  []int64
	IncomeTrend   []int64
	CategoryStats []entity.CategoryStat
}

// GetYearlyStatisticsUseCase aggregates one calendar year into totals and
// per-month trends.
type GetYearlyStatisticsUseCase struct {
	transactionRepo adapter.TransactionRepository
	loc             *time.Location
}

// NewGetYearlyStatisticsUseCase creates a new GetYearlyStatisticsUseCase instance.
func NewGetYearlyStatisticsUseCase(transactionRepo adapter.TransactionRepository, loc *time.Location) *GetYearlyStatisticsUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &GetYearlyStatisticsUseCase{
		transactionRepo: transactionRepo,
		loc:             loc,
	}
}

// Execute computes the year's statistics. Totals are derived from the
// same transaction set as the trends, so the conservation property (trend
// sums equal totals) holds by construction.
func (uc *GetYearlyStatisticsUseCase) Execute(ctx context.Context, input GetYearlyStatisticsInput) (*GetYearlyStatisticsOutput, error) {
	if err := validateYear(input.Year); err != nil {
		return nil, err
	}

	start, end := YearBounds(input.Year, uc.loc)
	transactions, err := uc.transactionRepo.FindByPeriod(ctx, start, end, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to compute yearly statistics: %w", err)
	}

	expenseTrend := binMonthlyTrend(transactions, input.Year, entity.TransactionTypeExpense, uc.loc)
	incomeTrend := binMonthlyTrend(transactions, input.Year, entity.TransactionTypeIncome, uc.loc)

	var expense, income int64
	for month := 0; month < 12; month++ {
		expense += expenseTrend[month]
		income += incomeTrend[month]
	}

	return &GetYearlyStatisticsOutput{
		Year:          input.Year,
		Expense:       expense,
		Income:        income,
		Balance:       income - expense,
		ExpenseTrend:  expenseTrend,
		IncomeTrend:   incomeTrend,
		CategoryStats: categoryBreakdown(transactions),
	}, nil
}

// categoryBreakdown groups the expense transactions by category, largest
// total first. Uncategorized expenses group under a nil key.
func categoryBreakdown(transactions []*entity.Transaction) []entity.CategoryStat {
	totals := make(map[uuid.UUID]int64)
	var uncategorized int64
	var hasUncategorized bool
	for _, txn := range transactions {
		if txn.Type != entity.TransactionTypeExpense {
			continue
		}
		if txn.CategoryID == nil {
			uncategorized += txn.Amount
			hasUncategorized = true
			continue
		}
		totals[*txn.CategoryID] += txn.Amount
	}

	stats := make([]entity.CategoryStat, 0, len(totals)+1)
	for id, total := range totals {
		categoryID := id
		stats = append(stats, entity.CategoryStat{CategoryID: &categoryID, Total: total})
	}
	if hasUncategorized {
		stats = append(stats, entity.CategoryStat{Total: uncategorized})
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Total > stats[j].Total
	})
	return stats
}
