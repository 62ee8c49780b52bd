package statistics

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

func expenseOn(t *testing.T, loc *time.Location, year int, month time.Month, day int, amount int64) *entity.Transaction {
	t.Helper()
	recordTime := time.Date(year, month, day, 12, 0, 0, 0, loc).UnixMilli()
	return entity.NewTransaction(uuid.New(), nil, nil, amount, entity.TransactionTypeExpense, recordTime, "")
}

func incomeOn(t *testing.T, loc *time.Location, year int, month time.Month, day int, amount int64) *entity.Transaction {
	t.Helper()
	recordTime := time.Date(year, month, day, 12, 0, 0, 0, loc).UnixMilli()
	return entity.NewTransaction(uuid.New(), nil, nil, amount, entity.TransactionTypeIncome, recordTime, "")
}

func TestBinDailyTrend(t *testing.T) {
	loc := time.UTC

	t.Run("one slot per calendar day", func(t *testing.T) {
		trend := binDailyTrend(nil, 2024, 2, loc)
		if len(trend) != 29 {
			t.Fatalf("expected 29 slots for February 2024, got %d", len(trend))
		}
	})

	t.Run("expenses land in their day", func(t *testing.T) {
		transactions := []*entity.Transaction{
			expenseOn(t, loc, 2024, time.July, 1, 500),
			expenseOn(t, loc, 2024, time.July, 1, 300),
			expenseOn(t, loc, 2024, time.July, 31, 200),
		}

		trend := binDailyTrend(transactions, 2024, 7, loc)
		if trend[0] != 800 {
			t.Errorf("day 1 = %d, want 800", trend[0])
		}
		if trend[30] != 200 {
			t.Errorf("day 31 = %d, want 200", trend[30])
		}
	})

	t.Run("income is ignored", func(t *testing.T) {
		transactions := []*entity.Transaction{
			incomeOn(t, loc, 2024, time.July, 10, 9999),
		}
		trend := binDailyTrend(transactions, 2024, 7, loc)
		for day, total := range trend {
			if total != 0 {
				t.Errorf("day %d = %d, want 0", day+1, total)
			}
		}
	})

	t.Run("out of month transactions are skipped", func(t *testing.T) {
		transactions := []*entity.Transaction{
			expenseOn(t, loc, 2024, time.June, 30, 100),
			expenseOn(t, loc, 2024, time.August, 1, 100),
			expenseOn(t, loc, 2024, time.July, 15, 100),
		}
		trend := binDailyTrend(transactions, 2024, 7, loc)

		var sum int64
		for _, total := range trend {
			sum += total
		}
		if sum != 100 {
			t.Errorf("trend sum = %d, want 100", sum)
		}
	})

	t.Run("trend sum equals the month expense total", func(t *testing.T) {
		transactions := []*entity.Transaction{
			expenseOn(t, loc, 2024, time.July, 3, 150),
			expenseOn(t, loc, 2024, time.July, 12, 250),
			expenseOn(t, loc, 2024, time.July, 12, 600),
			expenseOn(t, loc, 2024, time.July, 28, 1000),
		}
		trend := binDailyTrend(transactions, 2024, 7, loc)

		var sum int64
		for _, total := range trend {
			sum += total
		}
		if sum != 2000 {
			t.Errorf("trend sum = %d, want 2000", sum)
		}
	})
}

func TestBinMonthlyTrend(t *testing.T) {
	loc := time.UTC

	t.Run("always twelve slots", func(t *testing.T) {
		trend := binMonthlyTrend(nil, 2024, entity.TransactionTypeExpense, loc)
		if len(trend) != 12 {
			t.Fatalf("expected 12 slots, got %d", len(trend))
		}
	})

	t.Run("amounts land in their month and type", func(t *testing.T) {
		transactions := []*entity.Transaction{
			expenseOn(t, loc, 2024, time.January, 5, 100),
			expenseOn(t, loc, 2024, time.December, 25, 400),
			incomeOn(t, loc, 2024, time.January, 5, 9000),
			expenseOn(t, loc, 2023, time.January, 5, 777), // other year
		}

		expense := binMonthlyTrend(transactions, 2024, entity.TransactionTypeExpense, loc)
		if expense[0] != 100 {
			t.Errorf("january expense = %d, want 100", expense[0])
		}
		if expense[11] != 400 {
			t.Errorf("december expense = %d, want 400", expense[11])
		}

		income := binMonthlyTrend(transactions, 2024, entity.TransactionTypeIncome, loc)
		if income[0] != 9000 {
			t.Errorf("january income = %d, want 9000", income[0])
		}
	})
}
