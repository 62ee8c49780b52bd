package statistics

import (
	"time"

	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// binDailyTrend sums expense amounts per calendar day of (year, month).
// The result always has one slot per day of the month; days without
// expenses stay zero. Transactions whose derived day falls outside the
// month are skipped rather than letting them corrupt a neighboring bin.
func binDailyTrend(transactions []*entity.Transaction, year, month int, loc *time.Location) []int64 {
	trend := make([]int64, DaysInMonth(year, month))
	for _, txn := range transactions {
		if txn.Type != entity.TransactionTypeExpense {
			continue
		}
		recordedAt := txn.RecordedAt(loc)
		if recordedAt.Year() != year || int(recordedAt.Month()) != month {
			continue
		}
		trend[recordedAt.Day()-1] += txn.Amount
	}
	return trend
}

// binMonthlyTrend sums amounts of the given type per calendar month of the
// year. The result always has twelve slots.
func binMonthlyTrend(transactions []*entity.Transaction, year int, transactionType entity.TransactionType, loc *time.Location) []int64 {
	trend := make([]int64, 12)
	for _, txn := range transactions {
		if txn.Type != transactionType {
			continue
		}
		recordedAt := txn.RecordedAt(loc)
		if recordedAt.Year() != year {
			continue
		}
		trend[int(recordedAt.Month())-1] += txn.Amount
	}
	return trend
}
