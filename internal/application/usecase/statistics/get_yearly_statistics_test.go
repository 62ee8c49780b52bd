package statistics

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

func TestCategoryBreakdown(t *testing.T) {
	loc := time.UTC
	dining := uuid.New()
	transport := uuid.New()

	withCategory := func(txn *entity.Transaction, id uuid.UUID) *entity.Transaction {
		txn.CategoryID = &id
		return txn
	}

	t.Run("groups by category, largest first", func(t *testing.T) {
		transactions := []*entity.Transaction{
			withCategory(expenseOn(t, loc, 2024, time.July, 1, 3000), dining),
			withCategory(expenseOn(t, loc, 2024, time.July, 2, 2000), dining),
			withCategory(expenseOn(t, loc, 2024, time.July, 3, 1500), transport),
		}

		stats := categoryBreakdown(transactions)
		if len(stats) != 2 {
			t.Fatalf("got %d groups, want 2", len(stats))
		}
		if *stats[0].CategoryID != dining || stats[0].Total != 5000 {
			t.Errorf("first group = (%v, %d), want (%v, 5000)", stats[0].CategoryID, stats[0].Total, dining)
		}
		if *stats[1].CategoryID != transport || stats[1].Total != 1500 {
			t.Errorf("second group = (%v, %d), want (%v, 1500)", stats[1].CategoryID, stats[1].Total, transport)
		}
	})

	t.Run("uncategorized expenses group under nil", func(t *testing.T) {
		transactions := []*entity.Transaction{
			expenseOn(t, loc, 2024, time.July, 1, 700),
			expenseOn(t, loc, 2024, time.July, 2, 300),
		}

		stats := categoryBreakdown(transactions)
		if len(stats) != 1 {
			t.Fatalf("got %d groups, want 1", len(stats))
		}
		if stats[0].CategoryID != nil || stats[0].Total != 1000 {
			t.Errorf("group = (%v, %d), want (nil, 1000)", stats[0].CategoryID, stats[0].Total)
		}
	})

	t.Run("income never appears", func(t *testing.T) {
		transactions := []*entity.Transaction{
			withCategory(incomeOn(t, loc, 2024, time.July, 1, 9999), dining),
		}
		if stats := categoryBreakdown(transactions); len(stats) != 0 {
			t.Errorf("got %d groups, want 0", len(stats))
		}
	})
}
