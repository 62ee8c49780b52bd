// Package adapter defines interfaces for external dependencies of the application layer.
package adapter

import (
	"context"

	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// RecalculateResult reports what a full derived-state rebuild touched.
type RecalculateResult struct {
	AccountsUpdated int
	BudgetsUpdated  int
}

// LedgerRepository defines the mutations that must keep the transaction
// log, account balances, and budget spent totals consistent. Each method
// runs as a single atomic unit: either every write lands or none do.
type LedgerRepository interface {
	// RecordTransaction inserts the transaction and applies its side
	// effects: the signed balance delta on the referenced account (unless
	// the transaction is a transfer or has no account), and for expenses
	// with a resolvable category, the spent-total additions on the
	// category's budget row and the month's total-budget row. Missing
	// categories or budget rows are skipped, not errors.
	RecordTransaction(ctx context.Context, transaction *entity.Transaction) error

	// DeleteTransaction reverses the side effects of the stored transaction
	// (mirror-signed balance delta; spent totals decremented with a floor
	// of zero) and then physically deletes the row.
	DeleteTransaction(ctx context.Context, transaction *entity.Transaction) error

	// Recalculate rebuilds every account balance and budget spent total
	// from scratch from the transaction log.
	Recalculate(ctx context.Context) (*RecalculateResult, error)
}
