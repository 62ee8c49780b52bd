// Package adapter defines interfaces for external dependencies of the application layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// CategoryTotal is one row of the per-category expense aggregation.
// CategoryID is nil for uncategorized transactions.
type CategoryTotal struct {
	CategoryID *uuid.UUID
	Total      int64
}

// TransactionRepository defines the interface for transaction query and
// direct-update operations. Mutations that carry balance/budget side
// effects go through LedgerRepository instead.
type TransactionRepository interface {
	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindAll retrieves all transactions ordered by record time descending.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// FindByBook retrieves all transactions of a book, record time descending.
	FindByBook(ctx context.Context, bookID uuid.UUID) ([]*entity.Transaction, error)

	// FindByPeriod retrieves transactions whose record time falls in the
	// closed interval [start, end] (epoch millis), optionally scoped to a book.
	FindByPeriod(ctx context.Context, start, end int64, bookID *uuid.UUID) ([]*entity.Transaction, error)

	// SumAmountByType sums the amounts of transactions of the given type in
	// the closed interval [start, end]. No matching rows yields 0.
	SumAmountByType(ctx context.Context, transactionType entity.TransactionType, start, end int64) (int64, error)

	// CategoryTotals aggregates expense amounts per category over the closed
	// interval [start, end], optionally scoped to a book. Categories without
	// matching transactions are absent from the result.
	CategoryTotals(ctx context.Context, start, end int64, bookID *uuid.UUID) ([]CategoryTotal, error)

	// Update updates a transaction's stored fields in place. It applies no
	// balance or budget side effects.
	Update(ctx context.Context, transaction *entity.Transaction) error
}
