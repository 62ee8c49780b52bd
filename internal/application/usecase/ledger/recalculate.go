package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
)

// RecalculateOutput reports how many derived rows a rebuild corrected.
type RecalculateOutput struct {
	AccountsUpdated int
	BudgetsUpdated  int
}

// RecalculateUseCase rebuilds all derived state (account balances, budget
// spent totals) from the transaction log. It is the repair path for drift
// introduced by in-place transaction edits or external data fixes.
type RecalculateUseCase struct {
	ledgerRepo adapter.LedgerRepository
	statsCache adapter.StatsCache
}

// NewRecalculateUseCase creates a new RecalculateUseCase instance.
func NewRecalculateUseCase(ledgerRepo adapter.LedgerRepository, statsCache adapter.StatsCache) *RecalculateUseCase {
	return &RecalculateUseCase{
		ledgerRepo: ledgerRepo,
		statsCache: statsCache,
	}
}

// Execute performs the rebuild.
func (uc *RecalculateUseCase) Execute(ctx context.Context) (*RecalculateOutput, error) {
	result, err := uc.ledgerRepo.Recalculate(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to recalculate derived state: %w", err)
	}

	slog.Info("recalculated derived state",
		"accountsUpdated", result.AccountsUpdated,
		"budgetsUpdated", result.BudgetsUpdated,
	)

	invalidateStats(ctx, uc.statsCache)

	return &RecalculateOutput{
		AccountsUpdated: result.AccountsUpdated,
		BudgetsUpdated:  result.BudgetsUpdated,
	}, nil
}
