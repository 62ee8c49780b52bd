// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
	"github.com/Avaria395/SmartExpenseTracker/internal/integration/persistence/model"
)

// ledgerRepository implements the adapter.LedgerRepository interface.
//
// Every mutation runs inside one database transaction spanning the
// transaction row, the account balance delta, and the budget spent updates,
// so a failure mid-sequence cannot leave balances or budgets out of sync
// with the transaction log.
type ledgerRepository struct {
	db  *gorm.DB
	loc *time.Location
}

// NewLedgerRepository creates a new ledger repository instance. The location
// is the calendar used to derive (year, month) budget keys from record
// timestamps.
func NewLedgerRepository(db *gorm.DB, loc *time.Location) adapter.LedgerRepository {
	if loc == nil {
		loc = time.Local
	}
	return &ledgerRepository{
		db:  db,
		loc: loc,
	}
}

// RecordTransaction inserts the transaction row and applies its balance and
// budget side effects atomically.
func (r *ledgerRepository) RecordTransaction(ctx context.Context, transaction *entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.TransactionFromEntity(transaction)).Error; err != nil {
			return err
		}
		if err := applyBalanceDelta(tx, transaction, transaction.BalanceDelta()); err != nil {
			return err
		}
		return r.applyBudgetDelta(tx, transaction, false)
	})
}

// DeleteTransaction reverses the stored transaction's side effects and then
// physically deletes the row, atomically.
func (r *ledgerRepository) DeleteTransaction(ctx context.Context, transaction *entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := applyBalanceDelta(tx, transaction, -transaction.BalanceDelta()); err != nil {
			return err
		}
		if err := r.applyBudgetDelta(tx, transaction, true); err != nil {
			return err
		}
		return tx.Delete(&model.TransactionModel{}, "id = ?", transaction.ID).Error
	})
}

// applyBalanceDelta adds the signed delta to the referenced account balance.
// The additive UPDATE is what keeps concurrent mutations from losing
// updates; the balance is never written wholesale here.
func applyBalanceDelta(tx *gorm.DB, transaction *entity.Transaction, delta int64) error {
	if transaction.AccountID == nil || delta == 0 {
		return nil
	}
	return tx.Model(&model.AccountModel{}).
		Where("id = ?", *transaction.AccountID).
		UpdateColumn("balance", gorm.Expr("balance + ?", delta)).Error
}

// applyBudgetDelta adjusts the spent totals of the category budget row and
// the total-budget sentinel row for the month the transaction was recorded
// in. Only expense transactions with a resolvable category participate.
// Absence of the category or of either budget row means there is nothing to
// do; the two lookups are independent of each other.
func (r *ledgerRepository) applyBudgetDelta(tx *gorm.DB, transaction *entity.Transaction, reverse bool) error {
	if transaction.Type != entity.TransactionTypeExpense || transaction.CategoryID == nil {
		return nil
	}

	var category model.CategoryModel
	if err := tx.Where("id = ?", *transaction.CategoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Debug("skipping budget propagation, category missing",
				"categoryID", *transaction.CategoryID,
			)
			return nil
		}
		return err
	}

	recordedAt := transaction.RecordedAt(r.loc)
	year, month := recordedAt.Year(), int(recordedAt.Month())

	if err := adjustBudgetSpent(tx, category.Name, year, month, transaction.Amount, reverse); err != nil {
		return err
	}
	return adjustBudgetSpent(tx, entity.TotalBudgetCategory, year, month, transaction.Amount, reverse)
}

// adjustBudgetSpent adds (or, on reversal, subtracts) amount from the spent
// total of the budget row matching (category, year, month). Reversal clamps
// at zero: spent totals never go negative even from inconsistent prior
// state. A missing row is not an error.
func adjustBudgetSpent(tx *gorm.DB, category string, year, month int, amount int64, reverse bool) error {
	var budget model.BudgetModel
	err := tx.Where("category = ? AND year = ? AND month = ?", category, year, month).
		Order("created_at").
		First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	spent := budget.SpentAmount + amount
	if reverse {
		spent = budget.SpentAmount - amount
		if spent < 0 {
			spent = 0
		}
	}

	return tx.Model(&model.BudgetModel{}).
		Where("id = ?", budget.ID).
		Updates(map[string]interface{}{
			"spent_amount": spent,
			"updated_at":   time.Now().UTC(),
		}).Error
}

// Recalculate rebuilds every account balance and budget spent total from
// the transaction log. Balances are recomputed from a zero base, budgets
// from the expense transactions recorded in their month.
func (r *ledgerRepository) Recalculate(ctx context.Context) (*adapter.RecalculateResult, error) {
	result := &adapter.RecalculateResult{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var transactions []model.TransactionModel
		if err := tx.Find(&transactions).Error; err != nil {
			return err
		}

		var categories []model.CategoryModel
		if err := tx.Find(&categories).Error; err != nil {
			return err
		}
		categoryNames := make(map[string]string, len(categories))
		for _, c := range categories {
			categoryNames[c.ID.String()] = c.Name
		}

		balances := make(map[string]int64)
		type budgetKey struct {
			category string
			year     int
			month    int
		}
		spent := make(map[budgetKey]int64)

		for i := range transactions {
			txn := transactions[i].ToEntity()
			if txn.AccountID != nil {
				balances[txn.AccountID.String()] += txn.BalanceDelta()
			}
			if txn.Type != entity.TransactionTypeExpense || txn.CategoryID == nil {
				continue
			}
			name, ok := categoryNames[txn.CategoryID.String()]
			if !ok {
				continue
			}
			recordedAt := txn.RecordedAt(r.loc)
			year, month := recordedAt.Year(), int(recordedAt.Month())
			spent[budgetKey{name, year, month}] += txn.Amount
			spent[budgetKey{entity.TotalBudgetCategory, year, month}] += txn.Amount
		}

		var accounts []model.AccountModel
		if err := tx.Find(&accounts).Error; err != nil {
			return err
		}
		for _, account := range accounts {
			recomputed := balances[account.ID.String()]
			if recomputed == account.Balance {
				continue
			}
			if err := tx.Model(&model.AccountModel{}).
				Where("id = ?", account.ID).
				UpdateColumn("balance", recomputed).Error; err != nil {
				return err
			}
			result.AccountsUpdated++
		}

		var budgets []model.BudgetModel
		if err := tx.Find(&budgets).Error; err != nil {
			return err
		}
		for _, budget := range budgets {
			recomputed := spent[budgetKey{budget.Category, budget.Year, budget.Month}]
			if recomputed == budget.SpentAmount {
				continue
			}
			if err := tx.Model(&model.BudgetModel{}).
				Where("id = ?", budget.ID).
				Updates(map[string]interface{}{
					"spent_amount": recomputed,
					"updated_at":   time.Now().UTC(),
				}).Error; err != nil {
				return err
			}
			result.BudgetsUpdated++
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
