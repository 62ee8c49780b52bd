package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
	domainerror "github.com/Avaria395/SmartExpenseTracker/internal/domain/error"
	"github.com/Avaria395/SmartExpenseTracker/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var transaction model.TransactionModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&transaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, err
	}
	return transaction.ToEntity(), nil
}

func (r *transactionRepository) FindAll(ctx context.Context) ([]*entity.Transaction, error) {
	var transactions []model.TransactionModel
	err := r.db.WithContext(ctx).Order("record_time DESC").Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return toTransactionEntities(transactions), nil
}

func (r *transactionRepository) FindByBook(ctx context.Context, bookID uuid.UUID) ([]*entity.Transaction, error) {
	var transactions []model.TransactionModel
	err := r.db.WithContext(ctx).
		Where("book_id = ?", bookID).
		Order("record_time DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return toTransactionEntities(transactions), nil
}

// FindByPeriod returns transactions whose record time falls inside the
// closed interval [start, end], newest first.
func (r *transactionRepository) FindByPeriod(ctx context.Context, start, end int64, bookID *uuid.UUID) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).Where("record_time BETWEEN ? AND ?", start, end)
	if bookID != nil {
		query = query.Where("book_id = ?", *bookID)
	}

	var transactions []model.TransactionModel
	if err := query.Order("record_time DESC").Find(&transactions).Error; err != nil {
		return nil, err
	}
	return toTransactionEntities(transactions), nil
}

// SumAmountByType totals the amounts of the given transaction type recorded
// inside [start, end]. An empty interval sums to zero.
func (r *transactionRepository) SumAmountByType(ctx context.Context, transactionType entity.TransactionType, start, end int64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("type = ? AND record_time BETWEEN ? AND ?", int(transactionType), start, end).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// CategoryTotals groups expense amounts inside [start, end] by category.
// Transactions without a category group under a nil key.
func (r *transactionRepository) CategoryTotals(ctx context.Context, start, end int64, bookID *uuid.UUID) ([]adapter.CategoryTotal, error) {
	query := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("category_id, COALESCE(SUM(amount), 0) AS total").
		Where("type = ? AND record_time BETWEEN ? AND ?", int(entity.TransactionTypeExpense), start, end).
		Group("category_id")
	if bookID != nil {
		query = query.Where("book_id = ?", *bookID)
	}

	var rows []struct {
		CategoryID *uuid.UUID
		Total      int64
	}
	if err := query.Order("total DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}

	totals := make([]adapter.CategoryTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, adapter.CategoryTotal{
			CategoryID: row.CategoryID,
			Total:      row.Total,
		})
	}
	return totals, nil
}

// Update persists the editable transaction fields. Derived state is not
// touched here; the ledger repository owns side effects.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ?", transaction.ID).
		Updates(map[string]interface{}{
			"book_id":     transaction.BookID,
			"category_id": transaction.CategoryID,
			"account_id":  transaction.AccountID,
			"amount":      transaction.Amount,
			"type":        int(transaction.Type),
			"record_time": transaction.RecordTime,
			"remark":      transaction.Remark,
			"updated_at":  transaction.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

func toTransactionEntities(models []model.TransactionModel) []*entity.Transaction {
	transactions := make([]*entity.Transaction, 0, len(models))
	for i := range models {
		transactions = append(transactions, models[i].ToEntity())
	}
	return transactions
}
