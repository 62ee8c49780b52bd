package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
	domainerror "github.com/Avaria395/SmartExpenseTracker/internal/domain/error"
	"github.com/Avaria395/SmartExpenseTracker/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	return r.db.WithContext(ctx).Create(model.BudgetFromEntity(budget)).Error
}

func (r *budgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	var budget model.BudgetModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, err
	}
	return budget.ToEntity(), nil
}

func (r *budgetRepository) FindAll(ctx context.Context) ([]*entity.Budget, error) {
	var budgets []model.BudgetModel
	err := r.db.WithContext(ctx).
		Order("year DESC, month DESC, created_at").
		Find(&budgets).Error
	if err != nil {
		return nil, err
	}
	return toBudgetEntities(budgets), nil
}

func (r *budgetRepository) FindByMonth(ctx context.Context, year, month int) ([]*entity.Budget, error) {
	var budgets []model.BudgetModel
	err := r.db.WithContext(ctx).
		Where("year = ? AND month = ?", year, month).
		Order("created_at").
		Find(&budgets).Error
	if err != nil {
		return nil, err
	}
	return toBudgetEntities(budgets), nil
}

// FindByCategoryAndMonth returns the oldest matching row when duplicates
// exist. Ordinary budgets are not deduplicated on write; readers take the
// first row by creation order.
func (r *budgetRepository) FindByCategoryAndMonth(ctx context.Context, category string, year, month int) (*entity.Budget, error) {
	var budget model.BudgetModel
	err := r.db.WithContext(ctx).
		Where("category = ? AND year = ? AND month = ?", category, year, month).
		Order("created_at").
		First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, err
	}
	return budget.ToEntity(), nil
}

func (r *budgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	result := r.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Where("id = ?", budget.ID).
		Updates(map[string]interface{}{
			"category":      budget.Category,
			"budget_amount": budget.BudgetAmount,
			"spent_amount":  budget.SpentAmount,
			"year":          budget.Year,
			"month":         budget.Month,
			"note":          budget.Note,
			"updated_at":    budget.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

func (r *budgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BudgetModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

// UpsertTotalForMonth replaces the total-budget sentinel row for (year,
// month) with the given budget. Delete and insert run in one database
// transaction so at most one sentinel row exists per month at any time,
// and a replacement cannot half-apply.
func (r *budgetRepository) UpsertTotalForMonth(ctx context.Context, budget *entity.Budget) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Where("category = ? AND year = ? AND month = ?", entity.TotalBudgetCategory, budget.Year, budget.Month).
			Delete(&model.BudgetModel{}).Error
		if err != nil {
			return err
		}
		return tx.Create(model.BudgetFromEntity(budget)).Error
	})
}

// TotalBudgetAmountForMonth reads the sentinel row's budget amount for the
// month. Zero with ok=false means no total budget is set.
func (r *budgetRepository) TotalBudgetAmountForMonth(ctx context.Context, year, month int) (int64, bool, error) {
	var budget model.BudgetModel
	err := r.db.WithContext(ctx).
		Where("category = ? AND year = ? AND month = ?", entity.TotalBudgetCategory, year, month).
		First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return budget.BudgetAmount, true, nil
}

// UpdateSpent overwrites the spent total of the (category, year, month)
// rows. Duplicate category rows all receive the new value, keeping them
// consistent with each other.
func (r *budgetRepository) UpdateSpent(ctx context.Context, category string, year, month int, spent int64) error {
	result := r.db.WithContext(ctx).
		Model(&model.BudgetModel{}).
		Where("category = ? AND year = ? AND month = ?", category, year, month).
		Updates(map[string]interface{}{
			"spent_amount": spent,
			"updated_at":   time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrBudgetNotFound
	}
	return nil
}

func toBudgetEntities(models []model.BudgetModel) []*entity.Budget {
	budgets := make([]*entity.Budget, 0, len(models))
	for i := range models {
		budgets = append(budgets, models[i].ToEntity())
	}
	return budgets
}
