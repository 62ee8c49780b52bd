// Package category contains the category lifecycle use cases.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
	domainerror "github.com/Avaria395/SmartExpenseTracker/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Name string
	Type entity.CategoryType
	Icon string
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute creates the category.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if err := validateCategory(name, input.Type); err != nil {
		return nil, err
	}

	category := entity.NewCategory(name, input.Type, input.Icon)
	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{Category: category}, nil
}

func validateCategory(name string, categoryType entity.CategoryType) error {
	if name == "" {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeEmptyCategoryName,
			"category name must not be empty",
			domainerror.ErrEmptyCategoryName,
		)
	}
	if !categoryType.Valid() {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be 0 (expense) or 1 (income)",
			domainerror.ErrInvalidCategoryType,
		)
	}
	return nil
}
