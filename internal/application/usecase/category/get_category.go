package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/Avaria395/SmartExpenseTracker/internal/application/adapter"
	"github.com/Avaria395/SmartExpenseTracker/internal/domain/entity"
)

// GetCategoryInput represents the input for retrieving a category.
type GetCategoryInput struct {
	ID uuid.UUID
}

// GetCategoryOutput represents the output of retrieving a category.
type GetCategoryOutput struct {
	Category *entity.Category
}

// GetCategoryUseCase handles single category retrieval.
type GetCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewGetCategoryUseCase creates a new GetCategoryUseCase instance.
func NewGetCategoryUseCase(categoryRepo adapter.CategoryRepository) *GetCategoryUseCase {
	return &GetCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute retrieves the category by ID.
func (uc *GetCategoryUseCase) Execute(ctx context.Context, input GetCategoryInput) (*GetCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetCategoryOutput{Category: category}, nil
}
