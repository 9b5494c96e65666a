package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/domain/entity"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
)

// SaveProjectionsInput represents the input for saving a category's
// projection slots. The list is positional; nil entries clear a slot.
type SaveProjectionsInput struct {
	BudgetID    uuid.UUID
	CategoryID  uuid.UUID
	Projections []*decimal.Decimal
}

// SaveProjectionsOutput represents the output of a projection save.
type SaveProjectionsOutput struct {
	Category *entity.Category
}

// SaveProjectionsUseCase stores up to three alternate suggested amounts on a
// category, used for what-if planning.
type SaveProjectionsUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewSaveProjectionsUseCase creates a new SaveProjectionsUseCase instance.
func NewSaveProjectionsUseCase(categoryRepo adapter.CategoryRepository) *SaveProjectionsUseCase {
	return &SaveProjectionsUseCase{categoryRepo: categoryRepo}
}

// Execute performs the save.
func (uc *SaveProjectionsUseCase) Execute(ctx context.Context, input SaveProjectionsInput) (*SaveProjectionsOutput, error) {
	if len(input.Projections) > entity.MaxProjections {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeTooManyProjections,
			fmt.Sprintf("at most %d projections are allowed", entity.MaxProjections),
			domainerror.ErrTooManyProjections,
		)
	}

	c, err := findOwnedCategory(ctx, uc.categoryRepo, input.BudgetID, input.CategoryID)
	if err != nil {
		return nil, err
	}
	c.Projections = input.Projections
	if err := uc.categoryRepo.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}
	return &SaveProjectionsOutput{Category: c}, nil
}

// ClearProjectionsUseCase removes every projection slot from a category.
type ClearProjectionsUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewClearProjectionsUseCase creates a new ClearProjectionsUseCase instance.
func NewClearProjectionsUseCase(categoryRepo adapter.CategoryRepository) *ClearProjectionsUseCase {
	return &ClearProjectionsUseCase{categoryRepo: categoryRepo}
}

// Execute performs the clear.
func (uc *ClearProjectionsUseCase) Execute(ctx context.Context, budgetID, categoryID uuid.UUID) error {
	c, err := findOwnedCategory(ctx, uc.categoryRepo, budgetID, categoryID)
	if err != nil {
		return err
	}
	c.Projections = nil
	return uc.categoryRepo.UpdateCategory(ctx, c)
}
