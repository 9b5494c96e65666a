package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/domain/entity"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
	"github.com/gkeele21/family-budget/internal/domain/valueobject"
)

// ApplyProjectionInput represents the input for applying a projection slot.
type ApplyProjectionInput struct {
	BudgetID        uuid.UUID
	Month           valueobject.YearMonth
	ProjectionIndex int // 1-based, 1..3
}

// ApplyProjectionOutput reports how many allocations were written.
type ApplyProjectionOutput struct {
	Applied int
}

// ApplyProjectionUseCase sets each category's envelope for the month to the
// amount in the chosen projection slot. An empty slot falls back to the
// category's default amount; categories with neither are left untouched.
type ApplyProjectionUseCase struct {
	categoryRepo      adapter.CategoryRepository
	monthlyBudgetRepo adapter.MonthlyBudgetRepository
}

// NewApplyProjectionUseCase creates a new ApplyProjectionUseCase instance.
func NewApplyProjectionUseCase(
	categoryRepo adapter.CategoryRepository,
	monthlyBudgetRepo adapter.MonthlyBudgetRepository,
) *ApplyProjectionUseCase {
	return &ApplyProjectionUseCase{
		categoryRepo:      categoryRepo,
		monthlyBudgetRepo: monthlyBudgetRepo,
	}
}

// Execute performs the apply. All writes land in one database transaction.
func (uc *ApplyProjectionUseCase) Execute(ctx context.Context, input ApplyProjectionInput) (*ApplyProjectionOutput, error) {
	if input.Month.IsZero() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonth,
			"month is required",
			domainerror.ErrInvalidMonth,
		)
	}
	if input.ProjectionIndex < 1 || input.ProjectionIndex > entity.MaxProjections {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidProjectionIndex,
			fmt.Sprintf("projection index must be between 1 and %d", entity.MaxProjections),
			domainerror.ErrInvalidProjectionIndex,
		)
	}

	categories, err := uc.categoryRepo.FindCategoriesByBudget(ctx, input.BudgetID)
	if err != nil {
		return nil, err
	}

	var rows []*entity.MonthlyBudget
	for _, c := range categories {
		amount := c.Projection(input.ProjectionIndex)
		if amount == nil {
			if !c.DefaultAmount.IsPositive() {
				continue
			}
			fallback := c.DefaultAmount
			amount = &fallback
		}
		row, err := uc.monthlyBudgetRepo.FindByCategoryAndMonth(ctx, c.ID, input.Month)
		if err != nil {
			return nil, err
		}
		if row == nil {
			row = entity.NewMonthlyBudget(c.ID, input.Month, *amount)
		} else {
			row.BudgetedAmount = *amount
		}
		rows = append(rows, row)
	}
	if len(rows) > 0 {
		if err := uc.monthlyBudgetRepo.UpsertMany(ctx, rows); err != nil {
			return nil, err
		}
	}
	return &ApplyProjectionOutput{Applied: len(rows)}, nil
}
