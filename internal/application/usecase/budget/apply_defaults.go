package budget

import (
	"context"

	"github.com/google/uuid"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/domain/entity"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
	"github.com/gkeele21/family-budget/internal/domain/valueobject"
)

// ApplyDefaultsInput represents the input for applying category defaults.
type ApplyDefaultsInput struct {
	BudgetID uuid.UUID
	Month    valueobject.YearMonth
}

// ApplyDefaultsOutput reports how many allocations were written.
type ApplyDefaultsOutput struct {
	Applied int
}

// ApplyDefaultsUseCase sets each category's envelope for the month to its
// suggested default amount. Categories without a default are left untouched.
type ApplyDefaultsUseCase struct {
	categoryRepo      adapter.CategoryRepository
	monthlyBudgetRepo adapter.MonthlyBudgetRepository
}

// NewApplyDefaultsUseCase creates a new ApplyDefaultsUseCase instance.
func NewApplyDefaultsUseCase(
	categoryRepo adapter.CategoryRepository,
	monthlyBudgetRepo adapter.MonthlyBudgetRepository,
) *ApplyDefaultsUseCase {
	return &ApplyDefaultsUseCase{
		categoryRepo:      categoryRepo,
		monthlyBudgetRepo: monthlyBudgetRepo,
	}
}

// Execute performs the apply. All writes land in one database transaction.
func (uc *ApplyDefaultsUseCase) Execute(ctx context.Context, input ApplyDefaultsInput) (*ApplyDefaultsOutput, error) {
	if input.Month.IsZero() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonth,
			"month is required",
			domainerror.ErrInvalidMonth,
		)
	}

	categories, err := uc.categoryRepo.FindCategoriesByBudget(ctx, input.BudgetID)
	if err != nil {
		return nil, err
	}

	var rows []*entity.MonthlyBudget
	for _, c := range categories {
		if c.DefaultAmount.IsZero() {
			continue
		}
		row, err := uc.monthlyBudgetRepo.FindByCategoryAndMonth(ctx, c.ID, input.Month)
		if err != nil {
			return nil, err
		}
		if row == nil {
			row = entity.NewMonthlyBudget(c.ID, input.Month, c.DefaultAmount)
		} else {
			row.BudgetedAmount = c.DefaultAmount
		}
		rows = append(rows, row)
	}
	if len(rows) > 0 {
		if err := uc.monthlyBudgetRepo.UpsertMany(ctx, rows); err != nil {
			return nil, err
		}
	}
	return &ApplyDefaultsOutput{Applied: len(rows)}, nil
}
