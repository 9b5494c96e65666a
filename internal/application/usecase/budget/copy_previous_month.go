package budget

import (
	"context"

	"github.com/google/uuid"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/domain/entity"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
	"github.com/gkeele21/family-budget/internal/domain/valueobject"
)

// CopyPreviousMonthInput represents the input for copying last month's
// allocations into the target month.
type CopyPreviousMonthInput struct {
	BudgetID uuid.UUID
	Month    valueobject.YearMonth
}

// CopyPreviousMonthOutput reports how many allocations were written.
type CopyPreviousMonthOutput struct {
	Copied int
}

// CopyPreviousMonthUseCase replays the previous month's envelope amounts onto
// the target month, overwriting any existing rows for it.
type CopyPreviousMonthUseCase struct {
	monthlyBudgetRepo adapter.MonthlyBudgetRepository
}

// NewCopyPreviousMonthUseCase creates a new CopyPreviousMonthUseCase instance.
func NewCopyPreviousMonthUseCase(monthlyBudgetRepo adapter.MonthlyBudgetRepository) *CopyPreviousMonthUseCase {
	return &CopyPreviousMonthUseCase{monthlyBudgetRepo: monthlyBudgetRepo}
}

// Execute performs the copy. All writes land in one database transaction.
func (uc *CopyPreviousMonthUseCase) Execute(ctx context.Context, input CopyPreviousMonthInput) (*CopyPreviousMonthOutput, error) {
	if input.Month.IsZero() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonth,
			"month is required",
			domainerror.ErrInvalidMonth,
		)
	}

	previous, err := uc.monthlyBudgetRepo.FindByBudgetAndMonth(ctx, input.BudgetID, input.Month.Prev())
	if err != nil {
		return nil, err
	}
	if len(previous) == 0 {
		return &CopyPreviousMonthOutput{Copied: 0}, nil
	}

	rows := make([]*entity.MonthlyBudget, 0, len(previous))
	for _, p := range previous {
		existing, err := uc.monthlyBudgetRepo.FindByCategoryAndMonth(ctx, p.CategoryID, input.Month)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			existing.BudgetedAmount = p.BudgetedAmount
			rows = append(rows, existing)
			continue
		}
		rows = append(rows, entity.NewMonthlyBudget(p.CategoryID, input.Month, p.BudgetedAmount))
	}
	if err := uc.monthlyBudgetRepo.UpsertMany(ctx, rows); err != nil {
		return nil, err
	}
	return &CopyPreviousMonthOutput{Copied: len(rows)}, nil
}
