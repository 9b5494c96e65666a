package budget

import (
	"context"

	"github.com/google/uuid"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
	"github.com/gkeele21/family-budget/internal/domain/valueobject"
)

// ClearBudgetInput represents the input for clearing a month's allocations.
type ClearBudgetInput struct {
	BudgetID uuid.UUID
	Month    valueobject.YearMonth
}

// ClearBudgetUseCase removes every envelope allocation for the month. Earlier
// and later months are untouched; the ready-to-assign figure absorbs the
// freed money on the next snapshot.
type ClearBudgetUseCase struct {
	monthlyBudgetRepo adapter.MonthlyBudgetRepository
}

// NewClearBudgetUseCase creates a new ClearBudgetUseCase instance.
func NewClearBudgetUseCase(monthlyBudgetRepo adapter.MonthlyBudgetRepository) *ClearBudgetUseCase {
	return &ClearBudgetUseCase{monthlyBudgetRepo: monthlyBudgetRepo}
}

// Execute performs the clear.
func (uc *ClearBudgetUseCase) Execute(ctx context.Context, input ClearBudgetInput) error {
	if input.Month.IsZero() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonth,
			"month is required",
			domainerror.ErrInvalidMonth,
		)
	}
	return uc.monthlyBudgetRepo.DeleteByBudgetAndMonth(ctx, input.BudgetID, input.Month)
}
