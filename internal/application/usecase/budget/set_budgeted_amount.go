package budget

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/domain/entity"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
	"github.com/gkeele21/family-budget/internal/domain/valueobject"
)

// SetBudgetedAmountInput represents the input for a direct allocation edit.
type SetBudgetedAmountInput struct {
	BudgetID   uuid.UUID
	CategoryID uuid.UUID
	Month      valueobject.YearMonth
	Amount     decimal.Decimal
}

// SetBudgetedAmountOutput represents the output of a direct allocation edit.
type SetBudgetedAmountOutput struct {
	Allocation *entity.MonthlyBudget
}

// SetBudgetedAmountUseCase writes one category's envelope for one month.
type SetBudgetedAmountUseCase struct {
	categoryRepo      adapter.CategoryRepository
	monthlyBudgetRepo adapter.MonthlyBudgetRepository
}

// NewSetBudgetedAmountUseCase creates a new SetBudgetedAmountUseCase instance.
func NewSetBudgetedAmountUseCase(
	categoryRepo adapter.CategoryRepository,
	monthlyBudgetRepo adapter.MonthlyBudgetRepository,
) *SetBudgetedAmountUseCase {
	return &SetBudgetedAmountUseCase{
		categoryRepo:      categoryRepo,
		monthlyBudgetRepo: monthlyBudgetRepo,
	}
}

// Execute performs the allocation edit. Negative amounts are allowed; moving
// money out of an empty envelope legitimately drives it below zero.
func (uc *SetBudgetedAmountUseCase) Execute(ctx context.Context, input SetBudgetedAmountInput) (*SetBudgetedAmountOutput, error) {
	if input.Month.IsZero() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonth,
			"month is required",
			domainerror.ErrInvalidMonth,
		)
	}
	if err := categoryInBudget(ctx, uc.categoryRepo, input.BudgetID, input.CategoryID); err != nil {
		return nil, err
	}

	row, err := uc.monthlyBudgetRepo.FindByCategoryAndMonth(ctx, input.CategoryID, input.Month)
	if err != nil {
		return nil, err
	}
	if row == nil {
		row = entity.NewMonthlyBudget(input.CategoryID, input.Month, input.Amount)
	} else {
		row.BudgetedAmount = input.Amount
	}
	if err := uc.monthlyBudgetRepo.Upsert(ctx, row); err != nil {
		return nil, err
	}
	return &SetBudgetedAmountOutput{Allocation: row}, nil
}

// categoryInBudget resolves the category and checks it belongs to the budget's
// category tree. Shared by the allocation-editing use cases.
func categoryInBudget(ctx context.Context, repo adapter.CategoryRepository, budgetID, categoryID uuid.UUID) error {
	categories, err := repo.FindCategoriesByBudget(ctx, budgetID)
	if err != nil {
		return err
	}
	for _, c := range categories {
		if c.ID == categoryID {
			return nil
		}
	}
	return domainerror.NewBudgetError(
		domainerror.ErrCodeCategoryNotInBudget,
		"category does not belong to budget",
		domainerror.ErrCategoryNotInBudget,
	)
}
