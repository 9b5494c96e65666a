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

// CategoryMonthDetailInput represents the input for the category month
// detail query.
type CategoryMonthDetailInput struct {
	BudgetID   uuid.UUID
	CategoryID uuid.UUID
	Month      valueobject.YearMonth
}

// CategoryMonthEntry is one transaction's contribution to the category in
// the month. For split transactions the amount is the category's share, not
// the parent total.
type CategoryMonthEntry struct {
	Transaction *entity.Transaction
	Amount      decimal.Decimal
}

// CategoryMonthDetailOutput represents the output of the category month
// detail query.
type CategoryMonthDetailOutput struct {
	Category *entity.Category
	Month    valueobject.YearMonth
	Entries  []CategoryMonthEntry
	Total    decimal.Decimal
}

// CategoryMonthDetailUseCase lists the activity behind one category cell of
// the month view.
type CategoryMonthDetailUseCase struct {
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
}

// NewCategoryMonthDetailUseCase creates a new CategoryMonthDetailUseCase
// instance.
func NewCategoryMonthDetailUseCase(
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
) *CategoryMonthDetailUseCase {
	return &CategoryMonthDetailUseCase{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the category month detail query.
func (uc *CategoryMonthDetailUseCase) Execute(ctx context.Context, input CategoryMonthDetailInput) (*CategoryMonthDetailOutput, error) {
	if input.Month.IsZero() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonth,
			"month is required",
			domainerror.ErrInvalidMonth,
		)
	}

	category, err := uc.categoryRepo.FindCategoryByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	var owned bool
	if category != nil {
		categories, err := uc.categoryRepo.FindCategoriesByBudget(ctx, input.BudgetID)
		if err != nil {
			return nil, err
		}
		for _, c := range categories {
			if c.ID == category.ID {
				owned = true
				break
			}
		}
	}
	if category == nil || !owned {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeCategoryNotInBudget,
			"category does not belong to budget",
			domainerror.ErrCategoryNotInBudget,
		)
	}

	transactions, err := uc.transactionRepo.FindByBudgetInRange(ctx, input.BudgetID, input.Month.Start(), input.Month.End())
	if err != nil {
		return nil, err
	}

	out := &CategoryMonthDetailOutput{
		Category: category,
		Month:    input.Month,
		Entries:  make([]CategoryMonthEntry, 0),
	}
	for _, t := range transactions {
		amount := t.SplitAmountFor(category.ID)
		if amount.IsZero() {
			continue
		}
		out.Entries = append(out.Entries, CategoryMonthEntry{Transaction: t, Amount: amount})
		out.Total = out.Total.Add(amount)
	}
	return out, nil
}
