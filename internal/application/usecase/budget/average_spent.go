package budget

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
	"github.com/gkeele21/family-budget/internal/domain/valueobject"
)

// AverageSpentInput represents the input for the average-spend projection.
type AverageSpentInput struct {
	BudgetID uuid.UUID
	Month    valueobject.YearMonth
}

// AverageSpentOutput maps each category to its historical monthly average.
type AverageSpentOutput struct {
	Averages map[uuid.UUID]decimal.Decimal
}

// AverageSpentUseCase computes each category's average monthly expense over
// the calendar year, as a planning aid when allocating envelopes.
type AverageSpentUseCase struct {
	categoryRepo    adapter.CategoryRepository
	transactionRepo adapter.TransactionRepository
}

// NewAverageSpentUseCase creates a new AverageSpentUseCase instance.
func NewAverageSpentUseCase(
	categoryRepo adapter.CategoryRepository,
	transactionRepo adapter.TransactionRepository,
) *AverageSpentUseCase {
	return &AverageSpentUseCase{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute performs the projection query.
func (uc *AverageSpentUseCase) Execute(ctx context.Context, input AverageSpentInput) (*AverageSpentOutput, error) {
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
	ids := make([]uuid.UUID, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}

	start, end := AverageRange(input.Month)
	transactions, err := uc.transactionRepo.FindByBudgetInRange(ctx, input.BudgetID, start, end)
	if err != nil {
		return nil, err
	}

	return &AverageSpentOutput{Averages: AverageSpentByCategory(transactions, ids)}, nil
}
