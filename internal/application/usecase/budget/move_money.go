package budget

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
	"github.com/gkeele21/family-budget/internal/domain/valueobject"
)

// MoveMoneyInput represents the input for moving money between envelopes.
type MoveMoneyInput struct {
	BudgetID       uuid.UUID
	FromCategoryID uuid.UUID
	ToCategoryID   uuid.UUID
	Month          valueobject.YearMonth
	Amount         decimal.Decimal
}

// MoveMoneyUseCase shifts an amount from one category's envelope to another
// for a single month. Either envelope may go negative.
type MoveMoneyUseCase struct {
	categoryRepo      adapter.CategoryRepository
	monthlyBudgetRepo adapter.MonthlyBudgetRepository
}

// NewMoveMoneyUseCase creates a new MoveMoneyUseCase instance.
func NewMoveMoneyUseCase(
	categoryRepo adapter.CategoryRepository,
	monthlyBudgetRepo adapter.MonthlyBudgetRepository,
) *MoveMoneyUseCase {
	return &MoveMoneyUseCase{
		categoryRepo:      categoryRepo,
		monthlyBudgetRepo: monthlyBudgetRepo,
	}
}

// Execute performs the move. The adjustment of both rows is a single locked
// database transaction so concurrent moves on the same envelope serialize
// instead of losing updates.
func (uc *MoveMoneyUseCase) Execute(ctx context.Context, input MoveMoneyInput) error {
	if input.Month.IsZero() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonth,
			"month is required",
			domainerror.ErrInvalidMonth,
		)
	}
	if !input.Amount.IsPositive() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeMoveAmountNotPositive,
			"amount must be positive",
			domainerror.ErrMoveAmountNotPositive,
		)
	}
	if input.FromCategoryID == input.ToCategoryID {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeMoveSameCategory,
			"source and destination categories must differ",
			domainerror.ErrMoveSameCategory,
		)
	}
	if err := categoryInBudget(ctx, uc.categoryRepo, input.BudgetID, input.FromCategoryID); err != nil {
		return err
	}
	if err := categoryInBudget(ctx, uc.categoryRepo, input.BudgetID, input.ToCategoryID); err != nil {
		return err
	}

	return uc.monthlyBudgetRepo.AdjustPair(ctx, input.FromCategoryID, input.ToCategoryID, input.Month, input.Amount)
}
