package budget

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/domain/entity"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
	"github.com/gkeele21/family-budget/internal/domain/valueobject"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	Name                 string
	StartMonth           *valueobject.YearMonth
	DefaultMonthlyIncome decimal.Decimal
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{budgetRepo: budgetRepo}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNameRequired,
			"budget name is required",
			domainerror.ErrBudgetNameRequired,
		)
	}

	b := entity.NewBudget(name)
	b.StartMonth = input.StartMonth
	b.DefaultMonthlyIncome = input.DefaultMonthlyIncome
	if err := uc.budgetRepo.Create(ctx, b); err != nil {
		return nil, err
	}
	return &CreateBudgetOutput{Budget: b}, nil
}

// UpdateBudgetInput represents the input for budget settings updates. Nil
// pointers leave the corresponding field unchanged.
type UpdateBudgetInput struct {
	BudgetID             uuid.UUID
	Name                 *string
	StartMonth           *valueobject.YearMonth
	ClearStartMonth      bool
	DefaultMonthlyIncome *decimal.Decimal
}

// UpdateBudgetOutput represents the output of a budget settings update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget settings updates.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{budgetRepo: budgetRepo}
}

// Execute performs the budget settings update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	b, err := uc.budgetRepo.FindByID(ctx, input.BudgetID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}

	if input.Name != nil && strings.TrimSpace(*input.Name) != "" {
		b.Name = strings.TrimSpace(*input.Name)
	}
	if input.ClearStartMonth {
		b.StartMonth = nil
	} else if input.StartMonth != nil {
		b.StartMonth = input.StartMonth
	}
	if input.DefaultMonthlyIncome != nil {
		b.DefaultMonthlyIncome = *input.DefaultMonthlyIncome
	}

	if err := uc.budgetRepo.Update(ctx, b); err != nil {
		return nil, err
	}
	return &UpdateBudgetOutput{Budget: b}, nil
}

// ListBudgetsUseCase lists all budgets.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{budgetRepo: budgetRepo}
}

// Execute returns every budget, ordered by name.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context) ([]*entity.Budget, error) {
	return uc.budgetRepo.FindAll(ctx)
}

// DeleteBudgetUseCase deletes a budget and everything it owns.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(budgetRepo adapter.BudgetRepository) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{budgetRepo: budgetRepo}
}

// Execute performs the deletion. Accounts, categories, allocations,
// transactions and recurring definitions cascade with the budget.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	b, err := uc.budgetRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}
	return uc.budgetRepo.Delete(ctx, id)
}
