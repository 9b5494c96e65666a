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

// GetBudgetSnapshotInput represents the input for the monthly snapshot query.
type GetBudgetSnapshotInput struct {
	BudgetID uuid.UUID
	Month    valueobject.YearMonth
}

// CategorySnapshot is one category's envelope state for the month.
type CategorySnapshot struct {
	Category  *entity.Category
	Budgeted  decimal.Decimal
	Spent     decimal.Decimal
	Available decimal.Decimal
}

// GroupSnapshot is one category group with its categories' envelope state and
// group-level totals.
type GroupSnapshot struct {
	Group      *entity.CategoryGroup
	Categories []CategorySnapshot
	Budgeted   decimal.Decimal
	Spent      decimal.Decimal
	Available  decimal.Decimal
}

// GetBudgetSnapshotOutput represents the output of the monthly snapshot query.
type GetBudgetSnapshotOutput struct {
	Budget         *entity.Budget
	Month          valueobject.YearMonth
	EarliestMonth  valueobject.YearMonth
	Groups         []GroupSnapshot
	TotalBudgeted  decimal.Decimal
	TotalSpent     decimal.Decimal
	TotalAvailable decimal.Decimal
	ReadyToAssign  CarryForwardResult
}

// GetBudgetSnapshotUseCase assembles the month view: per-category budgeted,
// spent and available amounts plus the ready-to-assign breakdown.
type GetBudgetSnapshotUseCase struct {
	budgetRepo        adapter.BudgetRepository
	accountRepo       adapter.AccountRepository
	categoryRepo      adapter.CategoryRepository
	monthlyBudgetRepo adapter.MonthlyBudgetRepository
	transactionRepo   adapter.TransactionRepository
}

// NewGetBudgetSnapshotUseCase creates a new GetBudgetSnapshotUseCase instance.
func NewGetBudgetSnapshotUseCase(
	budgetRepo adapter.BudgetRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	monthlyBudgetRepo adapter.MonthlyBudgetRepository,
	transactionRepo adapter.TransactionRepository,
) *GetBudgetSnapshotUseCase {
	return &GetBudgetSnapshotUseCase{
		budgetRepo:        budgetRepo,
		accountRepo:       accountRepo,
		categoryRepo:      categoryRepo,
		monthlyBudgetRepo: monthlyBudgetRepo,
		transactionRepo:   transactionRepo,
	}
}

// Execute loads the budget's rows once and derives the snapshot from them.
func (uc *GetBudgetSnapshotUseCase) Execute(ctx context.Context, input GetBudgetSnapshotInput) (*GetBudgetSnapshotOutput, error) {
	if input.Month.IsZero() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidMonth,
			"month is required",
			domainerror.ErrInvalidMonth,
		)
	}

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

	accounts, err := uc.accountRepo.FindByBudget(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	groups, err := uc.categoryRepo.FindGroupsByBudget(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	current, err := uc.monthlyBudgetRepo.FindByBudgetAndMonth(ctx, b.ID, input.Month)
	if err != nil {
		return nil, err
	}
	prior, err := uc.monthlyBudgetRepo.FindByBudgetBefore(ctx, b.ID, input.Month)
	if err != nil {
		return nil, err
	}
	allocations := append(prior, current...)
	transactions, err := uc.transactionRepo.FindByBudget(ctx, b.ID)
	if err != nil {
		return nil, err
	}

	budgeted := BudgetedByCategory(allocations, input.Month)
	spent := SpentByCategory(transactions, input.Month)

	out := &GetBudgetSnapshotOutput{
		Budget:        b,
		Month:         input.Month,
		EarliestMonth: EarliestMonth(b, accounts, input.Month),
		Groups:        make([]GroupSnapshot, 0, len(groups)),
		ReadyToAssign: CarryForward(accounts, transactions, allocations, input.Month),
	}
	for _, g := range groups {
		gs := GroupSnapshot{Group: g, Categories: make([]CategorySnapshot, 0, len(g.Categories))}
		for _, c := range g.Categories {
			cs := CategorySnapshot{
				Category:  c,
				Budgeted:  budgeted[c.ID],
				Spent:     spent[c.ID],
				Available: budgeted[c.ID].Sub(spent[c.ID]),
			}
			gs.Categories = append(gs.Categories, cs)
			gs.Budgeted = gs.Budgeted.Add(cs.Budgeted)
			gs.Spent = gs.Spent.Add(cs.Spent)
			gs.Available = gs.Available.Add(cs.Available)
		}
		out.Groups = append(out.Groups, gs)
		out.TotalBudgeted = out.TotalBudgeted.Add(gs.Budgeted)
		out.TotalSpent = out.TotalSpent.Add(gs.Spent)
		out.TotalAvailable = out.TotalAvailable.Add(gs.Available)
	}
	return out, nil
}
