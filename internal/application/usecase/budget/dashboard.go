package budget

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/application/usecase/account"
	"github.com/gkeele21/family-budget/internal/domain/entity"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
	"github.com/gkeele21/family-budget/internal/domain/valueobject"
)

// GetDashboardInput represents the input for the dashboard summary query.
type GetDashboardInput struct {
	BudgetID uuid.UUID
	Month    valueobject.YearMonth
}

// DashboardAccount pairs an account with its derived balances.
type DashboardAccount struct {
	Account        *entity.Account
	Balance        decimal.Decimal
	ClearedBalance decimal.Decimal
}

// DashboardAccountGroup collects the open accounts of one type.
type DashboardAccountGroup struct {
	Type     entity.AccountType
	Accounts []DashboardAccount
	Balance  decimal.Decimal
}

// GetDashboardOutput represents the output of the dashboard summary query.
type GetDashboardOutput struct {
	Budget        *entity.Budget
	Month         valueobject.YearMonth
	Groups        []DashboardAccountGroup
	TotalBalance  decimal.Decimal
	ReadyToAssign CarryForwardResult
}

// dashboardTypeOrder fixes the display order of account type groups.
var dashboardTypeOrder = []entity.AccountType{
	entity.AccountTypeChecking,
	entity.AccountTypeSavings,
	entity.AccountTypeCreditCard,
	entity.AccountTypeCash,
}

// GetDashboardUseCase assembles the overview: open accounts grouped by type
// with derived balances, plus the month's ready-to-assign breakdown.
type GetDashboardUseCase struct {
	budgetRepo        adapter.BudgetRepository
	accountRepo       adapter.AccountRepository
	monthlyBudgetRepo adapter.MonthlyBudgetRepository
	transactionRepo   adapter.TransactionRepository
}

// NewGetDashboardUseCase creates a new GetDashboardUseCase instance.
func NewGetDashboardUseCase(
	budgetRepo adapter.BudgetRepository,
	accountRepo adapter.AccountRepository,
	monthlyBudgetRepo adapter.MonthlyBudgetRepository,
	transactionRepo adapter.TransactionRepository,
) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		budgetRepo:        budgetRepo,
		accountRepo:       accountRepo,
		monthlyBudgetRepo: monthlyBudgetRepo,
		transactionRepo:   transactionRepo,
	}
}

// Execute performs the dashboard query. Closed accounts keep contributing to
// the carry-forward figures but are left off the account groups.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, input GetDashboardInput) (*GetDashboardOutput, error) {
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
	transactions, err := uc.transactionRepo.FindByBudget(ctx, b.ID)
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

	byType := make(map[entity.AccountType][]DashboardAccount)
	for _, a := range accounts {
		if a.IsClosed {
			continue
		}
		byType[a.Type] = append(byType[a.Type], DashboardAccount{
			Account:        a,
			Balance:        account.Balance(a, transactions),
			ClearedBalance: account.ClearedBalance(a, transactions),
		})
	}

	out := &GetDashboardOutput{
		Budget:        b,
		Month:         input.Month,
		Groups:        make([]DashboardAccountGroup, 0, len(byType)),
		ReadyToAssign: CarryForward(accounts, transactions, allocations, input.Month),
	}
	for _, t := range dashboardTypeOrder {
		group, ok := byType[t]
		if !ok {
			continue
		}
		gs := DashboardAccountGroup{Type: t, Accounts: group}
		for _, a := range group {
			gs.Balance = gs.Balance.Add(a.Balance)
		}
		out.Groups = append(out.Groups, gs)
		out.TotalBalance = out.TotalBalance.Add(gs.Balance)
	}
	return out, nil
}
