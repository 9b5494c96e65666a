package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/domain/entity"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
	"github.com/gkeele21/family-budget/internal/domain/valueobject"
)

type fakeBudgetRepo struct {
	adapter.BudgetRepository
	budget *entity.Budget
}

func (f *fakeBudgetRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Budget, error) {
	if f.budget != nil && f.budget.ID == id {
		return f.budget, nil
	}
	return nil, nil
}

type fakeAccountRepo struct {
	adapter.AccountRepository
	accounts []*entity.Account
}

func (f *fakeAccountRepo) FindByBudget(_ context.Context, _ uuid.UUID) ([]*entity.Account, error) {
	return f.accounts, nil
}

type fakeTransactionRepo struct {
	adapter.TransactionRepository
	transactions []*entity.Transaction
}

func (f *fakeTransactionRepo) FindByBudget(_ context.Context, _ uuid.UUID) ([]*entity.Transaction, error) {
	return f.transactions, nil
}

func (f *fakeTransactionRepo) FindByBudgetInRange(_ context.Context, _ uuid.UUID, start, end time.Time) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range f.transactions {
		if !t.Date.Before(start) && !t.Date.After(end) {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeAllocationRepo struct {
	adapter.MonthlyBudgetRepository
	allocations []*entity.MonthlyBudget
}

func (f *fakeAllocationRepo) FindByBudgetAndMonth(_ context.Context, _ uuid.UUID, month valueobject.YearMonth) ([]*entity.MonthlyBudget, error) {
	var out []*entity.MonthlyBudget
	for _, a := range f.allocations {
		if a.Month.Compare(month) == 0 {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAllocationRepo) FindByBudgetBefore(_ context.Context, _ uuid.UUID, month valueobject.YearMonth) ([]*entity.MonthlyBudget, error) {
	var out []*entity.MonthlyBudget
	for _, a := range f.allocations {
		if a.Month.Before(month) {
			out = append(out, a)
		}
	}
	return out, nil
}

func TestGetDashboard(t *testing.T) {
	b := &entity.Budget{ID: uuid.New(), Name: "Family Budget"}
	may := valueobject.NewYearMonth(2024, time.May)

	checking := &entity.Account{ID: uuid.New(), BudgetID: b.ID, Name: "Checking", Type: entity.AccountTypeChecking, StartingBalance: dec("100.00")}
	cash := &entity.Account{ID: uuid.New(), BudgetID: b.ID, Name: "Wallet", Type: entity.AccountTypeCash, StartingBalance: dec("20.00")}
	closed := &entity.Account{ID: uuid.New(), BudgetID: b.ID, Name: "Old Savings", Type: entity.AccountTypeSavings, StartingBalance: dec("50.00"), IsClosed: true}

	category := uuid.New()
	transactions := []*entity.Transaction{
		{ID: uuid.New(), BudgetID: b.ID, AccountID: checking.ID, Amount: dec("200.00"), Type: entity.TransactionTypeIncome, Date: time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC), Cleared: true},
		{ID: uuid.New(), BudgetID: b.ID, AccountID: checking.ID, CategoryID: &category, Amount: dec("-40.00"), Type: entity.TransactionTypeExpense, Date: time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)},
	}
	allocations := []*entity.MonthlyBudget{
		{ID: uuid.New(), CategoryID: category, Month: may, BudgetedAmount: dec("30.00")},
	}

	uc := NewGetDashboardUseCase(
		&fakeBudgetRepo{budget: b},
		&fakeAccountRepo{accounts: []*entity.Account{checking, cash, closed}},
		&fakeAllocationRepo{allocations: allocations},
		&fakeTransactionRepo{transactions: transactions},
	)

	t.Run("groups open accounts by type with derived balances", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetDashboardInput{BudgetID: b.ID, Month: may})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Groups) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(output.Groups))
		}
		if output.Groups[0].Type != entity.AccountTypeChecking || output.Groups[1].Type != entity.AccountTypeCash {
			t.Errorf("unexpected group order: %s, %s", output.Groups[0].Type, output.Groups[1].Type)
		}
		if !output.Groups[0].Balance.Equal(dec("260.00")) {
			t.Errorf("checking group: expected 260.00, got %s", output.Groups[0].Balance)
		}
		if !output.Groups[0].Accounts[0].ClearedBalance.Equal(dec("300.00")) {
			t.Errorf("checking cleared: expected 300.00, got %s", output.Groups[0].Accounts[0].ClearedBalance)
		}
		if !output.TotalBalance.Equal(dec("280.00")) {
			t.Errorf("total: expected 280.00, got %s", output.TotalBalance)
		}
	})

	t.Run("closed accounts still feed ready to assign", func(t *testing.T) {
		output, err := uc.Execute(context.Background(), GetDashboardInput{BudgetID: b.ID, Month: may})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 170 starting balances (closed savings included) + 200 income - 30 budgeted.
		if !output.ReadyToAssign.ToBudget.Equal(dec("340.00")) {
			t.Errorf("to budget: expected 340.00, got %s", output.ReadyToAssign.ToBudget)
		}
	})

	t.Run("unknown budget is rejected", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetDashboardInput{BudgetID: uuid.New(), Month: may})
		if !errors.Is(err, domainerror.ErrBudgetNotFound) {
			t.Errorf("expected ErrBudgetNotFound, got %v", err)
		}
	})

	t.Run("rejects a zero month", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), GetDashboardInput{BudgetID: b.ID})
		if !errors.Is(err, domainerror.ErrInvalidMonth) {
			t.Errorf("expected ErrInvalidMonth, got %v", err)
		}
	})
}
