package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/domain/entity"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fakeTransactionRepo struct {
	adapter.TransactionRepository
	created []*entity.Transaction
}

func (f *fakeTransactionRepo) Create(_ context.Context, t *entity.Transaction) error {
	f.created = append(f.created, t)
	return nil
}

func (f *fakeTransactionRepo) CreateTransferPair(_ context.Context, outflow, inflow *entity.Transaction) error {
	f.created = append(f.created, outflow, inflow)
	return nil
}

type fakeAccountRepo struct {
	adapter.AccountRepository
	accounts map[uuid.UUID]*entity.Account
}

func (f *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	return f.accounts[id], nil
}

type fakeCategoryRepo struct {
	adapter.CategoryRepository
	categories []*entity.Category
}

func (f *fakeCategoryRepo) FindCategoriesByBudget(_ context.Context, _ uuid.UUID) ([]*entity.Category, error) {
	return f.categories, nil
}

type fakePayeeRepo struct {
	adapter.PayeeRepository
	payees map[string]*entity.Payee
}

func (f *fakePayeeRepo) FindOrCreate(_ context.Context, budgetID uuid.UUID, name string) (*entity.Payee, error) {
	if f.payees == nil {
		f.payees = make(map[string]*entity.Payee)
	}
	key := strings.ToLower(name)
	if p, ok := f.payees[key]; ok {
		return p, nil
	}
	p := entity.NewPayee(budgetID, name, nil)
	f.payees[key] = p
	return p, nil
}

type fixture struct {
	budgetID  uuid.UUID
	checking  *entity.Account
	cash      *entity.Account
	groceries *entity.Category
	dining    *entity.Category

	transactionRepo *fakeTransactionRepo
	accountRepo     *fakeAccountRepo
	categoryRepo    *fakeCategoryRepo
	payeeRepo       *fakePayeeRepo
}

func newFixture() *fixture {
	budgetID := uuid.New()
	checking := entity.NewAccount(budgetID, "Checking", entity.AccountTypeChecking, dec("1000.00"), 0)
	cash := entity.NewAccount(budgetID, "Wallet", entity.AccountTypeCash, dec("50.00"), 1)
	groceries := entity.NewCategory(uuid.New(), "Groceries", "", decimal.Zero, 0)
	dining := entity.NewCategory(uuid.New(), "Dining Out", "", decimal.Zero, 1)
	return &fixture{
		budgetID:  budgetID,
		checking:  checking,
		cash:      cash,
		groceries: groceries,
		dining:    dining,
		transactionRepo: &fakeTransactionRepo{},
		accountRepo: &fakeAccountRepo{accounts: map[uuid.UUID]*entity.Account{
			checking.ID: checking,
			cash.ID:     cash,
		}},
		categoryRepo: &fakeCategoryRepo{categories: []*entity.Category{groceries, dining}},
		payeeRepo:    &fakePayeeRepo{},
	}
}

func TestRecordTransaction(t *testing.T) {
	t.Run("expense is stored negative", func(t *testing.T) {
		f := newFixture()
		uc := NewRecordTransactionUseCase(f.transactionRepo, f.accountRepo, f.categoryRepo, f.payeeRepo)
		out, err := uc.Execute(context.Background(), RecordTransactionInput{
			BudgetID:   f.budgetID,
			AccountID:  f.checking.ID,
			CategoryID: &f.groceries.ID,
			Amount:     dec("45.50"),
			Type:       entity.TransactionTypeExpense,
			Date:       date(2024, time.March, 10),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Transaction.Amount.Equal(dec("-45.50")) {
			t.Errorf("expected -45.50, got %s", out.Transaction.Amount)
		}
	})

	t.Run("income is stored positive", func(t *testing.T) {
		f := newFixture()
		uc := NewRecordTransactionUseCase(f.transactionRepo, f.accountRepo, f.categoryRepo, f.payeeRepo)
		out, err := uc.Execute(context.Background(), RecordTransactionInput{
			BudgetID:  f.budgetID,
			AccountID: f.checking.ID,
			Amount:    dec("2000.00"),
			Type:      entity.TransactionTypeIncome,
			Date:      date(2024, time.March, 1),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Transaction.Amount.Equal(dec("2000.00")) {
			t.Errorf("expected 2000.00, got %s", out.Transaction.Amount)
		}
	})

	t.Run("cash account transactions are always cleared", func(t *testing.T) {
		f := newFixture()
		uc := NewRecordTransactionUseCase(f.transactionRepo, f.accountRepo, f.categoryRepo, f.payeeRepo)
		out, err := uc.Execute(context.Background(), RecordTransactionInput{
			BudgetID:  f.budgetID,
			AccountID: f.cash.ID,
			Amount:    dec("5.00"),
			Type:      entity.TransactionTypeExpense,
			Date:      date(2024, time.March, 10),
			Cleared:   false,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Transaction.Cleared {
			t.Error("cash transaction must be cleared")
		}
	})

	t.Run("rejects transfer type", func(t *testing.T) {
		f := newFixture()
		uc := NewRecordTransactionUseCase(f.transactionRepo, f.accountRepo, f.categoryRepo, f.payeeRepo)
		_, err := uc.Execute(context.Background(), RecordTransactionInput{
			BudgetID:  f.budgetID,
			AccountID: f.checking.ID,
			Amount:    dec("10.00"),
			Type:      entity.TransactionTypeTransfer,
			Date:      date(2024, time.March, 10),
		})
		if !errors.Is(err, domainerror.ErrInvalidTransactionType) {
			t.Errorf("expected ErrInvalidTransactionType, got %v", err)
		}
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		f := newFixture()
		uc := NewRecordTransactionUseCase(f.transactionRepo, f.accountRepo, f.categoryRepo, f.payeeRepo)
		_, err := uc.Execute(context.Background(), RecordTransactionInput{
			BudgetID:  f.budgetID,
			AccountID: f.checking.ID,
			Amount:    dec("-45.50"),
			Type:      entity.TransactionTypeExpense,
			Date:      date(2024, time.March, 10),
		})
		if !errors.Is(err, domainerror.ErrAmountNotPositive) {
			t.Errorf("expected ErrAmountNotPositive, got %v", err)
		}
	})

	t.Run("rejects foreign accounts", func(t *testing.T) {
		f := newFixture()
		uc := NewRecordTransactionUseCase(f.transactionRepo, f.accountRepo, f.categoryRepo, f.payeeRepo)
		_, err := uc.Execute(context.Background(), RecordTransactionInput{
			BudgetID:  uuid.New(), // not the account's budget
			AccountID: f.checking.ID,
			Amount:    dec("10.00"),
			Type:      entity.TransactionTypeExpense,
			Date:      date(2024, time.March, 10),
		})
		if !errors.Is(err, domainerror.ErrAccountNotInBudget) {
			t.Errorf("expected ErrAccountNotInBudget, got %v", err)
		}
	})

	t.Run("payee default category fills in when none chosen", func(t *testing.T) {
		f := newFixture()
		f.payeeRepo.payees = map[string]*entity.Payee{
			"kroger": {ID: uuid.New(), BudgetID: f.budgetID, Name: "Kroger", DefaultCategoryID: &f.groceries.ID},
		}
		uc := NewRecordTransactionUseCase(f.transactionRepo, f.accountRepo, f.categoryRepo, f.payeeRepo)
		out, err := uc.Execute(context.Background(), RecordTransactionInput{
			BudgetID:  f.budgetID,
			AccountID: f.checking.ID,
			PayeeName: "Kroger",
			Amount:    dec("30.00"),
			Type:      entity.TransactionTypeExpense,
			Date:      date(2024, time.March, 12),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Transaction.CategoryID == nil || *out.Transaction.CategoryID != f.groceries.ID {
			t.Error("expected the payee's default category")
		}
	})
}

func TestRecordSplitTransaction(t *testing.T) {
	t.Run("splits sum to the parent amount with parent category nil", func(t *testing.T) {
		f := newFixture()
		uc := NewRecordSplitTransactionUseCase(f.transactionRepo, f.accountRepo, f.categoryRepo, f.payeeRepo)
		out, err := uc.Execute(context.Background(), RecordSplitTransactionInput{
			BudgetID:  f.budgetID,
			AccountID: f.checking.ID,
			Amount:    dec("100.00"),
			Type:      entity.TransactionTypeExpense,
			Date:      date(2024, time.March, 5),
			Splits: []SplitInput{
				{CategoryID: f.groceries.ID, Amount: dec("60.00")},
				{CategoryID: f.dining.ID, Amount: dec("40.00")},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		parent := out.Transaction
		if parent.CategoryID != nil {
			t.Error("split parent must not carry a direct category")
		}
		if !parent.Amount.Equal(dec("-100.00")) {
			t.Errorf("parent amount: expected -100.00, got %s", parent.Amount)
		}
		var sum decimal.Decimal
		for _, s := range parent.Splits {
			sum = sum.Add(s.Amount)
		}
		if !sum.Equal(parent.Amount) {
			t.Errorf("splits sum %s does not equal parent amount %s", sum, parent.Amount)
		}
	})

	t.Run("single split collapses to a direct category", func(t *testing.T) {
		f := newFixture()
		uc := NewRecordSplitTransactionUseCase(f.transactionRepo, f.accountRepo, f.categoryRepo, f.payeeRepo)
		out, err := uc.Execute(context.Background(), RecordSplitTransactionInput{
			BudgetID:  f.budgetID,
			AccountID: f.checking.ID,
			Amount:    dec("25.00"),
			Type:      entity.TransactionTypeExpense,
			Date:      date(2024, time.March, 5),
			Splits:    []SplitInput{{CategoryID: f.groceries.ID, Amount: dec("25.00")}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Transaction.IsSplit() {
			t.Error("single split must not be stored as a split")
		}
		if out.Transaction.CategoryID == nil || *out.Transaction.CategoryID != f.groceries.ID {
			t.Error("expected a direct category assignment")
		}
	})

	t.Run("rejects splits that do not sum to the stated amount", func(t *testing.T) {
		f := newFixture()
		uc := NewRecordSplitTransactionUseCase(f.transactionRepo, f.accountRepo, f.categoryRepo, f.payeeRepo)
		_, err := uc.Execute(context.Background(), RecordSplitTransactionInput{
			BudgetID:  f.budgetID,
			AccountID: f.checking.ID,
			Amount:    dec("100.00"),
			Type:      entity.TransactionTypeExpense,
			Date:      date(2024, time.March, 5),
			Splits: []SplitInput{
				{CategoryID: f.groceries.ID, Amount: dec("60.00")},
				{CategoryID: f.dining.ID, Amount: dec("30.00")},
			},
		})
		if !errors.Is(err, domainerror.ErrSplitSumMismatch) {
			t.Errorf("expected ErrSplitSumMismatch, got %v", err)
		}
		if len(f.transactionRepo.created) != 0 {
			t.Error("nothing should be recorded on a mismatch")
		}
	})

	t.Run("rejects empty splits", func(t *testing.T) {
		f := newFixture()
		uc := NewRecordSplitTransactionUseCase(f.transactionRepo, f.accountRepo, f.categoryRepo, f.payeeRepo)
		_, err := uc.Execute(context.Background(), RecordSplitTransactionInput{
			BudgetID:  f.budgetID,
			AccountID: f.checking.ID,
			Type:      entity.TransactionTypeExpense,
			Date:      date(2024, time.March, 5),
		})
		if !errors.Is(err, domainerror.ErrSplitsRequired) {
			t.Errorf("expected ErrSplitsRequired, got %v", err)
		}
	})

	t.Run("rejects a split with a foreign category", func(t *testing.T) {
		f := newFixture()
		uc := NewRecordSplitTransactionUseCase(f.transactionRepo, f.accountRepo, f.categoryRepo, f.payeeRepo)
		_, err := uc.Execute(context.Background(), RecordSplitTransactionInput{
			BudgetID:  f.budgetID,
			AccountID: f.checking.ID,
			Type:      entity.TransactionTypeExpense,
			Date:      date(2024, time.March, 5),
			Splits: []SplitInput{
				{CategoryID: f.groceries.ID, Amount: dec("60.00")},
				{CategoryID: uuid.New(), Amount: dec("40.00")},
			},
		})
		if !errors.Is(err, domainerror.ErrCategoryNotInBudget) {
			t.Errorf("expected ErrCategoryNotInBudget, got %v", err)
		}
	})
}

func TestRecordTransfer(t *testing.T) {
	t.Run("creates mirrored legs", func(t *testing.T) {
		f := newFixture()
		uc := NewRecordTransferUseCase(f.transactionRepo, f.accountRepo)
		out, err := uc.Execute(context.Background(), RecordTransferInput{
			BudgetID:      f.budgetID,
			FromAccountID: f.checking.ID,
			ToAccountID:   f.cash.ID,
			Amount:        dec("200.00"),
			Date:          date(2024, time.March, 15),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Outflow.Amount.Equal(out.Inflow.Amount.Neg()) {
			t.Errorf("legs not mirrored: %s vs %s", out.Outflow.Amount, out.Inflow.Amount)
		}
		if !out.Outflow.Date.Equal(out.Inflow.Date) {
			t.Error("legs must share a date")
		}
		if out.Outflow.CategoryID != nil || out.Inflow.CategoryID != nil {
			t.Error("transfers must not carry a category")
		}
		if out.Outflow.TransferPairID == nil || *out.Outflow.TransferPairID != out.Inflow.ID {
			t.Error("outflow must reference the inflow leg")
		}
		if out.Inflow.TransferPairID == nil || *out.Inflow.TransferPairID != out.Outflow.ID {
			t.Error("inflow must reference the outflow leg")
		}
		// Inflow lands on the cash account, so that leg auto-clears.
		if !out.Inflow.Cleared {
			t.Error("cash leg must be cleared")
		}
	})

	t.Run("rejects transfers within one account", func(t *testing.T) {
		f := newFixture()
		uc := NewRecordTransferUseCase(f.transactionRepo, f.accountRepo)
		_, err := uc.Execute(context.Background(), RecordTransferInput{
			BudgetID:      f.budgetID,
			FromAccountID: f.checking.ID,
			ToAccountID:   f.checking.ID,
			Amount:        dec("200.00"),
			Date:          date(2024, time.March, 15),
		})
		if !errors.Is(err, domainerror.ErrTransferSameAccount) {
			t.Errorf("expected ErrTransferSameAccount, got %v", err)
		}
	})
}
