package recurring

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fakeRecurringRepo struct {
	adapter.RecurringRepository
	definitions  []*entity.RecurringTransaction
	materialized []*entity.Transaction
}

func (f *fakeRecurringRepo) FindDue(_ context.Context, asOf time.Time) ([]*entity.RecurringTransaction, error) {
	var due []*entity.RecurringTransaction
	for _, r := range f.definitions {
		if r.IsDue(asOf) {
			due = append(due, r)
		}
	}
	return due, nil
}

func (f *fakeRecurringRepo) Materialize(_ context.Context, _ *entity.RecurringTransaction, t *entity.Transaction) error {
	f.materialized = append(f.materialized, t)
	return nil
}

type fakeAccountRepo struct {
	adapter.AccountRepository
	accounts map[uuid.UUID]*entity.Account
}

func (f *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Account, error) {
	return f.accounts[id], nil
}

func TestMaterializeDue(t *testing.T) {
	budgetID := uuid.New()
	checking := entity.NewAccount(budgetID, "Checking", entity.AccountTypeChecking, dec("1000.00"), 0)
	cash := entity.NewAccount(budgetID, "Wallet", entity.AccountTypeCash, dec("50.00"), 1)
	accountRepo := &fakeAccountRepo{accounts: map[uuid.UUID]*entity.Account{
		checking.ID: checking,
		cash.ID:     cash,
	}}

	t.Run("emits a transaction and advances the schedule", func(t *testing.T) {
		rent := entity.NewRecurringTransaction(budgetID, checking.ID, nil, nil, dec("900.00"),
			entity.TransactionTypeExpense, entity.FrequencyMonthly, date(2024, time.May, 1), nil, "Rent")
		repo := &fakeRecurringRepo{definitions: []*entity.RecurringTransaction{rent}}
		uc := NewMaterializeDueUseCase(repo, accountRepo)

		out, err := uc.Execute(context.Background(), date(2024, time.May, 3))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Materialized != 1 {
			t.Fatalf("expected 1 materialized, got %d", out.Materialized)
		}
		emitted := repo.materialized[0]
		if !emitted.Amount.Equal(dec("-900.00")) {
			t.Errorf("expected -900.00, got %s", emitted.Amount)
		}
		if !emitted.Date.Equal(date(2024, time.May, 1)) {
			t.Errorf("transaction must be dated at the pre-advance next date, got %s", emitted.Date)
		}
		if emitted.RecurringID == nil || *emitted.RecurringID != rent.ID {
			t.Error("transaction must reference its recurring definition")
		}
		if !rent.NextDate.Equal(date(2024, time.June, 1)) {
			t.Errorf("next date must advance to June 1, got %s", rent.NextDate)
		}
	})

	t.Run("re-running immediately materializes nothing", func(t *testing.T) {
		paycheck := entity.NewRecurringTransaction(budgetID, checking.ID, nil, nil, dec("2000.00"),
			entity.TransactionTypeIncome, entity.FrequencyBiweekly, date(2024, time.May, 3), nil, "")
		repo := &fakeRecurringRepo{definitions: []*entity.RecurringTransaction{paycheck}}
		uc := NewMaterializeDueUseCase(repo, accountRepo)

		asOf := date(2024, time.May, 3)
		first, err := uc.Execute(context.Background(), asOf)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first.Materialized != 1 {
			t.Fatalf("expected 1 materialized, got %d", first.Materialized)
		}
		second, err := uc.Execute(context.Background(), asOf)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if second.Materialized != 0 {
			t.Errorf("expected idempotent re-run, got %d", second.Materialized)
		}
	})

	t.Run("overdue definitions catch up one transaction per missed interval", func(t *testing.T) {
		gym := entity.NewRecurringTransaction(budgetID, checking.ID, nil, nil, dec("30.00"),
			entity.TransactionTypeExpense, entity.FrequencyWeekly, date(2024, time.May, 1), nil, "")
		repo := &fakeRecurringRepo{definitions: []*entity.RecurringTransaction{gym}}
		uc := NewMaterializeDueUseCase(repo, accountRepo)

		// Three weekly occurrences fall on or before May 15: the 1st, 8th, 15th.
		out, err := uc.Execute(context.Background(), date(2024, time.May, 15))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Materialized != 3 {
			t.Errorf("expected 3 materialized, got %d", out.Materialized)
		}
	})

	t.Run("cash account emissions are cleared", func(t *testing.T) {
		coffee := entity.NewRecurringTransaction(budgetID, cash.ID, nil, nil, dec("4.00"),
			entity.TransactionTypeExpense, entity.FrequencyDaily, date(2024, time.May, 3), nil, "")
		repo := &fakeRecurringRepo{definitions: []*entity.RecurringTransaction{coffee}}
		uc := NewMaterializeDueUseCase(repo, accountRepo)

		if _, err := uc.Execute(context.Background(), date(2024, time.May, 3)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !repo.materialized[0].Cleared {
			t.Error("cash emission must be cleared")
		}
	})

	t.Run("late sweep still emits occurrences inside the end window", func(t *testing.T) {
		end := date(2024, time.May, 20)
		streaming := entity.NewRecurringTransaction(budgetID, checking.ID, nil, nil, dec("9.99"),
			entity.TransactionTypeExpense, entity.FrequencyMonthly, date(2024, time.May, 1), &end, "")
		repo := &fakeRecurringRepo{definitions: []*entity.RecurringTransaction{streaming}}
		uc := NewMaterializeDueUseCase(repo, accountRepo)

		// The sweep runs well after the end date; the May 1 occurrence fell
		// inside the window and must still materialize.
		out, err := uc.Execute(context.Background(), date(2024, time.September, 15))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Materialized != 1 {
			t.Fatalf("expected 1 materialized, got %d", out.Materialized)
		}
		if !repo.materialized[0].Date.Equal(date(2024, time.May, 1)) {
			t.Errorf("expected the in-window occurrence date, got %s", repo.materialized[0].Date)
		}
		if streaming.IsActive {
			t.Error("definition must deactivate once the next occurrence passes its end date")
		}
	})

	t.Run("definitions past their end date deactivate", func(t *testing.T) {
		end := date(2024, time.May, 10)
		lease := entity.NewRecurringTransaction(budgetID, checking.ID, nil, nil, dec("100.00"),
			entity.TransactionTypeExpense, entity.FrequencyMonthly, date(2024, time.May, 5), &end, "")
		repo := &fakeRecurringRepo{definitions: []*entity.RecurringTransaction{lease}}
		uc := NewMaterializeDueUseCase(repo, accountRepo)

		out, err := uc.Execute(context.Background(), date(2024, time.May, 6))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Materialized != 1 {
			t.Fatalf("expected 1 materialized, got %d", out.Materialized)
		}
		if lease.IsActive {
			t.Error("definition must deactivate once the next occurrence passes its end date")
		}
	})
}
