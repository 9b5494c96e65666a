package budget

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/domain/entity"
	"github.com/gkeele21/family-budget/internal/domain/valueobject"
)

func month(y int, m time.Month) valueobject.YearMonth {
	return valueobject.NewYearMonth(y, m)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func expense(categoryID *uuid.UUID, amount string, on time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:         uuid.New(),
		CategoryID: categoryID,
		Amount:     dec(amount),
		Type:       entity.TransactionTypeExpense,
		Date:       on,
	}
}

func income(amount string, on time.Time) *entity.Transaction {
	return &entity.Transaction{
		ID:     uuid.New(),
		Amount: dec(amount),
		Type:   entity.TransactionTypeIncome,
		Date:   on,
	}
}

func allocation(categoryID uuid.UUID, m valueobject.YearMonth, amount string) *entity.MonthlyBudget {
	return &entity.MonthlyBudget{
		ID:             uuid.New(),
		CategoryID:     categoryID,
		Month:          m,
		BudgetedAmount: dec(amount),
	}
}

func TestSpentByCategory(t *testing.T) {
	groceries := uuid.New()
	dining := uuid.New()
	march := month(2024, time.March)

	t.Run("direct expense counts in full", func(t *testing.T) {
		txns := []*entity.Transaction{
			expense(&groceries, "-45.50", date(2024, time.March, 10)),
		}
		spent := SpentByCategory(txns, march)
		if !spent[groceries].Equal(dec("45.50")) {
			t.Errorf("expected 45.50, got %s", spent[groceries])
		}
	})

	t.Run("split contributes only its own amount", func(t *testing.T) {
		parent := expense(nil, "-100.00", date(2024, time.March, 5))
		parent.Splits = []*entity.SplitTransaction{
			{ID: uuid.New(), TransactionID: parent.ID, CategoryID: groceries, Amount: dec("-60.00")},
			{ID: uuid.New(), TransactionID: parent.ID, CategoryID: dining, Amount: dec("-40.00")},
		}
		spent := SpentByCategory([]*entity.Transaction{parent}, march)
		if !spent[groceries].Equal(dec("60.00")) {
			t.Errorf("groceries: expected 60.00, got %s", spent[groceries])
		}
		if !spent[dining].Equal(dec("40.00")) {
			t.Errorf("dining: expected 40.00, got %s", spent[dining])
		}
	})

	t.Run("income and transfers never count", func(t *testing.T) {
		transfer := &entity.Transaction{
			ID:     uuid.New(),
			Amount: dec("-200.00"),
			Type:   entity.TransactionTypeTransfer,
			Date:   date(2024, time.March, 15),
		}
		txns := []*entity.Transaction{
			income("500.00", date(2024, time.March, 1)),
			transfer,
		}
		if spent := SpentByCategory(txns, march); len(spent) != 0 {
			t.Errorf("expected no spend, got %v", spent)
		}
	})

	t.Run("out-of-month expenses are excluded", func(t *testing.T) {
		txns := []*entity.Transaction{
			expense(&groceries, "-10.00", date(2024, time.February, 29)),
			expense(&groceries, "-20.00", date(2024, time.April, 1)),
		}
		if spent := SpentByCategory(txns, march); len(spent) != 0 {
			t.Errorf("expected no spend, got %v", spent)
		}
	})
}

func TestBudgetedByCategory(t *testing.T) {
	groceries := uuid.New()
	march := month(2024, time.March)

	allocations := []*entity.MonthlyBudget{
		allocation(groceries, march, "300.00"),
		allocation(groceries, month(2024, time.February), "250.00"),
	}
	budgeted := BudgetedByCategory(allocations, march)
	if !budgeted[groceries].Equal(dec("300.00")) {
		t.Errorf("expected 300.00, got %s", budgeted[groceries])
	}
	if _, ok := budgeted[uuid.New()]; ok {
		t.Error("unknown category should be absent")
	}
}

func TestCarryForward(t *testing.T) {
	groceries := uuid.New()
	rent := uuid.New()
	may := month(2024, time.May)

	accounts := []*entity.Account{
		{ID: uuid.New(), StartingBalance: dec("1000.00")},
		{ID: uuid.New(), StartingBalance: dec("-150.00"), IsClosed: true},
	}
	transactions := []*entity.Transaction{
		income("2000.00", date(2024, time.April, 15)),
		income("2100.00", date(2024, time.May, 15)),
		// Expenses must not move the needle.
		expense(&groceries, "-300.00", date(2024, time.April, 20)),
		expense(&groceries, "-120.00", date(2024, time.May, 2)),
	}
	allocations := []*entity.MonthlyBudget{
		allocation(groceries, month(2024, time.April), "400.00"),
		allocation(rent, month(2024, time.April), "900.00"),
		allocation(groceries, may, "450.00"),
	}

	got := CarryForward(accounts, transactions, allocations, may)

	// 850 + 2000 - 1300 = 1550 carried; 1550 + 2100 - 450 = 3200 to budget.
	if !got.CarriedForward.Equal(dec("1550.00")) {
		t.Errorf("carried forward: expected 1550.00, got %s", got.CarriedForward)
	}
	if !got.ThisMonthIncome.Equal(dec("2100.00")) {
		t.Errorf("this month income: expected 2100.00, got %s", got.ThisMonthIncome)
	}
	if !got.TotalBudgeted.Equal(dec("450.00")) {
		t.Errorf("total budgeted: expected 450.00, got %s", got.TotalBudgeted)
	}
	if !got.ToBudget.Equal(dec("3200.00")) {
		t.Errorf("to budget: expected 3200.00, got %s", got.ToBudget)
	}
	if got.IsFirstMonth {
		t.Error("May has prior activity, not a first month")
	}

	// Pure recomputation yields identical results.
	again := CarryForward(accounts, transactions, allocations, may)
	if !again.ToBudget.Equal(got.ToBudget) || !again.CarriedForward.Equal(got.CarriedForward) {
		t.Error("recomputation on unchanged data diverged")
	}
}

func TestCarryForwardFirstMonth(t *testing.T) {
	march := month(2024, time.March)
	accounts := []*entity.Account{{ID: uuid.New(), StartingBalance: dec("1000.00")}}
	got := CarryForward(accounts, nil, nil, march)
	if !got.IsFirstMonth {
		t.Error("no prior income and no prior allocations should read as first month")
	}
	if !got.ToBudget.Equal(dec("1000.00")) {
		t.Errorf("to budget: expected 1000.00, got %s", got.ToBudget)
	}
}

func TestEarliestMonth(t *testing.T) {
	viewed := month(2024, time.June)

	t.Run("explicit start month wins", func(t *testing.T) {
		start := month(2023, time.September)
		b := &entity.Budget{ID: uuid.New(), StartMonth: &start}
		accounts := []*entity.Account{{ID: uuid.New(), CreatedAt: date(2024, time.January, 5)}}
		if got := EarliestMonth(b, accounts, viewed); got.Compare(start) != 0 {
			t.Errorf("expected %s, got %s", start, got)
		}
	})

	t.Run("falls back to first account creation month", func(t *testing.T) {
		b := &entity.Budget{ID: uuid.New()}
		accounts := []*entity.Account{
			{ID: uuid.New(), CreatedAt: date(2024, time.March, 1)},
			{ID: uuid.New(), CreatedAt: date(2023, time.November, 20)},
		}
		want := month(2023, time.November)
		if got := EarliestMonth(b, accounts, viewed); got.Compare(want) != 0 {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("falls back to viewed month", func(t *testing.T) {
		if got := EarliestMonth(&entity.Budget{ID: uuid.New()}, nil, viewed); got.Compare(viewed) != 0 {
			t.Errorf("expected %s, got %s", viewed, got)
		}
	})
}

func TestAverageRange(t *testing.T) {
	t.Run("mid-year range runs from January to previous month end", func(t *testing.T) {
		start, end := AverageRange(month(2024, time.June))
		if !start.Equal(date(2024, time.January, 1)) {
			t.Errorf("start: expected 2024-01-01, got %s", start)
		}
		if end.Month() != time.May || end.Day() != 31 || end.Year() != 2024 {
			t.Errorf("end: expected 2024-05-31, got %s", end)
		}
	})

	t.Run("january uses the full prior year", func(t *testing.T) {
		start, end := AverageRange(month(2025, time.January))
		if !start.Equal(date(2025-1, time.January, 1)) {
			t.Errorf("start: expected 2024-01-01, got %s", start)
		}
		if end.Year() != 2024 || end.Month() != time.December || end.Day() != 31 {
			t.Errorf("end: expected 2024-12-31, got %s", end)
		}
	})
}

func TestAverageSpentByCategory(t *testing.T) {
	groceries := uuid.New()
	dining := uuid.New()

	transactions := []*entity.Transaction{
		expense(&groceries, "-100.00", date(2024, time.January, 10)),
		expense(&groceries, "-50.00", date(2024, time.January, 25)),
		expense(&groceries, "-70.00", date(2024, time.March, 3)),
		// February has no activity and must not dilute the average.
	}

	got := AverageSpentByCategory(transactions, []uuid.UUID{groceries, dining})

	// 220 over 2 active months.
	if !got[groceries].Equal(dec("110.00")) {
		t.Errorf("groceries: expected 110.00, got %s", got[groceries])
	}
	if !got[dining].Equal(decimal.Zero) {
		t.Errorf("dining: expected 0, got %s", got[dining])
	}
}

func TestAverageSpentRounding(t *testing.T) {
	c := uuid.New()
	// 30.10 over 3 active months rounds to 10.03.
	transactions := []*entity.Transaction{
		expense(&c, "-10.00", date(2024, time.January, 1)),
		expense(&c, "-10.00", date(2024, time.February, 1)),
		expense(&c, "-10.10", date(2024, time.March, 1)),
	}
	got := AverageSpentByCategory(transactions, []uuid.UUID{c})
	if !got[c].Equal(dec("10.03")) {
		t.Errorf("expected 10.03, got %s", got[c])
	}
}
