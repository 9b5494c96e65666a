package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gkeele21/family-budget/internal/domain/entity"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
	"github.com/gkeele21/family-budget/internal/domain/valueobject"
)

type fakeCategoryLookupRepo struct {
	fakeCategoryRepo
}

func (f *fakeCategoryLookupRepo) FindCategoryByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func TestCategoryMonthDetail(t *testing.T) {
	budgetID := uuid.New()
	groceries := &entity.Category{ID: uuid.New(), Name: "Groceries"}
	dining := &entity.Category{ID: uuid.New(), Name: "Dining"}
	may := valueobject.NewYearMonth(2024, time.May)
	accountID := uuid.New()

	date := func(day int) time.Time {
		return time.Date(2024, time.May, day, 0, 0, 0, 0, time.UTC)
	}
	transactions := []*entity.Transaction{
		{ID: uuid.New(), BudgetID: budgetID, AccountID: accountID, CategoryID: &groceries.ID, Amount: dec("-60.00"), Type: entity.TransactionTypeExpense, Date: date(2)},
		{ID: uuid.New(), BudgetID: budgetID, AccountID: accountID, CategoryID: &dining.ID, Amount: dec("-25.00"), Type: entity.TransactionTypeExpense, Date: date(5)},
		{ID: uuid.New(), BudgetID: budgetID, AccountID: accountID, Amount: dec("-90.00"), Type: entity.TransactionTypeExpense, Date: date(9), Splits: []*entity.SplitTransaction{
			{ID: uuid.New(), CategoryID: groceries.ID, Amount: dec("-70.00")},
			{ID: uuid.New(), CategoryID: dining.ID, Amount: dec("-20.00")},
		}},
		{ID: uuid.New(), BudgetID: budgetID, AccountID: accountID, CategoryID: &groceries.ID, Amount: dec("-999.00"), Type: entity.TransactionTypeExpense, Date: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)},
	}

	newUseCase := func() *CategoryMonthDetailUseCase {
		return NewCategoryMonthDetailUseCase(
			&fakeCategoryLookupRepo{fakeCategoryRepo{categories: []*entity.Category{groceries, dining}}},
			&fakeTransactionRepo{transactions: transactions},
		)
	}

	t.Run("lists the category's share of the month's activity", func(t *testing.T) {
		output, err := newUseCase().Execute(context.Background(), CategoryMonthDetailInput{
			BudgetID:   budgetID,
			CategoryID: groceries.ID,
			Month:      may,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(output.Entries))
		}
		// The split transaction contributes only its groceries share.
		if !output.Entries[1].Amount.Equal(dec("-70.00")) {
			t.Errorf("split share: expected -70.00, got %s", output.Entries[1].Amount)
		}
		if !output.Total.Equal(dec("-130.00")) {
			t.Errorf("total: expected -130.00, got %s", output.Total)
		}
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		_, err := newUseCase().Execute(context.Background(), CategoryMonthDetailInput{
			BudgetID:   budgetID,
			CategoryID: uuid.New(),
			Month:      may,
		})
		if !errors.Is(err, domainerror.ErrCategoryNotInBudget) {
			t.Errorf("expected ErrCategoryNotInBudget, got %v", err)
		}
	})

	t.Run("rejects a zero month", func(t *testing.T) {
		_, err := newUseCase().Execute(context.Background(), CategoryMonthDetailInput{
			BudgetID:   budgetID,
			CategoryID: groceries.ID,
		})
		if !errors.Is(err, domainerror.ErrInvalidMonth) {
			t.Errorf("expected ErrInvalidMonth, got %v", err)
		}
	})
}
