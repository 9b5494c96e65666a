package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/domain/entity"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
	"github.com/gkeele21/family-budget/internal/domain/valueobject"
)

type fakeCategoryRepo struct {
	adapter.CategoryRepository
	categories []*entity.Category
}

func (f *fakeCategoryRepo) FindCategoriesByBudget(_ context.Context, _ uuid.UUID) ([]*entity.Category, error) {
	return f.categories, nil
}

type fakeMonthlyBudgetRepo struct {
	adapter.MonthlyBudgetRepository
	amounts map[uuid.UUID]decimal.Decimal
}

func (f *fakeMonthlyBudgetRepo) AdjustPair(_ context.Context, from, to uuid.UUID, _ valueobject.YearMonth, delta decimal.Decimal) error {
	if f.amounts == nil {
		f.amounts = make(map[uuid.UUID]decimal.Decimal)
	}
	f.amounts[from] = f.amounts[from].Sub(delta)
	f.amounts[to] = f.amounts[to].Add(delta)
	return nil
}

func TestMoveMoney(t *testing.T) {
	from := &entity.Category{ID: uuid.New(), Name: "Category A"}
	to := &entity.Category{ID: uuid.New(), Name: "Category B"}
	may := valueobject.NewYearMonth(2024, time.May)

	newUseCase := func() (*MoveMoneyUseCase, *fakeMonthlyBudgetRepo) {
		repo := &fakeMonthlyBudgetRepo{}
		uc := NewMoveMoneyUseCase(&fakeCategoryRepo{categories: []*entity.Category{from, to}}, repo)
		return uc, repo
	}

	t.Run("moves from empty envelopes into negative territory", func(t *testing.T) {
		uc, repo := newUseCase()
		err := uc.Execute(context.Background(), MoveMoneyInput{
			FromCategoryID: from.ID,
			ToCategoryID:   to.ID,
			Month:          may,
			Amount:         dec("50.00"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !repo.amounts[from.ID].Equal(dec("-50.00")) {
			t.Errorf("source: expected -50.00, got %s", repo.amounts[from.ID])
		}
		if !repo.amounts[to.ID].Equal(dec("50.00")) {
			t.Errorf("destination: expected 50.00, got %s", repo.amounts[to.ID])
		}
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		uc, _ := newUseCase()
		for _, amount := range []string{"0", "-10.00"} {
			err := uc.Execute(context.Background(), MoveMoneyInput{
				FromCategoryID: from.ID,
				ToCategoryID:   to.ID,
				Month:          may,
				Amount:         dec(amount),
			})
			if !errors.Is(err, domainerror.ErrMoveAmountNotPositive) {
				t.Errorf("amount %s: expected ErrMoveAmountNotPositive, got %v", amount, err)
			}
		}
	})

	t.Run("rejects same source and destination", func(t *testing.T) {
		uc, _ := newUseCase()
		err := uc.Execute(context.Background(), MoveMoneyInput{
			FromCategoryID: from.ID,
			ToCategoryID:   from.ID,
			Month:          may,
			Amount:         dec("10.00"),
		})
		if !errors.Is(err, domainerror.ErrMoveSameCategory) {
			t.Errorf("expected ErrMoveSameCategory, got %v", err)
		}
	})

	t.Run("rejects categories outside the budget", func(t *testing.T) {
		uc, _ := newUseCase()
		err := uc.Execute(context.Background(), MoveMoneyInput{
			FromCategoryID: uuid.New(),
			ToCategoryID:   to.ID,
			Month:          may,
			Amount:         dec("10.00"),
		})
		if !errors.Is(err, domainerror.ErrCategoryNotInBudget) {
			t.Errorf("expected ErrCategoryNotInBudget, got %v", err)
		}
	})

	t.Run("rejects a zero month", func(t *testing.T) {
		uc, _ := newUseCase()
		err := uc.Execute(context.Background(), MoveMoneyInput{
			FromCategoryID: from.ID,
			ToCategoryID:   to.ID,
			Amount:         dec("10.00"),
		})
		if !errors.Is(err, domainerror.ErrInvalidMonth) {
			t.Errorf("expected ErrInvalidMonth, got %v", err)
		}
	})
}
