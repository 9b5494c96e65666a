package adapter

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/domain/entity"
	"github.com/gkeele21/family-budget/internal/domain/valueobject"
)

// MonthlyBudgetRepository defines the interface for per-category monthly
// allocation persistence. Allocations are keyed by (category, month); at most
// one row exists per pair.
type MonthlyBudgetRepository interface {
	// FindByCategoryAndMonth retrieves the allocation for one category and month.
	FindByCategoryAndMonth(ctx context.Context, categoryID uuid.UUID, month valueobject.YearMonth) (*entity.MonthlyBudget, error)

	// FindByBudgetAndMonth retrieves all allocations for the budget's
	// categories in the given month.
	FindByBudgetAndMonth(ctx context.Context, budgetID uuid.UUID, month valueobject.YearMonth) ([]*entity.MonthlyBudget, error)

	// FindByBudgetBefore retrieves all allocations for the budget's categories
	// in months strictly before the given month.
	FindByBudgetBefore(ctx context.Context, budgetID uuid.UUID, month valueobject.YearMonth) ([]*entity.MonthlyBudget, error)

	// Upsert creates or replaces the allocation for the row's category and month.
	Upsert(ctx context.Context, allocation *entity.MonthlyBudget) error

	// UpsertMany creates or replaces allocations in a single database transaction.
	UpsertMany(ctx context.Context, allocations []*entity.MonthlyBudget) error

	// AdjustPair atomically adds delta to the destination category's allocation
	// and subtracts it from the source category's allocation for the month,
	// creating missing rows at zero. Both adjustments happen in one database
	// transaction with the rows locked.
	AdjustPair(ctx context.Context, fromCategoryID, toCategoryID uuid.UUID, month valueobject.YearMonth, delta decimal.Decimal) error

	// DeleteByBudgetAndMonth removes all of the budget's allocations for the month.
	DeleteByBudgetAndMonth(ctx context.Context, budgetID uuid.UUID, month valueobject.YearMonth) error
}
