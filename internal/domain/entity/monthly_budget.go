package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/domain/valueobject"
)

// MonthlyBudget is the envelope allocation for one (category, month) pair.
// There is at most one row per pair; a missing row means nothing was budgeted.
type MonthlyBudget struct {
	ID             uuid.UUID
	CategoryID     uuid.UUID
	Month          valueobject.YearMonth
	BudgetedAmount decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewMonthlyBudget creates a new MonthlyBudget entity.
func NewMonthlyBudget(categoryID uuid.UUID, month valueobject.YearMonth, amount decimal.Decimal) *MonthlyBudget {
	now := time.Now().UTC()

	return &MonthlyBudget{
		ID:             uuid.New(),
		CategoryID:     categoryID,
		Month:          month,
		BudgetedAmount: amount,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
