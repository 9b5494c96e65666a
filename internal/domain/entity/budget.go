// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/domain/valueobject"
)

// Budget is the root of a family ledger. It owns accounts, category groups,
// payees, transactions and recurring definitions; deleting a budget cascades
// to everything it owns.
type Budget struct {
	ID   uuid.UUID
	Name string
	// StartMonth is the earliest month the ledger is considered to begin.
	// When nil, the creation month of the first account is used instead.
	StartMonth           *valueobject.YearMonth
	DefaultMonthlyIncome decimal.Decimal
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(name string) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:                   uuid.New(),
		Name:                 name,
		DefaultMonthlyIncome: decimal.Zero,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}
