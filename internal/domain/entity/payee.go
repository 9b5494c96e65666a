package entity

import (
	"time"

	"github.com/google/uuid"
)

// Payee is a named counterparty within a budget. DefaultCategoryID, when
// set, pre-fills the category on future transactions for this payee.
type Payee struct {
	ID                uuid.UUID
	BudgetID          uuid.UUID
	Name              string
	DefaultCategoryID *uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewPayee creates a new Payee entity.
func NewPayee(budgetID uuid.UUID, name string, defaultCategoryID *uuid.UUID) *Payee {
	now := time.Now().UTC()

	return &Payee{
		ID:                uuid.New(),
		BudgetID:          budgetID,
		Name:              name,
		DefaultCategoryID: defaultCategoryID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
