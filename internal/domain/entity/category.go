package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxProjections is the number of alternate planning amounts a category can hold.
const MaxProjections = 3

// CategoryGroup organizes categories within a budget.
type CategoryGroup struct {
	ID         uuid.UUID
	BudgetID   uuid.UUID
	Name       string
	SortOrder  int
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Categories []*Category
}

// NewCategoryGroup creates a new CategoryGroup entity.
func NewCategoryGroup(budgetID uuid.UUID, name string, sortOrder int) *CategoryGroup {
	now := time.Now().UTC()

	return &CategoryGroup{
		ID:        uuid.New(),
		BudgetID:  budgetID,
		Name:      name,
		SortOrder: sortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Category is a spending envelope. DefaultAmount is the suggested monthly
// allocation; Projections holds up to MaxProjections alternate suggestions
// (sparse, nil where unset) used for planning scenarios.
type Category struct {
	ID            uuid.UUID
	GroupID       uuid.UUID
	Name          string
	Icon          string
	DefaultAmount decimal.Decimal
	Projections   []*decimal.Decimal
	SortOrder     int
	IsHidden      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(groupID uuid.UUID, name, icon string, defaultAmount decimal.Decimal, sortOrder int) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:            uuid.New(),
		GroupID:       groupID,
		Name:          name,
		Icon:          icon,
		DefaultAmount: defaultAmount,
		SortOrder:     sortOrder,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Projection returns the planning amount at the given 1-based index, or nil
// when the index is out of range or the slot is unset.
func (c *Category) Projection(index int) *decimal.Decimal {
	if index < 1 || index > len(c.Projections) {
		return nil
	}
	return c.Projections[index-1]
}
