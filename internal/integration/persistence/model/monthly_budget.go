package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/domain/entity"
	"github.com/gkeele21/family-budget/internal/domain/valueobject"
)

// MonthlyBudgetModel represents the monthly_budgets table in the database.
// Month is a zero-padded YYYY-MM key, so lexical ordering matches calendar
// ordering and range queries stay plain string comparisons.
type MonthlyBudgetModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CategoryID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_monthly_budgets_category_month"`
	Month          string          `gorm:"type:varchar(7);not null;uniqueIndex:idx_monthly_budgets_category_month;index"`
	BudgetedAmount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the MonthlyBudgetModel.
func (MonthlyBudgetModel) TableName() string {
	return "monthly_budgets"
}

// ToEntity converts a MonthlyBudgetModel to a domain MonthlyBudget entity.
func (m *MonthlyBudgetModel) ToEntity() *entity.MonthlyBudget {
	month, _ := valueobject.ParseYearMonth(m.Month)
	return &entity.MonthlyBudget{
		ID:             m.ID,
		CategoryID:     m.CategoryID,
		Month:          month,
		BudgetedAmount: m.BudgetedAmount,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// MonthlyBudgetFromEntity creates a MonthlyBudgetModel from a domain entity.
func MonthlyBudgetFromEntity(a *entity.MonthlyBudget) *MonthlyBudgetModel {
	return &MonthlyBudgetModel{
		ID:             a.ID,
		CategoryID:     a.CategoryID,
		Month:          a.Month.String(),
		BudgetedAmount: a.BudgetedAmount,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
