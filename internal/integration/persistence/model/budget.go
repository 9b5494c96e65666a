// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/domain/entity"
	"github.com/gkeele21/family-budget/internal/domain/valueobject"
)

// BudgetModel represents the budgets table in the database.
type BudgetModel struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name                 string          `gorm:"type:varchar(255);not null"`
	StartMonth           *string         `gorm:"type:varchar(7)"` // YYYY-MM
	DefaultMonthlyIncome decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CreatedAt            time.Time       `gorm:"not null"`
	UpdatedAt            time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	var startMonth *valueobject.YearMonth
	if m.StartMonth != nil {
		if ym, err := valueobject.ParseYearMonth(*m.StartMonth); err == nil {
			startMonth = &ym
		}
	}

	return &entity.Budget{
		ID:                   m.ID,
		Name:                 m.Name,
		StartMonth:           startMonth,
		DefaultMonthlyIncome: m.DefaultMonthlyIncome,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(b *entity.Budget) *BudgetModel {
	var startMonth *string
	if b.StartMonth != nil {
		s := b.StartMonth.String()
		startMonth = &s
	}

	return &BudgetModel{
		ID:                   b.ID,
		Name:                 b.Name,
		StartMonth:           startMonth,
		DefaultMonthlyIncome: b.DefaultMonthlyIncome,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}
}
