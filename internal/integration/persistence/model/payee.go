package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/gkeele21/family-budget/internal/domain/entity"
)

// PayeeModel represents the payees table in the database.
type PayeeModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BudgetID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name              string     `gorm:"type:varchar(255);not null"`
	DefaultCategoryID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt         time.Time  `gorm:"not null"`
	UpdatedAt         time.Time  `gorm:"not null"`

	Budget *BudgetModel `gorm:"foreignKey:BudgetID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the PayeeModel.
func (PayeeModel) TableName() string {
	return "payees"
}

// ToEntity converts a PayeeModel to a domain Payee entity.
func (m *PayeeModel) ToEntity() *entity.Payee {
	return &entity.Payee{
		ID:                m.ID,
		BudgetID:          m.BudgetID,
		Name:              m.Name,
		DefaultCategoryID: m.DefaultCategoryID,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// PayeeFromEntity creates a PayeeModel from a domain Payee entity.
func PayeeFromEntity(p *entity.Payee) *PayeeModel {
	return &PayeeModel{
		ID:                p.ID,
		BudgetID:          p.BudgetID,
		Name:              p.Name,
		DefaultCategoryID: p.DefaultCategoryID,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
