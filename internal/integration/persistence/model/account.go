package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/domain/entity"
)

// AccountModel represents the accounts table in the database.
type AccountModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BudgetID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name            string          `gorm:"type:varchar(255);not null"`
	Type            string          `gorm:"type:varchar(20);not null"`
	StartingBalance decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	SortOrder       int             `gorm:"not null;default:0"`
	IsClosed        bool            `gorm:"not null;default:false"`
	CreatedAt       time.Time       `gorm:"not null"`
	UpdatedAt       time.Time       `gorm:"not null"`

	Budget *BudgetModel `gorm:"foreignKey:BudgetID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts an AccountModel to a domain Account entity.
func (m *AccountModel) ToEntity() *entity.Account {
	return &entity.Account{
		ID:              m.ID,
		BudgetID:        m.BudgetID,
		Name:            m.Name,
		Type:            entity.AccountType(m.Type),
		StartingBalance: m.StartingBalance,
		SortOrder:       m.SortOrder,
		IsClosed:        m.IsClosed,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// AccountFromEntity creates an AccountModel from a domain Account entity.
func AccountFromEntity(a *entity.Account) *AccountModel {
	return &AccountModel{
		ID:              a.ID,
		BudgetID:        a.BudgetID,
		Name:            a.Name,
		Type:            string(a.Type),
		StartingBalance: a.StartingBalance,
		SortOrder:       a.SortOrder,
		IsClosed:        a.IsClosed,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}
