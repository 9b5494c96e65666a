package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/domain/entity"
)

// RecurringTransactionModel represents the recurring_transactions table in
// the database.
type RecurringTransactionModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BudgetID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID *uuid.UUID      `gorm:"type:uuid"`
	PayeeID    *uuid.UUID      `gorm:"type:uuid"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type       string          `gorm:"type:varchar(10);not null"`
	Frequency  string          `gorm:"type:varchar(10);not null"`
	NextDate   time.Time       `gorm:"type:date;not null;index"`
	EndDate    *time.Time      `gorm:"type:date"`
	Memo       string          `gorm:"type:varchar(500)"`
	IsActive   bool            `gorm:"not null;default:true;index"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`

	Budget  *BudgetModel  `gorm:"foreignKey:BudgetID;references:ID;constraint:OnDelete:CASCADE"`
	Account *AccountModel `gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the RecurringTransactionModel.
func (RecurringTransactionModel) TableName() string {
	return "recurring_transactions"
}

// ToEntity converts a RecurringTransactionModel to a domain entity.
func (m *RecurringTransactionModel) ToEntity() *entity.RecurringTransaction {
	return &entity.RecurringTransaction{
		ID:         m.ID,
		BudgetID:   m.BudgetID,
		AccountID:  m.AccountID,
		CategoryID: m.CategoryID,
		PayeeID:    m.PayeeID,
		Amount:     m.Amount,
		Type:       entity.TransactionType(m.Type),
		Frequency:  entity.Frequency(m.Frequency),
		NextDate:   m.NextDate,
		EndDate:    m.EndDate,
		Memo:       m.Memo,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// RecurringTransactionFromEntity creates a RecurringTransactionModel from a
// domain entity.
func RecurringTransactionFromEntity(r *entity.RecurringTransaction) *RecurringTransactionModel {
	return &RecurringTransactionModel{
		ID:         r.ID,
		BudgetID:   r.BudgetID,
		AccountID:  r.AccountID,
		CategoryID: r.CategoryID,
		PayeeID:    r.PayeeID,
		Amount:     r.Amount,
		Type:       string(r.Type),
		Frequency:  string(r.Frequency),
		NextDate:   r.NextDate,
		EndDate:    r.EndDate,
		Memo:       r.Memo,
		IsActive:   r.IsActive,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
