package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BudgetID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountID      uuid.UUID       `gorm:"type:uuid;not null;index:idx_transactions_account_date"`
	CategoryID     *uuid.UUID      `gorm:"type:uuid;index"`
	PayeeID        *uuid.UUID      `gorm:"type:uuid;index"`
	RecurringID    *uuid.UUID      `gorm:"type:uuid;index"`
	TransferPairID *uuid.UUID      `gorm:"type:uuid;index"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type           string          `gorm:"type:varchar(10);not null;index"`
	Date           time.Time       `gorm:"type:date;not null;index:idx_transactions_account_date;index"`
	Cleared        bool            `gorm:"not null;default:false"`
	Memo           string          `gorm:"type:varchar(500)"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`

	Budget  *BudgetModel             `gorm:"foreignKey:BudgetID;references:ID;constraint:OnDelete:CASCADE"`
	Account *AccountModel            `gorm:"foreignKey:AccountID;references:ID;constraint:OnDelete:CASCADE"`
	Splits  []*SplitTransactionModel `gorm:"foreignKey:TransactionID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	t := &entity.Transaction{
		ID:             m.ID,
		BudgetID:       m.BudgetID,
		AccountID:      m.AccountID,
		CategoryID:     m.CategoryID,
		PayeeID:        m.PayeeID,
		RecurringID:    m.RecurringID,
		TransferPairID: m.TransferPairID,
		Amount:         m.Amount,
		Type:           entity.TransactionType(m.Type),
		Date:           m.Date,
		Cleared:        m.Cleared,
		Memo:           m.Memo,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	for _, s := range m.Splits {
		t.Splits = append(t.Splits, s.ToEntity())
	}
	return t
}

// TransactionFromEntity creates a TransactionModel from a domain entity.
// Splits are converted separately so multi-row writes stay explicit.
func TransactionFromEntity(t *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:             t.ID,
		BudgetID:       t.BudgetID,
		AccountID:      t.AccountID,
		CategoryID:     t.CategoryID,
		PayeeID:        t.PayeeID,
		RecurringID:    t.RecurringID,
		TransferPairID: t.TransferPairID,
		Amount:         t.Amount,
		Type:           string(t.Type),
		Date:           t.Date,
		Cleared:        t.Cleared,
		Memo:           t.Memo,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

// SplitTransactionModel represents the split_transactions table in the
// database.
type SplitTransactionModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TransactionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`

	Transaction *TransactionModel `gorm:"foreignKey:TransactionID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the SplitTransactionModel.
func (SplitTransactionModel) TableName() string {
	return "split_transactions"
}

// ToEntity converts a SplitTransactionModel to a domain entity.
func (m *SplitTransactionModel) ToEntity() *entity.SplitTransaction {
	return &entity.SplitTransaction{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		CategoryID:    m.CategoryID,
		Amount:        m.Amount,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// SplitTransactionFromEntity creates a SplitTransactionModel from a domain
// entity.
func SplitTransactionFromEntity(s *entity.SplitTransaction) *SplitTransactionModel {
	return &SplitTransactionModel{
		ID:            s.ID,
		TransactionID: s.TransactionID,
		CategoryID:    s.CategoryID,
		Amount:        s.Amount,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
