package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType represents the kind of account.
type AccountType string

const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCreditCard AccountType = "credit_card"
	AccountTypeCash       AccountType = "cash"
)

// IsValidAccountType reports whether t is one of the known account types.
func IsValidAccountType(t AccountType) bool {
	switch t {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeCreditCard, AccountTypeCash:
		return true
	}
	return false
}

// Account represents a real-world money account inside a budget. Its balance
// is never stored: it is derived from StartingBalance plus the account's
// transaction history. Closing an account keeps its historical transactions.
type Account struct {
	ID              uuid.UUID
	BudgetID        uuid.UUID
	Name            string
	Type            AccountType
	StartingBalance decimal.Decimal
	SortOrder       int
	IsClosed        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewAccount creates a new Account entity.
func NewAccount(budgetID uuid.UUID, name string, accountType AccountType, startingBalance decimal.Decimal, sortOrder int) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:              uuid.New(),
		BudgetID:        budgetID,
		Name:            name,
		Type:            accountType,
		StartingBalance: startingBalance,
		SortOrder:       sortOrder,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
