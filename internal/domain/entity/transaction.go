package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the kind of transaction.
type TransactionType string

const (
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeTransfer TransactionType = "transfer"
)

// IsValidTransactionType reports whether t is one of the known types.
func IsValidTransactionType(t TransactionType) bool {
	switch t {
	case TransactionTypeExpense, TransactionTypeIncome, TransactionTypeTransfer:
		return true
	}
	return false
}

// Transaction is a single ledger entry. Amount is signed: negative for
// outflows (expense, transfer-out), positive for inflows (income,
// transfer-in). A transaction with splits carries no direct category; a
// transfer carries neither category nor payee and references its opposite
// leg through TransferPairID.
type Transaction struct {
	ID             uuid.UUID
	BudgetID       uuid.UUID
	AccountID      uuid.UUID
	CategoryID     *uuid.UUID
	PayeeID        *uuid.UUID
	RecurringID    *uuid.UUID
	TransferPairID *uuid.UUID
	Amount         decimal.Decimal
	Type           TransactionType
	Date           time.Time
	Cleared        bool
	Memo           string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Splits is populated when the transaction divides its amount across
	// multiple categories. By construction it never holds exactly one row.
	Splits []*SplitTransaction
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	budgetID uuid.UUID,
	accountID uuid.UUID,
	categoryID *uuid.UUID,
	payeeID *uuid.UUID,
	amount decimal.Decimal,
	transactionType TransactionType,
	date time.Time,
	cleared bool,
	memo string,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:         uuid.New(),
		BudgetID:   budgetID,
		AccountID:  accountID,
		CategoryID: categoryID,
		PayeeID:    payeeID,
		Amount:     amount,
		Type:       transactionType,
		Date:       date,
		Cleared:    cleared,
		Memo:       memo,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsSplit reports whether the transaction divides its amount across categories.
func (t *Transaction) IsSplit() bool {
	return len(t.Splits) > 0
}

// IsTransfer reports whether the transaction is one leg of a transfer pair.
func (t *Transaction) IsTransfer() bool {
	return t.Type == TransactionTypeTransfer
}

// SplitAmountFor returns the portion of the transaction attributed to the
// given category: the matching split's amount for split transactions, the
// full amount for a direct category match, and zero otherwise.
func (t *Transaction) SplitAmountFor(categoryID uuid.UUID) decimal.Decimal {
	if t.IsSplit() {
		for _, s := range t.Splits {
			if s.CategoryID == categoryID {
				return s.Amount
			}
		}
		return decimal.Zero
	}
	if t.CategoryID != nil && *t.CategoryID == categoryID {
		return t.Amount
	}
	return decimal.Zero
}

// SplitTransaction is one category's share of a split transaction. Amounts
// follow the parent's sign convention, and all shares of a parent sum to the
// parent's amount.
type SplitTransaction struct {
	ID            uuid.UUID
	TransactionID uuid.UUID
	CategoryID    uuid.UUID
	Amount        decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSplitTransaction creates a new SplitTransaction entity.
func NewSplitTransaction(transactionID, categoryID uuid.UUID, amount decimal.Decimal) *SplitTransaction {
	now := time.Now().UTC()

	return &SplitTransaction{
		ID:            uuid.New(),
		TransactionID: transactionID,
		CategoryID:    categoryID,
		Amount:        amount,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
