// Package account contains account management use cases and the derived
// balance calculator.
package account

import (
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/domain/entity"
)

// Balances are derived, never stored. Recomputing from the starting balance
// plus transaction history avoids stored-balance drift when historical
// transactions are edited or deleted.

// Balance returns the account's starting balance plus the sum of all its
// transaction amounts, regardless of cleared status.
func Balance(a *entity.Account, transactions []*entity.Transaction) decimal.Decimal {
	total := a.StartingBalance
	for _, t := range transactions {
		if t.AccountID == a.ID {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// ClearedBalance returns the same sum restricted to cleared transactions.
func ClearedBalance(a *entity.Account, transactions []*entity.Transaction) decimal.Decimal {
	total := a.StartingBalance
	for _, t := range transactions {
		if t.AccountID == a.ID && t.Cleared {
			total = total.Add(t.Amount)
		}
	}
	return total
}
