package account

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func txn(accountID uuid.UUID, amount string, cleared bool) *entity.Transaction {
	return &entity.Transaction{
		ID:        uuid.New(),
		AccountID: accountID,
		Amount:    dec(amount),
		Type:      entity.TransactionTypeExpense,
		Date:      time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		Cleared:   cleared,
	}
}

func TestBalance(t *testing.T) {
	checking := &entity.Account{ID: uuid.New(), StartingBalance: dec("1000.00")}

	t.Run("no transactions returns the starting balance", func(t *testing.T) {
		if got := Balance(checking, nil); !got.Equal(dec("1000.00")) {
			t.Errorf("expected 1000.00, got %s", got)
		}
	})

	t.Run("sums all transactions regardless of cleared status", func(t *testing.T) {
		other := uuid.New()
		transactions := []*entity.Transaction{
			txn(checking.ID, "-45.50", true),
			txn(checking.ID, "-4.50", false),
			txn(other, "-999.00", true), // other account, ignored
		}
		if got := Balance(checking, transactions); !got.Equal(dec("950.00")) {
			t.Errorf("expected 950.00, got %s", got)
		}
	})
}

func TestClearedBalance(t *testing.T) {
	checking := &entity.Account{ID: uuid.New(), StartingBalance: dec("500.00")}
	transactions := []*entity.Transaction{
		txn(checking.ID, "-100.00", true),
		txn(checking.ID, "-25.00", false),
	}
	if got := ClearedBalance(checking, transactions); !got.Equal(dec("400.00")) {
		t.Errorf("expected 400.00, got %s", got)
	}
}
