package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gkeele21/family-budget/internal/domain/entity"
)

// TransactionFilter defines filter options for listing transactions. When no
// account is selected, transfers collapse to their outflow leg so each
// transfer shows once.
type TransactionFilter struct {
	AccountID     *uuid.UUID
	CategoryID    *uuid.UUID
	PayeeID       *uuid.UUID
	StartDate     *time.Time
	EndDate       *time.Time
	Type          *entity.TransactionType
	Cleared       *bool
	RecurringOnly bool
	Search        string // Case-insensitive match on memo, payee, category or amount
}

// TransactionPagination defines pagination options.
type TransactionPagination struct {
	Page  int
	Limit int
}

// TransactionListResult represents the result of listing transactions.
type TransactionListResult struct {
	Transactions []*entity.Transaction
	Total        int64
	Page         int
	Limit        int
	TotalPages   int
}

// TransactionRepository defines the interface for transaction persistence
// operations. Splits and transfer pairs are written atomically with their
// parent rows.
type TransactionRepository interface {
	// Create creates a transaction together with its splits, if any, in a
	// single database transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// CreateTransferPair creates both legs of a transfer in a single database
	// transaction and links them through their transfer pair IDs.
	CreateTransferPair(ctx context.Context, outflow, inflow *entity.Transaction) error

	// FindByID retrieves a transaction with its splits by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByFilter retrieves the budget's transactions matching the filter,
	// newest first, with pagination.
	FindByFilter(ctx context.Context, budgetID uuid.UUID, filter TransactionFilter, pagination TransactionPagination) (*TransactionListResult, error)

	// FindByBudget retrieves all of the budget's transactions with splits,
	// newest first.
	FindByBudget(ctx context.Context, budgetID uuid.UUID) ([]*entity.Transaction, error)

	// FindByBudgetInRange retrieves the budget's transactions dated within
	// [start, end], with splits.
	FindByBudgetInRange(ctx context.Context, budgetID uuid.UUID, start, end time.Time) ([]*entity.Transaction, error)

	// FindByAccount retrieves all transactions for the account, with splits.
	FindByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Transaction, error)

	// Update updates a transaction and replaces its splits in a single
	// database transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// UpdateTransferPair updates both legs of a transfer in a single database
	// transaction.
	UpdateTransferPair(ctx context.Context, outflow, inflow *entity.Transaction) error

	// Delete removes a transaction along with its splits and, for transfers,
	// the paired leg, in a single database transaction.
	Delete(ctx context.Context, id uuid.UUID) error

	// EarliestDate returns the date of the budget's oldest transaction, or nil
	// when the budget has none.
	EarliestDate(ctx context.Context, budgetID uuid.UUID) (*time.Time, error)
}
