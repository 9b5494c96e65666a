package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/gkeele21/family-budget/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
type AccountRepository interface {
	// Create creates a new account in the database.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByBudget retrieves all accounts for a budget, ordered by sort order.
	FindByBudget(ctx context.Context, budgetID uuid.UUID) ([]*entity.Account, error)

	// Update updates an existing account in the database.
	Update(ctx context.Context, account *entity.Account) error

	// UpdateSortOrder persists the given sort order for each account ID,
	// in a single database transaction.
	UpdateSortOrder(ctx context.Context, budgetID uuid.UUID, orderedIDs []uuid.UUID) error

	// Delete removes an account from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// HasTransactions reports whether any transaction references the account.
	HasTransactions(ctx context.Context, accountID uuid.UUID) (bool, error)
}
