package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/gkeele21/family-budget/internal/domain/entity"
)

// PayeeRepository defines the interface for payee persistence operations.
type PayeeRepository interface {
	// FindOrCreate returns the budget's payee with the given name, creating it
	// when absent. Name matching is case-insensitive.
	FindOrCreate(ctx context.Context, budgetID uuid.UUID, name string) (*entity.Payee, error)

	// FindByID retrieves a payee by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payee, error)

	// FindByBudget retrieves all payees for a budget, ordered by name.
	FindByBudget(ctx context.Context, budgetID uuid.UUID) ([]*entity.Payee, error)

	// Update updates an existing payee in the database.
	Update(ctx context.Context, payee *entity.Payee) error

	// Delete removes a payee. Transactions referencing it keep a nil payee.
	Delete(ctx context.Context, id uuid.UUID) error
}
