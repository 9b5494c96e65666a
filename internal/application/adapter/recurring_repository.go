package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gkeele21/family-budget/internal/domain/entity"
)

// RecurringRepository defines the interface for recurring transaction
// definition persistence.
type RecurringRepository interface {
	// Create creates a new recurring definition in the database.
	Create(ctx context.Context, recurring *entity.RecurringTransaction) error

	// FindByID retrieves a recurring definition by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringTransaction, error)

	// FindByBudget retrieves all recurring definitions for a budget, ordered
	// by next date.
	FindByBudget(ctx context.Context, budgetID uuid.UUID) ([]*entity.RecurringTransaction, error)

	// FindDue retrieves active definitions whose next date is on or before
	// asOf, across all budgets.
	FindDue(ctx context.Context, asOf time.Time) ([]*entity.RecurringTransaction, error)

	// Update updates an existing recurring definition in the database.
	Update(ctx context.Context, recurring *entity.RecurringTransaction) error

	// Delete removes a recurring definition. Transactions already materialized
	// from it are kept.
	Delete(ctx context.Context, id uuid.UUID) error

	// Materialize creates the given transaction and persists the advanced
	// definition in a single database transaction, so a definition is never
	// advanced without its transaction nor vice versa.
	Materialize(ctx context.Context, recurring *entity.RecurringTransaction, transaction *entity.Transaction) error
}
