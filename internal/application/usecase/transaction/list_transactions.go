package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/gkeele21/family-budget/internal/application/adapter"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// ListTransactionsInput represents the input for the transaction list query.
type ListTransactionsInput struct {
	BudgetID   uuid.UUID
	Filter     adapter.TransactionFilter
	Pagination adapter.TransactionPagination
}

// ListTransactionsUseCase lists transactions with filters and pagination,
// newest first.
type ListTransactionsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepo adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{transactionRepo: transactionRepo}
}

// Execute performs the list query.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*adapter.TransactionListResult, error) {
	p := input.Pagination
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultPageLimit
	}
	if p.Limit > maxPageLimit {
		p.Limit = maxPageLimit
	}
	return uc.transactionRepo.FindByFilter(ctx, input.BudgetID, input.Filter, p)
}
