package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
)

// DeleteTransactionUseCase deletes a transaction. Splits go with their
// parent, and deleting either leg of a transfer removes the pair; the whole
// removal is all-or-nothing.
type DeleteTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactionRepo adapter.TransactionRepository) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{transactionRepo: transactionRepo}
}

// Execute performs the deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, budgetID, transactionID uuid.UUID) error {
	t, err := uc.transactionRepo.FindByID(ctx, transactionID)
	if err != nil {
		return err
	}
	if t == nil {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	if t.BudgetID != budgetID {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotInBudget,
			"transaction does not belong to budget",
			domainerror.ErrTransactionNotInBudget,
		)
	}
	return uc.transactionRepo.Delete(ctx, transactionID)
}
