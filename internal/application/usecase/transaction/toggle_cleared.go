package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/domain/entity"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
)

// ToggleClearedOutput represents the output of a cleared toggle.
type ToggleClearedOutput struct {
	Transaction *entity.Transaction
}

// ToggleClearedUseCase flips a transaction's cleared flag. Cash accounts have
// no reconciliation step, so their transactions stay cleared. Each transfer
// leg reconciles against its own account independently.
type ToggleClearedUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
}

// NewToggleClearedUseCase creates a new ToggleClearedUseCase instance.
func NewToggleClearedUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
) *ToggleClearedUseCase {
	return &ToggleClearedUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

// Execute performs the toggle.
func (uc *ToggleClearedUseCase) Execute(ctx context.Context, budgetID, transactionID uuid.UUID) (*ToggleClearedOutput, error) {
	t, err := uc.transactionRepo.FindByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	if t.BudgetID != budgetID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotInBudget,
			"transaction does not belong to budget",
			domainerror.ErrTransactionNotInBudget,
		)
	}

	account, err := ownedAccount(ctx, uc.accountRepo, budgetID, t.AccountID)
	if err != nil {
		return nil, err
	}
	if account.Type == entity.AccountTypeCash {
		return &ToggleClearedOutput{Transaction: t}, nil
	}

	t.Cleared = !t.Cleared
	t.UpdatedAt = time.Now().UTC()
	if err := uc.transactionRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	return &ToggleClearedOutput{Transaction: t}, nil
}
