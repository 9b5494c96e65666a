package account

import (
	"context"

	"github.com/google/uuid"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
)

// ReorderAccountsInput represents the input for account reordering.
type ReorderAccountsInput struct {
	BudgetID   uuid.UUID
	OrderedIDs []uuid.UUID
}

// ReorderAccountsUseCase persists a new sort order for the budget's accounts.
// The ID list must be a subset of the budget's own accounts; a single foreign
// ID rejects the whole operation with no partial reorder.
type ReorderAccountsUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewReorderAccountsUseCase creates a new ReorderAccountsUseCase instance.
func NewReorderAccountsUseCase(accountRepo adapter.AccountRepository) *ReorderAccountsUseCase {
	return &ReorderAccountsUseCase{accountRepo: accountRepo}
}

// Execute performs the reorder.
func (uc *ReorderAccountsUseCase) Execute(ctx context.Context, input ReorderAccountsInput) error {
	owned, err := uc.accountRepo.FindByBudget(ctx, input.BudgetID)
	if err != nil {
		return err
	}
	ownedIDs := make(map[uuid.UUID]struct{}, len(owned))
	for _, a := range owned {
		ownedIDs[a.ID] = struct{}{}
	}
	for _, id := range input.OrderedIDs {
		if _, ok := ownedIDs[id]; !ok {
			return domainerror.NewAccountError(
				domainerror.ErrCodeForeignReorderIDs,
				"reorder IDs must belong to the budget",
				domainerror.ErrForeignReorderIDs,
			)
		}
	}
	return uc.accountRepo.UpdateSortOrder(ctx, input.BudgetID, input.OrderedIDs)
}
