// Package transaction contains transaction recording use cases and the
// consistency rules applied on every write path: sign conventions, split sum
// checks, transfer mirroring and the cash auto-clear rule.
package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/domain/entity"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
)

// MaxMemoLength is the maximum allowed length for transaction memos.
const MaxMemoLength = 500

// signedAmount applies the sign convention to a caller-supplied positive
// magnitude: expenses are stored negative, income positive.
func signedAmount(magnitude decimal.Decimal, t entity.TransactionType) decimal.Decimal {
	if t == entity.TransactionTypeExpense {
		return magnitude.Neg()
	}
	return magnitude
}

// validateMagnitude rejects zero and negative amounts. Callers always enter
// amounts as positive magnitudes; the engine applies the sign.
func validateMagnitude(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeAmountNotPositive,
			"amount must be positive",
			domainerror.ErrAmountNotPositive,
		)
	}
	return nil
}

// validateMemo rejects memos over MaxMemoLength.
func validateMemo(memo string) error {
	if len(memo) > MaxMemoLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeMemoTooLong,
			fmt.Sprintf("memo must not exceed %d characters", MaxMemoLength),
			domainerror.ErrMemoTooLong,
		)
	}
	return nil
}

// autoClear applies the cash rule: cash accounts have no reconciliation step,
// so their transactions are always cleared regardless of the caller's flag.
func autoClear(account *entity.Account, cleared bool) bool {
	if account.Type == entity.AccountTypeCash {
		return true
	}
	return cleared
}

// ownedAccount resolves an account and checks budget ownership.
func ownedAccount(ctx context.Context, repo adapter.AccountRepository, budgetID, accountID uuid.UUID) (*entity.Account, error) {
	a, err := repo.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}
	if a.BudgetID != budgetID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTxnAccountNotFound,
			"account does not belong to budget",
			domainerror.ErrAccountNotInBudget,
		)
	}
	return a, nil
}

// ownedCategories returns the set of category IDs belonging to the budget.
func ownedCategories(ctx context.Context, repo adapter.CategoryRepository, budgetID uuid.UUID) (map[uuid.UUID]struct{}, error) {
	categories, err := repo.FindCategoriesByBudget(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	ids := make(map[uuid.UUID]struct{}, len(categories))
	for _, c := range categories {
		ids[c.ID] = struct{}{}
	}
	return ids, nil
}

// checkCategoryOwned verifies a category reference against the owned set.
func checkCategoryOwned(owned map[uuid.UUID]struct{}, categoryID uuid.UUID) error {
	if _, ok := owned[categoryID]; !ok {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeTxnCategoryNotFound,
			"category does not belong to budget",
			domainerror.ErrCategoryNotInBudget,
		)
	}
	return nil
}
