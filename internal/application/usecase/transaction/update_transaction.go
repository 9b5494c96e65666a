package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/domain/entity"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
)

// UpdateTransactionInput represents the input for updating a transaction.
// Nil pointers leave the corresponding field unchanged. Splits, when present,
// replace the existing split set entirely (and may collapse to a direct
// category, or convert a direct transaction into a split one).
type UpdateTransactionInput struct {
	BudgetID      uuid.UUID
	TransactionID uuid.UUID
	AccountID     *uuid.UUID
	CategoryID    *uuid.UUID
	ClearCategory bool
	Amount        *decimal.Decimal // positive magnitude
	Date          *time.Time
	Memo          *string
	Splits        []SplitInput
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase updates a transaction while holding the
// consistency rules: sign convention, split sums, and transfer mirroring.
// For transfers, amount and date changes apply to both legs.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	categoryRepo    adapter.CategoryRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
	}
}

// Execute performs the update. Multi-row writes land in one database
// transaction.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	t, err := uc.findOwned(ctx, input.BudgetID, input.TransactionID)
	if err != nil {
		return nil, err
	}
	if t.IsTransfer() {
		return uc.updateTransfer(ctx, t, input)
	}
	return uc.updatePlain(ctx, t, input)
}

func (uc *UpdateTransactionUseCase) findOwned(ctx context.Context, budgetID, id uuid.UUID) (*entity.Transaction, error) {
	t, err := uc.transactionRepo.FindByID(ctx, id)
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
	return t, nil
}

func (uc *UpdateTransactionUseCase) updatePlain(ctx context.Context, t *entity.Transaction, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if input.Memo != nil {
		if err := validateMemo(*input.Memo); err != nil {
			return nil, err
		}
		t.Memo = *input.Memo
	}
	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionDate,
				"date is required",
				domainerror.ErrInvalidTransactionDate,
			)
		}
		t.Date = *input.Date
	}
	if input.AccountID != nil && *input.AccountID != t.AccountID {
		account, err := ownedAccount(ctx, uc.accountRepo, input.BudgetID, *input.AccountID)
		if err != nil {
			return nil, err
		}
		t.AccountID = account.ID
		t.Cleared = autoClear(account, t.Cleared)
	}

	switch {
	case len(input.Splits) > 1:
		owned, err := ownedCategories(ctx, uc.categoryRepo, input.BudgetID)
		if err != nil {
			return nil, err
		}
		var total decimal.Decimal
		t.Splits = nil
		for _, s := range input.Splits {
			if err := validateMagnitude(s.Amount); err != nil {
				return nil, err
			}
			if err := checkCategoryOwned(owned, s.CategoryID); err != nil {
				return nil, err
			}
			total = total.Add(s.Amount)
			t.Splits = append(t.Splits, entity.NewSplitTransaction(t.ID, s.CategoryID, signedAmount(s.Amount, t.Type)))
		}
		t.CategoryID = nil
		t.Amount = signedAmount(total, t.Type)

	case len(input.Splits) == 1:
		// Single split collapses to a direct category.
		if err := validateMagnitude(input.Splits[0].Amount); err != nil {
			return nil, err
		}
		owned, err := ownedCategories(ctx, uc.categoryRepo, input.BudgetID)
		if err != nil {
			return nil, err
		}
		if err := checkCategoryOwned(owned, input.Splits[0].CategoryID); err != nil {
			return nil, err
		}
		categoryID := input.Splits[0].CategoryID
		t.Splits = nil
		t.CategoryID = &categoryID
		t.Amount = signedAmount(input.Splits[0].Amount, t.Type)

	default:
		if input.Amount != nil {
			if t.IsSplit() {
				// The amount of a split transaction is derived from its
				// splits; direct edits must go through the splits.
				return nil, domainerror.NewTransactionError(
					domainerror.ErrCodeSplitSumMismatch,
					"split transaction amounts are edited through their splits",
					domainerror.ErrSplitSumMismatch,
				)
			}
			if err := validateMagnitude(*input.Amount); err != nil {
				return nil, err
			}
			t.Amount = signedAmount(*input.Amount, t.Type)
		}
		if input.ClearCategory {
			t.CategoryID = nil
		} else if input.CategoryID != nil {
			owned, err := ownedCategories(ctx, uc.categoryRepo, input.BudgetID)
			if err != nil {
				return nil, err
			}
			if err := checkCategoryOwned(owned, *input.CategoryID); err != nil {
				return nil, err
			}
			if t.IsSplit() {
				t.Splits = nil
			}
			t.CategoryID = input.CategoryID
		}
	}

	t.UpdatedAt = time.Now().UTC()
	if err := uc.transactionRepo.Update(ctx, t); err != nil {
		return nil, err
	}
	return &UpdateTransactionOutput{Transaction: t}, nil
}

func (uc *UpdateTransactionUseCase) updateTransfer(ctx context.Context, t *entity.Transaction, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if input.CategoryID != nil || len(input.Splits) > 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransferHasCategory,
			"transfers cannot carry a category",
			domainerror.ErrTransferHasCategory,
		)
	}
	if t.TransferPairID == nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transfer pair not found",
			domainerror.ErrTransactionNotFound,
		)
	}
	pair, err := uc.findOwned(ctx, input.BudgetID, *t.TransferPairID)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		if err := validateMagnitude(*input.Amount); err != nil {
			return nil, err
		}
		magnitude := *input.Amount
		if t.Amount.IsNegative() {
			t.Amount = magnitude.Neg()
			pair.Amount = magnitude
		} else {
			t.Amount = magnitude
			pair.Amount = magnitude.Neg()
		}
	}
	if input.Date != nil && !input.Date.IsZero() {
		t.Date = *input.Date
		pair.Date = *input.Date
	}
	if input.Memo != nil {
		if err := validateMemo(*input.Memo); err != nil {
			return nil, err
		}
		t.Memo = *input.Memo
		pair.Memo = *input.Memo
	}

	now := time.Now().UTC()
	t.UpdatedAt = now
	pair.UpdatedAt = now
	if err := uc.transactionRepo.UpdateTransferPair(ctx, t, pair); err != nil {
		return nil, err
	}
	return &UpdateTransactionOutput{Transaction: t}, nil
}
