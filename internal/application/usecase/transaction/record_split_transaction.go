package transaction

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/domain/entity"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
)

// SplitInput is one category's share of a split. Amount is a positive
// magnitude; the engine applies the parent's sign.
type SplitInput struct {
	CategoryID uuid.UUID
	Amount     decimal.Decimal
}

// RecordSplitTransactionInput represents the input for recording a
// transaction divided across multiple categories. Amount is the caller's
// stated total and must equal the sum of the splits.
type RecordSplitTransactionInput struct {
	BudgetID  uuid.UUID
	AccountID uuid.UUID
	PayeeName string
	Amount    decimal.Decimal
	Type      entity.TransactionType
	Date      time.Time
	Cleared   bool
	Memo      string
	Splits    []SplitInput
}

// RecordSplitTransactionOutput represents the output of recording a split
// transaction.
type RecordSplitTransactionOutput struct {
	Transaction *entity.Transaction
}

// RecordSplitTransactionUseCase records a transaction whose amount divides
// across categories. A single split collapses to a direct category
// assignment, so a stored split transaction always has at least two rows.
type RecordSplitTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	categoryRepo    adapter.CategoryRepository
	payeeRepo       adapter.PayeeRepository
}

// NewRecordSplitTransactionUseCase creates a new RecordSplitTransactionUseCase instance.
func NewRecordSplitTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	payeeRepo adapter.PayeeRepository,
) *RecordSplitTransactionUseCase {
	return &RecordSplitTransactionUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		payeeRepo:       payeeRepo,
	}
}

// Execute performs the recording. Parent and splits land in one database
// transaction.
func (uc *RecordSplitTransactionUseCase) Execute(ctx context.Context, input RecordSplitTransactionInput) (*RecordSplitTransactionOutput, error) {
	if input.Type != entity.TransactionTypeExpense && input.Type != entity.TransactionTypeIncome {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if len(input.Splits) == 0 {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeSplitsRequired,
			"at least one split is required",
			domainerror.ErrSplitsRequired,
		)
	}
	if err := validateMemo(input.Memo); err != nil {
		return nil, err
	}
	if input.Date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	account, err := ownedAccount(ctx, uc.accountRepo, input.BudgetID, input.AccountID)
	if err != nil {
		return nil, err
	}
	owned, err := ownedCategories(ctx, uc.categoryRepo, input.BudgetID)
	if err != nil {
		return nil, err
	}

	var total decimal.Decimal
	for _, s := range input.Splits {
		if err := validateMagnitude(s.Amount); err != nil {
			return nil, err
		}
		if err := checkCategoryOwned(owned, s.CategoryID); err != nil {
			return nil, err
		}
		total = total.Add(s.Amount)
	}
	if !input.Amount.Equal(total) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeSplitSumMismatch,
			"split amounts must sum to the transaction amount",
			domainerror.ErrSplitSumMismatch,
		)
	}

	var payeeID *uuid.UUID
	if name := strings.TrimSpace(input.PayeeName); name != "" {
		payee, err := uc.payeeRepo.FindOrCreate(ctx, input.BudgetID, name)
		if err != nil {
			return nil, err
		}
		payeeID = &payee.ID
	}

	// A single category is not stored as a one-row split; it collapses to a
	// direct category assignment.
	if len(input.Splits) == 1 {
		categoryID := input.Splits[0].CategoryID
		t := entity.NewTransaction(
			input.BudgetID,
			input.AccountID,
			&categoryID,
			payeeID,
			signedAmount(total, input.Type),
			input.Type,
			input.Date,
			autoClear(account, input.Cleared),
			input.Memo,
		)
		if err := uc.transactionRepo.Create(ctx, t); err != nil {
			return nil, err
		}
		return &RecordSplitTransactionOutput{Transaction: t}, nil
	}

	t := entity.NewTransaction(
		input.BudgetID,
		input.AccountID,
		nil,
		payeeID,
		signedAmount(total, input.Type),
		input.Type,
		input.Date,
		autoClear(account, input.Cleared),
		input.Memo,
	)
	for _, s := range input.Splits {
		t.Splits = append(t.Splits, entity.NewSplitTransaction(t.ID, s.CategoryID, signedAmount(s.Amount, input.Type)))
	}
	if err := uc.transactionRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	return &RecordSplitTransactionOutput{Transaction: t}, nil
}
