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

// RecordTransactionInput represents the input for recording a plain expense
// or income transaction. Amount is a positive magnitude; the engine applies
// the sign from Type.
type RecordTransactionInput struct {
	BudgetID   uuid.UUID
	AccountID  uuid.UUID
	CategoryID *uuid.UUID
	PayeeName  string
	Amount     decimal.Decimal
	Type       entity.TransactionType
	Date       time.Time
	Cleared    bool
	Memo       string
}

// RecordTransactionOutput represents the output of recording a transaction.
type RecordTransactionOutput struct {
	Transaction *entity.Transaction
}

// RecordTransactionUseCase records a single expense or income transaction.
// Transfers and splits go through their own use cases.
type RecordTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
	categoryRepo    adapter.CategoryRepository
	payeeRepo       adapter.PayeeRepository
}

// NewRecordTransactionUseCase creates a new RecordTransactionUseCase instance.
func NewRecordTransactionUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	payeeRepo adapter.PayeeRepository,
) *RecordTransactionUseCase {
	return &RecordTransactionUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		payeeRepo:       payeeRepo,
	}
}

// Execute performs the recording.
func (uc *RecordTransactionUseCase) Execute(ctx context.Context, input RecordTransactionInput) (*RecordTransactionOutput, error) {
	if input.Type != entity.TransactionTypeExpense && input.Type != entity.TransactionTypeIncome {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if err := validateMagnitude(input.Amount); err != nil {
		return nil, err
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

	categoryID := input.CategoryID
	var payeeID *uuid.UUID
	if name := strings.TrimSpace(input.PayeeName); name != "" {
		payee, err := uc.payeeRepo.FindOrCreate(ctx, input.BudgetID, name)
		if err != nil {
			return nil, err
		}
		payeeID = &payee.ID
		// A payee's default category fills in only when none was chosen.
		if categoryID == nil && payee.DefaultCategoryID != nil {
			categoryID = payee.DefaultCategoryID
		}
	}

	if categoryID != nil {
		owned, err := ownedCategories(ctx, uc.categoryRepo, input.BudgetID)
		if err != nil {
			return nil, err
		}
		if err := checkCategoryOwned(owned, *categoryID); err != nil {
			return nil, err
		}
	}

	t := entity.NewTransaction(
		input.BudgetID,
		input.AccountID,
		categoryID,
		payeeID,
		signedAmount(input.Amount, input.Type),
		input.Type,
		input.Date,
		autoClear(account, input.Cleared),
		input.Memo,
	)
	if err := uc.transactionRepo.Create(ctx, t); err != nil {
		return nil, err
	}
	return &RecordTransactionOutput{Transaction: t}, nil
}
