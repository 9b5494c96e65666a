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

// RecordTransferInput represents the input for recording a transfer between
// two accounts. Amount is a positive magnitude.
type RecordTransferInput struct {
	BudgetID      uuid.UUID
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	Amount        decimal.Decimal
	Date          time.Time
	Cleared       bool
	Memo          string
}

// RecordTransferOutput carries both legs of the created pair.
type RecordTransferOutput struct {
	Outflow *entity.Transaction
	Inflow  *entity.Transaction
}

// RecordTransferUseCase records a mirrored transfer pair: two transaction
// rows of equal magnitude and opposite sign, dated identically, with no
// category or payee, each referencing the other. Transfers never touch
// envelope math.
type RecordTransferUseCase struct {
	transactionRepo adapter.TransactionRepository
	accountRepo     adapter.AccountRepository
}

// NewRecordTransferUseCase creates a new RecordTransferUseCase instance.
func NewRecordTransferUseCase(
	transactionRepo adapter.TransactionRepository,
	accountRepo adapter.AccountRepository,
) *RecordTransferUseCase {
	return &RecordTransferUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

// Execute performs the recording. Both legs land in one database transaction.
func (uc *RecordTransferUseCase) Execute(ctx context.Context, input RecordTransferInput) (*RecordTransferOutput, error) {
	if err := validateMagnitude(input.Amount); err != nil {
		return nil, err
	}
	if err := validateMemo(input.Memo); err != nil {
		return nil, err
	}
	if input.FromAccountID == input.ToAccountID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransferSameAccount,
			"transfer accounts must differ",
			domainerror.ErrTransferSameAccount,
		)
	}
	if input.Date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	from, err := ownedAccount(ctx, uc.accountRepo, input.BudgetID, input.FromAccountID)
	if err != nil {
		return nil, err
	}
	to, err := ownedAccount(ctx, uc.accountRepo, input.BudgetID, input.ToAccountID)
	if err != nil {
		return nil, err
	}

	outflow := entity.NewTransaction(
		input.BudgetID,
		from.ID,
		nil,
		nil,
		input.Amount.Neg(),
		entity.TransactionTypeTransfer,
		input.Date,
		autoClear(from, input.Cleared),
		input.Memo,
	)
	inflow := entity.NewTransaction(
		input.BudgetID,
		to.ID,
		nil,
		nil,
		input.Amount,
		entity.TransactionTypeTransfer,
		input.Date,
		autoClear(to, input.Cleared),
		input.Memo,
	)
	outflow.TransferPairID = &inflow.ID
	inflow.TransferPairID = &outflow.ID

	if err := uc.transactionRepo.CreateTransferPair(ctx, outflow, inflow); err != nil {
		return nil, err
	}
	return &RecordTransferOutput{Outflow: outflow, Inflow: inflow}, nil
}
