package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrTransactionNotInBudget is returned when a transaction does not belong to the budget.
	ErrTransactionNotInBudget = errors.New("transaction does not belong to budget")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrAmountNotPositive is returned when the caller-supplied magnitude is zero or negative.
	// Amounts are entered as positive magnitudes; the engine applies the sign.
	ErrAmountNotPositive = errors.New("amount must be positive")

	// ErrMemoTooLong is returned when the transaction memo exceeds the maximum length.
	ErrMemoTooLong = errors.New("memo too long")

	// ErrInvalidTransactionDate is returned when the transaction date is missing.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrSplitSumMismatch is returned when split amounts do not sum to the parent amount.
	ErrSplitSumMismatch = errors.New("split amounts must sum to transaction amount")

	// ErrSplitsRequired is returned when a split transaction carries no split rows.
	ErrSplitsRequired = errors.New("at least one split is required")

	// ErrTransferSameAccount is returned when both legs of a transfer use one account.
	ErrTransferSameAccount = errors.New("transfer accounts must differ")

	// ErrTransferHasCategory is returned when a transfer carries a category or payee.
	ErrTransferHasCategory = errors.New("transfers cannot carry a category or payee")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType TransactionErrorCode = "TXN-010001"
	ErrCodeAmountNotPositive      TransactionErrorCode = "TXN-010002"
	ErrCodeMemoTooLong            TransactionErrorCode = "TXN-010003"
	ErrCodeSplitSumMismatch       TransactionErrorCode = "TXN-010004"
	ErrCodeSplitsRequired         TransactionErrorCode = "TXN-010005"
	ErrCodeTransferSameAccount    TransactionErrorCode = "TXN-010006"
	ErrCodeTransferHasCategory    TransactionErrorCode = "TXN-010007"
	ErrCodeInvalidTransactionDate TransactionErrorCode = "TXN-010008"

	// Not-found / ownership errors (02XXXX)
	ErrCodeTransactionNotFound    TransactionErrorCode = "TXN-020001"
	ErrCodeTransactionNotInBudget TransactionErrorCode = "TXN-020002"
	ErrCodeTxnAccountNotFound     TransactionErrorCode = "TXN-020003"
	ErrCodeTxnCategoryNotFound    TransactionErrorCode = "TXN-020004"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
