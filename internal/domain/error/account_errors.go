package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found in the system.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountNotInBudget is returned when a referenced account does not belong to the budget.
	ErrAccountNotInBudget = errors.New("account does not belong to budget")

	// ErrInvalidAccountType is returned when the account type is invalid.
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrForeignReorderIDs is returned when a reorder request includes IDs
	// not owned by the budget. The whole operation is rejected.
	ErrForeignReorderIDs = errors.New("reorder IDs must belong to the budget")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAccountType AccountErrorCode = "ACC-010001"

	// Not-found / ownership errors (02XXXX)
	ErrCodeAccountNotFound    AccountErrorCode = "ACC-020001"
	ErrCodeAccountNotInBudget AccountErrorCode = "ACC-020002"
	ErrCodeForeignReorderIDs  AccountErrorCode = "ACC-020003"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
