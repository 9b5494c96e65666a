// Package error defines domain-specific errors for the Family Budget application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrCategoryNotInBudget is returned when a referenced category does not belong to the budget.
	ErrCategoryNotInBudget = errors.New("category does not belong to budget")

	// ErrInvalidMonth is returned when a month key cannot be parsed.
	ErrInvalidMonth = errors.New("invalid month")

	// ErrInvalidBudgetedAmount is returned when an allocation amount is malformed.
	ErrInvalidBudgetedAmount = errors.New("invalid budgeted amount")

	// ErrMoveAmountNotPositive is returned when a move-money amount is zero or negative.
	ErrMoveAmountNotPositive = errors.New("move amount must be positive")

	// ErrMoveSameCategory is returned when money is moved from a category to itself.
	ErrMoveSameCategory = errors.New("cannot move money to the same category")

	// ErrInvalidProjectionIndex is returned when a projection index is outside 1..3.
	ErrInvalidProjectionIndex = errors.New("projection index out of range")

	// ErrBudgetNameRequired is returned when a budget name is empty.
	ErrBudgetNameRequired = errors.New("budget name is required")

	// ErrAllocationConflict is returned when a concurrent edit of the same
	// monthly allocation prevents the operation from completing.
	ErrAllocationConflict = errors.New("concurrent allocation update")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonth           BudgetErrorCode = "BDG-010001"
	ErrCodeInvalidBudgetedAmount  BudgetErrorCode = "BDG-010002"
	ErrCodeMoveAmountNotPositive  BudgetErrorCode = "BDG-010003"
	ErrCodeMoveSameCategory       BudgetErrorCode = "BDG-010004"
	ErrCodeInvalidProjectionIndex BudgetErrorCode = "BDG-010005"
	ErrCodeBudgetNameRequired     BudgetErrorCode = "BDG-010006"

	// Not-found / ownership errors (02XXXX)
	ErrCodeBudgetNotFound      BudgetErrorCode = "BDG-020001"
	ErrCodeCategoryNotInBudget BudgetErrorCode = "BDG-020002"

	// Conflict errors (03XXXX)
	ErrCodeAllocationConflict BudgetErrorCode = "BDG-030001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
