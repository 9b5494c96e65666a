package error

import "errors"

// Category and category-group domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryGroupNotFound is returned when a category group is not found.
	ErrCategoryGroupNotFound = errors.New("category group not found")

	// ErrCategoryGroupNotInBudget is returned when a group does not belong to the budget.
	ErrCategoryGroupNotInBudget = errors.New("category group does not belong to budget")

	// ErrCategoryNameRequired is returned when a category name is empty.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrTooManyProjections is returned when more than three projection slots are supplied.
	ErrTooManyProjections = errors.New("at most three projections are allowed")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameRequired CategoryErrorCode = "CAT-010001"
	ErrCodeTooManyProjections   CategoryErrorCode = "CAT-010002"

	// Not-found / ownership errors (02XXXX)
	ErrCodeCategoryNotFound         CategoryErrorCode = "CAT-020001"
	ErrCodeCategoryGroupNotFound    CategoryErrorCode = "CAT-020002"
	ErrCodeCategoryGroupNotInBudget CategoryErrorCode = "CAT-020003"
	ErrCodeForeignCategoryIDs       CategoryErrorCode = "CAT-020004"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
