package error

import "errors"

// Recurring transaction domain errors.
var (
	// ErrRecurringNotFound is returned when a recurring definition is not found.
	ErrRecurringNotFound = errors.New("recurring transaction not found")

	// ErrRecurringNotInBudget is returned when a definition does not belong to the budget.
	ErrRecurringNotInBudget = errors.New("recurring transaction does not belong to budget")

	// ErrInvalidFrequency is returned when the frequency is not one of the known values.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrEndDateBeforeNextDate is returned when the end date precedes the next occurrence.
	ErrEndDateBeforeNextDate = errors.New("end date must be after next date")

	// ErrRecurringTransferUnsupported is returned when a recurring definition
	// is created with the transfer type; only expense and income recur.
	ErrRecurringTransferUnsupported = errors.New("recurring transfers are not supported")
)

// RecurringErrorCode defines error codes for recurring transaction errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecurringErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidFrequency             RecurringErrorCode = "REC-010001"
	ErrCodeEndDateBeforeNextDate        RecurringErrorCode = "REC-010002"
	ErrCodeRecurringTransferUnsupported RecurringErrorCode = "REC-010003"

	// Not-found / ownership errors (02XXXX)
	ErrCodeRecurringNotFound    RecurringErrorCode = "REC-020001"
	ErrCodeRecurringNotInBudget RecurringErrorCode = "REC-020002"
)

// RecurringError represents a recurring transaction error with code and message.
type RecurringError struct {
	Code    RecurringErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecurringError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecurringError) Unwrap() error {
	return e.Err
}

// NewRecurringError creates a new RecurringError with the given code and message.
func NewRecurringError(code RecurringErrorCode, message string, err error) *RecurringError {
	return &RecurringError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
