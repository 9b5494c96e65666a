package error

import "errors"

// Payee domain errors.
var (
	// ErrPayeeNotFound is returned when a payee is not found or belongs to
	// another budget.
	ErrPayeeNotFound = errors.New("payee not found")

	// ErrPayeeNameRequired is returned when a payee name is empty.
	ErrPayeeNameRequired = errors.New("payee name is required")
)

// PayeeErrorCode defines error codes for payee errors.
// Format: PAY-XXYYYY where XX is category and YYYY is specific error.
type PayeeErrorCode string

const (
	ErrCodePayeeNameRequired PayeeErrorCode = "PAY-010001"
	ErrCodePayeeNotFound     PayeeErrorCode = "PAY-020001"
)

// PayeeError represents a payee error with code and message.
type PayeeError struct {
	Code    PayeeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PayeeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PayeeError) Unwrap() error {
	return e.Err
}

// NewPayeeError creates a new PayeeError with the given code and message.
func NewPayeeError(code PayeeErrorCode, message string, err error) *PayeeError {
	return &PayeeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
