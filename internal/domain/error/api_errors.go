package error

// APIErrorCode defines error codes for API-level errors that are not tied
// to a single domain feature.
// Format: API-XXYYYY where XX is category and YYYY is specific error.
type APIErrorCode string

const (
	ErrCodeRateLimited APIErrorCode = "API-020001"
)
