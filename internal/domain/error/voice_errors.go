package error

import "errors"

// Voice transcript parsing errors. The parser itself is an external
// collaborator; these errors cover its integration and the re-validation of
// its output.
var (
	// ErrVoiceParserUnavailable is returned when no parser is configured.
	ErrVoiceParserUnavailable = errors.New("voice parser is not configured")

	// ErrTranscriptEmpty is returned when the transcript is blank.
	ErrTranscriptEmpty = errors.New("transcript is empty")

	// ErrTranscriptNotUnderstood is returned when the parser could not
	// produce structured transactions from the transcript.
	ErrTranscriptNotUnderstood = errors.New("could not understand transcript")

	// ErrUnresolvedReference is returned when a parsed transaction names an
	// account, category or payee that cannot be resolved within the budget.
	ErrUnresolvedReference = errors.New("unresolved account or category reference")
)

// VoiceErrorCode defines error codes for voice parsing errors.
// Format: VOX-XXYYYY where XX is category and YYYY is specific error.
type VoiceErrorCode string

const (
	ErrCodeVoiceParserUnavailable  VoiceErrorCode = "VOX-010001"
	ErrCodeTranscriptEmpty         VoiceErrorCode = "VOX-010002"
	ErrCodeTranscriptNotUnderstood VoiceErrorCode = "VOX-010003"
	ErrCodeUnresolvedReference     VoiceErrorCode = "VOX-020001"
)

// VoiceError represents a voice parsing error with code and message.
type VoiceError struct {
	Code    VoiceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *VoiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *VoiceError) Unwrap() error {
	return e.Err
}

// NewVoiceError creates a new VoiceError with the given code and message.
func NewVoiceError(code VoiceErrorCode, message string, err error) *VoiceError {
	return &VoiceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
