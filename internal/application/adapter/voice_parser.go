package adapter

import (
	"context"

	"github.com/shopspring/decimal"
)

// ParsedVoiceTransaction is one transaction extracted from a spoken
// transcript. Names are raw strings as heard; resolution against the budget's
// accounts, categories and payees happens in the use case layer.
type ParsedVoiceTransaction struct {
	Amount       decimal.Decimal `json:"amount"`
	Type         string          `json:"type"`
	AccountName  string          `json:"account_name"`
	CategoryName string          `json:"category_name"`
	PayeeName    string          `json:"payee_name"`
	Date         string          `json:"date"` // YYYY-MM-DD, empty means today
	Memo         string          `json:"memo"`
}

// VoiceParseResult is the parser's structured output for one transcript.
type VoiceParseResult struct {
	Transactions []ParsedVoiceTransaction `json:"transactions"`
	Confidence   float64                  `json:"confidence"`
}

// VoiceContext gives the parser the vocabulary of the budget so it can ground
// names instead of inventing them.
type VoiceContext struct {
	AccountNames  []string
	CategoryNames []string
	PayeeNames    []string
	Today         string // YYYY-MM-DD
}

// VoiceTransactionParser turns a free-form spoken transcript into structured
// transactions. Implementations call an external model; output is untrusted
// and must be re-validated by the caller.
type VoiceTransactionParser interface {
	ParseTranscript(ctx context.Context, transcript string, vc VoiceContext) (*VoiceParseResult, error)
}
