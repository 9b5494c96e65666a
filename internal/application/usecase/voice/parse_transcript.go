// Package voice contains the spoken-transcript entry use cases. The parser is
// an external, untrusted collaborator; everything it returns is re-resolved
// and re-validated here before any transaction is recorded.
package voice

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/application/usecase/transaction"
	"github.com/gkeele21/family-budget/internal/domain/entity"
	domainerror "github.com/gkeele21/family-budget/internal/domain/error"
)

// PreviewTranscriptInput represents the input for a transcript preview.
type PreviewTranscriptInput struct {
	BudgetID   uuid.UUID
	Transcript string
	Today      time.Time
}

// PreviewItem is one parsed transaction with its references resolved against
// the budget. Unresolved items carry the reasons and are never recordable.
type PreviewItem struct {
	Parsed     adapter.ParsedVoiceTransaction
	AccountID  *uuid.UUID
	CategoryID *uuid.UUID
	Date       time.Time
	Resolved   bool
	Issues     []string
}

// PreviewTranscriptOutput represents the output of a transcript preview.
type PreviewTranscriptOutput struct {
	Items      []PreviewItem
	Confidence float64
}

// PreviewTranscriptUseCase turns a transcript into resolved, validated
// transaction candidates for the caller to confirm.
type PreviewTranscriptUseCase struct {
	parser       adapter.VoiceTransactionParser
	accountRepo  adapter.AccountRepository
	categoryRepo adapter.CategoryRepository
	payeeRepo    adapter.PayeeRepository
}

// NewPreviewTranscriptUseCase creates a new PreviewTranscriptUseCase instance.
func NewPreviewTranscriptUseCase(
	parser adapter.VoiceTransactionParser,
	accountRepo adapter.AccountRepository,
	categoryRepo adapter.CategoryRepository,
	payeeRepo adapter.PayeeRepository,
) *PreviewTranscriptUseCase {
	return &PreviewTranscriptUseCase{
		parser:       parser,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		payeeRepo:    payeeRepo,
	}
}

// Execute performs the parse and resolution.
func (uc *PreviewTranscriptUseCase) Execute(ctx context.Context, input PreviewTranscriptInput) (*PreviewTranscriptOutput, error) {
	if uc.parser == nil {
		return nil, domainerror.NewVoiceError(
			domainerror.ErrCodeVoiceParserUnavailable,
			"voice parser is not configured",
			domainerror.ErrVoiceParserUnavailable,
		)
	}
	transcript := strings.TrimSpace(input.Transcript)
	if transcript == "" {
		return nil, domainerror.NewVoiceError(
			domainerror.ErrCodeTranscriptEmpty,
			"transcript is empty",
			domainerror.ErrTranscriptEmpty,
		)
	}

	accounts, err := uc.accountRepo.FindByBudget(ctx, input.BudgetID)
	if err != nil {
		return nil, err
	}
	categories, err := uc.categoryRepo.FindCategoriesByBudget(ctx, input.BudgetID)
	if err != nil {
		return nil, err
	}
	payees, err := uc.payeeRepo.FindByBudget(ctx, input.BudgetID)
	if err != nil {
		return nil, err
	}

	vc := adapter.VoiceContext{Today: input.Today.Format("2006-01-02")}
	accountsByName := make(map[string]*entity.Account, len(accounts))
	for _, a := range accounts {
		vc.AccountNames = append(vc.AccountNames, a.Name)
		accountsByName[strings.ToLower(a.Name)] = a
	}
	categoriesByName := make(map[string]*entity.Category, len(categories))
	for _, c := range categories {
		vc.CategoryNames = append(vc.CategoryNames, c.Name)
		categoriesByName[strings.ToLower(c.Name)] = c
	}
	for _, p := range payees {
		vc.PayeeNames = append(vc.PayeeNames, p.Name)
	}

	result, err := uc.parser.ParseTranscript(ctx, transcript, vc)
	if err != nil {
		return nil, domainerror.NewVoiceError(
			domainerror.ErrCodeTranscriptNotUnderstood,
			"could not understand transcript",
			err,
		)
	}
	if len(result.Transactions) == 0 {
		return nil, domainerror.NewVoiceError(
			domainerror.ErrCodeTranscriptNotUnderstood,
			"could not understand transcript",
			domainerror.ErrTranscriptNotUnderstood,
		)
	}

	out := &PreviewTranscriptOutput{Confidence: result.Confidence}
	for _, parsed := range result.Transactions {
		item := PreviewItem{Parsed: parsed, Date: input.Today}

		if !parsed.Amount.IsPositive() {
			item.Issues = append(item.Issues, "amount must be positive")
		}
		t := entity.TransactionType(parsed.Type)
		if t != entity.TransactionTypeExpense && t != entity.TransactionTypeIncome {
			item.Issues = append(item.Issues, "type must be expense or income")
		}
		if parsed.Date != "" {
			d, err := time.Parse("2006-01-02", parsed.Date)
			if err != nil {
				item.Issues = append(item.Issues, "unrecognized date")
			} else {
				item.Date = d
			}
		}

		if a, ok := accountsByName[strings.ToLower(strings.TrimSpace(parsed.AccountName))]; ok {
			item.AccountID = &a.ID
		} else if len(accounts) == 1 {
			// With a single account there is nothing to disambiguate.
			item.AccountID = &accounts[0].ID
		} else {
			item.Issues = append(item.Issues, "unresolved account")
		}
		if name := strings.TrimSpace(parsed.CategoryName); name != "" {
			if c, ok := categoriesByName[strings.ToLower(name)]; ok {
				item.CategoryID = &c.ID
			} else {
				item.Issues = append(item.Issues, "unresolved category")
			}
		}

		item.Resolved = len(item.Issues) == 0
		out.Items = append(out.Items, item)
	}
	return out, nil
}

// RecordTranscriptInput represents the input for recording a confirmed
// transcript in one step.
type RecordTranscriptInput struct {
	BudgetID   uuid.UUID
	Transcript string
	Today      time.Time
}

// RecordTranscriptOutput represents the output of a transcript recording.
type RecordTranscriptOutput struct {
	Recorded []*entity.Transaction
	Skipped  []PreviewItem
}

// RecordTranscriptUseCase parses a transcript and records every fully
// resolved item through the regular transaction path, so the same
// consistency rules apply as for hand-entered transactions.
type RecordTranscriptUseCase struct {
	preview *PreviewTranscriptUseCase
	record  *transaction.RecordTransactionUseCase
}

// NewRecordTranscriptUseCase creates a new RecordTranscriptUseCase instance.
func NewRecordTranscriptUseCase(
	preview *PreviewTranscriptUseCase,
	record *transaction.RecordTransactionUseCase,
) *RecordTranscriptUseCase {
	return &RecordTranscriptUseCase{
		preview: preview,
		record:  record,
	}
}

// Execute performs the parse and recording. Unresolved items are returned as
// skipped rather than failing the whole batch.
func (uc *RecordTranscriptUseCase) Execute(ctx context.Context, input RecordTranscriptInput) (*RecordTranscriptOutput, error) {
	preview, err := uc.preview.Execute(ctx, PreviewTranscriptInput(input))
	if err != nil {
		return nil, err
	}

	out := &RecordTranscriptOutput{}
	for _, item := range preview.Items {
		if !item.Resolved {
			out.Skipped = append(out.Skipped, item)
			continue
		}
		recorded, err := uc.record.Execute(ctx, transaction.RecordTransactionInput{
			BudgetID:   input.BudgetID,
			AccountID:  *item.AccountID,
			CategoryID: item.CategoryID,
			PayeeName:  item.Parsed.PayeeName,
			Amount:     item.Parsed.Amount,
			Type:       entity.TransactionType(item.Parsed.Type),
			Date:       item.Date,
			Memo:       item.Parsed.Memo,
		})
		if err != nil {
			item.Issues = append(item.Issues, err.Error())
			out.Skipped = append(out.Skipped, item)
			continue
		}
		out.Recorded = append(out.Recorded, recorded.Transaction)
	}
	return out, nil
}
