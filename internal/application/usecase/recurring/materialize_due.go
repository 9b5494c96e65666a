package recurring

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/application/adapter"
	"github.com/gkeele21/family-budget/internal/domain/entity"
)

// MaterializeDueOutput reports how many transactions a batch run produced.
type MaterializeDueOutput struct {
	Materialized int
}

// MaterializeDueUseCase scans due recurring definitions and emits concrete
// transactions, advancing each definition's schedule as it goes.
//
// Each definition's emit-and-advance is its own atomic unit, so a crash mid
// batch leaves processed definitions advanced and unprocessed ones due for
// the next run. Re-running immediately after a successful pass materializes
// nothing, because every next date has moved past due.
type MaterializeDueUseCase struct {
	recurringRepo adapter.RecurringRepository
	accountRepo   adapter.AccountRepository
}

// NewMaterializeDueUseCase creates a new MaterializeDueUseCase instance.
func NewMaterializeDueUseCase(
	recurringRepo adapter.RecurringRepository,
	accountRepo adapter.AccountRepository,
) *MaterializeDueUseCase {
	return &MaterializeDueUseCase{
		recurringRepo: recurringRepo,
		accountRepo:   accountRepo,
	}
}

// Execute processes every definition due as of the given date. A definition
// overdue by several intervals emits one transaction per missed occurrence.
func (uc *MaterializeDueUseCase) Execute(ctx context.Context, asOf time.Time) (*MaterializeDueOutput, error) {
	due, err := uc.recurringRepo.FindDue(ctx, asOf)
	if err != nil {
		return nil, err
	}

	out := &MaterializeDueOutput{}
	for _, r := range due {
		n, err := uc.materialize(ctx, r, asOf)
		if err != nil {
			// Leave this definition due for the next run; the rest of the
			// batch still proceeds.
			slog.Error("failed to materialize recurring transaction",
				"recurring_id", r.ID,
				"error", err,
			)
			continue
		}
		out.Materialized += n
	}
	return out, nil
}

func (uc *MaterializeDueUseCase) materialize(ctx context.Context, r *entity.RecurringTransaction, asOf time.Time) (int, error) {
	account, err := uc.accountRepo.FindByID(ctx, r.AccountID)
	if err != nil {
		return 0, err
	}

	count := 0
	for r.IsDue(asOf) {
		t := entity.NewTransaction(
			r.BudgetID,
			r.AccountID,
			r.CategoryID,
			r.PayeeID,
			signedAmount(r.Amount, r.Type),
			r.Type,
			r.NextDate,
			account != nil && account.Type == entity.AccountTypeCash,
			r.Memo,
		)
		t.RecurringID = &r.ID

		r.AdvanceSchedule()
		if err := uc.recurringRepo.Materialize(ctx, r, t); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func signedAmount(magnitude decimal.Decimal, t entity.TransactionType) decimal.Decimal {
	if t == entity.TransactionTypeExpense {
		return magnitude.Neg()
	}
	return magnitude
}
