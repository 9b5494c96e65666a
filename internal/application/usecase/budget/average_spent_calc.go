package budget

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/domain/entity"
	"github.com/gkeele21/family-budget/internal/domain/valueobject"
)

// AverageRange returns the historical window used for average-spend
// projections: January 1st of the current month's year through the end of the
// previous month. Viewing January would make that range empty, so January
// falls back to the full prior calendar year.
func AverageRange(current valueobject.YearMonth) (time.Time, time.Time) {
	if current.Month() == time.January {
		prior := valueobject.NewYearMonth(current.Year()-1, time.January)
		return prior.Start(), valueobject.NewYearMonth(current.Year()-1, time.December).End()
	}
	yearStart := valueobject.NewYearMonth(current.Year(), time.January)
	return yearStart.Start(), current.AddMonths(-1).End()
}

// AverageSpentByCategory computes each category's historical monthly average
// expense over transactions already restricted to the projection range.
//
// The divisor is the count of distinct months with at least one contributing
// transaction, so quiet months do not dilute the average. Only a transaction's
// direct category contributes; results are rounded to 2 decimal places.
func AverageSpentByCategory(transactions []*entity.Transaction, categoryIDs []uuid.UUID) map[uuid.UUID]decimal.Decimal {
	totals := make(map[uuid.UUID]decimal.Decimal)
	months := make(map[uuid.UUID]map[valueobject.YearMonth]struct{})
	for _, t := range transactions {
		if t.Type != entity.TransactionTypeExpense || t.CategoryID == nil {
			continue
		}
		id := *t.CategoryID
		totals[id] = totals[id].Add(t.Amount.Abs())
		if months[id] == nil {
			months[id] = make(map[valueobject.YearMonth]struct{})
		}
		months[id][valueobject.YearMonthOf(t.Date)] = struct{}{}
	}

	out := make(map[uuid.UUID]decimal.Decimal, len(categoryIDs))
	for _, id := range categoryIDs {
		n := len(months[id])
		if n == 0 {
			out[id] = decimal.Zero
			continue
		}
		out[id] = totals[id].Div(decimal.NewFromInt(int64(n))).Round(2)
	}
	return out
}
