// Package budget contains the budgeting engine use cases: monthly snapshots,
// allocation edits, money moves, and spend projections.
package budget

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gkeele21/family-budget/internal/domain/entity"
	"github.com/gkeele21/family-budget/internal/domain/valueobject"
)

// The calculators below are pure functions over already-loaded rows. Nothing
// here touches a repository, so every number is re-derivable for any month
// even after allocations have been edited retroactively.

// BudgetedByCategory maps each category to its allocation for the month.
// Categories without a row for the month are simply absent; callers treat
// absence as zero.
func BudgetedByCategory(allocations []*entity.MonthlyBudget, month valueobject.YearMonth) map[uuid.UUID]decimal.Decimal {
	out := make(map[uuid.UUID]decimal.Decimal)
	for _, a := range allocations {
		if a.Month.Compare(month) == 0 {
			out[a.CategoryID] = out[a.CategoryID].Add(a.BudgetedAmount)
		}
	}
	return out
}

// SpentByCategory maps each category to the absolute value of its expense
// activity within the month. A split contributes only its own amount to its
// own category; transfers and income never count.
func SpentByCategory(transactions []*entity.Transaction, month valueobject.YearMonth) map[uuid.UUID]decimal.Decimal {
	out := make(map[uuid.UUID]decimal.Decimal)
	for _, t := range transactions {
		if t.Type != entity.TransactionTypeExpense || !month.Contains(t.Date) {
			continue
		}
		if t.IsSplit() {
			for _, s := range t.Splits {
				out[s.CategoryID] = out[s.CategoryID].Add(s.Amount.Abs())
			}
			continue
		}
		if t.CategoryID != nil {
			out[*t.CategoryID] = out[*t.CategoryID].Add(t.Amount.Abs())
		}
	}
	return out
}

// CarryForwardResult is the ready-to-assign breakdown for one month.
type CarryForwardResult struct {
	CarriedForward  decimal.Decimal
	ThisMonthIncome decimal.Decimal
	TotalBudgeted   decimal.Decimal
	ToBudget        decimal.Decimal
	IsFirstMonth    bool
}

// CarryForward computes how much unassigned money flows into the month and
// what remains to budget after this month's allocations.
//
// Expenses never reduce the result directly: they draw from category
// envelopes, which already subtracted the budgeted amounts counted here.
// Only unallocated income and starting balances flow forward.
func CarryForward(
	accounts []*entity.Account,
	transactions []*entity.Transaction,
	allocations []*entity.MonthlyBudget,
	month valueobject.YearMonth,
) CarryForwardResult {
	var startingBalances decimal.Decimal
	for _, a := range accounts {
		startingBalances = startingBalances.Add(a.StartingBalance)
	}

	monthStart := month.Start()
	var priorIncome, thisMonthIncome decimal.Decimal
	for _, t := range transactions {
		if t.Type != entity.TransactionTypeIncome {
			continue
		}
		switch {
		case t.Date.Before(monthStart):
			priorIncome = priorIncome.Add(t.Amount)
		case month.Contains(t.Date):
			thisMonthIncome = thisMonthIncome.Add(t.Amount)
		}
	}

	var priorBudgeted, totalBudgeted decimal.Decimal
	for _, a := range allocations {
		switch {
		case a.Month.Before(month):
			priorBudgeted = priorBudgeted.Add(a.BudgetedAmount)
		case a.Month.Compare(month) == 0:
			totalBudgeted = totalBudgeted.Add(a.BudgetedAmount)
		}
	}

	carried := startingBalances.Add(priorIncome).Sub(priorBudgeted)
	return CarryForwardResult{
		CarriedForward:  carried,
		ThisMonthIncome: thisMonthIncome,
		TotalBudgeted:   totalBudgeted,
		ToBudget:        carried.Add(thisMonthIncome).Sub(totalBudgeted),
		IsFirstMonth:    priorIncome.IsZero() && priorBudgeted.IsZero(),
	}
}

// EarliestMonth resolves the month the ledger is considered to begin: the
// budget's explicit start month when set, else the creation month of the
// first-created account, else the viewed month.
func EarliestMonth(b *entity.Budget, accounts []*entity.Account, viewed valueobject.YearMonth) valueobject.YearMonth {
	if b != nil && b.StartMonth != nil && !b.StartMonth.IsZero() {
		return *b.StartMonth
	}
	var earliest valueobject.YearMonth
	for _, a := range accounts {
		m := valueobject.YearMonthOf(a.CreatedAt)
		if earliest.IsZero() || m.Before(earliest) {
			earliest = m
		}
	}
	if earliest.IsZero() {
		return viewed
	}
	return earliest
}
