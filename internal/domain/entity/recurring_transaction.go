package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Frequency represents how often a recurring transaction repeats.
type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyYearly   Frequency = "yearly"
)

// IsValidFrequency reports whether f is one of the known frequencies.
func IsValidFrequency(f Frequency) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// Advance returns the occurrence following t. Monthly and yearly intervals
// preserve the day-of-month where the target month allows it (time.AddDate
// normalizes Jan 31 + 1 month to Mar 2/3, matching calendar arithmetic).
func (f Frequency) Advance(t time.Time) time.Time {
	switch f {
	case FrequencyDaily:
		return t.AddDate(0, 0, 1)
	case FrequencyWeekly:
		return t.AddDate(0, 0, 7)
	case FrequencyBiweekly:
		return t.AddDate(0, 0, 14)
	case FrequencyMonthly:
		return t.AddDate(0, 1, 0)
	case FrequencyYearly:
		return t.AddDate(1, 0, 0)
	}
	return t
}

// RecurringTransaction is a template that the materializer turns into
// concrete transactions. Amount is stored as a positive magnitude; the sign
// is applied at materialization time from Type.
type RecurringTransaction struct {
	ID         uuid.UUID
	BudgetID   uuid.UUID
	AccountID  uuid.UUID
	CategoryID *uuid.UUID
	PayeeID    *uuid.UUID
	Amount     decimal.Decimal
	Type       TransactionType
	Frequency  Frequency
	NextDate   time.Time
	EndDate    *time.Time
	Memo       string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewRecurringTransaction creates a new RecurringTransaction entity.
func NewRecurringTransaction(
	budgetID uuid.UUID,
	accountID uuid.UUID,
	categoryID *uuid.UUID,
	payeeID *uuid.UUID,
	amount decimal.Decimal,
	transactionType TransactionType,
	frequency Frequency,
	nextDate time.Time,
	endDate *time.Time,
	memo string,
) *RecurringTransaction {
	now := time.Now().UTC()

	return &RecurringTransaction{
		ID:         uuid.New(),
		BudgetID:   budgetID,
		AccountID:  accountID,
		CategoryID: categoryID,
		PayeeID:    payeeID,
		Amount:     amount,
		Type:       transactionType,
		Frequency:  frequency,
		NextDate:   nextDate,
		EndDate:    endDate,
		Memo:       memo,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// IsDue reports whether the definition should materialize as of the given
// date: active, next occurrence reached, and the occurrence itself within the
// end date. The end date bounds the occurrence, not the sweep: an occurrence
// that fell inside the window still materializes when the sweep runs late.
func (r *RecurringTransaction) IsDue(asOf time.Time) bool {
	if !r.IsActive {
		return false
	}
	if r.NextDate.After(asOf) {
		return false
	}
	if r.EndDate != nil && r.NextDate.After(*r.EndDate) {
		return false
	}
	return true
}

// AdvanceSchedule moves NextDate forward one interval and deactivates the
// definition when the new occurrence would fall past EndDate.
func (r *RecurringTransaction) AdvanceSchedule() {
	r.NextDate = r.Frequency.Advance(r.NextDate)
	if r.EndDate != nil && r.NextDate.After(*r.EndDate) {
		r.IsActive = false
	}
	r.UpdatedAt = time.Now().UTC()
}
