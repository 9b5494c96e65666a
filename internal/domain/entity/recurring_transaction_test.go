package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFrequencyAdvance(t *testing.T) {
	tests := []struct {
		name      string
		frequency Frequency
		from      time.Time
		want      time.Time
	}{
		{name: "daily", frequency: FrequencyDaily, from: date(2024, 3, 10), want: date(2024, 3, 11)},
		{name: "weekly", frequency: FrequencyWeekly, from: date(2024, 3, 10), want: date(2024, 3, 17)},
		{name: "biweekly", frequency: FrequencyBiweekly, from: date(2024, 3, 10), want: date(2024, 3, 24)},
		{name: "monthly preserves day", frequency: FrequencyMonthly, from: date(2024, 3, 15), want: date(2024, 4, 15)},
		{name: "monthly across year", frequency: FrequencyMonthly, from: date(2024, 12, 5), want: date(2025, 1, 5)},
		{name: "yearly", frequency: FrequencyYearly, from: date(2024, 6, 1), want: date(2025, 6, 1)},
		{name: "yearly from leap day", frequency: FrequencyYearly, from: date(2024, 2, 29), want: date(2025, 3, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.frequency.Advance(tt.from)
			if !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestRecurringTransactionIsDue(t *testing.T) {
	today := date(2024, 5, 20)
	end := date(2024, 5, 25)

	tests := []struct {
		name      string
		nextDate  time.Time
		endDate   *time.Time
		active    bool
		wantIsDue bool
	}{
		{name: "due today", nextDate: today, active: true, wantIsDue: true},
		{name: "overdue", nextDate: date(2024, 5, 1), active: true, wantIsDue: true},
		{name: "future", nextDate: date(2024, 5, 21), active: true, wantIsDue: false},
		{name: "inactive", nextDate: today, active: false, wantIsDue: false},
		{name: "end date in future", nextDate: today, endDate: &end, active: true, wantIsDue: true},
		{name: "occurrence within a passed end window still due", nextDate: date(2024, 5, 1), endDate: ptrTime(date(2024, 5, 10)), active: true, wantIsDue: true},
		{name: "occurrence past end date", nextDate: date(2024, 5, 12), endDate: ptrTime(date(2024, 5, 10)), active: true, wantIsDue: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecurringTransaction(uuid.New(), uuid.New(), nil, nil, decimal.NewFromInt(10), TransactionTypeExpense, FrequencyMonthly, tt.nextDate, tt.endDate, "")
			r.IsActive = tt.active

			if got := r.IsDue(today); got != tt.wantIsDue {
				t.Errorf("expected IsDue=%v, got %v", tt.wantIsDue, got)
			}
		})
	}
}

func TestAdvanceScheduleDeactivatesPastEndDate(t *testing.T) {
	end := date(2024, 5, 25)
	r := NewRecurringTransaction(uuid.New(), uuid.New(), nil, nil, decimal.NewFromInt(10), TransactionTypeExpense, FrequencyWeekly, date(2024, 5, 20), &end, "")

	r.AdvanceSchedule()

	if !r.NextDate.Equal(date(2024, 5, 27)) {
		t.Errorf("expected next date 2024-05-27, got %v", r.NextDate)
	}
	if r.IsActive {
		t.Error("expected definition to deactivate once next date passes end date")
	}
}

func TestAdvanceScheduleStaysActiveWithinEndDate(t *testing.T) {
	end := date(2024, 12, 31)
	r := NewRecurringTransaction(uuid.New(), uuid.New(), nil, nil, decimal.NewFromInt(10), TransactionTypeIncome, FrequencyMonthly, date(2024, 5, 1), &end, "")

	r.AdvanceSchedule()

	if !r.NextDate.Equal(date(2024, 6, 1)) {
		t.Errorf("expected next date 2024-06-01, got %v", r.NextDate)
	}
	if !r.IsActive {
		t.Error("definition should stay active while next date is within end date")
	}
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
