// Package valueobject contains immutable domain value types.
package valueobject

import (
	"fmt"
	"time"
)

// YearMonth identifies a calendar month. It replaces raw "YYYY-MM" string
// handling in the ledger engine: ordering and month arithmetic are explicit
// instead of relying on lexical comparison of zero-padded keys. The string
// form is still used as the storage key.
type YearMonth struct {
	year  int
	month time.Month
}

// NewYearMonth creates a YearMonth from a year and a month. Out-of-range
// months normalize the way time.Date does; untrusted "YYYY-MM" input goes
// through ParseYearMonth, which validates instead.
func NewYearMonth(year int, month time.Month) YearMonth {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return YearMonth{year: t.Year(), month: t.Month()}
}

// ParseYearMonth parses a zero-padded "YYYY-MM" key.
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("invalid month key %q: %w", s, err)
	}
	return YearMonth{year: t.Year(), month: t.Month()}, nil
}

// YearMonthOf returns the YearMonth containing the given time.
func YearMonthOf(t time.Time) YearMonth {
	return YearMonth{year: t.Year(), month: t.Month()}
}

// Year returns the calendar year.
func (ym YearMonth) Year() int {
	return ym.year
}

// Month returns the calendar month.
func (ym YearMonth) Month() time.Month {
	return ym.month
}

// IsZero reports whether ym is the zero value.
func (ym YearMonth) IsZero() bool {
	return ym.year == 0 && ym.month == 0
}

// String returns the zero-padded "YYYY-MM" storage key.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.year, int(ym.month))
}

// Compare returns -1, 0 or +1 depending on whether ym is before, equal to
// or after other.
func (ym YearMonth) Compare(other YearMonth) int {
	a := ym.year*12 + int(ym.month)
	b := other.year*12 + int(other.month)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether ym is strictly before other.
func (ym YearMonth) Before(other YearMonth) bool {
	return ym.Compare(other) < 0
}

// After reports whether ym is strictly after other.
func (ym YearMonth) After(other YearMonth) bool {
	return ym.Compare(other) > 0
}

// AddMonths returns the YearMonth n months after ym (n may be negative).
func (ym YearMonth) AddMonths(n int) YearMonth {
	t := time.Date(ym.year, ym.month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return YearMonth{year: t.Year(), month: t.Month()}
}

// Prev returns the preceding calendar month.
func (ym YearMonth) Prev() YearMonth {
	return ym.AddMonths(-1)
}

// Next returns the following calendar month.
func (ym YearMonth) Next() YearMonth {
	return ym.AddMonths(1)
}

// Start returns midnight UTC on the first day of the month.
func (ym YearMonth) Start() time.Time {
	return time.Date(ym.year, ym.month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns midnight UTC on the last day of the month.
func (ym YearMonth) End() time.Time {
	return ym.Start().AddDate(0, 1, -1)
}

// Contains reports whether the given time falls within the calendar month,
// first day through last day inclusive.
func (ym YearMonth) Contains(t time.Time) bool {
	return t.Year() == ym.year && t.Month() == ym.month
}
