package valueobject

import (
	"testing"
	"time"
)

func TestParseYearMonth(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		want    string
	}{
		{name: "valid month", input: "2024-03", want: "2024-03"},
		{name: "december", input: "2024-12", want: "2024-12"},
		{name: "missing padding", input: "2024-3", wantErr: true},
		{name: "month out of range", input: "2024-13", wantErr: true},
		{name: "not a month", input: "groceries", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ym, err := ParseYearMonth(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ym.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, ym.String())
			}
		})
	}
}

func TestNewYearMonth(t *testing.T) {
	if got := NewYearMonth(2024, time.March).String(); got != "2024-03" {
		t.Errorf("expected 2024-03, got %s", got)
	}
	// Out-of-range months normalize instead of erroring.
	if got := NewYearMonth(2024, time.Month(13)).String(); got != "2025-01" {
		t.Errorf("expected 2025-01, got %s", got)
	}
}

func TestYearMonthOrdering(t *testing.T) {
	jan, _ := ParseYearMonth("2024-01")
	dec23, _ := ParseYearMonth("2023-12")
	jan2 := jan

	if !dec23.Before(jan) {
		t.Error("2023-12 should be before 2024-01")
	}
	if !jan.After(dec23) {
		t.Error("2024-01 should be after 2023-12")
	}
	if jan.Compare(jan2) != 0 {
		t.Error("equal months should compare equal")
	}
}

func TestYearMonthArithmetic(t *testing.T) {
	tests := []struct {
		name  string
		start string
		add   int
		want  string
	}{
		{name: "forward within year", start: "2024-03", add: 2, want: "2024-05"},
		{name: "forward across year", start: "2024-11", add: 3, want: "2025-02"},
		{name: "backward across year", start: "2024-01", add: -1, want: "2023-12"},
		{name: "twelve months", start: "2024-06", add: 12, want: "2025-06"},
		{name: "zero", start: "2024-06", add: 0, want: "2024-06"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ym, err := ParseYearMonth(tt.start)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			got := ym.AddMonths(tt.add)
			if got.String() != tt.want {
				t.Errorf("%s + %d months: expected %s, got %s", tt.start, tt.add, tt.want, got.String())
			}
		})
	}
}

func TestYearMonthBounds(t *testing.T) {
	feb, _ := ParseYearMonth("2024-02") // leap year
	if got := feb.Start(); !got.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected start: %v", got)
	}
	if got := feb.End(); !got.Equal(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected end: %v", got)
	}

	if !feb.Contains(time.Date(2024, 2, 29, 15, 4, 5, 0, time.UTC)) {
		t.Error("last day of month should be contained")
	}
	if feb.Contains(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Error("first day of next month should not be contained")
	}
}

func TestYearMonthStringMatchesLexicalOrder(t *testing.T) {
	// The storage key convention relies on zero-padded keys sorting the same
	// way the value type orders.
	months := []string{"2023-09", "2023-10", "2024-01", "2024-11"}
	for i := 0; i < len(months)-1; i++ {
		a, _ := ParseYearMonth(months[i])
		b, _ := ParseYearMonth(months[i+1])
		if !a.Before(b) {
			t.Errorf("%s should be before %s", a, b)
		}
		if a.String() >= b.String() {
			t.Errorf("string keys should preserve order: %s vs %s", a, b)
		}
	}
}
