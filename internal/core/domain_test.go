package core

import (
	"errors"
	"testing"
)

func TestFrequencyValidate(t *testing.T) {
	valid := []Frequency{
		Never, Daily, Weekly, EveryOtherWeek, Every4Weeks,
		Monthly, EveryOtherMonth, Every3Months, Every4Months,
		TwiceAMonth, TwiceAYear, Yearly, EveryOtherYear, MonthlyLastDay,
	}
	for _, f := range valid {
		if err := f.Validate(); err != nil {
			t.Errorf("Validate(%q) = %v, want nil", f, err)
		}
	}

	for _, f := range []Frequency{"", "fortnightly", "MONTHLY", "every5Days"} {
		err := Frequency(f).Validate()
		if !errors.Is(err, ErrUnknownFrequency) {
			t.Errorf("Validate(%q) = %v, want ErrUnknownFrequency", f, err)
		}
	}
}

func TestRecurrenceRuleValidate(t *testing.T) {
	rule := RecurrenceRule{Next: NewDate(2026, 2, 10), Every: Monthly}
	if err := rule.Validate(); err != nil {
		t.Fatalf("valid rule: %v", err)
	}

	if err := (RecurrenceRule{Every: Monthly}).Validate(); !errors.Is(err, ErrInvalidAnchor) {
		t.Errorf("zero anchor: got %v, want ErrInvalidAnchor", err)
	}
	badFreq := RecurrenceRule{Next: NewDate(2026, 2, 10), Every: "sometimes"}
	if err := badFreq.Validate(); !errors.Is(err, ErrUnknownFrequency) {
		t.Errorf("bad frequency: got %v, want ErrUnknownFrequency", err)
	}
}

func TestWindow(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		w, err := NewWindow(NewDate(2026, 2, 7), NewDate(2026, 2, 28))
		if err != nil {
			t.Fatalf("NewWindow: %v", err)
		}
		if got := w.Days(); got != 22 {
			t.Errorf("Days = %d, want 22", got)
		}
		if !w.Contains(NewDate(2026, 2, 7)) || !w.Contains(NewDate(2026, 2, 28)) {
			t.Error("window bounds must be inclusive")
		}
		if w.Contains(NewDate(2026, 2, 6)) || w.Contains(NewDate(2026, 3, 1)) {
			t.Error("window must exclude dates outside its bounds")
		}
	})

	t.Run("single day", func(t *testing.T) {
		w, err := NewWindow(NewDate(2026, 2, 7), NewDate(2026, 2, 7))
		if err != nil {
			t.Fatalf("NewWindow: %v", err)
		}
		if got := w.Days(); got != 1 {
			t.Errorf("Days = %d, want 1", got)
		}
	})

	t.Run("end precedes start", func(t *testing.T) {
		_, err := NewWindow(NewDate(2026, 2, 28), NewDate(2026, 2, 7))
		if !errors.Is(err, ErrInvalidWindow) {
			t.Fatalf("got %v, want ErrInvalidWindow", err)
		}
	})

	t.Run("zero dates", func(t *testing.T) {
		if _, err := NewWindow(Date{}, NewDate(2026, 2, 7)); err == nil {
			t.Fatal("zero start must be rejected")
		}
	})
}
