package core

import (
	"errors"
	"fmt"
)

// Frequency is the closed set of recurrence patterns a scheduled transaction
// may follow. The values match the budgeting service's vocabulary; Never
// marks a one-time transaction.
type Frequency string

const (
	Never           Frequency = "never"
	Daily           Frequency = "daily"
	Weekly          Frequency = "weekly"
	EveryOtherWeek  Frequency = "everyOtherWeek"
	Every4Weeks     Frequency = "every4Weeks"
	Monthly         Frequency = "monthly"
	EveryOtherMonth Frequency = "everyOtherMonth"
	Every3Months    Frequency = "every3Months"
	Every4Months    Frequency = "every4Months"
	TwiceAMonth     Frequency = "twiceAMonth"
	TwiceAYear      Frequency = "twiceAYear"
	Yearly          Frequency = "yearly"
	EveryOtherYear  Frequency = "everyOtherYear"
	MonthlyLastDay  Frequency = "monthlyLastDay"
)

// Configuration errors. These are fatal to an invocation and are surfaced to
// the caller rather than defaulted or skipped.
var (
	ErrUnknownFrequency = errors.New("unknown recurrence frequency")
	ErrInvalidWindow    = errors.New("projection window end precedes start")
	ErrInvalidAnchor    = errors.New("invalid rule anchor date")
	ErrInvalidAmount    = errors.New("invalid amount")
)

func (f Frequency) Validate() error {
	switch f {
	case Never, Daily, Weekly, EveryOtherWeek, Every4Weeks,
		Monthly, EveryOtherMonth, Every3Months, Every4Months,
		TwiceAMonth, TwiceAYear, Yearly, EveryOtherYear, MonthlyLastDay:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFrequency, string(f))
	}
}

// RecurrenceRule describes when a scheduled transaction lands. Next is the
// anchor: the next (or first) occurrence date. End is optional; when set, no
// occurrence after it is produced.
type RecurrenceRule struct {
	Next  Date
	Every Frequency
	End   Date
}

func (r RecurrenceRule) Validate() error {
	if r.Next.IsZero() {
		return ErrInvalidAnchor
	}
	return r.Every.Validate()
}

// ScheduledTransaction is a recurring inflow or outflow tied to the monitored
// account. Built fresh from collaborator data at the start of a run and
// immutable during it.
type ScheduledTransaction struct {
	ID        string
	PayeeName string
	Amount    Money
	Rule      RecurrenceRule

	// TransferAccountID is set when the transaction moves money to another
	// account; TransferIsCreditCard marks transfers that pay down a credit
	// card and therefore overlap with a CreditCardObligation.
	TransferAccountID    string
	TransferIsCreditCard bool
}

// CreditCardObligation is money earmarked in the budget to pay down a credit
// card balance: a future outflow of non-negative magnitude.
type CreditCardObligation struct {
	AccountID string
	Name      string
	Balance   Money
}

// Occurrence is a single concrete dated event: one landing of an expanded
// recurrence rule, or an unscheduled obligation applied on the window start.
type Occurrence struct {
	Date        Date
	Amount      Money
	Description string

	TransferAccountID    string
	TransferIsCreditCard bool
}

// Window is the inclusive date range the projection covers. Start is "today".
type Window struct {
	Start Date
	End   Date
}

// NewWindow builds a validated projection window.
func NewWindow(start, end Date) (Window, error) {
	w := Window{Start: start, End: end}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

func (w Window) Validate() error {
	if err := w.Start.Validate(); err != nil {
		return fmt.Errorf("window start: %w", err)
	}
	if err := w.End.Validate(); err != nil {
		return fmt.Errorf("window end: %w", err)
	}
	if w.End.Before(w.Start) {
		return fmt.Errorf("%w: %s > %s", ErrInvalidWindow, w.Start, w.End)
	}
	return nil
}

// Contains reports whether d falls inside the window, bounds included.
func (w Window) Contains(d Date) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// Days returns the window length in days, both bounds counted.
func (w Window) Days() int {
	return w.Start.DaysUntil(w.End) + 1
}

// DailyBalance is the projected end-of-day balance for one date.
type DailyBalance struct {
	Date    Date
	Balance Money
}

// ProjectionResult is the outcome of one projection run: the minimum
// projected balance, the first date it occurs, and the full ordered detail
// used by the report layer.
type ProjectionResult struct {
	MinimumBalance Money
	MinimumDate    Date
	DailyBalances  []DailyBalance
	Occurrences    []Occurrence
}
