// Package projection implements the balance projection engine: recurrence
// expansion, credit-card obligation reconciliation, and the day walk that
// finds the minimum projected balance. It is pure computation over
// caller-supplied data; all I/O lives in the collaborating packages.
package projection

import (
	"fmt"

	"balmon/internal/core"
)

// Expand produces every occurrence date of rule inside window, in ascending
// order. Both window bounds are inclusive. Dates before the rule's anchor are
// never emitted; a rule end date before the window start yields nil.
func Expand(rule core.RecurrenceRule, window core.Window) ([]core.Date, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}
	if err := rule.Validate(); err != nil {
		return nil, err
	}

	end := window.End
	if !rule.End.IsZero() && rule.End.Before(end) {
		end = rule.End
	}
	if end.Before(window.Start) {
		return nil, nil
	}

	anchor := rule.Next
	switch rule.Every {
	case core.Never:
		if !anchor.Before(window.Start) && !anchor.After(end) {
			return []core.Date{anchor}, nil
		}
		return nil, nil
	case core.Daily:
		return dayInterval(anchor, 1, window.Start, end), nil
	case core.Weekly:
		return dayInterval(anchor, 7, window.Start, end), nil
	case core.EveryOtherWeek:
		return dayInterval(anchor, 14, window.Start, end), nil
	case core.Every4Weeks:
		return dayInterval(anchor, 28, window.Start, end), nil
	case core.Monthly:
		return monthInterval(anchor, 1, window.Start, end), nil
	case core.EveryOtherMonth:
		return monthInterval(anchor, 2, window.Start, end), nil
	case core.Every3Months:
		return monthInterval(anchor, 3, window.Start, end), nil
	case core.Every4Months:
		return monthInterval(anchor, 4, window.Start, end), nil
	case core.TwiceAYear:
		return monthInterval(anchor, 6, window.Start, end), nil
	case core.Yearly:
		return monthInterval(anchor, 12, window.Start, end), nil
	case core.EveryOtherYear:
		return monthInterval(anchor, 24, window.Start, end), nil
	case core.TwiceAMonth:
		return twiceAMonth(anchor, window.Start, end), nil
	case core.MonthlyLastDay:
		return monthEnds(anchor, window.Start, end), nil
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownFrequency, string(rule.Every))
	}
}

// dayInterval emits anchor, anchor+every days, anchor+2*every days, ... inside
// [start, end]. The anchor may be far in the past, so the first landing at or
// after start is reached by whole-interval arithmetic, not by stepping.
func dayInterval(anchor core.Date, every int, start, end core.Date) []core.Date {
	d := anchor
	if d.Before(start) {
		gap := d.DaysUntil(start)
		intervals := (gap + every - 1) / every
		d = d.AddDays(intervals * every)
	}
	var dates []core.Date
	for !d.After(end) {
		dates = append(dates, d)
		d = d.AddDays(every)
	}
	return dates
}

// monthInterval emits the anchor advanced by 0, every, 2*every, ... calendar
// months inside [start, end]. Every landing is computed from the anchor
// itself, so a day-31 anchor clamps to short months without drifting: Jan 31
// lands on Feb 28 and then Mar 31, not Mar 28.
func monthInterval(anchor core.Date, every int, start, end core.Date) []core.Date {
	n := 0
	if anchor.Before(start) {
		// Jump close to the window; the loop below absorbs the off-by-one
		// the day component can introduce.
		if months := core.MonthsBetween(anchor, start); months > 0 {
			n = (months - 1) / every
		}
	}
	var dates []core.Date
	for {
		d := core.AddMonths(anchor, n*every)
		if d.After(end) {
			return dates
		}
		if !d.Before(start) {
			dates = append(dates, d)
		}
		n++
	}
}

// monthEnds emits the last calendar day of each month from the anchor's month
// onward, regardless of the anchor's day, inside [start, end].
func monthEnds(anchor core.Date, start, end core.Date) []core.Date {
	n := 0
	if months := core.MonthsBetween(anchor, start); months > 0 {
		n = months - 1
	}
	var dates []core.Date
	for {
		d := core.EndOfMonth(core.AddMonths(anchor, n))
		if d.After(end) {
			return dates
		}
		if !d.Before(start) && !d.Before(anchor) {
			dates = append(dates, d)
		}
		n++
	}
}

// twiceAMonth emits two landings per month: the anchor's day of month and its
// companion fifteen days away (day+15 when the anchor day is 15 or earlier,
// day-15 otherwise), each clamped to the month's length. Landings before the
// anchor are not emitted.
func twiceAMonth(anchor core.Date, start, end core.Date) []core.Date {
	day1 := anchor.Day()
	day2 := day1 + 15
	if day1 > 15 {
		day2 = day1 - 15
	}
	if day2 < day1 {
		day1, day2 = day2, day1
	}

	n := 0
	if months := core.MonthsBetween(anchor, start); months > 0 {
		n = months - 1
	}
	firstOfAnchorMonth := core.NewDate(anchor.Year(), anchor.Month(), 1)
	var dates []core.Date
	for {
		month := core.AddMonths(firstOfAnchorMonth, n)
		if month.After(end) {
			return dates
		}
		last := core.DaysInMonth(month.Year(), month.Month())
		for _, target := range []int{day1, day2} {
			day := target
			if day > last {
				day = last
			}
			d := core.NewDate(month.Year(), month.Month(), day)
			if d.Before(anchor) || d.Before(start) || d.After(end) {
				continue
			}
			dates = append(dates, d)
		}
		n++
	}
}
