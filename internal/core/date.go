package core

import (
	"errors"
	"time"
)

// Date is a calendar date, stored as UTC midnight. All date arithmetic in the
// projection engine goes through the helpers below so month-length and
// leap-year handling lives in one place.
type Date struct {
	time.Time
}

// DateLayout is the wire and display format for dates.
const DateLayout = "2006-01-02"

// NewDate creates a Date from year, month, day. Out-of-range values are
// normalized by time.Date.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month (1-12).
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year.
func (d Date) Year() int {
	return d.Time.Year()
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// After reports whether d is strictly after other.
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

// Equal reports whether d and other are the same calendar date.
func (d Date) Equal(other Date) bool {
	return d.Time.Equal(other.Time)
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time.AddDate(0, 0, n))
}

// DaysUntil returns the number of whole days from d to other.
// Negative when other is before d. Exact because both are UTC midnights.
func (d Date) DaysUntil(other Date) int {
	return int(other.Time.Sub(d.Time) / (24 * time.Hour))
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year, month int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonths advances d by the given number of calendar months, clamping the
// day to the target month's length: Jan 31 + 1 month is Feb 28 (or 29).
func AddMonths(d Date, months int) Date {
	month := d.Month() - 1 + months
	year := d.Year() + month/12
	month = month % 12
	if month < 0 {
		month += 12
		year--
	}
	month++ // back to 1-12
	day := d.Day()
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return NewDate(year, month, day)
}

// EndOfMonth returns the last calendar day of d's month.
func EndOfMonth(d Date) Date {
	return NewDate(d.Year(), d.Month(), DaysInMonth(d.Year(), d.Month()))
}

// MonthsBetween returns the number of whole calendar months from a's month to
// b's month, ignoring the day component.
func MonthsBetween(a, b Date) int {
	return (b.Year()-a.Year())*12 + b.Month() - a.Month()
}
