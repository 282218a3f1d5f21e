// Package core holds the value types shared by the projection engine and its
// collaborators: money in integer milliunits, calendar dates, recurrence
// rules, and the projection result.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a signed amount in milliunits of the budget's currency
// (1 dollar = 1000 milliunits, the budgeting service's native unit).
// All arithmetic stays in integers; negative means an outflow.
type Money int64

// MilliunitsPerUnit is the number of milliunits in one major currency unit.
const MilliunitsPerUnit = 1000

// FromUnits builds a Money from whole major units (e.g. dollars).
func FromUnits(units int64) Money {
	return Money(units * MilliunitsPerUnit)
}

func (m Money) Add(other Money) Money {
	return m + other
}

func (m Money) Sub(other Money) Money {
	return m - other
}

func (m Money) Neg() Money {
	return -m
}

func (m Money) Abs() Money {
	if m < 0 {
		return -m
	}
	return m
}

func (m Money) IsNegative() bool {
	return m < 0
}

func (m Money) IsZero() bool {
	return m == 0
}

func (m Money) LessThan(other Money) bool {
	return m < other
}

// Decimal returns the amount in major units as an exact decimal.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -3)
}

// String formats the amount as a currency string with comma grouping,
// e.g. 1234560 -> "$1,234.56" and -250000 -> "-$250.00".
func (m Money) String() string {
	fixed := m.Decimal().Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if m < 0 {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	remainder := len(intPart) % 3
	if remainder > 0 {
		b.WriteString(intPart[:remainder])
		if len(intPart) > remainder {
			b.WriteByte(',')
		}
	}
	for i := remainder; i < len(intPart); i += 3 {
		if i > remainder {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// ParseUnits converts a decimal string in major units (e.g. "1250.50", with
// either dot or comma separator) into milliunits. Used for configuration
// values like the alert threshold.
func ParseUnits(s string) (Money, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return 0, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	milli := d.Mul(decimal.New(MilliunitsPerUnit, 0)).Round(0)
	return Money(milli.IntPart()), nil
}
