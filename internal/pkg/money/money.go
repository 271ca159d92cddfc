// Package money implements fixed-point currency arithmetic. All amounts are
// held as int64 minor units (cents) so that price computation never touches
// floating point.
package money

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeAmount = errors.New("amount cannot be negative")
	ErrInvalidPercent = errors.New("percent must be greater than 0 and at most 100")
)

// Money is an amount in minor units (cents for a 2-decimal currency).
type Money struct {
	cents int64
}

func FromCents(cents int64) Money {
	return Money{cents: cents}
}

func NewNonNegative(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func Zero() Money {
	return Money{}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) IsNegative() bool {
	return m.cents < 0
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

// MulQuantity multiplies a unit amount by a count of units. Exact integer
// multiplication, no rounding involved.
func (m Money) MulQuantity(quantity int) Money {
	return Money{cents: m.cents * int64(quantity)}
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

// String renders the amount as a fixed-point decimal with two fraction
// digits, e.g. "300.00". This is the wire format for currency values.
func (m Money) String() string {
	cents := m.cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// Percent is a discount percentage held in basis points: 1% = 100 bp.
// Two decimal places of percent precision, still pure integer math.
type Percent struct {
	bp int64
}

// NewPercent validates the (0, 100] range required for discounts.
func NewPercent(basisPoints int64) (Percent, error) {
	if basisPoints <= 0 || basisPoints > 10000 {
		return Percent{}, ErrInvalidPercent
	}
	return Percent{bp: basisPoints}, nil
}

// PercentFromFloat converts a human-facing percent value (e.g. 20 or 12.5)
// to basis points, rounding to the nearest basis point before validating.
func PercentFromFloat(percent float64) (Percent, error) {
	bp := int64(percent*100 + 0.5)
	return NewPercent(bp)
}

func (p Percent) BasisPoints() int64 {
	return p.bp
}

// Float returns the percent as a display value (20, 12.5, ...).
func (p Percent) Float() float64 {
	return float64(p.bp) / 100
}

// ApplyPercent computes p percent of m, rounded half-up to the minor unit.
// This is the single rounding rule for discount amounts.
func (m Money) ApplyPercent(p Percent) Money {
	// m.cents * bp is the discount in 1/10000 cents; +5000 rounds half-up.
	return Money{cents: (m.cents*p.bp + 5000) / 10000}
}
