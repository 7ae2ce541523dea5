package decimal

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the ISO code used when formatting amounts for display.
const DefaultCurrency = "USD"

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// RoundWhole rounds to the nearest whole currency unit, halves away from zero.
func (m Money) RoundWhole() Money {
	return Money{m.Decimal.Round(0)}
}

// Compound grows the amount at rate per period for the given number of periods:
// m * (1 + rate)^periods. The result is not rounded.
func (m Money) Compound(rate decimal.Decimal, periods int) Money {
	if periods <= 0 {
		return m
	}
	factor := decimal.NewFromInt(1).Add(rate).Pow(decimal.NewFromInt(int64(periods)))
	return Money{m.Decimal.Mul(factor)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// String returns the string representation with proper formatting
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount in DefaultCurrency, e.g. "$17,623.00".
func (m Money) Format() string {
	return m.FormatIn(DefaultCurrency)
}

// FormatIn renders the amount with the symbol, grouping and fraction digits of the
// given ISO currency code. Amounts beyond go-money's int64 minor units fall back to
// the symbol followed by the plain fixed-point value.
func (m Money) FormatIn(code string) string {
	// to get a never nil currency the Money constructor has to be called
	cur := money.New(0, code).Currency()
	minor := m.Decimal.Shift(int32(cur.Fraction)).Round(0)
	if minor.Abs().GreaterThan(maxMinorUnits) {
		return cur.Grapheme + m.Decimal.StringFixed(int32(cur.Fraction))
	}
	return money.New(minor.IntPart(), code).Display()
}

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
