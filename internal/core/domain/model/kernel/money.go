package kernel

import (
	"fmt"

	"littlelemon/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object that represents a monetary amount with exact
// decimal arithmetic. It wraps github.com/shopspring/decimal to avoid the
// rounding drift of binary floating point when prices and line totals are
// multiplied and summed.
//
// The zero value of Money is a valid amount of zero. Money is immutable;
// arithmetic methods return new values.
//
// Example usage:
//
//	price, err := kernel.NewMoneyFromString("10.00")
//	if err != nil {
//	    // handle error
//	}
//	lineTotal := price.Mul(2) // 20.00
type Money struct {
	amount decimal.Decimal
}

// NewMoneyFromString parses a decimal amount such as "10.00" or "5.35".
// Returns a ValueIsInvalidError if the string is not a valid decimal number.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return Money{amount: d}, nil
}

// NewMoneyFromDecimal wraps an existing decimal value.
// Used when reconstructing amounts from persistence.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{amount: d}
}

// MustMoney parses a decimal amount and panics on failure.
// Intended for constants and test fixtures only.
func MustMoney(s string) Money {
	m, err := NewMoneyFromString(s)
	if err != nil {
		panic(fmt.Sprintf("invalid money literal %q: %v", s, err))
	}
	return m
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Mul returns the amount multiplied by an integer quantity.
// This is the only multiplication the domain needs: unit price times quantity.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual compares two amounts for numeric equality.
// "10.0" and "10.00" are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal value for persistence and serialization.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with two decimal places, e.g. "25.00".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
