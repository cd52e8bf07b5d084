// Package amount holds the fixed-point helpers shared by the ledger services.
// Arithmetic itself is exact and comes from shopspring/decimal.
package amount

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse reads a decimal ("230.80", "-5") or a fraction ("1/20").
func Parse(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	num, den, isFraction := strings.Cut(s, "/")
	if !isFraction {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid amount '%s'", s)
		}
		return d, nil
	}

	n, err := decimal.NewFromString(strings.TrimSpace(num))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid numerator in '%s'", s)
	}
	d, err := decimal.NewFromString(strings.TrimSpace(den))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid denominator in '%s'", s)
	}
	if d.IsZero() {
		return decimal.Zero, fmt.Errorf("zero denominator in '%s'", s)
	}
	return n.Div(d), nil
}

// MustParse is Parse for constants known to be valid.
func MustParse(s string) decimal.Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func Sum(values ...decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(v)
	}
	return sum
}

// LessThan reports x < y by more than tol.
func LessThan(x, y, tol decimal.Decimal) bool {
	return x.LessThan(y.Sub(tol))
}

// GreaterThan reports x > y by more than tol.
func GreaterThan(x, y, tol decimal.Decimal) bool {
	return x.GreaterThan(y.Add(tol))
}

func EqualWithin(x, y, tol decimal.Decimal) bool {
	return x.Sub(y).Abs().LessThanOrEqual(tol)
}

func IsZeroWithin(x, tol decimal.Decimal) bool {
	return x.Abs().LessThanOrEqual(tol)
}

// Format renders currency values with two places and share counts as-is.
func Format(d decimal.Decimal) string {
	if d.Exponent() >= -2 {
		return d.StringFixed(2)
	}
	return d.String()
}
