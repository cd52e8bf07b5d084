package amount

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"230.80", "230.8"},
		{"-5", "-5"},
		{"1/20", "0.05"},
		{" 3 / 4 ", "0.75"},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, tt.in)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "%s: got %s", tt.in, got)
	}

	for _, bad := range []string{"", "abc", "1/0", "x/2", "2/y"} {
		_, err := Parse(bad)
		assert.Error(t, err, bad)
	}
}

func TestToleranceComparisons(t *testing.T) {
	tol := decimal.RequireFromString("0.005")
	x := decimal.RequireFromString("10.00")

	assert.False(t, LessThan(x, decimal.RequireFromString("10.004"), tol))
	assert.True(t, LessThan(x, decimal.RequireFromString("10.006"), tol))
	assert.False(t, GreaterThan(x, decimal.RequireFromString("9.996"), tol))
	assert.True(t, GreaterThan(x, decimal.RequireFromString("9.994"), tol))

	assert.True(t, EqualWithin(x, decimal.RequireFromString("10.005"), tol))
	assert.False(t, EqualWithin(x, decimal.RequireFromString("10.0051"), tol))
	assert.True(t, IsZeroWithin(decimal.RequireFromString("-0.004"), tol))
	assert.False(t, IsZeroWithin(decimal.RequireFromString("0.01"), tol))
}

func TestSumAndFormat(t *testing.T) {
	s := Sum(decimal.RequireFromString("28.06"), decimal.RequireFromString("5.20"))
	assert.Equal(t, "33.26", Format(s))
	assert.Equal(t, "15.00", Format(decimal.NewFromInt(15)))
	assert.Equal(t, "0.333", Format(decimal.RequireFromString("0.333")))
	assert.True(t, Sum().IsZero())
}

func TestMustParse(t *testing.T) {
	assert.True(t, MustParse("1/20").Equal(decimal.RequireFromString("0.05")))
	assert.Panics(t, func() { MustParse("abc") })
}
