package transaction

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTransactionID(t *testing.T) {
	id, err := parseTransactionID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, bad := range []string{"", "0", "-3", "4x"} {
		_, err := parseTransactionID(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseDay(t *testing.T) {
	d, err := parseDay(" 2026-10-16 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), d)

	_, err = parseDay("16/10/2026")
	assert.Error(t, err)
}

func TestParseRange(t *testing.T) {
	lo, hi, err := parseRange("min", "-10", "max", "")
	require.NoError(t, err)
	assert.True(t, lo.Valid)
	assert.True(t, lo.Decimal.Equal(decimal.NewFromInt(-10)))
	assert.False(t, hi.Valid)

	_, _, err = parseRange("min", "", "max", "lots")
	assert.ErrorContains(t, err, "--max")
}
