package ledgererr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindsMatchSentinels(t *testing.T) {
	err := InvalidArgument("BuyStock", "stock price <= 0 given")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.NotErrorIs(t, err, ErrInvalidState)
	assert.NotErrorIs(t, err, ErrMergePlausibility)
	assert.Equal(t, "BuyStock: stock price <= 0 given", err.Error())

	wrapped := fmt.Errorf("cli: %w", MergePlausibility("Merge", "dates differ"))
	assert.ErrorIs(t, wrapped, ErrMergePlausibility)
	assert.Equal(t, KindMergePlausibilityFailure, KindOf(wrapped))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("record not found")
	err := Wrap(KindInvalidState, "StockSplit", cause, "account %d", 7)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.Equal(t, "StockSplit: account 7: record not found", err.Error())
	assert.Equal(t, Kind(""), KindOf(cause))
}
