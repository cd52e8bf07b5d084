package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccountType(t *testing.T) {
	typ, err := ParseAccountType("stock")
	require.NoError(t, err)
	assert.Equal(t, TypeStock, typ)

	_, err = ParseAccountType("A")
	assert.Error(t, err)
}

func TestParseSplitAction(t *testing.T) {
	act, err := ParseSplitAction("SPLIT_SHARES")
	require.NoError(t, err)
	assert.Equal(t, ActionSplitShares, act)

	act, err = ParseSplitAction("")
	require.NoError(t, err)
	assert.Equal(t, ActionNone, act)

	_, err = ParseSplitAction("split_shares")
	assert.Error(t, err)
}

func TestQualifiedSplitID(t *testing.T) {
	id, err := ParseQualifiedSplitID(" 12:34 ")
	require.NoError(t, err)
	assert.Equal(t, QualifiedSplitID{TransactionID: 12, SplitID: 34}, id)
	assert.True(t, id.IsSet())
	assert.Equal(t, "12:34", id.String())

	assert.False(t, QualifiedSplitID{SplitID: 3}.IsSet())

	for _, in := range []string{"12", "a:1", "1:b"} {
		_, err := ParseQualifiedSplitID(in)
		assert.Error(t, err, in)
	}
}
