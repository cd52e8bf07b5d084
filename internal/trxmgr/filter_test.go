package trxmgr

import (
	"context"
	"testing"

	"github.com/hance08/keasec/internal/config"
	"github.com/hance08/keasec/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nd(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func fixedTypes(types map[int64]model.AccountType) AccountTypeOf {
	return func(id int64) (model.AccountType, error) {
		return types[id], nil
	}
}

func TestSplitFilter(t *testing.T) {
	split := &model.Split{
		AccountID: 7,
		Value:     decimal.RequireFromString("100.00"),
		Shares:    decimal.RequireFromString("4"),
		Action:    model.ActionBuyShares,
		Memo:      "Buy ACME at broker",
	}
	types := fixedTypes(map[int64]model.AccountType{7: model.TypeStock})

	tests := []struct {
		name   string
		filter SplitFilter
		want   bool
	}{
		{"empty filter", NewSplitFilter(), true},
		{"action", NewSplitFilter(WithAction(model.ActionBuyShares)), true},
		{"other action", NewSplitFilter(WithAction(model.ActionSellShares)), false},
		{"unset action", NewSplitFilter(WithAction(model.ActionNone)), false},
		{"account", NewSplitFilter(WithAccountID(7)), true},
		{"other account", NewSplitFilter(WithAccountID(8)), false},
		{"account type", NewSplitFilter(WithAccountType(model.TypeStock)), true},
		{"other account type", NewSplitFilter(WithAccountType(model.TypeCash)), false},
		{"value in range", NewSplitFilter(WithValueRange(nd("50"), nd("150"))), true},
		{"value open upper end", NewSplitFilter(WithValueRange(nd("100"), decimal.NullDecimal{})), true},
		{"value just above range within tolerance", NewSplitFilter(WithValueRange(decimal.NullDecimal{}, nd("99.996"))), true},
		{"value above range", NewSplitFilter(WithValueRange(decimal.NullDecimal{}, nd("99.99"))), false},
		{"value below range", NewSplitFilter(WithValueRange(nd("100.01"), decimal.NullDecimal{})), false},
		{"wider tolerance", NewSplitFilter(WithValueRange(nd("100.01"), decimal.NullDecimal{}), WithTolerance(decimal.RequireFromString("0.05"))), true},
		{"shares in range", NewSplitFilter(WithSharesRange(nd("4"), nd("4"))), true},
		{"shares out of range", NewSplitFilter(WithSharesRange(nd("5"), decimal.NullDecimal{})), false},
		{"memo part", NewSplitFilter(WithSplitMemo(" ACME ")), true},
		{"memo mismatch", NewSplitFilter(WithSplitMemo("dividend")), false},
		{"combined", NewSplitFilter(WithAccountID(7), WithAction(model.ActionBuyShares), WithSplitMemo("broker")), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.filter.Matches(split, types)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransactionFilter(t *testing.T) {
	tx := &model.Transaction{
		DatePosted: day(2026, 3, 15),
		Memo:       "Generated by keasec BuyStock, 2026-03-15 10:00:00",
		Splits: []*model.Split{
			{AccountID: 1, Value: decimal.RequireFromString("-10"), Memo: "pay"},
			{AccountID: 2, Value: decimal.RequireFromString("10"), Action: model.ActionBuyShares},
		},
	}
	types := fixedTypes(map[int64]model.AccountType{1: model.TypeChecking, 2: model.TypeStock})
	stockSplits := NewSplitFilter(WithAccountType(model.TypeStock))

	tests := []struct {
		name   string
		filter TransactionFilter
		want   bool
	}{
		{"empty", NewTransactionFilter(), true},
		{"date inside", NewTransactionFilter(WithDatePostedFrom(day(2026, 3, 15)), WithDatePostedTo(day(2026, 3, 15))), true},
		{"date before range", NewTransactionFilter(WithDatePostedFrom(day(2026, 3, 16))), false},
		{"date after range", NewTransactionFilter(WithDatePostedTo(day(2026, 3, 14))), false},
		{"split count", NewTransactionFilter(WithSplitCount(2, 2)), true},
		{"too few splits", NewTransactionFilter(WithSplitCount(3, 0)), false},
		{"too many splits", NewTransactionFilter(WithSplitCount(0, 1)), false},
		{"memo", NewTransactionFilter(WithMemo("BuyStock")), true},
		{"memo mismatch", NewTransactionFilter(WithMemo("StockSplit")), false},
		{"any split on stock", NewTransactionFilter(WithSplitFilter(stockSplits, SplitLogicOr)), true},
		{"every split on stock", NewTransactionFilter(WithSplitFilter(stockSplits, SplitLogicAnd)), false},
		{"every split with any value", NewTransactionFilter(WithSplitFilter(NewSplitFilter(WithValueRange(nd("-10"), nd("10"))), SplitLogicAnd)), true},
		{"no split sells", NewTransactionFilter(WithSplitFilter(NewSplitFilter(WithAction(model.ActionSellShares)), SplitLogicOr)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.filter.Matches(tx, types)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransactionFilter_OptionsDoNotShare(t *testing.T) {
	base := []TransactionFilterOption{WithMemo("a")}
	f1 := NewTransactionFilter(base...)
	f2 := NewTransactionFilter(append(base, WithSplitCount(5, 0))...)

	tx := &model.Transaction{Memo: "a", Splits: []*model.Split{{}}}
	ok1, err := f1.Matches(tx, nil)
	require.NoError(t, err)
	ok2, err := f2.Matches(tx, nil)
	require.NoError(t, err)

	assert.True(t, ok1)
	assert.False(t, ok2)
}

func TestFinder(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	buy := l.post(t, day(2026, 2, 1), "Generated by keasec BuyStock",
		leg{account: l.checking, value: "-100"},
		leg{account: l.stock, value: "100", action: model.ActionBuyShares},
	)
	l.post(t, day(2026, 2, 10), "Generated by keasec DividendOrDistribution",
		leg{account: l.stock, value: "0", action: model.ActionDividend},
		leg{account: l.checking, value: "8"},
		leg{account: l.income, value: "-8"},
	)
	l.post(t, day(2026, 3, 1), "manual",
		leg{account: l.cash, value: "-3"},
		leg{account: l.fees, value: "3"},
	)

	finder := NewFinder(l.repo, config.DefaultPolicy())

	found, err := finder.FindTransactions(ctx, NewTransactionFilter(WithDatePostedTo(day(2026, 2, 5))))
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, buy.ID, found[0].ID)
	assert.Len(t, found[0].Splits, 2)

	found, err = finder.FindTransactions(ctx, NewTransactionFilter(
		WithSplitFilter(NewSplitFilter(WithAccountType(model.TypeStock)), SplitLogicOr),
	))
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = finder.FindTransactions(ctx, NewTransactionFilter(
		WithDatePostedFrom(day(2026, 2, 2)),
		WithMemo("keasec"),
	))
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Contains(t, found[0].Memo, "DividendOrDistribution")

	splits, err := finder.FindSplits(ctx, NewSplitFilter(WithAccountType(model.TypeChecking)))
	require.NoError(t, err)
	assert.Len(t, splits, 2)

	splits, err = finder.FindSplits(ctx, NewSplitFilter(WithAction(model.ActionDividend)))
	require.NoError(t, err)
	require.Len(t, splits, 1)
	assert.Equal(t, l.stock, splits[0].AccountID)
}
