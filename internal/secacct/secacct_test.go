package secacct

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/hance08/keasec/internal/amount"
	"github.com/hance08/keasec/internal/config"
	"github.com/hance08/keasec/internal/ledgererr"
	"github.com/hance08/keasec/internal/model"
	"github.com/hance08/keasec/internal/store"
	"github.com/hance08/keasec/migrations"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)

type ledger struct {
	repo *store.Store
	tm   *TransactionManager

	broker   int64
	stock    int64
	idle     int64
	checking int64
	fees     int64
	tax      int64
	income   int64
}

func newLedger(t *testing.T) *ledger {
	t.Helper()

	repo, err := store.NewStore(filepath.Join(t.TempDir(), "keasec.db"), migrations.FS)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	l := &ledger{repo: repo}
	l.broker = createAccount(t, repo, "Assets:Broker", model.TypeInvestment, nil)
	l.stock = createAccount(t, repo, "Assets:Broker:ACME", model.TypeStock, &l.broker)
	l.idle = createAccount(t, repo, "Assets:Broker:IDLE", model.TypeStock, &l.broker)
	createAccount(t, repo, "Assets:Broker:Cash", model.TypeCash, &l.broker)
	l.checking = createAccount(t, repo, "Assets:Checking", model.TypeChecking, nil)
	l.fees = createAccount(t, repo, "Expenses:Fees", model.TypeExpense, nil)
	l.tax = createAccount(t, repo, "Expenses:Tax", model.TypeExpense, nil)
	l.income = createAccount(t, repo, "Income:Dividends", model.TypeIncome, nil)

	l.tm = NewTransactionManager(repo, config.DefaultPolicy())
	l.tm.now = func() time.Time { return fixedNow }
	return l
}

func createAccount(t *testing.T, repo store.Repository, name string, accType model.AccountType, parent *int64) int64 {
	t.Helper()
	id, err := repo.CreateAccount(&model.Account{Name: name, Type: accType, ParentID: parent, Currency: "EUR"})
	require.NoError(t, err)
	return id
}

func dec(s string) decimal.Decimal {
	return amount.MustParse(s)
}

func nullDec(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(dec(s))
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s %v", want, got, msgAndArgs)
}

func assertBalanced(t *testing.T, tx *model.Transaction) {
	t.Helper()
	assert.True(t, tx.SumValues().Abs().LessThanOrEqual(dec("0.005")), "transaction %d does not balance: %s", tx.ID, tx.SumValues())
}

func (l *ledger) transactionCount(t *testing.T) int {
	t.Helper()
	txs, err := l.repo.GetAllTransactions(1000)
	require.NoError(t, err)
	return len(txs)
}

func (l *ledger) buy(t *testing.T, shares, price string) *model.Transaction {
	t.Helper()
	tx, err := l.tm.BuyStockSimple(context.Background(), l.stock, l.fees, l.checking,
		dec(shares), dec(price), dec("1.00"), time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), "buy")
	require.NoError(t, err)
	return tx
}

func TestBuyStock(t *testing.T) {
	l := newLedger(t)
	postDate := time.Date(2026, 10, 15, 14, 0, 0, 0, time.UTC)

	tx, err := l.tm.BuyStock(context.Background(), BuyStockRequest{
		StockAccountID:        l.stock,
		ExpenseAccountAmounts: []model.AccountAmountPair{{AccountID: l.fees, Amount: dec("9.45")}},
		OffsetAccountID:       l.checking,
		NofStocks:             nullDec("15"),
		StockPrice:            nullDec("230.80"),
		PostDate:              postDate,
		Memo:                  "Buy ACME",
	})
	require.NoError(t, err)
	require.Len(t, tx.Splits, 3)

	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), tx.DatePosted)
	assert.Equal(t, fixedNow, tx.DateEntered)
	assert.Equal(t, "Generated by keasec BuyStock, 2026-10-18 09:30:00", tx.Memo)
	assertBalanced(t, tx)

	offset := tx.Splits[0]
	assert.Equal(t, l.checking, offset.AccountID)
	assertDecimal(t, "-3471.45", offset.Value)
	assertDecimal(t, "-3471.45", offset.Shares)
	assert.Equal(t, "Buy ACME", offset.Memo)
	assert.Equal(t, model.ActionNone, offset.Action)

	stock := tx.Splits[1]
	assert.Equal(t, l.stock, stock.AccountID)
	assertDecimal(t, "3462.00", stock.Value)
	assertDecimal(t, "15", stock.Shares)
	require.True(t, stock.Price.Valid)
	assertDecimal(t, "230.80", stock.Price.Decimal)
	assert.Equal(t, model.ActionBuyShares, stock.Action)
	assert.Empty(t, stock.Memo)

	fee := tx.Splits[2]
	assert.Equal(t, l.fees, fee.AccountID)
	assertDecimal(t, "9.45", fee.Value)
	assertDecimal(t, "9.45", fee.Shares)
	assert.Equal(t, model.ActionNone, fee.Action)

	shares, err := l.repo.GetAccountBalance(l.stock)
	require.NoError(t, err)
	assertDecimal(t, "15", shares)
}

func TestBuyStock_MultipleExpenses(t *testing.T) {
	l := newLedger(t)

	tx, err := l.tm.BuyStock(context.Background(), BuyStockRequest{
		StockAccountID: l.stock,
		ExpenseAccountAmounts: []model.AccountAmountPair{
			{AccountID: l.fees, Amount: dec("4.95")},
			{AccountID: l.tax, Amount: dec("0.12")},
		},
		OffsetAccountID: l.checking,
		NofStocks:       nullDec("3"),
		StockPrice:      nullDec("10.10"),
		PostDate:        fixedNow,
	})
	require.NoError(t, err)
	require.Len(t, tx.Splits, 4)
	assertBalanced(t, tx)
	assertDecimal(t, "-35.37", tx.Splits[0].Value)
}

func TestBuyStock_Rejected(t *testing.T) {
	l := newLedger(t)

	valid := func() BuyStockRequest {
		return BuyStockRequest{
			StockAccountID:        l.stock,
			ExpenseAccountAmounts: []model.AccountAmountPair{{AccountID: l.fees, Amount: dec("1")}},
			OffsetAccountID:       l.checking,
			NofStocks:             nullDec("1"),
			StockPrice:            nullDec("1"),
			PostDate:              fixedNow,
		}
	}

	tests := []struct {
		name   string
		modify func(r *BuyStockRequest)
		want   error
	}{
		{"stock unset", func(r *BuyStockRequest) { r.StockAccountID = 0 }, ledgererr.ErrInvalidArgument},
		{"offset unset", func(r *BuyStockRequest) { r.OffsetAccountID = 0 }, ledgererr.ErrInvalidArgument},
		{"nil expenses", func(r *BuyStockRequest) { r.ExpenseAccountAmounts = nil }, ledgererr.ErrInvalidArgument},
		{"empty expenses", func(r *BuyStockRequest) { r.ExpenseAccountAmounts = []model.AccountAmountPair{} }, ledgererr.ErrInvalidArgument},
		{"expense account unset", func(r *BuyStockRequest) { r.ExpenseAccountAmounts[0].AccountID = 0 }, ledgererr.ErrInvalidArgument},
		{"zero expense", func(r *BuyStockRequest) { r.ExpenseAccountAmounts[0].Amount = decimal.Zero }, ledgererr.ErrInvalidArgument},
		{"negative expense", func(r *BuyStockRequest) { r.ExpenseAccountAmounts[0].Amount = dec("-1") }, ledgererr.ErrInvalidArgument},
		{"shares missing", func(r *BuyStockRequest) { r.NofStocks = decimal.NullDecimal{} }, ledgererr.ErrInvalidArgument},
		{"zero price", func(r *BuyStockRequest) { r.StockPrice = nullDec("0") }, ledgererr.ErrInvalidArgument},
		{"no post date", func(r *BuyStockRequest) { r.PostDate = time.Time{} }, ledgererr.ErrInvalidArgument},
		{"stock is not STOCK", func(r *BuyStockRequest) { r.StockAccountID = l.checking }, ledgererr.ErrInvalidArgument},
		{"offset is not CHECKING", func(r *BuyStockRequest) { r.OffsetAccountID = l.fees }, ledgererr.ErrInvalidArgument},
		{"expense is not EXPENSE", func(r *BuyStockRequest) { r.ExpenseAccountAmounts[0].AccountID = l.income }, ledgererr.ErrInvalidArgument},
		{"unknown stock account", func(r *BuyStockRequest) { r.StockAccountID = 9999 }, ledgererr.ErrInvalidState},
		{"unknown expense account", func(r *BuyStockRequest) { r.ExpenseAccountAmounts[0].AccountID = 9999 }, ledgererr.ErrInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.modify(&req)

			tx, err := l.tm.BuyStock(context.Background(), req)
			require.Error(t, err)
			assert.Nil(t, tx)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.Zero(t, l.transactionCount(t))
}

func TestDividendOrDistribution(t *testing.T) {
	l := newLedger(t)

	tx, err := l.tm.DividendOrDistribution(context.Background(), DividendRequest{
		StockAccountID:  l.stock,
		IncomeAccountID: l.income,
		ExpenseAccountAmounts: []model.AccountAmountPair{
			{AccountID: l.tax, Amount: dec("28.06")},
			{AccountID: l.fees, Amount: dec("5.20")},
		},
		OffsetAccountID: l.checking,
		Action:          model.ActionDividend,
		GrossAmount:     nullDec("112.23"),
		PostDate:        time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC),
		Memo:            "ACME dividend Q3",
	})
	require.NoError(t, err)
	require.Len(t, tx.Splits, 5)
	assertBalanced(t, tx)
	assert.Equal(t, "Generated by keasec DividendOrDistribution, 2026-10-18 09:30:00", tx.Memo)

	anchor := tx.Splits[0]
	assert.Equal(t, l.stock, anchor.AccountID)
	assert.True(t, anchor.Value.IsZero())
	assert.True(t, anchor.Shares.IsZero())
	assert.Equal(t, model.ActionDividend, anchor.Action)

	offset := tx.Splits[1]
	assert.Equal(t, l.checking, offset.AccountID)
	assertDecimal(t, "78.97", offset.Value)
	assertDecimal(t, "78.97", offset.Shares)
	assert.Equal(t, "ACME dividend Q3", offset.Memo)

	income := tx.Splits[2]
	assert.Equal(t, l.income, income.AccountID)
	assertDecimal(t, "-112.23", income.Value)

	assertDecimal(t, "28.06", tx.Splits[3].Value)
	assertDecimal(t, "5.20", tx.Splits[4].Shares)
}

func TestDividendOrDistribution_Variants(t *testing.T) {
	l := newLedger(t)
	ctx := context.Background()

	base := func() DividendRequest {
		return DividendRequest{
			StockAccountID:        l.stock,
			IncomeAccountID:       l.income,
			ExpenseAccountAmounts: []model.AccountAmountPair{},
			OffsetAccountID:       l.checking,
			Action:                model.ActionDistribution,
			GrossAmount:           nullDec("50"),
			PostDate:              fixedNow,
		}
	}

	t.Run("tax free distribution", func(t *testing.T) {
		tx, err := l.tm.DividendOrDistribution(ctx, base())
		require.NoError(t, err)
		require.Len(t, tx.Splits, 3)
		assertBalanced(t, tx)
		assert.Equal(t, model.ActionDistribution, tx.Splits[0].Action)
		assertDecimal(t, "50", tx.Splits[1].Value)
	})

	t.Run("reversal with negative amounts", func(t *testing.T) {
		req := base()
		req.Action = model.ActionDividend
		req.GrossAmount = nullDec("-20")
		req.ExpenseAccountAmounts = []model.AccountAmountPair{{AccountID: l.tax, Amount: dec("-5")}}

		tx, err := l.tm.DividendOrDistribution(ctx, req)
		require.NoError(t, err)
		assertBalanced(t, tx)
		assertDecimal(t, "-15", tx.Splits[1].Value)
		assertDecimal(t, "20", tx.Splits[2].Value)
	})

	t.Run("simple variant", func(t *testing.T) {
		tx, err := l.tm.DividendSimple(ctx, l.stock, l.income, l.tax, l.checking,
			model.ActionDividend, dec("10"), dec("2.50"), fixedNow, "simple")
		require.NoError(t, err)
		require.Len(t, tx.Splits, 4)
		assertDecimal(t, "7.50", tx.Splits[1].Value)
	})

	rejected := []struct {
		name   string
		modify func(r *DividendRequest)
		want   error
	}{
		{"nil expenses", func(r *DividendRequest) { r.ExpenseAccountAmounts = nil }, ledgererr.ErrInvalidArgument},
		{"expense account unset", func(r *DividendRequest) {
			r.ExpenseAccountAmounts = []model.AccountAmountPair{{Amount: dec("1")}}
		}, ledgererr.ErrInvalidArgument},
		{"gross missing", func(r *DividendRequest) { r.GrossAmount = decimal.NullDecimal{} }, ledgererr.ErrInvalidArgument},
		{"wrong action", func(r *DividendRequest) { r.Action = model.ActionSellShares }, ledgererr.ErrInvalidArgument},
		{"no action", func(r *DividendRequest) { r.Action = model.ActionNone }, ledgererr.ErrInvalidArgument},
		{"income unset", func(r *DividendRequest) { r.IncomeAccountID = 0 }, ledgererr.ErrInvalidArgument},
		{"income is not INCOME", func(r *DividendRequest) { r.IncomeAccountID = l.fees }, ledgererr.ErrInvalidArgument},
		{"offset is not CHECKING", func(r *DividendRequest) { r.OffsetAccountID = l.stock }, ledgererr.ErrInvalidArgument},
		{"unknown income account", func(r *DividendRequest) { r.IncomeAccountID = 4242 }, ledgererr.ErrInvalidState},
	}

	before := l.transactionCount(t)
	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.modify(&req)

			_, err := l.tm.DividendOrDistribution(ctx, req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Equal(t, before, l.transactionCount(t))
}

func TestStockSplit_ByFactor(t *testing.T) {
	l := newLedger(t)
	l.buy(t, "15", "10")

	tx, err := l.tm.StockSplit(context.Background(), StockSplitRequest{
		StockAccountID: l.stock,
		Variant:        SplitByFactor,
		Magnitude:      nullDec("2"),
		PostDate:       fixedNow,
		Memo:           "2:1 split",
	})
	require.NoError(t, err)
	require.Len(t, tx.Splits, 1)
	assertBalanced(t, tx)

	split := tx.Splits[0]
	assert.Equal(t, l.stock, split.AccountID)
	assert.True(t, split.Value.IsZero())
	assertDecimal(t, "2", split.Shares)
	assert.Equal(t, model.ActionSplitShares, split.Action)
	assert.Equal(t, "2:1 split", split.Memo)
	assert.False(t, split.Price.Valid)

	shares, err := l.repo.GetAccountBalance(l.stock)
	require.NoError(t, err)
	assertDecimal(t, "30", shares)
}

func TestStockSplit_FactorAndSharesAgree(t *testing.T) {
	byFactor := newLedger(t)
	byFactor.buy(t, "40", "10")
	byShares := newLedger(t)
	byShares.buy(t, "40", "10")

	txA, err := byFactor.tm.StockSplit(context.Background(), StockSplitRequest{
		StockAccountID: byFactor.stock, Variant: SplitByFactor, Magnitude: nullDec("1.5"), PostDate: fixedNow,
	})
	require.NoError(t, err)

	txB, err := byShares.tm.StockSplit(context.Background(), StockSplitRequest{
		StockAccountID: byShares.stock, Variant: SplitByAdditionalShares, Magnitude: nullDec("20"), PostDate: fixedNow,
	})
	require.NoError(t, err)

	assertDecimal(t, txA.Splits[0].Shares.String(), txB.Splits[0].Shares)

	sharesA, err := byFactor.repo.GetAccountBalance(byFactor.stock)
	require.NoError(t, err)
	sharesB, err := byShares.repo.GetAccountBalance(byShares.stock)
	require.NoError(t, err)
	assertDecimal(t, "60", sharesA)
	assertDecimal(t, "60", sharesB)
}

func TestStockSplit_InexactFactorKeepsShareCount(t *testing.T) {
	l := newLedger(t)
	l.buy(t, "3", "10")

	split := func(variant SplitVariant, magnitude string) *model.Transaction {
		t.Helper()
		tx, err := l.tm.StockSplit(context.Background(), StockSplitRequest{
			StockAccountID: l.stock, Variant: variant, Magnitude: nullDec(magnitude), PostDate: fixedNow,
		})
		require.NoError(t, err)
		return tx
	}
	balance := func() decimal.Decimal {
		t.Helper()
		shares, err := l.repo.GetAccountBalance(l.stock)
		require.NoError(t, err)
		return shares
	}

	tx := split(SplitByAdditionalShares, "1")
	assert.False(t, tx.Splits[0].Shares.Mul(dec("3")).Equal(dec("4")), "factor 4/3 is not exact")
	assertDecimal(t, "4", balance())

	// later splits start from the exact position
	split(SplitByAdditionalShares, "2")
	assertDecimal(t, "6", balance())

	split(SplitByFactor, "1/3")
	assertDecimal(t, "2", balance())
}

func TestStockSplit_ReverseSplit(t *testing.T) {
	l := newLedger(t)
	l.buy(t, "100", "1")

	tx, err := l.tm.StockSplit(context.Background(), StockSplitRequest{
		StockAccountID: l.stock, Variant: SplitByAdditionalShares, Magnitude: nullDec("-90"), PostDate: fixedNow,
	})
	require.NoError(t, err)
	assertDecimal(t, "0.1", tx.Splits[0].Shares)

	shares, err := l.repo.GetAccountBalance(l.stock)
	require.NoError(t, err)
	assertDecimal(t, "10", shares)
}

func TestStockSplit_Rejected(t *testing.T) {
	l := newLedger(t)
	l.buy(t, "10", "1")
	ctx := context.Background()

	tests := []struct {
		name string
		req  StockSplitRequest
		want error
	}{
		{"magnitude missing", StockSplitRequest{StockAccountID: l.stock, PostDate: fixedNow}, ledgererr.ErrInvalidArgument},
		{"zero factor", StockSplitRequest{StockAccountID: l.stock, Magnitude: nullDec("0"), PostDate: fixedNow}, ledgererr.ErrInvalidArgument},
		{"negative factor", StockSplitRequest{StockAccountID: l.stock, Magnitude: nullDec("-2"), PostDate: fixedNow}, ledgererr.ErrInvalidArgument},
		{"factor above band", StockSplitRequest{StockAccountID: l.stock, Magnitude: nullDec("21"), PostDate: fixedNow}, ledgererr.ErrInvalidArgument},
		{"factor below band", StockSplitRequest{StockAccountID: l.stock, Magnitude: nullDec("0.04"), PostDate: fixedNow}, ledgererr.ErrInvalidArgument},
		{"zero additional shares", StockSplitRequest{StockAccountID: l.stock, Variant: SplitByAdditionalShares, Magnitude: nullDec("0"), PostDate: fixedNow}, ledgererr.ErrInvalidArgument},
		{"too many additional shares", StockSplitRequest{StockAccountID: l.stock, Variant: SplitByAdditionalShares, Magnitude: nullDec("100000"), PostDate: fixedNow}, ledgererr.ErrInvalidArgument},
		{"fractional additional shares", StockSplitRequest{StockAccountID: l.stock, Variant: SplitByAdditionalShares, Magnitude: nullDec("0.5"), PostDate: fixedNow}, ledgererr.ErrInvalidArgument},
		{"reverse split wipes position", StockSplitRequest{StockAccountID: l.stock, Variant: SplitByAdditionalShares, Magnitude: nullDec("-10"), PostDate: fixedNow}, ledgererr.ErrInvalidArgument},
		{"not a stock account", StockSplitRequest{StockAccountID: l.checking, Magnitude: nullDec("2"), PostDate: fixedNow}, ledgererr.ErrInvalidArgument},
		{"empty position", StockSplitRequest{StockAccountID: l.idle, Magnitude: nullDec("2"), PostDate: fixedNow}, ledgererr.ErrInvalidState},
		{"empty position by shares", StockSplitRequest{StockAccountID: l.idle, Variant: SplitByAdditionalShares, Magnitude: nullDec("5"), PostDate: fixedNow}, ledgererr.ErrInvalidState},
	}

	before := l.transactionCount(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.tm.StockSplit(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
	assert.Equal(t, before, l.transactionCount(t))
}

func TestStockSplit_LenientPolicy(t *testing.T) {
	l := newLedger(t)
	l.buy(t, "10", "1")
	l.tm.policy.StrictPlausibility = false

	tx, err := l.tm.StockSplit(context.Background(), StockSplitRequest{
		StockAccountID: l.stock, Variant: SplitByFactor, Magnitude: nullDec("25"), PostDate: fixedNow,
	})
	require.NoError(t, err)
	assertDecimal(t, "25", tx.Splits[0].Shares)

	_, err = l.tm.StockSplit(context.Background(), StockSplitRequest{
		StockAccountID: l.stock, Variant: SplitByFactor, Magnitude: nullDec("0"), PostDate: fixedNow,
	})
	assert.ErrorIs(t, err, ledgererr.ErrInvalidArgument)
}

func TestPostedDay(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	got := postedDay(time.Date(2026, 3, 4, 23, 59, 0, 0, loc))
	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), got)
}
