package secacct

import (
	"context"
	"time"

	"github.com/hance08/keasec/internal/constants"
	"github.com/hance08/keasec/internal/ledgererr"
	"github.com/hance08/keasec/internal/model"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// BuyStock posts a purchase: the checking account pays the gross amount,
// the stock account receives the shares at net value and every fee lands
// on its expense account.
func (tm *TransactionManager) BuyStock(ctx context.Context, req BuyStockRequest) (*model.Transaction, error) {
	const op = constants.OpBuyStock

	if err := req.Validate(); err != nil {
		return nil, ledgererr.Wrap(ledgererr.KindInvalidArgument, op, err, "invalid buy request")
	}

	if _, err := tm.requireAccount(op, "stock", req.StockAccountID, model.TypeStock); err != nil {
		return nil, err
	}
	if err := tm.requireExpenseAccounts(op, req.ExpenseAccountAmounts); err != nil {
		return nil, err
	}
	if _, err := tm.requireAccount(op, "offset", req.OffsetAccountID, model.TypeChecking); err != nil {
		return nil, err
	}

	nofStocks := req.NofStocks.Decimal
	price := req.StockPrice.Decimal

	expenseSum := decimal.Zero
	for _, pair := range req.ExpenseAccountAmounts {
		expenseSum = expenseSum.Add(pair.Amount)
	}
	net := nofStocks.Mul(price)
	gross := net.Add(expenseSum)

	logrus.WithContext(ctx).WithFields(logrus.Fields{
		"op":         op,
		"stock":      req.StockAccountID,
		"net":        net.String(),
		"expenses":   expenseSum.String(),
		"gross":      gross.String(),
		"nof_stocks": nofStocks.String(),
	}).Debug("computed buy amounts")

	splits := []*model.Split{
		{
			AccountID: req.OffsetAccountID,
			Value:     gross.Neg(),
			Shares:    gross.Neg(),
			Memo:      req.Memo,
		},
		{
			AccountID: req.StockAccountID,
			Value:     net,
			Shares:    nofStocks,
			Price:     decimal.NewNullDecimal(price),
			Action:    model.ActionBuyShares,
		},
	}
	for _, pair := range req.ExpenseAccountAmounts {
		splits = append(splits, &model.Split{
			AccountID: pair.AccountID,
			Value:     pair.Amount,
			Shares:    pair.Amount,
		})
	}

	return tm.post(ctx, op, tm.newTransaction(op, req.PostDate, splits))
}

// BuyStockSimple is BuyStock with a single taxes-and-fees entry.
func (tm *TransactionManager) BuyStockSimple(ctx context.Context, stockAccountID, expenseAccountID, offsetAccountID int64,
	nofStocks, stockPrice, taxesFees decimal.Decimal, postDate time.Time, memo string) (*model.Transaction, error) {
	return tm.BuyStock(ctx, BuyStockRequest{
		StockAccountID: stockAccountID,
		ExpenseAccountAmounts: []model.AccountAmountPair{
			{AccountID: expenseAccountID, Amount: taxesFees},
		},
		OffsetAccountID: offsetAccountID,
		NofStocks:       decimal.NewNullDecimal(nofStocks),
		StockPrice:      decimal.NewNullDecimal(stockPrice),
		PostDate:        postDate,
		Memo:            memo,
	})
}
