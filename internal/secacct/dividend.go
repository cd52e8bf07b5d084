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

// DividendOrDistribution posts a payout. The stock account only gets a
// zero anchor split carrying the action; the money moves between income,
// expenses and the checking account. Negative amounts are allowed so that
// reversals can be booked.
func (tm *TransactionManager) DividendOrDistribution(ctx context.Context, req DividendRequest) (*model.Transaction, error) {
	const op = constants.OpDividend

	if err := req.Validate(); err != nil {
		return nil, ledgererr.Wrap(ledgererr.KindInvalidArgument, op, err, "invalid dividend request")
	}

	if _, err := tm.requireAccount(op, "stock", req.StockAccountID, model.TypeStock); err != nil {
		return nil, err
	}
	if _, err := tm.requireAccount(op, "income", req.IncomeAccountID, model.TypeIncome); err != nil {
		return nil, err
	}
	if err := tm.requireExpenseAccounts(op, req.ExpenseAccountAmounts); err != nil {
		return nil, err
	}
	if _, err := tm.requireAccount(op, "offset", req.OffsetAccountID, model.TypeChecking); err != nil {
		return nil, err
	}

	gross := req.GrossAmount.Decimal
	expenseSum := decimal.Zero
	for _, pair := range req.ExpenseAccountAmounts {
		expenseSum = expenseSum.Add(pair.Amount)
	}
	net := gross.Sub(expenseSum)

	logrus.WithContext(ctx).WithFields(logrus.Fields{
		"op":       op,
		"action":   req.Action,
		"stock":    req.StockAccountID,
		"gross":    gross.String(),
		"expenses": expenseSum.String(),
		"net":      net.String(),
	}).Debug("computed dividend amounts")

	splits := []*model.Split{
		{
			AccountID: req.StockAccountID,
			Value:     decimal.Zero,
			Shares:    decimal.Zero,
			Action:    req.Action,
		},
		{
			AccountID: req.OffsetAccountID,
			Value:     net,
			Shares:    net,
			Memo:      req.Memo,
		},
		{
			AccountID: req.IncomeAccountID,
			Value:     gross.Neg(),
			Shares:    gross.Neg(),
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

// DividendSimple is DividendOrDistribution with a single tax entry.
func (tm *TransactionManager) DividendSimple(ctx context.Context, stockAccountID, incomeAccountID, expenseAccountID, offsetAccountID int64,
	action model.SplitAction, grossAmount, taxes decimal.Decimal, postDate time.Time, memo string) (*model.Transaction, error) {
	return tm.DividendOrDistribution(ctx, DividendRequest{
		StockAccountID:  stockAccountID,
		IncomeAccountID: incomeAccountID,
		ExpenseAccountAmounts: []model.AccountAmountPair{
			{AccountID: expenseAccountID, Amount: taxes},
		},
		OffsetAccountID: offsetAccountID,
		Action:          action,
		GrossAmount:     decimal.NewNullDecimal(grossAmount),
		PostDate:        postDate,
		Memo:            memo,
	})
}
