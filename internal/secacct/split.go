package secacct

import (
	"context"

	"github.com/hance08/keasec/internal/constants"
	"github.com/hance08/keasec/internal/ledgererr"
	"github.com/hance08/keasec/internal/model"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// StockSplit posts a split event on a stock account. The single split it
// emits carries the factor in its shares field, not a share delta; the
// share balance applies it multiplicatively.
func (tm *TransactionManager) StockSplit(ctx context.Context, req StockSplitRequest) (*model.Transaction, error) {
	const op = constants.OpStockSplit

	if err := req.Validate(); err != nil {
		return nil, ledgererr.Wrap(ledgererr.KindInvalidArgument, op, err, "invalid stock split request")
	}

	if _, err := tm.requireAccount(op, "stock", req.StockAccountID, model.TypeStock); err != nil {
		return nil, err
	}

	factor := req.Magnitude.Decimal
	if req.Variant == SplitByAdditionalShares {
		var err error
		factor, err = tm.factorFromAdditionalShares(ctx, op, req.StockAccountID, req.Magnitude.Decimal)
		if err != nil {
			return nil, err
		}
	}

	if err := tm.checkFactor(ctx, op, factor); err != nil {
		return nil, err
	}

	oldShares, err := tm.shareBalance(op, req.StockAccountID)
	if err != nil {
		return nil, err
	}

	logrus.WithContext(ctx).WithFields(logrus.Fields{
		"op":         op,
		"stock":      req.StockAccountID,
		"variant":    req.Variant.String(),
		"factor":     factor.String(),
		"old_shares": oldShares.String(),
		"new_shares": oldShares.Mul(factor).String(),
	}).Debug("computed split")

	splits := []*model.Split{
		{
			AccountID: req.StockAccountID,
			Value:     decimal.Zero,
			Shares:    factor,
			Action:    model.ActionSplitShares,
			Memo:      req.Memo,
		},
	}

	return tm.post(ctx, op, tm.newTransaction(op, req.PostDate, splits))
}

func (tm *TransactionManager) factorFromAdditionalShares(ctx context.Context, op string, stockAccountID int64, added decimal.Decimal) (decimal.Decimal, error) {
	if added.IsZero() {
		return decimal.Zero, ledgererr.InvalidArgument(op, "number of additional shares must not be zero")
	}

	abs := added.Abs()
	if abs.LessThan(tm.policy.AddSharesMin) || abs.GreaterThan(tm.policy.AddSharesMax) {
		if err := tm.outOfBand(ctx, op, "additional shares %s outside [%s, %s]",
			added, tm.policy.AddSharesMin, tm.policy.AddSharesMax); err != nil {
			return decimal.Zero, err
		}
	}

	oldShares, err := tm.shareBalance(op, stockAccountID)
	if err != nil {
		return decimal.Zero, err
	}

	return oldShares.Add(added).Div(oldShares), nil
}

func (tm *TransactionManager) checkFactor(ctx context.Context, op string, factor decimal.Decimal) error {
	if !factor.IsPositive() {
		return ledgererr.InvalidArgument(op, "split factor must be greater than zero, got %s", factor)
	}

	if factor.LessThan(tm.policy.SplitFactorMin) || factor.GreaterThan(tm.policy.SplitFactorMax) {
		return tm.outOfBand(ctx, op, "split factor %s outside [%s, %s]",
			factor, tm.policy.SplitFactorMin, tm.policy.SplitFactorMax)
	}

	return nil
}

// outOfBand rejects implausible magnitudes under a strict policy and only
// warns otherwise.
func (tm *TransactionManager) outOfBand(ctx context.Context, op, format string, args ...any) error {
	err := ledgererr.InvalidArgument(op, format, args...)
	if tm.policy.StrictPlausibility {
		return err
	}

	logrus.WithContext(ctx).WithField("op", op).Warn(err.Message)
	return nil
}

func (tm *TransactionManager) shareBalance(op string, stockAccountID int64) (decimal.Decimal, error) {
	shares, err := tm.repo.GetAccountBalance(stockAccountID)
	if err != nil {
		return decimal.Zero, ledgererr.Wrap(ledgererr.KindInvalidState, op, err, "cannot read share balance of account %d", stockAccountID)
	}

	if shares.IsZero() {
		return decimal.Zero, ledgererr.InvalidState(op, "account %d holds no shares, a split cannot be applied", stockAccountID)
	}

	return shares, nil
}
