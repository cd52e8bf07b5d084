package trxmgr

import (
	"context"
	"fmt"

	"github.com/hance08/keasec/internal/amount"
	"github.com/hance08/keasec/internal/config"
	"github.com/hance08/keasec/internal/constants"
	"github.com/hance08/keasec/internal/ledgererr"
	"github.com/hance08/keasec/internal/model"
	"github.com/hance08/keasec/internal/store"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// mergeCategories are the account types whose splits identify the
// real-world side of an event.
var mergeCategories = []model.AccountType{
	model.TypeChecking,
	model.TypeCash,
	model.TypeStock,
}

// PlausibilityCheck decides whether survivor and dier can describe the same
// event. It returns nil or a MergePlausibilityFailure naming the first
// failed check. Errors reading the ledger are returned unclassified.
func PlausibilityCheck(ctx context.Context, repo store.Repository, policy config.Policy, survivor, dier *model.Transaction) error {
	const op = constants.OpPlausibility

	log := logrus.WithContext(ctx).WithFields(logrus.Fields{
		"op":       op,
		"survivor": survivor.ID,
		"dier":     dier.ID,
	})
	reject := func(format string, args ...any) error {
		err := ledgererr.MergePlausibility(op, format, args...)
		log.Warn(err.Message)
		return err
	}

	if days := dayDistance(survivor.DatePosted, dier.DatePosted); days > int64(policy.DateToleranceDays) {
		log.WithFields(logrus.Fields{
			"survivor_date": survivor.DatePosted.Format(constants.DateFormat),
			"dier_date":     dier.DatePosted.Format(constants.DateFormat),
		}).Debug("post dates differ")
		return reject("post dates are %d days apart (tolerance %d)", days, policy.DateToleranceDays)
	}

	tm := NewTransactionManager(repo, policy)
	if !tm.IsSane(survivor) {
		return reject("survivor transaction %d is not sane", survivor.ID)
	}
	if !tm.IsSane(dier) {
		return reject("dier transaction %d is not sane", dier.ID)
	}

	type category struct {
		accType        model.AccountType
		survivorSplits []*model.Split
		dierSplits     []*model.Split
	}

	var shared []category
	for _, accType := range mergeCategories {
		survSplits, err := tm.SplitsBoundToAccountType(survivor, accType)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		dierSplits, err := tm.SplitsBoundToAccountType(dier, accType)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if len(survSplits) > 0 && len(dierSplits) > 0 {
			shared = append(shared, category{accType, survSplits, dierSplits})
		}
	}

	if len(shared) == 0 {
		return reject("transactions share no split on a checking, cash or stock account")
	}

	for _, c := range shared {
		dierAccounts := make(map[int64]bool, len(c.dierSplits))
		for _, split := range c.dierSplits {
			dierAccounts[split.AccountID] = true
		}
		for _, split := range c.survivorSplits {
			if !dierAccounts[split.AccountID] {
				return reject("survivor split %d has no dier split on the same %s account", split.ID, c.accType)
			}
		}
	}

	for _, c := range shared {
		sumSurv := sumValues(c.survivorSplits)
		sumDier := sumValues(c.dierSplits)
		if !amount.EqualWithin(sumSurv, sumDier, policy.BalanceTolerance) {
			return reject("%s split sums differ: survivor %s, dier %s", c.accType, sumSurv, sumDier)
		}
	}

	log.Debug("transactions are plausible duplicates")
	return nil
}

func sumValues(splits []*model.Split) decimal.Decimal {
	sum := decimal.Zero
	for _, split := range splits {
		sum = sum.Add(split.Value)
	}
	return sum
}
