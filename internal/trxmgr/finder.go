package trxmgr

import (
	"context"
	"fmt"
	"time"

	"github.com/hance08/keasec/internal/config"
	"github.com/hance08/keasec/internal/model"
	"github.com/hance08/keasec/internal/store"
	"github.com/sirupsen/logrus"
)

// Bounds used when a filter fixes only one end of the date range.
var (
	superEarly = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	superLate  = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
)

const scanLimit = 1 << 30

type Finder struct {
	repo store.Repository
	tm   *TransactionManager
}

func NewFinder(repo store.Repository, policy config.Policy) *Finder {
	return &Finder{repo: repo, tm: NewTransactionManager(repo, policy)}
}

// FindTransactions returns the transactions, with splits, matching filter.
// A date range in the filter narrows the candidates in the store.
func (f *Finder) FindTransactions(ctx context.Context, filter TransactionFilter) ([]*model.Transaction, error) {
	var candidates []*model.Transaction
	var err error

	if from, to, ok := filter.DateRange(); ok {
		if from.IsZero() {
			from = superEarly
		}
		if to.IsZero() {
			to = superLate
		}
		candidates, err = f.repo.GetTransactionsByDateRange(from, to)
	} else {
		candidates, err = f.repo.GetAllTransactions(scanLimit)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate transactions: %w", err)
	}

	var result []*model.Transaction
	for _, candidate := range candidates {
		tx, err := f.repo.GetTransactionByID(candidate.ID)
		if err != nil {
			return nil, err
		}

		ok, err := filter.Matches(tx, f.tm.AccountType)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, tx)
		}
	}

	logrus.WithContext(ctx).WithFields(logrus.Fields{
		"candidates": len(candidates),
		"found":      len(result),
	}).Debug("transaction search done")

	return result, nil
}

func (f *Finder) FindSplits(ctx context.Context, filter SplitFilter) ([]*model.Split, error) {
	splits, err := f.repo.GetAllSplits()
	if err != nil {
		return nil, fmt.Errorf("failed to load splits: %w", err)
	}

	var result []*model.Split
	for _, split := range splits {
		ok, err := filter.Matches(split, f.tm.AccountType)
		if err != nil {
			return nil, err
		}
		if ok {
			result = append(result, split)
		}
	}

	logrus.WithContext(ctx).WithField("found", len(result)).Debug("split search done")
	return result, nil
}
