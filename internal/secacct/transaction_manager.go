// Package secacct builds the balanced ledger transactions behind securities
// account events: buying stock, dividends or distributions, and stock splits.
package secacct

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/keasec/internal/config"
	"github.com/hance08/keasec/internal/constants"
	"github.com/hance08/keasec/internal/ledgererr"
	"github.com/hance08/keasec/internal/model"
	"github.com/hance08/keasec/internal/store"
	"github.com/sirupsen/logrus"
)

// TransactionManager synthesizes securities transactions. None of its
// builders is idempotent: every call posts a new transaction.
type TransactionManager struct {
	repo   store.Repository
	policy config.Policy
	now    func() time.Time
}

func NewTransactionManager(repo store.Repository, policy config.Policy) *TransactionManager {
	return &TransactionManager{
		repo:   repo,
		policy: policy,
		now:    time.Now,
	}
}

// requireAccount resolves id and checks its type. A missing account is a
// ledger state problem, a wrong type is bad input.
func (tm *TransactionManager) requireAccount(op, role string, id int64, want model.AccountType) (*model.Account, error) {
	acc, err := tm.repo.GetAccountByID(id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, ledgererr.Wrap(ledgererr.KindInvalidState, op, err, "%s account %d cannot be resolved", role, id)
		}
		return nil, fmt.Errorf("%s: failed to load %s account: %w", op, role, err)
	}

	if acc.Type != want {
		return nil, ledgererr.InvalidArgument(op, "%s account '%s' has type %s, expected %s", role, acc.Name, acc.Type, want)
	}

	return acc, nil
}

func (tm *TransactionManager) requireExpenseAccounts(op string, pairs []model.AccountAmountPair) error {
	for _, pair := range pairs {
		if _, err := tm.requireAccount(op, "expense", pair.AccountID, model.TypeExpense); err != nil {
			return err
		}
	}
	return nil
}

// newTransaction stamps the dates and the provenance note.
func (tm *TransactionManager) newTransaction(op string, postDate time.Time, splits []*model.Split) *model.Transaction {
	entered := tm.now()
	return &model.Transaction{
		DatePosted:  postedDay(postDate),
		DateEntered: entered,
		Memo:        provenanceNote(op, entered),
		Splits:      splits,
	}
}

// post writes tx and its splits in one unit of work and returns the stored copy.
func (tm *TransactionManager) post(ctx context.Context, op string, tx *model.Transaction) (*model.Transaction, error) {
	var created *model.Transaction

	err := tm.repo.ExecTx(func(repo store.Repository) error {
		txID, err := repo.CreateTransaction(tx)
		if err != nil {
			return err
		}

		created, err = repo.GetTransactionByID(txID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: failed to post transaction: %w", op, err)
	}

	logrus.WithContext(ctx).WithFields(logrus.Fields{
		"op":     op,
		"op_id":  uuid.NewString(),
		"tx_id":  created.ID,
		"splits": len(created.Splits),
		"posted": created.DatePosted.Format(constants.DateFormat),
	}).Info("transaction created")

	return created, nil
}

func provenanceNote(op string, at time.Time) string {
	return fmt.Sprintf("Generated by %s %s, %s", constants.ProvenanceProgram, op, at.Format(constants.TimestampFormat))
}

// postedDay keeps only the calendar day of t.
func postedDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
