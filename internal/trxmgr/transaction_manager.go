// Package trxmgr inspects, finds and merges ledger transactions.
package trxmgr

import (
	"fmt"

	"github.com/hance08/keasec/internal/amount"
	"github.com/hance08/keasec/internal/config"
	"github.com/hance08/keasec/internal/model"
	"github.com/hance08/keasec/internal/store"
)

type TransactionManager struct {
	repo   store.Repository
	policy config.Policy
	types  map[int64]model.AccountType
}

func NewTransactionManager(repo store.Repository, policy config.Policy) *TransactionManager {
	return &TransactionManager{
		repo:   repo,
		policy: policy,
		types:  make(map[int64]model.AccountType),
	}
}

// IsSane reports whether tx has at least one split and balances within
// the policy tolerance.
func (tm *TransactionManager) IsSane(tx *model.Transaction) bool {
	if tx == nil || len(tx.Splits) == 0 {
		return false
	}
	return amount.IsZeroWithin(tx.SumValues(), tm.policy.BalanceTolerance)
}

func (tm *TransactionManager) HasSplitBoundToAccountType(tx *model.Transaction, accType model.AccountType) (bool, error) {
	splits, err := tm.SplitsBoundToAccountType(tx, accType)
	if err != nil {
		return false, err
	}
	return len(splits) > 0, nil
}

func (tm *TransactionManager) SplitsBoundToAccountType(tx *model.Transaction, accType model.AccountType) ([]*model.Split, error) {
	var result []*model.Split
	for _, split := range tx.Splits {
		t, err := tm.AccountType(split.AccountID)
		if err != nil {
			return nil, err
		}
		if t == accType {
			result = append(result, split)
		}
	}
	return result, nil
}

// AccountType resolves the type of an account, caching lookups for the
// lifetime of the manager.
func (tm *TransactionManager) AccountType(accountID int64) (model.AccountType, error) {
	if t, ok := tm.types[accountID]; ok {
		return t, nil
	}

	acc, err := tm.repo.GetAccountByID(accountID)
	if err != nil {
		return "", fmt.Errorf("failed to resolve account %d: %w", accountID, err)
	}

	tm.types[accountID] = acc.Type
	return acc.Type, nil
}
