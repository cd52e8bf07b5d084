package service

import (
	"fmt"

	"github.com/hance08/keasec/internal/config"
	"github.com/hance08/keasec/internal/model"
	"github.com/hance08/keasec/internal/store"
)

type TransactionService struct {
	repo   store.Repository
	config *config.Config
}

func NewTransactionService(repo store.Repository, cfg *config.Config) *TransactionService {
	return &TransactionService{repo: repo, config: cfg}
}

// GetTransactionByID retrieves a transaction with all split details
func (ts *TransactionService) GetTransactionByID(txID int64) (*TransactionDetail, error) {
	tx, err := ts.repo.GetTransactionByID(txID)
	if err != nil {
		return nil, err
	}
	return ts.Detail(tx)
}

// Detail resolves the account of every split of tx.
func (ts *TransactionService) Detail(tx *model.Transaction) (*TransactionDetail, error) {
	detail := &TransactionDetail{
		ID:          tx.ID,
		DatePosted:  tx.DatePosted,
		DateEntered: tx.DateEntered,
		Memo:        tx.Memo,
		Splits:      make([]SplitDetail, 0, len(tx.Splits)),
	}

	for _, split := range tx.Splits {
		account, err := ts.repo.GetAccountByID(split.AccountID)
		if err != nil {
			return nil, fmt.Errorf("failed to get account for split: %w", err)
		}

		detail.Splits = append(detail.Splits, SplitDetail{
			ID:          split.ID,
			AccountID:   split.AccountID,
			AccountName: account.Name,
			AccountType: account.Type,
			Currency:    account.Currency,
			Value:       split.Value,
			Shares:      split.Shares,
			Price:       split.Price,
			Action:      split.Action,
			Memo:        split.Memo,
		})
	}

	return detail, nil
}

// GetRecentTransactions retrieves recent transactions across all accounts
func (ts *TransactionService) GetRecentTransactions(limit int) ([]*TransactionDetail, error) {
	transactions, err := ts.repo.GetAllTransactions(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	return ts.details(transactions)
}

// GetTransactionHistory retrieves transaction history for a specific account
func (ts *TransactionService) GetTransactionHistory(accountName string, limit int) ([]*TransactionDetail, error) {
	account, err := ts.repo.GetAccountByName(accountName)
	if err != nil {
		return nil, fmt.Errorf("account not found: %w", err)
	}

	transactions, err := ts.repo.GetTransactionsByAccount(account.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction history: %w", err)
	}

	return ts.details(transactions)
}

func (ts *TransactionService) DeleteTransaction(txID int64) error {
	return ts.repo.ExecTx(func(repo store.Repository) error {
		return repo.DeleteTransaction(txID)
	})
}

func (ts *TransactionService) details(headers []*model.Transaction) ([]*TransactionDetail, error) {
	result := make([]*TransactionDetail, 0, len(headers))
	for _, header := range headers {
		detail, err := ts.GetTransactionByID(header.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, detail)
	}
	return result, nil
}
