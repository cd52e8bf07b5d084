package store

import (
	"time"

	"github.com/hance08/keasec/internal/model"
	"github.com/shopspring/decimal"
)

// Repository is the ledger gateway used by the securities and merge services.
type Repository interface {
	// Account Operations
	CreateAccount(acc *model.Account) (int64, error)
	GetAllAccounts() ([]*model.Account, error)
	GetAccountByName(name string) (*model.Account, error)
	GetAccountByID(id int64) (*model.Account, error)
	GetAccountsByType(accType model.AccountType) ([]*model.Account, error)
	GetChildAccounts(parentID int64) ([]*model.Account, error)
	AccountExists(name string) (bool, error)
	GetAccountBalance(accountID int64) (decimal.Decimal, error)

	// Transaction Operations
	CreateTransaction(tx *model.Transaction) (int64, error)
	GetTransactionByID(txID int64) (*model.Transaction, error)
	GetAllTransactions(limit int) ([]*model.Transaction, error)
	GetTransactionsByDateRange(from, to time.Time) ([]*model.Transaction, error)
	GetTransactionsByAccount(accountID int64, limit int) ([]*model.Transaction, error)
	DeleteTransaction(txID int64) error

	// Split Operations
	CreateSplit(txID int64, split *model.Split) (int64, error)
	GetSplitByID(splitID int64) (*model.Split, error)
	GetSplitsByTransaction(txID int64) ([]*model.Split, error)
	GetAllSplits() ([]*model.Split, error)
	DeleteSplit(splitID int64) error

	// ExecTx runs fn inside one database transaction. fn must use the
	// Repository it is handed.
	ExecTx(fn func(Repository) error) error

	Close() error
}
