package mocks

import (
	"time"

	"github.com/hance08/keasec/internal/model"
	"github.com/hance08/keasec/internal/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of store.Repository
type MockRepository struct {
	mock.Mock
}

var _ store.Repository = (*MockRepository)(nil)

// Account methods

func (m *MockRepository) CreateAccount(acc *model.Account) (int64, error) {
	args := m.Called(acc)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) GetAllAccounts() ([]*model.Account, error) {
	args := m.Called()
	accounts, _ := args.Get(0).([]*model.Account)
	return accounts, args.Error(1)
}

func (m *MockRepository) GetAccountByName(name string) (*model.Account, error) {
	args := m.Called(name)
	acc, _ := args.Get(0).(*model.Account)
	return acc, args.Error(1)
}

func (m *MockRepository) GetAccountByID(id int64) (*model.Account, error) {
	args := m.Called(id)
	acc, _ := args.Get(0).(*model.Account)
	return acc, args.Error(1)
}

func (m *MockRepository) GetAccountsByType(accType model.AccountType) ([]*model.Account, error) {
	args := m.Called(accType)
	accounts, _ := args.Get(0).([]*model.Account)
	return accounts, args.Error(1)
}

func (m *MockRepository) GetChildAccounts(parentID int64) ([]*model.Account, error) {
	args := m.Called(parentID)
	accounts, _ := args.Get(0).([]*model.Account)
	return accounts, args.Error(1)
}

func (m *MockRepository) AccountExists(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) GetAccountBalance(accountID int64) (decimal.Decimal, error) {
	args := m.Called(accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// Transaction methods

func (m *MockRepository) CreateTransaction(tx *model.Transaction) (int64, error) {
	args := m.Called(tx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) GetTransactionByID(txID int64) (*model.Transaction, error) {
	args := m.Called(txID)
	tx, _ := args.Get(0).(*model.Transaction)
	return tx, args.Error(1)
}

func (m *MockRepository) GetAllTransactions(limit int) ([]*model.Transaction, error) {
	args := m.Called(limit)
	txs, _ := args.Get(0).([]*model.Transaction)
	return txs, args.Error(1)
}

func (m *MockRepository) GetTransactionsByDateRange(from, to time.Time) ([]*model.Transaction, error) {
	args := m.Called(from, to)
	txs, _ := args.Get(0).([]*model.Transaction)
	return txs, args.Error(1)
}

func (m *MockRepository) GetTransactionsByAccount(accountID int64, limit int) ([]*model.Transaction, error) {
	args := m.Called(accountID, limit)
	txs, _ := args.Get(0).([]*model.Transaction)
	return txs, args.Error(1)
}

func (m *MockRepository) DeleteTransaction(txID int64) error {
	args := m.Called(txID)
	return args.Error(0)
}

// Split methods

func (m *MockRepository) CreateSplit(txID int64, split *model.Split) (int64, error) {
	args := m.Called(txID, split)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) GetSplitByID(splitID int64) (*model.Split, error) {
	args := m.Called(splitID)
	split, _ := args.Get(0).(*model.Split)
	return split, args.Error(1)
}

func (m *MockRepository) GetSplitsByTransaction(txID int64) ([]*model.Split, error) {
	args := m.Called(txID)
	splits, _ := args.Get(0).([]*model.Split)
	return splits, args.Error(1)
}

func (m *MockRepository) GetAllSplits() ([]*model.Split, error) {
	args := m.Called()
	splits, _ := args.Get(0).([]*model.Split)
	return splits, args.Error(1)
}

func (m *MockRepository) DeleteSplit(splitID int64) error {
	args := m.Called(splitID)
	return args.Error(0)
}

// ExecTx records the call and runs fn against the mock itself, so calls
// made inside the unit of work hit the same expectations.
func (m *MockRepository) ExecTx(fn func(store.Repository) error) error {
	args := m.Called(fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(m)
}

func (m *MockRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}
