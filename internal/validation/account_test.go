package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/hance08/keasec/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	accounts map[string]*model.Account
}

func (f fakeStore) AccountExists(name string) (bool, error) {
	_, ok := f.accounts[name]
	return ok, nil
}

func (f fakeStore) GetAccountByName(name string) (*model.Account, error) {
	acc, ok := f.accounts[name]
	if !ok {
		return nil, errors.New("record not found")
	}
	return acc, nil
}

func newValidator() *AccountValidator {
	return NewAccountValidator(fakeStore{accounts: map[string]*model.Account{
		"Assets:Broker": {ID: 1, Name: "Assets:Broker", Type: model.TypeInvestment},
	}})
}

func TestValidateAccountName(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.ValidateAccountName("ACME"))
	assert.Error(t, v.ValidateAccountName("  "))
	assert.Error(t, v.ValidateAccountName("a:b"))
	assert.Error(t, v.ValidateAccountName(strings.Repeat("x", 101)))
	assert.Error(t, v.ValidateAccountName(42))
}

func TestValidateFullAccountName(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.ValidateFullAccountName("Assets:Broker:ACME"))
	assert.NoError(t, v.ValidateFullAccountName("Checking"))
	assert.ErrorContains(t, v.ValidateFullAccountName("Assets:Broker"), "already exists")
	assert.ErrorContains(t, v.ValidateFullAccountName("Assets::ACME"), "can't be empty")
	assert.ErrorContains(t, v.ValidateFullAccountName("Expenses"), "reserved")
}

func TestValidateParentAccount(t *testing.T) {
	v := newValidator()

	acc, err := v.ValidateParentAccount("Assets:Broker")
	require.NoError(t, err)
	assert.Equal(t, int64(1), acc.ID)

	_, err = v.ValidateParentAccount("Assets:Nope")
	assert.Error(t, err)
	_, err = v.ValidateParentAccount("")
	assert.Error(t, err)
}

func TestValidateCurrency(t *testing.T) {
	assert.NoError(t, ValidateCurrency("eur"))
	assert.NoError(t, ValidateCurrency(""))
	assert.Error(t, ValidateCurrency("EURO"))
	assert.Error(t, ValidateCurrency("XYZ"))
	assert.Error(t, ValidateCurrency(1))
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount("230.80"))
	assert.NoError(t, ValidateAmount("1/20"))
	assert.Error(t, ValidateAmount(""))
	assert.Error(t, ValidateAmount("abc"))
}
