package service

import (
	"fmt"
	"strings"

	"github.com/hance08/keasec/internal/config"
	"github.com/hance08/keasec/internal/constants"
	"github.com/hance08/keasec/internal/model"
	"github.com/hance08/keasec/internal/secacct"
	"github.com/hance08/keasec/internal/store"
	"github.com/hance08/keasec/internal/validation"
	"github.com/shopspring/decimal"
)

type AccountService struct {
	repo      store.Repository
	config    *config.Config
	validator *validation.AccountValidator
}

func NewAccountService(repo store.Repository, cfg *config.Config) *AccountService {
	return &AccountService{
		repo:      repo,
		config:    cfg,
		validator: validation.NewAccountValidator(repo),
	}
}

// CreateAccountInput describes a new account. The parent is derived from
// the qualified name when ParentName is empty.
type CreateAccountInput struct {
	Name        string
	Type        model.AccountType
	ParentName  string
	Currency    string
	Description string
}

func (as *AccountService) CreateAccount(input CreateAccountInput) (*model.Account, error) {
	name := strings.TrimSpace(input.Name)
	if err := as.validator.ValidateFullAccountName(name); err != nil {
		return nil, err
	}
	if err := validation.ValidateCurrency(input.Currency); err != nil {
		return nil, err
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = as.config.Defaults.Currency
	}

	acc := &model.Account{
		Name:        name,
		Type:        input.Type,
		Currency:    currency,
		Description: input.Description,
	}

	parentName := input.ParentName
	if parentName == "" {
		if idx := strings.LastIndex(name, constants.AccountSeparator); idx > 0 {
			parentName = name[:idx]
		}
	}
	if parentName != "" {
		parent, err := as.validator.ValidateParentAccount(parentName)
		if err != nil {
			// top-level prefixes such as "Assets" need not exist
			if input.ParentName != "" {
				return nil, err
			}
		} else {
			acc.ParentID = &parent.ID
		}
	}

	if _, err := as.repo.CreateAccount(acc); err != nil {
		return nil, err
	}
	return acc, nil
}

func (as *AccountService) GetAllAccounts() ([]*model.Account, error) {
	return as.repo.GetAllAccounts()
}

func (as *AccountService) GetAccountByName(name string) (*model.Account, error) {
	return as.repo.GetAccountByName(name)
}

func (as *AccountService) GetAccountsByType(accType model.AccountType) ([]*model.Account, error) {
	return as.repo.GetAccountsByType(accType)
}

// ResolveID maps an account name to its ID
func (as *AccountService) ResolveID(name string) (int64, error) {
	acc, err := as.repo.GetAccountByName(name)
	if err != nil {
		return 0, fmt.Errorf("account '%s': %w", name, err)
	}
	return acc.ID, nil
}

func (as *AccountService) GetAccountBalance(accountID int64) (decimal.Decimal, error) {
	return as.repo.GetAccountBalance(accountID)
}

// ShareAccounts lists the share accounts under an investment account, and
// which of them currently hold shares.
func (as *AccountService) ShareAccounts(investmentName string) (all, active []*model.Account, err error) {
	id, err := as.ResolveID(investmentName)
	if err != nil {
		return nil, nil, err
	}

	am, err := secacct.NewAccountManager(as.repo, id)
	if err != nil {
		return nil, nil, err
	}

	all, err = am.ShareAccounts()
	if err != nil {
		return nil, nil, err
	}
	active, err = am.ActiveShareAccounts()
	if err != nil {
		return nil, nil, err
	}
	return all, active, nil
}

// ValidateName checks one segment of an account name.
func (as *AccountService) ValidateName(name string) error {
	return as.validator.ValidateAccountName(name)
}
