package secacct

import (
	"errors"
	"fmt"

	"github.com/hance08/keasec/internal/constants"
	"github.com/hance08/keasec/internal/ledgererr"
	"github.com/hance08/keasec/internal/model"
	"github.com/hance08/keasec/internal/store"
)

// AccountManager gives access to the share accounts held under one
// INVESTMENT account.
type AccountManager struct {
	repo    store.Repository
	account *model.Account
}

func NewAccountManager(repo store.Repository, investmentAccountID int64) (*AccountManager, error) {
	const op = constants.OpAccountManager

	acc, err := repo.GetAccountByID(investmentAccountID)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, ledgererr.Wrap(ledgererr.KindInvalidState, op, err, "investment account %d cannot be resolved", investmentAccountID)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if acc.Type != model.TypeInvestment {
		return nil, ledgererr.InvalidArgument(op, "account '%s' has type %s, expected %s", acc.Name, acc.Type, model.TypeInvestment)
	}

	return &AccountManager{repo: repo, account: acc}, nil
}

func (am *AccountManager) Account() *model.Account {
	return am.account
}

// ShareAccounts returns the STOCK children of the investment account.
func (am *AccountManager) ShareAccounts() ([]*model.Account, error) {
	children, err := am.repo.GetChildAccounts(am.account.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get share accounts: %w", err)
	}

	var result []*model.Account
	for _, child := range children {
		if child.Type == model.TypeStock {
			result = append(result, child)
		}
	}
	return result, nil
}

// ActiveShareAccounts returns the share accounts with a positive share balance.
func (am *AccountManager) ActiveShareAccounts() ([]*model.Account, error) {
	accounts, err := am.ShareAccounts()
	if err != nil {
		return nil, err
	}

	var result []*model.Account
	for _, acc := range accounts {
		shares, err := am.repo.GetAccountBalance(acc.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get share balance of '%s': %w", acc.Name, err)
		}
		if shares.IsPositive() {
			result = append(result, acc)
		}
	}
	return result, nil
}
