package model

import (
	"fmt"
	"strings"
)

type AccountType string

const (
	TypeChecking   AccountType = "CHECKING"
	TypeSavings    AccountType = "SAVINGS"
	TypeCash       AccountType = "CASH"
	TypeCreditCard AccountType = "CREDIT_CARD"
	TypeLoan       AccountType = "LOAN"
	TypeAsset      AccountType = "ASSET"
	TypeLiability  AccountType = "LIABILITY"
	TypeStock      AccountType = "STOCK"
	TypeInvestment AccountType = "INVESTMENT"
	TypeIncome     AccountType = "INCOME"
	TypeExpense    AccountType = "EXPENSE"
	TypeEquity     AccountType = "EQUITY"
)

var AccountTypes = []AccountType{
	TypeChecking, TypeSavings, TypeCash, TypeCreditCard, TypeLoan,
	TypeAsset, TypeLiability, TypeStock, TypeInvestment,
	TypeIncome, TypeExpense, TypeEquity,
}

// ParseAccountType accepts the type name in any case.
func ParseAccountType(s string) (AccountType, error) {
	t := AccountType(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range AccountTypes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid account type '%s'", s)
}

type Account struct {
	ID          int64
	Name        string
	Type        AccountType
	ParentID    *int64
	Currency    string
	Description string
	IsHidden    bool
}
