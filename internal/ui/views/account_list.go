package views

import (
	"fmt"

	"github.com/hance08/keasec/internal/amount"
	"github.com/hance08/keasec/internal/model"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

type AccountListView struct {
	Title string
}

func NewAccountListView(title string) *AccountListView {
	return &AccountListView{Title: title}
}

// Render prints accounts with their balance. STOCK balances are share
// counts and carry no currency.
func (v *AccountListView) Render(accounts []*model.Account, balanceGetter func(int64) (decimal.Decimal, error)) error {
	tableData := pterm.TableData{{"ID", "Name", "Type", "Balance"}}

	for _, acc := range accounts {
		balance, err := balanceGetter(acc.ID)
		if err != nil {
			return err
		}

		balanceStr := fmt.Sprintf("%s %s", amount.Format(balance), acc.Currency)
		if acc.Type == model.TypeStock {
			balanceStr = fmt.Sprintf("%s shares", balance.String())
		}

		typeStr := string(acc.Type)
		switch acc.Type {
		case model.TypeChecking, model.TypeSavings, model.TypeCash, model.TypeAsset, model.TypeIncome:
			typeStr = pterm.Green(typeStr)
		case model.TypeStock, model.TypeInvestment:
			typeStr = pterm.Blue(typeStr)
		case model.TypeExpense, model.TypeLiability, model.TypeCreditCard, model.TypeLoan:
			typeStr = pterm.Red(typeStr)
		case model.TypeEquity:
			typeStr = pterm.Gray(typeStr)
		}

		tableData = append(tableData, []string{fmt.Sprintf("%d", acc.ID), acc.Name, typeStr, balanceStr})
	}

	pterm.DefaultSection.Println(v.Title)
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))
	return nil
}
