package views

import (
	"fmt"

	"github.com/hance08/keasec/internal/amount"
	"github.com/hance08/keasec/internal/constants"
	"github.com/hance08/keasec/internal/service"
	"github.com/hance08/keasec/internal/ui"
	"github.com/pterm/pterm"
)

func RenderTransactionDetail(detail *service.TransactionDetail) error {
	pterm.Println()
	ui.PrintL2Title("Transaction Info")
	infoData := pterm.TableData{
		{"Field", "Value"},
		{"ID", fmt.Sprintf("%d", detail.ID)},
		{"Posted", detail.DatePosted.Format(constants.DateFormat)},
		{"Entered", detail.DateEntered.Local().Format(constants.TimestampFormat)},
		{"Description", orDash(detail.Description())},
		{"Note", orDash(detail.Memo)},
	}
	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render(); err != nil {
		return err
	}

	pterm.Println()
	ui.PrintL2Title("Splits")
	splitsData := pterm.TableData{
		{"Split", "Account", "Action", "Value", "Shares", "Price", "Memo"},
	}

	for _, split := range detail.Splits {
		accountName := split.AccountName
		if accountName == "" {
			accountName = fmt.Sprintf("[ID: %d]", split.AccountID)
		}

		value := fmt.Sprintf("%s %s", amount.Format(split.Value), split.Currency)
		if split.Value.IsNegative() {
			value = pterm.Red(value)
		} else {
			value = pterm.Green(value)
		}

		price := "-"
		if split.Price.Valid {
			price = amount.Format(split.Price.Decimal)
		}

		splitsData = append(splitsData, []string{
			fmt.Sprintf("%d:%d", detail.ID, split.ID),
			accountName,
			orDash(string(split.Action)),
			value,
			split.Shares.String(),
			price,
			orDash(split.Memo),
		})
	}

	if err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(splitsData).
		Render(); err != nil {
		return err
	}

	if total := detail.Total(); !total.IsZero() {
		pterm.Warning.Printf("Splits do not balance (total = %s)\n", total.String())
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
