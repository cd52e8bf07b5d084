package views

import (
	"fmt"

	"github.com/hance08/keasec/internal/constants"
	"github.com/hance08/keasec/internal/service"
	"github.com/hance08/keasec/internal/ui"
	"github.com/pterm/pterm"
)

func RenderTransactionDeletePreview(detail *service.TransactionDetail) {
	pterm.Warning.Printf("About to delete transaction #%d:\n", detail.ID)

	deletionInfo := pterm.TableData{
		{"Date", detail.DatePosted.Format(constants.DateFormat)},
		{"Description", orDash(detail.Description())},
		{"Splits", fmt.Sprint(len(detail.Splits))},
	}

	pterm.DefaultTable.WithData(deletionInfo).Render()
	pterm.Warning.Println("This action cannot be undone!")
}

func RenderTransactionDeleteSuccess(id int64) {
	pterm.Success.Printf("Transaction #%d deleted successfully\n", id)
	ui.Separator()
}
