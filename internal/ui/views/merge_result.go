package views

import (
	"fmt"

	"github.com/hance08/keasec/internal/service"
	"github.com/hance08/keasec/internal/trxmgr"
	"github.com/hance08/keasec/internal/ui"
	"github.com/pterm/pterm"
)

// RenderMergePreview shows both sides of a merge before confirmation.
func RenderMergePreview(survivor, dier *service.TransactionDetail, strategy trxmgr.Strategy) error {
	ui.PrintL1Title("Merge (%s)", strategy)

	pterm.Println()
	ui.PrintL2Title("Survivor #%d (kept)", survivor.ID)
	if err := RenderTransactionDetail(survivor); err != nil {
		return err
	}

	pterm.Println()
	ui.PrintL2Title("Dier #%d (removed)", dier.ID)
	return RenderTransactionDetail(dier)
}

func RenderMergeResult(res *trxmgr.MergeResult) error {
	ui.Separator()
	tableData := pterm.TableData{
		{pterm.Blue("Strategy"), res.Strategy.String()},
		{pterm.Blue("Survivor"), fmt.Sprintf("#%d", res.SurvivorID)},
		{pterm.Blue("Removed transaction"), fmt.Sprintf("#%d", res.RemovedTransactionID)},
	}
	if res.NewSplitID != 0 {
		tableData = append(tableData,
			[]string{pterm.Blue("New split"), fmt.Sprintf("%d:%d", res.SurvivorID, res.NewSplitID)},
			[]string{pterm.Blue("Replaced split"), fmt.Sprintf("%d:%d", res.SurvivorID, res.RemovedSplitID)},
		)
	}
	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Success.Println("Transactions merged")
	return nil
}
