package views

import (
	"fmt"
	"strings"

	"github.com/hance08/keasec/internal/amount"
	"github.com/hance08/keasec/internal/constants"
	"github.com/hance08/keasec/internal/model"
	"github.com/hance08/keasec/internal/service"
	"github.com/pterm/pterm"
)

type TransactionListView struct {
	Title string
}

func NewTransactionListView(title string) *TransactionListView {
	return &TransactionListView{Title: title}
}

// Render prints one row per transaction. The amount column shows the
// largest positive split value, which is the gross of a securities posting.
func (v *TransactionListView) Render(items []*service.TransactionDetail) error {
	if len(items) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Println(v.Title)

	tableData := pterm.TableData{
		{"ID", "Date", "Kind", "Accounts", "Description", "Amount"},
	}

	for _, item := range items {
		kind := kindOf(item)
		switch kind {
		case string(model.ActionBuyShares):
			kind = pterm.Blue(kind)
		case string(model.ActionDividend), string(model.ActionDistribution):
			kind = pterm.Green(kind)
		case string(model.ActionSplitShares):
			kind = pterm.Yellow(kind)
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", item.ID),
			item.DatePosted.Format(constants.DateFormat),
			kind,
			accountNames(item),
			item.Description(),
			grossOf(item),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(items))
	return nil
}

func kindOf(d *service.TransactionDetail) string {
	for _, s := range d.Splits {
		if s.Action != model.ActionNone {
			return string(s.Action)
		}
	}
	return "-"
}

func accountNames(d *service.TransactionDetail) string {
	names := make([]string, 0, len(d.Splits))
	for _, s := range d.Splits {
		names = append(names, s.AccountName)
	}
	return strings.Join(names, ", ")
}

func grossOf(d *service.TransactionDetail) string {
	var top *service.SplitDetail
	for i := range d.Splits {
		if top == nil || d.Splits[i].Value.GreaterThan(top.Value) {
			top = &d.Splits[i]
		}
	}
	if top == nil {
		return "-"
	}
	return fmt.Sprintf("%s %s", amount.Format(top.Value), top.Currency)
}

// RenderSplitList prints splits returned by a split search.
func RenderSplitList(splits []*model.Split, accountName func(int64) string) error {
	if len(splits) == 0 {
		pterm.Warning.Println("No splits found")
		return nil
	}

	tableData := pterm.TableData{
		{"Split", "Account", "Action", "Value", "Shares", "Memo"},
	}
	for _, s := range splits {
		tableData = append(tableData, []string{
			s.QualifiedID().String(),
			accountName(s.AccountID),
			orDash(string(s.Action)),
			amount.Format(s.Value),
			s.Shares.String(),
			orDash(s.Memo),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d splits\n", len(splits))
	return nil
}
