package cmd

import (
	"context"
	"time"

	"github.com/hance08/keasec/internal/model"
	"github.com/hance08/keasec/internal/secacct"
	"github.com/hance08/keasec/internal/service"
	"github.com/hance08/keasec/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type dividendFlags struct {
	Stock        string
	Income       string
	Offset       string
	Expenses     []string
	Gross        string
	Distribution bool
	Date         string
	Memo         string
}

type dividendRunner struct {
	svc   *service.Service
	flags *dividendFlags
}

func NewDividendCmd(svc *service.Service) *cobra.Command {
	flags := &dividendFlags{}

	cmd := &cobra.Command{
		Use:     "dividend",
		Aliases: []string{"div"},
		Short:   "Record a dividend or distribution",
		Long: `Record a dividend or distribution paid on a stock. The gross amount is
booked as income, withholding taxes and fees as expenses, and the net
amount is credited to the offset account. The stock account gets a
zero-value marker split carrying the action.

A negative gross amount records a reversal.

Example: keasec dividend --stock Assets:Broker:ACME --income Income:Dividends \
  --offset Assets:Broker:Cash --gross 112.23 \
  --expense Expenses:Tax=28.06 --expense Expenses:Fees=5.20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &dividendRunner{svc: svc, flags: flags}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.Stock, "stock", "s", "", "Stock account that paid out")
	cmd.Flags().StringVarP(&flags.Income, "income", "i", "", "Income account for the gross amount")
	cmd.Flags().StringVarP(&flags.Offset, "offset", "o", "", "Account receiving the net amount")
	cmd.Flags().StringArrayVarP(&flags.Expenses, "expense", "e", nil, "Tax or fee as ACCOUNT=AMOUNT (repeatable)")
	cmd.Flags().StringVarP(&flags.Gross, "gross", "g", "", "Gross amount before taxes and fees")
	cmd.Flags().BoolVar(&flags.Distribution, "distribution", false, "Record a distribution instead of a dividend")
	cmd.Flags().StringVarP(&flags.Date, "date", "d", "", "Date posted (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&flags.Memo, "memo", "m", "", "Description of the payout")

	for _, name := range []string{"stock", "income", "offset", "gross"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func (r *dividendRunner) Run(ctx context.Context) error {
	req := secacct.DividendRequest{
		Action: model.ActionDividend,
		Memo:   r.flags.Memo,
	}
	if r.flags.Distribution {
		req.Action = model.ActionDistribution
	}

	if err := resolveAccounts(r.svc.Account,
		accountRef{r.flags.Stock, &req.StockAccountID},
		accountRef{r.flags.Income, &req.IncomeAccountID},
		accountRef{r.flags.Offset, &req.OffsetAccountID},
	); err != nil {
		return err
	}

	var err error
	if req.ExpenseAccountAmounts, err = parseAccountAmounts(r.svc.Account, r.flags.Expenses); err != nil {
		return err
	}
	if req.GrossAmount, err = parseOptionalAmount("gross", r.flags.Gross); err != nil {
		return err
	}
	if req.PostDate, err = parseDate(r.flags.Date, time.Now()); err != nil {
		return err
	}

	tx, err := r.svc.Securities.DividendOrDistribution(ctx, req)
	if err != nil {
		return err
	}

	detail, err := r.svc.Transaction.Detail(tx)
	if err != nil {
		return err
	}
	if err := views.RenderTransactionDetail(detail); err != nil {
		return err
	}
	pterm.Success.Printf("%s recorded as transaction #%d\n", req.Action, tx.ID)
	return nil
}
