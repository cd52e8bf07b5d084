package cmd

import (
	"context"
	"time"

	"github.com/hance08/keasec/internal/secacct"
	"github.com/hance08/keasec/internal/service"
	"github.com/hance08/keasec/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type buyFlags struct {
	Stock    string
	Offset   string
	Expenses []string
	Shares   string
	Price    string
	Date     string
	Memo     string
}

type buyRunner struct {
	svc   *service.Service
	flags *buyFlags
}

func NewBuyCmd(svc *service.Service) *cobra.Command {
	flags := &buyFlags{}

	cmd := &cobra.Command{
		Use:   "buy",
		Short: "Record a stock purchase",
		Long: `Record a stock purchase as one balanced transaction: the shares go to
the stock account, fees and taxes to their expense accounts, and the
total is taken from the offset account.

Example: keasec buy --stock Assets:Broker:ACME --offset Assets:Broker:Cash \
  --expense Expenses:Fees=9.45 --shares 15 --price 230.80 --date 2026-10-16`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &buyRunner{svc: svc, flags: flags}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.Stock, "stock", "s", "", "Stock account receiving the shares")
	cmd.Flags().StringVarP(&flags.Offset, "offset", "o", "", "Account paying for the purchase")
	cmd.Flags().StringArrayVarP(&flags.Expenses, "expense", "e", nil, "Fee or tax as ACCOUNT=AMOUNT (repeatable)")
	cmd.Flags().StringVarP(&flags.Shares, "shares", "n", "", "Number of shares bought")
	cmd.Flags().StringVarP(&flags.Price, "price", "p", "", "Price per share")
	cmd.Flags().StringVarP(&flags.Date, "date", "d", "", "Date posted (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&flags.Memo, "memo", "m", "", "Description of the purchase")

	for _, name := range []string{"stock", "offset", "expense", "shares", "price"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func (r *buyRunner) Run(ctx context.Context) error {
	req := secacct.BuyStockRequest{Memo: r.flags.Memo}

	if err := resolveAccounts(r.svc.Account,
		accountRef{r.flags.Stock, &req.StockAccountID},
		accountRef{r.flags.Offset, &req.OffsetAccountID},
	); err != nil {
		return err
	}

	var err error
	if req.ExpenseAccountAmounts, err = parseAccountAmounts(r.svc.Account, r.flags.Expenses); err != nil {
		return err
	}
	if req.NofStocks, err = parseOptionalAmount("shares", r.flags.Shares); err != nil {
		return err
	}
	if req.StockPrice, err = parseOptionalAmount("price", r.flags.Price); err != nil {
		return err
	}
	if req.PostDate, err = parseDate(r.flags.Date, time.Now()); err != nil {
		return err
	}

	tx, err := r.svc.Securities.BuyStock(ctx, req)
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
	pterm.Success.Printf("Purchase recorded as transaction #%d\n", tx.ID)
	return nil
}
