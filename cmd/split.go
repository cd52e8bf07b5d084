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

type splitFlags struct {
	Stock     string
	Factor    string
	AddShares string
	Date      string
	Memo      string
}

type splitRunner struct {
	svc   *service.Service
	flags *splitFlags
}

func NewSplitCmd(svc *service.Service) *cobra.Command {
	flags := &splitFlags{}

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Record a stock split",
		Long: `Record a stock split, given either as the factor new/old shares
(--factor 2, --factor 1/10) or as the number of shares added
(--add-shares 100, negative for a reverse split).

Example: keasec split --stock Assets:Broker:ACME --factor 3/2 --date 2026-10-16`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &splitRunner{svc: svc, flags: flags}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&flags.Stock, "stock", "s", "", "Stock account being split")
	cmd.Flags().StringVarP(&flags.Factor, "factor", "f", "", "Split factor, new shares per old share")
	cmd.Flags().StringVarP(&flags.AddShares, "add-shares", "a", "", "Number of shares added by the split")
	cmd.Flags().StringVarP(&flags.Date, "date", "d", "", "Date posted (YYYY-MM-DD, default today)")
	cmd.Flags().StringVarP(&flags.Memo, "memo", "m", "", "Description of the split")

	_ = cmd.MarkFlagRequired("stock")
	cmd.MarkFlagsMutuallyExclusive("factor", "add-shares")
	cmd.MarkFlagsOneRequired("factor", "add-shares")

	return cmd
}

func (r *splitRunner) Run(ctx context.Context) error {
	req := secacct.StockSplitRequest{
		Variant: secacct.SplitByFactor,
		Memo:    r.flags.Memo,
	}

	var err error
	if req.StockAccountID, err = r.svc.Account.ResolveID(r.flags.Stock); err != nil {
		return err
	}

	flagName, magnitude := "factor", r.flags.Factor
	if r.flags.AddShares != "" {
		req.Variant = secacct.SplitByAdditionalShares
		flagName, magnitude = "add-shares", r.flags.AddShares
	}
	if req.Magnitude, err = parseOptionalAmount(flagName, magnitude); err != nil {
		return err
	}
	if req.PostDate, err = parseDate(r.flags.Date, time.Now()); err != nil {
		return err
	}

	tx, err := r.svc.Securities.StockSplit(ctx, req)
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
	pterm.Success.Printf("Stock split recorded as transaction #%d\n", tx.ID)
	return nil
}
