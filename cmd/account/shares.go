package account

import (
	"github.com/hance08/keasec/internal/service"
	"github.com/hance08/keasec/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type sharesRunner struct {
	svc        *service.Service
	activeOnly bool
}

func NewSharesCmd(svc *service.Service) *cobra.Command {
	runner := &sharesRunner{svc: svc}

	cmd := &cobra.Command{
		Use:   "shares <investment-account>",
		Short: "List the share accounts of an investment account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(args[0])
		},
	}

	cmd.Flags().BoolVar(&runner.activeOnly, "active", false, "Only show accounts currently holding shares")

	return cmd
}

func (r *sharesRunner) Run(investment string) error {
	all, active, err := r.svc.Account.ShareAccounts(investment)
	if err != nil {
		return err
	}

	accounts := all
	title := "Share accounts of " + investment
	if r.activeOnly {
		accounts = active
		title = "Active share accounts of " + investment
	}

	if len(accounts) == 0 {
		pterm.Warning.Println("No share accounts found")
		return nil
	}

	if err := views.NewAccountListView(title).Render(accounts, r.svc.Account.GetAccountBalance); err != nil {
		return err
	}
	if !r.activeOnly {
		pterm.Info.Printf("%d of %d currently hold shares\n", len(active), len(all))
	}
	return nil
}
