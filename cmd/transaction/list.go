package transaction

import (
	"fmt"

	"github.com/hance08/keasec/internal/constants"
	"github.com/hance08/keasec/internal/service"
	"github.com/hance08/keasec/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Account string
	Limit   int
}

type listRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List recent transactions",
		Long: `List recent transactions, newest first, optionally only those touching
one account.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "Filter transactions by account name")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", constants.DefaultListLimit, "Maximum number of transactions to display")

	return cmd
}

func (r *listRunner) Run() error {
	var (
		items []*service.TransactionDetail
		title string
		err   error
	)

	if r.flags.Account != "" {
		items, err = r.svc.Transaction.GetTransactionHistory(r.flags.Account, r.flags.Limit)
		title = fmt.Sprintf("Transactions of %s (limit: %d)", r.flags.Account, r.flags.Limit)
	} else {
		items, err = r.svc.Transaction.GetRecentTransactions(r.flags.Limit)
		title = fmt.Sprintf("Showing recent transactions (limit: %d)", r.flags.Limit)
	}
	if err != nil {
		return fmt.Errorf("failed to get transactions: %w", err)
	}

	return views.NewTransactionListView(title).Render(items)
}
