package account

import (
	"fmt"

	"github.com/hance08/keasec/internal/model"
	"github.com/hance08/keasec/internal/service"
	"github.com/hance08/keasec/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Type       string
	Tree       bool
	ShowHidden bool
}

type ListCommandRunner struct {
	svc   *service.Service
	flags *listFlags
}

func NewListCmd(svc *service.Service) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all accounts with their balances",
		Long: `List all accounts with their current balances. Stock accounts show
their share count with splits applied.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Filter accounts by type (e.g. STOCK)")
	cmd.Flags().BoolVar(&flags.Tree, "tree", false, "Show accounts as a tree")
	cmd.Flags().BoolVar(&flags.ShowHidden, "show-hidden", false, "Show hidden accounts")

	return cmd
}

func (r *ListCommandRunner) Run() error {
	var accounts []*model.Account
	var err error

	if r.flags.Type != "" {
		accType, perr := model.ParseAccountType(r.flags.Type)
		if perr != nil {
			return perr
		}
		accounts, err = r.svc.Account.GetAccountsByType(accType)
	} else {
		accounts, err = r.svc.Account.GetAllAccounts()
	}
	if err != nil {
		return fmt.Errorf("failed to get accounts: %w", err)
	}

	if !r.flags.ShowHidden {
		accounts = filterHiddenAccounts(accounts)
	}

	if r.flags.Tree {
		return views.RenderAccountTree(accounts, r.svc.Account.GetAccountBalance)
	}
	return views.NewAccountListView("Account List").Render(accounts, r.svc.Account.GetAccountBalance)
}

func filterHiddenAccounts(accounts []*model.Account) []*model.Account {
	var filtered []*model.Account
	for _, acc := range accounts {
		if !acc.IsHidden {
			filtered = append(filtered, acc)
		}
	}
	return filtered
}
