package account

import (
	"github.com/hance08/keasec/internal/service"
	"github.com/spf13/cobra"
)

func NewAccountCmd(svc *service.Service) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Create accounts and show their balances",
		Long:  `Create accounts, list them with their balances, and show the share accounts of an investment account.`,
	}

	accountCmd.AddCommand(NewCreateCmd(svc))
	accountCmd.AddCommand(NewListCmd(svc))
	accountCmd.AddCommand(NewSharesCmd(svc))

	return accountCmd
}
