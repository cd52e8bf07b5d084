package transaction

import (
	"fmt"
	"strconv"

	"github.com/hance08/keasec/internal/service"
	"github.com/spf13/cobra"
)

func NewTransactionCmd(svc *service.Service) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Manage transactions",
		Long:    "Manage transactions: view details, search, delete, or merge duplicates.",
	}

	cmd.AddCommand(NewShowCmd(svc))
	cmd.AddCommand(NewListCmd(svc))
	cmd.AddCommand(NewDeleteCmd(svc))
	cmd.AddCommand(NewMergeCmd(svc))
	cmd.AddCommand(NewFindCmd(svc))

	return cmd
}

func parseTransactionID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid transaction ID: %s", s)
	}
	return id, nil
}
