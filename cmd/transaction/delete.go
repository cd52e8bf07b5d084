package transaction

import (
	"github.com/hance08/keasec/internal/service"
	"github.com/hance08/keasec/internal/ui"
	"github.com/hance08/keasec/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type deleteRunner struct {
	svc *service.Service
	yes bool
}

func NewDeleteCmd(svc *service.Service) *cobra.Command {
	runner := &deleteRunner{svc: svc}

	cmd := &cobra.Command{
		Use:   "delete <transaction-id>",
		Short: "Delete a transaction",
		Long:  `Delete a transaction and all its associated splits. This action cannot be undone.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runner.Run(args)
		},
	}

	cmd.Flags().BoolVarP(&runner.yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (r *deleteRunner) Run(args []string) error {
	txID, err := parseTransactionID(args[0])
	if err != nil {
		return err
	}

	detail, err := r.svc.Transaction.GetTransactionByID(txID)
	if err != nil {
		return err
	}

	views.RenderTransactionDeletePreview(detail)

	if !r.yes {
		confirmed, err := ui.Confirm("Do you want to delete this transaction?")
		if err != nil {
			return err
		}
		if !confirmed {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	if err := r.svc.Transaction.DeleteTransaction(txID); err != nil {
		return err
	}

	views.RenderTransactionDeleteSuccess(txID)
	return nil
}
