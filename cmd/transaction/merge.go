package transaction

import (
	"context"

	"github.com/hance08/keasec/internal/model"
	"github.com/hance08/keasec/internal/service"
	"github.com/hance08/keasec/internal/trxmgr"
	"github.com/hance08/keasec/internal/ui"
	"github.com/hance08/keasec/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type mergeFlags struct {
	CopySplit    string
	ReplaceSplit string
	Yes          bool
}

type mergeRunner struct {
	svc   *service.Service
	flags *mergeFlags
}

func NewMergeCmd(svc *service.Service) *cobra.Command {
	flags := &mergeFlags{}

	cmd := &cobra.Command{
		Use:   "merge <survivor-id> <dier-id>",
		Short: "Merge a duplicate transaction into another",
		Long: `Merge two transactions that record the same event. The survivor is
kept and the dier is deleted.

With --copy-split and --replace-split one leg of the dier is carried
over: the survivor's split given by --replace-split is replaced by the
negated value of the dier's split given by --copy-split, booked on the
replaced split's account. Split IDs are written <transaction>:<split>,
as shown by "transaction show".

Both transactions must pass a plausibility check first (same date within
the configured tolerance, matching totals per account category).

Example: keasec transaction merge 12 14 --copy-split 14:31 --replace-split 12:27`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &mergeRunner{svc: svc, flags: flags}
			return runner.Run(cmd.Context(), args)
		},
	}

	cmd.Flags().StringVar(&flags.CopySplit, "copy-split", "", "Dier split to carry over (<transaction>:<split>)")
	cmd.Flags().StringVar(&flags.ReplaceSplit, "replace-split", "", "Survivor split to replace (<transaction>:<split>)")
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.MarkFlagsRequiredTogether("copy-split", "replace-split")

	return cmd
}

func (r *mergeRunner) strategy() (trxmgr.Strategy, error) {
	if r.flags.CopySplit == "" {
		return trxmgr.FullRemoval{}, nil
	}

	toCopy, err := model.ParseQualifiedSplitID(r.flags.CopySplit)
	if err != nil {
		return nil, err
	}
	toReplace, err := model.ParseQualifiedSplitID(r.flags.ReplaceSplit)
	if err != nil {
		return nil, err
	}
	return trxmgr.SplitReplacement{SplitToCopy: toCopy, SplitToReplace: toReplace}, nil
}

func (r *mergeRunner) Run(ctx context.Context, args []string) error {
	survivorID, err := parseTransactionID(args[0])
	if err != nil {
		return err
	}
	dierID, err := parseTransactionID(args[1])
	if err != nil {
		return err
	}

	strategy, err := r.strategy()
	if err != nil {
		return err
	}

	if !r.flags.Yes {
		survivor, err := r.svc.Transaction.GetTransactionByID(survivorID)
		if err != nil {
			return err
		}
		dier, err := r.svc.Transaction.GetTransactionByID(dierID)
		if err != nil {
			return err
		}
		if err := views.RenderMergePreview(survivor, dier, strategy); err != nil {
			return err
		}

		confirmed, err := ui.Confirm("Merge these transactions?")
		if err != nil {
			return err
		}
		if !confirmed {
			pterm.Info.Println("Merge cancelled")
			return nil
		}
	}

	res, err := r.svc.Reconciler.Merge(ctx, survivorID, dierID, strategy)
	if err != nil {
		return err
	}
	return views.RenderMergeResult(res)
}
