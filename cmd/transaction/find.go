package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hance08/keasec/internal/amount"
	"github.com/hance08/keasec/internal/constants"
	"github.com/hance08/keasec/internal/model"
	"github.com/hance08/keasec/internal/service"
	"github.com/hance08/keasec/internal/trxmgr"
	"github.com/hance08/keasec/internal/ui/views"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type findFlags struct {
	From      string
	To        string
	Memo      string
	MinSplits int
	MaxSplits int

	Account     string
	AccountType string
	Action      string
	Min         string
	Max         string
	MinShares   string
	MaxShares   string
	SplitMemo   string
	Any         bool

	Splits bool
}

type findRunner struct {
	svc   *service.Service
	flags *findFlags
}

func NewFindCmd(svc *service.Service) *cobra.Command {
	flags := &findFlags{}

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Search transactions or splits",
		Long: `Search transactions by date, note and split count, and by the splits
they contain. Split criteria (account, type, action, value and share
ranges, memo) must hold for at least one split, or for every split with
--any=false.

With --splits the split criteria are applied to single splits instead.

Example: keasec transaction find --from 2026-01-01 --action DIVIDEND`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &findRunner{svc: svc, flags: flags}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&flags.From, "from", "", "Posted on or after (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.To, "to", "", "Posted on or before (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flags.Memo, "memo", "", "Transaction note contains")
	cmd.Flags().IntVar(&flags.MinSplits, "min-splits", 0, "At least this many splits")
	cmd.Flags().IntVar(&flags.MaxSplits, "max-splits", 0, "At most this many splits")

	cmd.Flags().StringVarP(&flags.Account, "account", "a", "", "Split is booked on this account")
	cmd.Flags().StringVarP(&flags.AccountType, "type", "t", "", "Split is booked on an account of this type")
	cmd.Flags().StringVar(&flags.Action, "action", "", "Split action (e.g. BUY_SHARES, DIVIDEND, SPLIT_SHARES)")
	cmd.Flags().StringVar(&flags.Min, "min", "", "Split value at least")
	cmd.Flags().StringVar(&flags.Max, "max", "", "Split value at most")
	cmd.Flags().StringVar(&flags.MinShares, "min-shares", "", "Split shares at least")
	cmd.Flags().StringVar(&flags.MaxShares, "max-shares", "", "Split shares at most")
	cmd.Flags().StringVar(&flags.SplitMemo, "split-memo", "", "Split memo contains")
	cmd.Flags().BoolVar(&flags.Any, "any", true, "One matching split is enough")

	cmd.Flags().BoolVar(&flags.Splits, "splits", false, "List matching splits instead of transactions")

	return cmd
}

func (r *findRunner) Run(ctx context.Context) error {
	sf, hasSplitCriteria, err := r.splitFilter()
	if err != nil {
		return err
	}

	if r.flags.Splits {
		return r.findSplits(ctx, sf)
	}

	var opts []trxmgr.TransactionFilterOption
	if r.flags.From != "" {
		from, err := parseDay(r.flags.From)
		if err != nil {
			return err
		}
		opts = append(opts, trxmgr.WithDatePostedFrom(from))
	}
	if r.flags.To != "" {
		to, err := parseDay(r.flags.To)
		if err != nil {
			return err
		}
		opts = append(opts, trxmgr.WithDatePostedTo(to))
	}
	if r.flags.MinSplits != 0 || r.flags.MaxSplits != 0 {
		opts = append(opts, trxmgr.WithSplitCount(r.flags.MinSplits, r.flags.MaxSplits))
	}
	if r.flags.Memo != "" {
		opts = append(opts, trxmgr.WithMemo(r.flags.Memo))
	}
	if hasSplitCriteria {
		logic := trxmgr.SplitLogicAnd
		if r.flags.Any {
			logic = trxmgr.SplitLogicOr
		}
		opts = append(opts, trxmgr.WithSplitFilter(sf, logic))
	}

	found, err := r.svc.Finder.FindTransactions(ctx, trxmgr.NewTransactionFilter(opts...))
	if err != nil {
		return err
	}

	items := make([]*service.TransactionDetail, 0, len(found))
	for _, tx := range found {
		detail, err := r.svc.Transaction.Detail(tx)
		if err != nil {
			return err
		}
		items = append(items, detail)
	}

	return views.NewTransactionListView("Matching transactions").Render(items)
}

func (r *findRunner) splitFilter() (trxmgr.SplitFilter, bool, error) {
	opts := []trxmgr.SplitFilterOption{
		trxmgr.WithTolerance(r.svc.Config.Policy.BalanceTolerance),
	}
	set := false

	if r.flags.Account != "" {
		id, err := r.svc.Account.ResolveID(r.flags.Account)
		if err != nil {
			return trxmgr.SplitFilter{}, false, err
		}
		opts = append(opts, trxmgr.WithAccountID(id))
		set = true
	}
	if r.flags.AccountType != "" {
		accType, err := model.ParseAccountType(r.flags.AccountType)
		if err != nil {
			return trxmgr.SplitFilter{}, false, err
		}
		opts = append(opts, trxmgr.WithAccountType(accType))
		set = true
	}
	if r.flags.Action != "" {
		action, err := model.ParseSplitAction(strings.ToUpper(r.flags.Action))
		if err != nil {
			return trxmgr.SplitFilter{}, false, err
		}
		opts = append(opts, trxmgr.WithAction(action))
		set = true
	}

	minValue, maxValue, err := parseRange("min", r.flags.Min, "max", r.flags.Max)
	if err != nil {
		return trxmgr.SplitFilter{}, false, err
	}
	if minValue.Valid || maxValue.Valid {
		opts = append(opts, trxmgr.WithValueRange(minValue, maxValue))
		set = true
	}

	minShares, maxShares, err := parseRange("min-shares", r.flags.MinShares, "max-shares", r.flags.MaxShares)
	if err != nil {
		return trxmgr.SplitFilter{}, false, err
	}
	if minShares.Valid || maxShares.Valid {
		opts = append(opts, trxmgr.WithSharesRange(minShares, maxShares))
		set = true
	}

	if r.flags.SplitMemo != "" {
		opts = append(opts, trxmgr.WithSplitMemo(r.flags.SplitMemo))
		set = true
	}

	return trxmgr.NewSplitFilter(opts...), set, nil
}

func (r *findRunner) findSplits(ctx context.Context, sf trxmgr.SplitFilter) error {
	splits, err := r.svc.Finder.FindSplits(ctx, sf)
	if err != nil {
		return err
	}

	accounts, err := r.svc.Account.GetAllAccounts()
	if err != nil {
		return err
	}
	names := make(map[int64]string, len(accounts))
	for _, acc := range accounts {
		names[acc.ID] = acc.Name
	}

	return views.RenderSplitList(splits, func(id int64) string {
		if name, ok := names[id]; ok {
			return name
		}
		return fmt.Sprintf("[ID: %d]", id)
	})
}

func parseDay(s string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s' (expected %s)", s, constants.DateFormat)
	}
	return t, nil
}

func parseRange(fromName, from, toName, to string) (decimal.NullDecimal, decimal.NullDecimal, error) {
	var lo, hi decimal.NullDecimal
	if from != "" {
		d, err := amount.Parse(from)
		if err != nil {
			return lo, hi, fmt.Errorf("--%s: %w", fromName, err)
		}
		lo = decimal.NewNullDecimal(d)
	}
	if to != "" {
		d, err := amount.Parse(to)
		if err != nil {
			return lo, hi, fmt.Errorf("--%s: %w", toName, err)
		}
		hi = decimal.NewNullDecimal(d)
	}
	return lo, hi, nil
}
