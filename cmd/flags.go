package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/hance08/keasec/internal/amount"
	"github.com/hance08/keasec/internal/constants"
	"github.com/hance08/keasec/internal/model"
	"github.com/shopspring/decimal"
)

// accountResolver maps account names given on the command line to IDs.
type accountResolver interface {
	ResolveID(name string) (int64, error)
}

// parseDate reads a YYYY-MM-DD date; empty means today.
func parseDate(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse(constants.DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date '%s' (expected %s)", s, constants.DateFormat)
	}
	return t, nil
}

// parseOptionalAmount leaves the result null when s is empty.
func parseOptionalAmount(name, s string) (decimal.NullDecimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := amount.Parse(s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("--%s: %w", name, err)
	}
	return decimal.NewNullDecimal(d), nil
}

// parseAccountAmounts reads repeated ACCOUNT=AMOUNT flags. The last "="
// separates the two so account names may contain one.
func parseAccountAmounts(accounts accountResolver, entries []string) ([]model.AccountAmountPair, error) {
	pairs := make([]model.AccountAmountPair, 0, len(entries))
	for _, entry := range entries {
		idx := strings.LastIndex(entry, "=")
		if idx <= 0 {
			return nil, fmt.Errorf("invalid entry '%s' (expected ACCOUNT=AMOUNT)", entry)
		}

		id, err := accounts.ResolveID(strings.TrimSpace(entry[:idx]))
		if err != nil {
			return nil, err
		}
		amt, err := amount.Parse(entry[idx+1:])
		if err != nil {
			return nil, fmt.Errorf("invalid entry '%s': %w", entry, err)
		}
		pairs = append(pairs, model.AccountAmountPair{AccountID: id, Amount: amt})
	}
	return pairs, nil
}

type accountRef struct {
	name string
	id   *int64
}

// resolveAccounts fills in the IDs of the named accounts, skipping empty names.
func resolveAccounts(accounts accountResolver, refs ...accountRef) error {
	for _, ref := range refs {
		if ref.name == "" {
			continue
		}
		resolved, err := accounts.ResolveID(ref.name)
		if err != nil {
			return err
		}
		*ref.id = resolved
	}
	return nil
}
