package trxmgr

import (
	"strings"
	"time"

	"github.com/hance08/keasec/internal/amount"
	"github.com/hance08/keasec/internal/config"
	"github.com/hance08/keasec/internal/model"
	"github.com/shopspring/decimal"
)

// SplitLogic tells a TransactionFilter how its split filter applies.
type SplitLogic int

const (
	// SplitLogicAnd requires every split to match.
	SplitLogicAnd SplitLogic = iota
	// SplitLogicOr requires at least one split to match.
	SplitLogicOr
)

func (l SplitLogic) String() string {
	if l == SplitLogicOr {
		return "OR"
	}
	return "AND"
}

// AccountTypeOf resolves the type of the account a split is bound to.
type AccountTypeOf func(accountID int64) (model.AccountType, error)

// SplitFilter is an immutable set of split criteria. Unset criteria match
// everything.
type SplitFilter struct {
	action      *model.SplitAction
	accountID   int64
	accountType model.AccountType
	valueFrom   decimal.NullDecimal
	valueTo     decimal.NullDecimal
	sharesFrom  decimal.NullDecimal
	sharesTo    decimal.NullDecimal
	memoPart    string
	tolerance   decimal.Decimal
}

type SplitFilterOption func(*SplitFilter)

func NewSplitFilter(opts ...SplitFilterOption) SplitFilter {
	f := SplitFilter{tolerance: config.DefaultPolicy().BalanceTolerance}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

func WithAction(action model.SplitAction) SplitFilterOption {
	return func(f *SplitFilter) { f.action = &action }
}

func WithAccountID(id int64) SplitFilterOption {
	return func(f *SplitFilter) { f.accountID = id }
}

func WithAccountType(accType model.AccountType) SplitFilterOption {
	return func(f *SplitFilter) { f.accountType = accType }
}

func WithValueRange(from, to decimal.NullDecimal) SplitFilterOption {
	return func(f *SplitFilter) {
		f.valueFrom = from
		f.valueTo = to
	}
}

func WithSharesRange(from, to decimal.NullDecimal) SplitFilterOption {
	return func(f *SplitFilter) {
		f.sharesFrom = from
		f.sharesTo = to
	}
}

func WithSplitMemo(part string) SplitFilterOption {
	return func(f *SplitFilter) { f.memoPart = strings.TrimSpace(part) }
}

// WithTolerance sets how far a value may lie outside a range and still match.
func WithTolerance(tol decimal.Decimal) SplitFilterOption {
	return func(f *SplitFilter) { f.tolerance = tol }
}

func (f SplitFilter) needsAccountType() bool {
	return f.accountType != ""
}

// Matches evaluates the criteria against split. typeOf is only consulted
// when the filter restricts the account type.
func (f SplitFilter) Matches(split *model.Split, typeOf AccountTypeOf) (bool, error) {
	if f.action != nil && split.Action != *f.action {
		return false, nil
	}
	if f.accountID != 0 && split.AccountID != f.accountID {
		return false, nil
	}
	if f.needsAccountType() {
		t, err := typeOf(split.AccountID)
		if err != nil {
			return false, err
		}
		if t != f.accountType {
			return false, nil
		}
	}
	if !inRange(split.Value, f.valueFrom, f.valueTo, f.tolerance) {
		return false, nil
	}
	if !inRange(split.Shares, f.sharesFrom, f.sharesTo, f.tolerance) {
		return false, nil
	}
	if f.memoPart != "" && !strings.Contains(split.Memo, f.memoPart) {
		return false, nil
	}
	return true, nil
}

func inRange(d decimal.Decimal, from, to decimal.NullDecimal, tol decimal.Decimal) bool {
	if from.Valid && amount.LessThan(d, from.Decimal, tol) {
		return false
	}
	if to.Valid && amount.GreaterThan(d, to.Decimal, tol) {
		return false
	}
	return true
}

// TransactionFilter is an immutable set of transaction criteria, optionally
// combined with a SplitFilter.
type TransactionFilter struct {
	datePostedFrom time.Time
	datePostedTo   time.Time
	nofSplitsFrom  int
	nofSplitsTo    int
	memoPart       string

	splitFilter *SplitFilter
	splitLogic  SplitLogic
}

type TransactionFilterOption func(*TransactionFilter)

func NewTransactionFilter(opts ...TransactionFilterOption) TransactionFilter {
	var f TransactionFilter
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// WithDatePostedFrom and WithDatePostedTo bound the posting date, both ends inclusive.
func WithDatePostedFrom(t time.Time) TransactionFilterOption {
	return func(f *TransactionFilter) { f.datePostedFrom = t }
}

func WithDatePostedTo(t time.Time) TransactionFilterOption {
	return func(f *TransactionFilter) { f.datePostedTo = t }
}

// WithSplitCount bounds the number of splits; zero leaves an end open.
func WithSplitCount(from, to int) TransactionFilterOption {
	return func(f *TransactionFilter) {
		f.nofSplitsFrom = from
		f.nofSplitsTo = to
	}
}

func WithMemo(part string) TransactionFilterOption {
	return func(f *TransactionFilter) { f.memoPart = strings.TrimSpace(part) }
}

func WithSplitFilter(sf SplitFilter, logic SplitLogic) TransactionFilterOption {
	return func(f *TransactionFilter) {
		f.splitFilter = &sf
		f.splitLogic = logic
	}
}

func (f TransactionFilter) DateRange() (from, to time.Time, ok bool) {
	return f.datePostedFrom, f.datePostedTo, !f.datePostedFrom.IsZero() || !f.datePostedTo.IsZero()
}

func (f TransactionFilter) Matches(tx *model.Transaction, typeOf AccountTypeOf) (bool, error) {
	if !f.datePostedFrom.IsZero() && tx.DatePosted.Before(f.datePostedFrom) {
		return false, nil
	}
	if !f.datePostedTo.IsZero() && tx.DatePosted.After(f.datePostedTo) {
		return false, nil
	}
	if f.nofSplitsFrom != 0 && len(tx.Splits) < f.nofSplitsFrom {
		return false, nil
	}
	if f.nofSplitsTo != 0 && len(tx.Splits) > f.nofSplitsTo {
		return false, nil
	}
	if f.memoPart != "" && !strings.Contains(tx.Memo, f.memoPart) {
		return false, nil
	}

	if f.splitFilter == nil {
		return true, nil
	}
	return f.splitsMatch(tx, typeOf)
}

func (f TransactionFilter) splitsMatch(tx *model.Transaction, typeOf AccountTypeOf) (bool, error) {
	for _, split := range tx.Splits {
		ok, err := f.splitFilter.Matches(split, typeOf)
		if err != nil {
			return false, err
		}
		if f.splitLogic == SplitLogicOr && ok {
			return true, nil
		}
		if f.splitLogic == SplitLogicAnd && !ok {
			return false, nil
		}
	}
	return f.splitLogic == SplitLogicAnd, nil
}
