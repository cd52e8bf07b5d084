package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type SplitAction string

const (
	ActionNone             SplitAction = ""
	ActionBuyShares        SplitAction = "BUY_SHARES"
	ActionSellShares       SplitAction = "SELL_SHARES"
	ActionDividend         SplitAction = "DIVIDEND"
	ActionDistribution     SplitAction = "DISTRIBUTION"
	ActionReinvestDividend SplitAction = "REINVEST_DIVIDEND"
	ActionAddShares        SplitAction = "ADD_SHARES"
	ActionRemoveShares     SplitAction = "REMOVE_SHARES"
	ActionSplitShares      SplitAction = "SPLIT_SHARES"
	ActionInterestIncome   SplitAction = "INTEREST_INCOME"
)

var SplitActions = []SplitAction{
	ActionBuyShares, ActionSellShares, ActionDividend, ActionDistribution,
	ActionReinvestDividend, ActionAddShares, ActionRemoveShares,
	ActionSplitShares, ActionInterestIncome,
}

func ParseSplitAction(s string) (SplitAction, error) {
	if s == "" {
		return ActionNone, nil
	}
	for _, known := range SplitActions {
		if SplitAction(s) == known {
			return known, nil
		}
	}
	return ActionNone, fmt.Errorf("invalid split action '%s'", s)
}

// Transaction is a balanced set of splits. Memo holds an internal
// provenance note; the user-facing description lives on a split.
type Transaction struct {
	ID          int64
	DatePosted  time.Time
	DateEntered time.Time
	Memo        string
	Splits      []*Split
}

// Split is one leg of a transaction. Shares equals Value for currency
// accounts and holds a share quantity for stock accounts.
type Split struct {
	ID            int64
	TransactionID int64
	AccountID     int64
	Value         decimal.Decimal
	Shares        decimal.Decimal
	Price         decimal.NullDecimal
	Action        SplitAction
	Memo          string
}

func (s *Split) QualifiedID() QualifiedSplitID {
	return QualifiedSplitID{TransactionID: s.TransactionID, SplitID: s.ID}
}

// SumValues adds up the values of all splits.
func (t *Transaction) SumValues() decimal.Decimal {
	sum := decimal.Zero
	for _, s := range t.Splits {
		sum = sum.Add(s.Value)
	}
	return sum
}

// QualifiedSplitID addresses a split together with its owning transaction.
type QualifiedSplitID struct {
	TransactionID int64
	SplitID       int64
}

func (q QualifiedSplitID) IsSet() bool {
	return q.TransactionID != 0 && q.SplitID != 0
}

func (q QualifiedSplitID) String() string {
	return fmt.Sprintf("%d:%d", q.TransactionID, q.SplitID)
}

// ParseQualifiedSplitID reads the "<transaction>:<split>" form produced by String.
func ParseQualifiedSplitID(s string) (QualifiedSplitID, error) {
	trx, splt, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return QualifiedSplitID{}, fmt.Errorf("invalid split ID '%s' (expected <transaction>:<split>)", s)
	}
	trxID, err := strconv.ParseInt(trx, 10, 64)
	if err != nil {
		return QualifiedSplitID{}, fmt.Errorf("invalid transaction part in split ID '%s'", s)
	}
	spltID, err := strconv.ParseInt(splt, 10, 64)
	if err != nil {
		return QualifiedSplitID{}, fmt.Errorf("invalid split part in split ID '%s'", s)
	}
	return QualifiedSplitID{TransactionID: trxID, SplitID: spltID}, nil
}

// AccountAmountPair describes one fee or tax entry of a securities transaction.
type AccountAmountPair struct {
	AccountID int64
	Amount    decimal.Decimal
}

func (p AccountAmountPair) IsSet() bool {
	return p.AccountID != 0
}
