package service

import (
	"time"

	"github.com/hance08/keasec/internal/model"
	"github.com/shopspring/decimal"
)

// TransactionDetail represents a transaction with full split details
type TransactionDetail struct {
	ID          int64
	DatePosted  time.Time
	DateEntered time.Time
	Memo        string
	Splits      []SplitDetail
}

type SplitDetail struct {
	ID          int64
	AccountID   int64
	AccountName string
	AccountType model.AccountType
	Currency    string
	Value       decimal.Decimal
	Shares      decimal.Decimal
	Price       decimal.NullDecimal
	Action      model.SplitAction
	Memo        string
}

// Description returns the first non-empty split memo, which is where the
// user's description of a transaction is kept.
func (d *TransactionDetail) Description() string {
	for _, split := range d.Splits {
		if split.Memo != "" {
			return split.Memo
		}
	}
	return ""
}

func (d *TransactionDetail) Total() decimal.Decimal {
	total := decimal.Zero
	for _, split := range d.Splits {
		total = total.Add(split.Value)
	}
	return total
}
