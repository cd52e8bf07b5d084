package secacct

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hance08/keasec/internal/model"
	"github.com/shopspring/decimal"
)

type BuyStockRequest struct {
	StockAccountID        int64
	ExpenseAccountAmounts []model.AccountAmountPair
	OffsetAccountID       int64
	NofStocks             decimal.NullDecimal
	StockPrice            decimal.NullDecimal
	PostDate              time.Time
	// Memo is the user's description; it ends up on the offset split.
	Memo string
}

func (r BuyStockRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.StockAccountID, validation.Required),
		validation.Field(&r.OffsetAccountID, validation.Required),
		validation.Field(&r.ExpenseAccountAmounts,
			validation.Required,
			validation.Each(validation.By(pairSet), validation.By(pairPositive)),
		),
		validation.Field(&r.NofStocks, validation.By(presentPositive)),
		validation.Field(&r.StockPrice, validation.By(presentPositive)),
		validation.Field(&r.PostDate, validation.Required),
	)
}

type DividendRequest struct {
	StockAccountID        int64
	IncomeAccountID       int64
	ExpenseAccountAmounts []model.AccountAmountPair
	OffsetAccountID       int64
	Action                model.SplitAction
	// GrossAmount may be negative for reversal postings.
	GrossAmount decimal.NullDecimal
	PostDate    time.Time
	Memo        string
}

func (r DividendRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.StockAccountID, validation.Required),
		validation.Field(&r.IncomeAccountID, validation.Required),
		validation.Field(&r.OffsetAccountID, validation.Required),
		validation.Field(&r.ExpenseAccountAmounts,
			validation.NotNil,
			validation.Each(validation.By(pairSet)),
		),
		validation.Field(&r.Action,
			validation.Required,
			validation.In(model.ActionDividend, model.ActionDistribution),
		),
		validation.Field(&r.GrossAmount, validation.By(present)),
		validation.Field(&r.PostDate, validation.Required),
	)
}

type SplitVariant int

const (
	// SplitByFactor takes the magnitude as the ratio new/old shares.
	SplitByFactor SplitVariant = iota
	// SplitByAdditionalShares takes the magnitude as the number of shares
	// added; negative counts are reverse splits.
	SplitByAdditionalShares
)

func (v SplitVariant) String() string {
	switch v {
	case SplitByFactor:
		return "FACTOR"
	case SplitByAdditionalShares:
		return "ADDITIONAL_SHARES"
	default:
		return "UNKNOWN"
	}
}

type StockSplitRequest struct {
	StockAccountID int64
	Variant        SplitVariant
	Magnitude      decimal.NullDecimal
	PostDate       time.Time
	Memo           string
}

func (r StockSplitRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.StockAccountID, validation.Required),
		validation.Field(&r.Variant, validation.In(SplitByFactor, SplitByAdditionalShares)),
		validation.Field(&r.Magnitude, validation.By(present)),
		validation.Field(&r.PostDate, validation.Required),
	)
}

func pairSet(value interface{}) error {
	pair, _ := value.(model.AccountAmountPair)
	if !pair.IsSet() {
		return errors.New("account must be set")
	}
	return nil
}

func pairPositive(value interface{}) error {
	pair, _ := value.(model.AccountAmountPair)
	if !pair.Amount.IsPositive() {
		return errors.New("amount must be greater than zero")
	}
	return nil
}

func present(value interface{}) error {
	d, _ := value.(decimal.NullDecimal)
	if !d.Valid {
		return errors.New("must be set")
	}
	return nil
}

func presentPositive(value interface{}) error {
	d, _ := value.(decimal.NullDecimal)
	if !d.Valid {
		return errors.New("must be set")
	}
	if !d.Decimal.IsPositive() {
		return errors.New("must be greater than zero")
	}
	return nil
}
