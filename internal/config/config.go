package config

import (
	"errors"

	"github.com/hance08/keasec/internal/amount"
	"github.com/hance08/keasec/internal/constants"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	Log        LogConfig      `mapstructure:"log"`
	Policy     Policy         `mapstructure:"policy"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Policy holds the numeric plausibility limits used when building and
// merging transactions.
type Policy struct {
	BalanceTolerance  decimal.Decimal `mapstructure:"balance_tolerance"`
	DateToleranceDays int             `mapstructure:"date_tolerance_days"`

	SplitFactorMin decimal.Decimal `mapstructure:"split_factor_min"`
	SplitFactorMax decimal.Decimal `mapstructure:"split_factor_max"`
	AddSharesMin   decimal.Decimal `mapstructure:"add_shares_min"`
	AddSharesMax   decimal.Decimal `mapstructure:"add_shares_max"`

	// SharePrecision is the number of decimal places a share balance is
	// rounded to when a split factor is applied.
	SharePrecision int32 `mapstructure:"share_precision"`

	// StrictPlausibility turns out-of-band split factors and share counts
	// into errors. When false they are only logged.
	StrictPlausibility bool `mapstructure:"strict_plausibility"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Defaults: DefaultsConfig{Currency: "USD"},
		Log:      LogConfig{Level: "warn", Format: "text"},
		Policy:   DefaultPolicy(),
	}
}

func DefaultPolicy() Policy {
	return Policy{
		BalanceTolerance:   amount.MustParse("0.005"),
		DateToleranceDays:  2,
		SplitFactorMin:     amount.MustParse("1/20"),
		SplitFactorMax:     amount.MustParse("20"),
		AddSharesMin:       amount.MustParse("1"),
		AddSharesMax:       amount.MustParse("99999"),
		SharePrecision:     constants.DefaultSharePrecision,
		StrictPlausibility: true,
	}
}

func (p Policy) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.BalanceTolerance, validation.By(nonNegative)),
		validation.Field(&p.DateToleranceDays, validation.Min(0)),
		validation.Field(&p.SplitFactorMin, validation.By(positive)),
		validation.Field(&p.SplitFactorMax, validation.By(notBelow(p.SplitFactorMin))),
		validation.Field(&p.AddSharesMin, validation.By(positive)),
		validation.Field(&p.AddSharesMax, validation.By(notBelow(p.AddSharesMin))),
		validation.Field(&p.SharePrecision, validation.Min(int32(0)), validation.Max(int32(16))),
	)
}

func nonNegative(value interface{}) error {
	d, _ := value.(decimal.Decimal)
	if d.IsNegative() {
		return errors.New("must not be negative")
	}
	return nil
}

func positive(value interface{}) error {
	d, _ := value.(decimal.Decimal)
	if !d.IsPositive() {
		return errors.New("must be greater than zero")
	}
	return nil
}

func notBelow(lower decimal.Decimal) validation.RuleFunc {
	return func(value interface{}) error {
		d, _ := value.(decimal.Decimal)
		if d.LessThan(lower) {
			return errors.New("must not be below the lower bound")
		}
		return nil
	}
}
