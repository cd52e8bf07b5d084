package constants

const (
	// Operation names, used in provenance notes, errors and logs
	OpBuyStock        = "BuyStock"
	OpDividend        = "DividendOrDistribution"
	OpStockSplit      = "StockSplit"
	OpMerge           = "Merge"
	OpPlausibility    = "PlausibilityCheck"
	OpAccountManager  = "AccountManager"
	ProvenanceProgram = "keasec"

	// Date Layout
	DateFormat      = "2006-01-02"
	TimestampFormat = "2006-01-02 15:04:05"

	DefaultListLimit = 20

	// Decimal places kept for share balances after a stock split
	DefaultSharePrecision int32 = 8
)
