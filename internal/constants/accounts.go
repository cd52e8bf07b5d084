package constants

const (
	MaxNameLen = 100
	// AccountSeparator joins the segments of a qualified account name.
	AccountSeparator = ":"
)

var ReservedNames = map[string]bool{
	"assets":      true,
	"liabilities": true,
	"equity":      true,
	"income":      true,
	"expenses":    true,
}
