package prompts

import (
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptInitCurrency runs on first start when no default currency is configured.
func PromptInitCurrency(currDefault string, validator func(string) error) (string, error) {
	selection := currDefault

	err := huh.NewSelect[string]().
		Title("Welcome to keasec! Please choose the default currency:").
		Description("New accounts use this currency unless their parent says otherwise.").
		Options(
			huh.NewOption("USD", "USD"),
			huh.NewOption("EUR", "EUR"),
			huh.NewOption("CHF", "CHF"),
			huh.NewOption("GBP", "GBP"),
			huh.NewOption("TWD", "TWD"),
			huh.NewOption("Other", "Other"),
		).
		Value(&selection).
		Run()
	if err != nil {
		return "", err
	}

	if selection != "Other" {
		return selection, nil
	}

	var customInput string
	err = huh.NewInput().
		Title("Please enter the currency code:").
		Description("ISO 4217 three-letter code.").
		Value(&customInput).
		Validate(validator).
		Run()
	if err != nil {
		return "", err
	}

	return strings.ToUpper(strings.TrimSpace(customInput)), nil
}
