package prompts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/keasec/internal/model"
)

// PromptAccountType prompts for account type selection
func PromptAccountType() (model.AccountType, error) {
	options := make([]huh.Option[model.AccountType], 0, len(model.AccountTypes))
	for _, t := range model.AccountTypes {
		options = append(options, huh.NewOption(string(t), t))
	}

	selected := model.TypeStock
	err := huh.NewSelect[model.AccountType]().
		Title("Account type:").
		Options(options...).
		Value(&selected).
		Height(8).
		Run()
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return selected, nil
}

// PromptParentAccount offers the existing accounts as parents. Choosing
// "(none)" creates a top-level account.
func PromptParentAccount(accounts []*model.Account) (*model.Account, error) {
	byName := make(map[string]*model.Account, len(accounts))
	options := []huh.Option[string]{huh.NewOption("(none)", "")}

	for _, acc := range accounts {
		byName[acc.Name] = acc
		options = append(options, huh.NewOption(fmt.Sprintf("%s [%s]", acc.Name, acc.Type), acc.Name))
	}

	var selected string
	err := huh.NewSelect[string]().
		Title("Parent account:").
		Options(options...).
		Value(&selected).
		Height(10).
		Run()
	if err != nil {
		return nil, fmt.Errorf("input cancelled: %w", err)
	}

	return byName[selected], nil
}

// PromptAccountName prompts for account name with validation
func PromptAccountName(validator func(string) error) (string, error) {
	return PromptInput("Account name:", "", validator)
}

// PromptCurrency prompts for currency selection with common options
func PromptCurrency(defaultCurrency string, isInherited bool, customValidator func(string) error) (string, error) {
	commonCurrencies := []string{
		"USD - US Dollar",
		"EUR - Euro",
		"GBP - British Pound",
		"CHF - Swiss Franc",
		"JPY - Japanese Yen",
		"TWD - Taiwan Dollar",
		"HKD - Hong Kong Dollar",
		"Other (Custom)",
	}

	message := fmt.Sprintf("Currency (default: %s):", defaultCurrency)
	if isInherited {
		message = fmt.Sprintf("Currency (inherited: %s):", defaultCurrency)
	}

	selected, err := PromptSelect(message, commonCurrencies, defaultCurrency)
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}

	if selected == "Other (Custom)" {
		customCurrency, err := PromptInput("Enter currency code:", "", customValidator)
		if err != nil {
			return "", fmt.Errorf("input cancelled: %w", err)
		}
		return strings.ToUpper(strings.TrimSpace(customCurrency)), nil
	}

	return strings.Split(selected, " ")[0], nil
}
