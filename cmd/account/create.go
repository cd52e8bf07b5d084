package account

import (
	"fmt"
	"strings"

	"github.com/hance08/keasec/internal/constants"
	"github.com/hance08/keasec/internal/model"
	"github.com/hance08/keasec/internal/service"
	"github.com/hance08/keasec/internal/ui"
	"github.com/hance08/keasec/internal/ui/prompts"
	"github.com/hance08/keasec/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type createFlags struct {
	Name        string
	Type        string
	Parent      string
	Currency    string
	Description string
}

// AccountCreator collects the input for a new account, either from flags
// or through interactive prompts.
type AccountCreator struct {
	svc   *service.Service
	input service.CreateAccountInput
}

func NewCreateCmd(svc *service.Service) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account.",
		Long: `Create a new account. Child accounts are named by their parent's full
name plus their own (Assets:Broker:ACME), and get the parent's currency
unless --currency says otherwise.

Without flags the account is built interactively.

Example: keasec account create -n ACME -t STOCK -p Assets:Broker`,
		RunE: func(cmd *cobra.Command, args []string) error {
			creator := &AccountCreator{svc: svc}

			hasFlags := cmd.Flags().Changed("name") ||
				cmd.Flags().Changed("type") ||
				cmd.Flags().Changed("parent")
			if hasFlags {
				return creator.FlagsMode(flags)
			}
			return creator.InteractiveMode()
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Account name (without parent prefix)")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Account type (e.g. STOCK, INVESTMENT, CHECKING, EXPENSE, INCOME)")
	cmd.Flags().StringVarP(&flags.Parent, "parent", "p", "", "Parent account full name")
	cmd.Flags().StringVar(&flags.Currency, "currency", "", "Currency code (defaults to parent's currency or config default)")
	cmd.Flags().StringVarP(&flags.Description, "description", "d", "", "Account description (optional)")

	return cmd
}

// FlagsMode builds an account from command-line flags
func (ac *AccountCreator) FlagsMode(flags *createFlags) error {
	if flags.Type == "" {
		return fmt.Errorf("--type is required")
	}
	accType, err := model.ParseAccountType(flags.Type)
	if err != nil {
		return err
	}

	var parent *model.Account
	if flags.Parent != "" {
		parent, err = ac.svc.Account.GetAccountByName(flags.Parent)
		if err != nil {
			return fmt.Errorf("parent account '%s': %w", flags.Parent, err)
		}
	}

	if err := ac.build(flags.Name, accType, parent, flags.Currency, flags.Description); err != nil {
		return err
	}

	ac.displaySummary()
	return ac.Save()
}

// InteractiveMode builds an account through interactive prompts
func (ac *AccountCreator) InteractiveMode() error {
	accounts, err := ac.svc.Account.GetAllAccounts()
	if err != nil {
		return fmt.Errorf("failed to retrieve accounts: %w", err)
	}

	parent, err := prompts.PromptParentAccount(accounts)
	if err != nil {
		return err
	}

	accType, err := prompts.PromptAccountType()
	if err != nil {
		return err
	}

	name, err := prompts.PromptAccountName(ac.svc.Account.ValidateName)
	if err != nil {
		return err
	}

	defaultCurrency := ac.svc.Config.Defaults.Currency
	if parent != nil {
		defaultCurrency = parent.Currency
	}
	currency, err := prompts.PromptCurrency(defaultCurrency, parent != nil, func(s string) error {
		return validation.ValidateCurrency(s)
	})
	if err != nil {
		return err
	}

	desc, err := prompts.PromptDescription("Description (optional):", false)
	if err != nil {
		return err
	}

	if err := ac.build(name, accType, parent, currency, desc); err != nil {
		return err
	}
	ac.displaySummary()

	confirm, err := prompts.PromptConfirm("Proceed with account creation?", true)
	if err != nil {
		return err
	}
	if !confirm {
		pterm.Info.Println("Account creation cancelled")
		return nil
	}

	return ac.Save()
}

func (ac *AccountCreator) build(name string, accType model.AccountType, parent *model.Account, currency, desc string) error {
	name = strings.TrimSpace(name)
	if err := ac.svc.Account.ValidateName(name); err != nil {
		return err
	}

	ac.input = service.CreateAccountInput{
		Name:        name,
		Type:        accType,
		Currency:    currency,
		Description: desc,
	}
	if parent != nil {
		ac.input.Name = parent.Name + constants.AccountSeparator + name
		ac.input.ParentName = parent.Name
		if currency == "" {
			ac.input.Currency = parent.Currency
		}
	}
	if ac.input.Currency == "" {
		ac.input.Currency = ac.svc.Config.Defaults.Currency
	}
	return nil
}

func (ac *AccountCreator) displaySummary() {
	ui.Separator()

	descStr := ac.input.Description
	if descStr == "" {
		descStr = "None"
	}
	parentStr := ac.input.ParentName
	if parentStr == "" {
		parentStr = "None"
	}

	tableData := pterm.TableData{
		{pterm.Blue("Full Name"), ac.input.Name},
		{pterm.Blue("Type"), string(ac.input.Type)},
		{pterm.Blue("Parent"), parentStr},
		{pterm.Blue("Currency"), strings.ToUpper(ac.input.Currency)},
		{pterm.Blue("Description"), descStr},
	}

	pterm.DefaultTable.WithData(tableData).Render()
}

// Save persists the account to the database
func (ac *AccountCreator) Save() error {
	acc, err := ac.svc.Account.CreateAccount(ac.input)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	ui.Separator()
	tableData := pterm.TableData{
		{pterm.Blue("Account ID"), fmt.Sprintf("%d", acc.ID)},
		{pterm.Blue("Full Name"), acc.Name},
	}
	pterm.DefaultTable.WithData(tableData).Render()
	pterm.Success.Println("Account created successfully!")
	return nil
}
