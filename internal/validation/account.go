package validation

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/hance08/keasec/internal/amount"
	"github.com/hance08/keasec/internal/constants"
	"github.com/hance08/keasec/internal/model"
)

// AccountStore defines the account lookups the validator needs
type AccountStore interface {
	AccountExists(name string) (bool, error)
	GetAccountByName(name string) (*model.Account, error)
}

// AccountValidator handles account validation logic
type AccountValidator struct {
	store AccountStore
}

func NewAccountValidator(store AccountStore) *AccountValidator {
	return &AccountValidator{store: store}
}

// ValidateAccountName validates one segment of an account name (without checking existence)
func (v *AccountValidator) ValidateAccountName(val any) error {
	name, ok := val.(string)
	if !ok {
		return fmt.Errorf("account name must be a string")
	}

	name = strings.TrimSpace(name)
	return validation.Validate(name,
		validation.Required.Error("account name can't be empty"),
		validation.Length(1, constants.MaxNameLen).Error(fmt.Sprintf("account name too long (max %d characters)", constants.MaxNameLen)),
		validation.By(noSeparator),
	)
}

// ValidateFullAccountName validates a qualified name ("Assets:Broker:ACME")
// and checks that it is not taken yet
func (v *AccountValidator) ValidateFullAccountName(fullName string) error {
	if len(fullName) > constants.MaxNameLen {
		return fmt.Errorf("account name too long (max %d characters)", constants.MaxNameLen)
	}

	segments := strings.Split(fullName, constants.AccountSeparator)
	for _, segment := range segments {
		if err := v.ValidateAccountName(segment); err != nil {
			return fmt.Errorf("invalid account name '%s': %w", fullName, err)
		}
	}
	if len(segments) == 1 && constants.ReservedNames[strings.ToLower(fullName)] {
		return fmt.Errorf("'%s' is a reserved root account name", fullName)
	}

	exists, err := v.store.AccountExists(fullName)
	if err != nil {
		return fmt.Errorf("failed to check account existence: %w", err)
	}
	if exists {
		return fmt.Errorf("account '%s' already exists", fullName)
	}

	return nil
}

// ValidateParentAccount validates and retrieves a parent account
func (v *AccountValidator) ValidateParentAccount(name string) (*model.Account, error) {
	if name == "" {
		return nil, fmt.Errorf("parent account name can't be empty")
	}

	parentAccount, err := v.store.GetAccountByName(name)
	if err != nil {
		return nil, fmt.Errorf("parent account not found: %w", err)
	}

	return parentAccount, nil
}

// ValidateCurrency validates an ISO 4217 currency code.
// Accepts both string and any (for survey compatibility)
func ValidateCurrency(val any) error {
	currency, ok := val.(string)
	if !ok {
		return fmt.Errorf("currency code must be a string")
	}

	currency = strings.TrimSpace(strings.ToUpper(currency))
	if currency == "" {
		return nil // Empty is allowed (will use default)
	}

	if err := validation.Validate(currency, is.CurrencyCode); err != nil {
		return fmt.Errorf("currency code must be an ISO 4217 code (e.g. USD)")
	}
	return nil
}

// ValidateAmount checks that input parses as a decimal or fraction
func ValidateAmount(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("amount is required")
	}
	_, err := amount.Parse(input)
	return err
}

func noSeparator(value interface{}) error {
	s, _ := value.(string)
	if strings.Contains(s, constants.AccountSeparator) {
		return fmt.Errorf("account name cannot contain '%s' character", constants.AccountSeparator)
	}
	return nil
}
