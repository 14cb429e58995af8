package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hance08/ledgerbank/internal/constants"
	"github.com/hance08/ledgerbank/internal/model"
	"github.com/hance08/ledgerbank/internal/utils"
)

var (
	ErrInvalidPhone     = errors.New("invalid phone number")
	ErrUnknownProvider  = errors.New("unknown phone provider")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrEmptyField       = errors.New("field can't be empty")
	ErrInvalidNumber    = errors.New("invalid account number")
)

// AccountValidator checks account-opening input against the configured
// phone provider prefixes.
type AccountValidator struct {
	prefixes []string
}

func NewAccountValidator(prefixes []string) *AccountValidator {
	return &AccountValidator{prefixes: prefixes}
}

// ValidatePhone requires exactly 11 digits starting with a known provider prefix.
func (v *AccountValidator) ValidatePhone(phone string) error {
	phone = strings.TrimSpace(phone)

	if len(phone) != constants.PhoneLength || !isDigits(phone) {
		return fmt.Errorf("%w: must be %d digits", ErrInvalidPhone, constants.PhoneLength)
	}

	for _, prefix := range v.prefixes {
		if strings.HasPrefix(phone, prefix) {
			return nil
		}
	}
	return fmt.Errorf("%w: must start with one of %s", ErrUnknownProvider, strings.Join(v.prefixes, ", "))
}

// ValidateName validates holder name, nationality and similar free text.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return ErrEmptyField
	}

	if len(name) > constants.MaxNameLen {
		return fmt.Errorf("name too long (max %d characters)", constants.MaxNameLen)
	}
	return nil
}

func ValidateVariant(val string) error {
	_, err := model.ParseVariant(val)
	return err
}

// ValidateInitialBalance returns a validator enforcing the variant's minimum.
func ValidateInitialBalance(variant model.Variant) func(string) error {
	return func(input string) error {
		balance, err := utils.ParseAmount(input)
		if err != nil {
			return err
		}

		minimum := variant.Minimum()
		if balance.LessThan(minimum) {
			return fmt.Errorf("%w: initial balance for %s account must be at least %s",
				model.ErrBelowMinimum, variant, utils.FormatAmount(minimum))
		}
		return nil
	}
}

// ValidatePasswordConfirm returns a validator comparing against password.
func ValidatePasswordConfirm(password string) func(string) error {
	return func(confirm string) error {
		if confirm != password {
			return ErrPasswordMismatch
		}
		return nil
	}
}

func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password: %w", ErrEmptyField)
	}
	return nil
}

// ValidateAmount only checks that input parses; sign rules belong to the
// account operations.
func ValidateAmount(input string) error {
	_, err := utils.ParseAmount(input)
	return err
}

func ParseAccountNumber(input string) (int64, error) {
	number, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil || number <= 0 {
		return 0, fmt.Errorf("%w: '%s'", ErrInvalidNumber, input)
	}
	return number, nil
}

func ValidateAccountNumber(input string) error {
	_, err := ParseAccountNumber(input)
	return err
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
