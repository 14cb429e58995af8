package prompts

import (
	"fmt"

	"github.com/hance08/ledgerbank/internal/model"
	"github.com/hance08/ledgerbank/internal/utils"
	"github.com/hance08/ledgerbank/internal/validation"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

// AccountForm is what the admin enters to open an account.
type AccountForm struct {
	Profile         model.Profile
	Variant         model.Variant
	InitialBalance  decimal.Decimal
	Password        string
	ConfirmPassword string
}

// PromptAccountForm walks through the account-opening questions, re-asking
// each field until it passes its validator.
func PromptAccountForm(v *validation.AccountValidator) (*AccountForm, error) {
	var (
		form AccountForm
		err  error
	)

	if form.Profile.Name, err = PromptInput("Full Name:", "", validation.ValidateName); err != nil {
		return nil, err
	}
	if form.Profile.Nationality, err = PromptInput("Nationality:", "", validation.ValidateName); err != nil {
		return nil, err
	}
	if form.Profile.Gender, err = PromptInput("Gender:", "", validation.ValidateName); err != nil {
		return nil, err
	}
	if form.Profile.Phone, err = PromptInput("Phone Number:", "", v.ValidatePhone); err != nil {
		return nil, err
	}
	pterm.Success.Println("Phone Number Accepted")

	if form.Profile.Document, err = PromptInput("Document Submit:", "", validation.ValidateName); err != nil {
		return nil, err
	}

	if form.Variant, err = PromptVariant(); err != nil {
		return nil, err
	}

	help := fmt.Sprintf("At least %s for a %s account", utils.FormatAmount(form.Variant.Minimum()), form.Variant)
	balance, err := PromptAmount("Initial Balance:", help, validation.ValidateInitialBalance(form.Variant))
	if err != nil {
		return nil, err
	}
	if form.InitialBalance, err = utils.ParseAmount(balance); err != nil {
		return nil, err
	}

	if form.Password, err = PromptPassword("Password:", validation.ValidatePassword); err != nil {
		return nil, err
	}
	if form.ConfirmPassword, err = PromptPassword("Confirm password:", validation.ValidatePasswordConfirm(form.Password)); err != nil {
		return nil, err
	}
	pterm.Success.Println("Password Created")

	return &form, nil
}

// PromptVariant prompts for the account type.
func PromptVariant() (model.Variant, error) {
	options := make([]string, 0, len(model.Variants()))
	for _, v := range model.Variants() {
		options = append(options, v.String())
	}

	selected, err := PromptSelect("Account Type:", options, model.Current.String())
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return model.ParseVariant(selected)
}

// PromptAccountRef asks for the (name, number) pair used by delete and summary.
func PromptAccountRef() (string, int64, error) {
	name, err := PromptInput("Client Name:", "", validation.ValidateName)
	if err != nil {
		return "", 0, err
	}

	number, err := PromptAccountNumber("Account Number:")
	if err != nil {
		return "", 0, err
	}
	return utils.TitleCase(name), number, nil
}

func PromptAccountNumber(message string) (int64, error) {
	raw, err := PromptInput(message, "", validation.ValidateAccountNumber)
	if err != nil {
		return 0, err
	}
	return validation.ParseAccountNumber(raw)
}
