package prompts

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/hance08/ledgerbank/internal/ui"
	"github.com/hance08/ledgerbank/internal/validation"
)

func PromptAdminLogin() (string, string, error) {
	var username string
	if err := survey.AskOne(&survey.Input{Message: "Username:"}, &username,
		ui.IconOption(), survey.WithValidator(survey.Required)); err != nil {
		return "", "", err
	}

	password, err := PromptPassword("Password:", nil)
	if err != nil {
		return "", "", err
	}
	return strings.TrimSpace(username), password, nil
}

func PromptClientLogin() (int64, string, error) {
	var raw string
	if err := survey.AskOne(&survey.Input{Message: "Account Number:"}, &raw,
		ui.IconOption(), survey.WithValidator(ui.StringValidator(validation.ValidateAccountNumber))); err != nil {
		return 0, "", err
	}
	number, err := validation.ParseAccountNumber(raw)
	if err != nil {
		return 0, "", err
	}

	password, err := PromptPassword("Password:", nil)
	if err != nil {
		return 0, "", err
	}
	return number, password, nil
}
