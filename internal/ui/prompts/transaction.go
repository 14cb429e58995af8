package prompts

import (
	"github.com/hance08/ledgerbank/internal/utils"
	"github.com/hance08/ledgerbank/internal/validation"
	"github.com/shopspring/decimal"
)

// PromptMoney prompts for an amount and parses it. Sign rules are left to
// the account operations.
func PromptMoney(message string) (decimal.Decimal, error) {
	raw, err := PromptAmount(message, "e.g. 1500 or 1,500.50", validation.ValidateAmount)
	if err != nil {
		return decimal.Zero, err
	}
	return utils.ParseAmount(raw)
}

// PromptTransfer asks for the receiving account and the amount.
func PromptTransfer() (int64, decimal.Decimal, error) {
	to, err := PromptAccountNumber("Enter the account number you want to transfer to:")
	if err != nil {
		return 0, decimal.Zero, err
	}

	amount, err := PromptMoney("Enter amount to transfer:")
	if err != nil {
		return 0, decimal.Zero, err
	}
	return to, amount, nil
}
