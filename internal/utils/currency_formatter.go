package utils

import (
	"fmt"
	"strings"

	"github.com/hance08/ledgerbank/internal/constants"
	"github.com/shopspring/decimal"
)

func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(constants.AmountPlaces)
}

// ParseAmount accepts plain decimal input such as "150", "150.5" or "-20".
// Thousands separators are tolerated.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(amountStr), ",", "")
	if cleaned == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount: %s", amountStr)
	}

	return amount, nil
}
