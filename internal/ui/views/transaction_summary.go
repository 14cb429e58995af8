package views

import (
	"github.com/hance08/ledgerbank/internal/model"
	"github.com/hance08/ledgerbank/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

// RenderTransactionResult confirms a balance change.
func RenderTransactionResult(kind model.TransactionKind, amount, balance decimal.Decimal) {
	switch kind {
	case model.KindInterest:
		pterm.Success.Printf("Interest of %s applied. New balance: %s\n",
			utils.FormatAmount(amount), utils.FormatAmount(balance))
	case model.KindTransferSent:
		pterm.Success.Printf("Transfer of %s successful. New balance: %s\n",
			utils.FormatAmount(amount), utils.FormatAmount(balance))
	default:
		pterm.Success.Printf("%s successful. New balance: %s\n", kind, utils.FormatAmount(balance))
	}
}
