package views

import (
	"fmt"

	"github.com/hance08/ledgerbank/internal/model"
	"github.com/hance08/ledgerbank/internal/utils"
	"github.com/pterm/pterm"
)

// RenderDeletePreview shows what an account deletion will remove.
func RenderDeletePreview(acc *model.Account, records int) error {
	pterm.Warning.Printf("About to delete account #%d:\n", acc.Number)

	deletionInfo := pterm.TableData{
		{"Name", acc.Profile.Name},
		{"Account Type", acc.Variant.String()},
		{"Balance", utils.FormatAmount(acc.Balance())},
		{"Transactions", fmt.Sprint(records)},
	}
	if err := pterm.DefaultTable.WithData(deletionInfo).Render(); err != nil {
		return err
	}

	pterm.Warning.Println("This action cannot be undone!")
	return nil
}
