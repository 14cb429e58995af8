package views

import (
	"fmt"

	"github.com/hance08/ledgerbank/internal/constants"
	"github.com/hance08/ledgerbank/internal/model"
	"github.com/hance08/ledgerbank/internal/ui"
	"github.com/hance08/ledgerbank/internal/utils"
	"github.com/pterm/pterm"
)

// AccountSummaryData is the fixed field set of an account summary.
func AccountSummaryData(acc *model.Account) pterm.TableData {
	return pterm.TableData{
		{pterm.Blue("Name"), acc.Profile.Name},
		{pterm.Blue("Gender"), acc.Profile.Gender},
		{pterm.Blue("Nationality"), acc.Profile.Nationality},
		{pterm.Blue("Phone Number"), acc.Profile.Phone},
		{pterm.Blue("Account Type"), acc.Variant.String()},
		{pterm.Blue("Bank Account Number"), fmt.Sprintf("%d", acc.Number)},
		{pterm.Blue("Balance"), utils.FormatAmount(acc.Balance())},
		{pterm.Blue("Time"), acc.CreatedAt.Local().Format(constants.DateTimeFormat)},
	}
}

func RenderAccountSummary(acc *model.Account) error {
	pterm.DefaultSection.Println("Client Information Summary")
	return pterm.DefaultTable.WithData(AccountSummaryData(acc)).Render()
}

func RenderAccountCreated(acc *model.Account) error {
	ui.Separator()

	if err := RenderAccountSummary(acc); err != nil {
		return err
	}

	pterm.Success.Printf("Account created successfully! (Number: %d)\n", acc.Number)
	return nil
}

// RenderBalance shows the variant and balance of one account.
func RenderBalance(number int64, variant model.Variant, balance string) error {
	pterm.DefaultSection.Println("Client Information Balance")

	tableData := pterm.TableData{
		{pterm.Blue("Bank Account Number"), fmt.Sprintf("%d", number)},
		{pterm.Blue("Account Type"), variant.String()},
		{pterm.Blue("Balance"), balance},
	}
	return pterm.DefaultTable.WithData(tableData).Render()
}
