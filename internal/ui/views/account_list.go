package views

import (
	"fmt"

	"github.com/hance08/ledgerbank/internal/model"
	"github.com/hance08/ledgerbank/internal/utils"
	"github.com/pterm/pterm"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(accounts []*model.Account) error {
	if len(accounts) == 0 {
		pterm.Warning.Println("No accounts found")
		return nil
	}

	tableData := pterm.TableData{{"Number", "Name", "Type", "Balance"}}

	for _, acc := range accounts {
		var coloredType, coloredBalance string
		balance := utils.FormatAmount(acc.Balance())

		switch acc.Variant {
		case model.Saving:
			coloredType = pterm.Green(acc.Variant.String())
			coloredBalance = pterm.Green(balance)
		default:
			coloredType = pterm.Blue(acc.Variant.String())
			coloredBalance = balance
		}
		tableData = append(tableData, []string{
			fmt.Sprintf("%d", acc.Number),
			acc.Profile.Name,
			coloredType,
			coloredBalance,
		})
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))

	return nil
}
