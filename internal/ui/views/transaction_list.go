package views

import (
	"fmt"

	"github.com/hance08/ledgerbank/internal/constants"
	"github.com/hance08/ledgerbank/internal/model"
	"github.com/hance08/ledgerbank/internal/utils"
	"github.com/pterm/pterm"
)

type TransactionListView struct{}

func NewTransactionListView() *TransactionListView {
	return &TransactionListView{}
}

// HistoryData builds the history table, oldest first.
func HistoryData(txs []*model.Transaction) pterm.TableData {
	tableData := pterm.TableData{
		{"#", "Time", "Type", "Amount", "Balance", "Reference"},
	}

	for i, tx := range txs {
		amount := utils.FormatAmount(tx.Amount)

		var coloredKind, coloredAmount string
		switch tx.Kind {
		case model.KindWithdraw, model.KindTransferSent:
			coloredKind = pterm.Red(string(tx.Kind))
			coloredAmount = pterm.Red("-" + amount)
		case model.KindDeposit, model.KindTransferReceived:
			coloredKind = pterm.Green(string(tx.Kind))
			coloredAmount = pterm.Green("+" + amount)
		default: // Interest
			coloredKind = pterm.Blue(string(tx.Kind))
			coloredAmount = pterm.Blue("+" + amount)
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", i+1),
			tx.Timestamp.Local().Format(constants.DateTimeFormat),
			coloredKind,
			coloredAmount,
			utils.FormatAmount(tx.Balance),
			shortRef(tx.Reference),
		})
	}
	return tableData
}

func (v *TransactionListView) Render(number int64, txs []*model.Transaction) error {
	if len(txs) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Printf("Transaction history of account %d", number)

	if err := pterm.DefaultTable.WithHasHeader().WithData(HistoryData(txs)).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", len(txs))
	return nil
}

func shortRef(ref string) string {
	if len(ref) > 8 {
		return ref[:8]
	}
	return ref
}
