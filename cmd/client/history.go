package client

import (
	"github.com/hance08/ledgerbank/internal/ui/views"
	"github.com/spf13/cobra"
)

type historyRunner struct {
	s    *session
	view *views.TransactionListView
}

func newHistoryCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the account's transaction history",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &historyRunner{
				s:    s,
				view: views.NewTransactionListView(),
			}
			return runner.Run()
		},
	}
}

func (r *historyRunner) Run() error {
	txs, err := r.s.svc.Transaction.History(r.s.number)
	if err != nil {
		return err
	}
	return r.view.Render(r.s.number, txs)
}
