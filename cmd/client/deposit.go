package client

import (
	"github.com/hance08/ledgerbank/internal/model"
	"github.com/hance08/ledgerbank/internal/ui/views"
	"github.com/spf13/cobra"
)

type amountFlags struct {
	Amount string
}

type depositRunner struct {
	s     *session
	flags *amountFlags
	cmd   *cobra.Command
}

func newDepositCmd(s *session) *cobra.Command {
	flags := &amountFlags{}

	cmd := &cobra.Command{
		Use:          "deposit",
		Short:        "Deposit money into the account",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &depositRunner{
				s:     s,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}
	cmd.Flags().StringVar(&flags.Amount, "amount", "", "Amount to deposit")

	return cmd
}

func (r *depositRunner) Run() error {
	amount, err := amountOrPrompt(r.cmd, r.flags.Amount, "Enter amount to deposit:")
	if err != nil {
		return err
	}

	balance, err := r.s.svc.Transaction.Deposit(r.s.number, amount)
	if err != nil {
		return err
	}

	views.RenderTransactionResult(model.KindDeposit, amount, balance)
	return nil
}
