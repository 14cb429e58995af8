package client

import (
	"github.com/hance08/ledgerbank/internal/model"
	"github.com/hance08/ledgerbank/internal/ui/views"
	"github.com/spf13/cobra"
)

type withdrawRunner struct {
	s     *session
	flags *amountFlags
	cmd   *cobra.Command
}

func newWithdrawCmd(s *session) *cobra.Command {
	flags := &amountFlags{}

	cmd := &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw money from a Current account",
		Long: `Withdraw money from a Current account.

The balance has to stay above the account minimum. Saving accounts can't
withdraw; use transfer instead.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &withdrawRunner{
				s:     s,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}
	cmd.Flags().StringVar(&flags.Amount, "amount", "", "Amount to withdraw")

	return cmd
}

func (r *withdrawRunner) Run() error {
	amount, err := amountOrPrompt(r.cmd, r.flags.Amount, "Enter amount to withdraw:")
	if err != nil {
		return err
	}

	balance, err := r.s.svc.Transaction.Withdraw(r.s.number, amount)
	if err != nil {
		return err
	}

	views.RenderTransactionResult(model.KindWithdraw, amount, balance)
	return nil
}
