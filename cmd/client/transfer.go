package client

import (
	"fmt"

	"github.com/hance08/ledgerbank/internal/model"
	"github.com/hance08/ledgerbank/internal/ui/prompts"
	"github.com/hance08/ledgerbank/internal/ui/views"
	"github.com/hance08/ledgerbank/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type transferFlags struct {
	To     int64
	Amount string
}

type transferRunner struct {
	s     *session
	flags *transferFlags
	cmd   *cobra.Command
}

func newTransferCmd(s *session) *cobra.Command {
	flags := &transferFlags{}

	cmd := &cobra.Command{
		Use:          "transfer",
		Short:        "Transfer money to another account",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &transferRunner{
				s:     s,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}
	cmd.Flags().Int64Var(&flags.To, "to", 0, "Receiving account number")
	cmd.Flags().StringVar(&flags.Amount, "amount", "", "Amount to transfer")

	return cmd
}

func (r *transferRunner) Run() error {
	to, amount, err := r.input()
	if err != nil {
		return err
	}

	balance, err := r.s.svc.Transaction.Transfer(r.s.number, to, amount)
	if err != nil {
		return err
	}

	views.RenderTransactionResult(model.KindTransferSent, amount, balance)
	return nil
}

func (r *transferRunner) input() (int64, decimal.Decimal, error) {
	if r.cmd == nil || !(r.cmd.Flags().Changed("to") || r.cmd.Flags().Changed("amount")) {
		return prompts.PromptTransfer()
	}

	if r.flags.To <= 0 || r.flags.Amount == "" {
		return 0, decimal.Zero, fmt.Errorf("when using flags, --to and --amount are both required")
	}
	amount, err := utils.ParseAmount(r.flags.Amount)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("invalid amount: %w", err)
	}
	return r.flags.To, amount, nil
}
