package client

import (
	"github.com/hance08/ledgerbank/internal/model"
	"github.com/hance08/ledgerbank/internal/ui/views"
	"github.com/spf13/cobra"
)

type interestRunner struct {
	s *session
}

func newInterestCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:          "interest",
		Short:        "Apply interest to a Saving account",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return (&interestRunner{s: s}).Run()
		},
	}
}

func (r *interestRunner) Run() error {
	interest, balance, err := r.s.svc.Transaction.ApplyInterest(r.s.number)
	if err != nil {
		return err
	}

	views.RenderTransactionResult(model.KindInterest, interest, balance)
	return nil
}
