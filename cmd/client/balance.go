package client

import (
	"github.com/hance08/ledgerbank/internal/ui/views"
	"github.com/hance08/ledgerbank/internal/utils"
	"github.com/spf13/cobra"
)

type balanceRunner struct {
	s *session
}

func newBalanceCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the account balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			return (&balanceRunner{s: s}).Run()
		},
	}
}

func (r *balanceRunner) Run() error {
	variant, balance, err := r.s.svc.Account.CheckBalance(r.s.number)
	if err != nil {
		return err
	}
	return views.RenderBalance(r.s.number, variant, utils.FormatAmount(balance))
}
