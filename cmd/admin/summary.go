package admin

import (
	"github.com/hance08/ledgerbank/internal/service"
	"github.com/hance08/ledgerbank/internal/ui"
	"github.com/hance08/ledgerbank/internal/ui/views"
	"github.com/spf13/cobra"
)

type summaryRunner struct {
	svc   *service.Service
	flags *refFlags
	cmd   *cobra.Command
}

func newSummaryCmd(svc *service.Service) *cobra.Command {
	flags := &refFlags{}

	cmd := &cobra.Command{
		Use:          "summary",
		Short:        "Show a client's account summary",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &summaryRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Holder full name")
	cmd.Flags().Int64VarP(&flags.Account, "account", "a", 0, "Account number")

	return cmd
}

func (r *summaryRunner) Run() error {
	ui.PrintL2Title("Check Account Summary")

	name, number, err := accountRef(r.cmd, r.flags)
	if err != nil {
		return err
	}

	acc, err := r.svc.Account.Summary(name, number)
	if err != nil {
		return err
	}
	return views.RenderAccountSummary(acc)
}
