package admin

import (
	"github.com/hance08/ledgerbank/internal/service"
	"github.com/hance08/ledgerbank/internal/ui/views"
	"github.com/spf13/cobra"
)

type listRunner struct {
	svc  *service.Service
	view *views.AccountListView
}

func newListCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all client accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				svc:  svc,
				view: views.NewAccountListView(),
			}
			return runner.Run()
		},
	}
}

func (r *listRunner) Run() error {
	accounts, err := r.svc.Account.ListAccounts()
	if err != nil {
		return err
	}
	return r.view.Render(accounts)
}
