package admin

import (
	"github.com/hance08/ledgerbank/internal/errhandler"
	"github.com/hance08/ledgerbank/internal/service"
	"github.com/hance08/ledgerbank/internal/ui"
	"github.com/hance08/ledgerbank/internal/ui/prompts"
	"github.com/hance08/ledgerbank/internal/ui/views"
	"github.com/pterm/pterm"
)

// RunMenu loops over the admin menu until Logout. A failed action is
// reported and the menu shown again.
func RunMenu(svc *service.Service) error {
	ui.PrintL1Title("Welcome to Admin Portal")

	for {
		action, err := prompts.PromptAdminAction()
		if err != nil {
			if errhandler.IsCancelled(err) {
				return nil
			}
			return err
		}

		var runErr error
		switch action {
		case prompts.AdminCreate:
			runErr = (&createRunner{svc: svc, flags: &createFlags{}}).Run()
		case prompts.AdminDelete:
			runErr = (&deleteRunner{svc: svc, flags: &refFlags{}}).Run()
		case prompts.AdminSummary:
			runErr = (&summaryRunner{svc: svc, flags: &refFlags{}}).Run()
		case prompts.AdminList:
			runErr = (&listRunner{svc: svc, view: views.NewAccountListView()}).Run()
		case prompts.Logout:
			pterm.Info.Println("Logging out from Admin Portal.")
			return nil
		}

		errhandler.HandleError(runErr)
	}
}
