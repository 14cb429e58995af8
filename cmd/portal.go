package cmd

import (
	"github.com/hance08/ledgerbank/cmd/admin"
	"github.com/hance08/ledgerbank/cmd/client"
	"github.com/hance08/ledgerbank/internal/errhandler"
	"github.com/hance08/ledgerbank/internal/service"
	"github.com/hance08/ledgerbank/internal/ui"
	"github.com/hance08/ledgerbank/internal/ui/prompts"
	"github.com/pterm/pterm"
)

// runPortal is the interactive top level. Failed logins and failed actions
// return here; only Exit or an interrupt leaves.
func runPortal(svc *service.Service) error {
	for {
		ui.PrintL1Title("Welcome to Bank System")

		portal, err := prompts.PromptPortal()
		if err != nil {
			if errhandler.IsCancelled(err) {
				return nil
			}
			return err
		}

		switch portal {
		case prompts.PortalAdmin:
			if err := admin.Login(svc); err != nil {
				errhandler.HandleError(err)
				continue
			}
			if err := admin.RunMenu(svc); err != nil {
				errhandler.HandleError(err)
			}

		case prompts.PortalClient:
			acc, err := client.Login(svc)
			if err != nil {
				errhandler.HandleError(err)
				continue
			}
			if err := client.RunMenu(svc, acc); err != nil {
				errhandler.HandleError(err)
			}

		case prompts.PortalExit:
			pterm.Info.Println("Goodbye!")
			return nil
		}
	}
}
