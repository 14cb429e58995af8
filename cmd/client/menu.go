package client

import (
	"github.com/hance08/ledgerbank/internal/errhandler"
	"github.com/hance08/ledgerbank/internal/model"
	"github.com/hance08/ledgerbank/internal/service"
	"github.com/hance08/ledgerbank/internal/ui/prompts"
	"github.com/hance08/ledgerbank/internal/ui/views"
	"github.com/pterm/pterm"
)

// RunMenu loops over the client menu for acc until Logout.
func RunMenu(svc *service.Service, acc *model.Account) error {
	s := &session{svc: svc, number: acc.Number}
	welcome(acc)

	for {
		action, err := prompts.PromptClientAction()
		if err != nil {
			if errhandler.IsCancelled(err) {
				return nil
			}
			return err
		}

		var runErr error
		switch action {
		case prompts.ClientBalance:
			runErr = (&balanceRunner{s: s}).Run()
		case prompts.ClientDeposit:
			runErr = (&depositRunner{s: s, flags: &amountFlags{}}).Run()
		case prompts.ClientWithdraw:
			runErr = (&withdrawRunner{s: s, flags: &amountFlags{}}).Run()
		case prompts.ClientTransfer:
			runErr = (&transferRunner{s: s, flags: &transferFlags{}}).Run()
		case prompts.ClientInterest:
			runErr = (&interestRunner{s: s}).Run()
		case prompts.ClientHistory:
			runErr = (&historyRunner{s: s, view: views.NewTransactionListView()}).Run()
		case prompts.Logout:
			pterm.Info.Println("Logging out from Client Portal.")
			return nil
		}

		errhandler.HandleError(runErr)
	}
}
