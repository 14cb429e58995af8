package admin

import (
	"fmt"

	"github.com/hance08/ledgerbank/internal/service"
	"github.com/hance08/ledgerbank/internal/ui"
	"github.com/hance08/ledgerbank/internal/ui/prompts"
	"github.com/hance08/ledgerbank/internal/ui/views"
	"github.com/hance08/ledgerbank/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type refFlags struct {
	Name    string
	Account int64
	Yes     bool
}

type deleteRunner struct {
	svc   *service.Service
	flags *refFlags
	cmd   *cobra.Command
}

func newDeleteCmd(svc *service.Service) *cobra.Command {
	flags := &refFlags{}

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a client account",
		Long: `Delete a client account and its transaction history.

Both the holder name and the account number must match.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &deleteRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Holder full name")
	cmd.Flags().Int64VarP(&flags.Account, "account", "a", 0, "Account number")
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (r *deleteRunner) Run() error {
	ui.PrintL2Title("Delete Client Account")

	name, number, err := accountRef(r.cmd, r.flags)
	if err != nil {
		return err
	}

	acc, err := r.svc.Account.Summary(name, number)
	if err != nil {
		return err
	}
	history, err := r.svc.Transaction.History(number)
	if err != nil {
		return err
	}

	if err := views.RenderDeletePreview(acc, len(history)); err != nil {
		return err
	}

	if !r.flags.Yes {
		confirmed, err := prompts.PromptConfirm("Do you want to delete this account?", false)
		if err != nil {
			return err
		}
		if !confirmed {
			pterm.Info.Println("Deletion cancelled")
			return nil
		}
	}

	if err := r.svc.Account.DeleteAccount(name, number); err != nil {
		return err
	}

	pterm.Success.Printf("The Account Has Been Deleted (#%d)\n", number)
	ui.Separator()
	return nil
}

// accountRef returns the (name, number) pair from flags, or prompts for it.
func accountRef(cmd *cobra.Command, flags *refFlags) (string, int64, error) {
	if !flagsChanged(cmd, "name", "account") {
		return prompts.PromptAccountRef()
	}
	if flags.Name == "" || flags.Account <= 0 {
		return "", 0, fmt.Errorf("when using flags, --name and --account are both required")
	}
	return utils.TitleCase(flags.Name), flags.Account, nil
}
