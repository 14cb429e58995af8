package admin

import (
	"errors"

	"github.com/hance08/ledgerbank/internal/service"
	"github.com/hance08/ledgerbank/internal/ui"
	"github.com/hance08/ledgerbank/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

const maxLoginAttempts = 3

type adminFlags struct {
	Username string
	Password string
}

func NewAdminCmd(svc *service.Service) *cobra.Command {
	flags := &adminFlags{}

	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Create, delete and inspect client accounts",
		Long: `Admin operations on client accounts.

Every admin command needs the admin credentials, either as flags or
through the login prompt.

Examples:
  ledgerbank admin list -u admin
  ledgerbank admin summary --name "Jane Doe" --account 4242`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flags.Username == "" {
				return Login(svc)
			}
			return loginWithFlags(svc, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.Username, "username", "u", "", "Admin username")
	cmd.PersistentFlags().StringVarP(&flags.Password, "password", "p", "", "Admin password (prompted when omitted)")

	cmd.AddCommand(newCreateCmd(svc))
	cmd.AddCommand(newDeleteCmd(svc))
	cmd.AddCommand(newSummaryCmd(svc))
	cmd.AddCommand(newListCmd(svc))

	return cmd
}

// Login asks for admin credentials, allowing maxLoginAttempts tries.
func Login(svc *service.Service) error {
	ui.PrintL2Title("Admin Login")

	for attempt := 1; ; attempt++ {
		username, password, err := prompts.PromptAdminLogin()
		if err != nil {
			return err
		}

		err = svc.Admin.Login(username, password)
		if err == nil {
			pterm.Success.Println("Username and Password are correct")
			return nil
		}
		if !errors.Is(err, service.ErrInvalidAdmin) || attempt >= maxLoginAttempts {
			return err
		}
		pterm.Warning.Printf("Wrong username or password, please try again (%d/%d)\n", attempt, maxLoginAttempts)
	}
}

func loginWithFlags(svc *service.Service, flags *adminFlags) error {
	password := flags.Password
	if password == "" {
		var err error
		if password, err = prompts.PromptPassword("Password:", nil); err != nil {
			return err
		}
	}
	return svc.Admin.Login(flags.Username, password)
}

// flagsChanged reports whether any of names was set on cmd. A nil cmd means
// the runner was started from the interactive menu.
func flagsChanged(cmd *cobra.Command, names ...string) bool {
	if cmd == nil {
		return false
	}
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}
