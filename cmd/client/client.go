package client

import (
	"fmt"

	"github.com/hance08/ledgerbank/internal/model"
	"github.com/hance08/ledgerbank/internal/service"
	"github.com/hance08/ledgerbank/internal/ui"
	"github.com/hance08/ledgerbank/internal/ui/prompts"
	"github.com/hance08/ledgerbank/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// session is the logged-in client the subcommands act on.
type session struct {
	svc    *service.Service
	number int64
}

type clientFlags struct {
	Account  int64
	Password string
}

func NewClientCmd(svc *service.Service) *cobra.Command {
	flags := &clientFlags{}
	s := &session{svc: svc}

	cmd := &cobra.Command{
		Use:   "client",
		Short: "Operate on your own account",
		Long: `Client operations on a single account.

Examples:
  ledgerbank client balance -a 4242
  ledgerbank client deposit -a 4242 --amount 500
  ledgerbank client transfer -a 4242 --to 1234 --amount 250`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			acc, err := loginWithFlags(svc, flags)
			if err != nil {
				return err
			}
			s.number = acc.Number
			return nil
		},
	}

	cmd.PersistentFlags().Int64VarP(&flags.Account, "account", "a", 0, "Account number")
	cmd.PersistentFlags().StringVarP(&flags.Password, "password", "p", "", "Account password (prompted when omitted)")

	cmd.AddCommand(newBalanceCmd(s))
	cmd.AddCommand(newDepositCmd(s))
	cmd.AddCommand(newWithdrawCmd(s))
	cmd.AddCommand(newTransferCmd(s))
	cmd.AddCommand(newInterestCmd(s))
	cmd.AddCommand(newHistoryCmd(s))

	return cmd
}

// Login asks for an account number and password. One attempt; a failure
// goes back to the caller.
func Login(svc *service.Service) (*model.Account, error) {
	ui.PrintL2Title("Client Login")

	number, password, err := prompts.PromptClientLogin()
	if err != nil {
		return nil, err
	}
	return svc.Account.Login(number, password)
}

func loginWithFlags(svc *service.Service, flags *clientFlags) (*model.Account, error) {
	if flags.Account == 0 {
		return Login(svc)
	}

	password := flags.Password
	if password == "" {
		var err error
		if password, err = prompts.PromptPassword("Password:", nil); err != nil {
			return nil, err
		}
	}
	return svc.Account.Login(flags.Account, password)
}

// amountOrPrompt parses the --amount flag when it was given and prompts
// otherwise.
func amountOrPrompt(cmd *cobra.Command, raw, message string) (decimal.Decimal, error) {
	if cmd != nil && cmd.Flags().Changed("amount") {
		amount, err := utils.ParseAmount(raw)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid amount: %w", err)
		}
		return amount, nil
	}
	return prompts.PromptMoney(message)
}

func welcome(acc *model.Account) {
	pterm.DefaultCenter.Println(pterm.LightCyan(fmt.Sprintf("Welcome %s", acc.Profile.Name)))
}
