package admin

import (
	"fmt"

	"github.com/hance08/ledgerbank/internal/model"
	"github.com/hance08/ledgerbank/internal/service"
	"github.com/hance08/ledgerbank/internal/ui/prompts"
	"github.com/hance08/ledgerbank/internal/ui/views"
	"github.com/hance08/ledgerbank/internal/utils"
	"github.com/hance08/ledgerbank/internal/validation"
	"github.com/spf13/cobra"
)

type createFlags struct {
	Name        string
	Nationality string
	Gender      string
	Phone       string
	Document    string
	Type        string
	Balance     string
	Password    string
}

type createRunner struct {
	svc   *service.Service
	flags *createFlags
	cmd   *cobra.Command
}

func newCreateCmd(svc *service.Service) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open a new client account",
		Long: `Open a new client account.

Current accounts need an initial balance of at least 2500 and allow
withdrawals. Saving accounts need at least 3000, accrue interest and
only move money out through transfers.

Examples:
  # Interactive mode
  ledgerbank admin create

  # Quick mode with flags
  ledgerbank admin create --name "jane doe" --phone 01012345678 --type saving --balance 5000`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &createRunner{
				svc:   svc,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Holder full name")
	cmd.Flags().StringVar(&flags.Nationality, "nationality", "", "Holder nationality")
	cmd.Flags().StringVar(&flags.Gender, "gender", "", "Holder gender")
	cmd.Flags().StringVar(&flags.Phone, "phone", "", "Phone number (11 digits)")
	cmd.Flags().StringVar(&flags.Document, "document", "", "Submitted document")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Account type: Current or Saving")
	cmd.Flags().StringVarP(&flags.Balance, "balance", "b", "", "Initial balance")
	cmd.Flags().StringVar(&flags.Password, "client-password", "", "Client password (prompted when omitted)")

	return cmd
}

func (r *createRunner) Run() error {
	var input service.CreateAccountInput
	var err error

	if flagsChanged(r.cmd, "name", "phone", "type", "balance") {
		input, err = r.flagsMode()
	} else {
		input, err = r.interactiveMode()
	}
	if err != nil {
		return err
	}

	acc, err := r.svc.Account.CreateAccount(input)
	if err != nil {
		return fmt.Errorf("account creation failed: %w", err)
	}

	return views.RenderAccountCreated(acc)
}

func (r *createRunner) flagsMode() (service.CreateAccountInput, error) {
	if r.flags.Name == "" || r.flags.Phone == "" || r.flags.Type == "" || r.flags.Balance == "" {
		return service.CreateAccountInput{}, fmt.Errorf("when using flags, --name, --phone, --type, and --balance are all required")
	}

	balance, err := utils.ParseAmount(r.flags.Balance)
	if err != nil {
		return service.CreateAccountInput{}, err
	}

	password, confirm := r.flags.Password, r.flags.Password
	if password == "" {
		if password, err = prompts.PromptPassword("Client password:", validation.ValidatePassword); err != nil {
			return service.CreateAccountInput{}, err
		}
		if confirm, err = prompts.PromptPassword("Confirm password:", nil); err != nil {
			return service.CreateAccountInput{}, err
		}
	}

	return service.CreateAccountInput{
		Profile: model.Profile{
			Name:        r.flags.Name,
			Nationality: r.flags.Nationality,
			Gender:      r.flags.Gender,
			Phone:       r.flags.Phone,
			Document:    r.flags.Document,
		},
		Variant:         r.flags.Type,
		InitialBalance:  balance,
		Password:        password,
		ConfirmPassword: confirm,
	}, nil
}

func (r *createRunner) interactiveMode() (service.CreateAccountInput, error) {
	form, err := prompts.PromptAccountForm(r.svc.Account.Validator())
	if err != nil {
		return service.CreateAccountInput{}, err
	}

	return service.CreateAccountInput{
		Profile:         form.Profile,
		Variant:         form.Variant.String(),
		InitialBalance:  form.InitialBalance,
		Password:        form.Password,
		ConfirmPassword: form.ConfirmPassword,
	}, nil
}
