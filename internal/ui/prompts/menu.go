package prompts

import "github.com/charmbracelet/huh"

const (
	PortalAdmin  = "Admin portal"
	PortalClient = "Client portal"
	PortalExit   = "Exit"

	AdminCreate  = "Create account"
	AdminDelete  = "Delete account"
	AdminSummary = "Account summary"
	AdminList    = "List accounts"
	Logout       = "Logout"

	ClientBalance  = "Check balance"
	ClientDeposit  = "Deposit"
	ClientWithdraw = "Withdraw"
	ClientTransfer = "Transfer"
	ClientInterest = "Apply interest"
	ClientHistory  = "Transaction history"
)

func PromptPortal() (string, error) {
	return promptMenu("Choose your portal:", PortalAdmin, PortalClient, PortalExit)
}

func PromptAdminAction() (string, error) {
	return promptMenu("Admin Menu:", AdminCreate, AdminDelete, AdminSummary, AdminList, Logout)
}

func PromptClientAction() (string, error) {
	return promptMenu("Client Menu:",
		ClientBalance, ClientDeposit, ClientWithdraw, ClientTransfer,
		ClientInterest, ClientHistory, Logout)
}

func promptMenu(title string, options ...string) (string, error) {
	selected := options[0]

	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}

	err := huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(&selected).
		Run()
	return selected, err
}
