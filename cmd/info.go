package cmd

import (
	"os"

	"github.com/hance08/ledgerbank/internal/app"
	"github.com/hance08/ledgerbank/internal/service"
	"github.com/hance08/ledgerbank/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	svc *service.Service
}

func NewInfoCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, database path, and bank settings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				svc: svc,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	cfg := r.svc.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dbPath, err := app.DatabasePath(cfg)
	if err != nil {
		return err
	}

	dbExists := false
	if _, err := os.Stat(dbPath); err == nil {
		dbExists = true
	}

	items := views.SystemInfoItem{
		ConfigPath:    configPath,
		DBPath:        dbPath,
		DBExists:      dbExists,
		InterestRate:  cfg.Bank.InterestRate,
		PhonePrefixes: cfg.Bank.PhonePrefixes,
		LogLevel:      cfg.Log.Level,
		AppDataDir:    appDataDirOrUnknown(),
	}

	return views.RenderSystemInfo(items)
}

func appDataDirOrUnknown() string {
	dir, err := app.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
