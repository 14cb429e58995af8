package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/ledgerbank/cmd/admin"
	"github.com/hance08/ledgerbank/cmd/client"
	"github.com/hance08/ledgerbank/internal/app"
	"github.com/hance08/ledgerbank/internal/config"
	"github.com/hance08/ledgerbank/internal/errhandler"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     *config.Config
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	cfgFile = configFlag(os.Args[1:])
	if err := initConfig(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	application, cleanup, err := app.NewApp(cfg, migrations)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	svc := application.Service

	rootCmd := &cobra.Command{
		Use:   "ledgerbank",
		Short: "ledgerbank is a console banking record-keeper",
		Long: `ledgerbank keeps client bank accounts in a local SQLite database.

Run it without arguments for the interactive Admin/Client portal, or use the
admin and client subcommands for one-shot operations.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runPortal(svc); err != nil {
				errhandler.HandleError(err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", cfgFile, "set the config file path")

	rootCmd.AddCommand(admin.NewAdminCmd(svc))
	rootCmd.AddCommand(client.NewClientCmd(svc))
	rootCmd.AddCommand(NewInfoCmd(svc))

	err = rootCmd.Execute()
	cleanup()
	if err != nil {
		if errhandler.IsCancelled(err) {
			pterm.Warning.Println("Operation Cancelled")
			return
		}
		pterm.Error.Println(errhandler.Capitalize(err.Error()))
		os.Exit(1)
	}
}

// configFlag picks --config out of args before cobra runs, since the
// services are built from the config before the command tree exists.
func configFlag(args []string) string {
	flags := pflag.NewFlagSet("ledgerbank", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.SetOutput(io.Discard)
	flags.Usage = func() {}

	path := flags.StringP("config", "c", "", "")
	_ = flags.Parse(args)
	return *path
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.AppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	setDefaults(config.NewDefault())

	if cfgFile == "" {
		if err := createDefaultConfig(); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("LEDGERBANK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	cfg = config.NewDefault()
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = viper.ConfigFileUsed()

	return nil
}

// setDefaults registers every key so the generated config file lists them
// and AutomaticEnv can override each one.
func setDefaults(d *config.Config) {
	viper.SetDefault("database.path", d.Database.Path)
	viper.SetDefault("admin.username", d.Admin.Username)
	viper.SetDefault("admin.password", d.Admin.Password)
	viper.SetDefault("bank.interest_rate", d.Bank.InterestRate)
	viper.SetDefault("bank.phone_prefixes", d.Bank.PhonePrefixes)
	viper.SetDefault("bank.account_number_min", d.Bank.AccountNumberMin)
	viper.SetDefault("bank.account_number_max", d.Bank.AccountNumberMax)
	viper.SetDefault("bank.number_attempts", d.Bank.NumberAttempts)
	viper.SetDefault("log.level", d.Log.Level)
	viper.SetDefault("log.file", d.Log.File)
}

func createDefaultConfig() error {
	appDir, err := app.AppDataDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
