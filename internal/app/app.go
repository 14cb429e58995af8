package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/ledgerbank/internal/config"
	"github.com/hance08/ledgerbank/internal/logging"
	"github.com/hance08/ledgerbank/internal/service"
	"github.com/hance08/ledgerbank/internal/store"
	"github.com/pterm/pterm"
)

const (
	appDirName = "ledgerbank"
	dbFileName = "ledgerbank.db"
)

type App struct {
	Service *service.Service
	Store   store.Repository
	Logger  *pterm.Logger
}

// NewApp opens the database and the log, builds the services and seeds the
// admin. The returned cleanup closes both.
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	dbPath, err := DatabasePath(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	logFile, err := ExpandPath(cfg.Log.File)
	if err != nil {
		return nil, nil, err
	}
	logger, closeLog, err := logging.Open(cfg.Log.Level, logFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	dbStore, err := store.NewStore(dbPath, migrationFS)
	if err != nil {
		_ = closeLog()
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			pterm.Error.Printf("Error closing DB: %v\n", err)
		}
		if err := closeLog(); err != nil {
			pterm.Error.Printf("Error closing log file: %v\n", err)
		}
	}

	svc, err := service.NewService(dbStore, cfg, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	if err := svc.Admin.SeedAdmin(); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to seed admin: %w", err)
	}

	return &App{
		Service: svc,
		Store:   dbStore,
		Logger:  logger,
	}, cleanup, nil
}

// DatabasePath resolves database.path, defaulting into the app data dir.
func DatabasePath(cfg *config.Config) (string, error) {
	if cfg.Database.Path == "" {
		appDir, err := AppDataDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(appDir, dbFileName), nil
	}
	return ExpandPath(cfg.Database.Path)
}

func AppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+appDirName), nil
	}

	return filepath.Join(configDir, appDirName), nil
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
