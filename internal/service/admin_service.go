package service

import (
	"github.com/hance08/ledgerbank/internal/config"
	"github.com/hance08/ledgerbank/internal/store"
	"github.com/pterm/pterm"
)

type AdminService struct {
	repo   store.AdminRepository
	config *config.Config
	logger *pterm.Logger
}

func NewAdminService(repo store.AdminRepository, cfg *config.Config, logger *pterm.Logger) *AdminService {
	return &AdminService{repo: repo, config: cfg, logger: logger}
}

// SeedAdmin stores the configured admin credentials if that user is absent.
func (as *AdminService) SeedAdmin() error {
	created, err := as.repo.SeedAdmin(as.config.Admin.Username, as.config.Admin.Password)
	if err != nil {
		return err
	}
	if created {
		as.logger.Info("admin seeded", as.logger.Args("username", as.config.Admin.Username))
	}
	return nil
}

// Login matches the pair against every stored admin, in plaintext.
func (as *AdminService) Login(username, password string) error {
	ok, err := as.repo.AdminExists(username, password)
	if err != nil {
		return err
	}
	if !ok {
		as.logger.Debug("admin login rejected", as.logger.Args("username", username))
		return ErrInvalidAdmin
	}
	return nil
}
