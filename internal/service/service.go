package service

import (
	"fmt"

	"github.com/hance08/ledgerbank/internal/config"
	"github.com/hance08/ledgerbank/internal/store"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

type Service struct {
	Admin       *AdminService
	Account     *AccountService
	Transaction *TransactionService
	Config      *config.Config
}

func NewService(repo store.Repository, cfg *config.Config, logger *pterm.Logger) (*Service, error) {
	rate, err := decimal.NewFromString(cfg.Bank.InterestRate)
	if err != nil {
		return nil, fmt.Errorf("invalid bank.interest_rate '%s': %w", cfg.Bank.InterestRate, err)
	}
	if rate.IsNegative() {
		return nil, fmt.Errorf("bank.interest_rate can't be negative (got %s)", rate)
	}

	accountSvc, err := NewAccountService(repo, cfg, rate, logger)
	if err != nil {
		return nil, err
	}

	return &Service{
		Admin:       NewAdminService(repo, cfg, logger),
		Account:     accountSvc,
		Transaction: NewTransactionService(repo, rate, logger),
		Config:      cfg,
	}, nil
}
