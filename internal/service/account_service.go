package service

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/hance08/ledgerbank/internal/config"
	"github.com/hance08/ledgerbank/internal/constants"
	"github.com/hance08/ledgerbank/internal/model"
	"github.com/hance08/ledgerbank/internal/store"
	"github.com/hance08/ledgerbank/internal/utils"
	"github.com/hance08/ledgerbank/internal/validation"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

// CreateAccountInput is the raw admin input for opening an account.
type CreateAccountInput struct {
	Profile         model.Profile
	Variant         string
	InitialBalance  decimal.Decimal
	Password        string
	ConfirmPassword string
}

type AccountService struct {
	repo         store.Repository
	config       *config.Config
	validator    *validation.AccountValidator
	logger       *pterm.Logger
	interestRate decimal.Decimal

	numberGen func() int64
	now       func() time.Time
}

func NewAccountService(repo store.Repository, cfg *config.Config, rate decimal.Decimal, logger *pterm.Logger) (*AccountService, error) {
	lo, hi := cfg.Bank.AccountNumberMin, cfg.Bank.AccountNumberMax
	if lo <= 0 || hi <= lo {
		return nil, fmt.Errorf("invalid account number range [%d, %d)", lo, hi)
	}

	return &AccountService{
		repo:         repo,
		config:       cfg,
		validator:    validation.NewAccountValidator(cfg.Bank.PhonePrefixes),
		logger:       logger,
		interestRate: rate,
		numberGen: func() int64 {
			return lo + rand.Int63n(hi-lo)
		},
		now: time.Now,
	}, nil
}

func (as *AccountService) Validator() *validation.AccountValidator {
	return as.validator
}

// NormalizeProfile applies the display casing used for stored profiles.
func NormalizeProfile(p model.Profile) model.Profile {
	return model.Profile{
		Name:        utils.TitleCase(p.Name),
		Nationality: utils.TitleCase(p.Nationality),
		Gender:      utils.Capitalize(p.Gender),
		Phone:       strings.TrimSpace(p.Phone),
		Document:    utils.TitleCase(p.Document),
	}
}

// CreateAccount validates the input, picks an unused account number and
// stores the account.
func (as *AccountService) CreateAccount(input CreateAccountInput) (*model.Account, error) {
	profile := NormalizeProfile(input.Profile)

	if err := validation.ValidateName(profile.Name); err != nil {
		return nil, fmt.Errorf("name: %w", err)
	}
	if err := as.validator.ValidatePhone(profile.Phone); err != nil {
		return nil, err
	}

	variant, err := model.ParseVariant(input.Variant)
	if err != nil {
		return nil, err
	}
	if input.InitialBalance.LessThan(variant.Minimum()) {
		return nil, fmt.Errorf("%w: initial balance for %s account must be at least %s",
			model.ErrBelowMinimum, variant, utils.FormatAmount(variant.Minimum()))
	}

	if err := validation.ValidatePassword(input.Password); err != nil {
		return nil, err
	}
	if err := validation.ValidatePasswordConfirm(input.Password)(input.ConfirmPassword); err != nil {
		return nil, err
	}

	var acc *model.Account
	err = as.repo.ExecTx(func(repo store.Repository) error {
		number, err := as.generateAccountNumber(repo)
		if err != nil {
			return err
		}

		acc, err = model.NewAccount(number, profile, variant, input.InitialBalance, input.Password)
		if err != nil {
			return err
		}
		acc.InterestRate = as.interestRate
		acc.CreatedAt = as.now().Truncate(time.Second)

		_, err = repo.CreateAccount(toAccountRow(acc))
		return err
	})
	if err != nil {
		as.logger.Error("create account failed", as.logger.Args("name", profile.Name, "error", err))
		return nil, err
	}

	as.logger.Info("account created", as.logger.Args(
		"account", acc.Number,
		"type", acc.Variant,
		"balance", utils.FormatAmount(acc.Balance()),
	))
	return acc, nil
}

func (as *AccountService) generateAccountNumber(repo store.AccountRepository) (int64, error) {
	attempts := as.config.Bank.NumberAttempts
	if attempts <= 0 {
		attempts = constants.AccountNumberAttempts
	}

	for attempt := 0; attempt < attempts; attempt++ {
		number := as.numberGen()

		exists, err := repo.AccountNumberExists(number)
		if err != nil {
			return 0, err
		}
		if !exists {
			return number, nil
		}

		as.logger.Warn("account number collision", as.logger.Args(
			"number", number,
			"attempt", fmt.Sprintf("%d/%d", attempt+1, attempts),
		))
	}

	return 0, fmt.Errorf("%w after %d attempts", ErrNumberExhausted, attempts)
}

// DeleteAccount removes the account matching both name and number, and its history.
func (as *AccountService) DeleteAccount(name string, number int64) error {
	err := as.repo.ExecTx(func(repo store.Repository) error {
		if _, err := repo.GetAccountByNameAndNumber(name, number); err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				return fmt.Errorf("%w: '%s' with number %d", ErrAccountNotFound, name, number)
			}
			return err
		}

		removed, err := repo.DeleteTransactionsByAccount(number)
		if err != nil {
			return err
		}
		if err := repo.DeleteAccount(name, number); err != nil {
			return err
		}

		as.logger.Info("account deleted", as.logger.Args("account", number, "transactions", removed))
		return nil
	})
	if err != nil && !IsRejection(err) {
		as.logger.Error("delete account failed", as.logger.Args("account", number, "error", err))
	}
	return err
}

// Summary looks an account up by its exact (name, number) pair.
func (as *AccountService) Summary(name string, number int64) (*model.Account, error) {
	row, err := as.repo.GetAccountByNameAndNumber(name, number)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: '%s' with number %d", ErrAccountNotFound, name, number)
		}
		return nil, err
	}
	return toModelAccount(row, as.interestRate)
}

// LoadAccount rebuilds the account with the variant stored for it.
func (as *AccountService) LoadAccount(number int64) (*model.Account, error) {
	return loadAccount(as.repo, number, as.interestRate, ErrAccountNotFound)
}

func (as *AccountService) CheckBalance(number int64) (model.Variant, decimal.Decimal, error) {
	acc, err := as.LoadAccount(number)
	if err != nil {
		return "", decimal.Zero, err
	}
	return acc.Variant, acc.Balance(), nil
}

// Login requires the number and plaintext password to match a stored pair.
func (as *AccountService) Login(number int64, password string) (*model.Account, error) {
	acc, err := as.LoadAccount(number)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			as.logger.Debug("client login rejected", as.logger.Args("account", number))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !acc.CheckPassword(password) {
		as.logger.Debug("client login rejected", as.logger.Args("account", number))
		return nil, ErrInvalidCredentials
	}
	return acc, nil
}

func (as *AccountService) ListAccounts() ([]*model.Account, error) {
	rows, err := as.repo.GetAllAccounts()
	if err != nil {
		return nil, err
	}

	accounts := make([]*model.Account, 0, len(rows))
	for _, row := range rows {
		acc, err := toModelAccount(row, as.interestRate)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}
