package config

import "github.com/hance08/ledgerbank/internal/constants"

type Config struct {
	Database   DatabaseConfig `mapstructure:"database"`
	Admin      AdminConfig    `mapstructure:"admin"`
	Bank       BankConfig     `mapstructure:"bank"`
	Log        LogConfig      `mapstructure:"log"`
	ConfigPath string         `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// AdminConfig is the credential pair seeded into the store on first start.
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type BankConfig struct {
	InterestRate     string   `mapstructure:"interest_rate"`
	PhonePrefixes    []string `mapstructure:"phone_prefixes"`
	AccountNumberMin int64    `mapstructure:"account_number_min"`
	AccountNumberMax int64    `mapstructure:"account_number_max"`
	NumberAttempts   int      `mapstructure:"number_attempts"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Admin: AdminConfig{
			Username: constants.DefaultAdminUsername,
			Password: constants.DefaultAdminPassword,
		},
		Bank: BankConfig{
			InterestRate:     constants.DefaultInterestRate,
			PhonePrefixes:    append([]string(nil), constants.DefaultPhonePrefixes...),
			AccountNumberMin: constants.AccountNumberMin,
			AccountNumberMax: constants.AccountNumberMax,
			NumberAttempts:   constants.AccountNumberAttempts,
		},
		Log: LogConfig{Level: "warn"},
	}
}
