package config

import (
	"testing"

	"github.com/hance08/ledgerbank/internal/constants"
)

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()

	if cfg.Admin.Username != "admin" || cfg.Admin.Password != "123" {
		t.Fatalf("admin defaults = %+v", cfg.Admin)
	}
	if cfg.Bank.InterestRate != "0.12" {
		t.Fatalf("interest rate = %s", cfg.Bank.InterestRate)
	}
	if cfg.Bank.AccountNumberMin != 1000 || cfg.Bank.AccountNumberMax != 9999 {
		t.Fatalf("number range = [%d, %d)", cfg.Bank.AccountNumberMin, cfg.Bank.AccountNumberMax)
	}
	if len(cfg.Bank.PhonePrefixes) != 4 {
		t.Fatalf("phone prefixes = %v", cfg.Bank.PhonePrefixes)
	}

	// defaults must not alias the package-level slice
	cfg.Bank.PhonePrefixes[0] = "999"
	if constants.DefaultPhonePrefixes[0] != "010" {
		t.Fatal("NewDefault shares the prefix slice with constants")
	}
}
