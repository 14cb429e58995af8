package validation

import (
	"errors"
	"testing"

	"github.com/hance08/ledgerbank/internal/model"
)

func TestValidatePhone(t *testing.T) {
	v := NewAccountValidator([]string{"010", "011", "012", "015"})

	for _, ok := range []string{"01012345678", "01198765432", "01200000000", "01511111111"} {
		if err := v.ValidatePhone(ok); err != nil {
			t.Errorf("ValidatePhone(%q): %v", ok, err)
		}
	}

	cases := map[string]error{
		"09912345678":  ErrUnknownProvider,
		"01312345678":  ErrUnknownProvider,
		"0101234567":   ErrInvalidPhone,
		"010123456789": ErrInvalidPhone,
		"0101234567a":  ErrInvalidPhone,
		"":             ErrInvalidPhone,
	}
	for in, want := range cases {
		if err := v.ValidatePhone(in); !errors.Is(err, want) {
			t.Errorf("ValidatePhone(%q) = %v, want %v", in, err, want)
		}
	}
}

func TestValidateInitialBalance(t *testing.T) {
	current := ValidateInitialBalance(model.Current)
	saving := ValidateInitialBalance(model.Saving)

	if err := current("2500"); err != nil {
		t.Errorf("current 2500: %v", err)
	}
	if err := current("2499.99"); !errors.Is(err, model.ErrBelowMinimum) {
		t.Errorf("current 2499.99: %v", err)
	}
	if err := saving("2500"); !errors.Is(err, model.ErrBelowMinimum) {
		t.Errorf("saving 2500: %v", err)
	}
	if err := saving("3000"); err != nil {
		t.Errorf("saving 3000: %v", err)
	}
	if err := saving("lots"); err == nil {
		t.Error("non-numeric balance accepted")
	}
}

func TestValidatePasswordConfirm(t *testing.T) {
	check := ValidatePasswordConfirm("s3cret")
	if err := check("s3cret"); err != nil {
		t.Error(err)
	}
	if err := check("S3cret"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("want ErrPasswordMismatch, got %v", err)
	}
}

func TestParseAccountNumber(t *testing.T) {
	n, err := ParseAccountNumber(" 4821 ")
	if err != nil || n != 4821 {
		t.Fatalf("got %d, %v", n, err)
	}
	for _, bad := range []string{"", "abc", "-5", "0", "12.5"} {
		if _, err := ParseAccountNumber(bad); !errors.Is(err, ErrInvalidNumber) {
			t.Errorf("ParseAccountNumber(%q) = %v", bad, err)
		}
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName("  "); !errors.Is(err, ErrEmptyField) {
		t.Errorf("blank name: %v", err)
	}
	if err := ValidateName("Jane Doe"); err != nil {
		t.Error(err)
	}
}

func TestValidateVariant(t *testing.T) {
	if err := ValidateVariant("saving"); err != nil {
		t.Error(err)
	}
	if err := ValidateVariant("gold"); !errors.Is(err, model.ErrUnknownVariant) {
		t.Errorf("gold: %v", err)
	}
}
