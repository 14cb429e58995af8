package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Profile is the holder information captured when an account is opened.
type Profile struct {
	Name        string
	Nationality string
	Gender      string
	Phone       string
	Document    string
}

// Account is a client account. Balance and password are only reachable
// through methods so the minimum-balance rule lives in one place.
type Account struct {
	Number  int64
	Profile Profile
	Variant Variant
	// InterestRate is used by ApplyInterest on variants that accrue interest.
	InterestRate decimal.Decimal
	CreatedAt    time.Time

	balance  decimal.Decimal
	password string
}

func NewAccount(number int64, profile Profile, variant Variant, balance decimal.Decimal, password string) (*Account, error) {
	if !variant.Valid() {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownVariant, string(variant))
	}
	return &Account{
		Number:   number,
		Profile:  profile,
		Variant:  variant,
		balance:  balance,
		password: password,
	}, nil
}

func (a *Account) Name() string {
	return a.Profile.Name
}

func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

func (a *Account) Password() string {
	return a.password
}

func (a *Account) SetPassword(password string) {
	a.password = password
}

// CheckPassword compares in plaintext, as stored.
func (a *Account) CheckPassword(password string) bool {
	return a.password == password
}

// Deposit adds amount to the balance. Zero is accepted, negatives are not.
func (a *Account) Deposit(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return a.balance, fmt.Errorf("%w: deposit amount can't be negative", ErrInvalidAmount)
	}
	a.balance = a.balance.Add(amount)
	return a.balance, nil
}

// Withdraw takes amount out of the balance if the variant allows it and the
// result stays at or above the variant's minimum.
func (a *Account) Withdraw(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return a.balance, fmt.Errorf("%w: withdraw amount must be positive", ErrInvalidAmount)
	}

	policy, err := a.Variant.Policy()
	if err != nil {
		return a.balance, err
	}
	if !policy.CanWithdraw {
		return a.balance, fmt.Errorf("%w (%s)", ErrWithdrawNotAllowed, a.Variant)
	}

	return a.debit(amount, policy)
}

// TransferOut debits amount for an outgoing transfer. Unlike Withdraw it is
// allowed on every variant; only the minimum applies.
func (a *Account) TransferOut(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return a.balance, fmt.Errorf("%w: transfer amount must be positive", ErrInvalidAmount)
	}

	policy, err := a.Variant.Policy()
	if err != nil {
		return a.balance, err
	}

	return a.debit(amount, policy)
}

// TransferIn credits amount received from another account.
func (a *Account) TransferIn(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return a.balance, fmt.Errorf("%w: transfer amount must be positive", ErrInvalidAmount)
	}
	a.balance = a.balance.Add(amount)
	return a.balance, nil
}

// ApplyInterest adds balance*InterestRate and returns the interest and the new
// balance. Repeated calls compound.
func (a *Account) ApplyInterest() (interest, balance decimal.Decimal, err error) {
	policy, err := a.Variant.Policy()
	if err != nil {
		return decimal.Zero, a.balance, err
	}
	if !policy.AccruesInterest {
		return decimal.Zero, a.balance, ErrInterestNotSupported
	}

	interest = a.balance.Mul(a.InterestRate)
	a.balance = a.balance.Add(interest)
	return interest, a.balance, nil
}

func (a *Account) debit(amount decimal.Decimal, policy Policy) (decimal.Decimal, error) {
	next := a.balance.Sub(amount)
	if next.LessThan(policy.Minimum) {
		return a.balance, fmt.Errorf("%w: minimum for %s is %s", ErrBelowMinimum, a.Variant, policy.Minimum.StringFixed(2))
	}
	a.balance = next
	return a.balance, nil
}
