package service

import (
	"errors"

	"github.com/hance08/ledgerbank/internal/model"
	"github.com/hance08/ledgerbank/internal/validation"
)

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("wrong account number or password")
	ErrInvalidAdmin       = errors.New("wrong username or password")
	ErrReceiverNotFound   = errors.New("the receiver account not found")
	ErrSameAccount        = errors.New("can't transfer to the same account")
	ErrNumberExhausted    = errors.New("could not generate a unique account number")
)

// IsRejection reports whether err is a validation, policy or lookup failure
// rather than a storage fault.
func IsRejection(err error) bool {
	for _, target := range []error{
		model.ErrInvalidAmount,
		model.ErrWithdrawNotAllowed,
		model.ErrBelowMinimum,
		model.ErrInterestNotSupported,
		model.ErrUnknownVariant,
		validation.ErrInvalidPhone,
		validation.ErrUnknownProvider,
		validation.ErrPasswordMismatch,
		validation.ErrEmptyField,
		validation.ErrInvalidNumber,
		ErrAccountNotFound,
		ErrInvalidCredentials,
		ErrInvalidAdmin,
		ErrReceiverNotFound,
		ErrSameAccount,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
