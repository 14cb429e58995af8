package model

import "errors"

var (
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrWithdrawNotAllowed   = errors.New("withdrawals are not allowed on this account type")
	ErrBelowMinimum         = errors.New("balance would fall below the minimum allowed")
	ErrInterestNotSupported = errors.New("interest is only available for Saving accounts")
	ErrUnknownVariant       = errors.New("unknown account type")
)
