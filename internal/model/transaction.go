package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	KindDeposit          TransactionKind = "Deposit"
	KindWithdraw         TransactionKind = "Withdraw"
	KindTransferSent     TransactionKind = "Transfer Sent"
	KindTransferReceived TransactionKind = "Transfer Received"
	KindInterest         TransactionKind = "Interest"
)

// Transaction is one immutable history entry. Balance is the account balance
// right after the operation.
type Transaction struct {
	Name          string
	AccountNumber int64
	Kind          TransactionKind
	Amount        decimal.Decimal
	Balance       decimal.Decimal
	// Reference is shared by both sides of a transfer.
	Reference string
	Timestamp time.Time
}

// NewTransaction stamps a record for acc's current balance.
func NewTransaction(acc *Account, kind TransactionKind, amount decimal.Decimal, reference string, now time.Time) *Transaction {
	return &Transaction{
		Name:          acc.Name(),
		AccountNumber: acc.Number,
		Kind:          kind,
		Amount:        amount,
		Balance:       acc.Balance(),
		Reference:     reference,
		Timestamp:     now,
	}
}
