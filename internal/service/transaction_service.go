package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hance08/ledgerbank/internal/model"
	"github.com/hance08/ledgerbank/internal/store"
	"github.com/hance08/ledgerbank/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
)

type TransactionService struct {
	repo         store.Repository
	recorder     *Recorder
	logger       *pterm.Logger
	interestRate decimal.Decimal
}

func NewTransactionService(repo store.Repository, rate decimal.Decimal, logger *pterm.Logger) *TransactionService {
	return &TransactionService{
		repo:         repo,
		recorder:     NewRecorder(),
		logger:       logger,
		interestRate: rate,
	}
}

// accountOp mutates acc and returns the amount to record.
type accountOp func(acc *model.Account) (decimal.Decimal, error)

// apply loads the account, runs op, and persists balance plus history entry
// in one database transaction. A rejected op writes nothing.
func (ts *TransactionService) apply(number int64, kind model.TransactionKind, op accountOp) (*model.Transaction, error) {
	var record *model.Transaction

	err := ts.repo.ExecTx(func(repo store.Repository) error {
		acc, err := loadAccount(repo, number, ts.interestRate, ErrAccountNotFound)
		if err != nil {
			return err
		}

		amount, err := op(acc)
		if err != nil {
			return err
		}

		record, err = ts.recorder.Record(repo, acc, kind, amount, "")
		return err
	})
	if err != nil {
		ts.logFailure(kind, number, err)
		return nil, err
	}

	ts.logger.Info(string(kind), ts.logger.Args(
		"account", number,
		"amount", utils.FormatAmount(record.Amount),
		"balance", utils.FormatAmount(record.Balance),
	))
	return record, nil
}

// Deposit adds amount and returns the new balance. Negative amounts are rejected.
func (ts *TransactionService) Deposit(number int64, amount decimal.Decimal) (decimal.Decimal, error) {
	record, err := ts.apply(number, model.KindDeposit, func(acc *model.Account) (decimal.Decimal, error) {
		_, err := acc.Deposit(amount)
		return amount, err
	})
	if err != nil {
		return decimal.Zero, err
	}
	return record.Balance, nil
}

// Withdraw removes amount and returns the new balance.
func (ts *TransactionService) Withdraw(number int64, amount decimal.Decimal) (decimal.Decimal, error) {
	record, err := ts.apply(number, model.KindWithdraw, func(acc *model.Account) (decimal.Decimal, error) {
		_, err := acc.Withdraw(amount)
		return amount, err
	})
	if err != nil {
		return decimal.Zero, err
	}
	return record.Balance, nil
}

// ApplyInterest credits balance*rate on a Saving account and returns the
// interest and the new balance.
func (ts *TransactionService) ApplyInterest(number int64) (decimal.Decimal, decimal.Decimal, error) {
	record, err := ts.apply(number, model.KindInterest, func(acc *model.Account) (decimal.Decimal, error) {
		interest, _, err := acc.ApplyInterest()
		return interest, err
	})
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return record.Amount, record.Balance, nil
}

// Transfer debits the sender and credits the receiver. Both balance updates
// and both history entries (sent, then received) commit together or not at all.
// It returns the sender's new balance.
func (ts *TransactionService) Transfer(from, to int64, amount decimal.Decimal) (decimal.Decimal, error) {
	if from == to {
		return decimal.Zero, ErrSameAccount
	}

	reference := uuid.NewString()
	var sent *model.Transaction

	err := ts.repo.ExecTx(func(repo store.Repository) error {
		sender, err := loadAccount(repo, from, ts.interestRate, ErrAccountNotFound)
		if err != nil {
			return err
		}
		receiver, err := loadAccount(repo, to, ts.interestRate, ErrReceiverNotFound)
		if err != nil {
			return err
		}

		if _, err := sender.TransferOut(amount); err != nil {
			return err
		}
		if _, err := receiver.TransferIn(amount); err != nil {
			return err
		}

		sent, err = ts.recorder.Record(repo, sender, model.KindTransferSent, amount, reference)
		if err != nil {
			return err
		}
		_, err = ts.recorder.Record(repo, receiver, model.KindTransferReceived, amount, reference)
		return err
	})
	if err != nil {
		ts.logFailure(model.KindTransferSent, from, err)
		return decimal.Zero, err
	}

	ts.logger.Info("Transfer", ts.logger.Args(
		"from", from,
		"to", to,
		"amount", utils.FormatAmount(amount),
		"reference", reference,
	))
	return sent.Balance, nil
}

// History returns the account's records in storage order.
func (ts *TransactionService) History(number int64) ([]*model.Transaction, error) {
	exists, err := ts.repo.AccountNumberExists(number)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: %d", ErrAccountNotFound, number)
	}

	rows, err := ts.repo.GetTransactionsByAccount(number)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction history: %w", err)
	}

	history := make([]*model.Transaction, 0, len(rows))
	for _, row := range rows {
		history = append(history, toModelTransaction(row))
	}
	return history, nil
}

func (ts *TransactionService) logFailure(kind model.TransactionKind, number int64, err error) {
	args := ts.logger.Args("kind", string(kind), "account", number, "error", err)
	if IsRejection(err) {
		ts.logger.Debug("operation rejected", args)
		return
	}
	ts.logger.Error("operation failed", args)
}
