package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/ledgerbank/internal/model"
	"github.com/hance08/ledgerbank/internal/store"
	"github.com/shopspring/decimal"
)

// Recorder persists a mutated balance together with its history entry.
// Callers run it inside ExecTx so both writes commit or neither does.
type Recorder struct {
	now func() time.Time
}

func NewRecorder() *Recorder {
	return &Recorder{now: time.Now}
}

func (r *Recorder) Record(repo store.Repository, acc *model.Account, kind model.TransactionKind, amount decimal.Decimal, reference string) (*model.Transaction, error) {
	if reference == "" {
		reference = uuid.NewString()
	}

	if err := repo.UpdateAccountBalance(acc.Number, acc.Balance()); err != nil {
		return nil, fmt.Errorf("failed to save balance of account %d: %w", acc.Number, err)
	}

	tx := model.NewTransaction(acc, kind, amount, reference, r.now().Truncate(time.Second))
	if _, err := repo.CreateTransaction(toTransactionRow(tx)); err != nil {
		return nil, fmt.Errorf("failed to record %s for account %d: %w", kind, acc.Number, err)
	}

	return tx, nil
}
