package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/hance08/ledgerbank/internal/model"
	"github.com/hance08/ledgerbank/internal/store"
	"github.com/shopspring/decimal"
)

func toModelAccount(row *store.Account, rate decimal.Decimal) (*model.Account, error) {
	acc, err := model.NewAccount(
		row.Number,
		model.Profile{
			Name:        row.Name,
			Nationality: row.Nationality,
			Gender:      row.Gender,
			Phone:       row.Phone,
			Document:    row.Document,
		},
		model.Variant(row.Type),
		row.Balance,
		row.Password,
	)
	if err != nil {
		return nil, fmt.Errorf("account %d: %w", row.Number, err)
	}
	acc.InterestRate = rate
	acc.CreatedAt = time.Unix(row.CreatedAt, 0)
	return acc, nil
}

func toAccountRow(acc *model.Account) store.Account {
	return store.Account{
		Number:      acc.Number,
		Name:        acc.Profile.Name,
		Nationality: acc.Profile.Nationality,
		Gender:      acc.Profile.Gender,
		Phone:       acc.Profile.Phone,
		Document:    acc.Profile.Document,
		Type:        acc.Variant.String(),
		Balance:     acc.Balance(),
		Password:    acc.Password(),
		CreatedAt:   acc.CreatedAt.Unix(),
	}
}

func toModelTransaction(row *store.Transaction) *model.Transaction {
	return &model.Transaction{
		Name:          row.Name,
		AccountNumber: row.AccountNumber,
		Kind:          model.TransactionKind(row.Kind),
		Amount:        row.Amount,
		Balance:       row.Balance,
		Reference:     row.Reference,
		Timestamp:     time.Unix(row.Timestamp, 0),
	}
}

func toTransactionRow(tx *model.Transaction) store.Transaction {
	return store.Transaction{
		Name:          tx.Name,
		AccountNumber: tx.AccountNumber,
		Kind:          string(tx.Kind),
		Amount:        tx.Amount,
		Balance:       tx.Balance,
		Reference:     tx.Reference,
		Timestamp:     tx.Timestamp.Unix(),
	}
}

func loadAccount(repo store.AccountRepository, number int64, rate decimal.Decimal, notFound error) (*model.Account, error) {
	row, err := repo.GetAccountByNumber(number)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", notFound, number)
		}
		return nil, err
	}
	return toModelAccount(row, rate)
}
