package service

import (
	"errors"

	"github.com/hance08/ledgerbank/internal/store"
)

var errInjected = errors.New("injected failure")

// failingRepo fails the failOn-th CreateTransaction call made inside ExecTx.
type failingRepo struct {
	store.Repository
	failOn int
	calls  int
}

func (r *failingRepo) ExecTx(fn func(store.Repository) error) error {
	return r.Repository.ExecTx(func(inner store.Repository) error {
		return fn(&failingTx{Repository: inner, parent: r})
	})
}

type failingTx struct {
	store.Repository
	parent *failingRepo
}

func (t *failingTx) CreateTransaction(tx store.Transaction) (int64, error) {
	t.parent.calls++
	if t.parent.calls == t.parent.failOn {
		return 0, errInjected
	}
	return t.Repository.CreateTransaction(tx)
}
