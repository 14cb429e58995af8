package store

import "github.com/shopspring/decimal"

type AdminRepository interface {
	SeedAdmin(username, password string) (bool, error)
	GetAllAdmins() ([]*Admin, error)
	AdminExists(username, password string) (bool, error)
}

type AccountRepository interface {
	CreateAccount(acc Account) (int64, error)
	GetAllAccounts() ([]*Account, error)
	GetAccountByNumber(number int64) (*Account, error)
	GetAccountByNameAndNumber(name string, number int64) (*Account, error)
	AccountNumberExists(number int64) (bool, error)
	UpdateAccountBalance(number int64, balance decimal.Decimal) error
	DeleteAccount(name string, number int64) error
}

type TransactionRepository interface {
	CreateTransaction(tx Transaction) (int64, error)
	GetTransactionsByAccount(number int64) ([]*Transaction, error)
	DeleteTransactionsByAccount(number int64) (int64, error)
}

type Repository interface {
	AdminRepository
	AccountRepository
	TransactionRepository

	// ExecTx runs fn against a Repository bound to one database transaction.
	ExecTx(fn func(Repository) error) error
	Close() error
}
