package store

import "github.com/shopspring/decimal"

type Admin struct {
	ID       int64
	Username string
	Password string
}

// Account is the row shape of the accounts table. Decimals are stored as TEXT.
type Account struct {
	ID          int64
	Number      int64
	Name        string
	Nationality string
	Gender      string
	Phone       string
	Document    string
	Type        string
	Balance     decimal.Decimal
	Password    string
	CreatedAt   int64
}

type Transaction struct {
	ID            int64
	Name          string
	AccountNumber int64
	Kind          string
	Amount        decimal.Decimal
	Balance       decimal.Decimal
	Reference     string
	Timestamp     int64
}
