package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

const accountColumns = `id, account_number, name, nationality, gender, phone_number,
        document, account_type, balance, password, created_at`

func (s *Store) CreateAccount(acc Account) (int64, error) {
	stmt, err := s.db.Prepare(`
        INSERT INTO accounts (account_number, name, nationality, gender, phone_number,
            document, account_type, balance, password, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var newID int64

	err = stmt.QueryRow(
		acc.Number, acc.Name, acc.Nationality, acc.Gender, acc.Phone,
		acc.Document, acc.Type, acc.Balance, acc.Password, acc.CreatedAt,
	).Scan(&newID)

	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("failed to create account %d: %w", acc.Number, ErrAccountExists)
		}
		if isConstraintViolation(err) {
			return 0, fmt.Errorf("failed to create account %d: %w: %v", acc.Number, ErrConstraintViolation, err)
		}
		return 0, fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	return newID, nil
}

func (s *Store) GetAllAccounts() ([]*Account, error) {
	rows, err := s.db.Query(`
        SELECT ` + accountColumns + `
        FROM accounts
        ORDER BY account_number
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return s.scanAccounts(rows)
}

func (s *Store) GetAccountByNumber(number int64) (*Account, error) {
	row := s.db.QueryRow("SELECT "+accountColumns+" FROM accounts WHERE account_number = ?", number)

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account %d: %w", number, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account %d: %w", number, err)
	}

	return acc, nil
}

func (s *Store) GetAccountByNameAndNumber(name string, number int64) (*Account, error) {
	row := s.db.QueryRow("SELECT "+accountColumns+" FROM accounts WHERE name = ? AND account_number = ?", name, number)

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account '%s' (%d): %w", name, number, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account '%s' (%d): %w", name, number, err)
	}

	return acc, nil
}

func (s *Store) AccountNumberExists(number int64) (bool, error) {
	var exists bool
	row := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM accounts WHERE account_number = ?)", number)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return exists, nil
}

func (s *Store) UpdateAccountBalance(number int64, balance decimal.Decimal) error {
	result, err := s.db.Exec(`
        UPDATE accounts
        SET balance = ?
        WHERE account_number = ?
    `, balance, number)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("account %d: %w", number, ErrRecordNotFound)
	}

	return nil
}

// DeleteAccount removes the account only when both name and number match.
func (s *Store) DeleteAccount(name string, number int64) error {
	result, err := s.db.Exec(`
        DELETE FROM accounts
        WHERE name = ? AND account_number = ?
    `, name, number)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("account '%s' (%d): %w", name, number, ErrRecordNotFound)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*Account, error) {
	acc := &Account{}
	err := row.Scan(
		&acc.ID, &acc.Number, &acc.Name,
		&acc.Nationality, &acc.Gender, &acc.Phone,
		&acc.Document, &acc.Type, &acc.Balance,
		&acc.Password, &acc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return acc, nil
}

func (s *Store) scanAccounts(rows *sql.Rows) ([]*Account, error) {
	var accounts []*Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}
