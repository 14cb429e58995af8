package store

import (
	"fmt"
)

// CreateTransaction appends one history row. Callers that also move a
// balance wrap both writes in ExecTx.
func (s *Store) CreateTransaction(tx Transaction) (int64, error) {
	stmt, err := s.db.Prepare(`
        INSERT INTO account_transactions (name, account_number, kind, amount, balance, reference, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare transaction SQL: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var newID int64
	err = stmt.QueryRow(
		tx.Name, tx.AccountNumber, tx.Kind,
		tx.Amount, tx.Balance, tx.Reference, tx.Timestamp,
	).Scan(&newID)

	if err != nil {
		if isConstraintViolation(err) {
			return 0, fmt.Errorf("failed to insert transaction for account %d: %w", tx.AccountNumber, ErrConstraintViolation)
		}
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}

	return newID, nil
}

// GetTransactionsByAccount returns the account's history in insertion order.
func (s *Store) GetTransactionsByAccount(number int64) ([]*Transaction, error) {
	rows, err := s.db.Query(`
        SELECT id, name, account_number, kind, amount, balance, reference, created_at
        FROM account_transactions
        WHERE account_number = ?
        ORDER BY id
    `, number)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var transactions []*Transaction
	for rows.Next() {
		tx := &Transaction{}
		err := rows.Scan(
			&tx.ID, &tx.Name, &tx.AccountNumber, &tx.Kind,
			&tx.Amount, &tx.Balance, &tx.Reference, &tx.Timestamp,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

func (s *Store) DeleteTransactionsByAccount(number int64) (int64, error) {
	result, err := s.db.Exec(`
        DELETE FROM account_transactions
        WHERE account_number = ?
    `, number)
	if err != nil {
		return 0, fmt.Errorf("failed to delete transactions: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}
