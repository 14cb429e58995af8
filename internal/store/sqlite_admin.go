package store

import "fmt"

// SeedAdmin inserts the admin row unless the username is already present.
// It reports whether a row was created.
func (s *Store) SeedAdmin(username, password string) (bool, error) {
	result, err := s.db.Exec(`
        INSERT INTO admins (username, password)
        VALUES (?, ?)
        ON CONFLICT (username) DO NOTHING
    `, username, password)
	if err != nil {
		return false, fmt.Errorf("failed to seed admin '%s': %w", username, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

func (s *Store) GetAllAdmins() ([]*Admin, error) {
	rows, err := s.db.Query(`
        SELECT id, username, password
        FROM admins
        ORDER BY id
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query admins: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var admins []*Admin
	for rows.Next() {
		admin := &Admin{}
		if err := rows.Scan(&admin.ID, &admin.Username, &admin.Password); err != nil {
			return nil, fmt.Errorf("failed to scan admin: %w", err)
		}
		admins = append(admins, admin)
	}

	return admins, rows.Err()
}

func (s *Store) AdminExists(username, password string) (bool, error) {
	var exists bool
	row := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM admins WHERE username = ? AND password = ?)", username, password)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check admin credentials: %w", err)
	}
	return exists, nil
}
