package settings

import (
	"database/sql"
	"fmt"
)

// DBStore keeps settings in a Postgres table for installations that keep
// the sheet in the database as well.
type DBStore struct {
	db *sql.DB
}

func NewDBStore(db *sql.DB) DBStore { return DBStore{db: db} }

// EnsureSchema creates the setting table when missing.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS setting (
			name  TEXT PRIMARY KEY,
			value TEXT NOT NULL DEFAULT ''
		)`)
	if err != nil {
		return fmt.Errorf("settings: ensuring schema: %w", err)
	}
	return nil
}

func (s DBStore) GetSetting(name string) (string, bool) {
	var value string
	err := s.db.QueryRow("SELECT value FROM setting WHERE name = $1", name).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

func (s DBStore) SetSetting(name, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO setting (name, value) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value`,
		name, value)
	if err != nil {
		return fmt.Errorf("settings: storing %s: %w", name, err)
	}
	return nil
}
