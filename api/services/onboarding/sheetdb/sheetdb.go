// Package sheetdb implements the row store over a Postgres table for
// installations that keep the onboarding sheet in a database instead of a
// file. It exposes the same positional SetField contract as package sheet.
package sheetdb

import (
	"database/sql"
	"fmt"

	"github.com/apptiva/subsheet/api/services/onboarding/app"
)

const (
	statusColumn         = 10
	subscriptionIDColumn = 11
)

// Store reads and writes customer rows in the customer_row table.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store { return &Store{db: db} }

// EnsureSchema creates the customer_row table when missing.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS customer_row (
			id              BIGSERIAL PRIMARY KEY,
			name            TEXT NOT NULL DEFAULT '',
			email           TEXT NOT NULL UNIQUE,
			address         TEXT NOT NULL DEFAULT '',
			country         TEXT NOT NULL DEFAULT '',
			city            TEXT NOT NULL DEFAULT '',
			postal_code     TEXT NOT NULL DEFAULT '',
			months          BIGINT NOT NULL DEFAULT 0,
			trial_period    TEXT NOT NULL DEFAULT '',
			amount          DOUBLE PRECISION NOT NULL DEFAULT 0,
			status          TEXT NOT NULL DEFAULT '',
			subscription_id TEXT NOT NULL DEFAULT ''
		)`)
	if err != nil {
		return fmt.Errorf("sheetdb: ensuring schema: %w", err)
	}
	return nil
}

// ListPendingRecords returns every customer row in insertion order.
func (s *Store) ListPendingRecords() ([]app.CustomerRecord, error) {
	rows, err := s.db.Query(`
		SELECT name, email, address, country, city, postal_code,
		       months, trial_period, amount, status
		FROM customer_row
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("sheetdb: listing customer rows: %w", err)
	}
	defer rows.Close()

	records := []app.CustomerRecord{}
	for rows.Next() {
		var rec app.CustomerRecord
		if err := rows.Scan(
			&rec.Name, &rec.Email, &rec.Address, &rec.Country, &rec.City,
			&rec.PostalCode, &rec.Months, &rec.TrialPeriod, &rec.Amount,
			&rec.SubscriptionStatus,
		); err != nil {
			return nil, fmt.Errorf("sheetdb: scanning customer row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sheetdb: listing customer rows: %w", err)
	}
	return records, nil
}

// SetField updates the column at the sheet's positional index for the row
// whose email matches. A missing row is a silent no-op.
func (s *Store) SetField(email string, column int, value string) error {
	var dbColumn string
	switch column {
	case statusColumn:
		dbColumn = "status"
	case subscriptionIDColumn:
		dbColumn = "subscription_id"
	default:
		return fmt.Errorf("sheetdb: no writable column at index %d", column)
	}
	query := fmt.Sprintf("UPDATE customer_row SET %s = $2 WHERE email = $1", dbColumn)
	if _, err := s.db.Exec(query, email, value); err != nil {
		return fmt.Errorf("sheetdb: updating %s: %w", dbColumn, err)
	}
	return nil
}

func (s *Store) SetStatus(email, value string) error {
	return s.SetField(email, statusColumn, value)
}

func (s *Store) SetSubscriptionID(email, id string) error {
	return s.SetField(email, subscriptionIDColumn, id)
}
