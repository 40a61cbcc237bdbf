// Package sheet implements the row store over a CSV file, the stand-in for
// the operator's spreadsheet. The first row is a header; data columns are
// positional: name, email, address, country, city, postal code, months,
// trial period, amount, status, subscription id.
package sheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/apptiva/subsheet/api/services/onboarding/app"
)

// 1-based column indexes of the sheet schema. The workflow never sees
// these; it talks to SetStatus / SetSubscriptionID.
const (
	emailColumn          = 2
	StatusColumn         = 10
	SubscriptionIDColumn = 11
)

// Store reads and writes customer rows in a CSV file.
type Store struct {
	path string
}

func New(path string) *Store { return &Store{path: path} }

// ListPendingRecords reads every data row, skipping the header. Numeric
// cells that fail to parse become zero values rather than failing the row.
func (s *Store) ListPendingRecords() ([]app.CustomerRecord, error) {
	rows, err := s.readAll()
	if err != nil {
		return nil, err
	}

	records := []app.CustomerRecord{}
	for i, row := range rows {
		if i == 0 {
			// Skip the header row
			continue
		}
		records = append(records, rowToRecord(row))
	}
	return records, nil
}

// SetField locates the row whose email matches and sets the given 1-based
// column, extending the row when the column does not exist yet. It is a
// silent no-op when no row matches.
func (s *Store) SetField(email string, column int, value string) error {
	if column < 1 {
		return fmt.Errorf("sheet: column %d out of range", column)
	}
	rows, err := s.readAll()
	if err != nil {
		return err
	}

	for i, row := range rows {
		if i == 0 {
			continue
		}
		if cell(row, emailColumn) != email {
			continue
		}
		for len(row) < column {
			row = append(row, "")
		}
		row[column-1] = value
		rows[i] = row
		return s.writeAll(rows)
	}
	return nil
}

func (s *Store) SetStatus(email, value string) error {
	return s.SetField(email, StatusColumn, value)
}

func (s *Store) SetSubscriptionID(email, id string) error {
	return s.SetField(email, SubscriptionIDColumn, id)
}

func (s *Store) readAll() ([][]string, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("sheet: opening %s: %w", s.path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Rows may or may not carry the subscription id column yet.
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("sheet: reading %s: %w", s.path, err)
	}
	return rows, nil
}

func (s *Store) writeAll(rows [][]string) error {
	file, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("sheet: writing %s: %w", s.path, err)
	}
	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		file.Close()
		return fmt.Errorf("sheet: writing %s: %w", s.path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("sheet: writing %s: %w", s.path, err)
	}
	return nil
}

func rowToRecord(row []string) app.CustomerRecord {
	return app.CustomerRecord{
		Name:               cell(row, 1),
		Email:              cell(row, 2),
		Address:            cell(row, 3),
		Country:            cell(row, 4),
		City:               cell(row, 5),
		PostalCode:         cell(row, 6),
		Months:             parseIntCell(cell(row, 7)),
		TrialPeriod:        cell(row, 8),
		Amount:             parseFloatCell(cell(row, 9)),
		SubscriptionStatus: strings.TrimSpace(cell(row, 10)),
	}
}

func cell(row []string, column int) string {
	if column < 1 || column > len(row) {
		return ""
	}
	return row[column-1]
}

func parseIntCell(raw string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func parseFloatCell(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}
