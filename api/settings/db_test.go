package settings

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func Test_DBStore_GetSetting(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM setting").
		WithArgs("SELECTED_PRODUCT").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("prod_123"))

	value, ok := NewDBStore(db).GetSetting("SELECTED_PRODUCT")
	assert.True(t, ok)
	assert.Equal(t, "prod_123", value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_DBStore_GetSetting_MissingIsAbsent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM setting").
		WithArgs("NEVER_SET").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, ok := NewDBStore(db).GetSetting("NEVER_SET")
	assert.False(t, ok)
}

func Test_DBStore_SetSetting_Upserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO setting").
		WithArgs("SELECTED_PRODUCT", "prod_456").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, NewDBStore(db).SetSetting("SELECTED_PRODUCT", "prod_456"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
