package test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"podhost/internal/db"
)

// NewMockStore returns a Store backed by a sqlmock connection.
func NewMockStore(t *testing.T) (*db.Store, sqlmock.Sqlmock) {
	mockDb, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	t.Cleanup(func() {
		mockDb.Close()
	})

	sqlxDB := sqlx.NewDb(mockDb, "sqlmock")
	return db.NewStore(sqlxDB), mock
}
