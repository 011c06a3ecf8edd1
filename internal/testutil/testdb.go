package testutil

import (
	"database/sql"
	"testing"

	"github.com/s9hmzyt46y-beep/Laimis/internal/db"
)

// NewTestDB opens an in-memory bookkeeping database with the full schema
// migrated and foreign key enforcement active, so cascade deletes behave
// exactly as they do against the on-disk database. The handle is closed
// when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW wraps a test database in the transactional unit of work the
// invoice service uses for header-plus-items writes.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
