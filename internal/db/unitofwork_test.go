package db_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/s9hmzyt46y-beep/Laimis/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func insertClient(ctx context.Context, tx db.DBTX, id, name string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO clients (id, name, created_at) VALUES (?, ?, '2025-01-01T00:00:00Z')`, id, name)
	return err
}

func clientCount(t *testing.T, database *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM clients`).Scan(&n))
	return n
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	database, uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertClient(ctx, tx, "c1", "UAB Pavyzdys")
	})
	require.NoError(t, err)
	assert.Equal(t, 1, clientCount(t, database))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertClient(ctx, tx, "c1", "UAB Pavyzdys"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")
	assert.Equal(t, 0, clientCount(t, database), "insert should be rolled back")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertClient(ctx, tx, "c1", "UAB Pavyzdys")
			panic("boom")
		})
	})
	assert.Equal(t, 0, clientCount(t, database), "insert should be rolled back after panic")
}

func TestWithinTx_PartialMultiTableWrite(t *testing.T) {
	// An invoice header insert that succeeds followed by a failing item
	// insert must leave neither row behind.
	database, uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertClient(ctx, tx, "c1", "UAB Pavyzdys"); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO invoices (id, invoice_number, client_id, invoice_date, created_at, updated_at)
			 VALUES ('i1', 'INV-001', 'c1', '2025-01-01', '2025-01-01T00:00:00Z', '2025-01-01T00:00:00Z')`); err != nil {
			return err
		}
		// Violates the FK: no such invoice.
		_, err := tx.ExecContext(ctx,
			`INSERT INTO invoice_items (id, invoice_id, description, created_at)
			 VALUES ('it1', 'missing', 'Consulting', '2025-01-01T00:00:00Z')`)
		return err
	})
	require.Error(t, err)

	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM invoices`).Scan(&n))
	assert.Equal(t, 0, n)
}
