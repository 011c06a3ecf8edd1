package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent
// (CREATE IF NOT EXISTS) so the full list re-runs on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// Money columns are stored as TEXT holding canonical decimal strings.
// SQLite REAL would reintroduce the floating-point drift the decimal
// arithmetic exists to avoid.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		email        TEXT NOT NULL DEFAULT '',
		phone        TEXT NOT NULL DEFAULT '',
		company_code TEXT NOT NULL DEFAULT '',
		address      TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS invoices (
		id             TEXT PRIMARY KEY,
		invoice_number TEXT NOT NULL UNIQUE,
		client_id      TEXT NOT NULL REFERENCES clients(id) ON DELETE CASCADE,
		invoice_date   TEXT NOT NULL,
		due_date       TEXT,
		payment_date   TEXT,
		status         TEXT NOT NULL DEFAULT 'pending'
		               CHECK(status IN ('pending','paid','overdue','cancelled')),
		notes          TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_invoices_client ON invoices(client_id)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_status ON invoices(status)`,

	`CREATE TABLE IF NOT EXISTS invoice_items (
		id          TEXT PRIMARY KEY,
		invoice_id  TEXT NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
		description TEXT NOT NULL,
		quantity    TEXT NOT NULL DEFAULT '1',
		unit_price  TEXT NOT NULL DEFAULT '0',
		vat_rate    TEXT NOT NULL DEFAULT '21',
		position    INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,

	`ALTER TABLE invoice_items ADD COLUMN position INTEGER NOT NULL DEFAULT 0`,

	`CREATE INDEX IF NOT EXISTS idx_invoice_items_invoice ON invoice_items(invoice_id)`,

	`CREATE TABLE IF NOT EXISTS expenses (
		id           TEXT PRIMARY KEY,
		date         TEXT NOT NULL,
		category     TEXT NOT NULL
		             CHECK(category IN ('Maistas','Transportas','Nuoma','Komunaliniai','Biuras','Paslaugos','Kita')),
		vendor       TEXT NOT NULL,
		amount       TEXT NOT NULL DEFAULT '0',
		vat_amount   TEXT NOT NULL DEFAULT '0',
		description  TEXT NOT NULL DEFAULT '',
		receipt_path TEXT NOT NULL DEFAULT '',
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_date ON expenses(date)`,
}
