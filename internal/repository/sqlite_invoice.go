package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/s9hmzyt46y-beep/Laimis/internal/db"
	"github.com/s9hmzyt46y-beep/Laimis/internal/domain"
)

const invoiceColumns = `id, invoice_number, client_id, invoice_date, due_date, payment_date,
		status, notes, created_at, updated_at`

// SQLiteInvoiceRepo implements InvoiceRepo over a SQLite handle or transaction.
type SQLiteInvoiceRepo struct {
	db db.DBTX
}

// NewSQLiteInvoiceRepo creates a new SQLiteInvoiceRepo.
func NewSQLiteInvoiceRepo(db db.DBTX) *SQLiteInvoiceRepo {
	return &SQLiteInvoiceRepo{db: db}
}

func (r *SQLiteInvoiceRepo) Create(ctx context.Context, inv *domain.Invoice) error {
	query := `INSERT INTO invoices (` + invoiceColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		inv.ID,
		inv.InvoiceNumber,
		inv.ClientID,
		inv.InvoiceDate.Format(dateLayout),
		nullableTimeToString(inv.DueDate, dateLayout),
		nullableTimeToString(inv.PaymentDate, dateLayout),
		string(inv.Status),
		inv.Notes,
		inv.CreatedAt.Format(time.RFC3339),
		inv.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting invoice: %w", err)
	}
	return nil
}

func (r *SQLiteInvoiceRepo) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanInvoice(row)
}

func (r *SQLiteInvoiceRepo) GetByNumber(ctx context.Context, number string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE UPPER(invoice_number) = UPPER(?)`
	row := r.db.QueryRowContext(ctx, query, number)
	return scanInvoice(row)
}

// List returns invoices joined with their client's name, newest first.
// An empty status returns all invoices.
func (r *SQLiteInvoiceRepo) List(ctx context.Context, status domain.InvoiceStatus) ([]InvoiceWithClient, error) {
	query := `SELECT i.id, i.invoice_number, i.client_id, i.invoice_date, i.due_date, i.payment_date,
			i.status, i.notes, i.created_at, i.updated_at, c.name
		FROM invoices i JOIN clients c ON c.id = i.client_id`
	var args []any
	if status != "" {
		query += ` WHERE i.status = ?`
		args = append(args, string(status))
	}
	query += ` ORDER BY i.invoice_date DESC, i.invoice_number DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}
	defer rows.Close()

	var out []InvoiceWithClient
	for rows.Next() {
		var v InvoiceWithClient
		var invoiceDateStr, statusStr, createdAtStr, updatedAtStr string
		var dueDateStr, paymentDateStr sql.NullString
		err := rows.Scan(
			&v.Invoice.ID, &v.Invoice.InvoiceNumber, &v.Invoice.ClientID,
			&invoiceDateStr, &dueDateStr, &paymentDateStr,
			&statusStr, &v.Invoice.Notes, &createdAtStr, &updatedAtStr,
			&v.ClientName,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning invoice row: %w", err)
		}
		if err := fillInvoiceTimes(&v.Invoice, invoiceDateStr, createdAtStr, updatedAtStr); err != nil {
			return nil, err
		}
		v.Invoice.Status = domain.InvoiceStatus(statusStr)
		v.Invoice.DueDate = parseNullableTime(dueDateStr, dateLayout)
		v.Invoice.PaymentDate = parseNullableTime(paymentDateStr, dateLayout)
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoices: %w", err)
	}
	return out, nil
}

func (r *SQLiteInvoiceRepo) ListByClient(ctx context.Context, clientID string) ([]*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE client_id = ?
		ORDER BY invoice_date DESC, invoice_number DESC`
	rows, err := r.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("listing client invoices: %w", err)
	}
	defer rows.Close()

	var invoices []*domain.Invoice
	for rows.Next() {
		inv, err := scanInvoiceFromRows(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating client invoices: %w", err)
	}
	return invoices, nil
}

func (r *SQLiteInvoiceRepo) Update(ctx context.Context, inv *domain.Invoice) error {
	query := `UPDATE invoices SET invoice_number = ?, client_id = ?, invoice_date = ?, due_date = ?,
		payment_date = ?, status = ?, notes = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		inv.InvoiceNumber,
		inv.ClientID,
		inv.InvoiceDate.Format(dateLayout),
		nullableTimeToString(inv.DueDate, dateLayout),
		nullableTimeToString(inv.PaymentDate, dateLayout),
		string(inv.Status),
		inv.Notes,
		inv.UpdatedAt.Format(time.RFC3339),
		inv.ID,
	)
	if err != nil {
		return fmt.Errorf("updating invoice: %w", err)
	}
	return nil
}

func (r *SQLiteInvoiceRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM invoices WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}
	return nil
}

// SweepOverdue marks every pending invoice whose due date is before today
// as overdue and returns how many rows changed. Dates are stored as
// YYYY-MM-DD, so the comparison is a plain string compare.
func (r *SQLiteInvoiceRepo) SweepOverdue(ctx context.Context, today time.Time) (int64, error) {
	query := `UPDATE invoices SET status = 'overdue', updated_at = ?
		WHERE status = 'pending' AND due_date IS NOT NULL AND due_date < ?`
	res, err := r.db.ExecContext(ctx, query, nowUTC(), today.Format(dateLayout))
	if err != nil {
		return 0, fmt.Errorf("sweeping overdue invoices: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting swept invoices: %w", err)
	}
	return n, nil
}

func fillInvoiceTimes(inv *domain.Invoice, invoiceDateStr, createdAtStr, updatedAtStr string) error {
	var err error
	inv.InvoiceDate, err = time.Parse(dateLayout, invoiceDateStr)
	if err != nil {
		return fmt.Errorf("parsing invoice_date: %w", err)
	}
	inv.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}
	inv.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return fmt.Errorf("parsing updated_at: %w", err)
	}
	return nil
}

func scanInvoice(row *sql.Row) (*domain.Invoice, error) {
	var inv domain.Invoice
	var invoiceDateStr, statusStr, createdAtStr, updatedAtStr string
	var dueDateStr, paymentDateStr sql.NullString

	err := row.Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.ClientID,
		&invoiceDateStr, &dueDateStr, &paymentDateStr,
		&statusStr, &inv.Notes, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("invoice not found")
		}
		return nil, fmt.Errorf("scanning invoice: %w", err)
	}

	inv.Status = domain.InvoiceStatus(statusStr)
	if err := fillInvoiceTimes(&inv, invoiceDateStr, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	inv.DueDate = parseNullableTime(dueDateStr, dateLayout)
	inv.PaymentDate = parseNullableTime(paymentDateStr, dateLayout)
	return &inv, nil
}

func scanInvoiceFromRows(rows *sql.Rows) (*domain.Invoice, error) {
	var inv domain.Invoice
	var invoiceDateStr, statusStr, createdAtStr, updatedAtStr string
	var dueDateStr, paymentDateStr sql.NullString

	err := rows.Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.ClientID,
		&invoiceDateStr, &dueDateStr, &paymentDateStr,
		&statusStr, &inv.Notes, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning invoice row: %w", err)
	}

	inv.Status = domain.InvoiceStatus(statusStr)
	if err := fillInvoiceTimes(&inv, invoiceDateStr, createdAtStr, updatedAtStr); err != nil {
		return nil, err
	}
	inv.DueDate = parseNullableTime(dueDateStr, dateLayout)
	inv.PaymentDate = parseNullableTime(paymentDateStr, dateLayout)
	return &inv, nil
}
