package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/s9hmzyt46y-beep/Laimis/internal/db"
	"github.com/s9hmzyt46y-beep/Laimis/internal/domain"
)

// SQLiteInvoiceItemRepo implements InvoiceItemRepo over a SQLite handle or transaction.
type SQLiteInvoiceItemRepo struct {
	db db.DBTX
}

// NewSQLiteInvoiceItemRepo creates a new SQLiteInvoiceItemRepo.
func NewSQLiteInvoiceItemRepo(db db.DBTX) *SQLiteInvoiceItemRepo {
	return &SQLiteInvoiceItemRepo{db: db}
}

func (r *SQLiteInvoiceItemRepo) Create(ctx context.Context, it *domain.InvoiceItem) error {
	// Position is assigned relative to the item's siblings so that
	// reads return items in the order they were added, regardless of
	// how timestamps or UUIDs happen to collate. Items created inside
	// one transaction see each other's rows, so the subquery hands out
	// consecutive positions.
	query := `INSERT INTO invoice_items (id, invoice_id, description, quantity, unit_price, vat_rate, position, created_at)
		VALUES (?, ?, ?, ?, ?, ?,
			(SELECT COALESCE(MAX(position), -1) + 1 FROM invoice_items WHERE invoice_id = ?),
			?)`
	_, err := r.db.ExecContext(ctx, query,
		it.ID,
		it.InvoiceID,
		it.Description,
		it.Quantity.String(),
		it.UnitPrice.String(),
		it.VATRate.String(),
		it.InvoiceID,
		it.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting invoice item: %w", err)
	}
	return nil
}

func (r *SQLiteInvoiceItemRepo) GetByID(ctx context.Context, id string) (*domain.InvoiceItem, error) {
	query := `SELECT id, invoice_id, description, quantity, unit_price, vat_rate, position, created_at
		FROM invoice_items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var it domain.InvoiceItem
	var qtyStr, priceStr, rateStr, createdAtStr string
	err := row.Scan(&it.ID, &it.InvoiceID, &it.Description, &qtyStr, &priceStr, &rateStr, &it.Position, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("invoice item not found")
		}
		return nil, fmt.Errorf("scanning invoice item: %w", err)
	}
	if err := fillItemFields(&it, qtyStr, priceStr, rateStr, createdAtStr); err != nil {
		return nil, err
	}
	return &it, nil
}

// ListByInvoice returns the invoice's items in insertion order, the order
// the totals contract is defined over.
func (r *SQLiteInvoiceItemRepo) ListByInvoice(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error) {
	query := `SELECT id, invoice_id, description, quantity, unit_price, vat_rate, position, created_at
		FROM invoice_items WHERE invoice_id = ? ORDER BY position, id`
	rows, err := r.db.QueryContext(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("listing invoice items: %w", err)
	}
	defer rows.Close()

	var items []domain.InvoiceItem
	for rows.Next() {
		var it domain.InvoiceItem
		var qtyStr, priceStr, rateStr, createdAtStr string
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.Description, &qtyStr, &priceStr, &rateStr, &it.Position, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning invoice item row: %w", err)
		}
		if err := fillItemFields(&it, qtyStr, priceStr, rateStr, createdAtStr); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating invoice items: %w", err)
	}
	return items, nil
}

func (r *SQLiteInvoiceItemRepo) Update(ctx context.Context, it *domain.InvoiceItem) error {
	query := `UPDATE invoice_items SET description = ?, quantity = ?, unit_price = ?, vat_rate = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		it.Description,
		it.Quantity.String(),
		it.UnitPrice.String(),
		it.VATRate.String(),
		it.ID,
	)
	if err != nil {
		return fmt.Errorf("updating invoice item: %w", err)
	}
	return nil
}

func (r *SQLiteInvoiceItemRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM invoice_items WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting invoice item: %w", err)
	}
	return nil
}

func fillItemFields(it *domain.InvoiceItem, qtyStr, priceStr, rateStr, createdAtStr string) error {
	var err error
	if it.Quantity, err = parseDecimal("quantity", qtyStr); err != nil {
		return err
	}
	if it.UnitPrice, err = parseDecimal("unit_price", priceStr); err != nil {
		return err
	}
	if it.VATRate, err = parseDecimal("vat_rate", rateStr); err != nil {
		return err
	}
	if it.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}
	return nil
}
