package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/s9hmzyt46y-beep/Laimis/internal/db"
	"github.com/s9hmzyt46y-beep/Laimis/internal/domain"
)

// SQLiteExpenseRepo implements ExpenseRepo over a SQLite handle or transaction.
type SQLiteExpenseRepo struct {
	db db.DBTX
}

// NewSQLiteExpenseRepo creates a new SQLiteExpenseRepo.
func NewSQLiteExpenseRepo(db db.DBTX) *SQLiteExpenseRepo {
	return &SQLiteExpenseRepo{db: db}
}

func (r *SQLiteExpenseRepo) Create(ctx context.Context, e *domain.Expense) error {
	query := `INSERT INTO expenses (id, date, category, vendor, amount, vat_amount, description, receipt_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.Date.Format(dateLayout),
		string(e.Category),
		e.Vendor,
		e.Amount.String(),
		e.VATAmount.String(),
		e.Description,
		e.ReceiptPath,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting expense: %w", err)
	}
	return nil
}

func (r *SQLiteExpenseRepo) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	query := `SELECT id, date, category, vendor, amount, vat_amount, description, receipt_path, created_at
		FROM expenses WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var e domain.Expense
	var dateStr, categoryStr, amountStr, vatStr, createdAtStr string
	err := row.Scan(&e.ID, &dateStr, &categoryStr, &e.Vendor, &amountStr, &vatStr, &e.Description, &e.ReceiptPath, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("expense not found")
		}
		return nil, fmt.Errorf("scanning expense: %w", err)
	}
	if err := fillExpenseFields(&e, dateStr, categoryStr, amountStr, vatStr, createdAtStr); err != nil {
		return nil, err
	}
	return &e, nil
}

// List returns expenses newest first. An empty category returns all expenses.
func (r *SQLiteExpenseRepo) List(ctx context.Context, category domain.ExpenseCategory) ([]*domain.Expense, error) {
	query := `SELECT id, date, category, vendor, amount, vat_amount, description, receipt_path, created_at
		FROM expenses`
	var args []any
	if category != "" {
		query += ` WHERE category = ?`
		args = append(args, string(category))
	}
	query += ` ORDER BY date DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*domain.Expense
	for rows.Next() {
		var e domain.Expense
		var dateStr, categoryStr, amountStr, vatStr, createdAtStr string
		if err := rows.Scan(&e.ID, &dateStr, &categoryStr, &e.Vendor, &amountStr, &vatStr, &e.Description, &e.ReceiptPath, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning expense row: %w", err)
		}
		if err := fillExpenseFields(&e, dateStr, categoryStr, amountStr, vatStr, createdAtStr); err != nil {
			return nil, err
		}
		expenses = append(expenses, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expenses: %w", err)
	}
	return expenses, nil
}

func (r *SQLiteExpenseRepo) Update(ctx context.Context, e *domain.Expense) error {
	query := `UPDATE expenses SET date = ?, category = ?, vendor = ?, amount = ?, vat_amount = ?,
		description = ?, receipt_path = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		e.Date.Format(dateLayout),
		string(e.Category),
		e.Vendor,
		e.Amount.String(),
		e.VATAmount.String(),
		e.Description,
		e.ReceiptPath,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating expense: %w", err)
	}
	return nil
}

func (r *SQLiteExpenseRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM expenses WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}
	return nil
}

func fillExpenseFields(e *domain.Expense, dateStr, categoryStr, amountStr, vatStr, createdAtStr string) error {
	var err error
	if e.Date, err = time.Parse(dateLayout, dateStr); err != nil {
		return fmt.Errorf("parsing date: %w", err)
	}
	e.Category = domain.ExpenseCategory(categoryStr)
	if e.Amount, err = parseDecimal("amount", amountStr); err != nil {
		return err
	}
	if e.VATAmount, err = parseDecimal("vat_amount", vatStr); err != nil {
		return err
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}
	return nil
}
