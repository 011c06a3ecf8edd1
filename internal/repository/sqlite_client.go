package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/s9hmzyt46y-beep/Laimis/internal/db"
	"github.com/s9hmzyt46y-beep/Laimis/internal/domain"
)

// SQLiteClientRepo implements ClientRepo over a SQLite handle or transaction.
type SQLiteClientRepo struct {
	db db.DBTX
}

// NewSQLiteClientRepo creates a new SQLiteClientRepo.
func NewSQLiteClientRepo(db db.DBTX) *SQLiteClientRepo {
	return &SQLiteClientRepo{db: db}
}

func (r *SQLiteClientRepo) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (id, name, email, phone, company_code, address, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Email,
		c.Phone,
		c.CompanyCode,
		c.Address,
		c.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting client: %w", err)
	}
	return nil
}

func (r *SQLiteClientRepo) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	query := `SELECT id, name, email, phone, company_code, address, created_at
		FROM clients WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanClient(row)
}

func (r *SQLiteClientRepo) List(ctx context.Context) ([]*domain.Client, error) {
	query := `SELECT id, name, email, phone, company_code, address, created_at
		FROM clients ORDER BY name COLLATE NOCASE`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		c, err := scanClientFromRows(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating clients: %w", err)
	}
	return clients, nil
}

func (r *SQLiteClientRepo) Update(ctx context.Context, c *domain.Client) error {
	query := `UPDATE clients SET name = ?, email = ?, phone = ?, company_code = ?, address = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		c.Name,
		c.Email,
		c.Phone,
		c.CompanyCode,
		c.Address,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating client: %w", err)
	}
	return nil
}

func (r *SQLiteClientRepo) Delete(ctx context.Context, id string) error {
	// Invoices and their items go with the client (ON DELETE CASCADE).
	query := `DELETE FROM clients WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}
	return nil
}

func (r *SQLiteClientRepo) CountInvoices(ctx context.Context, id string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM invoices WHERE client_id = ?`, id).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting client invoices: %w", err)
	}
	return n, nil
}

func scanClient(row *sql.Row) (*domain.Client, error) {
	var c domain.Client
	var createdAtStr string

	err := row.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CompanyCode, &c.Address, &createdAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("client not found")
		}
		return nil, fmt.Errorf("scanning client: %w", err)
	}

	c.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &c, nil
}

func scanClientFromRows(rows *sql.Rows) (*domain.Client, error) {
	var c domain.Client
	var createdAtStr string

	err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CompanyCode, &c.Address, &createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("scanning client row: %w", err)
	}

	c.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &c, nil
}
