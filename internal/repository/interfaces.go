package repository

import (
	"context"
	"time"

	"github.com/s9hmzyt46y-beep/Laimis/internal/domain"
)

// InvoiceWithClient is a joined view of an invoice with its client's name,
// used by listings and reports so callers don't need a second lookup.
type InvoiceWithClient struct {
	Invoice    domain.Invoice
	ClientName string
}

type ClientRepo interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id string) error
	CountInvoices(ctx context.Context, id string) (int, error)
}

type InvoiceRepo interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	GetByNumber(ctx context.Context, number string) (*domain.Invoice, error)
	List(ctx context.Context, status domain.InvoiceStatus) ([]InvoiceWithClient, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Invoice, error)
	Update(ctx context.Context, inv *domain.Invoice) error
	Delete(ctx context.Context, id string) error
	SweepOverdue(ctx context.Context, today time.Time) (int64, error)
}

type InvoiceItemRepo interface {
	Create(ctx context.Context, it *domain.InvoiceItem) error
	GetByID(ctx context.Context, id string) (*domain.InvoiceItem, error)
	ListByInvoice(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error)
	Update(ctx context.Context, it *domain.InvoiceItem) error
	Delete(ctx context.Context, id string) error
}

type ExpenseRepo interface {
	Create(ctx context.Context, e *domain.Expense) error
	GetByID(ctx context.Context, id string) (*domain.Expense, error)
	List(ctx context.Context, category domain.ExpenseCategory) ([]*domain.Expense, error)
	Update(ctx context.Context, e *domain.Expense) error
	Delete(ctx context.Context, id string) error
}
