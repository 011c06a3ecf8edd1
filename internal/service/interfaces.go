package service

import (
	"context"

	"github.com/s9hmzyt46y-beep/Laimis/internal/contract"
	"github.com/s9hmzyt46y-beep/Laimis/internal/domain"
	"github.com/s9hmzyt46y-beep/Laimis/internal/repository"
)

type ClientService interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id string, force bool) error
}

type InvoiceService interface {
	Create(ctx context.Context, inv *domain.Invoice, items []domain.InvoiceItem) error
	GetByID(ctx context.Context, id string) (*domain.Invoice, error)
	GetByNumber(ctx context.Context, number string) (*domain.Invoice, error)
	List(ctx context.Context, status domain.InvoiceStatus) ([]repository.InvoiceWithClient, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Invoice, error)
	Update(ctx context.Context, inv *domain.Invoice) error
	MarkPaid(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
	SweepOverdue(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) error
	Totals(ctx context.Context, invoiceID string) (domain.Totals, error)
	View(ctx context.Context, number string) (*contract.InvoiceView, error)
}

type ItemService interface {
	Add(ctx context.Context, it *domain.InvoiceItem) error
	GetByID(ctx context.Context, id string) (*domain.InvoiceItem, error)
	ListByInvoice(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error)
	Update(ctx context.Context, it *domain.InvoiceItem) error
	Remove(ctx context.Context, id string) error
}

type ExpenseService interface {
	Create(ctx context.Context, e *domain.Expense) error
	GetByID(ctx context.Context, id string) (*domain.Expense, error)
	List(ctx context.Context, category domain.ExpenseCategory) ([]*domain.Expense, error)
	Update(ctx context.Context, e *domain.Expense) error
	Delete(ctx context.Context, id string) error
}

type ReportService interface {
	Summary(ctx context.Context, req contract.SummaryRequest) (*contract.SummaryResponse, error)
}
