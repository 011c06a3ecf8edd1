package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/s9hmzyt46y-beep/Laimis/internal/contract"
	"github.com/s9hmzyt46y-beep/Laimis/internal/db"
	"github.com/s9hmzyt46y-beep/Laimis/internal/domain"
	"github.com/s9hmzyt46y-beep/Laimis/internal/repository"
)

type invoiceService struct {
	invoices repository.InvoiceRepo
	items    repository.InvoiceItemRepo
	clients  repository.ClientRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewInvoiceService(
	invoices repository.InvoiceRepo,
	items repository.InvoiceItemRepo,
	clients repository.ClientRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) InvoiceService {
	return &invoiceService{
		invoices: invoices,
		items:    items,
		clients:  clients,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Create validates and persists an invoice together with its initial items.
// The header and item writes share one transaction: a failing item insert
// leaves no half-written invoice behind.
func (s *invoiceService) Create(ctx context.Context, inv *domain.Invoice, items []domain.InvoiceItem) (err error) {
	started := time.Now()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "invoice_create",
			Duration:  time.Since(started),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"invoice_number": inv.InvoiceNumber, "items": len(items)},
			StartedAt: started,
		})
	}()

	if inv.Status == "" {
		inv.Status = domain.InvoicePending
	}
	if err := inv.Validate(); err != nil {
		return err
	}
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return fmt.Errorf("item %d: %w", i+1, err)
		}
	}

	if _, err := s.clients.GetByID(ctx, inv.ClientID); err != nil {
		return fmt.Errorf("looking up client %s: %w", inv.ClientID, err)
	}
	if existing, err := s.invoices.GetByNumber(ctx, inv.InvoiceNumber); err == nil && existing != nil {
		return fmt.Errorf("invoice number %s is already taken", inv.InvoiceNumber)
	}

	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	inv.CreatedAt = now
	inv.UpdatedAt = now
	if inv.InvoiceDate.IsZero() {
		inv.InvoiceDate = now
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txInvoices := repository.NewSQLiteInvoiceRepo(tx)
		txItems := repository.NewSQLiteInvoiceItemRepo(tx)

		if err := txInvoices.Create(ctx, inv); err != nil {
			return err
		}
		for i := range items {
			it := &items[i]
			it.InvoiceID = inv.ID
			if it.ID == "" {
				it.ID = uuid.New().String()
			}
			it.CreatedAt = now
			if err := txItems.Create(ctx, it); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *invoiceService) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	return s.invoices.GetByID(ctx, id)
}

func (s *invoiceService) GetByNumber(ctx context.Context, number string) (*domain.Invoice, error) {
	return s.invoices.GetByNumber(ctx, number)
}

func (s *invoiceService) List(ctx context.Context, status domain.InvoiceStatus) ([]repository.InvoiceWithClient, error) {
	if status != "" && !domain.ValidInvoiceStatuses[string(status)] {
		return nil, fmt.Errorf("invalid invoice status %q", status)
	}
	return s.invoices.List(ctx, status)
}

func (s *invoiceService) ListByClient(ctx context.Context, clientID string) ([]*domain.Invoice, error) {
	return s.invoices.ListByClient(ctx, clientID)
}

func (s *invoiceService) Update(ctx context.Context, inv *domain.Invoice) error {
	if err := inv.Validate(); err != nil {
		return err
	}
	if other, err := s.invoices.GetByNumber(ctx, inv.InvoiceNumber); err == nil && other.ID != inv.ID {
		return fmt.Errorf("invoice number %s is already taken", inv.InvoiceNumber)
	}
	inv.UpdatedAt = time.Now().UTC()
	return s.invoices.Update(ctx, inv)
}

func (s *invoiceService) MarkPaid(ctx context.Context, id string) error {
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := inv.MarkPaid(time.Now().UTC()); err != nil {
		return err
	}
	return s.invoices.Update(ctx, inv)
}

func (s *invoiceService) Cancel(ctx context.Context, id string) error {
	inv, err := s.invoices.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := inv.Cancel(time.Now().UTC()); err != nil {
		return err
	}
	return s.invoices.Update(ctx, inv)
}

func (s *invoiceService) SweepOverdue(ctx context.Context) (int64, error) {
	return s.invoices.SweepOverdue(ctx, time.Now().UTC())
}

func (s *invoiceService) Delete(ctx context.Context, id string) error {
	return s.invoices.Delete(ctx, id)
}

// Totals loads the invoice's current item set and reduces it. Totals are
// never stored; they always reflect the items as persisted right now.
func (s *invoiceService) Totals(ctx context.Context, invoiceID string) (domain.Totals, error) {
	items, err := s.items.ListByInvoice(ctx, invoiceID)
	if err != nil {
		return domain.Totals{}, err
	}
	return domain.CalculateTotals(items), nil
}

// View resolves an invoice number to the fully rendered view used by
// inspect, export and PDF generation.
func (s *invoiceService) View(ctx context.Context, number string) (*contract.InvoiceView, error) {
	inv, err := s.invoices.GetByNumber(ctx, strings.TrimSpace(number))
	if err != nil {
		return nil, err
	}
	client, err := s.clients.GetByID(ctx, inv.ClientID)
	if err != nil {
		return nil, err
	}
	items, err := s.items.ListByInvoice(ctx, inv.ID)
	if err != nil {
		return nil, err
	}

	totals := domain.CalculateTotals(items).Rounded()
	view := &contract.InvoiceView{
		InvoiceNumber: inv.InvoiceNumber,
		Status:        string(inv.Status),
		ClientName:    client.Name,
		ClientCode:    client.CompanyCode,
		ClientAddress: client.Address,
		ClientEmail:   client.Email,
		InvoiceDate:   inv.InvoiceDate.Format("2006-01-02"),
		Notes:         inv.Notes,
		Subtotal:      totals.Subtotal.StringFixed(2),
		VATTotal:      totals.VAT.StringFixed(2),
		GrandTotal:    totals.GrandTotal.StringFixed(2),
	}
	if inv.DueDate != nil {
		view.DueDate = inv.DueDate.Format("2006-01-02")
	}
	if inv.PaymentDate != nil {
		view.PaymentDate = inv.PaymentDate.Format("2006-01-02")
	}
	for i := range items {
		view.Items = append(view.Items, buildItemView(&items[i]))
	}
	return view, nil
}
