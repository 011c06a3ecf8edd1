package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/s9hmzyt46y-beep/Laimis/internal/domain"
	"github.com/s9hmzyt46y-beep/Laimis/internal/repository"
)

type itemService struct {
	items    repository.InvoiceItemRepo
	invoices repository.InvoiceRepo
}

func NewItemService(items repository.InvoiceItemRepo, invoices repository.InvoiceRepo) ItemService {
	return &itemService{items: items, invoices: invoices}
}

// Add appends a line to an existing invoice. Lines cannot be added to
// paid or cancelled invoices; their totals are settled.
func (s *itemService) Add(ctx context.Context, it *domain.InvoiceItem) error {
	if err := it.Validate(); err != nil {
		return err
	}
	inv, err := s.invoices.GetByID(ctx, it.InvoiceID)
	if err != nil {
		return err
	}
	if inv.IsTerminal() {
		return fmt.Errorf("cannot add items to a %s invoice", inv.Status)
	}
	if it.ID == "" {
		it.ID = uuid.New().String()
	}
	it.CreatedAt = time.Now().UTC()
	return s.items.Create(ctx, it)
}

func (s *itemService) GetByID(ctx context.Context, id string) (*domain.InvoiceItem, error) {
	return s.items.GetByID(ctx, id)
}

func (s *itemService) ListByInvoice(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error) {
	return s.items.ListByInvoice(ctx, invoiceID)
}

func (s *itemService) Update(ctx context.Context, it *domain.InvoiceItem) error {
	if err := it.Validate(); err != nil {
		return err
	}
	inv, err := s.invoices.GetByID(ctx, it.InvoiceID)
	if err != nil {
		return err
	}
	if inv.IsTerminal() {
		return fmt.Errorf("cannot modify items of a %s invoice", inv.Status)
	}
	return s.items.Update(ctx, it)
}

func (s *itemService) Remove(ctx context.Context, id string) error {
	it, err := s.items.GetByID(ctx, id)
	if err != nil {
		return err
	}
	inv, err := s.invoices.GetByID(ctx, it.InvoiceID)
	if err != nil {
		return err
	}
	if inv.IsTerminal() {
		return fmt.Errorf("cannot remove items from a %s invoice", inv.Status)
	}
	return s.items.Delete(ctx, id)
}
