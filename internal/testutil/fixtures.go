package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/s9hmzyt46y-beep/Laimis/internal/domain"
	"github.com/shopspring/decimal"
)

var testInvoiceCounter atomic.Int64

// Client options
type ClientOption func(*domain.Client)

func WithCompanyCode(code string) ClientOption {
	return func(c *domain.Client) {
		c.CompanyCode = code
	}
}

func WithEmail(email string) ClientOption {
	return func(c *domain.Client) {
		c.Email = email
	}
}

func NewTestClient(name string, opts ...ClientOption) *domain.Client {
	c := &domain.Client{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Invoice options
type InvoiceOption func(*domain.Invoice)

func WithInvoiceNumber(number string) InvoiceOption {
	return func(inv *domain.Invoice) {
		inv.InvoiceNumber = number
	}
}

func WithInvoiceStatus(s domain.InvoiceStatus) InvoiceOption {
	return func(inv *domain.Invoice) {
		inv.Status = s
	}
}

func WithDueDate(d time.Time) InvoiceOption {
	return func(inv *domain.Invoice) {
		inv.DueDate = &d
	}
}

func WithInvoiceDate(d time.Time) InvoiceOption {
	return func(inv *domain.Invoice) {
		inv.InvoiceDate = d
	}
}

func NewTestInvoice(clientID string, opts ...InvoiceOption) *domain.Invoice {
	now := time.Now().UTC()
	inv := &domain.Invoice{
		ID:            uuid.New().String(),
		InvoiceNumber: fmt.Sprintf("INV-%04d", testInvoiceCounter.Add(1)),
		ClientID:      clientID,
		InvoiceDate:   now,
		Status:        domain.InvoicePending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// InvoiceItem options
type ItemOption func(*domain.InvoiceItem)

func WithVATRate(rate string) ItemOption {
	return func(it *domain.InvoiceItem) {
		it.VATRate = decimal.RequireFromString(rate)
	}
}

func WithQuantity(qty string) ItemOption {
	return func(it *domain.InvoiceItem) {
		it.Quantity = decimal.RequireFromString(qty)
	}
}

func NewTestItem(invoiceID, description, unitPrice string, opts ...ItemOption) *domain.InvoiceItem {
	it := &domain.InvoiceItem{
		ID:          uuid.New().String(),
		InvoiceID:   invoiceID,
		Description: description,
		Quantity:    decimal.NewFromInt(1),
		UnitPrice:   decimal.RequireFromString(unitPrice),
		VATRate:     decimal.NewFromInt(21),
		CreatedAt:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Expense options
type ExpenseOption func(*domain.Expense)

func WithCategory(c domain.ExpenseCategory) ExpenseOption {
	return func(e *domain.Expense) {
		e.Category = c
	}
}

func WithExpenseDate(d time.Time) ExpenseOption {
	return func(e *domain.Expense) {
		e.Date = d
	}
}

func NewTestExpense(vendor, amount string, opts ...ExpenseOption) *domain.Expense {
	now := time.Now().UTC()
	e := &domain.Expense{
		ID:        uuid.New().String(),
		Date:      now,
		Category:  domain.CategoryOther,
		Vendor:    vendor,
		Amount:    decimal.RequireFromString(amount),
		VATAmount: decimal.Zero,
		CreatedAt: now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
