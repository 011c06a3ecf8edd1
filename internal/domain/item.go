package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItem is one billable line on an invoice: a description, a quantity,
// a unit price and a VAT rate (percentage). Monetary fields use exact
// decimal arithmetic; floats never touch money.
type InvoiceItem struct {
	ID          string
	InvoiceID   string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	VATRate     decimal.Decimal
	Position    int
	CreatedAt   time.Time
}

// Validate checks the construction invariants for a line item. Negative
// quantities, prices and rates are rejected here, at the entity boundary;
// the totals calculator assumes well-formed input.
func (it *InvoiceItem) Validate() error {
	if strings.TrimSpace(it.Description) == "" {
		return fmt.Errorf("item description is required")
	}
	if len(it.Description) > 200 {
		return fmt.Errorf("item description must be at most 200 characters")
	}
	if it.Quantity.IsNegative() {
		return fmt.Errorf("item quantity must not be negative (got %s)", it.Quantity)
	}
	if it.UnitPrice.IsNegative() {
		return fmt.Errorf("item unit price must not be negative (got %s)", it.UnitPrice)
	}
	if it.VATRate.IsNegative() {
		return fmt.Errorf("item VAT rate must not be negative (got %s)", it.VATRate)
	}
	return nil
}

// Subtotal returns quantity × unit price, before VAT.
func (it *InvoiceItem) Subtotal() decimal.Decimal {
	return it.Quantity.Mul(it.UnitPrice)
}

// VATAmount returns the VAT charged on this line: subtotal × rate / 100.
func (it *InvoiceItem) VATAmount() decimal.Decimal {
	return it.Subtotal().Mul(it.VATRate).Div(oneHundred)
}

// Total returns the line total including VAT.
func (it *InvoiceItem) Total() decimal.Decimal {
	return it.Subtotal().Add(it.VATAmount())
}
