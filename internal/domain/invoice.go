package domain

import (
	"fmt"
	"strings"
	"time"
)

// Invoice is a bill issued to a client. Items live in their own table and
// are loaded separately; totals are always computed from the current item
// set, never stored.
type Invoice struct {
	ID            string
	InvoiceNumber string
	ClientID      string
	InvoiceDate   time.Time
	DueDate       *time.Time
	PaymentDate   *time.Time
	Status        InvoiceStatus
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks the construction invariants for an invoice.
func (i *Invoice) Validate() error {
	if strings.TrimSpace(i.InvoiceNumber) == "" {
		return fmt.Errorf("invoice number is required")
	}
	if len(i.InvoiceNumber) > 50 {
		return fmt.Errorf("invoice number must be at most 50 characters")
	}
	if i.ClientID == "" {
		return fmt.Errorf("invoice must reference a client")
	}
	if i.Status != "" && !ValidInvoiceStatuses[string(i.Status)] {
		return fmt.Errorf("invalid invoice status %q", i.Status)
	}
	return nil
}

// IsTerminal reports whether the invoice has reached a final status.
func (i *Invoice) IsTerminal() bool {
	return i.Status == InvoicePaid || i.Status == InvoiceCancelled
}

// IsOverdue reports whether a pending invoice's due date has passed.
// Overdue status itself also counts as overdue.
func (i *Invoice) IsOverdue(today time.Time) bool {
	if i.Status == InvoiceOverdue {
		return true
	}
	if i.Status != InvoicePending || i.DueDate == nil {
		return false
	}
	return i.DueDate.Before(today.Truncate(24 * time.Hour))
}

// MarkPaid transitions the invoice to paid and records the payment date.
// Calling it on an already-paid invoice is a no-op.
func (i *Invoice) MarkPaid(now time.Time) error {
	switch i.Status {
	case InvoicePaid:
		return nil
	case InvoiceCancelled:
		return fmt.Errorf("cannot pay a cancelled invoice")
	}
	i.Status = InvoicePaid
	paid := now
	i.PaymentDate = &paid
	i.UpdatedAt = now
	return nil
}

// Cancel transitions the invoice to cancelled.
// Calling it on an already-cancelled invoice is a no-op.
func (i *Invoice) Cancel(now time.Time) error {
	switch i.Status {
	case InvoiceCancelled:
		return nil
	case InvoicePaid:
		return fmt.Errorf("cannot cancel a paid invoice")
	}
	i.Status = InvoiceCancelled
	i.UpdatedAt = now
	return nil
}

// MarkOverdue transitions a pending invoice to overdue.
func (i *Invoice) MarkOverdue(now time.Time) error {
	if i.Status == InvoiceOverdue {
		return nil
	}
	if i.Status != InvoicePending {
		return fmt.Errorf("only pending invoices can become overdue (status is %s)", i.Status)
	}
	i.Status = InvoiceOverdue
	i.UpdatedAt = now
	return nil
}
