package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a business cost: rent, transport, utilities and so on.
// Expenses are tracked alongside invoices so reports can show net income.
type Expense struct {
	ID          string
	Date        time.Time
	Category    ExpenseCategory
	Vendor      string
	Amount      decimal.Decimal
	VATAmount   decimal.Decimal
	Description string
	ReceiptPath string
	CreatedAt   time.Time
}

// Validate checks the construction invariants for an expense.
func (e *Expense) Validate() error {
	if strings.TrimSpace(e.Vendor) == "" {
		return fmt.Errorf("expense vendor is required")
	}
	if !ValidExpenseCategories[string(e.Category)] {
		return fmt.Errorf("invalid expense category %q", e.Category)
	}
	if e.Amount.IsNegative() {
		return fmt.Errorf("expense amount must not be negative (got %s)", e.Amount)
	}
	if e.VATAmount.IsNegative() {
		return fmt.Errorf("expense VAT amount must not be negative (got %s)", e.VATAmount)
	}
	return nil
}
