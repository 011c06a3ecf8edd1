package contract

import "time"

// Monetary amounts in report and export shapes are pre-formatted strings
// (rounded half-even to 2 decimal places). Exact decimals stay inside the
// domain; these types exist for display, JSON and YAML.

type SummaryRequest struct {
	Today *time.Time // nil means time.Now
}

func NewSummaryRequest() SummaryRequest {
	return SummaryRequest{}
}

// StatusLine aggregates the invoices in one status.
type StatusLine struct {
	Status string `json:"status" yaml:"status"`
	Count  int    `json:"count" yaml:"count"`
	Amount string `json:"amount" yaml:"amount"`
}

// CategoryLine aggregates the expenses in one category.
type CategoryLine struct {
	Category string `json:"category" yaml:"category"`
	Count    int    `json:"count" yaml:"count"`
	Amount   string `json:"amount" yaml:"amount"`
	VAT      string `json:"vat" yaml:"vat"`
}

// SummaryResponse is the bookkeeping dashboard: invoiced and outstanding
// amounts by status, expense totals by category, and the resulting net.
type SummaryResponse struct {
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`

	InvoiceCount int          `json:"invoice_count" yaml:"invoice_count"`
	Invoiced     string       `json:"invoiced" yaml:"invoiced"`
	Outstanding  string       `json:"outstanding" yaml:"outstanding"`
	Paid         string       `json:"paid" yaml:"paid"`
	ByStatus     []StatusLine `json:"by_status" yaml:"by_status"`

	ExpenseCount int            `json:"expense_count" yaml:"expense_count"`
	ExpenseTotal string         `json:"expense_total" yaml:"expense_total"`
	ExpenseVAT   string         `json:"expense_vat" yaml:"expense_vat"`
	ByCategory   []CategoryLine `json:"by_category" yaml:"by_category"`

	Net string `json:"net" yaml:"net"`
}
