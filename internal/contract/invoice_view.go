package contract

// ItemView is one rendered invoice line.
type ItemView struct {
	Description string `json:"description" yaml:"description"`
	Quantity    string `json:"quantity" yaml:"quantity"`
	UnitPrice   string `json:"unit_price" yaml:"unit_price"`
	VATRate     string `json:"vat_rate" yaml:"vat_rate"`
	Subtotal    string `json:"subtotal" yaml:"subtotal"`
	VAT         string `json:"vat" yaml:"vat"`
	Total       string `json:"total" yaml:"total"`
}

// InvoiceView is a fully resolved invoice: header, client, lines and
// computed totals. It feeds the inspect command, exports and the PDF.
type InvoiceView struct {
	InvoiceNumber string `json:"invoice_number" yaml:"invoice_number"`
	Status        string `json:"status" yaml:"status"`
	ClientName    string `json:"client_name" yaml:"client_name"`
	ClientCode    string `json:"client_code,omitempty" yaml:"client_code,omitempty"`
	ClientAddress string `json:"client_address,omitempty" yaml:"client_address,omitempty"`
	ClientEmail   string `json:"client_email,omitempty" yaml:"client_email,omitempty"`
	InvoiceDate   string `json:"invoice_date" yaml:"invoice_date"`
	DueDate       string `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	PaymentDate   string `json:"payment_date,omitempty" yaml:"payment_date,omitempty"`
	Notes         string `json:"notes,omitempty" yaml:"notes,omitempty"`

	Items []ItemView `json:"items" yaml:"items"`

	Subtotal   string `json:"subtotal" yaml:"subtotal"`
	VATTotal   string `json:"vat_total" yaml:"vat_total"`
	GrandTotal string `json:"grand_total" yaml:"grand_total"`
}
