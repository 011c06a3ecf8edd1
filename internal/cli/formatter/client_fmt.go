package formatter

import (
	"github.com/s9hmzyt46y-beep/Laimis/internal/domain"
)

// ClientListRow pairs a client with its invoice count.
type ClientListRow struct {
	Client       *domain.Client
	InvoiceCount int
}

// FormatClientList renders the client listing table.
func FormatClientList(rows []ClientListRow) string {
	headers := []string{"ID", "NAME", "COMPANY CODE", "EMAIL", "INVOICES"}

	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		code := r.Client.CompanyCode
		if code == "" {
			code = Dim("--")
		}
		email := r.Client.Email
		if email == "" {
			email = Dim("--")
		}
		table = append(table, []string{
			TruncID(r.Client.ID),
			Bold(r.Client.Name),
			code,
			email,
			Plural(r.InvoiceCount, "invoice", "invoices"),
		})
	}

	return RenderTable(headers, table)
}
