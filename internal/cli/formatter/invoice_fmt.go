package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/s9hmzyt46y-beep/Laimis/internal/contract"
	"github.com/s9hmzyt46y-beep/Laimis/internal/domain"
)

// InvoiceListRow is one line of the invoice listing: the invoice, its
// client's name and the pre-formatted grand total.
type InvoiceListRow struct {
	Invoice    domain.Invoice
	ClientName string
	Total      string
}

// FormatInvoiceList renders the invoice listing table.
func FormatInvoiceList(rows []InvoiceListRow, now time.Time) string {
	headers := []string{"NUMBER", "CLIENT", "DATE", "DUE", "STATUS", "TOTAL"}

	table := make([][]string, 0, len(rows))
	for _, r := range rows {
		table = append(table, []string{
			Bold(r.Invoice.InvoiceNumber),
			r.ClientName,
			Date(r.Invoice.InvoiceDate),
			DueDateStyled(r.Invoice.DueDate, now),
			StatusPill(r.Invoice.Status),
			Money(r.Total),
		})
	}

	return RenderTable(headers, table)
}

// FormatInvoiceInspect renders the full invoice view: header fields, the
// item table and the totals block.
func FormatInvoiceInspect(view *contract.InvoiceView) string {
	var b strings.Builder

	b.WriteString(Header("Invoice " + view.InvoiceNumber))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Status:"), StatusPill(domain.InvoiceStatus(view.Status))))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Client:"), Bold(view.ClientName)))
	if view.ClientCode != "" {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Code:"), view.ClientCode))
	}
	if view.ClientAddress != "" {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Address:"), view.ClientAddress))
	}
	if view.ClientEmail != "" {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Email:"), view.ClientEmail))
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Issued:"), view.InvoiceDate))
	if view.DueDate != "" {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Due:"), view.DueDate))
	}
	if view.PaymentDate != "" {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Paid:"), view.PaymentDate))
	}
	b.WriteString("\n")

	if len(view.Items) == 0 {
		b.WriteString(Dim("No items.") + "\n")
	} else {
		rows := make([][]string, 0, len(view.Items))
		for _, it := range view.Items {
			rows = append(rows, []string{
				it.Description,
				it.Quantity,
				Money(it.UnitPrice),
				it.VATRate + "%",
				Money(it.Total),
			})
		}
		b.WriteString(RenderTable([]string{"DESCRIPTION", "QTY", "PRICE", "VAT", "TOTAL"}, rows))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Subtotal:"), Money(view.Subtotal)))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("VAT:"), Money(view.VATTotal)))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Total:"), Bold(Money(view.GrandTotal))))

	if view.Notes != "" {
		b.WriteString("\n" + Dim(view.Notes) + "\n")
	}

	return b.String()
}
