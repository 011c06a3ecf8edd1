package formatter

import (
	"fmt"
	"strings"

	"github.com/s9hmzyt46y-beep/Laimis/internal/contract"
	"github.com/s9hmzyt46y-beep/Laimis/internal/domain"
)

// FormatSummary renders the bookkeeping dashboard.
func FormatSummary(resp *contract.SummaryResponse) string {
	var b strings.Builder

	b.WriteString(Header("Summary"))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  %s %s  %s\n",
		Dim("Invoiced:"), Bold(Money(resp.Invoiced)),
		Dim(Plural(resp.InvoiceCount, "invoice", "invoices"))))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Outstanding:"), StyleYellow.Render(Money(resp.Outstanding))))
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Paid:"), StyleGreen.Render(Money(resp.Paid))))
	b.WriteString("\n")

	if len(resp.ByStatus) > 0 {
		rows := make([][]string, 0, len(resp.ByStatus))
		for _, line := range resp.ByStatus {
			rows = append(rows, []string{
				StatusPill(domain.InvoiceStatus(line.Status)),
				fmt.Sprintf("%d", line.Count),
				Money(line.Amount),
			})
		}
		b.WriteString(RenderTable([]string{"STATUS", "COUNT", "AMOUNT"}, rows))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("  %s %s  %s\n",
		Dim("Expenses:"), Bold(Money(resp.ExpenseTotal)),
		Dim(Plural(resp.ExpenseCount, "entry", "entries"))))
	if resp.ExpenseVAT != "0.00" {
		b.WriteString(fmt.Sprintf("  %s %s\n", Dim("of which VAT:"), Money(resp.ExpenseVAT)))
	}
	b.WriteString("\n")

	if len(resp.ByCategory) > 0 {
		rows := make([][]string, 0, len(resp.ByCategory))
		for _, line := range resp.ByCategory {
			rows = append(rows, []string{
				CategoryBadge(domain.ExpenseCategory(line.Category)),
				fmt.Sprintf("%d", line.Count),
				Money(line.Amount),
				Money(line.VAT),
			})
		}
		b.WriteString(RenderTable([]string{"CATEGORY", "COUNT", "AMOUNT", "VAT"}, rows))
		b.WriteString("\n")
	}

	net := Money(resp.Net)
	if strings.HasPrefix(resp.Net, "-") {
		net = StyleRed.Render(net)
	} else {
		net = StyleGreen.Render(net)
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", Dim("Net:"), net))

	return b.String()
}
