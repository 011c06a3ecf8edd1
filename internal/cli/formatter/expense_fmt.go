package formatter

import (
	"fmt"

	"github.com/s9hmzyt46y-beep/Laimis/internal/domain"
	"github.com/shopspring/decimal"
)

// FormatExpenseList renders the expense listing table with a total line.
func FormatExpenseList(expenses []*domain.Expense) string {
	headers := []string{"ID", "DATE", "CATEGORY", "VENDOR", "AMOUNT", "VAT"}

	var total decimal.Decimal
	rows := make([][]string, 0, len(expenses))
	for _, e := range expenses {
		total = total.Add(e.Amount)
		rows = append(rows, []string{
			TruncID(e.ID),
			Date(e.Date),
			CategoryBadge(e.Category),
			e.Vendor,
			Money(e.Amount.RoundBank(2).StringFixed(2)),
			Money(e.VATAmount.RoundBank(2).StringFixed(2)),
		})
	}

	out := RenderTable(headers, rows)
	out += fmt.Sprintf("\n%s %s\n", Dim("Total:"), Bold(Money(total.RoundBank(2).StringFixed(2))))
	return out
}
