package service

import (
	"github.com/s9hmzyt46y-beep/Laimis/internal/contract"
	"github.com/s9hmzyt46y-beep/Laimis/internal/domain"
	"github.com/shopspring/decimal"
)

// money formats an exact decimal amount for presentation: rounded
// half-even to 2 decimal places, always with two digits after the point.
func money(d decimal.Decimal) string {
	return d.RoundBank(2).StringFixed(2)
}

// buildItemView renders one invoice line with its computed amounts.
func buildItemView(it *domain.InvoiceItem) contract.ItemView {
	return contract.ItemView{
		Description: it.Description,
		Quantity:    it.Quantity.String(),
		UnitPrice:   money(it.UnitPrice),
		VATRate:     it.VATRate.String(),
		Subtotal:    money(it.Subtotal()),
		VAT:         money(it.VATAmount()),
		Total:       money(it.Total()),
	}
}
