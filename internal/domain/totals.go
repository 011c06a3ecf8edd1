package domain

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// Totals is the monetary breakdown of an item set.
//
// All arithmetic is exact decimal; nothing is rounded while summing, so
// totals are additive over disjoint item sets and invariant under item
// order. Rounding happens only at presentation boundaries via Rounded,
// which rounds half-even to 2 decimal places.
type Totals struct {
	Subtotal   decimal.Decimal
	VAT        decimal.Decimal
	GrandTotal decimal.Decimal
}

// CalculateTotals reduces an item set to its totals breakdown:
// per item, subtotal = quantity × unit price and VAT = subtotal × rate / 100;
// the grand total is the sum of subtotal and VAT across all items.
// An empty set yields zero totals. The function is pure and performs no I/O;
// loading the item set is the caller's responsibility.
func CalculateTotals(items []InvoiceItem) Totals {
	t := Totals{}
	for idx := range items {
		it := &items[idx]
		t.Subtotal = t.Subtotal.Add(it.Subtotal())
		t.VAT = t.VAT.Add(it.VATAmount())
	}
	t.GrandTotal = t.Subtotal.Add(t.VAT)
	return t
}

// CalculateTotal returns only the grand total of the item set.
func CalculateTotal(items []InvoiceItem) decimal.Decimal {
	return CalculateTotals(items).GrandTotal
}

// Rounded returns the totals rounded half-even (banker's rounding) to
// 2 decimal places, the form used for display, reports and PDFs.
func (t Totals) Rounded() Totals {
	return Totals{
		Subtotal:   t.Subtotal.RoundBank(2),
		VAT:        t.VAT.RoundBank(2),
		GrandTotal: t.GrandTotal.RoundBank(2),
	}
}
