package formatter

import (
	"testing"

	"github.com/s9hmzyt46y-beep/Laimis/internal/contract"
	"github.com/stretchr/testify/assert"
)

func TestFormatSummary_FullBooks(t *testing.T) {
	resp := &contract.SummaryResponse{
		InvoiceCount: 3,
		Invoiced:     "726.00",
		Outstanding:  "605.00",
		Paid:         "121.00",
		ByStatus: []contract.StatusLine{
			{Status: "pending", Count: 1, Amount: "605.00"},
			{Status: "paid", Count: 1, Amount: "121.00"},
		},
		ExpenseCount: 2,
		ExpenseTotal: "350.00",
		ExpenseVAT:   "52.07",
		ByCategory: []contract.CategoryLine{
			{Category: "Nuoma", Count: 1, Amount: "300.00", VAT: "52.07"},
		},
		Net: "376.00",
	}

	out := FormatSummary(resp)
	assert.Contains(t, out, "SUMMARY")
	assert.Contains(t, out, "726.00 €")
	assert.Contains(t, out, "3 invoices")
	assert.Contains(t, out, "Nuoma")
	assert.Contains(t, out, "2 entries")
	assert.Contains(t, out, "376.00 €")
}

func TestFormatSummary_EmptyBooks(t *testing.T) {
	resp := &contract.SummaryResponse{
		Invoiced:     "0.00",
		Outstanding:  "0.00",
		Paid:         "0.00",
		ExpenseTotal: "0.00",
		ExpenseVAT:   "0.00",
		Net:          "0.00",
	}

	out := FormatSummary(resp)
	assert.Contains(t, out, "0 invoices")
	assert.NotContains(t, out, "of which VAT")
}
