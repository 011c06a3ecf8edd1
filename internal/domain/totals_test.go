package domain

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func item(qty, price, rate string) InvoiceItem {
	return InvoiceItem{
		Description: "line",
		Quantity:    dec(qty),
		UnitPrice:   dec(price),
		VATRate:     dec(rate),
	}
}

func TestCalculateTotals_EmptySet(t *testing.T) {
	got := CalculateTotals(nil)
	assert.True(t, got.Subtotal.IsZero())
	assert.True(t, got.VAT.IsZero())
	assert.True(t, got.GrandTotal.IsZero())
	assert.True(t, CalculateTotal([]InvoiceItem{}).IsZero())
}

func TestCalculateTotals_SingleItemWithVAT(t *testing.T) {
	// 10 × 50.00 at 21% VAT: subtotal 500.00, VAT 105.00, total 605.00.
	got := CalculateTotals([]InvoiceItem{item("10", "50.00", "21.0")})
	assert.True(t, got.Subtotal.Equal(dec("500.00")), "subtotal = %s", got.Subtotal)
	assert.True(t, got.VAT.Equal(dec("105.00")), "vat = %s", got.VAT)
	assert.True(t, got.GrandTotal.Equal(dec("605.00")), "total = %s", got.GrandTotal)
}

func TestCalculateTotals_ZeroRateIsExactProduct(t *testing.T) {
	got := CalculateTotal([]InvoiceItem{item("3.5", "19.99", "0")})
	assert.True(t, got.Equal(dec("69.965")), "total = %s", got)
}

func TestCalculateTotals_Additive(t *testing.T) {
	a := []InvoiceItem{item("2", "10.50", "21"), item("1", "99.99", "9.5")}
	b := []InvoiceItem{item("0.25", "400.00", "21"), item("7", "3.30", "0")}

	sum := CalculateTotal(a).Add(CalculateTotal(b))
	combined := CalculateTotal(append(append([]InvoiceItem{}, a...), b...))
	assert.True(t, combined.Equal(sum), "combined %s != %s + %s", combined, CalculateTotal(a), CalculateTotal(b))
}

func TestCalculateTotals_OrderInvariant(t *testing.T) {
	items := []InvoiceItem{
		item("2", "10.50", "21"),
		item("1", "99.99", "9.5"),
		item("0.25", "400.00", "21"),
		item("7", "3.30", "0"),
		item("12", "0.05", "5"),
	}
	want := CalculateTotals(items)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := append([]InvoiceItem{}, items...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		got := CalculateTotals(shuffled)
		assert.True(t, got.GrandTotal.Equal(want.GrandTotal))
		assert.True(t, got.Subtotal.Equal(want.Subtotal))
		assert.True(t, got.VAT.Equal(want.VAT))
	}
}

func TestCalculateTotals_BreakdownConsistent(t *testing.T) {
	items := []InvoiceItem{item("4", "25.00", "21"), item("2", "12.40", "9.5")}
	got := CalculateTotals(items)
	assert.True(t, got.GrandTotal.Equal(got.Subtotal.Add(got.VAT)))
}

func TestTotals_Rounded(t *testing.T) {
	// 3 × 0.125 at 0%: exact subtotal 0.375 rounds half-even to 0.38.
	got := CalculateTotals([]InvoiceItem{item("3", "0.125", "0")}).Rounded()
	assert.Equal(t, "0.38", got.GrandTotal.StringFixed(2))

	// Half-even rounds 0.125 down to 0.12.
	half := CalculateTotals([]InvoiceItem{item("1", "0.125", "0")}).Rounded()
	assert.Equal(t, "0.12", half.Subtotal.StringFixed(2))
}

func TestItem_LineAmounts(t *testing.T) {
	it := item("10", "50.00", "21.0")
	assert.True(t, it.Subtotal().Equal(dec("500.00")))
	assert.True(t, it.VATAmount().Equal(dec("105.00")))
	assert.True(t, it.Total().Equal(dec("605.00")))
}

func TestItem_Validate(t *testing.T) {
	cases := []struct {
		name    string
		item    InvoiceItem
		wantErr string
	}{
		{"valid", item("1", "10.00", "21"), ""},
		{"zero quantity ok", item("0", "10.00", "21"), ""},
		{"empty description", InvoiceItem{Quantity: dec("1"), UnitPrice: dec("1")}, "description"},
		{"negative quantity", item("-1", "10.00", "21"), "quantity"},
		{"negative price", item("1", "-10.00", "21"), "unit price"},
		{"negative rate", item("1", "10.00", "-5"), "VAT rate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.item.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
