package service

import (
	"context"
	"testing"

	"github.com/s9hmzyt46y-beep/Laimis/internal/contract"
	"github.com/s9hmzyt46y-beep/Laimis/internal/domain"
	"github.com/s9hmzyt46y-beep/Laimis/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary_EmptyBooks(t *testing.T) {
	_, invoices, items, expenses, _ := setupRepos(t)

	svc := NewReportService(invoices, items, expenses)

	resp, err := svc.Summary(context.Background(), contract.NewSummaryRequest())
	require.NoError(t, err)

	assert.Equal(t, 0, resp.InvoiceCount)
	assert.Equal(t, "0.00", resp.Invoiced)
	assert.Equal(t, "0.00", resp.Outstanding)
	assert.Equal(t, "0.00", resp.Net)
	assert.Empty(t, resp.ByStatus)
	assert.Empty(t, resp.ByCategory)
}

func TestSummary_AggregatesInvoicesAndExpenses(t *testing.T) {
	clients, invoices, items, expenses, uow := setupRepos(t)
	ctx := context.Background()

	client := testutil.NewTestClient("UAB Medis")
	require.NoError(t, clients.Create(ctx, client))

	invoiceSvc := NewInvoiceService(invoices, items, clients, uow)
	expenseSvc := NewExpenseService(expenses)

	// Pending: 10 × 50.00 @ 21% = 605.00
	pending := testutil.NewTestInvoice(client.ID)
	require.NoError(t, invoiceSvc.Create(ctx, pending, []domain.InvoiceItem{
		*testutil.NewTestItem("", "Konsultacija", "50.00", testutil.WithQuantity("10")),
	}))

	// Paid: 1 × 100.00 @ 21% = 121.00
	paid := testutil.NewTestInvoice(client.ID)
	require.NoError(t, invoiceSvc.Create(ctx, paid, []domain.InvoiceItem{
		*testutil.NewTestItem("", "Dizainas", "100.00"),
	}))
	require.NoError(t, invoiceSvc.MarkPaid(ctx, paid.ID))

	// Cancelled: 1 × 40.00 @ 21% = 48.40, must not count as invoiced
	cancelled := testutil.NewTestInvoice(client.ID)
	require.NoError(t, invoiceSvc.Create(ctx, cancelled, []domain.InvoiceItem{
		*testutil.NewTestItem("", "Atšaukta paslauga", "40.00"),
	}))
	require.NoError(t, invoiceSvc.Cancel(ctx, cancelled.ID))

	rent := testutil.NewTestExpense("Nuomotojas", "300.00", testutil.WithCategory(domain.CategoryRent))
	rent.VATAmount = decimal.RequireFromString("52.07")
	require.NoError(t, expenseSvc.Create(ctx, rent))
	require.NoError(t, expenseSvc.Create(ctx, testutil.NewTestExpense("Kanceliarija", "50.00")))

	svc := NewReportService(invoices, items, expenses)
	resp, err := svc.Summary(ctx, contract.NewSummaryRequest())
	require.NoError(t, err)

	assert.Equal(t, 3, resp.InvoiceCount)
	assert.Equal(t, "726.00", resp.Invoiced, "cancelled invoices do not count as invoiced")
	assert.Equal(t, "605.00", resp.Outstanding)
	assert.Equal(t, "121.00", resp.Paid)

	require.Len(t, resp.ByStatus, 3)
	assert.Equal(t, "pending", resp.ByStatus[0].Status)
	assert.Equal(t, "605.00", resp.ByStatus[0].Amount)
	assert.Equal(t, "paid", resp.ByStatus[1].Status)
	assert.Equal(t, "121.00", resp.ByStatus[1].Amount)
	assert.Equal(t, "cancelled", resp.ByStatus[2].Status)
	assert.Equal(t, "48.40", resp.ByStatus[2].Amount)

	assert.Equal(t, 2, resp.ExpenseCount)
	assert.Equal(t, "350.00", resp.ExpenseTotal)
	assert.Equal(t, "52.07", resp.ExpenseVAT)

	// Category lines follow the canonical category order: rent before other.
	require.Len(t, resp.ByCategory, 2)
	assert.Equal(t, "Nuoma", resp.ByCategory[0].Category)
	assert.Equal(t, "300.00", resp.ByCategory[0].Amount)
	assert.Equal(t, "Kita", resp.ByCategory[1].Category)

	assert.Equal(t, "376.00", resp.Net, "net is invoiced minus expenses")
}

func TestSummary_OverdueCountsAsOutstanding(t *testing.T) {
	clients, invoices, items, expenses, uow := setupRepos(t)
	ctx := context.Background()

	client := testutil.NewTestClient("UAB Medis")
	require.NoError(t, clients.Create(ctx, client))

	invoiceSvc := NewInvoiceService(invoices, items, clients, uow)

	inv := testutil.NewTestInvoice(client.ID, testutil.WithInvoiceStatus(domain.InvoiceOverdue))
	require.NoError(t, invoiceSvc.Create(ctx, inv, []domain.InvoiceItem{
		*testutil.NewTestItem("", "Vėluojanti paslauga", "200.00"),
	}))

	svc := NewReportService(invoices, items, expenses)
	resp, err := svc.Summary(ctx, contract.NewSummaryRequest())
	require.NoError(t, err)

	assert.Equal(t, "242.00", resp.Invoiced)
	assert.Equal(t, "242.00", resp.Outstanding)
	assert.Equal(t, "0.00", resp.Paid)
	require.Len(t, resp.ByStatus, 1)
	assert.Equal(t, "overdue", resp.ByStatus[0].Status)
}
