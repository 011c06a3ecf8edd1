package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/s9hmzyt46y-beep/Laimis/internal/db"
	"github.com/s9hmzyt46y-beep/Laimis/internal/domain"
	"github.com/s9hmzyt46y-beep/Laimis/internal/repository"
	"github.com/s9hmzyt46y-beep/Laimis/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepos(t *testing.T) (
	repository.ClientRepo,
	repository.InvoiceRepo,
	repository.InvoiceItemRepo,
	repository.ExpenseRepo,
	db.UnitOfWork,
) {
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteClientRepo(database),
		repository.NewSQLiteInvoiceRepo(database),
		repository.NewSQLiteInvoiceItemRepo(database),
		repository.NewSQLiteExpenseRepo(database),
		testutil.NewTestUoW(database)
}

func TestInvoiceCreate_PersistsHeaderAndItems(t *testing.T) {
	clients, invoices, items, _, uow := setupRepos(t)
	ctx := context.Background()

	client := testutil.NewTestClient("UAB Medis")
	require.NoError(t, clients.Create(ctx, client))

	svc := NewInvoiceService(invoices, items, clients, uow)

	inv := testutil.NewTestInvoice(client.ID, testutil.WithInvoiceNumber("INV-2025-001"))
	lines := []domain.InvoiceItem{
		*testutil.NewTestItem("", "Konsultacija", "50.00", testutil.WithQuantity("10")),
		*testutil.NewTestItem("", "Kelionės išlaidos", "30.00"),
	}
	require.NoError(t, svc.Create(ctx, inv, lines))

	stored, err := invoices.GetByNumber(ctx, "INV-2025-001")
	require.NoError(t, err)
	assert.Equal(t, domain.InvoicePending, stored.Status)

	storedItems, err := items.ListByInvoice(ctx, stored.ID)
	require.NoError(t, err)
	require.Len(t, storedItems, 2)
	assert.Equal(t, "Konsultacija", storedItems[0].Description, "insertion order should survive")

	totals, err := svc.Totals(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "641.30", totals.Rounded().GrandTotal.StringFixed(2)) // 500 + 105 + 30 + 6.30
}

func TestInvoiceCreate_ManyItemsKeepInsertionOrder(t *testing.T) {
	// Every item in a transactional create carries the same timestamp,
	// so ordering must not depend on created_at or on how the random
	// item IDs happen to sort.
	clients, invoices, items, _, uow := setupRepos(t)
	ctx := context.Background()

	client := testutil.NewTestClient("UAB Medis")
	require.NoError(t, clients.Create(ctx, client))

	svc := NewInvoiceService(invoices, items, clients, uow)

	descs := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
	var lines []domain.InvoiceItem
	for _, d := range descs {
		lines = append(lines, *testutil.NewTestItem("", d, "10.00"))
	}

	inv := testutil.NewTestInvoice(client.ID, testutil.WithInvoiceNumber("INV-ORDER"))
	require.NoError(t, svc.Create(ctx, inv, lines))

	stored, err := items.ListByInvoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Len(t, stored, len(descs))
	got := make([]string, len(stored))
	for i, it := range stored {
		got[i] = it.Description
	}
	require.Equal(t, descs, got)
}

func TestInvoiceCreate_RejectsUnknownClient(t *testing.T) {
	clients, invoices, items, _, uow := setupRepos(t)
	ctx := context.Background()

	svc := NewInvoiceService(invoices, items, clients, uow)

	inv := testutil.NewTestInvoice("no-such-client")
	err := svc.Create(ctx, inv, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "looking up client")
}

func TestInvoiceCreate_RejectsDuplicateNumber(t *testing.T) {
	clients, invoices, items, _, uow := setupRepos(t)
	ctx := context.Background()

	client := testutil.NewTestClient("UAB Medis")
	require.NoError(t, clients.Create(ctx, client))

	svc := NewInvoiceService(invoices, items, clients, uow)

	first := testutil.NewTestInvoice(client.ID, testutil.WithInvoiceNumber("INV-DUP"))
	require.NoError(t, svc.Create(ctx, first, nil))

	second := testutil.NewTestInvoice(client.ID, testutil.WithInvoiceNumber("INV-DUP"))
	err := svc.Create(ctx, second, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")
}

func TestInvoiceCreate_RejectsInvalidItem(t *testing.T) {
	clients, invoices, items, _, uow := setupRepos(t)
	ctx := context.Background()

	client := testutil.NewTestClient("UAB Medis")
	require.NoError(t, clients.Create(ctx, client))

	svc := NewInvoiceService(invoices, items, clients, uow)

	inv := testutil.NewTestInvoice(client.ID)
	bad := []domain.InvoiceItem{
		*testutil.NewTestItem("", "", "10.00"),
	}
	err := svc.Create(ctx, inv, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "item 1")
}

func TestInvoiceCreate_FailedItemWriteRollsBackHeader(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	clients := repository.NewSQLiteClientRepo(database)
	invoices := repository.NewSQLiteInvoiceRepo(database)
	items := repository.NewSQLiteInvoiceItemRepo(database)

	client := testutil.NewTestClient("UAB Medis")
	require.NoError(t, clients.Create(ctx, client))

	// Exec 1 is the invoice header, exec 2 the first item insert.
	injected := errors.New("disk is full")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: injected}

	svc := NewInvoiceService(invoices, items, clients, uow)

	inv := testutil.NewTestInvoice(client.ID, testutil.WithInvoiceNumber("INV-ROLLBACK"))
	lines := []domain.InvoiceItem{
		*testutil.NewTestItem("", "Konsultacija", "50.00"),
	}
	err := svc.Create(ctx, inv, lines)
	require.ErrorIs(t, err, injected)

	_, err = invoices.GetByNumber(ctx, "INV-ROLLBACK")
	assert.Error(t, err, "header write should have been rolled back")
}

func TestInvoiceMarkPaid_SetsPaymentDate(t *testing.T) {
	clients, invoices, items, _, uow := setupRepos(t)
	ctx := context.Background()

	client := testutil.NewTestClient("UAB Medis")
	require.NoError(t, clients.Create(ctx, client))

	svc := NewInvoiceService(invoices, items, clients, uow)

	inv := testutil.NewTestInvoice(client.ID)
	require.NoError(t, svc.Create(ctx, inv, nil))

	require.NoError(t, svc.MarkPaid(ctx, inv.ID))

	updated, err := invoices.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoicePaid, updated.Status)
	require.NotNil(t, updated.PaymentDate)

	// Paying again is a no-op, not an error.
	require.NoError(t, svc.MarkPaid(ctx, inv.ID))
}

func TestInvoiceCancel_RefusesPaidInvoice(t *testing.T) {
	clients, invoices, items, _, uow := setupRepos(t)
	ctx := context.Background()

	client := testutil.NewTestClient("UAB Medis")
	require.NoError(t, clients.Create(ctx, client))

	svc := NewInvoiceService(invoices, items, clients, uow)

	inv := testutil.NewTestInvoice(client.ID)
	require.NoError(t, svc.Create(ctx, inv, nil))
	require.NoError(t, svc.MarkPaid(ctx, inv.ID))

	err := svc.Cancel(ctx, inv.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot cancel a paid invoice")
}

func TestInvoiceSweepOverdue_FlipsPastDuePending(t *testing.T) {
	clients, invoices, items, _, uow := setupRepos(t)
	ctx := context.Background()

	client := testutil.NewTestClient("UAB Medis")
	require.NoError(t, clients.Create(ctx, client))

	svc := NewInvoiceService(invoices, items, clients, uow)

	past := time.Now().UTC().AddDate(0, 0, -10)
	future := time.Now().UTC().AddDate(0, 0, 10)

	late := testutil.NewTestInvoice(client.ID, testutil.WithDueDate(past))
	require.NoError(t, svc.Create(ctx, late, nil))
	onTime := testutil.NewTestInvoice(client.ID, testutil.WithDueDate(future))
	require.NoError(t, svc.Create(ctx, onTime, nil))

	n, err := svc.SweepOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	updated, err := invoices.GetByID(ctx, late.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceOverdue, updated.Status)

	untouched, err := invoices.GetByID(ctx, onTime.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoicePending, untouched.Status)
}

func TestInvoiceView_RendersClientItemsAndTotals(t *testing.T) {
	clients, invoices, items, _, uow := setupRepos(t)
	ctx := context.Background()

	client := testutil.NewTestClient("UAB Medis",
		testutil.WithCompanyCode("304512345"),
		testutil.WithEmail("info@medis.lt"),
	)
	require.NoError(t, clients.Create(ctx, client))

	svc := NewInvoiceService(invoices, items, clients, uow)

	inv := testutil.NewTestInvoice(client.ID, testutil.WithInvoiceNumber("INV-VIEW-1"))
	lines := []domain.InvoiceItem{
		*testutil.NewTestItem("", "Konsultacija", "50.00", testutil.WithQuantity("10")),
	}
	require.NoError(t, svc.Create(ctx, inv, lines))

	view, err := svc.View(ctx, "inv-view-1") // lookup is case-insensitive
	require.NoError(t, err)

	assert.Equal(t, "INV-VIEW-1", view.InvoiceNumber)
	assert.Equal(t, "UAB Medis", view.ClientName)
	assert.Equal(t, "304512345", view.ClientCode)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "500.00", view.Items[0].Subtotal)
	assert.Equal(t, "105.00", view.Items[0].VAT)
	assert.Equal(t, "500.00", view.Subtotal)
	assert.Equal(t, "105.00", view.VATTotal)
	assert.Equal(t, "605.00", view.GrandTotal)
}

func TestInvoiceList_RejectsInvalidStatusFilter(t *testing.T) {
	clients, invoices, items, _, uow := setupRepos(t)
	svc := NewInvoiceService(invoices, items, clients, uow)

	_, err := svc.List(context.Background(), "shredded")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid invoice status")
}
