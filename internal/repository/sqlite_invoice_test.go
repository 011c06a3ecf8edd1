package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/s9hmzyt46y-beep/Laimis/internal/domain"
	"github.com/s9hmzyt46y-beep/Laimis/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestClient(t *testing.T, db *sql.DB, name string) *domain.Client {
	t.Helper()
	c := testutil.NewTestClient(name)
	require.NoError(t, NewSQLiteClientRepo(db).Create(context.Background(), c))
	return c
}

func TestInvoiceRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteInvoiceRepo(db)
	ctx := context.Background()

	c := createTestClient(t, db, "UAB Pavyzdys")
	due := time.Now().UTC().AddDate(0, 1, 0)
	inv := testutil.NewTestInvoice(c.ID,
		testutil.WithInvoiceNumber("INV-2025-001"),
		testutil.WithDueDate(due))
	inv.Notes = "Payable within 30 days"
	require.NoError(t, repo.Create(ctx, inv))

	fetched, err := repo.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, "INV-2025-001", fetched.InvoiceNumber)
	assert.Equal(t, c.ID, fetched.ClientID)
	assert.Equal(t, domain.InvoicePending, fetched.Status)
	assert.Equal(t, "Payable within 30 days", fetched.Notes)
	require.NotNil(t, fetched.DueDate)
	assert.Equal(t, due.Format("2006-01-02"), fetched.DueDate.Format("2006-01-02"))
	assert.Nil(t, fetched.PaymentDate)
}

func TestInvoiceRepo_GetByNumber_CaseInsensitive(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteInvoiceRepo(db)
	ctx := context.Background()

	c := createTestClient(t, db, "Client")
	inv := testutil.NewTestInvoice(c.ID, testutil.WithInvoiceNumber("INV-ABC-1"))
	require.NoError(t, repo.Create(ctx, inv))

	fetched, err := repo.GetByNumber(ctx, "inv-abc-1")
	require.NoError(t, err)
	assert.Equal(t, inv.ID, fetched.ID)
}

func TestInvoiceRepo_Create_DuplicateNumber(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteInvoiceRepo(db)
	ctx := context.Background()

	c := createTestClient(t, db, "Client")
	require.NoError(t, repo.Create(ctx, testutil.NewTestInvoice(c.ID, testutil.WithInvoiceNumber("INV-DUP"))))

	err := repo.Create(ctx, testutil.NewTestInvoice(c.ID, testutil.WithInvoiceNumber("INV-DUP")))
	require.Error(t, err)
}

func TestInvoiceRepo_List_JoinsClientAndFilters(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteInvoiceRepo(db)
	ctx := context.Background()

	c := createTestClient(t, db, "Žalia Lapė")
	require.NoError(t, repo.Create(ctx, testutil.NewTestInvoice(c.ID)))
	paid := testutil.NewTestInvoice(c.ID, testutil.WithInvoiceStatus(domain.InvoicePaid))
	require.NoError(t, repo.Create(ctx, paid))

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Žalia Lapė", all[0].ClientName)

	onlyPaid, err := repo.List(ctx, domain.InvoicePaid)
	require.NoError(t, err)
	require.Len(t, onlyPaid, 1)
	assert.Equal(t, paid.ID, onlyPaid[0].Invoice.ID)
}

func TestInvoiceRepo_ListByClient(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteInvoiceRepo(db)
	ctx := context.Background()

	a := createTestClient(t, db, "A")
	b := createTestClient(t, db, "B")
	require.NoError(t, repo.Create(ctx, testutil.NewTestInvoice(a.ID)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestInvoice(a.ID)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestInvoice(b.ID)))

	list, err := repo.ListByClient(ctx, a.ID)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestInvoiceRepo_Update_PersistsStatusTransition(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteInvoiceRepo(db)
	ctx := context.Background()

	c := createTestClient(t, db, "Client")
	inv := testutil.NewTestInvoice(c.ID)
	require.NoError(t, repo.Create(ctx, inv))

	now := time.Now().UTC()
	require.NoError(t, inv.MarkPaid(now))
	require.NoError(t, repo.Update(ctx, inv))

	fetched, err := repo.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoicePaid, fetched.Status)
	require.NotNil(t, fetched.PaymentDate)
	assert.Equal(t, now.Format("2006-01-02"), fetched.PaymentDate.Format("2006-01-02"))
}

func TestInvoiceRepo_SweepOverdue(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteInvoiceRepo(db)
	ctx := context.Background()

	c := createTestClient(t, db, "Client")
	today := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	pastDue := testutil.NewTestInvoice(c.ID, testutil.WithDueDate(today.AddDate(0, 0, -3)))
	futureDue := testutil.NewTestInvoice(c.ID, testutil.WithDueDate(today.AddDate(0, 0, 3)))
	noDue := testutil.NewTestInvoice(c.ID)
	paidPastDue := testutil.NewTestInvoice(c.ID,
		testutil.WithDueDate(today.AddDate(0, 0, -3)),
		testutil.WithInvoiceStatus(domain.InvoicePaid))
	for _, inv := range []*domain.Invoice{pastDue, futureDue, noDue, paidPastDue} {
		require.NoError(t, repo.Create(ctx, inv))
	}

	n, err := repo.SweepOverdue(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	fetched, err := repo.GetByID(ctx, pastDue.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceOverdue, fetched.Status)

	untouched, err := repo.GetByID(ctx, futureDue.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoicePending, untouched.Status)

	// Sweeping again changes nothing.
	n, err = repo.SweepOverdue(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestInvoiceRepo_Delete_CascadesToItems(t *testing.T) {
	db := testutil.NewTestDB(t)
	invoices := NewSQLiteInvoiceRepo(db)
	items := NewSQLiteInvoiceItemRepo(db)
	ctx := context.Background()

	c := createTestClient(t, db, "Client")
	inv := testutil.NewTestInvoice(c.ID)
	require.NoError(t, invoices.Create(ctx, inv))
	require.NoError(t, items.Create(ctx, testutil.NewTestItem(inv.ID, "Consulting", "100.00")))

	require.NoError(t, invoices.Delete(ctx, inv.ID))

	left, err := items.ListByInvoice(ctx, inv.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
}
