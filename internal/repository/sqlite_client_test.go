package repository

import (
	"context"
	"testing"

	"github.com/s9hmzyt46y-beep/Laimis/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteClientRepo(db)
	ctx := context.Background()

	c := testutil.NewTestClient("UAB Pavyzdys",
		testutil.WithCompanyCode("304123456"),
		testutil.WithEmail("info@pavyzdys.lt"))
	require.NoError(t, repo.Create(ctx, c))

	fetched, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, fetched.ID)
	assert.Equal(t, "UAB Pavyzdys", fetched.Name)
	assert.Equal(t, "304123456", fetched.CompanyCode)
	assert.Equal(t, "info@pavyzdys.lt", fetched.Email)
}

func TestClientRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteClientRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestClientRepo_List_SortedByName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteClientRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestClient("Zuvis")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestClient("antis")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestClient("Bitė")))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "antis", list[0].Name, "ordering is case-insensitive")
	assert.Equal(t, "Bitė", list[1].Name)
	assert.Equal(t, "Zuvis", list[2].Name)
}

func TestClientRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteClientRepo(db)
	ctx := context.Background()

	c := testutil.NewTestClient("Old Name")
	require.NoError(t, repo.Create(ctx, c))

	c.Name = "New Name"
	c.Phone = "+370 600 00000"
	require.NoError(t, repo.Update(ctx, c))

	fetched, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", fetched.Name)
	assert.Equal(t, "+370 600 00000", fetched.Phone)
}

func TestClientRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteClientRepo(db)
	ctx := context.Background()

	c := testutil.NewTestClient("Gone")
	require.NoError(t, repo.Create(ctx, c))
	require.NoError(t, repo.Delete(ctx, c.ID))

	_, err := repo.GetByID(ctx, c.ID)
	assert.Error(t, err)
}

func TestClientRepo_CountInvoices(t *testing.T) {
	db := testutil.NewTestDB(t)
	clients := NewSQLiteClientRepo(db)
	invoices := NewSQLiteInvoiceRepo(db)
	ctx := context.Background()

	c := testutil.NewTestClient("Billed")
	require.NoError(t, clients.Create(ctx, c))

	n, err := clients.CountInvoices(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, invoices.Create(ctx, testutil.NewTestInvoice(c.ID)))
	require.NoError(t, invoices.Create(ctx, testutil.NewTestInvoice(c.ID)))

	n, err = clients.CountInvoices(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
