package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geovannedomonte/vaiart/internal/domain"
	apperrors "github.com/geovannedomonte/vaiart/internal/errors"
	"github.com/geovannedomonte/vaiart/internal/testutil"
)

func strPtr(s string) *string {
	return &s
}

func TestProductsRepository_InsertAndFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLProductsRepository(db)

	id, err := repo.Insert(context.Background(), &domain.Product{
		Name:        "Sticker pack",
		Description: strPtr("10 vinyl stickers"),
		Price:       decimal.RequireFromString("29.90"),
		Available:   true,
	})
	require.NoError(t, err)

	found, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, "Sticker pack", found.Name)
	require.NotNil(t, found.Description)
	assert.Equal(t, "10 vinyl stickers", *found.Description)
	assert.True(t, found.Price.Equal(decimal.RequireFromString("29.90")))
	assert.True(t, found.Available)
	assert.Nil(t, found.ImageURL)
}

func TestProductsRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLProductsRepository(db)

	_, err := repo.FindByID(context.Background(), 999)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok, "expected NotFoundError, got %v", err)
}

func TestProductsRepository_FindAll_PagedAndSortedByName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLProductsRepository(db)

	for _, name := range []string{"Mug", "Banner", "Sticker"} {
		_, err := repo.Insert(context.Background(), &domain.Product{
			Name:      name,
			Price:     decimal.RequireFromString("10.00"),
			Available: true,
		})
		require.NoError(t, err)
	}

	products, total, err := repo.FindAll(context.Background(), 2, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(3), total)
	require.Len(t, products, 2)
	assert.Equal(t, "Banner", products[0].Name)
	assert.Equal(t, "Mug", products[1].Name)

	products, _, err = repo.FindAll(context.Background(), 2, 2)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Sticker", products[0].Name)
}

func TestProductsRepository_FindAvailable_FiltersSoldOut(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLProductsRepository(db)

	_, err := repo.Insert(context.Background(), &domain.Product{
		Name: "Visible", Price: decimal.RequireFromString("10.00"), Available: true,
	})
	require.NoError(t, err)
	_, err = repo.Insert(context.Background(), &domain.Product{
		Name: "Hidden", Price: decimal.RequireFromString("10.00"), Available: false,
	})
	require.NoError(t, err)

	products, total, err := repo.FindAvailable(context.Background(), 10, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(1), total)
	require.Len(t, products, 1)
	assert.Equal(t, "Visible", products[0].Name)
}

func TestProductsRepository_SearchByName_CaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLProductsRepository(db)

	for _, name := range []string{"Custom Banner", "Sticker pack", "banner stand"} {
		_, err := repo.Insert(context.Background(), &domain.Product{
			Name: name, Price: decimal.RequireFromString("10.00"), Available: true,
		})
		require.NoError(t, err)
	}

	products, total, err := repo.SearchByName(context.Background(), "BANNER", 10, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(2), total)
	assert.Len(t, products, 2)
}

func TestProductsRepository_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLProductsRepository(db)

	id, err := repo.Insert(context.Background(), &domain.Product{
		Name: "Sticker", Price: decimal.RequireFromString("29.90"), Available: true,
	})
	require.NoError(t, err)

	err = repo.Update(context.Background(), &domain.Product{
		ID:        id,
		Name:      "Sticker XL",
		Price:     decimal.RequireFromString("39.90"),
		Available: false,
	})
	require.NoError(t, err)

	found, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Sticker XL", found.Name)
	assert.True(t, found.Price.Equal(decimal.RequireFromString("39.90")))
	assert.False(t, found.Available)
}

func TestProductsRepository_Delete_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLProductsRepository(db)

	err := repo.Delete(context.Background(), 999)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok, "expected NotFoundError, got %v", err)
}

func TestProductsRepository_HasOrderReferences(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLProductsRepository(db)

	id, err := repo.Insert(context.Background(), &domain.Product{
		Name: "Sticker", Price: decimal.RequireFromString("29.90"), Available: true,
	})
	require.NoError(t, err)

	referenced, err := repo.HasOrderReferences(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, referenced)

	res, err := db.Exec(
		`INSERT INTO orders (customer_name, customer_email, status, total) VALUES ('Maria', 'maria@example.com', 'AWAITING_PAYMENT', 29.90)`,
	)
	require.NoError(t, err)
	orderID, err := res.LastInsertId()
	require.NoError(t, err)

	_, err = db.Exec(
		`INSERT INTO order_lines (order_id, product_id, quantity, unit_price, subtotal) VALUES (?, ?, 1, 29.90, 29.90)`,
		orderID, id,
	)
	require.NoError(t, err)

	referenced, err = repo.HasOrderReferences(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, referenced)
}
