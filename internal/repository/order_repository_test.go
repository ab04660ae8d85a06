package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"orderdash/internal/db"
	"orderdash/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := db.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&model.Account{}, &model.Order{}))
	return gormDB
}

// seedTestOrders inserts three orders with ascending creation times so the
// descending default ordering is observable.
func seedTestOrders(t *testing.T, repo OrderRepository) []model.Order {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	orders := []model.Order{
		{ProductName: "Widget", Amount: decimal.RequireFromString("19.99"), CreatedAt: base},
		{ProductName: "Gadget", Amount: decimal.RequireFromString("5.00"), CreatedAt: base.Add(time.Hour)},
		{ProductName: "Widget Pro", Amount: decimal.RequireFromString("49.99"), CreatedAt: base.Add(2 * time.Hour)},
	}
	for i := range orders {
		require.NoError(t, repo.Create(ctx, &orders[i]))
		require.NotZero(t, orders[i].ID)
	}
	return orders
}

func TestOrderRepository_ListNewestFirst(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))
	seedTestOrders(t, repo)

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "Widget Pro", orders[0].ProductName)
	assert.Equal(t, "Gadget", orders[1].ProductName)
	assert.Equal(t, "Widget", orders[2].ProductName)
}

func TestOrderRepository_SearchByProduct(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))
	seedTestOrders(t, repo)
	ctx := context.Background()

	t.Run("matching subset newest first", func(t *testing.T) {
		orders, err := repo.SearchByProduct(ctx, "Widg")
		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "Widget Pro", orders[0].ProductName)
		assert.Equal(t, "Widget", orders[1].ProductName)
	})

	t.Run("no match is empty, not an error", func(t *testing.T) {
		orders, err := repo.SearchByProduct(ctx, "Sprocket")
		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}

func TestOrderRepository_CreateThenDelete(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))
	seeded := seedTestOrders(t, repo)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	target, err := repo.FindByID(ctx, seeded[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", target.ProductName)
	assert.True(t, decimal.RequireFromString("19.99").Equal(target.Amount))

	require.NoError(t, repo.Delete(ctx, target))

	_, err = repo.FindByID(ctx, seeded[0].ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestOrderRepository_FindByIDUnknown(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))

	_, err := repo.FindByID(context.Background(), 12345)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
