package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-order-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-order-api/internal/domains/orders/ports"
	productsmemory "github.com/Apurer/go-gin-order-api/internal/domains/products/adapters/memory"
	productsdomain "github.com/Apurer/go-gin-order-api/internal/domains/products/domain"
	productsports "github.com/Apurer/go-gin-order-api/internal/domains/products/ports"
)

func seedCatalog(t *testing.T, quantity int64) (*productsmemory.Repository, *productsdomain.Product) {
	t.Helper()
	catalog := productsmemory.NewRepository()
	product, err := catalog.Save(context.Background(), &productsdomain.Product{
		Name:     "Keyboard",
		Price:    decimal.NewFromInt(10),
		Quantity: quantity,
	})
	require.NoError(t, err)
	return catalog, product
}

func TestCreate_ReservesStock(t *testing.T) {
	catalog, product := seedCatalog(t, 5)
	repo := NewRepository(catalog)

	order, err := repo.Create(context.Background(), &domain.Order{
		CustomerID: "c1",
		Items:      []domain.LineItem{{ProductID: product.ID, Quantity: 3, Price: product.Price}},
	})
	require.NoError(t, err)
	require.NotEmpty(t, order.ID)
	require.False(t, order.CreatedAt.IsZero())

	remaining, err := catalog.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, remaining.Quantity)

	loaded, err := repo.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	require.Equal(t, order.ID, loaded.ID)
}

func TestCreate_InsufficientStockStoresNothing(t *testing.T) {
	catalog, product := seedCatalog(t, 2)
	repo := NewRepository(catalog)

	_, err := repo.Create(context.Background(), &domain.Order{
		CustomerID: "c1",
		Items:      []domain.LineItem{{ProductID: product.ID, Quantity: 3, Price: product.Price}},
	})
	require.ErrorIs(t, err, productsports.ErrInsufficientStock)

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, orders)

	remaining, err := catalog.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, remaining.Quantity)
}

func TestGetByID_NotFound(t *testing.T) {
	catalog, _ := seedCatalog(t, 1)
	repo := NewRepository(catalog)

	_, err := repo.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, ports.ErrNotFound)
}
