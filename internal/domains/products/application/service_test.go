package application

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-order-api/internal/domains/products/adapters/memory"
	"github.com/Apurer/go-gin-order-api/internal/domains/products/ports"
)

func TestCreateProduct(t *testing.T) {
	svc := NewService(memory.NewRepository())

	product, err := svc.CreateProduct(context.Background(), "Keyboard",
		decimal.RequireFromString("49.90"), 10, []string{"peripherals"})
	require.NoError(t, err)
	require.NotEmpty(t, product.ID)
	require.Equal(t, "Keyboard", product.Name)
	require.EqualValues(t, 10, product.Quantity)
	require.Equal(t, []string{"peripherals"}, product.Tags)

	loaded, err := svc.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	require.True(t, loaded.Price.Equal(decimal.RequireFromString("49.90")))
}

func TestCreateProduct_RejectsInvalid(t *testing.T) {
	svc := NewService(memory.NewRepository())

	cases := []struct {
		name     string
		product  string
		price    decimal.Decimal
		quantity int64
	}{
		{"empty name", "  ", decimal.NewFromInt(1), 1},
		{"negative price", "Mouse", decimal.NewFromInt(-1), 1},
		{"negative quantity", "Mouse", decimal.NewFromInt(1), -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateProduct(context.Background(), tc.product, tc.price, tc.quantity, nil)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestFindAllByID_ReturnsOnlyExisting(t *testing.T) {
	svc := NewService(memory.NewRepository())

	created, err := svc.CreateProduct(context.Background(), "Mouse", decimal.NewFromInt(5), 3, nil)
	require.NoError(t, err)

	found, err := svc.FindAllByID(context.Background(), []string{created.ID, "missing"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.Equal(t, created.ID, found[0].ID)
}

func TestRestock(t *testing.T) {
	svc := NewService(memory.NewRepository())

	created, err := svc.CreateProduct(context.Background(), "Mouse", decimal.NewFromInt(5), 3, nil)
	require.NoError(t, err)

	restocked, err := svc.Restock(context.Background(), created.ID, 7)
	require.NoError(t, err)
	require.EqualValues(t, 10, restocked.Quantity)
}

func TestRestock_Invalid(t *testing.T) {
	svc := NewService(memory.NewRepository())

	created, err := svc.CreateProduct(context.Background(), "Mouse", decimal.NewFromInt(5), 3, nil)
	require.NoError(t, err)

	_, err = svc.Restock(context.Background(), created.ID, 0)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Restock(context.Background(), "missing", 1)
	require.ErrorIs(t, err, ports.ErrNotFound)
}
