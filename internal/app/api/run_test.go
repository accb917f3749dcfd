package api

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	ordersdomain "github.com/Apurer/go-gin-order-api/internal/domains/orders/domain"
	productsdomain "github.com/Apurer/go-gin-order-api/internal/domains/products/domain"
)

func TestBuildRepositories_MemoryFallback(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repos, cleanup := BuildRepositories(context.Background(), logger, "")
	defer cleanup()

	// Inline order creation only; durable workflows would write to a
	// process-local store the API cannot read.
	require.True(t, repos.InMemory)

	// The fallback orders repository must reserve stock in the fallback
	// products repository, not some disconnected instance.
	product, err := repos.Products.Save(context.Background(), &productsdomain.Product{
		Name:     "Keyboard",
		Price:    decimal.NewFromInt(10),
		Quantity: 5,
	})
	require.NoError(t, err)

	order, err := ordersdomain.NewOrder("c1", []ordersdomain.LineItem{
		{ProductID: product.ID, Quantity: 2, Price: product.Price},
	})
	require.NoError(t, err)
	_, err = repos.Orders.Create(context.Background(), order)
	require.NoError(t, err)

	remaining, err := repos.Products.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	require.EqualValues(t, 3, remaining.Quantity)
}
