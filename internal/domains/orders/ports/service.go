package ports

import (
	"context"

	"github.com/Apurer/go-gin-order-api/internal/domains/orders/domain"
)

// RequestedItem is one (product, quantity) pair of a create-order request.
// Any caller-supplied price is deliberately absent: unit prices always come
// from the catalog.
type RequestedItem struct {
	ProductID string
	Quantity  int64
}

// CreateOrderInput carries the create-order request payload.
type CreateOrderInput struct {
	CustomerID string
	Items      []RequestedItem
}

// Service exposes order use cases to adapters.
type Service interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
	GetOrderByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
}
