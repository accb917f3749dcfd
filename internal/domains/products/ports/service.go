package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Apurer/go-gin-order-api/internal/domains/products/domain"
)

// Service exposes catalog use cases to adapters.
type Service interface {
	CreateProduct(ctx context.Context, name string, price decimal.Decimal, quantity int64, tags []string) (*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	FindAllByID(ctx context.Context, ids []string) ([]*domain.Product, error)
	Restock(ctx context.Context, id string, quantity int64) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
}
