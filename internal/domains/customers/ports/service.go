package ports

import (
	"context"

	"github.com/Apurer/go-gin-order-api/internal/domains/customers/domain"
)

// Service exposes customer use cases to adapters.
type Service interface {
	CreateCustomer(ctx context.Context, name, email string) (*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.Customer, error)
}
