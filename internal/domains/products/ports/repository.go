package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-order-api/internal/domains/products/domain"
)

var (
	ErrNotFound          = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient product stock")
)

// StockDecrement identifies a product and the quantity to subtract from its stock.
type StockDecrement struct {
	ProductID string
	Quantity  int64
}

// Repository persists catalog products and guards stock mutation.
type Repository interface {
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	// FindAllByID returns the products whose identifiers exist; missing ids
	// are simply absent from the result.
	FindAllByID(ctx context.Context, ids []string) ([]*domain.Product, error)
	// UpdateQuantity subtracts the given quantities from stock. Each decrement
	// is conditional: when any product lacks stock the whole call fails with
	// ErrInsufficientStock and no stock is mutated.
	UpdateQuantity(ctx context.Context, decrements []StockDecrement) error
	// Restock adds quantity to the product's stock as a single relative
	// mutation, never a read-then-write, so concurrent decrements are not
	// clobbered.
	Restock(ctx context.Context, id string, quantity int64) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
}
