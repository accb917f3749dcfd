package ports

import (
	"context"

	customersdomain "github.com/Apurer/go-gin-order-api/internal/domains/customers/domain"
	productsdomain "github.com/Apurer/go-gin-order-api/internal/domains/products/domain"
)

// CustomerDirectory is the narrow view of the customers context consumed by
// order creation. Existence is the only fact the workflow depends on.
type CustomerDirectory interface {
	GetByID(ctx context.Context, id string) (*customersdomain.Customer, error)
}

// ProductCatalog is the narrow view of the products context consumed by order
// creation. FindAllByID returns only products that exist; missing ids are
// absent from the result.
type ProductCatalog interface {
	FindAllByID(ctx context.Context, ids []string) ([]*productsdomain.Product, error)
}
