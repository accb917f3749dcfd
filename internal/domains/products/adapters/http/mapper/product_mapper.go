package mapper

import (
	"github.com/shopspring/decimal"

	productsdomain "github.com/Apurer/go-gin-order-api/internal/domains/products/domain"
)

// CreateProductRequest is the transport-layer shape of a catalog registration.
type CreateProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Quantity int64           `json:"quantity" binding:"gte=0"`
	Tags     []string        `json:"tags,omitempty"`
}

// RestockRequest raises the available stock of a product.
type RestockRequest struct {
	Quantity int64 `json:"quantity" binding:"required,gt=0"`
}

// Product is the transport-layer representation of a catalog item.
type Product struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
	Tags     []string        `json:"tags,omitempty"`
}

// FromDomainProduct converts a domain product to the transport representation.
func FromDomainProduct(product *productsdomain.Product) Product {
	if product == nil {
		return Product{}
	}
	return Product{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Quantity: product.Quantity,
		Tags:     product.Tags,
	}
}

// FromDomainProductList converts a list of domain products.
func FromDomainProductList(products []*productsdomain.Product) []Product {
	result := make([]Product, 0, len(products))
	for _, product := range products {
		result = append(result, FromDomainProduct(product))
	}
	return result
}
