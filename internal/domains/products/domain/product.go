package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyName        = errors.New("product name is required")
	ErrNegativePrice    = errors.New("product price must not be negative")
	ErrNegativeQuantity = errors.New("product quantity must not be negative")
)

// Product models a catalog item with its unit price and available stock.
type Product struct {
	ID       string
	Name     string
	Price    decimal.Decimal
	Quantity int64
	Tags     []string
}

// NewProduct validates and constructs a catalog product.
func NewProduct(id, name string, price decimal.Decimal, quantity int64) (*Product, error) {
	product := &Product{ID: id, Price: price, Quantity: quantity}
	if err := product.Rename(name); err != nil {
		return nil, err
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	return product, nil
}

// Rename trims and validates the product name.
func (p *Product) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	p.Name = name
	return nil
}

// ReplaceTags overwrites catalog tags, dropping empty entries.
func (p *Product) ReplaceTags(tags []string) {
	cleaned := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	p.Tags = cleaned
}

// Validate enforces invariants on the product.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.Price.IsNegative() {
		return ErrNegativePrice
	}
	if p.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}
