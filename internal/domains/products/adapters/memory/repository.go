package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/Apurer/go-gin-order-api/internal/domains/products/domain"
	"github.com/Apurer/go-gin-order-api/internal/domains/products/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory catalog persistence adapter.
type Repository struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
}

func NewRepository() *Repository {
	return &Repository{products: map[string]*domain.Product{}}
}

func (r *Repository) Save(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	clone := cloneProduct(product)
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if clone.ID == "" {
		clone.ID = uuid.NewString()
	}
	r.products[clone.ID] = clone
	return cloneProduct(clone), nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneProduct(product), nil
}

func (r *Repository) FindAllByID(_ context.Context, ids []string) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	found := make([]*domain.Product, 0, len(ids))
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if product, ok := r.products[id]; ok {
			found = append(found, cloneProduct(product))
		}
	}
	return found, nil
}

// UpdateQuantity validates every decrement under the lock before applying any,
// so concurrent callers can never jointly drive stock below zero.
func (r *Repository) UpdateQuantity(_ context.Context, decrements []ports.StockDecrement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, dec := range decrements {
		product, ok := r.products[dec.ProductID]
		if !ok {
			return fmt.Errorf("%w: product %s", ports.ErrNotFound, dec.ProductID)
		}
		if product.Quantity < dec.Quantity {
			return fmt.Errorf("%w: product %s", ports.ErrInsufficientStock, dec.ProductID)
		}
	}
	for _, dec := range decrements {
		r.products[dec.ProductID].Quantity -= dec.Quantity
	}
	return nil
}

// Restock increments stock under the write lock so a decrement landing just
// before it is never overwritten.
func (r *Repository) Restock(_ context.Context, id string, quantity int64) (*domain.Product, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("restock quantity must be positive, got %d", quantity)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	product.Quantity += quantity
	return cloneProduct(product), nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Product, 0, len(r.products))
	for _, product := range r.products {
		list = append(list, cloneProduct(product))
	}
	return list, nil
}

func cloneProduct(product *domain.Product) *domain.Product {
	clone := *product
	clone.Tags = append([]string(nil), product.Tags...)
	return &clone
}
