package application

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Apurer/go-gin-order-api/internal/domains/products/domain"
	"github.com/Apurer/go-gin-order-api/internal/domains/products/ports"
)

// Service orchestrates catalog use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// CreateProduct registers a catalog item. The identifier is assigned by the repository.
func (s *Service) CreateProduct(ctx context.Context, name string, price decimal.Decimal, quantity int64, tags []string) (*domain.Product, error) {
	product, err := domain.NewProduct("", name, price, quantity)
	if err != nil {
		return nil, mapError(err)
	}
	product.ReplaceTags(tags)
	saved, err := s.repo.Save(ctx, product)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// FindAllByID loads the subset of requested products that exist in the catalog.
func (s *Service) FindAllByID(ctx context.Context, ids []string) ([]*domain.Product, error) {
	return s.repo.FindAllByID(ctx, ids)
}

// Restock raises the available stock of an existing product. The repository
// applies the increment as a relative mutation, so a concurrent order
// decrement is never lost to a stale read.
func (s *Service) Restock(ctx context.Context, id string, quantity int64) (*domain.Product, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: restock quantity must be positive", ErrInvalidInput)
	}
	return s.repo.Restock(ctx, id, quantity)
}

func (s *Service) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

var _ ports.Service = (*Service)(nil)
