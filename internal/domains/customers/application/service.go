package application

import (
	"context"

	"github.com/Apurer/go-gin-order-api/internal/domains/customers/domain"
	"github.com/Apurer/go-gin-order-api/internal/domains/customers/ports"
)

// Service orchestrates customer use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// CreateCustomer registers a new customer. The identifier is assigned by the repository.
func (s *Service) CreateCustomer(ctx context.Context, name, email string) (*domain.Customer, error) {
	customer, err := domain.NewCustomer("", name, email)
	if err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, customer)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*domain.Customer, error) {
	return s.repo.List(ctx)
}

var _ ports.Service = (*Service)(nil)
