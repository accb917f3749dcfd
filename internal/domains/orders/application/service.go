package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	customersports "github.com/Apurer/go-gin-order-api/internal/domains/customers/ports"
	"github.com/Apurer/go-gin-order-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-order-api/internal/domains/orders/ports"
	productsdomain "github.com/Apurer/go-gin-order-api/internal/domains/products/domain"
	productsports "github.com/Apurer/go-gin-order-api/internal/domains/products/ports"
)

// Service orchestrates the orders bounded context use cases.
type Service struct {
	repo      ports.Repository
	customers ports.CustomerDirectory
	catalog   ports.ProductCatalog
}

// NewService wires the orders service with its collaborators.
func NewService(repo ports.Repository, customers ports.CustomerDirectory, catalog ports.ProductCatalog) *Service {
	return &Service{repo: repo, customers: customers, catalog: catalog}
}

// CreateOrder validates the request against the customer directory and the
// product catalog, prices the line items from the catalog, and persists the
// order together with the stock decrements in one unit of work.
func (s *Service) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*domain.Order, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if _, err := s.customers.GetByID(ctx, input.CustomerID); err != nil {
		if errors.Is(err, customersports.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, input.CustomerID)
		}
		return nil, err
	}

	ids := make([]string, 0, len(input.Items))
	for _, item := range input.Items {
		ids = append(ids, item.ProductID)
	}
	found, err := s.catalog.FindAllByID(ctx, ids)
	if err != nil {
		return nil, err
	}
	// Missing products abort the order before any pricing; per-item processing
	// is meaningless when the request references phantom ids.
	byID := make(map[string]*productsdomain.Product, len(found))
	for _, product := range found {
		byID[product.ID] = product
	}
	if missing := missingIDs(ids, byID); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidProducts, strings.Join(missing, ", "))
	}

	items := make([]domain.LineItem, 0, len(input.Items))
	for _, requested := range input.Items {
		product := byID[requested.ProductID]
		if requested.Quantity > product.Quantity {
			return nil, fmt.Errorf("%w: %q has %d, requested %d",
				ErrInsufficientStock, product.Name, product.Quantity, requested.Quantity)
		}
		items = append(items, domain.LineItem{
			ProductID: product.ID,
			Quantity:  requested.Quantity,
			Price:     product.Price,
		})
	}

	order, err := domain.NewOrder(input.CustomerID, items)
	if err != nil {
		return nil, mapError(err)
	}
	created, err := s.repo.Create(ctx, order)
	if err != nil {
		// Concurrent orders can exhaust stock between the check above and the
		// guarded decrement inside the repository transaction.
		if errors.Is(err, productsports.ErrInsufficientStock) {
			return nil, fmt.Errorf("%w: %s", ErrInsufficientStock, err)
		}
		return nil, err
	}
	return created, nil
}

// GetOrderByID loads a single order aggregate.
func (s *Service) GetOrderByID(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// List exposes all orders for admin use cases.
func (s *Service) List(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

func validateInput(input ports.CreateOrderInput) error {
	if strings.TrimSpace(input.CustomerID) == "" {
		return mapError(domain.ErrEmptyCustomer)
	}
	if len(input.Items) == 0 {
		return mapError(domain.ErrNoItems)
	}
	seen := make(map[string]bool, len(input.Items))
	for _, item := range input.Items {
		if strings.TrimSpace(item.ProductID) == "" {
			return mapError(domain.ErrEmptyProductID)
		}
		if item.Quantity <= 0 {
			return mapError(domain.ErrInvalidQuantity)
		}
		if seen[item.ProductID] {
			return fmt.Errorf("%w: duplicate product %s", ErrInvalidInput, item.ProductID)
		}
		seen[item.ProductID] = true
	}
	return nil
}

func missingIDs(requested []string, found map[string]*productsdomain.Product) []string {
	var missing []string
	for _, id := range requested {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

var _ ports.Service = (*Service)(nil)
