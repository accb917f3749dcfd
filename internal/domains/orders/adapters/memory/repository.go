package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Apurer/go-gin-order-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-order-api/internal/domains/orders/ports"
	productsports "github.com/Apurer/go-gin-order-api/internal/domains/products/ports"
)

var _ ports.Repository = (*Repository)(nil)

// StockUpdater subtracts ordered quantities from catalog stock. The products
// memory adapter satisfies it with an all-or-nothing decrement.
type StockUpdater interface {
	UpdateQuantity(ctx context.Context, decrements []productsports.StockDecrement) error
}

// Repository is an in-memory order persistence adapter.
type Repository struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
	stock  StockUpdater
}

// NewRepository wires the in-memory adapter. The stock updater carries the
// decrement side of the order-creation unit of work.
func NewRepository(stock StockUpdater) *Repository {
	return &Repository{orders: map[string]*domain.Order{}, stock: stock}
}

// Create reserves stock and stores the order. The updater validates every
// decrement before applying any, so a failed reservation leaves no trace and
// no order is stored without its stock having been taken.
func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	clone := cloneOrder(order)
	if err := clone.Validate(); err != nil {
		return nil, err
	}
	if r.stock != nil {
		decrements := make([]productsports.StockDecrement, 0, len(clone.Items))
		for _, item := range clone.Items {
			decrements = append(decrements, productsports.StockDecrement{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}
		if err := r.stock.UpdateQuantity(ctx, decrements); err != nil {
			return nil, err
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	clone.ID = uuid.NewString()
	clone.CreatedAt = now
	clone.UpdatedAt = now
	r.orders[clone.ID] = clone
	return cloneOrder(clone), nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneOrder(order), nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		list = append(list, cloneOrder(order))
	}
	return list, nil
}

func cloneOrder(order *domain.Order) *domain.Order {
	clone := *order
	clone.Items = append([]domain.LineItem(nil), order.Items...)
	return &clone
}
