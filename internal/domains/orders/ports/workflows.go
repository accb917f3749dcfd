package ports

import (
	"context"

	"github.com/Apurer/go-gin-order-api/internal/domains/orders/domain"
)

// WorkflowOrchestrator exposes durable workflow operations required by the
// orders bounded context.
type WorkflowOrchestrator interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*domain.Order, error)
}
