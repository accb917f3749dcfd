package orders

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	ordersapp "github.com/Apurer/go-gin-order-api/internal/domains/orders/application"
	ordersdomain "github.com/Apurer/go-gin-order-api/internal/domains/orders/domain"
	ordersports "github.com/Apurer/go-gin-order-api/internal/domains/orders/ports"
)

// PlaceOrderActivityName validates the request and persists the order.
const PlaceOrderActivityName = "orders.activities.PlaceOrder"

// Activities groups activities that operate on the orders bounded context.
type Activities struct {
	service ordersports.Service
}

// NewActivities wires the orders service into the Temporal activities bundle.
func NewActivities(service ordersports.Service) *Activities {
	return &Activities{service: service}
}

// PlaceOrder runs the full order-creation use case. Validation failures are
// surfaced as non-retryable application errors so the workflow fails fast.
func (a *Activities) PlaceOrder(ctx context.Context, input ordersports.CreateOrderInput) (*ordersdomain.Order, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.service == nil {
		logger.Error("place order activity not initialized", "customerId", input.CustomerID)
		return nil, errors.New("place order activity not initialized")
	}
	logger.Info("PlaceOrder activity started", "customerId", input.CustomerID, "itemCount", len(input.Items))
	order, err := a.service.CreateOrder(ctx, input)
	if err != nil {
		if errType, terminal := rejectionType(err); terminal {
			logger.Warn("PlaceOrder rejected", "customerId", input.CustomerID, "error", err)
			return nil, temporal.NewNonRetryableApplicationError(err.Error(), errType, err)
		}
		logger.Error("PlaceOrder activity failed", "customerId", input.CustomerID, "error", err)
		return nil, err
	}
	logger.Info("PlaceOrder activity completed", "orderId", order.ID)
	return order, nil
}

// Rejection types carried on the application error so callers on the other
// side of the workflow boundary can restore the failure class.
const (
	RejectionCustomerNotFound  = "CustomerNotFound"
	RejectionInvalidProducts   = "InvalidProducts"
	RejectionInsufficientStock = "InsufficientStock"
	RejectionInvalidInput      = "InvalidInput"
)

func rejectionType(err error) (string, bool) {
	switch {
	case errors.Is(err, ordersapp.ErrCustomerNotFound):
		return RejectionCustomerNotFound, true
	case errors.Is(err, ordersapp.ErrInvalidProducts):
		return RejectionInvalidProducts, true
	case errors.Is(err, ordersapp.ErrInsufficientStock):
		return RejectionInsufficientStock, true
	case errors.Is(err, ordersapp.ErrInvalidInput):
		return RejectionInvalidInput, true
	default:
		return "", false
	}
}
