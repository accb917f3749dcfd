package mapper

import (
	"time"

	"github.com/shopspring/decimal"

	ordersdomain "github.com/Apurer/go-gin-order-api/internal/domains/orders/domain"
	ordersports "github.com/Apurer/go-gin-order-api/internal/domains/orders/ports"
)

// CreateOrderRequest is the transport-layer shape of an order creation call.
// No price field exists on purpose: unit prices come from the catalog.
type CreateOrderRequest struct {
	CustomerID string          `json:"customer_id" binding:"required"`
	Products   []RequestedItem `json:"products" binding:"required,min=1,dive"`
}

// RequestedItem is one (product, quantity) pair of the request.
type RequestedItem struct {
	ID       string `json:"id" binding:"required"`
	Quantity int64  `json:"quantity" binding:"required,gt=0"`
}

// Order is the transport-layer representation of a persisted order.
type Order struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Items      []LineItem      `json:"items"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// LineItem is one priced entry of a transport order.
type LineItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// ToCreateOrderInput converts the transport request into the service input.
func ToCreateOrderInput(req CreateOrderRequest) ordersports.CreateOrderInput {
	items := make([]ordersports.RequestedItem, 0, len(req.Products))
	for _, product := range req.Products {
		items = append(items, ordersports.RequestedItem{
			ProductID: product.ID,
			Quantity:  product.Quantity,
		})
	}
	return ordersports.CreateOrderInput{CustomerID: req.CustomerID, Items: items}
}

// FromDomainOrder converts a domain order to the transport representation.
func FromDomainOrder(order *ordersdomain.Order) Order {
	if order == nil {
		return Order{}
	}
	items := make([]LineItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, LineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return Order{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		Items:      items,
		Total:      order.Total(),
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}
}

// FromDomainOrderList converts a list of domain orders.
func FromDomainOrderList(orders []*ordersdomain.Order) []Order {
	result := make([]Order, 0, len(orders))
	for _, order := range orders {
		result = append(result, FromDomainOrder(order))
	}
	return result
}
