package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCustomer   = errors.New("order customer id is required")
	ErrNoItems         = errors.New("order must contain at least one item")
	ErrEmptyProductID  = errors.New("line item product id is required")
	ErrInvalidQuantity = errors.New("line item quantity must be greater than zero")
)

// LineItem is one (product, quantity, price) entry within an order. The price
// is copied from the catalog at creation time; later catalog changes never
// alter historical orders.
type LineItem struct {
	ProductID string
	Quantity  int64
	Price     decimal.Decimal
}

// Order models a placed purchase order aggregate.
type Order struct {
	ID         string
	CustomerID string
	Items      []LineItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewOrder validates and constructs a new Order aggregate. The identifier and
// timestamps are assigned by the persistence layer.
func NewOrder(customerID string, items []LineItem) (*Order, error) {
	order := &Order{CustomerID: customerID, Items: items}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return order, nil
}

// Validate enforces invariants on the aggregate.
func (o *Order) Validate() error {
	if o.CustomerID == "" {
		return ErrEmptyCustomer
	}
	if len(o.Items) == 0 {
		return ErrNoItems
	}
	for _, item := range o.Items {
		if item.ProductID == "" {
			return ErrEmptyProductID
		}
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
	}
	return nil
}

// Total sums quantity times unit price over all line items.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(item.Quantity)))
	}
	return total
}
