package application

import (
	"errors"
	"fmt"

	"github.com/Apurer/go-gin-order-api/internal/domains/orders/domain"
)

// Order creation fails for exactly three caller-input reasons. All are
// terminal: retrying with the same request cannot succeed.
var (
	// ErrCustomerNotFound signals the customer id does not resolve to an
	// existing customer.
	ErrCustomerNotFound = errors.New("customer does not exist")
	// ErrInvalidProducts signals one or more requested product ids are absent
	// from the catalog.
	ErrInvalidProducts = errors.New("one or more requested products do not exist")
	// ErrInsufficientStock signals a requested quantity exceeds the product's
	// available stock.
	ErrInsufficientStock = errors.New("requested quantity exceeds available stock")
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid order input")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyCustomer) ||
		errors.Is(err, domain.ErrNoItems) ||
		errors.Is(err, domain.ErrEmptyProductID) ||
		errors.Is(err, domain.ErrInvalidQuantity) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}
