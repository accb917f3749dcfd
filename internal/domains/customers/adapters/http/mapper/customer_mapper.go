package mapper

import (
	openapitypes "github.com/oapi-codegen/runtime/types"

	customersdomain "github.com/Apurer/go-gin-order-api/internal/domains/customers/domain"
)

// CreateCustomerRequest is the transport-layer shape of a customer registration.
type CreateCustomerRequest struct {
	Name  string             `json:"name" binding:"required"`
	Email openapitypes.Email `json:"email" binding:"required"`
}

// Customer is the transport-layer representation of a customer.
type Customer struct {
	ID    string             `json:"id"`
	Name  string             `json:"name"`
	Email openapitypes.Email `json:"email"`
}

// FromDomainCustomer converts a domain customer to the transport representation.
func FromDomainCustomer(customer *customersdomain.Customer) Customer {
	if customer == nil {
		return Customer{}
	}
	return Customer{
		ID:    customer.ID,
		Name:  customer.Name,
		Email: openapitypes.Email(customer.Email),
	}
}

// FromDomainCustomerList converts a list of domain customers.
func FromDomainCustomerList(customers []*customersdomain.Customer) []Customer {
	result := make([]Customer, 0, len(customers))
	for _, customer := range customers {
		result = append(result, FromDomainCustomer(customer))
	}
	return result
}
