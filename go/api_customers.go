package orderserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	customerhttpmapper "github.com/Apurer/go-gin-order-api/internal/domains/customers/adapters/http/mapper"
	customersapp "github.com/Apurer/go-gin-order-api/internal/domains/customers/application"
	customersports "github.com/Apurer/go-gin-order-api/internal/domains/customers/ports"
)

// CustomerAPI wires HTTP transport with the customers bounded context service.
type CustomerAPI struct {
	service customersports.Service
}

// NewCustomerAPI wires dependencies.
func NewCustomerAPI(service customersports.Service) CustomerAPI {
	return CustomerAPI{service: service}
}

// Post /v1/customers
// Register a customer
func (api *CustomerAPI) CreateCustomer(c *gin.Context) {
	var payload customerhttpmapper.CreateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	customer, err := api.service.CreateCustomer(c.Request.Context(), payload.Name, string(payload.Email))
	if err != nil {
		respondCustomerServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customerhttpmapper.FromDomainCustomer(customer))
}

// Get /v1/customers/:customerId
// Find customer by ID
func (api *CustomerAPI) GetCustomerById(c *gin.Context) {
	id := strings.TrimSpace(c.Param("customerId"))
	if id == "" {
		respondError(c, http.StatusBadRequest, errors.New("customer id is required"))
		return
	}
	customer, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondCustomerServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customerhttpmapper.FromDomainCustomer(customer))
}

// Get /v1/customers
// List all customers
func (api *CustomerAPI) ListCustomers(c *gin.Context) {
	customers, err := api.service.List(c.Request.Context())
	if err != nil {
		respondCustomerServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customerhttpmapper.FromDomainCustomerList(customers))
}

// Delete /v1/customers/:customerId
// Remove a customer
func (api *CustomerAPI) DeleteCustomer(c *gin.Context) {
	id := strings.TrimSpace(c.Param("customerId"))
	if id == "" {
		respondError(c, http.StatusBadRequest, errors.New("customer id is required"))
		return
	}
	if err := api.service.Delete(c.Request.Context(), id); err != nil {
		respondCustomerServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func respondCustomerServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, customersapp.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, err)
	case errors.Is(err, customersports.ErrNotFound):
		respondError(c, http.StatusNotFound, err)
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}
