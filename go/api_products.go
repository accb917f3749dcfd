package orderserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	producthttpmapper "github.com/Apurer/go-gin-order-api/internal/domains/products/adapters/http/mapper"
	productsapp "github.com/Apurer/go-gin-order-api/internal/domains/products/application"
	productsports "github.com/Apurer/go-gin-order-api/internal/domains/products/ports"
)

// ProductAPI wires HTTP transport with the products bounded context service.
type ProductAPI struct {
	service productsports.Service
}

// NewProductAPI wires dependencies.
func NewProductAPI(service productsports.Service) ProductAPI {
	return ProductAPI{service: service}
}

// Post /v1/products
// Register a catalog product
func (api *ProductAPI) CreateProduct(c *gin.Context) {
	var payload producthttpmapper.CreateProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	product, err := api.service.CreateProduct(c.Request.Context(), payload.Name, payload.Price, payload.Quantity, payload.Tags)
	if err != nil {
		respondProductServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, producthttpmapper.FromDomainProduct(product))
}

// Get /v1/products/:productId
// Find product by ID
func (api *ProductAPI) GetProductById(c *gin.Context) {
	id := strings.TrimSpace(c.Param("productId"))
	if id == "" {
		respondError(c, http.StatusBadRequest, errors.New("product id is required"))
		return
	}
	product, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondProductServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, producthttpmapper.FromDomainProduct(product))
}

// Get /v1/products
// List the catalog
func (api *ProductAPI) ListProducts(c *gin.Context) {
	products, err := api.service.List(c.Request.Context())
	if err != nil {
		respondProductServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, producthttpmapper.FromDomainProductList(products))
}

// Post /v1/products/:productId/restock
// Raise the available stock of a product
func (api *ProductAPI) RestockProduct(c *gin.Context) {
	id := strings.TrimSpace(c.Param("productId"))
	if id == "" {
		respondError(c, http.StatusBadRequest, errors.New("product id is required"))
		return
	}
	var payload producthttpmapper.RestockRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	product, err := api.service.Restock(c.Request.Context(), id, payload.Quantity)
	if err != nil {
		respondProductServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, producthttpmapper.FromDomainProduct(product))
}

func respondProductServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, productsapp.ErrInvalidInput):
		respondError(c, http.StatusBadRequest, err)
	case errors.Is(err, productsports.ErrNotFound):
		respondError(c, http.StatusNotFound, err)
	default:
		respondError(c, http.StatusInternalServerError, err)
	}
}
