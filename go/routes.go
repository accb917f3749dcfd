package orderserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route defines the parameters for an api endpoint.
type Route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc gin.HandlerFunc
}

// Routes is a map of defined api endpoints.
type Routes map[string][]Route

// ApiHandleFunctions holds the api handlers per section.
type ApiHandleFunctions struct {
	OrderAPI    OrderAPI
	CustomerAPI CustomerAPI
	ProductAPI  ProductAPI
}

// NewRouter returns a new router with all registered routes.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine registers all routes on a caller-supplied engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, routes := range getRoutes(handleFunctions) {
		for _, route := range routes {
			switch route.Method {
			case http.MethodGet:
				router.GET(route.Pattern, route.HandlerFunc)
			case http.MethodPost:
				router.POST(route.Pattern, route.HandlerFunc)
			case http.MethodPut:
				router.PUT(route.Pattern, route.HandlerFunc)
			case http.MethodDelete:
				router.DELETE(route.Pattern, route.HandlerFunc)
			}
		}
	}
	return router
}

func getRoutes(handleFunctions ApiHandleFunctions) Routes {
	return Routes{
		"OrderAPI": {
			{
				"CreateOrder",
				http.MethodPost,
				"/v1/orders",
				handleFunctions.OrderAPI.CreateOrder,
			},
			{
				"GetOrderById",
				http.MethodGet,
				"/v1/orders/:orderId",
				handleFunctions.OrderAPI.GetOrderById,
			},
			{
				"ListOrders",
				http.MethodGet,
				"/v1/orders",
				handleFunctions.OrderAPI.ListOrders,
			},
		},
		"CustomerAPI": {
			{
				"CreateCustomer",
				http.MethodPost,
				"/v1/customers",
				handleFunctions.CustomerAPI.CreateCustomer,
			},
			{
				"GetCustomerById",
				http.MethodGet,
				"/v1/customers/:customerId",
				handleFunctions.CustomerAPI.GetCustomerById,
			},
			{
				"ListCustomers",
				http.MethodGet,
				"/v1/customers",
				handleFunctions.CustomerAPI.ListCustomers,
			},
			{
				"DeleteCustomer",
				http.MethodDelete,
				"/v1/customers/:customerId",
				handleFunctions.CustomerAPI.DeleteCustomer,
			},
		},
		"ProductAPI": {
			{
				"CreateProduct",
				http.MethodPost,
				"/v1/products",
				handleFunctions.ProductAPI.CreateProduct,
			},
			{
				"GetProductById",
				http.MethodGet,
				"/v1/products/:productId",
				handleFunctions.ProductAPI.GetProductById,
			},
			{
				"ListProducts",
				http.MethodGet,
				"/v1/products",
				handleFunctions.ProductAPI.ListProducts,
			},
			{
				"RestockProduct",
				http.MethodPost,
				"/v1/products/:productId/restock",
				handleFunctions.ProductAPI.RestockProduct,
			},
		},
	}
}
