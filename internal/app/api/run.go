package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	orderapiserver "github.com/Apurer/go-gin-order-api/go"

	customersmemory "github.com/Apurer/go-gin-order-api/internal/domains/customers/adapters/memory"
	customerspostgres "github.com/Apurer/go-gin-order-api/internal/domains/customers/adapters/persistence/postgres"
	customersapp "github.com/Apurer/go-gin-order-api/internal/domains/customers/application"
	customersports "github.com/Apurer/go-gin-order-api/internal/domains/customers/ports"

	productsmemory "github.com/Apurer/go-gin-order-api/internal/domains/products/adapters/memory"
	productspostgres "github.com/Apurer/go-gin-order-api/internal/domains/products/adapters/persistence/postgres"
	productsapp "github.com/Apurer/go-gin-order-api/internal/domains/products/application"
	productsports "github.com/Apurer/go-gin-order-api/internal/domains/products/ports"

	ordersmemory "github.com/Apurer/go-gin-order-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/Apurer/go-gin-order-api/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/Apurer/go-gin-order-api/internal/domains/orders/adapters/persistence/postgres"
	ordersworkflows "github.com/Apurer/go-gin-order-api/internal/domains/orders/adapters/workflows"
	ordersapp "github.com/Apurer/go-gin-order-api/internal/domains/orders/application"
	ordersports "github.com/Apurer/go-gin-order-api/internal/domains/orders/ports"

	"github.com/Apurer/go-gin-order-api/internal/platform/migrations"
	platformobservability "github.com/Apurer/go-gin-order-api/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-gin-order-api/internal/platform/postgres"
)

// Run boots the order HTTP API with observability, repositories, and workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "order-api"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger
	cfg := LoadConfig()

	repos, cleanupRepos := BuildRepositories(ctx, logger, cfg.PostgresDSN)
	defer cleanupRepos()

	customerService := customersapp.NewService(repos.Customers)
	productService := productsapp.NewService(repos.Products)
	coreOrderService := ordersapp.NewService(repos.Orders, customerService, productService)
	orderService := ordersobs.New(
		coreOrderService,
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	var orderWorkflows ordersports.WorkflowOrchestrator = ordersworkflows.NewInlineOrderWorkflows(orderService)
	if repos.InMemory {
		// The worker would create orders in its own process-local store,
		// invisible to this API. Temporal mode requires a shared database.
		logger.Warn("in-memory repositories active, creating orders inline; Temporal workflows require POSTGRES_DSN")
	} else if temporalClient, err := ConnectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal workflows unavailable, creating orders inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		orderWorkflows = ordersworkflows.NewTemporalOrderWorkflows(temporalClient)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	handlers := orderapiserver.ApiHandleFunctions{
		OrderAPI:    orderapiserver.NewOrderAPI(orderService, orderWorkflows),
		CustomerAPI: orderapiserver.NewCustomerAPI(customerService),
		ProductAPI:  orderapiserver.NewProductAPI(productService),
	}

	engine := gin.Default()
	engine.Use(otelgin.Middleware(serviceName))
	router := orderapiserver.NewRouterWithGinEngine(engine, handlers)
	addr := ":" + cfg.Port
	logger.Info("order API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("order API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// Repositories bundles the persistence adapters of the three bounded contexts.
type Repositories struct {
	Customers customersports.Repository
	Products  productsports.Repository
	Orders    ordersports.Repository
	// InMemory is set on the fallback wiring. Memory stores are process-local,
	// so cross-process features like Temporal workflows cannot see their data.
	InMemory bool
}

// BuildRepositories wires Postgres-backed adapters when a DSN is configured
// and falls back to the in-memory set otherwise. The in-memory orders
// repository reserves stock through the in-memory products repository;
// the Postgres one joins both writes in a single transaction.
func BuildRepositories(ctx context.Context, logger *slog.Logger, dsn string) (Repositories, func()) {
	if dsn == "" {
		logger.Warn("POSTGRES_DSN not set, falling back to in-memory repositories")
		return memoryRepositories(), func() {}
	}
	db, err := platformpostgres.Connect(ctx, dsn)
	if err != nil {
		logger.Warn("failed to connect to postgres, falling back to memory", slog.String("error", err.Error()))
		return memoryRepositories(), func() {}
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Warn("failed to unwrap postgres connection, falling back to memory", slog.String("error", err.Error()))
		return memoryRepositories(), func() {}
	}
	if err := migrations.Run(db); err != nil {
		logger.Warn("failed to run migrations, falling back to memory", slog.String("error", err.Error()))
		_ = sqlDB.Close()
		return memoryRepositories(), func() {}
	}
	logger.Info("repositories configured with postgres")
	return Repositories{
		Customers: customerspostgres.NewRepository(db),
		Products:  productspostgres.NewRepository(db),
		Orders:    orderspostgres.NewRepository(db),
	}, func() { _ = sqlDB.Close() }
}

func memoryRepositories() Repositories {
	products := productsmemory.NewRepository()
	return Repositories{
		Customers: customersmemory.NewRepository(),
		Products:  products,
		Orders:    ordersmemory.NewRepository(products),
		InMemory:  true,
	}
}

// ConnectTemporalClient dials the Temporal cluster configured in cfg.
func ConnectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.Default()
}
