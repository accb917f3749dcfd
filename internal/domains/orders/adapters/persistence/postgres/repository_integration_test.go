//go:build integration

package postgres

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Apurer/go-gin-order-api/internal/domains/orders/domain"
	"github.com/Apurer/go-gin-order-api/internal/domains/orders/ports"
	productspostgres "github.com/Apurer/go-gin-order-api/internal/domains/products/adapters/persistence/postgres"
	productsdomain "github.com/Apurer/go-gin-order-api/internal/domains/products/domain"
	productsports "github.com/Apurer/go-gin-order-api/internal/domains/products/ports"
	"github.com/Apurer/go-gin-order-api/internal/platform/migrations"
)

func setupOrderPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("orders_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func seedProduct(t *testing.T, db *gorm.DB, quantity int64) *productsdomain.Product {
	t.Helper()
	product, err := productspostgres.NewRepository(db).Save(context.Background(), &productsdomain.Product{
		Name:     "Keyboard",
		Price:    decimal.RequireFromString("49.90"),
		Quantity: quantity,
	})
	require.NoError(t, err)
	return product
}

func TestRepository_CreateDecrementsStock(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrderPostgresContainer(t)
	defer cleanup()

	product := seedProduct(t, db, 5)
	repo := NewRepository(db)
	ctx := context.Background()

	order, err := domain.NewOrder(uuid.NewString(), []domain.LineItem{
		{ProductID: product.ID, Quantity: 3, Price: product.Price},
	})
	require.NoError(t, err)

	created, err := repo.Create(ctx, order)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	require.Len(t, created.Items, 1)
	assert.True(t, created.Items[0].Price.Equal(product.Price))

	remaining, err := productspostgres.NewRepository(db).GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, remaining.Quantity)
}

func TestRepository_Create_InsufficientStockRollsBack(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrderPostgresContainer(t)
	defer cleanup()

	product := seedProduct(t, db, 2)
	repo := NewRepository(db)
	ctx := context.Background()

	order, err := domain.NewOrder(uuid.NewString(), []domain.LineItem{
		{ProductID: product.ID, Quantity: 3, Price: product.Price},
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, order)
	require.ErrorIs(t, err, productsports.ErrInsufficientStock)

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	remaining, err := productspostgres.NewRepository(db).GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, remaining.Quantity)
}

func TestRepository_ConcurrentCreatesNeverOversell(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrderPostgresContainer(t)
	defer cleanup()

	product := seedProduct(t, db, 5)
	repo := NewRepository(db)
	ctx := context.Background()

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := domain.NewOrder(uuid.NewString(), []domain.LineItem{
				{ProductID: product.ID, Quantity: 1, Price: product.Price},
			})
			if err != nil {
				errs <- err
				return
			}
			_, err = repo.Create(ctx, order)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded int
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, productsports.ErrInsufficientStock)
		}
	}
	assert.Equal(t, 5, succeeded)

	remaining, err := productspostgres.NewRepository(db).GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, remaining.Quantity)

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 5)
}

func TestRepository_GetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOrderPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ports.ErrNotFound)

	product := seedProduct(t, db, 5)
	order, err := domain.NewOrder(uuid.NewString(), []domain.LineItem{
		{ProductID: product.ID, Quantity: 2, Price: product.Price},
	})
	require.NoError(t, err)
	created, err := repo.Create(ctx, order)
	require.NoError(t, err)

	fetched, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
	require.Len(t, fetched.Items, 1)
	assert.EqualValues(t, 2, fetched.Items[0].Quantity)
	assert.True(t, fetched.Total().Equal(decimal.RequireFromString("99.80")))
}
