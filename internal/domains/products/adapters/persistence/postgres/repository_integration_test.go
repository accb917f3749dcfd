//go:build integration

package postgres

import (
	"context"
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

	"github.com/Apurer/go-gin-order-api/internal/domains/products/domain"
	"github.com/Apurer/go-gin-order-api/internal/domains/products/ports"
	"github.com/Apurer/go-gin-order-api/internal/platform/migrations"
)

func setupProductPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("products_test"),
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

func TestRepository_SaveAndGetByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupProductPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, &domain.Product{
		Name:     "Keyboard",
		Price:    decimal.RequireFromString("49.90"),
		Quantity: 10,
		Tags:     []string{"peripherals", "usb"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)

	fetched, err := repo.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", fetched.Name)
	assert.True(t, fetched.Price.Equal(decimal.RequireFromString("49.90")))
	assert.Equal(t, []string{"peripherals", "usb"}, fetched.Tags)
}

func TestRepository_SaveUpserts(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupProductPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	saved, err := repo.Save(ctx, &domain.Product{Name: "Mouse", Price: decimal.NewFromInt(5), Quantity: 3})
	require.NoError(t, err)

	saved.Quantity = 9
	updated, err := repo.Save(ctx, saved)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, updated.ID)
	assert.EqualValues(t, 9, updated.Quantity)
}

func TestRepository_FindAllByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupProductPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	first, err := repo.Save(ctx, &domain.Product{Name: "Keyboard", Price: decimal.NewFromInt(10), Quantity: 1})
	require.NoError(t, err)
	second, err := repo.Save(ctx, &domain.Product{Name: "Mouse", Price: decimal.NewFromInt(5), Quantity: 1})
	require.NoError(t, err)

	found, err := repo.FindAllByID(ctx, []string{first.ID, second.ID, uuid.NewString()})
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestRepository_UpdateQuantity(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupProductPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	keyboard, err := repo.Save(ctx, &domain.Product{Name: "Keyboard", Price: decimal.NewFromInt(10), Quantity: 5})
	require.NoError(t, err)
	mouse, err := repo.Save(ctx, &domain.Product{Name: "Mouse", Price: decimal.NewFromInt(5), Quantity: 1})
	require.NoError(t, err)

	err = repo.UpdateQuantity(ctx, []ports.StockDecrement{
		{ProductID: keyboard.ID, Quantity: 2},
		{ProductID: mouse.ID, Quantity: 3},
	})
	require.ErrorIs(t, err, ports.ErrInsufficientStock)

	// The whole batch rolled back, including the decrement that would have fit.
	fetched, err := repo.GetByID(ctx, keyboard.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 5, fetched.Quantity)

	err = repo.UpdateQuantity(ctx, []ports.StockDecrement{{ProductID: keyboard.ID, Quantity: 2}})
	require.NoError(t, err)
	fetched, err = repo.GetByID(ctx, keyboard.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, fetched.Quantity)
}

func TestRepository_Restock(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupProductPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	ctx := context.Background()

	keyboard, err := repo.Save(ctx, &domain.Product{Name: "Keyboard", Price: decimal.NewFromInt(10), Quantity: 5})
	require.NoError(t, err)

	// Simulate a sale landing between a stale read of the product and the
	// restock; the relative UPDATE must preserve it.
	stale := keyboard.Quantity
	err = repo.UpdateQuantity(ctx, []ports.StockDecrement{{ProductID: keyboard.ID, Quantity: 3}})
	require.NoError(t, err)

	restocked, err := repo.Restock(ctx, keyboard.ID, 10)
	require.NoError(t, err)
	assert.EqualValues(t, stale-3+10, restocked.Quantity)

	_, err = repo.Restock(ctx, uuid.NewString(), 1)
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupProductPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ports.ErrNotFound)
}
