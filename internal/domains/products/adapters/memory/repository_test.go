package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-order-api/internal/domains/products/domain"
	"github.com/Apurer/go-gin-order-api/internal/domains/products/ports"
)

func seedProduct(t *testing.T, repo *Repository, name string, quantity int64) *domain.Product {
	t.Helper()
	product, err := repo.Save(context.Background(), &domain.Product{
		Name:     name,
		Price:    decimal.NewFromInt(10),
		Quantity: quantity,
	})
	require.NoError(t, err)
	return product
}

func TestSaveAssignsID(t *testing.T) {
	repo := NewRepository()

	saved := seedProduct(t, repo, "Keyboard", 5)
	require.NotEmpty(t, saved.ID)

	loaded, err := repo.GetByID(context.Background(), saved.ID)
	require.NoError(t, err)
	require.Equal(t, saved.ID, loaded.ID)

	// The repository hands out clones; mutating a result must not leak back.
	loaded.Quantity = 0
	again, err := repo.GetByID(context.Background(), saved.ID)
	require.NoError(t, err)
	require.EqualValues(t, 5, again.Quantity)
}

func TestFindAllByID_DeduplicatesIDs(t *testing.T) {
	repo := NewRepository()
	saved := seedProduct(t, repo, "Keyboard", 5)

	found, err := repo.FindAllByID(context.Background(), []string{saved.ID, saved.ID, "missing"})
	require.NoError(t, err)
	require.Len(t, found, 1)
}

func TestUpdateQuantity_AllOrNothing(t *testing.T) {
	repo := NewRepository()
	keyboard := seedProduct(t, repo, "Keyboard", 5)
	mouse := seedProduct(t, repo, "Mouse", 1)

	err := repo.UpdateQuantity(context.Background(), []ports.StockDecrement{
		{ProductID: keyboard.ID, Quantity: 2},
		{ProductID: mouse.ID, Quantity: 3},
	})
	require.ErrorIs(t, err, ports.ErrInsufficientStock)

	// The first decrement must not have been applied.
	loaded, err := repo.GetByID(context.Background(), keyboard.ID)
	require.NoError(t, err)
	require.EqualValues(t, 5, loaded.Quantity)
}

func TestUpdateQuantity_UnknownProduct(t *testing.T) {
	repo := NewRepository()

	err := repo.UpdateQuantity(context.Background(), []ports.StockDecrement{
		{ProductID: "missing", Quantity: 1},
	})
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRestock_IncrementsAtomically(t *testing.T) {
	repo := NewRepository()
	saved := seedProduct(t, repo, "Keyboard", 3)

	restocked, err := repo.Restock(context.Background(), saved.ID, 4)
	require.NoError(t, err)
	require.EqualValues(t, 7, restocked.Quantity)

	_, err = repo.Restock(context.Background(), "missing", 1)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRestock_ConcurrentDecrementIsNeverLost(t *testing.T) {
	repo := NewRepository()
	saved := seedProduct(t, repo, "Keyboard", 5)

	// A sale and a restock race; both are relative mutations, so every
	// interleaving must land on 5 - 3 + 10.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		err := repo.UpdateQuantity(context.Background(), []ports.StockDecrement{
			{ProductID: saved.ID, Quantity: 3},
		})
		require.NoError(t, err)
	}()
	go func() {
		defer wg.Done()
		_, err := repo.Restock(context.Background(), saved.ID, 10)
		require.NoError(t, err)
	}()
	wg.Wait()

	loaded, err := repo.GetByID(context.Background(), saved.ID)
	require.NoError(t, err)
	require.EqualValues(t, 12, loaded.Quantity)
}

func TestUpdateQuantity_ConcurrentDecrementsNeverOversell(t *testing.T) {
	repo := NewRepository()
	saved := seedProduct(t, repo, "Keyboard", 10)

	const workers = 25
	var wg sync.WaitGroup
	successes := make(chan struct{}, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.UpdateQuantity(context.Background(), []ports.StockDecrement{
				{ProductID: saved.ID, Quantity: 1},
			})
			if err == nil {
				successes <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(successes)

	require.Len(t, successes, 10)
	loaded, err := repo.GetByID(context.Background(), saved.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, loaded.Quantity)
}
