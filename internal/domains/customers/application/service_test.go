package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-order-api/internal/domains/customers/adapters/memory"
	"github.com/Apurer/go-gin-order-api/internal/domains/customers/ports"
)

func TestCreateCustomer(t *testing.T) {
	svc := NewService(memory.NewRepository())

	customer, err := svc.CreateCustomer(context.Background(), "Ada Lovelace", "ada@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, customer.ID)
	require.Equal(t, "Ada Lovelace", customer.Name)

	loaded, err := svc.GetByID(context.Background(), customer.ID)
	require.NoError(t, err)
	require.Equal(t, "ada@example.com", loaded.Email)
}

func TestCreateCustomer_RejectsInvalid(t *testing.T) {
	svc := NewService(memory.NewRepository())

	_, err := svc.CreateCustomer(context.Background(), "", "ada@example.com")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateCustomer(context.Background(), "Ada", "not-an-email")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteCustomer(t *testing.T) {
	svc := NewService(memory.NewRepository())

	customer, err := svc.CreateCustomer(context.Background(), "Ada", "ada@example.com")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), customer.ID))

	_, err = svc.GetByID(context.Background(), customer.ID)
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(memory.NewRepository())

	_, err := svc.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, ports.ErrNotFound)
}
