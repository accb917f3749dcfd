//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "order-api"
	ConsumerName = "storefront-portal"

	StateCatalogSeeded     = "catalog and customer seeded"
	StateCustomerMissing   = "no customer with the ghost id"
	StateStockExhausted    = "product stock exhausted"
	StateOrderExists       = "an order exists"
	StateOrderMissing      = "no order with the missing id"
	StateCustomersBaseline = "customers baseline"
)

const (
	ExistingCustomerID = "11111111-1111-4111-8111-111111111111"
	MissingCustomerID  = "99999999-9999-4999-8999-999999999999"
	ExistingProductID  = "22222222-2222-4222-8222-222222222222"
	ScarceProductID    = "33333333-3333-4333-8333-333333333333"
	MissingOrderID     = "44444444-4444-4444-8444-444444444444"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the storefront consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleCreateOrderPayload provides stable test data for order interactions.
func ExampleCreateOrderPayload() map[string]any {
	return map[string]any{
		"customer_id": ExistingCustomerID,
		"products": []map[string]any{
			{"id": ExistingProductID, "quantity": 2},
		},
	}
}

// ExampleCustomerPayload provides stable test data for customer interactions.
func ExampleCustomerPayload() map[string]any {
	return map[string]any{
		"name":  "Pact Customer",
		"email": "pact.customer@example.com",
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
