//go:build integration

package testutil

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
)

// DecodeJSON reads and decodes a JSON response body into dst.
func DecodeJSON(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
}

// AssertStatus checks that the response has the expected HTTP status code.
func AssertStatus(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	if resp.StatusCode != expected {
		t.Errorf("expected status %d, got %d", expected, resp.StatusCode)
	}
}

// AssertErrorCode checks that the response body contains the expected error code.
func AssertErrorCode(t *testing.T, resp *http.Response, expectedCode string) {
	t.Helper()
	var errResp struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	DecodeJSON(t, resp, &errResp)
	if errResp.Code != expectedCode {
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, errResp.Code, errResp.Message)
	}
}

// AssertBalance queries the customers table and asserts the balance as a
// 2-decimal string.
func AssertBalance(t *testing.T, env *TestEnv, customerID uuid.UUID, balance string) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var bal string
	err := env.Pool.QueryRow(ctx,
		"SELECT balance::text FROM customers WHERE id = $1", customerID).Scan(&bal)
	if err != nil {
		t.Fatalf("AssertBalance: query: %v", err)
	}
	if bal != balance {
		t.Errorf("balance: expected %s, got %s", balance, bal)
	}
}

// CountPurchases returns the number of purchase rows for a customer.
func CountPurchases(t *testing.T, env *TestEnv, customerID uuid.UUID) int {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var count int
	err := env.Pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM purchases WHERE customer_id = $1", customerID).Scan(&count)
	if err != nil {
		t.Fatalf("CountPurchases: %v", err)
	}
	return count
}

// CountOutboxEvents returns the number of outbox events for an aggregate.
func CountOutboxEvents(t *testing.T, env *TestEnv, aggregateID uuid.UUID) int {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var count int
	err := env.Pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM event_outbox WHERE aggregate_id = $1", aggregateID.String()).Scan(&count)
	if err != nil {
		t.Fatalf("CountOutboxEvents: %v", err)
	}
	return count
}
