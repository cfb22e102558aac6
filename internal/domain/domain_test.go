package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Validator Tests ---

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr bool
		errMsg  string
	}{
		{"valid email", "user@example.com", false, ""},
		{"valid email with dots", "first.last@example.co.uk", false, ""},
		{"valid email with plus", "user+tag@example.com", false, ""},
		{"valid email with dash", "user-name@exam-ple.com", false, ""},
		{"empty string", "", true, "email is required"},
		{"no at sign", "userexample.com", true, "invalid email format"},
		{"no domain", "user@", true, "invalid email format"},
		{"no user", "@example.com", true, "invalid email format"},
		{"no tld", "user@example", true, "invalid email format"},
		{"single char tld", "user@example.c", true, "invalid email format"},
		{"spaces", "user @example.com", true, "invalid email format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"valid", "player_one", false},
		{"valid with dots", "first.last", false},
		{"valid with dash", "player-1", false},
		{"minimum length", "abc", false},
		{"maximum length", "a2345678901234567890", false},
		{"empty", "", true},
		{"too short", "ab", true},
		{"too long", "a23456789012345678901", true},
		{"spaces", "player one", true},
		{"special chars", "player!", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateQuantity(t *testing.T) {
	require.NoError(t, ValidateQuantity(1))
	require.NoError(t, ValidateQuantity(100))
	require.Error(t, ValidateQuantity(0))
	require.Error(t, ValidateQuantity(-3))
}

func TestValidatePositiveAmount(t *testing.T) {
	require.NoError(t, ValidatePositiveAmount(decimal.RequireFromString("0.01")))
	require.NoError(t, ValidatePositiveAmount(decimal.RequireFromString("20.00")))
	require.Error(t, ValidatePositiveAmount(decimal.Zero))
	require.Error(t, ValidatePositiveAmount(decimal.RequireFromString("-5.00")))
}

// --- AppError Tests ---

func TestAppErrorConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantCode   string
		wantStatus int
	}{
		{"not found", ErrNotFound("game", "Bloodborne"), "NOT_FOUND", 404},
		{"conflict", ErrConflict("email already registered"), "CONFLICT", 409},
		{"validation", ErrValidation("bad input"), "VALIDATION_ERROR", 400},
		{"unauthorized", ErrUnauthorized("no token"), "UNAUTHORIZED", 401},
		{"forbidden", ErrForbidden("not yours"), "FORBIDDEN", 403},
		{"insufficient funds", ErrInsufficientFunds(), "INSUFFICIENT_FUNDS", 400},
		{"internal", ErrInternal("boom", errors.New("db down")), "INTERNAL_ERROR", 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCode, tt.err.Code)
			assert.Equal(t, tt.wantStatus, tt.err.Status)
			assert.Contains(t, tt.err.Error(), tt.wantCode)
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := ErrInternal("query failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestErrNotFoundMessage(t *testing.T) {
	err := ErrNotFound("customer", "42")
	assert.Equal(t, "customer 42 not found", err.Message)
}

// --- Event Tests ---

func TestNewPurchasePostedEvent(t *testing.T) {
	p := &Purchase{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		GameID:     uuid.New(),
		Qty:        2,
	}
	total := decimal.RequireFromString("30.00")
	after := decimal.RequireFromString("10.00")

	draft := NewPurchasePostedEvent(p, total, after)

	assert.Equal(t, EventPurchasePosted, draft.EventType)
	assert.Equal(t, AggregateLedger, draft.AggregateType)
	assert.Equal(t, p.CustomerID.String(), draft.AggregateID)
	assert.NotEqual(t, uuid.Nil, draft.EventID)
	assert.False(t, draft.OccurredAt.IsZero())

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(draft.Payload, &payload))
	assert.Equal(t, "30.00", payload["total"])
	assert.Equal(t, "10.00", payload["balance_after"])
	assert.Equal(t, float64(2), payload["qty"])
}

func TestNewReturnPostedEvent(t *testing.T) {
	r := &Return{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		PurchaseID: uuid.New(),
	}
	refund := decimal.RequireFromString("30.00")
	after := decimal.RequireFromString("40.00")

	draft := NewReturnPostedEvent(r, refund, after)

	assert.Equal(t, EventReturnPosted, draft.EventType)
	assert.Equal(t, r.CustomerID.String(), draft.AggregateID)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(draft.Payload, &payload))
	assert.Equal(t, "30.00", payload["refund"])
	assert.Equal(t, r.PurchaseID.String(), payload["purchase_id"])
}

func TestNewCustomerRegisteredEvent(t *testing.T) {
	c := &Customer{ID: uuid.New(), Username: "player_one", Email: "p1@example.com"}

	draft := NewCustomerRegisteredEvent(c)

	assert.Equal(t, EventCustomerRegistered, draft.EventType)
	assert.Equal(t, AggregateCustomer, draft.AggregateType)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(draft.Payload, &payload))
	assert.Equal(t, "player_one", payload["username"])
	assert.Equal(t, "p1@example.com", payload["email"])
}

func TestNewFundsAddedEvent(t *testing.T) {
	customerID := uuid.New()
	draft := NewFundsAddedEvent(customerID, decimal.RequireFromString("20.00"), decimal.RequireFromString("60.00"))

	assert.Equal(t, EventFundsAdded, draft.EventType)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(draft.Payload, &payload))
	assert.Equal(t, "20.00", payload["amount"])
	assert.Equal(t, "60.00", payload["balance_after"])
}

// --- Customer JSON hygiene ---

func TestCustomerPasswordHashNotSerialized(t *testing.T) {
	c := Customer{
		ID:           uuid.New(),
		Username:     "player_one",
		Email:        "p1@example.com",
		PasswordHash: "$2a$10$secret",
		Balance:      decimal.RequireFromString("40.00"),
	}

	raw, err := json.Marshal(c)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), "password")
}
