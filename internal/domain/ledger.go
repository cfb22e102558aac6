package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase is a debit ledger entry: a customer bought qty copies of a game.
// Immutable once created; referenced by at most one Return.
type Purchase struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	GameID     uuid.UUID `json:"game_id"`
	Qty        int       `json:"qty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Return is a credit ledger entry referencing a prior purchase. Immutable
// once created.
type Return struct {
	ID         uuid.UUID `json:"id"`
	CustomerID uuid.UUID `json:"customer_id"`
	PurchaseID uuid.UUID `json:"purchase_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// PurchaseParams is the input to ExecutePurchase. The game is resolved by
// name, matching how the storefront submits the form.
type PurchaseParams struct {
	CustomerID uuid.UUID
	GameName   string
	Qty        int
}

// ReturnParams is the input to ExecuteReturn.
type ReturnParams struct {
	CustomerID uuid.UUID
	PurchaseID uuid.UUID
}

// TopUpParams is the input to ExecuteTopUp. Amount is the fixed configured
// top-up, passed in by the service layer.
type TopUpParams struct {
	CustomerID uuid.UUID
	Amount     decimal.Decimal
}

// PurchaseResult is returned by ExecutePurchase.
type PurchaseResult struct {
	Purchase *Purchase
	Customer *Customer
	Total    decimal.Decimal
}

// ReturnResult is returned by ExecuteReturn.
type ReturnResult struct {
	Return   *Return
	Customer *Customer
	Refund   decimal.Decimal
}
