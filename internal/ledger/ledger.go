package ledger

import (
	"context"
	"fmt"

	"github.com/gamevault/platform/internal/domain"
	"github.com/gamevault/platform/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Engine is the balance engine. It owns the invariant that a customer's
// balance never goes negative and stays consistent with the purchase/return
// ledger. All commands run within a caller-provided transaction and follow
// the same pattern: lock the customer row, check the business rule, append
// the ledger entry and adjust the balance together.
type Engine struct {
	customers repository.CustomerRepository
	catalog   repository.CatalogRepository
	purchases repository.PurchaseRepository
	returns   repository.ReturnRepository
	outbox    repository.OutboxRepository
}

// NewEngine creates a balance engine with the given repositories.
func NewEngine(
	customers repository.CustomerRepository,
	catalog repository.CatalogRepository,
	purchases repository.PurchaseRepository,
	returns repository.ReturnRepository,
	outbox repository.OutboxRepository,
) *Engine {
	return &Engine{
		customers: customers,
		catalog:   catalog,
		purchases: purchases,
		returns:   returns,
		outbox:    outbox,
	}
}

// LockCustomerForUpdate acquires a row-level lock and returns the customer.
// Must be called within a transaction; this serializes concurrent balance
// mutations against the same customer.
func (e *Engine) LockCustomerForUpdate(ctx context.Context, tx pgx.Tx, customerID uuid.UUID) (*domain.Customer, error) {
	customer, err := e.customers.LockForUpdate(ctx, tx, customerID)
	if err != nil {
		return nil, fmt.Errorf("lock customer: %w", err)
	}
	if customer == nil {
		return nil, domain.ErrNotFound("customer", customerID.String())
	}
	return customer, nil
}

// PurchaseTotal computes the debit for a purchase: unit price times quantity,
// 2-decimal fixed point.
func PurchaseTotal(price decimal.Decimal, qty int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(qty)))
}
