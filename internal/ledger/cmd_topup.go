package ledger

import (
	"context"
	"fmt"

	"github.com/gamevault/platform/internal/domain"
	"github.com/jackc/pgx/v5"
)

// ExecuteTopUp credits the customer's balance with the fixed top-up amount.
// Always succeeds for an existing, authenticated customer.
func (e *Engine) ExecuteTopUp(ctx context.Context, tx pgx.Tx, params domain.TopUpParams) (*domain.Customer, error) {
	if err := domain.ValidatePositiveAmount(params.Amount); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}

	// Lock
	if _, err := e.LockCustomerForUpdate(ctx, tx, params.CustomerID); err != nil {
		return nil, fmt.Errorf("top-up: %w", err)
	}

	updated, err := e.customers.AdjustBalance(ctx, tx, params.CustomerID, params.Amount)
	if err != nil {
		return nil, fmt.Errorf("top-up credit: %w", err)
	}

	if err := e.outbox.Insert(ctx, tx, domain.NewFundsAddedEvent(params.CustomerID, params.Amount, updated.Balance)); err != nil {
		return nil, fmt.Errorf("top-up outbox: %w", err)
	}

	return updated, nil
}
