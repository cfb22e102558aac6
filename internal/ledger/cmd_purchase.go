package ledger

import (
	"context"
	"fmt"

	"github.com/gamevault/platform/internal/domain"
	"github.com/jackc/pgx/v5"
)

// ExecutePurchase debits the customer's balance by price × qty and appends a
// purchase row. Pattern: Lock → resolve game → funds check → append + debit.
// The append and the debit commit together or not at all; on insufficient
// funds nothing is written and the caller gets a user-facing failure.
func (e *Engine) ExecutePurchase(ctx context.Context, tx pgx.Tx, params domain.PurchaseParams) (*domain.PurchaseResult, error) {
	if err := domain.ValidateQuantity(params.Qty); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}

	// Lock
	customer, err := e.LockCustomerForUpdate(ctx, tx, params.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("purchase: %w", err)
	}

	game, err := e.catalog.FindGameByName(ctx, tx, params.GameName)
	if err != nil {
		return nil, fmt.Errorf("purchase resolve game: %w", err)
	}
	if game == nil {
		return nil, domain.ErrNotFound("game", params.GameName)
	}

	total := PurchaseTotal(game.Price, params.Qty)
	if customer.Balance.LessThan(total) {
		return nil, domain.ErrInsufficientFunds()
	}

	entry, err := e.purchases.Insert(ctx, tx, &domain.Purchase{
		CustomerID: params.CustomerID,
		GameID:     game.ID,
		Qty:        params.Qty,
	})
	if err != nil {
		return nil, fmt.Errorf("purchase append: %w", err)
	}

	updated, err := e.customers.AdjustBalance(ctx, tx, params.CustomerID, total.Neg())
	if err != nil {
		return nil, fmt.Errorf("purchase debit: %w", err)
	}

	if err := e.outbox.Insert(ctx, tx, domain.NewPurchasePostedEvent(entry, total, updated.Balance)); err != nil {
		return nil, fmt.Errorf("purchase outbox: %w", err)
	}

	return &domain.PurchaseResult{
		Purchase: entry,
		Customer: updated,
		Total:    total,
	}, nil
}
