package ledger

import (
	"context"
	"fmt"

	"github.com/gamevault/platform/internal/domain"
	"github.com/jackc/pgx/v5"
)

// ExecuteReturn credits the customer's balance with the refund for a prior
// purchase and appends a return row referencing it. The purchase must belong
// to the acting customer and must not already have a return.
//
// The refund is recomputed from the current catalogue price of the purchased
// game, not from a snapshot taken at purchase time.
func (e *Engine) ExecuteReturn(ctx context.Context, tx pgx.Tx, params domain.ReturnParams) (*domain.ReturnResult, error) {
	// Lock
	customer, err := e.LockCustomerForUpdate(ctx, tx, params.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("return: %w", err)
	}

	purchase, err := e.purchases.FindByID(ctx, tx, params.PurchaseID)
	if err != nil {
		return nil, fmt.Errorf("return resolve purchase: %w", err)
	}
	if purchase == nil {
		return nil, domain.ErrNotFound("purchase", params.PurchaseID.String())
	}
	if purchase.CustomerID != customer.ID {
		return nil, domain.ErrForbidden("purchase belongs to another customer")
	}

	existing, err := e.returns.FindByPurchase(ctx, tx, purchase.ID)
	if err != nil {
		return nil, fmt.Errorf("return check existing: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrConflict("purchase already returned")
	}

	game, err := e.catalog.FindGameByID(ctx, tx, purchase.GameID)
	if err != nil {
		return nil, fmt.Errorf("return resolve game: %w", err)
	}
	if game == nil {
		return nil, domain.ErrNotFound("game", purchase.GameID.String())
	}

	refund := PurchaseTotal(game.Price, purchase.Qty)

	entry, err := e.returns.Insert(ctx, tx, &domain.Return{
		CustomerID: customer.ID,
		PurchaseID: purchase.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("return append: %w", err)
	}

	updated, err := e.customers.AdjustBalance(ctx, tx, customer.ID, refund)
	if err != nil {
		return nil, fmt.Errorf("return credit: %w", err)
	}

	if err := e.outbox.Insert(ctx, tx, domain.NewReturnPostedEvent(entry, refund, updated.Balance)); err != nil {
		return nil, fmt.Errorf("return outbox: %w", err)
	}

	return &domain.ReturnResult{
		Return:   entry,
		Customer: updated,
		Refund:   refund,
	}, nil
}
