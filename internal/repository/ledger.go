package repository

import (
	"context"
	"fmt"

	"github.com/gamevault/platform/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type purchaseRepo struct{}

// NewPurchaseRepository returns a pgx-backed PurchaseRepository.
func NewPurchaseRepository() PurchaseRepository {
	return &purchaseRepo{}
}

func (r *purchaseRepo) Insert(ctx context.Context, db DBTX, p *domain.Purchase) (*domain.Purchase, error) {
	row := db.QueryRow(ctx, `
		INSERT INTO purchases (customer_id, game_id, qty)
		VALUES ($1, $2, $3)
		RETURNING id, customer_id, game_id, qty, created_at`,
		p.CustomerID, p.GameID, p.Qty)
	return scanPurchase(row)
}

func (r *purchaseRepo) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Purchase, error) {
	row := db.QueryRow(ctx, `
		SELECT id, customer_id, game_id, qty, created_at
		FROM purchases WHERE id = $1`, id)
	return scanPurchase(row)
}

func (r *purchaseRepo) ListByCustomer(ctx context.Context, db DBTX, customerID uuid.UUID) ([]domain.Purchase, error) {
	rows, err := db.Query(ctx, `
		SELECT id, customer_id, game_id, qty, created_at
		FROM purchases
		WHERE customer_id = $1
		ORDER BY created_at DESC, id DESC`, customerID)
	if err != nil {
		return nil, fmt.Errorf("query purchases: %w", err)
	}
	defer rows.Close()

	var purchases []domain.Purchase
	for rows.Next() {
		var p domain.Purchase
		if err := rows.Scan(&p.ID, &p.CustomerID, &p.GameID, &p.Qty, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase row: %w", err)
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}

func scanPurchase(row pgx.Row) (*domain.Purchase, error) {
	var p domain.Purchase
	err := row.Scan(&p.ID, &p.CustomerID, &p.GameID, &p.Qty, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan purchase: %w", err)
	}
	return &p, nil
}

type returnRepo struct{}

// NewReturnRepository returns a pgx-backed ReturnRepository.
func NewReturnRepository() ReturnRepository {
	return &returnRepo{}
}

func (r *returnRepo) Insert(ctx context.Context, db DBTX, ret *domain.Return) (*domain.Return, error) {
	row := db.QueryRow(ctx, `
		INSERT INTO returns (customer_id, purchase_id)
		VALUES ($1, $2)
		RETURNING id, customer_id, purchase_id, created_at`,
		ret.CustomerID, ret.PurchaseID)
	return scanReturn(row)
}

func (r *returnRepo) FindByPurchase(ctx context.Context, db DBTX, purchaseID uuid.UUID) (*domain.Return, error) {
	row := db.QueryRow(ctx, `
		SELECT id, customer_id, purchase_id, created_at
		FROM returns WHERE purchase_id = $1`, purchaseID)
	return scanReturn(row)
}

func (r *returnRepo) ListByCustomer(ctx context.Context, db DBTX, customerID uuid.UUID) ([]domain.Return, error) {
	rows, err := db.Query(ctx, `
		SELECT id, customer_id, purchase_id, created_at
		FROM returns
		WHERE customer_id = $1
		ORDER BY created_at DESC, id DESC`, customerID)
	if err != nil {
		return nil, fmt.Errorf("query returns: %w", err)
	}
	defer rows.Close()

	var returns []domain.Return
	for rows.Next() {
		var ret domain.Return
		if err := rows.Scan(&ret.ID, &ret.CustomerID, &ret.PurchaseID, &ret.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan return row: %w", err)
		}
		returns = append(returns, ret)
	}
	return returns, rows.Err()
}

func scanReturn(row pgx.Row) (*domain.Return, error) {
	var ret domain.Return
	err := row.Scan(&ret.ID, &ret.CustomerID, &ret.PurchaseID, &ret.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan return: %w", err)
	}
	return &ret, nil
}
