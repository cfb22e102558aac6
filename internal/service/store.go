package service

import (
	"context"

	"github.com/gamevault/platform/internal/domain"
	"github.com/gamevault/platform/internal/ledger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// StoreService runs balance engine commands inside one short-lived
// transaction per request. Business failures surface as domain.AppError and
// roll the whole transaction back.
type StoreService struct {
	pool        *pgxpool.Pool
	engine      *ledger.Engine
	topUpAmount decimal.Decimal
}

// NewStoreService creates a new StoreService. topUpAmount is the fixed
// credit applied by TopUp.
func NewStoreService(pool *pgxpool.Pool, engine *ledger.Engine, topUpAmount decimal.Decimal) *StoreService {
	return &StoreService{
		pool:        pool,
		engine:      engine,
		topUpAmount: topUpAmount,
	}
}

// Purchase executes a purchase command transactionally.
func (s *StoreService) Purchase(ctx context.Context, params domain.PurchaseParams) (*domain.PurchaseResult, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	result, err := s.engine.ExecutePurchase(ctx, tx, params)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.ErrInternal("commit tx", err)
	}
	return result, nil
}

// Return executes a return command transactionally.
func (s *StoreService) Return(ctx context.Context, params domain.ReturnParams) (*domain.ReturnResult, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	result, err := s.engine.ExecuteReturn(ctx, tx, params)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.ErrInternal("commit tx", err)
	}
	return result, nil
}

// TopUp credits the fixed top-up amount transactionally.
func (s *StoreService) TopUp(ctx context.Context, params domain.TopUpParams) (*domain.Customer, error) {
	params.Amount = s.topUpAmount

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	customer, err := s.engine.ExecuteTopUp(ctx, tx, params)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.ErrInternal("commit tx", err)
	}
	return customer, nil
}
