package repository

import (
	"context"

	"github.com/gamevault/platform/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// DBTX abstracts pgx.Tx and pgxpool.Pool so repositories work with both.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// CustomerRepository provides access to customers.
type CustomerRepository interface {
	// FindByID returns a customer by ID, or nil if not found.
	FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Customer, error)

	// FindByEmail returns a customer by email, or nil if not found.
	FindByEmail(ctx context.Context, db DBTX, email string) (*domain.Customer, error)

	// FindByUsername returns a customer by username, or nil if not found.
	FindByUsername(ctx context.Context, db DBTX, username string) (*domain.Customer, error)

	// Create inserts a new customer.
	Create(ctx context.Context, db DBTX, c *domain.Customer) error

	// LockForUpdate acquires a row-level lock (SELECT FOR UPDATE) and returns the customer.
	LockForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Customer, error)

	// AdjustBalance applies a signed delta with server-side arithmetic and
	// returns the updated row. Must be called with the row locked.
	AdjustBalance(ctx context.Context, tx pgx.Tx, id uuid.UUID, delta decimal.Decimal) (*domain.Customer, error)
}

// CatalogRepository provides read access to the seeded catalogue plus the
// bulk-load inserts used by the seeder.
type CatalogRepository interface {
	ListGames(ctx context.Context, db DBTX) ([]domain.GameListing, error)
	FindGameByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Game, error)
	FindGameByName(ctx context.Context, db DBTX, name string) (*domain.Game, error)
	ListGamesByPublisher(ctx context.Context, db DBTX, publisherID uuid.UUID) ([]domain.GameListing, error)
	// ListGamesByPlatform returns the distinct games joined through runs.
	ListGamesByPlatform(ctx context.Context, db DBTX, platformID uuid.UUID) ([]domain.GameListing, error)
	ListGamesByGenre(ctx context.Context, db DBTX, genre string) ([]domain.GameListing, error)
	ListGenres(ctx context.Context, db DBTX) ([]string, error)
	ListPublishers(ctx context.Context, db DBTX) ([]domain.Publisher, error)
	ListPlatforms(ctx context.Context, db DBTX) ([]domain.Platform, error)

	CountGames(ctx context.Context, db DBTX) (int64, error)
	InsertPublisher(ctx context.Context, db DBTX, p *domain.Publisher) error
	InsertGame(ctx context.Context, db DBTX, g *domain.Game) error
	InsertPlatform(ctx context.Context, db DBTX, p *domain.Platform) error
	InsertRun(ctx context.Context, db DBTX, r domain.Run) error
}

// PurchaseRepository provides access to the purchases ledger. Append-only:
// there is no update or delete.
type PurchaseRepository interface {
	Insert(ctx context.Context, db DBTX, p *domain.Purchase) (*domain.Purchase, error)
	FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Purchase, error)
	ListByCustomer(ctx context.Context, db DBTX, customerID uuid.UUID) ([]domain.Purchase, error)
}

// ReturnRepository provides access to the returns ledger. Append-only.
type ReturnRepository interface {
	Insert(ctx context.Context, db DBTX, r *domain.Return) (*domain.Return, error)
	// FindByPurchase returns the return referencing a purchase, or nil.
	FindByPurchase(ctx context.Context, db DBTX, purchaseID uuid.UUID) (*domain.Return, error)
	ListByCustomer(ctx context.Context, db DBTX, customerID uuid.UUID) ([]domain.Return, error)
}

// OutboxRepository provides access to the event_outbox table.
type OutboxRepository interface {
	// Insert writes an outbox event (within the same transaction as the ledger entry).
	Insert(ctx context.Context, db DBTX, draft domain.OutboxDraft) error
}
