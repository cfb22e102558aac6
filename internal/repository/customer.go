package repository

import (
	"context"
	"fmt"

	"github.com/gamevault/platform/internal/domain"
	"github.com/gamevault/platform/internal/infra"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type customerRepo struct{}

// NewCustomerRepository returns a pgx-backed CustomerRepository.
func NewCustomerRepository() CustomerRepository {
	return &customerRepo{}
}

const customerColumns = `id, username, email, password_hash, balance, created_at, updated_at`

func (r *customerRepo) FindByID(ctx context.Context, db DBTX, id uuid.UUID) (*domain.Customer, error) {
	row := db.QueryRow(ctx, `
		SELECT `+customerColumns+`
		FROM customers WHERE id = $1`, id)
	return scanCustomer(row)
}

func (r *customerRepo) FindByEmail(ctx context.Context, db DBTX, email string) (*domain.Customer, error) {
	row := db.QueryRow(ctx, `
		SELECT `+customerColumns+`
		FROM customers WHERE email = $1`, email)
	return scanCustomer(row)
}

func (r *customerRepo) FindByUsername(ctx context.Context, db DBTX, username string) (*domain.Customer, error) {
	row := db.QueryRow(ctx, `
		SELECT `+customerColumns+`
		FROM customers WHERE username = $1`, username)
	return scanCustomer(row)
}

func (r *customerRepo) Create(ctx context.Context, db DBTX, c *domain.Customer) error {
	_, err := db.Exec(ctx, `
		INSERT INTO customers (id, username, email, password_hash, balance)
		VALUES ($1, $2, $3, $4, $5)`,
		c.ID,
		c.Username,
		c.Email,
		c.PasswordHash,
		infra.DecimalToNumeric(c.Balance),
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func (r *customerRepo) LockForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Customer, error) {
	row := tx.QueryRow(ctx, `
		SELECT `+customerColumns+`
		FROM customers WHERE id = $1 FOR UPDATE`, id)
	return scanCustomer(row)
}

// AdjustBalance uses server-side arithmetic so the read-modify-write of the
// balance happens inside the database under the row lock.
func (r *customerRepo) AdjustBalance(ctx context.Context, tx pgx.Tx, id uuid.UUID, delta decimal.Decimal) (*domain.Customer, error) {
	row := tx.QueryRow(ctx, `
		UPDATE customers
		SET balance = balance + $1, updated_at = now()
		WHERE id = $2
		RETURNING `+customerColumns, infra.DecimalToNumeric(delta), id)
	return scanCustomer(row)
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	var balNum pgtype.Numeric
	err := row.Scan(&c.ID, &c.Username, &c.Email, &c.PasswordHash, &balNum, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scan customer: %w", err)
	}

	c.Balance, err = infra.NumericToDecimal(balNum)
	if err != nil {
		return nil, fmt.Errorf("convert balance: %w", err)
	}
	return &c, nil
}
