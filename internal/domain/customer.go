package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customer represents a customers row: the authenticated identity plus the
// stored monetary balance. Balance is 2-decimal fixed point and never
// negative at any committed state.
type Customer struct {
	ID           uuid.UUID       `json:"id"`
	Username     string          `json:"username"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"-"`
	Balance      decimal.Decimal `json:"balance"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
