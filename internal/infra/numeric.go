package infra

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// NumericToDecimal converts a pgtype.Numeric (from a PostgreSQL numeric(n,2)
// money column) to a decimal.Decimal. Returns an error if the value is NULL
// or not finite.
func NumericToDecimal(n pgtype.Numeric) (decimal.Decimal, error) {
	if !n.Valid {
		return decimal.Zero, fmt.Errorf("numeric value is NULL")
	}
	if n.NaN {
		return decimal.Zero, fmt.Errorf("numeric value is NaN")
	}
	if n.InfinityModifier != pgtype.Finite {
		return decimal.Zero, fmt.Errorf("numeric value is not finite")
	}
	return decimal.NewFromBigInt(n.Int, n.Exp), nil
}

// DecimalToNumeric converts a decimal.Decimal to pgtype.Numeric for writing
// to a PostgreSQL numeric column.
func DecimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{
		Int:              d.Coefficient(),
		Exp:              d.Exponent(),
		NaN:              false,
		InfinityModifier: pgtype.Finite,
		Valid:            true,
	}
}
