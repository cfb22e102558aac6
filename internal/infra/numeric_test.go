package infra

import (
	"math/big"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericToDecimal_Zero(t *testing.T) {
	n := DecimalToNumeric(decimal.Zero)
	d, err := NumericToDecimal(n)
	require.NoError(t, err)
	assert.True(t, d.IsZero())
}

func TestNumericToDecimal_TwoPlaces(t *testing.T) {
	want := decimal.RequireFromString("40.00")
	n := DecimalToNumeric(want)
	d, err := NumericToDecimal(n)
	require.NoError(t, err)
	assert.True(t, want.Equal(d))
	assert.Equal(t, "40.00", d.StringFixed(2))
}

func TestNumericToDecimal_Negative(t *testing.T) {
	want := decimal.RequireFromString("-15.50")
	n := DecimalToNumeric(want)
	d, err := NumericToDecimal(n)
	require.NoError(t, err)
	assert.True(t, want.Equal(d))
}

func TestNumericToDecimal_LargeBalance(t *testing.T) {
	// numeric(10,2) max is 99_999_999.99
	want := decimal.RequireFromString("99999999.99")
	n := DecimalToNumeric(want)
	d, err := NumericToDecimal(n)
	require.NoError(t, err)
	assert.True(t, want.Equal(d))
}

func TestNumericToDecimal_Null(t *testing.T) {
	_, err := NumericToDecimal(pgtype.Numeric{Valid: false})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NULL")
}

func TestNumericToDecimal_NaN(t *testing.T) {
	_, err := NumericToDecimal(pgtype.Numeric{Valid: true, NaN: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NaN")
}

func TestNumericToDecimal_Infinity(t *testing.T) {
	_, err := NumericToDecimal(pgtype.Numeric{
		Valid:            true,
		InfinityModifier: pgtype.Infinity,
	})
	require.Error(t, err)
}

func TestNumericToDecimal_RawPgValue(t *testing.T) {
	// 1999 * 10^-2 = 19.99, the shape pgx produces when scanning numeric(4,2)
	n := pgtype.Numeric{Int: big.NewInt(1999), Exp: -2, Valid: true}
	d, err := NumericToDecimal(n)
	require.NoError(t, err)
	assert.Equal(t, "19.99", d.StringFixed(2))
}

func TestDecimalToNumeric_Valid(t *testing.T) {
	n := DecimalToNumeric(decimal.RequireFromString("20.00"))
	assert.True(t, n.Valid)
	assert.False(t, n.NaN)
	assert.Equal(t, pgtype.Finite, n.InfinityModifier)
}
