package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/duopool/duopool/x/amm/types"
)

func TestSafeAdd(t *testing.T) {
	sum, err := types.SafeAdd(math.NewInt(2), math.NewInt(3))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(5), sum)

	huge := math.NewIntWithDecimal(1, 76) // near the 256-bit ceiling
	_, err = types.SafeAdd(huge.MulRaw(10), huge.MulRaw(10))
	require.ErrorIs(t, err, types.ErrOverflow)
}

func TestSafeMul(t *testing.T) {
	product, err := types.SafeMul(math.NewInt(6), math.NewInt(7))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(42), product)

	huge := math.NewIntWithDecimal(1, 76)
	_, err = types.SafeMul(huge, math.NewInt(100))
	require.ErrorIs(t, err, types.ErrOverflow)
}

func TestSafeSub(t *testing.T) {
	diff, err := types.SafeSub(math.NewInt(5), math.NewInt(3))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(2), diff)

	diff, err = types.SafeSub(math.NewInt(5), math.NewInt(5))
	require.NoError(t, err)
	require.True(t, diff.IsZero())

	_, err = types.SafeSub(math.NewInt(3), math.NewInt(5))
	require.ErrorIs(t, err, types.ErrInsufficientReserve)
}

func TestSafeMulDiv(t *testing.T) {
	out, err := types.SafeMulDiv(math.NewInt(100), math.NewInt(600), math.NewInt(1000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(60), out)

	// Floors.
	out, err = types.SafeMulDiv(math.NewInt(7), math.NewInt(599), math.NewInt(1000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(4), out)

	_, err = types.SafeMulDiv(math.NewInt(1), math.NewInt(1), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrZeroReserve)
}

func TestSafeMulDiv_IntermediateOverflowIsFine(t *testing.T) {
	// The 512-bit intermediate product is allowed as long as the quotient
	// fits back into 256 bits.
	huge := math.NewIntWithDecimal(1, 70)
	out, err := types.SafeMulDiv(huge, huge, huge)
	require.NoError(t, err)
	require.Equal(t, huge, out)
}
