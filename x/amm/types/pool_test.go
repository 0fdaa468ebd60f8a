package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/duopool/duopool/x/amm/types"
)

func newTestPool(t *testing.T, reserveA, reserveB int64) types.Pool {
	t.Helper()
	p := types.NewPool(types.NewFeePolicy(types.DefaultFeeRate))
	require.NoError(t, p.IncreaseReserves(math.NewInt(reserveA), math.NewInt(reserveB)))
	return p
}

func TestPool_IncreaseReserves(t *testing.T) {
	p := newTestPool(t, 1000, 600)
	require.Equal(t, math.NewInt(1000), p.ReserveA)
	require.Equal(t, math.NewInt(600), p.ReserveB)

	require.NoError(t, p.IncreaseReserves(math.NewInt(1), math.NewInt(2)))
	require.Equal(t, math.NewInt(1001), p.ReserveA)
	require.Equal(t, math.NewInt(602), p.ReserveB)
}

func TestPool_DecreaseProportional(t *testing.T) {
	p := newTestPool(t, 1000, 600)

	paired, err := p.DecreaseProportional(types.AxisA, math.NewInt(100))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(60), paired)
	require.Equal(t, math.NewInt(900), p.ReserveA)
	require.Equal(t, math.NewInt(540), p.ReserveB)
}

func TestPool_DecreaseProportional_FloorsPaired(t *testing.T) {
	p := newTestPool(t, 1000, 599)

	paired, err := p.DecreaseProportional(types.AxisA, math.NewInt(7))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(4), paired) // floor(7 * 599 / 1000)
}

func TestPool_DecreaseProportional_ZeroReserve(t *testing.T) {
	p := types.NewPool(types.NewFeePolicy(0))

	_, err := p.DecreaseProportional(types.AxisA, math.NewInt(1))
	require.ErrorIs(t, err, types.ErrZeroReserve)
}

func TestPool_DecreaseProportional_Underflow(t *testing.T) {
	p := newTestPool(t, 1000, 600)

	_, err := p.DecreaseProportional(types.AxisB, math.NewInt(601))
	require.ErrorIs(t, err, types.ErrInsufficientReserve)

	// Unchanged on failure.
	require.Equal(t, math.NewInt(1000), p.ReserveA)
	require.Equal(t, math.NewInt(600), p.ReserveB)
}

func TestPool_ApplySwapDelta(t *testing.T) {
	p := newTestPool(t, 1000, 600)

	require.NoError(t, p.ApplySwapDelta(types.AxisA, math.NewInt(100), math.NewInt(60)))
	require.Equal(t, math.NewInt(1100), p.ReserveA)
	require.Equal(t, math.NewInt(540), p.ReserveB)

	// Inverse delta restores the original reserves.
	require.NoError(t, p.ApplySwapDelta(types.AxisB, math.NewInt(60), math.NewInt(100)))
	require.Equal(t, math.NewInt(1000), p.ReserveA)
	require.Equal(t, math.NewInt(600), p.ReserveB)
}

func TestPool_ApplySwapDelta_Underflow(t *testing.T) {
	p := newTestPool(t, 1000, 600)

	err := p.ApplySwapDelta(types.AxisA, math.NewInt(100), math.NewInt(601))
	require.ErrorIs(t, err, types.ErrInsufficientReserve)
	require.Equal(t, math.NewInt(1000), p.ReserveA)
	require.Equal(t, math.NewInt(600), p.ReserveB)
}

func TestPool_Configured(t *testing.T) {
	p := types.NewPool(types.NewFeePolicy(0))
	require.False(t, p.Configured())
}

func TestPool_Validate(t *testing.T) {
	p := newTestPool(t, 1, 1)
	require.NoError(t, p.Validate())

	p.ReserveA = math.NewInt(-1)
	require.ErrorIs(t, p.Validate(), types.ErrInvalidState)

	p = newTestPool(t, 1, 1)
	p.Fee = types.NewFeePolicy(99)
	require.ErrorIs(t, p.Validate(), types.ErrInvalidFee)

	p = types.Pool{}
	require.ErrorIs(t, p.Validate(), types.ErrInvalidState)
}

func TestPosition_Record(t *testing.T) {
	pos := types.NewPosition()
	require.False(t, pos.HasDeposited)

	pos = pos.Record(math.NewInt(100), math.NewInt(60))
	pos = pos.Record(math.NewInt(50), math.NewInt(30))
	require.True(t, pos.HasDeposited)
	require.Equal(t, math.NewInt(150), pos.DepositedA)
	require.Equal(t, math.NewInt(90), pos.DepositedB)
}
