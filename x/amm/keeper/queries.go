package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/duopool/duopool/x/amm/types"
)

// GetReserves returns the current scaled reserve quantities. Pure read,
// available in any pause state.
func (k *Keeper) GetReserves() (reserveA, reserveB math.Int) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.pool.ReserveA, k.pool.ReserveB
}

// GetAssetBalance returns the pool account's external balance on one axis.
func (k *Keeper) GetAssetBalance(ctx context.Context, axis types.Axis) (math.Int, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := axis.Validate(); err != nil {
		return math.Int{}, err
	}
	if err := k.requireConfigured(); err != nil {
		return math.Int{}, err
	}
	balance, err := k.pool.Asset(axis).BalanceOf(ctx, k.account)
	if err != nil {
		return math.Int{}, types.ErrInvalidState.Wrapf("balance query on axis %s: %v", axis, err)
	}
	return balance, nil
}

// GetPoolBalances returns the pool account's external balances on both axes.
func (k *Keeper) GetPoolBalances(ctx context.Context) (balanceA, balanceB math.Int, err error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.requireConfigured(); err != nil {
		return math.Int{}, math.Int{}, err
	}
	balanceA, err = k.pool.AssetA.BalanceOf(ctx, k.account)
	if err != nil {
		return math.Int{}, math.Int{}, types.ErrInvalidState.Wrapf("balance query on axis a: %v", err)
	}
	balanceB, err = k.pool.AssetB.BalanceOf(ctx, k.account)
	if err != nil {
		return math.Int{}, math.Int{}, types.ErrInvalidState.Wrapf("balance query on axis b: %v", err)
	}
	return balanceA, balanceB, nil
}

// GetPosition returns the cumulative deposit bookkeeping for a depositor.
// Positions are informational; they never gate withdrawals.
func (k *Keeper) GetPosition(depositor string) (types.Position, bool) {
	k.mu.Lock()
	defer k.mu.Unlock()
	pos, ok := k.positions[depositor]
	return pos, ok
}

// SpotRate returns the current reserve ratio reserve[out]/reserve[in] for
// the given input axis as a decimal.
func (k *Keeper) SpotRate(axisIn types.Axis) (math.LegacyDec, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := axisIn.Validate(); err != nil {
		return math.LegacyZeroDec(), err
	}
	reserveIn := k.pool.Reserve(axisIn)
	reserveOut := k.pool.Reserve(axisIn.Other())
	if reserveIn.IsZero() {
		return math.LegacyZeroDec(), types.ErrZeroReserve.Wrapf("no liquidity on axis %s", axisIn)
	}
	return math.LegacyNewDecFromInt(reserveOut).Quo(math.LegacyNewDecFromInt(reserveIn)), nil
}
