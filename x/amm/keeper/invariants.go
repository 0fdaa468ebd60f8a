package keeper

import (
	"context"

	"github.com/duopool/duopool/x/amm/types"
)

// CheckInvariants verifies the pool's safety properties:
//
//  1. both reserves are non-negative,
//  2. the fee rate is inside its valid range,
//  3. per axis, the pool's external balance covers the tracked reserve
//     (the surplus, if any, is un-swept leftover).
//
// Returns nil when all invariants hold. Skips the balance checks while
// assets are unconfigured, since there is no external ledger to compare
// against yet.
func (k *Keeper) CheckInvariants(ctx context.Context) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.pool.Validate(); err != nil {
		return err
	}
	if !k.pool.Configured() {
		return nil
	}

	for _, axis := range []types.Axis{types.AxisA, types.AxisB} {
		balance, err := k.pool.Asset(axis).BalanceOf(ctx, k.account)
		if err != nil {
			return types.ErrInvalidState.Wrapf("balance query on axis %s: %v", axis, err)
		}
		if balance.LT(k.pool.Reserve(axis)) {
			return types.ErrInvariantViolation.Wrapf("axis %s external balance %s below reserve %s",
				axis, balance, k.pool.Reserve(axis))
		}
	}
	return nil
}
