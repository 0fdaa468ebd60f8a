package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/duopool/duopool/x/amm/types"
)

// SweepLeftover transfers the un-pooled surplus on both axes — external
// balance minus reserve — to the caller. Operator only, requires unpaused.
// At least one leftover must reach one whole token unit, otherwise
// ErrNothingToSweep; the threshold keeps dust from triggering transfers.
// Reserves are never touched.
func (k *Keeper) SweepLeftover(ctx context.Context, caller string) (leftoverA, leftoverB math.Int, err error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	zero := math.ZeroInt()

	if err := k.requireOperator(caller); err != nil {
		return zero, zero, err
	}
	if err := k.requireNotPaused(); err != nil {
		return zero, zero, err
	}
	if err := k.requireConfigured(); err != nil {
		return zero, zero, err
	}

	leftoverA, err = k.leftover(ctx, types.AxisA)
	if err != nil {
		return zero, zero, err
	}
	leftoverB, err = k.leftover(ctx, types.AxisB)
	if err != nil {
		return zero, zero, err
	}

	unit := k.params.UnitFactor()
	if leftoverA.LT(unit) && leftoverB.LT(unit) {
		return zero, zero, types.ErrNothingToSweep.Wrapf("leftovers %s / %s below one token unit %s",
			leftoverA, leftoverB, unit)
	}

	if leftoverA.IsPositive() {
		if err := k.pool.AssetA.Transfer(ctx, caller, leftoverA); err != nil {
			return zero, zero, types.ErrTransferFailed.Wrapf("sweep asset A: %v", err)
		}
	}
	if leftoverB.IsPositive() {
		if err := k.pool.AssetB.Transfer(ctx, caller, leftoverB); err != nil {
			// Pull the already-paid A leg back so the sweep stays
			// all-or-nothing. Pull-back failures are logged for manual
			// reconciliation; reserves were never touched either way.
			if leftoverA.IsPositive() {
				if revertErr := k.pool.AssetA.TransferFrom(ctx, caller, k.account, leftoverA); revertErr != nil {
					k.Logger().Error("failed to pull back asset A leg after asset B sweep failure",
						"original_error", err, "revert_error", revertErr,
						"recipient", caller, "amount", leftoverA.String())
				}
			}
			return zero, zero, types.ErrTransferFailed.Wrapf("sweep asset B: %v", err)
		}
	}

	if k.metrics != nil {
		k.metrics.LeftoverSwept.WithLabelValues(types.AxisA.String()).Add(approxFloat(leftoverA))
		k.metrics.LeftoverSwept.WithLabelValues(types.AxisB.String()).Add(approxFloat(leftoverB))
	}

	k.Logger().Info(types.EventTypeLeftoverSwept,
		"recipient", caller,
		"leftover_a", leftoverA.String(),
		"leftover_b", leftoverB.String(),
	)
	k.notify(types.EventTypeLeftoverSwept, k.hooks.AfterLeftoverSwept(ctx, caller, leftoverA, leftoverB))
	return leftoverA, leftoverB, nil
}

// leftover computes externalBalance - reserve for one axis. A negative
// result means the external ledger holds less than the tracked reserve,
// which is an invariant violation, not a sweepable amount.
func (k *Keeper) leftover(ctx context.Context, axis types.Axis) (math.Int, error) {
	balance, err := k.pool.Asset(axis).BalanceOf(ctx, k.account)
	if err != nil {
		return math.Int{}, types.ErrInvalidState.Wrapf("balance query on axis %s: %v", axis, err)
	}
	reserve := k.pool.Reserve(axis)
	if balance.LT(reserve) {
		return math.Int{}, types.ErrInvariantViolation.Wrapf("axis %s external balance %s below reserve %s",
			axis, balance, reserve)
	}
	return balance.Sub(reserve), nil
}
