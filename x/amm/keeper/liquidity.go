package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/duopool/duopool/x/amm/types"
)

// AddLiquidity deposits amountA/amountB (whole units) into the reserve.
// Requires unpaused; any caller. Both amounts must be strictly positive.
// Funds are pulled from the operator's external balance via authorized
// transfer-on-behalf, and the caller's cumulative deposit is recorded.
//
// The amounts are deliberately NOT required to match the existing reserve
// ratio: an unbalanced deposit shifts the swap exchange rate, and guarding
// against that is the depositor's responsibility, not the engine's.
func (k *Keeper) AddLiquidity(ctx context.Context, provider string, amountA, amountB math.Int) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.requireNotPaused(); err != nil {
		return err
	}
	if err := k.requireConfigured(); err != nil {
		return err
	}
	if err := requirePositive("amount A", amountA); err != nil {
		return err
	}
	if err := requirePositive("amount B", amountB); err != nil {
		return err
	}

	scaledA, err := k.scale(amountA)
	if err != nil {
		return err
	}
	scaledB, err := k.scale(amountB)
	if err != nil {
		return err
	}

	// Pull both legs into the pool account before committing reserves.
	if err := k.pool.AssetA.TransferFrom(ctx, k.operator, k.account, scaledA); err != nil {
		return types.ErrTransferFailed.Wrapf("pull asset A: %v", err)
	}
	if err := k.pool.AssetB.TransferFrom(ctx, k.operator, k.account, scaledB); err != nil {
		if revertErr := k.pool.AssetA.Transfer(ctx, k.operator, scaledA); revertErr != nil {
			k.Logger().Error("failed to refund asset A after asset B pull failure",
				"original_error", err,
				"revert_error", revertErr,
				"provider", provider,
				"amount", scaledA.String(),
			)
		}
		return types.ErrTransferFailed.Wrapf("pull asset B: %v", err)
	}

	if err := k.pool.IncreaseReserves(scaledA, scaledB); err != nil {
		k.refundDeposit(ctx, scaledA, scaledB, err)
		return err
	}

	pos, ok := k.positions[provider]
	if !ok {
		pos = types.NewPosition()
	}
	k.positions[provider] = pos.Record(scaledA, scaledB)

	if k.metrics != nil {
		k.metrics.LiquidityAdded.WithLabelValues(types.AxisA.String()).Add(approxFloat(scaledA))
		k.metrics.LiquidityAdded.WithLabelValues(types.AxisB.String()).Add(approxFloat(scaledB))
	}

	k.Logger().Info(types.EventTypePoolIncreased,
		"provider", provider,
		"amount_a", scaledA.String(),
		"amount_b", scaledB.String(),
		"reserve_a", k.pool.ReserveA.String(),
		"reserve_b", k.pool.ReserveB.String(),
	)
	k.notify(types.EventTypePoolIncreased,
		k.hooks.AfterPoolIncreased(ctx, provider, scaledA, scaledB, k.pool.ReserveA, k.pool.ReserveB))
	return nil
}

// refundDeposit returns both pulled legs to the operator after a failed
// reserve commit. Refund failures are logged, never masked over the
// original error.
func (k *Keeper) refundDeposit(ctx context.Context, scaledA, scaledB math.Int, cause error) {
	if revertErr := k.pool.AssetA.Transfer(ctx, k.operator, scaledA); revertErr != nil {
		k.Logger().Error("failed to refund asset A after reserve commit failure",
			"original_error", cause, "revert_error", revertErr, "amount", scaledA.String())
	}
	if revertErr := k.pool.AssetB.Transfer(ctx, k.operator, scaledB); revertErr != nil {
		k.Logger().Error("failed to refund asset B after reserve commit failure",
			"original_error", cause, "revert_error", revertErr, "amount", scaledB.String())
	}
}

// RemoveLiquidity withdraws amount (whole units) from the given axis and the
// ratio-paired amount from the opposite axis, paying both to the caller.
// Operator only, requires unpaused. The reserve delta is committed before
// the outbound transfers; a failed payout rolls the delta back.
//
// The pairing ratio divides by the requested-axis reserve, so a zero reserve
// on that axis fails with ErrZeroReserve. A zero reserve on the opposite
// axis is fine: the withdrawal pairs with nothing.
func (k *Keeper) RemoveLiquidity(ctx context.Context, caller string, axis types.Axis, amount math.Int) (withdrawn, paired math.Int, err error) {
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
	if err := axis.Validate(); err != nil {
		return zero, zero, err
	}
	if err := requirePositive("amount", amount); err != nil {
		return zero, zero, err
	}

	scaled, err := k.scale(amount)
	if err != nil {
		return zero, zero, err
	}

	paired, err = k.pool.DecreaseProportional(axis, scaled)
	if err != nil {
		return zero, zero, err
	}

	// Reserves are committed; pay out both legs.
	if err := k.pool.Asset(axis).Transfer(ctx, caller, scaled); err != nil {
		k.restoreWithdrawal(ctx, caller, axis, scaled, paired, zero, err)
		return zero, zero, types.ErrTransferFailed.Wrapf("pay out axis %s: %v", axis, err)
	}
	// A small withdrawal against a lopsided pool can floor the paired
	// amount to zero; skip the empty leg.
	if paired.IsPositive() {
		if err := k.pool.Asset(axis.Other()).Transfer(ctx, caller, paired); err != nil {
			k.restoreWithdrawal(ctx, caller, axis, scaled, paired, scaled, err)
			return zero, zero, types.ErrTransferFailed.Wrapf("pay out axis %s: %v", axis.Other(), err)
		}
	}

	var amountA, amountB math.Int
	if axis == types.AxisA {
		amountA, amountB = scaled, paired
	} else {
		amountA, amountB = paired, scaled
	}

	if k.metrics != nil {
		k.metrics.LiquidityRemoved.WithLabelValues(types.AxisA.String()).Add(approxFloat(amountA))
		k.metrics.LiquidityRemoved.WithLabelValues(types.AxisB.String()).Add(approxFloat(amountB))
	}

	k.Logger().Info(types.EventTypePoolDecreased,
		"recipient", caller,
		"amount_a", amountA.String(),
		"amount_b", amountB.String(),
		"reserve_a", k.pool.ReserveA.String(),
		"reserve_b", k.pool.ReserveB.String(),
	)
	k.notify(types.EventTypePoolDecreased,
		k.hooks.AfterPoolDecreased(ctx, caller, amountA, amountB, k.pool.ReserveA, k.pool.ReserveB))
	return scaled, paired, nil
}

// restoreWithdrawal rolls back a proportional decrease after a payout
// failure. alreadyPaid is the axis-leg amount that left the pool before the
// failure; the engine attempts to pull it back so external balances match
// the restored reserves again. Pull-back failures are logged for manual
// reconciliation.
func (k *Keeper) restoreWithdrawal(ctx context.Context, caller string, axis types.Axis, scaled, paired, alreadyPaid math.Int, cause error) {
	if err := k.pool.IncreaseReservesAt(axis, scaled, paired); err != nil {
		k.Logger().Error("failed to restore reserves after payout failure",
			"original_error", cause, "restore_error", err)
		return
	}
	if alreadyPaid.IsPositive() {
		if revertErr := k.pool.Asset(axis).TransferFrom(ctx, caller, k.account, alreadyPaid); revertErr != nil {
			k.Logger().Error("failed to pull back paid leg after payout failure",
				"original_error", cause,
				"revert_error", revertErr,
				"recipient", caller,
				"amount", alreadyPaid.String(),
			)
		}
	}
}
