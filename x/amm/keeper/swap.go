package keeper

import (
	"context"
	"time"

	"cosmossdk.io/math"

	"github.com/duopool/duopool/x/amm/types"
)

// Swap exchanges amountIn (whole units) of the input axis for the opposite
// asset. Requires unpaused; any caller. The exchange rate is fixed at the
// pre-trade reserve ratio for the whole trade:
//
//	amountOut = amountIn * reserve[out] / reserve[in]
//
// The scaled input must be strictly less than half of the input-axis
// reserve, otherwise ErrTradeTooLarge. The fee is deducted from the output
// leg and stays in the pool's external balance without being credited back
// to the reserve, becoming sweepable leftover. ErrSlippageExceeded is
// returned before any transfer when the net output is below minAmountOut.
//
// Ordering inside the critical section: pull the input from the trader,
// commit the reserve delta, then pay the net output. A failed payout rolls
// the delta back and refunds the input.
func (k *Keeper) Swap(ctx context.Context, trader string, axisIn types.Axis, amountIn, minAmountOut math.Int) (math.Int, error) {
	start := time.Now()
	defer func() {
		if k.metrics != nil {
			k.metrics.SwapLatency.Observe(time.Since(start).Seconds())
		}
	}()

	k.mu.Lock()
	defer k.mu.Unlock()

	zero := math.ZeroInt()

	if err := k.requireNotPaused(); err != nil {
		k.countSwap("failed")
		return zero, err
	}
	if err := k.requireConfigured(); err != nil {
		k.countSwap("failed")
		return zero, err
	}
	if err := axisIn.Validate(); err != nil {
		k.countSwap("failed")
		return zero, err
	}
	if err := requirePositive("amount in", amountIn); err != nil {
		k.countSwap("failed")
		return zero, err
	}
	if minAmountOut.IsNil() || minAmountOut.IsNegative() {
		k.countSwap("failed")
		return zero, types.ErrInvalidAmount.Wrap("minimum output cannot be negative")
	}

	scaledIn, err := k.scale(amountIn)
	if err != nil {
		k.countSwap("failed")
		return zero, err
	}
	scaledMin, err := k.scale(minAmountOut)
	if err != nil {
		k.countSwap("failed")
		return zero, err
	}

	axisOut := axisIn.Other()
	reserveIn := k.pool.Reserve(axisIn)
	reserveOut := k.pool.Reserve(axisOut)

	if reserveIn.IsZero() {
		k.countSwap("failed")
		return zero, types.ErrZeroReserve.Wrapf("no liquidity on axis %s", axisIn)
	}

	if tooLarge(scaledIn, reserveIn) {
		k.countSwap("failed")
		return zero, types.ErrTradeTooLarge.Wrapf("scaled input %s not strictly less than half of reserve %s",
			scaledIn, reserveIn)
	}

	// Rate fixed at the pre-trade snapshot; the trade's own delta does not
	// feed back into its price.
	amountOut, err := types.SafeMulDiv(scaledIn, reserveOut, reserveIn)
	if err != nil {
		k.countSwap("failed")
		return zero, err
	}

	netOut, feeAmount := k.pool.Fee.ApplyFee(amountOut)

	if netOut.LT(scaledMin) {
		k.countSwap("failed")
		return zero, types.ErrSlippageExceeded.Wrapf("expected at least %s, got %s", scaledMin, netOut)
	}

	if err := k.pool.Asset(axisIn).TransferFrom(ctx, trader, k.account, scaledIn); err != nil {
		k.countSwap("failed")
		return zero, types.ErrTransferFailed.Wrapf("pull input: %v", err)
	}

	// The full pre-fee output leaves the reserve; the fee part of it stays
	// in the pool's external balance as leftover.
	if err := k.pool.ApplySwapDelta(axisIn, scaledIn, amountOut); err != nil {
		if revertErr := k.pool.Asset(axisIn).Transfer(ctx, trader, scaledIn); revertErr != nil {
			k.Logger().Error("failed to refund input after reserve delta failure",
				"original_error", err, "revert_error", revertErr, "trader", trader)
		}
		k.countSwap("failed")
		return zero, err
	}

	if err := k.payOut(ctx, axisOut, trader, netOut); err != nil {
		// Inverse delta: credit the output reserve back, debit the input.
		if revertErr := k.pool.ApplySwapDelta(axisOut, amountOut, scaledIn); revertErr != nil {
			k.Logger().Error("failed to roll back reserve delta after payout failure",
				"original_error", err, "revert_error", revertErr)
		}
		if revertErr := k.pool.Asset(axisIn).Transfer(ctx, trader, scaledIn); revertErr != nil {
			k.Logger().Error("failed to refund input after payout failure",
				"original_error", err, "revert_error", revertErr, "trader", trader)
		}
		k.countSwap("failed")
		return zero, types.ErrTransferFailed.Wrapf("pay output: %v", err)
	}

	if k.metrics != nil {
		k.metrics.SwapsTotal.WithLabelValues("success").Inc()
		k.metrics.SwapVolume.WithLabelValues(axisIn.String()).Add(approxFloat(scaledIn))
		k.metrics.FeesAccrued.WithLabelValues(axisOut.String()).Add(approxFloat(feeAmount))
	}

	k.Logger().Info(types.EventTypeSwap,
		"trader", trader,
		"axis_in", axisIn.String(),
		"amount_in", scaledIn.String(),
		"axis_out", axisOut.String(),
		"amount_out", netOut.String(),
		"fee", feeAmount.String(),
	)
	k.notify(types.EventTypeSwap, k.hooks.AfterSwap(ctx, trader, axisIn, scaledIn, axisOut, netOut))
	return netOut, nil
}

// SimulateSwap calculates the scaled net output and fee for a swap without
// executing it. Same validation as Swap up to the slippage check.
func (k *Keeper) SimulateSwap(axisIn types.Axis, amountIn math.Int) (netOut, fee math.Int, err error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	zero := math.ZeroInt()

	if err := k.requireConfigured(); err != nil {
		return zero, zero, err
	}
	if err := axisIn.Validate(); err != nil {
		return zero, zero, err
	}
	if err := requirePositive("amount in", amountIn); err != nil {
		return zero, zero, err
	}

	scaledIn, err := k.scale(amountIn)
	if err != nil {
		return zero, zero, err
	}
	reserveIn := k.pool.Reserve(axisIn)
	reserveOut := k.pool.Reserve(axisIn.Other())

	if reserveIn.IsZero() {
		return zero, zero, types.ErrZeroReserve.Wrapf("no liquidity on axis %s", axisIn)
	}
	if tooLarge(scaledIn, reserveIn) {
		return zero, zero, types.ErrTradeTooLarge.Wrapf("scaled input %s not strictly less than half of reserve %s",
			scaledIn, reserveIn)
	}

	amountOut, err := types.SafeMulDiv(scaledIn, reserveOut, reserveIn)
	if err != nil {
		return zero, zero, err
	}
	netOut, fee = k.pool.Fee.ApplyFee(amountOut)
	return netOut, fee, nil
}

// tooLarge enforces the anti-drain cap: the scaled input must stay strictly
// below half of the input-axis reserve. Doubling through a checked multiply
// so inputs near the 256-bit ceiling reject instead of panicking.
func tooLarge(scaledIn, reserveIn math.Int) bool {
	doubled, err := types.SafeMul(scaledIn, math.NewInt(2))
	if err != nil {
		return true
	}
	return doubled.GTE(reserveIn)
}

// payOut transfers the net output to the trader. A tiny trade can floor the
// net output to zero, in which case there is nothing to move.
func (k *Keeper) payOut(ctx context.Context, axisOut types.Axis, trader string, netOut math.Int) error {
	if !netOut.IsPositive() {
		return nil
	}
	return k.pool.Asset(axisOut).Transfer(ctx, trader, netOut)
}

func (k *Keeper) countSwap(status string) {
	if k.metrics != nil {
		k.metrics.SwapsTotal.WithLabelValues(status).Inc()
	}
}
