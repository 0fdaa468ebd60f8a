package keeper

import (
	"context"

	"github.com/duopool/duopool/x/amm/types"
)

// SetFeeRate replaces the swap fee rate. Operator only, requires unpaused.
// Rejects rates outside [0, MaxFeeRate) with ErrInvalidFee.
func (k *Keeper) SetFeeRate(ctx context.Context, caller string, rate int64) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.requireOperator(caller); err != nil {
		return err
	}
	if err := k.requireNotPaused(); err != nil {
		return err
	}

	fee := types.NewFeePolicy(rate)
	if err := fee.Validate(); err != nil {
		return err
	}

	oldRate := k.pool.Fee.Rate
	k.pool.Fee = fee

	k.Logger().Info(types.EventTypeFeeUpdated, "old_rate", oldRate, "new_rate", rate, "caller", caller)
	k.notify(types.EventTypeFeeUpdated, k.hooks.AfterFeeUpdated(ctx, oldRate, rate))
	return nil
}

// FeeRate returns the current swap fee rate in parts per thousand.
func (k *Keeper) FeeRate() int64 {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.pool.Fee.Rate
}
