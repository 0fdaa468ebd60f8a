package keeper

import (
	"context"

	"github.com/duopool/duopool/x/amm/types"
)

// requireOperator returns ErrUnauthorized unless caller is the configured
// operator identity.
func (k *Keeper) requireOperator(caller string) error {
	if caller != k.operator {
		return types.ErrUnauthorized.Wrapf("caller %q is not the pool operator", caller)
	}
	return nil
}

// requireNotPaused returns ErrPaused while the pause switch is on.
func (k *Keeper) requireNotPaused() error {
	if k.pool.Paused {
		return types.ErrPaused.Wrap("pool operations are currently halted")
	}
	return nil
}

// IsPaused reports the current pause state.
func (k *Keeper) IsPaused() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.pool.Paused
}

// TogglePause flips the global pause flag. Operator only. While paused,
// every other mutating operation rejects until toggled back; reads stay
// available.
func (k *Keeper) TogglePause(ctx context.Context, caller string) (bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.requireOperator(caller); err != nil {
		return k.pool.Paused, err
	}

	k.pool.Paused = !k.pool.Paused

	if k.metrics != nil {
		if k.pool.Paused {
			k.metrics.Paused.Set(1)
		} else {
			k.metrics.Paused.Set(0)
		}
	}

	k.Logger().Info(types.EventTypePauseToggled, "paused", k.pool.Paused, "caller", caller)
	k.notify(types.EventTypePauseToggled, k.hooks.AfterPauseToggled(ctx, k.pool.Paused))
	return k.pool.Paused, nil
}
