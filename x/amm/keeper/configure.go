package keeper

import (
	"context"

	"github.com/duopool/duopool/x/amm/types"
)

// ConfigureAssets binds the two asset handles. Operator only; allowed in any
// pause state so an operator can rewire assets during an incident. Each
// candidate must answer the total-supply probe without erroring, otherwise
// the whole call fails with ErrNotAToken and neither handle is bound.
//
// Rebinding while liquidity exists invalidates prior reserve accounting.
// The engine does not enforce this; it is the operator's responsibility to
// only rebind before any liquidity has been added.
func (k *Keeper) ConfigureAssets(ctx context.Context, caller string, assetA, assetB types.TokenHandle) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if err := k.requireOperator(caller); err != nil {
		return err
	}
	if assetA == nil {
		return types.ErrNotAToken.Wrap("asset A handle is nil")
	}
	if assetB == nil {
		return types.ErrNotAToken.Wrap("asset B handle is nil")
	}

	if _, err := assetA.TotalSupply(ctx); err != nil {
		return types.ErrNotAToken.Wrapf("asset A total supply probe: %v", err)
	}
	if _, err := assetB.TotalSupply(ctx); err != nil {
		return types.ErrNotAToken.Wrapf("asset B total supply probe: %v", err)
	}

	k.pool.AssetA = assetA
	k.pool.AssetB = assetB

	k.Logger().Info(types.EventTypeAssetsConfigured, "caller", caller)
	k.notify(types.EventTypeAssetsConfigured, k.hooks.AfterAssetsConfigured(ctx))
	return nil
}
