package keeper

import (
	"sort"

	"github.com/duopool/duopool/x/amm/types"
)

// InitGenesis loads a pool snapshot into the keeper. Asset handles are not
// part of the snapshot and must be rebound via ConfigureAssets afterwards.
func (k *Keeper) InitGenesis(gs *types.GenesisState) error {
	if gs == nil {
		return types.ErrInvalidState.Wrap("nil genesis state")
	}
	if err := gs.Validate(); err != nil {
		return err
	}

	k.mu.Lock()
	defer k.mu.Unlock()

	k.pool.ReserveA = gs.ReserveA
	k.pool.ReserveB = gs.ReserveB
	k.pool.Fee = types.NewFeePolicy(gs.FeeRate)
	k.pool.Paused = gs.Paused

	k.positions = make(map[string]types.Position, len(gs.Positions))
	for _, pos := range gs.Positions {
		k.positions[pos.Depositor] = types.Position{
			DepositedA:   pos.DepositedA,
			DepositedB:   pos.DepositedB,
			HasDeposited: true,
		}
	}

	k.Logger().Info("genesis state imported",
		"reserve_a", gs.ReserveA.String(),
		"reserve_b", gs.ReserveB.String(),
		"fee_rate", gs.FeeRate,
		"paused", gs.Paused,
		"positions", len(gs.Positions),
	)
	return nil
}

// ExportGenesis snapshots the pool aggregate. Positions are sorted by
// depositor for deterministic output.
func (k *Keeper) ExportGenesis() *types.GenesisState {
	k.mu.Lock()
	defer k.mu.Unlock()

	positions := make([]types.PositionRecord, 0, len(k.positions))
	for depositor, pos := range k.positions {
		positions = append(positions, types.PositionRecord{
			Depositor:  depositor,
			DepositedA: pos.DepositedA,
			DepositedB: pos.DepositedB,
		})
	}
	sort.Slice(positions, func(i, j int) bool {
		return positions[i].Depositor < positions[j].Depositor
	})

	return &types.GenesisState{
		ReserveA:  k.pool.ReserveA,
		ReserveB:  k.pool.ReserveB,
		FeeRate:   k.pool.Fee.Rate,
		Paused:    k.pool.Paused,
		Positions: positions,
	}
}
