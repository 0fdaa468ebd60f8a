package types

import (
	"cosmossdk.io/math"
)

// PositionRecord is the exportable form of one depositor's bookkeeping.
type PositionRecord struct {
	Depositor  string   `json:"depositor"`
	DepositedA math.Int `json:"deposited_a"`
	DepositedB math.Int `json:"deposited_b"`
}

// GenesisState is a snapshot of the pool aggregate. Asset handles are not
// part of the snapshot: they are runtime capabilities and must be rebound
// through ConfigureAssets after import. Importing state does not move any
// external balances; the importer is responsible for the external ledgers
// backing the reserves.
type GenesisState struct {
	ReserveA  math.Int         `json:"reserve_a"`
	ReserveB  math.Int         `json:"reserve_b"`
	FeeRate   int64            `json:"fee_rate"`
	Paused    bool             `json:"paused"`
	Positions []PositionRecord `json:"positions,omitempty"`
}

// DefaultGenesis returns the genesis state of a freshly deployed pool:
// zero reserves, default fee, unpaused, no positions.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		ReserveA: math.ZeroInt(),
		ReserveB: math.ZeroInt(),
		FeeRate:  DefaultFeeRate,
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if gs.ReserveA.IsNil() || gs.ReserveB.IsNil() {
		return ErrInvalidState.Wrap("reserves not set")
	}
	if gs.ReserveA.IsNegative() || gs.ReserveB.IsNegative() {
		return ErrInvalidState.Wrapf("negative reserves: %s / %s", gs.ReserveA, gs.ReserveB)
	}
	if err := NewFeePolicy(gs.FeeRate).Validate(); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(gs.Positions))
	for _, pos := range gs.Positions {
		if pos.Depositor == "" {
			return ErrInvalidState.Wrap("position with empty depositor")
		}
		if _, ok := seen[pos.Depositor]; ok {
			return ErrInvalidState.Wrapf("duplicate position for depositor %s", pos.Depositor)
		}
		seen[pos.Depositor] = struct{}{}
		if pos.DepositedA.IsNil() || pos.DepositedB.IsNil() {
			return ErrInvalidState.Wrapf("position %s has unset amounts", pos.Depositor)
		}
		if pos.DepositedA.IsNegative() || pos.DepositedB.IsNegative() {
			return ErrInvalidState.Wrapf("position %s has negative amounts", pos.Depositor)
		}
	}
	return nil
}
