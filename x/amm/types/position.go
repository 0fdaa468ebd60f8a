package types

import (
	"cosmossdk.io/math"
)

// Position is write-only bookkeeping of a depositor's cumulative deposits.
// Withdrawals are operator-driven and proportional to the whole pool, so the
// engine records positions but never consults them to gate anything.
type Position struct {
	DepositedA   math.Int
	DepositedB   math.Int
	HasDeposited bool
}

func NewPosition() Position {
	return Position{
		DepositedA: math.ZeroInt(),
		DepositedB: math.ZeroInt(),
	}
}

// Record returns the position with the given deposit amounts accumulated.
func (p Position) Record(amountA, amountB math.Int) Position {
	return Position{
		DepositedA:   p.DepositedA.Add(amountA),
		DepositedB:   p.DepositedB.Add(amountB),
		HasDeposited: true,
	}
}
