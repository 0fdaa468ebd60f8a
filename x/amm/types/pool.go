package types

import (
	"cosmossdk.io/math"
)

// Pool is the single aggregate the engine mutates: the two asset handles,
// the two reserve quantities, the fee policy and the pause flag. Reserve
// mutators enforce non-negativity; they never touch external balances, which
// is the keeper's job.
type Pool struct {
	AssetA TokenHandle
	AssetB TokenHandle

	ReserveA math.Int
	ReserveB math.Int

	Fee    FeePolicy
	Paused bool
}

// NewPool returns an unpaused pool with zero reserves and unbound assets.
func NewPool(fee FeePolicy) Pool {
	return Pool{
		ReserveA: math.ZeroInt(),
		ReserveB: math.ZeroInt(),
		Fee:      fee,
	}
}

// Configured reports whether both asset handles have been bound.
func (p *Pool) Configured() bool {
	return p.AssetA != nil && p.AssetB != nil
}

// Asset returns the token handle for the given axis.
func (p *Pool) Asset(axis Axis) TokenHandle {
	if axis == AxisA {
		return p.AssetA
	}
	return p.AssetB
}

// Reserve returns the reserve quantity for the given axis.
func (p *Pool) Reserve(axis Axis) math.Int {
	if axis == AxisA {
		return p.ReserveA
	}
	return p.ReserveB
}

func (p *Pool) setReserve(axis Axis, v math.Int) {
	if axis == AxisA {
		p.ReserveA = v
	} else {
		p.ReserveB = v
	}
}

// IncreaseReserves adds to both reserves.
func (p *Pool) IncreaseReserves(amountA, amountB math.Int) error {
	return p.IncreaseReservesAt(AxisA, amountA, amountB)
}

// IncreaseReservesAt adds amountAxis to the given axis reserve and
// amountOther to the opposite reserve. Reserves are unchanged on failure.
func (p *Pool) IncreaseReservesAt(axis Axis, amountAxis, amountOther math.Int) error {
	newAxis, err := SafeAdd(p.Reserve(axis), amountAxis)
	if err != nil {
		return err
	}
	newOther, err := SafeAdd(p.Reserve(axis.Other()), amountOther)
	if err != nil {
		return err
	}
	p.setReserve(axis, newAxis)
	p.setReserve(axis.Other(), newOther)
	return nil
}

// DecreaseProportional withdraws amount from the given axis and the
// ratio-paired amount floor(amount * other / axis) from the opposite axis.
// Fails with ErrZeroReserve when the requested axis reserve is zero (the
// pairing division is undefined) and ErrInsufficientReserve when either
// decrement would underflow. On failure the reserves are unchanged.
func (p *Pool) DecreaseProportional(axis Axis, amount math.Int) (paired math.Int, err error) {
	reserveAxis := p.Reserve(axis)
	if reserveAxis.IsZero() {
		return math.Int{}, ErrZeroReserve.Wrapf("reserve %s is zero, proportional withdrawal undefined", axis)
	}

	paired, err = SafeMulDiv(amount, p.Reserve(axis.Other()), reserveAxis)
	if err != nil {
		return math.Int{}, err
	}

	newAxis, err := SafeSub(reserveAxis, amount)
	if err != nil {
		return math.Int{}, ErrInsufficientReserve.Wrapf("reserve %s: have %s, withdraw %s", axis, reserveAxis, amount)
	}
	newOther, err := SafeSub(p.Reserve(axis.Other()), paired)
	if err != nil {
		return math.Int{}, ErrInsufficientReserve.Wrapf("reserve %s: have %s, withdraw %s",
			axis.Other(), p.Reserve(axis.Other()), paired)
	}

	p.setReserve(axis, newAxis)
	p.setReserve(axis.Other(), newOther)
	return paired, nil
}

// ApplySwapDelta credits amountIn to the input-axis reserve and debits
// amountOut from the opposite reserve. Fails with ErrInsufficientReserve if
// the debit would underflow; reserves are unchanged on failure.
func (p *Pool) ApplySwapDelta(axisIn Axis, amountIn, amountOut math.Int) error {
	axisOut := axisIn.Other()
	newOut, err := SafeSub(p.Reserve(axisOut), amountOut)
	if err != nil {
		return ErrInsufficientReserve.Wrapf("reserve %s: have %s, swap out %s",
			axisOut, p.Reserve(axisOut), amountOut)
	}
	newIn, err := SafeAdd(p.Reserve(axisIn), amountIn)
	if err != nil {
		return err
	}
	p.setReserve(axisIn, newIn)
	p.setReserve(axisOut, newOut)
	return nil
}

// Validate checks internal consistency of the aggregate.
func (p *Pool) Validate() error {
	if p.ReserveA.IsNil() || p.ReserveB.IsNil() {
		return ErrInvalidState.Wrap("reserves not initialized")
	}
	if p.ReserveA.IsNegative() || p.ReserveB.IsNegative() {
		return ErrInvalidState.Wrapf("negative reserves: %s / %s", p.ReserveA, p.ReserveB)
	}
	return p.Fee.Validate()
}
