package types

import (
	"cosmossdk.io/math"
)

const (
	// DefaultFeeRate is 1 per mille (0.1%).
	DefaultFeeRate int64 = 1

	// DefaultDecimals scales external whole-unit amounts into micro units,
	// matching the u-denom convention of the reference chain.
	DefaultDecimals uint32 = 6

	// MaxDecimals bounds the scaling factor at 10^18.
	MaxDecimals uint32 = 18
)

// Params holds the configurable parameters of the pool engine.
type Params struct {
	// FeeRate is the swap fee in parts per thousand, valid range [0, 30).
	FeeRate int64 `mapstructure:"fee_rate" yaml:"fee_rate"`

	// Decimals is the fixed decimal factor exponent applied to every
	// external-facing amount.
	Decimals uint32 `mapstructure:"decimals" yaml:"decimals"`
}

// DefaultParams returns default parameters for the amm module.
func DefaultParams() Params {
	return Params{
		FeeRate:  DefaultFeeRate,
		Decimals: DefaultDecimals,
	}
}

// Validate validates the set of params.
func (p Params) Validate() error {
	if err := NewFeePolicy(p.FeeRate).Validate(); err != nil {
		return err
	}
	if p.Decimals > MaxDecimals {
		return ErrInvalidState.Wrapf("decimals %d exceeds maximum %d", p.Decimals, MaxDecimals)
	}
	return nil
}

// UnitFactor returns 10^Decimals, the value of one whole token unit in
// scaled (internal) units.
func (p Params) UnitFactor() math.Int {
	return math.NewIntWithDecimal(1, int(p.Decimals))
}
