package types

import (
	"cosmossdk.io/math"
)

const (
	// MaxFeeRate is the exclusive upper bound on the per-mille fee rate:
	// valid rates are [0, 30), i.e. the fee always stays below 3%.
	MaxFeeRate int64 = 30

	// feeDenominator converts a per-mille rate into a fraction.
	feeDenominator int64 = 1000
)

// FeePolicy holds the swap fee rate in parts per thousand. The fee is
// applied only at swap time, to the output leg.
type FeePolicy struct {
	Rate int64
}

func NewFeePolicy(rate int64) FeePolicy {
	return FeePolicy{Rate: rate}
}

// Validate checks that the rate is inside the configured valid range.
func (f FeePolicy) Validate() error {
	if f.Rate < 0 || f.Rate >= MaxFeeRate {
		return ErrInvalidFee.Wrapf("rate %d outside [0, %d)", f.Rate, MaxFeeRate)
	}
	return nil
}

// ApplyFee splits amount into the net payout and the retained fee using
// integer floor division: fee = amount * rate / 1000. Very small amounts may
// incur a zero fee; that is the intended granularity of the rate.
func (f FeePolicy) ApplyFee(amount math.Int) (net, fee math.Int) {
	fee = amount.MulRaw(f.Rate).QuoRaw(feeDenominator)
	return amount.Sub(fee), fee
}
