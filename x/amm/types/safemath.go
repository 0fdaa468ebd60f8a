package types

import (
	"math/big"

	"cosmossdk.io/math"
)

// maxInt mirrors the 256-bit bound enforced by cosmossdk.io/math.Int.
var maxInt = new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)

// SafeAdd adds two math.Int values with overflow checking.
func SafeAdd(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Add(a.BigInt(), b.BigInt())
	if result.CmpAbs(maxInt) >= 0 {
		return math.Int{}, ErrOverflow.Wrapf("addition %s + %s exceeds 256 bits", a, b)
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeMul multiplies two math.Int values with overflow checking.
func SafeMul(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if result.CmpAbs(maxInt) >= 0 {
		return math.Int{}, ErrOverflow.Wrapf("multiplication %s * %s exceeds 256 bits", a, b)
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeSub subtracts b from a, rejecting results that would go negative.
func SafeSub(a, b math.Int) (math.Int, error) {
	if a.LT(b) {
		return math.Int{}, ErrInsufficientReserve.Wrapf("cannot subtract %s from %s", b, a)
	}
	return a.Sub(b), nil
}

// SafeMulDiv computes floor(a * b / c) with overflow protection on the
// intermediate product. Division by zero is reported as ErrZeroReserve since
// the only divisors in this module are reserve quantities.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, ErrZeroReserve.Wrap("division by zero reserve")
	}
	intermediate := new(big.Int).Mul(a.BigInt(), b.BigInt())
	result := new(big.Int).Quo(intermediate, c.BigInt())
	if result.CmpAbs(maxInt) >= 0 {
		return math.Int{}, ErrOverflow.Wrapf("mul-div (%s * %s) / %s exceeds 256 bits", a, b, c)
	}
	return math.NewIntFromBigInt(result), nil
}
