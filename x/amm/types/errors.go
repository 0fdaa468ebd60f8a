package types

import (
	"cosmossdk.io/errors"
)

// AMM module sentinel errors
var (
	ErrUnauthorized        = errors.Register(ModuleName, 1, "caller does not hold operator privilege")
	ErrPaused              = errors.Register(ModuleName, 2, "pool operations are paused")
	ErrInvalidAmount       = errors.Register(ModuleName, 3, "amount must be strictly positive")
	ErrInvalidFee          = errors.Register(ModuleName, 4, "fee rate out of valid range")
	ErrNotAToken           = errors.Register(ModuleName, 5, "asset handle failed token capability probe")
	ErrZeroReserve         = errors.Register(ModuleName, 6, "reserve is zero")
	ErrInsufficientReserve = errors.Register(ModuleName, 7, "insufficient reserve")
	ErrTradeTooLarge       = errors.Register(ModuleName, 8, "trade exceeds half of input reserve")
	ErrSlippageExceeded    = errors.Register(ModuleName, 9, "output amount less than minimum required")
	ErrNothingToSweep      = errors.Register(ModuleName, 10, "no leftover balance to sweep")
	ErrTransferFailed      = errors.Register(ModuleName, 11, "token transfer failed")
	ErrNotConfigured       = errors.Register(ModuleName, 12, "pool assets not configured")
	ErrInvalidAxis         = errors.Register(ModuleName, 13, "invalid pool axis")
	ErrOverflow            = errors.Register(ModuleName, 14, "arithmetic overflow")
	ErrInvalidState        = errors.Register(ModuleName, 15, "invalid pool state")
	ErrInvariantViolation  = errors.Register(ModuleName, 16, "pool invariant violated")
)
