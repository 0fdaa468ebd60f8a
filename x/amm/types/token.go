package types

import (
	"context"

	"cosmossdk.io/math"
)

// TokenHandle is the capability set the pool consumes from an external
// fungible-token ledger. The pool never stores balances itself; it only
// queries and moves value through this interface.
//
// Transfer moves value out of the holder account the handle is bound to
// (the pool's own account when the handle is held by the engine).
// TransferFrom moves value out of owner's account and requires owner to have
// authorized the handle's holder beforehand.
type TokenHandle interface {
	// TotalSupply reports the total issued supply. The engine uses it as the
	// asset-validity probe during configuration.
	TotalSupply(ctx context.Context) (math.Int, error)

	// BalanceOf reports the balance of an account.
	BalanceOf(ctx context.Context, account string) (math.Int, error)

	// Transfer moves amount from the handle's own account to the recipient.
	Transfer(ctx context.Context, to string, amount math.Int) error

	// TransferFrom moves amount from owner to the recipient on behalf of the
	// handle's holder. Requires prior authorization by owner.
	TransferFrom(ctx context.Context, owner, to string, amount math.Int) error
}
