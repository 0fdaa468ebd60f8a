// Package token provides an in-memory fungible-token ledger with an
// allowance model. It backs the pool engine in tests and in the scenario
// runner; production deployments bind the engine to real ledgers instead.
package token

import (
	"context"
	"sync"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
)

var (
	ErrInvalidAmount         = errors.Register("token", 2, "invalid amount")
	ErrInsufficientBalance   = errors.Register("token", 3, "insufficient balance")
	ErrInsufficientAllowance = errors.Register("token", 4, "insufficient allowance")
)

// Ledger is a thread-safe balance and allowance table for one token.
type Ledger struct {
	mu         sync.RWMutex
	symbol     string
	supply     math.Int
	balances   map[string]math.Int
	allowances map[string]map[string]math.Int // owner -> spender -> amount
}

// NewLedger creates an empty ledger for the given token symbol.
func NewLedger(symbol string) *Ledger {
	return &Ledger{
		symbol:     symbol,
		supply:     math.ZeroInt(),
		balances:   make(map[string]math.Int),
		allowances: make(map[string]map[string]math.Int),
	}
}

// Symbol returns the token symbol.
func (l *Ledger) Symbol() string {
	return l.symbol
}

// Mint credits newly issued tokens to an account and grows the supply.
func (l *Ledger) Mint(account string, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return ErrInvalidAmount.Wrapf("mint amount %v", amount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[account] = l.balanceLocked(account).Add(amount)
	l.supply = l.supply.Add(amount)
	return nil
}

// Approve sets the amount a spender may move out of owner's account.
func (l *Ledger) Approve(owner, spender string, amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return ErrInvalidAmount.Wrapf("approve amount %v", amount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.allowances[owner] == nil {
		l.allowances[owner] = make(map[string]math.Int)
	}
	l.allowances[owner][spender] = amount
	return nil
}

// Allowance returns the remaining amount spender may move out of owner's
// account.
func (l *Ledger) Allowance(owner, spender string) math.Int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.allowanceLocked(owner, spender)
}

// TotalSupply returns the total issued supply.
func (l *Ledger) TotalSupply() math.Int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.supply
}

// BalanceOf returns the balance of an account.
func (l *Ledger) BalanceOf(account string) math.Int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balanceLocked(account)
}

// Transfer moves amount from one account to another.
func (l *Ledger) Transfer(from, to string, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return ErrInvalidAmount.Wrapf("transfer amount %v", amount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.moveLocked(from, to, amount)
}

// TransferFrom moves amount from owner to the recipient on behalf of
// spender, consuming spender's allowance.
func (l *Ledger) TransferFrom(spender, owner, to string, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return ErrInvalidAmount.Wrapf("transfer amount %v", amount)
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	allowed := l.allowanceLocked(owner, spender)
	if allowed.LT(amount) {
		return ErrInsufficientAllowance.Wrapf("%s: spender %s allowed %s, need %s",
			l.symbol, spender, allowed, amount)
	}
	if err := l.moveLocked(owner, to, amount); err != nil {
		return err
	}
	l.allowances[owner][spender] = allowed.Sub(amount)
	return nil
}

func (l *Ledger) balanceLocked(account string) math.Int {
	if b, ok := l.balances[account]; ok {
		return b
	}
	return math.ZeroInt()
}

func (l *Ledger) allowanceLocked(owner, spender string) math.Int {
	if byOwner, ok := l.allowances[owner]; ok {
		if a, ok := byOwner[spender]; ok {
			return a
		}
	}
	return math.ZeroInt()
}

func (l *Ledger) moveLocked(from, to string, amount math.Int) error {
	fromBal := l.balanceLocked(from)
	if fromBal.LT(amount) {
		return ErrInsufficientBalance.Wrapf("%s: account %s has %s, need %s",
			l.symbol, from, fromBal, amount)
	}
	l.balances[from] = fromBal.Sub(amount)
	l.balances[to] = l.balanceLocked(to).Add(amount)
	return nil
}

// HandleFor returns a handle bound to the given holder account. Transfer
// spends the holder's balance; TransferFrom consumes the allowance the
// owner granted to the holder.
func (l *Ledger) HandleFor(holder string) *Handle {
	return &Handle{ledger: l, holder: holder}
}

// Handle is a Ledger bound to one holder account. It satisfies the token
// capability set the pool engine consumes.
type Handle struct {
	ledger *Ledger
	holder string
}

func (h *Handle) TotalSupply(_ context.Context) (math.Int, error) {
	return h.ledger.TotalSupply(), nil
}

func (h *Handle) BalanceOf(_ context.Context, account string) (math.Int, error) {
	return h.ledger.BalanceOf(account), nil
}

func (h *Handle) Transfer(_ context.Context, to string, amount math.Int) error {
	return h.ledger.Transfer(h.holder, to, amount)
}

func (h *Handle) TransferFrom(_ context.Context, owner, to string, amount math.Int) error {
	return h.ledger.TransferFrom(h.holder, owner, to, amount)
}
