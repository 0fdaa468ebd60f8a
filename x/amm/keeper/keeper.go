package keeper

import (
	"sync"

	"cosmossdk.io/log"
	"cosmossdk.io/math"

	"github.com/duopool/duopool/x/amm/types"
)

// Keeper owns the pool aggregate and exposes its operations. All mutating
// operations serialize on an internal mutex: the external transfer step is
// the only place control leaves this component's trust boundary, and the
// lock keeps reentrant invocations from observing a partially-applied
// mutation.
type Keeper struct {
	mu sync.Mutex

	operator string
	account  string

	params    types.Params
	pool      types.Pool
	positions map[string]types.Position

	hooks   types.MultiPoolHooks
	logger  log.Logger
	metrics *Metrics
}

// NewKeeper creates a new amm Keeper instance. operator is the privileged
// identity; poolAccount is the pool's own account on the external ledgers.
func NewKeeper(operator, poolAccount string, params types.Params, logger log.Logger) (*Keeper, error) {
	if operator == "" {
		return nil, types.ErrInvalidState.Wrap("operator identity cannot be empty")
	}
	if poolAccount == "" {
		return nil, types.ErrInvalidState.Wrap("pool account cannot be empty")
	}
	if operator == poolAccount {
		return nil, types.ErrInvalidState.Wrap("operator and pool account must differ")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Keeper{
		operator:  operator,
		account:   poolAccount,
		params:    params,
		pool:      types.NewPool(types.NewFeePolicy(params.FeeRate)),
		positions: make(map[string]types.Position),
		logger:    logger,
	}, nil
}

// SetHooks registers notification hooks. Replaces any previously set hooks.
func (k *Keeper) SetHooks(hooks ...types.PoolHooks) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.hooks = types.NewMultiPoolHooks(hooks...)
}

// EnableMetrics attaches the process-wide prometheus metrics to this keeper.
func (k *Keeper) EnableMetrics() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.metrics = GetMetrics()
}

// Logger returns the module logger.
func (k *Keeper) Logger() log.Logger {
	return k.logger.With("module", "x/"+types.ModuleName)
}

// Operator returns the privileged operator identity.
func (k *Keeper) Operator() string {
	return k.operator
}

// PoolAccount returns the pool's account on the external ledgers.
func (k *Keeper) PoolAccount() string {
	return k.account
}

// Params returns the engine parameters.
func (k *Keeper) Params() types.Params {
	return k.params
}

// scale converts a whole-unit external amount into scaled internal units.
// Amounts whose scaled form would exceed 256 bits are rejected instead of
// panicking inside the multiply.
func (k *Keeper) scale(amount math.Int) (math.Int, error) {
	scaled, err := types.SafeMul(amount, k.params.UnitFactor())
	if err != nil {
		return math.Int{}, types.ErrInvalidAmount.Wrapf("amount %s too large to scale", amount)
	}
	return scaled, nil
}

// notify runs the hook fan-out result through the logger. Hooks fire after
// the operation has committed, so a failing hook cannot abort it.
func (k *Keeper) notify(event string, err error) {
	if err != nil {
		k.Logger().Error("pool hook failed", "event", event, "error", err)
	}
}

// requirePositive validates a caller-supplied whole-unit amount.
func requirePositive(name string, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrapf("%s must be strictly positive", name)
	}
	return nil
}

// requireConfigured fails until both asset handles are bound.
func (k *Keeper) requireConfigured() error {
	if !k.pool.Configured() {
		return types.ErrNotConfigured.Wrap("call ConfigureAssets first")
	}
	return nil
}
