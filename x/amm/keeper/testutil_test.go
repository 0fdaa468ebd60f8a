package keeper_test

import (
	"context"
	"errors"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/duopool/duopool/pkg/token"
	"github.com/duopool/duopool/x/amm/keeper"
	"github.com/duopool/duopool/x/amm/types"
)

const (
	testOperator = "operator"
	testPool     = "poolacct"
	testTrader   = "trader"
)

type fixture struct {
	ctx     context.Context
	k       *keeper.Keeper
	ledgerA *token.Ledger
	ledgerB *token.Ledger
}

// newFixture builds a configured keeper backed by two in-memory ledgers.
// The operator and trader hold generous balances and have authorized the
// pool account on both assets.
func newFixture(t *testing.T, params types.Params) *fixture {
	t.Helper()
	ctx := context.Background()

	funded := math.NewInt(1_000_000_000).Mul(params.UnitFactor())
	ledgerA := token.NewLedger("TOKA")
	ledgerB := token.NewLedger("TOKB")
	for _, ledger := range []*token.Ledger{ledgerA, ledgerB} {
		for _, account := range []string{testOperator, testTrader} {
			require.NoError(t, ledger.Mint(account, funded))
			require.NoError(t, ledger.Approve(account, testPool, funded))
		}
	}

	k, err := keeper.NewKeeper(testOperator, testPool, params, log.NewTestLogger(t))
	require.NoError(t, err)
	require.NoError(t, k.ConfigureAssets(ctx, testOperator,
		ledgerA.HandleFor(testPool), ledgerB.HandleFor(testPool)))

	return &fixture{ctx: ctx, k: k, ledgerA: ledgerA, ledgerB: ledgerB}
}

func defaultParams() types.Params {
	return types.DefaultParams()
}

// wholeParams uses no decimal scaling, so test amounts map 1:1 to scaled
// units. rate is the per-mille fee.
func wholeParams(rate int64) types.Params {
	return types.Params{FeeRate: rate, Decimals: 0}
}

func (f *fixture) addLiquidity(t *testing.T, amountA, amountB int64) {
	t.Helper()
	require.NoError(t, f.k.AddLiquidity(f.ctx, testOperator, math.NewInt(amountA), math.NewInt(amountB)))
}

func (f *fixture) reserves(t *testing.T) (math.Int, math.Int) {
	t.Helper()
	reserveA, reserveB := f.k.GetReserves()
	return reserveA, reserveB
}

// brokenToken fails the total-supply probe.
type brokenToken struct{}

func (brokenToken) TotalSupply(context.Context) (math.Int, error) {
	return math.Int{}, errors.New("no such capability")
}

func (brokenToken) BalanceOf(context.Context, string) (math.Int, error) {
	return math.Int{}, errors.New("no such capability")
}

func (brokenToken) Transfer(context.Context, string, math.Int) error {
	return errors.New("no such capability")
}

func (brokenToken) TransferFrom(context.Context, string, string, math.Int) error {
	return errors.New("no such capability")
}

// flakyToken wraps a handle and fails selected operations on demand.
type flakyToken struct {
	types.TokenHandle
	failTransfer     bool
	failTransferFrom bool
}

func (f *flakyToken) Transfer(ctx context.Context, to string, amount math.Int) error {
	if f.failTransfer {
		return errors.New("transfer rejected")
	}
	return f.TokenHandle.Transfer(ctx, to, amount)
}

func (f *flakyToken) TransferFrom(ctx context.Context, owner, to string, amount math.Int) error {
	if f.failTransferFrom {
		return errors.New("transfer rejected")
	}
	return f.TokenHandle.TransferFrom(ctx, owner, to, amount)
}
