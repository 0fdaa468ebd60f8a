package keeper_test

import (
	"context"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"pgregory.net/rapid"

	"github.com/duopool/duopool/pkg/token"
	"github.com/duopool/duopool/x/amm/keeper"
	"github.com/duopool/duopool/x/amm/types"
)

// TestPoolProperties drives random operation sequences against the engine
// and checks the safety properties after every step: reserves stay
// non-negative, the pool account always covers the reserves, and failed
// operations leave state untouched.
func TestPoolProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		rate := rapid.Int64Range(0, types.MaxFeeRate-1).Draw(t, "feeRate")

		ledgerA := token.NewLedger("TOKA")
		ledgerB := token.NewLedger("TOKB")
		funded := math.NewInt(1_000_000_000)
		for _, ledger := range []*token.Ledger{ledgerA, ledgerB} {
			for _, account := range []string{testOperator, testTrader} {
				if err := ledger.Mint(account, funded); err != nil {
					t.Fatalf("mint: %v", err)
				}
				if err := ledger.Approve(account, testPool, funded); err != nil {
					t.Fatalf("approve: %v", err)
				}
			}
		}

		k, err := keeper.NewKeeper(testOperator, testPool,
			types.Params{FeeRate: rate, Decimals: 0}, log.NewNopLogger())
		if err != nil {
			t.Fatalf("new keeper: %v", err)
		}
		if err := k.ConfigureAssets(ctx, testOperator,
			ledgerA.HandleFor(testPool), ledgerB.HandleFor(testPool)); err != nil {
			t.Fatalf("configure: %v", err)
		}

		steps := rapid.IntRange(1, 40).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			amount := math.NewInt(rapid.Int64Range(1, 10_000).Draw(t, "amount"))
			axis := types.AxisA
			if rapid.Bool().Draw(t, "axisB") {
				axis = types.AxisB
			}

			switch rapid.IntRange(0, 3).Draw(t, "op") {
			case 0:
				paired := math.NewInt(rapid.Int64Range(1, 10_000).Draw(t, "paired"))
				if err := k.AddLiquidity(ctx, testOperator, amount, paired); err != nil {
					t.Fatalf("add liquidity: %v", err)
				}
			case 1:
				// May legitimately fail on an empty or too-small reserve.
				_, _, err := k.RemoveLiquidity(ctx, testOperator, axis, amount)
				if err != nil &&
					!types.ErrZeroReserve.Is(err) &&
					!types.ErrInsufficientReserve.Is(err) {
					t.Fatalf("remove liquidity: %v", err)
				}
			case 2:
				_, err := k.Swap(ctx, testTrader, axis, amount, math.ZeroInt())
				if err != nil &&
					!types.ErrZeroReserve.Is(err) &&
					!types.ErrTradeTooLarge.Is(err) &&
					!types.ErrInsufficientReserve.Is(err) {
					t.Fatalf("swap: %v", err)
				}
			case 3:
				if _, _, err := k.SweepLeftover(ctx, testOperator); err != nil &&
					!types.ErrNothingToSweep.Is(err) {
					t.Fatalf("sweep: %v", err)
				}
			}

			if err := k.CheckInvariants(ctx); err != nil {
				t.Fatalf("invariants after step %d: %v", i, err)
			}
			reserveA, reserveB := k.GetReserves()
			if reserveA.IsNegative() || reserveB.IsNegative() {
				t.Fatalf("negative reserves %s / %s", reserveA, reserveB)
			}
		}
	})
}

// TestFeeMonotonicityProperty quotes the same trade against the same
// reserves at two fee rates and checks that raising the rate never raises
// the net payout.
func TestFeeMonotonicityProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		lowRate := rapid.Int64Range(0, types.MaxFeeRate-2).Draw(t, "lowRate")
		highRate := rapid.Int64Range(lowRate+1, types.MaxFeeRate-1).Draw(t, "highRate")
		reserveA := rapid.Int64Range(10, 1_000_000).Draw(t, "reserveA")
		reserveB := rapid.Int64Range(10, 1_000_000).Draw(t, "reserveB")
		amountIn := rapid.Int64Range(1, (reserveA-1)/2).Draw(t, "amountIn")

		ledgerA := token.NewLedger("TOKA")
		ledgerB := token.NewLedger("TOKB")
		funded := math.NewInt(10_000_000)
		for _, ledger := range []*token.Ledger{ledgerA, ledgerB} {
			if err := ledger.Mint(testOperator, funded); err != nil {
				t.Fatalf("mint: %v", err)
			}
			if err := ledger.Approve(testOperator, testPool, funded); err != nil {
				t.Fatalf("approve: %v", err)
			}
		}

		k, err := keeper.NewKeeper(testOperator, testPool,
			types.Params{FeeRate: lowRate, Decimals: 0}, log.NewNopLogger())
		if err != nil {
			t.Fatalf("new keeper: %v", err)
		}
		if err := k.ConfigureAssets(ctx, testOperator,
			ledgerA.HandleFor(testPool), ledgerB.HandleFor(testPool)); err != nil {
			t.Fatalf("configure: %v", err)
		}
		if err := k.AddLiquidity(ctx, testOperator, math.NewInt(reserveA), math.NewInt(reserveB)); err != nil {
			t.Fatalf("add liquidity: %v", err)
		}

		lowNet, lowFee, err := k.SimulateSwap(types.AxisA, math.NewInt(amountIn))
		if err != nil {
			t.Fatalf("simulate at rate %d: %v", lowRate, err)
		}

		if err := k.SetFeeRate(ctx, testOperator, highRate); err != nil {
			t.Fatalf("set fee rate: %v", err)
		}
		highNet, highFee, err := k.SimulateSwap(types.AxisA, math.NewInt(amountIn))
		if err != nil {
			t.Fatalf("simulate at rate %d: %v", highRate, err)
		}

		if highNet.GT(lowNet) {
			t.Fatalf("net payout grew with the fee: rate %d -> %s, rate %d -> %s",
				lowRate, lowNet, highRate, highNet)
		}
		if highFee.LT(lowFee) {
			t.Fatalf("fee shrank with the rate: rate %d -> %s, rate %d -> %s",
				lowRate, lowFee, highRate, highFee)
		}
	})
}

// TestSwapOutputProperties checks pricing facts over random pool shapes:
// the quote is the linear pre-trade ratio, fees only lower the payout, and
// simulation agrees with execution.
func TestSwapOutputProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		rate := rapid.Int64Range(0, types.MaxFeeRate-1).Draw(t, "feeRate")
		reserveA := rapid.Int64Range(10, 1_000_000).Draw(t, "reserveA")
		reserveB := rapid.Int64Range(10, 1_000_000).Draw(t, "reserveB")
		amountIn := rapid.Int64Range(1, reserveA/2).Draw(t, "amountIn")

		ledgerA := token.NewLedger("TOKA")
		ledgerB := token.NewLedger("TOKB")
		funded := math.NewInt(10_000_000)
		for _, ledger := range []*token.Ledger{ledgerA, ledgerB} {
			for _, account := range []string{testOperator, testTrader} {
				if err := ledger.Mint(account, funded); err != nil {
					t.Fatalf("mint: %v", err)
				}
				if err := ledger.Approve(account, testPool, funded); err != nil {
					t.Fatalf("approve: %v", err)
				}
			}
		}

		k, err := keeper.NewKeeper(testOperator, testPool,
			types.Params{FeeRate: rate, Decimals: 0}, log.NewNopLogger())
		if err != nil {
			t.Fatalf("new keeper: %v", err)
		}
		if err := k.ConfigureAssets(ctx, testOperator,
			ledgerA.HandleFor(testPool), ledgerB.HandleFor(testPool)); err != nil {
			t.Fatalf("configure: %v", err)
		}
		if err := k.AddLiquidity(ctx, testOperator, math.NewInt(reserveA), math.NewInt(reserveB)); err != nil {
			t.Fatalf("add liquidity: %v", err)
		}

		simNet, simFee, err := k.SimulateSwap(types.AxisA, math.NewInt(amountIn))
		if err != nil {
			if types.ErrTradeTooLarge.Is(err) {
				return // amountIn hit the half-reserve cap exactly
			}
			t.Fatalf("simulate: %v", err)
		}

		grossOut := math.NewInt(amountIn).Mul(math.NewInt(reserveB)).Quo(math.NewInt(reserveA))
		if !simNet.Add(simFee).Equal(grossOut) {
			t.Fatalf("net %s + fee %s != gross %s", simNet, simFee, grossOut)
		}
		if simNet.GT(grossOut) {
			t.Fatalf("fee increased payout: %s > %s", simNet, grossOut)
		}

		received, err := k.Swap(ctx, testTrader, types.AxisA, math.NewInt(amountIn), math.ZeroInt())
		if err != nil {
			t.Fatalf("swap: %v", err)
		}
		if !received.Equal(simNet) {
			t.Fatalf("execution %s disagrees with simulation %s", received, simNet)
		}
	})
}
