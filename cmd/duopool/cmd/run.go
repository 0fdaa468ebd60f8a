package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/duopool/duopool/pkg/token"
	"github.com/duopool/duopool/x/amm/keeper"
	"github.com/duopool/duopool/x/amm/types"
)

// maxAllowance is granted from every scenario account to the pool account so
// replayed deposits and swaps never fail on authorization.
var maxAllowance = math.NewIntWithDecimal(1, 30)

// NewRunCmd returns the command that replays a scenario file against a fresh
// pool engine backed by in-memory token ledgers.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [scenario.yaml]",
		Short: "Replay a pool scenario and print the resulting state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := LoadScenario(args[0])
			if err != nil {
				return err
			}
			if cfg := viper.GetString("config"); cfg != "" {
				if err := applyConfigOverrides(cfg, sc); err != nil {
					return err
				}
			}

			logger, err := newLogger()
			if err != nil {
				return err
			}
			return runScenario(cmd, sc, logger)
		},
	}
	return cmd
}

// applyConfigOverrides layers engine parameter overrides from a viper config
// file on top of the scenario's own params.
func applyConfigOverrides(path string, sc *Scenario) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if v.IsSet("fee_rate") {
		sc.Params.FeeRate = v.GetInt64("fee_rate")
	}
	if v.IsSet("decimals") {
		sc.Params.Decimals = v.GetUint32("decimals")
	}
	return sc.Params.Validate()
}

// buildLedger creates one token ledger from a spec, minting the scaled
// initial balances and pre-authorizing the pool account as spender.
func buildLedger(spec AssetSpec, unit math.Int, poolAccount string) (*token.Ledger, error) {
	ledger := token.NewLedger(spec.Symbol)
	for account, balance := range spec.Balances {
		if balance <= 0 {
			return nil, fmt.Errorf("asset %s: balance for %q must be positive", spec.Symbol, account)
		}
		if err := ledger.Mint(account, math.NewInt(balance).Mul(unit)); err != nil {
			return nil, fmt.Errorf("asset %s: mint to %q: %w", spec.Symbol, account, err)
		}
		if err := ledger.Approve(account, poolAccount, maxAllowance); err != nil {
			return nil, fmt.Errorf("asset %s: approve for %q: %w", spec.Symbol, account, err)
		}
	}
	return ledger, nil
}

func runScenario(cmd *cobra.Command, sc *Scenario, logger log.Logger) error {
	ctx := cmd.Context()
	unit := sc.Params.UnitFactor()

	ledgerA, err := buildLedger(sc.AssetA, unit, sc.PoolAccount)
	if err != nil {
		return err
	}
	ledgerB, err := buildLedger(sc.AssetB, unit, sc.PoolAccount)
	if err != nil {
		return err
	}

	k, err := keeper.NewKeeper(sc.Operator, sc.PoolAccount, sc.Params, logger)
	if err != nil {
		return err
	}
	recorder := types.NewRecordingHooks()
	k.SetHooks(recorder)
	k.EnableMetrics()

	if err := k.ConfigureAssets(ctx, sc.Operator,
		ledgerA.HandleFor(sc.PoolAccount), ledgerB.HandleFor(sc.PoolAccount)); err != nil {
		return err
	}

	for i, step := range sc.Steps {
		if err := runStep(cmd, k, sc, i+1, step); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
	}

	if err := k.CheckInvariants(ctx); err != nil {
		return fmt.Errorf("post-replay invariant check: %w", err)
	}

	printEvents(cmd, recorder.Events())
	return printGenesis(cmd, k)
}

func runStep(cmd *cobra.Command, k *keeper.Keeper, sc *Scenario, n int, step Step) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	switch step.Op {
	case OpAddLiquidity:
		amountA, err := step.amount("amount_a")
		if err != nil {
			return err
		}
		amountB, err := step.amount("amount_b")
		if err != nil {
			return err
		}
		return k.AddLiquidity(ctx, step.caller(sc.Operator), math.NewInt(amountA), math.NewInt(amountB))

	case OpRemoveLiquidity:
		axis, err := step.axis()
		if err != nil {
			return err
		}
		amount, err := step.amount("amount")
		if err != nil {
			return err
		}
		withdrawn, paired, err := k.RemoveLiquidity(ctx, step.caller(sc.Operator), axis, math.NewInt(amount))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "step %d: withdrew %s on axis %s, %s paired\n", n, withdrawn, axis, paired)
		return nil

	case OpSwap:
		axis, err := step.axis()
		if err != nil {
			return err
		}
		amount, err := step.amount("amount")
		if err != nil {
			return err
		}
		minOut := math.ZeroInt()
		if _, ok := step.Args["min_out"]; ok {
			m, err := step.amount("min_out")
			if err != nil {
				return err
			}
			minOut = math.NewInt(m)
		}
		received, err := k.Swap(ctx, step.caller(sc.Operator), axis, math.NewInt(amount), minOut)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "step %d: swapped %d on axis %s for %s\n", n, amount, axis, received)
		return nil

	case OpSetFee:
		rate, err := step.amount("rate")
		if err != nil {
			return err
		}
		return k.SetFeeRate(ctx, step.caller(sc.Operator), rate)

	case OpTogglePause:
		paused, err := k.TogglePause(ctx, step.caller(sc.Operator))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "step %d: paused=%t\n", n, paused)
		return nil

	case OpSweep:
		leftoverA, leftoverB, err := k.SweepLeftover(ctx, step.caller(sc.Operator))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "step %d: swept %s / %s\n", n, leftoverA, leftoverB)
		return nil
	}
	return fmt.Errorf("unknown op %q", step.Op)
}

func printEvents(cmd *cobra.Command, events []types.Event) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%d events:\n", len(events))
	for _, ev := range events {
		keys := make([]string, 0, len(ev.Attributes))
		for key := range ev.Attributes {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		fmt.Fprintf(out, "  %s", ev.Type)
		for _, key := range keys {
			fmt.Fprintf(out, " %s=%s", key, ev.Attributes[key])
		}
		fmt.Fprintln(out)
	}
}

func printGenesis(cmd *cobra.Command, k *keeper.Keeper) error {
	data, err := json.MarshalIndent(k.ExportGenesis(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nfinal state:\n%s\n", data)
	return nil
}
