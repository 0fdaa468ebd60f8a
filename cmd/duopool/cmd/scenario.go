package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/duopool/duopool/x/amm/types"
)

// Scenario is a declarative script for the pool engine: identities, engine
// parameters, two token ledgers with initial distributions, and a sequence
// of operations to replay. All amounts are whole token units.
type Scenario struct {
	Operator    string       `yaml:"operator"`
	PoolAccount string       `yaml:"pool_account"`
	Params      types.Params `yaml:"params"`
	AssetA      AssetSpec    `yaml:"asset_a"`
	AssetB      AssetSpec    `yaml:"asset_b"`
	Steps       []Step       `yaml:"steps"`
}

// AssetSpec describes one token ledger and its initial balances per account.
type AssetSpec struct {
	Symbol   string           `yaml:"symbol"`
	Balances map[string]int64 `yaml:"balances"`
}

// Step is one operation in the replay sequence. Fields beyond "op" are
// operation-specific and parsed loosely, so scenarios can write amounts as
// numbers or strings.
type Step struct {
	Op   string         `yaml:"op"`
	Args map[string]any `yaml:",inline"`
}

// Supported step operations.
const (
	OpAddLiquidity    = "add_liquidity"
	OpRemoveLiquidity = "remove_liquidity"
	OpSwap            = "swap"
	OpSetFee          = "set_fee"
	OpTogglePause     = "toggle_pause"
	OpSweep           = "sweep"
)

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario decodes YAML scenario bytes and validates them.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks the scenario's static shape before any step runs.
func (s *Scenario) Validate() error {
	if s.Operator == "" {
		return fmt.Errorf("scenario: operator is required")
	}
	if s.PoolAccount == "" {
		return fmt.Errorf("scenario: pool_account is required")
	}
	if err := s.Params.Validate(); err != nil {
		return fmt.Errorf("scenario params: %w", err)
	}
	if s.AssetA.Symbol == "" || s.AssetB.Symbol == "" {
		return fmt.Errorf("scenario: both asset symbols are required")
	}
	if s.AssetA.Symbol == s.AssetB.Symbol {
		return fmt.Errorf("scenario: asset symbols must differ")
	}
	for i, step := range s.Steps {
		switch step.Op {
		case OpAddLiquidity, OpRemoveLiquidity, OpSwap, OpSetFee, OpTogglePause, OpSweep:
		case "":
			return fmt.Errorf("scenario step %d: missing op", i+1)
		default:
			return fmt.Errorf("scenario step %d: unknown op %q", i+1, step.Op)
		}
	}
	return nil
}

// caller returns the step's caller, defaulting to the operator.
func (st Step) caller(fallback string) string {
	if v, ok := st.Args["caller"]; ok {
		return cast.ToString(v)
	}
	return fallback
}

// amount returns a whole-unit amount argument as int64.
func (st Step) amount(key string) (int64, error) {
	v, ok := st.Args[key]
	if !ok {
		return 0, fmt.Errorf("missing %q", key)
	}
	n, err := cast.ToInt64E(v)
	if err != nil {
		return 0, fmt.Errorf("bad %q: %w", key, err)
	}
	return n, nil
}

// axis returns the "axis" argument parsed into a pool axis.
func (st Step) axis() (types.Axis, error) {
	v, ok := st.Args["axis"]
	if !ok {
		return types.AxisA, fmt.Errorf("missing \"axis\"")
	}
	return types.ParseAxis(cast.ToString(v))
}
