package types

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// Event types emitted through PoolHooks and reused as log / CLI labels
	EventTypeAssetsConfigured = "assets_configured"
	EventTypeFeeUpdated       = "fee_updated"
	EventTypePoolIncreased    = "pool_increased"
	EventTypePoolDecreased    = "pool_decreased"
	EventTypeSwap             = "swap"
	EventTypePauseToggled     = "pause_toggled"
	EventTypeLeftoverSwept    = "leftover_swept"

	// Event attribute keys
	AttributeKeyCaller    = "caller"
	AttributeKeyAxisIn    = "axis_in"
	AttributeKeyAxisOut   = "axis_out"
	AttributeKeyAmountIn  = "amount_in"
	AttributeKeyAmountOut = "amount_out"
	AttributeKeyAmountA   = "amount_a"
	AttributeKeyAmountB   = "amount_b"
	AttributeKeyReserveA  = "reserve_a"
	AttributeKeyReserveB  = "reserve_b"
	AttributeKeyFeeRate   = "fee_rate"
	AttributeKeyPaused    = "paused"
)
