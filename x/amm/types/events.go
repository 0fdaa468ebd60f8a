package types

import (
	"context"
	"sync"

	"cosmossdk.io/math"
)

// PoolHooks is the notification interface for observable pool events.
// Hooks fire after the operation has fully committed; a failing hook cannot
// roll the operation back and is surfaced through the keeper's logger.
type PoolHooks interface {
	// AfterAssetsConfigured is called after both asset handles are bound.
	AfterAssetsConfigured(ctx context.Context) error

	// AfterFeeUpdated is called after the swap fee rate changes.
	AfterFeeUpdated(ctx context.Context, oldRate, newRate int64) error

	// AfterPoolIncreased is called after a liquidity deposit, with the
	// scaled deposit amounts and the new reserves.
	AfterPoolIncreased(ctx context.Context, provider string, amountA, amountB, reserveA, reserveB math.Int) error

	// AfterPoolDecreased is called after a proportional withdrawal, with the
	// scaled withdrawn amounts and the new reserves.
	AfterPoolDecreased(ctx context.Context, recipient string, amountA, amountB, reserveA, reserveB math.Int) error

	// AfterSwap is called after a successful swap with both legs.
	AfterSwap(ctx context.Context, trader string, axisIn Axis, amountIn math.Int, axisOut Axis, amountOut math.Int) error

	// AfterPauseToggled is called when the pause flag flips.
	AfterPauseToggled(ctx context.Context, paused bool) error

	// AfterLeftoverSwept is called after un-pooled balance is swept.
	AfterLeftoverSwept(ctx context.Context, recipient string, leftoverA, leftoverB math.Int) error
}

// MultiPoolHooks combines multiple hooks into one that calls all of them.
type MultiPoolHooks []PoolHooks

func NewMultiPoolHooks(hooks ...PoolHooks) MultiPoolHooks {
	return hooks
}

func (h MultiPoolHooks) AfterAssetsConfigured(ctx context.Context) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterAssetsConfigured(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (h MultiPoolHooks) AfterFeeUpdated(ctx context.Context, oldRate, newRate int64) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterFeeUpdated(ctx, oldRate, newRate); err != nil {
			return err
		}
	}
	return nil
}

func (h MultiPoolHooks) AfterPoolIncreased(ctx context.Context, provider string, amountA, amountB, reserveA, reserveB math.Int) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterPoolIncreased(ctx, provider, amountA, amountB, reserveA, reserveB); err != nil {
			return err
		}
	}
	return nil
}

func (h MultiPoolHooks) AfterPoolDecreased(ctx context.Context, recipient string, amountA, amountB, reserveA, reserveB math.Int) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterPoolDecreased(ctx, recipient, amountA, amountB, reserveA, reserveB); err != nil {
			return err
		}
	}
	return nil
}

func (h MultiPoolHooks) AfterSwap(ctx context.Context, trader string, axisIn Axis, amountIn math.Int, axisOut Axis, amountOut math.Int) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterSwap(ctx, trader, axisIn, amountIn, axisOut, amountOut); err != nil {
			return err
		}
	}
	return nil
}

func (h MultiPoolHooks) AfterPauseToggled(ctx context.Context, paused bool) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterPauseToggled(ctx, paused); err != nil {
			return err
		}
	}
	return nil
}

func (h MultiPoolHooks) AfterLeftoverSwept(ctx context.Context, recipient string, leftoverA, leftoverB math.Int) error {
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.AfterLeftoverSwept(ctx, recipient, leftoverA, leftoverB); err != nil {
			return err
		}
	}
	return nil
}

// Event is a flattened notification record captured by RecordingHooks.
type Event struct {
	Type       string
	Attributes map[string]string
}

// RecordingHooks captures events for inspection, used by tests and the CLI.
type RecordingHooks struct {
	mu     sync.Mutex
	events []Event
}

func NewRecordingHooks() *RecordingHooks {
	return &RecordingHooks{}
}

// Events returns a copy of the captured events in emission order.
func (r *RecordingHooks) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *RecordingHooks) record(eventType string, attrs map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Type: eventType, Attributes: attrs})
}

func (r *RecordingHooks) AfterAssetsConfigured(context.Context) error {
	r.record(EventTypeAssetsConfigured, map[string]string{})
	return nil
}

func (r *RecordingHooks) AfterFeeUpdated(_ context.Context, oldRate, newRate int64) error {
	r.record(EventTypeFeeUpdated, map[string]string{
		AttributeKeyFeeRate:          itoa(newRate),
		"old_" + AttributeKeyFeeRate: itoa(oldRate),
	})
	return nil
}

func (r *RecordingHooks) AfterPoolIncreased(_ context.Context, provider string, amountA, amountB, reserveA, reserveB math.Int) error {
	r.record(EventTypePoolIncreased, map[string]string{
		AttributeKeyCaller:   provider,
		AttributeKeyAmountA:  amountA.String(),
		AttributeKeyAmountB:  amountB.String(),
		AttributeKeyReserveA: reserveA.String(),
		AttributeKeyReserveB: reserveB.String(),
	})
	return nil
}

func (r *RecordingHooks) AfterPoolDecreased(_ context.Context, recipient string, amountA, amountB, reserveA, reserveB math.Int) error {
	r.record(EventTypePoolDecreased, map[string]string{
		AttributeKeyCaller:   recipient,
		AttributeKeyAmountA:  amountA.String(),
		AttributeKeyAmountB:  amountB.String(),
		AttributeKeyReserveA: reserveA.String(),
		AttributeKeyReserveB: reserveB.String(),
	})
	return nil
}

func (r *RecordingHooks) AfterSwap(_ context.Context, trader string, axisIn Axis, amountIn math.Int, axisOut Axis, amountOut math.Int) error {
	r.record(EventTypeSwap, map[string]string{
		AttributeKeyCaller:    trader,
		AttributeKeyAxisIn:    axisIn.String(),
		AttributeKeyAmountIn:  amountIn.String(),
		AttributeKeyAxisOut:   axisOut.String(),
		AttributeKeyAmountOut: amountOut.String(),
	})
	return nil
}

func (r *RecordingHooks) AfterPauseToggled(_ context.Context, paused bool) error {
	attrs := map[string]string{AttributeKeyPaused: "false"}
	if paused {
		attrs[AttributeKeyPaused] = "true"
	}
	r.record(EventTypePauseToggled, attrs)
	return nil
}

func (r *RecordingHooks) AfterLeftoverSwept(_ context.Context, recipient string, leftoverA, leftoverB math.Int) error {
	r.record(EventTypeLeftoverSwept, map[string]string{
		AttributeKeyCaller:  recipient,
		AttributeKeyAmountA: leftoverA.String(),
		AttributeKeyAmountB: leftoverB.String(),
	})
	return nil
}

func itoa(v int64) string {
	return math.NewInt(v).String()
}
