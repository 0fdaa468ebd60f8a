package keeper

import (
	"math/big"
	"sync"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the amm module
type Metrics struct {
	// Swap metrics
	SwapsTotal  *prometheus.CounterVec
	SwapVolume  *prometheus.CounterVec
	SwapLatency prometheus.Histogram
	FeesAccrued *prometheus.CounterVec

	// Liquidity metrics
	LiquidityAdded   *prometheus.CounterVec
	LiquidityRemoved *prometheus.CounterVec
	LeftoverSwept    *prometheus.CounterVec

	// Pool state
	Paused prometheus.Gauge
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// NewMetrics creates and registers amm metrics (singleton pattern)
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			// Swap metrics
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "duopool",
					Subsystem: "amm",
					Name:      "swaps_total",
					Help:      "Total number of swaps executed",
				},
				[]string{"status"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "duopool",
					Subsystem: "amm",
					Name:      "swap_volume_total",
					Help:      "Total swap input volume in scaled units",
				},
				[]string{"axis"},
			),
			SwapLatency: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "duopool",
					Subsystem: "amm",
					Name:      "swap_latency_seconds",
					Help:      "Swap execution latency in seconds",
					Buckets:   prometheus.DefBuckets,
				},
			),
			FeesAccrued: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "duopool",
					Subsystem: "amm",
					Name:      "fees_accrued_total",
					Help:      "Total swap fees accrued as leftover, by output axis",
				},
				[]string{"axis"},
			),

			// Liquidity metrics
			LiquidityAdded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "duopool",
					Subsystem: "amm",
					Name:      "liquidity_added_total",
					Help:      "Total liquidity added to the pool in scaled units",
				},
				[]string{"axis"},
			),
			LiquidityRemoved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "duopool",
					Subsystem: "amm",
					Name:      "liquidity_removed_total",
					Help:      "Total liquidity removed from the pool in scaled units",
				},
				[]string{"axis"},
			),
			LeftoverSwept: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "duopool",
					Subsystem: "amm",
					Name:      "leftover_swept_total",
					Help:      "Total leftover swept out of the pool account",
				},
				[]string{"axis"},
			),

			// Pool state
			Paused: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "duopool",
					Subsystem: "amm",
					Name:      "paused",
					Help:      "Pause switch state (0=active, 1=paused)",
				},
			),
		}
	})
	return metrics
}

// GetMetrics returns the singleton amm metrics instance
func GetMetrics() *Metrics {
	if metrics == nil {
		return NewMetrics()
	}
	return metrics
}

// approxFloat converts an integer amount to float64 for metric counters.
// Precision loss past 2^53 is acceptable for observability.
func approxFloat(x math.Int) float64 {
	f, _ := new(big.Float).SetInt(x.BigInt()).Float64()
	return f
}
