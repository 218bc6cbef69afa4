// Package metrics exposes the engine's prometheus counters and gauges,
// grounded in the teacher's internal/api/observability.go.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	tickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "zztcore",
		Name:      "tick_duration_seconds",
		Help:      "Time spent running one engine tick.",
		Buckets:   prometheus.DefBuckets,
	})

	statCount = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "zztcore",
		Name:      "stat_count",
		Help:      "Number of live stats on the current board.",
	})

	boardCount = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "zztcore",
		Name:      "board_count",
		Help:      "Number of boards in the loaded world.",
	})

	oopErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "zztcore",
		Name:      "oop_errors_total",
		Help:      "Number of OOP #directives that went unrecognized.",
	})
)

// ObserveTick records how long one engine.tick() call took.
func ObserveTick(d time.Duration) {
	tickDuration.Observe(d.Seconds())
}

// SetStatCount records the current board's live stat count.
func SetStatCount(n int) {
	statCount.Set(float64(n))
}

// SetBoardCount records the loaded world's board count.
func SetBoardCount(n int) {
	boardCount.Set(float64(n))
}

// IncOopError records one OOP script hitting an unrecognized #directive.
func IncOopError() {
	oopErrors.Inc()
}
