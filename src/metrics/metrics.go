package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"sortdemo/src/sort"
)

type Metrics struct {
	runs        *prometheus.CounterVec
	comparisons *prometheus.CounterVec
	swaps       *prometheus.CounterVec
	unsorted    *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// New creates the sort metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sortdemo_runs_total",
			Help: "Sort runs by strategy.",
		}, []string{"strategy"}),
		comparisons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sortdemo_comparisons_total",
			Help: "Element comparisons by strategy.",
		}, []string{"strategy"}),
		swaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sortdemo_swaps_total",
			Help: "Element swaps by strategy.",
		}, []string{"strategy"}),
		unsorted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sortdemo_unsorted_results_total",
			Help: "Runs that finished with the sequence still out of order.",
		}, []string{"strategy"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sortdemo_run_duration_seconds",
			Help:    "Time spent in a single sort call.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"strategy"}),
	}
	reg.MustRegister(m.runs, m.comparisons, m.swaps, m.unsorted, m.duration)
	return m
}

// Observe records one finished run of strategy over the counted sequence.
func (m *Metrics) Observe(strategy string, c *sort.Counter, d time.Duration) {
	m.runs.WithLabelValues(strategy).Inc()
	m.comparisons.WithLabelValues(strategy).Add(float64(c.Comparisons))
	m.swaps.WithLabelValues(strategy).Add(float64(c.Swaps))
	if !sort.IsSorted(c.Sorter) {
		m.unsorted.WithLabelValues(strategy).Inc()
	}
	m.duration.WithLabelValues(strategy).Observe(d.Seconds())
}
