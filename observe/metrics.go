package observe

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/pathq/search"
)

// Namespace prefixes every metric exposed by Metrics.
const Namespace = "pathq"

// Metrics collects Prometheus metrics for searches.
//
// Metrics exposed (all namespaced with "pathq_"):
//
//  1. trackers_enqueued_total (counter): trackers added to a queue.
//  2. trackers_popped_total (counter): trackers taken off a queue.
//  3. trackers_discarded_total (counter): pops dropped as revisits.
//  4. searches_total (counter): finished searches. Labels: strategy, state.
//  5. search_accepted (histogram): accepted trackers per finished search.
//     Labels: strategy.
//
// A Metrics value may be shared by concurrent searches; Prometheus
// collectors are safe for concurrent use.
type Metrics struct {
	enqueued  prometheus.Counter
	popped    prometheus.Counter
	discarded prometheus.Counter
	searches  *prometheus.CounterVec
	accepted  *prometheus.HistogramVec
}

// NewMetrics creates and registers the search metrics with reg.
// A nil reg selects prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		enqueued: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "trackers_enqueued_total",
			Help:      "Path trackers added to a search queue",
		}),
		popped: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "trackers_popped_total",
			Help:      "Path trackers taken off a search queue",
		}),
		discarded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "trackers_discarded_total",
			Help:      "Popped path trackers dropped because their leaf was already visited",
		}),
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "searches_total",
			Help:      "Finished searches by strategy and terminal state",
		}, []string{"strategy", "state"}),
		accepted: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "search_accepted",
			Help:      "Accepted path trackers per finished search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8), // 1 .. 16384
		}, []string{"strategy"}),
	}
}

// Options returns search hooks feeding m. strategy labels the per-search
// series; use search.Strategy.String() or any stable name.
func (m *Metrics) Options(strategy string) []search.Option {
	return []search.Option{
		search.WithOnEnqueue(func(string, int, float64) { m.enqueued.Inc() }),
		search.WithOnDequeue(func(string, int) { m.popped.Inc() }),
		search.WithOnDiscard(func(string, int) { m.discarded.Inc() }),
		search.WithOnFinish(func(state search.State, stats search.Stats) {
			m.searches.WithLabelValues(strategy, state.String()).Inc()
			m.accepted.WithLabelValues(strategy).Observe(float64(stats.Accepted))
		}),
	}
}
