package search

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SearchMetrics provides Prometheus-compatible metrics for monitoring
// search execution in production. Attach via WithMetrics; all methods are
// safe to call on a nil *SearchMetrics (they become no-ops), so callers
// can thread metrics through optionally without nil checks at every call
// site.
//
// Metrics exposed (namespaced "localsearch_"):
//
//  1. steps_total (counter): completed steps, labeled by run_id.
//  2. accepted_moves_total / rejected_moves_total (counter): move
//     acceptance outcomes, labeled by run_id.
//  3. best_evaluation (gauge): current best solution's evaluation value,
//     labeled by run_id.
//  4. stop_checks_total (counter): background stop-criterion poll ticks,
//     labeled by run_id.
type SearchMetrics struct {
	steps         *prometheus.CounterVec
	acceptedMoves *prometheus.CounterVec
	rejectedMoves *prometheus.CounterVec
	bestEval      *prometheus.GaugeVec
	stopChecks    *prometheus.CounterVec
}

// NewSearchMetrics registers the search engine's metrics with registry and
// returns a SearchMetrics ready for use. Pass prometheus.NewRegistry() for
// an isolated registry (recommended in tests) or prometheus.DefaultRegisterer
// for the global one.
func NewSearchMetrics(registry prometheus.Registerer) *SearchMetrics {
	factory := promauto.With(registry)
	return &SearchMetrics{
		steps: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "localsearch_steps_total",
			Help: "Total completed search steps.",
		}, []string{"run_id"}),
		acceptedMoves: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "localsearch_accepted_moves_total",
			Help: "Total moves accepted into the current solution.",
		}, []string{"run_id"}),
		rejectedMoves: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "localsearch_rejected_moves_total",
			Help: "Total moves considered and rejected.",
		}, []string{"run_id"}),
		bestEval: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "localsearch_best_evaluation",
			Help: "Evaluation value of the current best solution.",
		}, []string{"run_id"}),
		stopChecks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "localsearch_stop_checks_total",
			Help: "Total background stop-criterion poll ticks.",
		}, []string{"run_id"}),
	}
}

func (m *SearchMetrics) observeStep(runID string) {
	if m == nil {
		return
	}
	m.steps.WithLabelValues(runID).Inc()
}

func (m *SearchMetrics) observeAccepted(runID string) {
	if m == nil {
		return
	}
	m.acceptedMoves.WithLabelValues(runID).Inc()
}

func (m *SearchMetrics) observeRejected(runID string) {
	if m == nil {
		return
	}
	m.rejectedMoves.WithLabelValues(runID).Inc()
}

func (m *SearchMetrics) observeBest(runID string, value float64) {
	if m == nil {
		return
	}
	m.bestEval.WithLabelValues(runID).Set(value)
}

func (m *SearchMetrics) observeStopCheck(runID string) {
	if m == nil {
		return
	}
	m.stopChecks.WithLabelValues(runID).Inc()
}
