package search

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMetrics_NilReceiverIsSafe(t *testing.T) {
	var m *SearchMetrics
	assert.NotPanics(t, func() {
		m.observeStep("run-1")
		m.observeAccepted("run-1")
		m.observeRejected("run-1")
		m.observeBest("run-1", 1.0)
		m.observeStopCheck("run-1")
	})
}

func TestSearchMetrics_ObserveStepIncrementsCounter(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewSearchMetrics(registry)

	m.observeStep("run-1")
	m.observeStep("run-1")

	families, err := registry.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if f.GetName() == "localsearch_steps_total" {
			found = true
			require.Len(t, f.GetMetric(), 1)
			assert.Equal(t, 2.0, f.GetMetric()[0].GetCounter().GetValue())
		}
	}
	assert.True(t, found)
}
