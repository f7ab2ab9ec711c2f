package emit

import (
	"context"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTracer(t *testing.T) (*OTelEmitter, *tracetest.InMemoryExporter) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	return NewOTelEmitter(tp.Tracer("localsearch-go-test")), exporter
}

func TestOTelEmitterCreatesSpanPerEvent(t *testing.T) {
	emitter, exporter := newTestTracer(t)

	emitter.Emit(Event{
		RunID:  "run-1",
		Step:   5,
		Source: "steepest-descent",
		Msg:    "step_completed",
		Meta:   map[string]interface{}{"evaluation": "24"},
	})

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "step_completed", spans[0].Name)
}

func TestOTelEmitterSetsErrorStatus(t *testing.T) {
	emitter, exporter := newTestTracer(t)

	emitter.Emit(Event{RunID: "run-1", Msg: "stop_criterion_error", Meta: map[string]interface{}{"error": "boom"}})

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, int(1), int(spans[0].Status.Code)) // codes.Error == 1
}

func TestOTelEmitterBatch(t *testing.T) {
	emitter, exporter := newTestTracer(t)

	require.NoError(t, emitter.EmitBatch(context.Background(), []Event{
		{Msg: "search_started"},
		{Msg: "search_stopped"},
	}))

	assert.Len(t, exporter.GetSpans(), 2)
}
