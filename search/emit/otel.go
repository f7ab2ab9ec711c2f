package emit

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// OTelEmitter implements Emitter by creating OpenTelemetry spans.
//
// Each event becomes a short, immediately-ended span:
//   - Span name: event.Msg (e.g. "step_completed", "new_best").
//   - Attributes: run_id, step, source (if set), and all event.Meta fields.
//   - Status: set to error if event.Meta["error"] is present.
//
// Use this when the search engine is embedded in a larger traced service
// and its lifecycle should show up alongside request/response spans.
//
// Usage:
//
//	tracer := otel.Tracer("localsearch-go")
//	emitter := emit.NewOTelEmitter(tracer)
//	s, err := search.New(problem, nbh, step, search.WithEmitter[*subset.SubsetSolution](emitter))
type OTelEmitter struct {
	tracer trace.Tracer
}

// NewOTelEmitter creates an OTelEmitter using tracer to create spans.
func NewOTelEmitter(tracer trace.Tracer) *OTelEmitter {
	return &OTelEmitter{tracer: tracer}
}

// Emit creates and immediately ends a span representing event.
func (o *OTelEmitter) Emit(event Event) {
	_, span := o.tracer.Start(context.Background(), event.Msg)
	defer span.End()

	attrs := []attribute.KeyValue{
		attribute.String("run_id", event.RunID),
		attribute.Int64("step", event.Step),
	}
	if event.Source != "" {
		attrs = append(attrs, attribute.String("source", event.Source))
	}
	for k, v := range event.Meta {
		attrs = append(attrs, attribute.String(k, toString(v)))
	}
	span.SetAttributes(attrs...)

	if errVal, ok := event.Meta["error"]; ok {
		span.SetStatus(codes.Error, toString(errVal))
	}
}

// EmitBatch creates one span per event, preserving order.
func (o *OTelEmitter) EmitBatch(_ context.Context, events []Event) error {
	for _, e := range events {
		o.Emit(e)
	}
	return nil
}

// Flush is a no-op: spans are ended synchronously in Emit. Exporter-level
// batching, if any, is the caller's TracerProvider's responsibility.
func (o *OTelEmitter) Flush(context.Context) error { return nil }

func toString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case error:
		return t.Error()
	case time.Duration:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
