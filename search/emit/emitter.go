package emit

import "context"

// Emitter receives and processes observability events from a search run.
//
// Emitters enable pluggable observability backends:
//   - Logging: stdout, files.
//   - Distributed tracing: OpenTelemetry.
//   - In-memory capture: tests, dashboards.
//
// Implementations should be:
//   - Non-blocking: avoid slowing down the search loop.
//   - Thread-safe: Emit is called from the search's own goroutine and,
//     for stop-criterion errors, from its background stop-checker
//     goroutine; an Emitter may also be shared across multiple
//     concurrently-running searches.
//   - Resilient: handle failures gracefully (don't panic the search).
type Emitter interface {
	// Emit sends an observability event to the configured backend.
	//
	// Implementations should not block the search loop for long; if the
	// backend is slow or unavailable, buffer the event or drop it with
	// internal logging rather than blocking indefinitely.
	Emit(event Event)

	// EmitBatch sends multiple events in a single operation.
	//
	// Events should be processed in order. Returns an error only for
	// catastrophic failures (e.g. a misconfigured backend); individual
	// event delivery failures should be handled internally.
	EmitBatch(ctx context.Context, events []Event) error

	// Flush ensures all buffered events have been sent to the backend.
	//
	// Call before process shutdown, or in tests that assert on delivered
	// events. Safe to call multiple times.
	Flush(ctx context.Context) error
}
