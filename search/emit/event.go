// Package emit provides pluggable observability for the search engine's
// lifecycle: logging, tracing, and in-memory event capture.
package emit

// Level classifies an Event's severity, carried in Meta["level"] so a
// filtering Emitter can match on event.Meta["level"] without depending on
// Msg naming conventions.
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Event represents an observability event emitted during a search run.
//
// Events give detailed insight into the engine's behavior:
//   - Lifecycle transitions (search started, stopped, disposed)
//   - Step completion and move acceptance/rejection
//   - New best-solution discoveries
//   - Stop-criterion and initialization warnings
//
// Events are emitted to an Emitter, which can:
//   - Log to stdout/stderr or a file
//   - Create OpenTelemetry spans for distributed tracing
//   - Buffer events in memory for tests and dashboards
type Event struct {
	// RunID identifies the search run that emitted this event. Stable for
	// the lifetime of one start()..dispose()-or-next-start() cycle.
	RunID string

	// Step is the step number within the run (1-indexed). Zero for
	// search_started and for events raised before the first step;
	// search_stopped carries the run's final step count.
	Step int64

	// Source identifies what produced the event. The engine uses "search"
	// for its own lifecycle and step events and "stopcriterion" for
	// stop-criterion errors.
	Source string

	// Msg is a short, stable event name. Values emitted by the engine:
	//   - "search_started", "search_stopped"
	//   - "step_completed"
	//   - "new_best"
	//   - "init_warning", "stop_criterion_error"
	// Status changes and current-solution modifications are reported to
	// listeners only, not as events.
	Msg string

	// Meta contains additional structured data specific to this event.
	// Keys set by the engine:
	//   - "level": severity, one of LevelDebug/LevelInfo/LevelWarn/LevelError
	//   - "evaluation": the new best solution's evaluation value, for
	//     new_best events
	//   - "error": error details, for init_warning and stop_criterion_error
	Meta map[string]interface{}
}
