package emit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// LogEmitter implements Emitter by writing structured log lines to a
// writer.
//
// Supports two output modes:
//   - Text (default): human-readable key=value pairs.
//   - JSON: one JSON object per line.
//
// Example text output:
//
//	[step_completed] runID=run-001 step=42 source=steepest-descent
//
// Example JSON output:
//
//	{"runID":"run-001","step":42,"source":"steepest-descent","msg":"step_completed","meta":null}
type LogEmitter struct {
	writer   io.Writer
	jsonMode bool
}

// NewLogEmitter creates a LogEmitter writing to writer. If writer is nil,
// os.Stdout is used.
func NewLogEmitter(writer io.Writer, jsonMode bool) *LogEmitter {
	if writer == nil {
		writer = os.Stdout
	}
	return &LogEmitter{writer: writer, jsonMode: jsonMode}
}

// Emit writes event to the configured writer in the configured mode.
func (l *LogEmitter) Emit(event Event) {
	if l.jsonMode {
		l.emitJSON(event)
	} else {
		l.emitText(event)
	}
}

func (l *LogEmitter) emitJSON(event Event) {
	enc := json.NewEncoder(l.writer)
	payload := struct {
		RunID  string                 `json:"runID"`
		Step   int64                  `json:"step"`
		Source string                 `json:"source"`
		Msg    string                 `json:"msg"`
		Meta   map[string]interface{} `json:"meta"`
	}{event.RunID, event.Step, event.Source, event.Msg, event.Meta}
	_ = enc.Encode(payload)
}

func (l *LogEmitter) emitText(event Event) {
	fmt.Fprintf(l.writer, "[%s] runID=%s step=%d", event.Msg, event.RunID, event.Step)
	if event.Source != "" {
		fmt.Fprintf(l.writer, " source=%s", event.Source)
	}
	if len(event.Meta) > 0 {
		fmt.Fprintf(l.writer, " meta=%v", event.Meta)
	}
	fmt.Fprintln(l.writer)
}

// EmitBatch writes each event in order and never fails.
func (l *LogEmitter) EmitBatch(_ context.Context, events []Event) error {
	for _, e := range events {
		l.Emit(e)
	}
	return nil
}

// Flush is a no-op: LogEmitter writes synchronously.
func (l *LogEmitter) Flush(context.Context) error { return nil }
