package experiment

import (
	"fmt"
	"io"
)

// ProgressEvent represents a single progress update during a sweep.
type ProgressEvent struct {
	Type     string `json:"type"`               // "start", "step", "done"
	Protocol string `json:"protocol,omitempty"` // "generation" or "questionnaire"
	Step     int    `json:"step,omitempty"`     // current combination
	MaxStep  int    `json:"max,omitempty"`      // total combinations
	Message  string `json:"message,omitempty"`  // human-readable coordinate
	Rows     int    `json:"rows,omitempty"`     // rows collected (for "done" type)
}

// Reporter receives progress events while a sweep runs. Implementations must
// return quickly; the engine calls them between blocking backend calls.
type Reporter interface {
	Emit(event ProgressEvent)
}

// TextReporter formats progress events as human-readable text for CLI output.
type TextReporter struct {
	W io.Writer
}

// Emit writes a formatted progress line to the underlying writer.
func (r *TextReporter) Emit(ev ProgressEvent) {
	switch ev.Type {
	case "start":
		fmt.Fprintf(r.W, "Starting %s sweep: %d combinations\n", ev.Protocol, ev.MaxStep)
	case "step":
		fmt.Fprintf(r.W, "[%d/%d] %s\n", ev.Step, ev.MaxStep, ev.Message)
	case "done":
		fmt.Fprintf(r.W, "%s sweep complete: %d rows\n", ev.Protocol, ev.Rows)
	}
}

// NopReporter discards all progress events.
type NopReporter struct{}

// Emit implements Reporter.
func (NopReporter) Emit(ProgressEvent) {}
