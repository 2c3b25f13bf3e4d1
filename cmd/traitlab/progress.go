package main

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/kamilpajak/traitlab/internal/experiment"
)

// progressReporter renders sweep progress on stderr. On a terminal it
// animates a spinner whose suffix tracks the current coordinate; piped
// output falls back to plain per-step lines.
type progressReporter struct {
	w      *os.File
	spin   *spinner.Spinner
	plain  *experiment.TextReporter
	closed bool
}

func newProgressReporter(w *os.File) *progressReporter {
	r := &progressReporter{w: w}
	if isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd()) {
		r.spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	} else {
		r.plain = &experiment.TextReporter{W: w}
	}
	return r
}

// Emit implements experiment.Reporter.
func (r *progressReporter) Emit(ev experiment.ProgressEvent) {
	if r.plain != nil {
		r.plain.Emit(ev)
		return
	}
	switch ev.Type {
	case "start":
		fmt.Fprintf(r.w, "Starting %s sweep: %d combinations\n", ev.Protocol, ev.MaxStep)
		r.spin.Suffix = ""
		r.spin.Start()
	case "step":
		r.spin.Suffix = fmt.Sprintf(" [%d/%d] %s", ev.Step, ev.MaxStep, ev.Message)
	case "done":
		r.spin.Stop()
		_, _ = color.New(color.FgGreen).Fprintf(r.w, "%s sweep complete: %d rows\n", ev.Protocol, ev.Rows)
	}
}

// Close stops the spinner if one is still running. Safe to call more than once.
func (r *progressReporter) Close() {
	if r.closed {
		return
	}
	r.closed = true
	if r.spin != nil {
		r.spin.Stop()
	}
}
