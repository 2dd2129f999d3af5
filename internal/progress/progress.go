// Package progress reports processing progress to an auxiliary stream.
//
// Output is throttled and, on a terminal, rewrites a single status line via
// carriage return; on a non-terminal stream it stays quiet until a phase
// completes. A disabled reporter is a no-op.
package progress

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Reporter tracks per-phase counters. Not safe for concurrent use; the run
// is single-threaded.
type Reporter struct {
	w       io.Writer
	enabled bool
	tty     bool
	label   string
	count   uint
}

// New returns a reporter writing to w. When enabled is false all methods
// are no-ops.
func New(w io.Writer, enabled bool) *Reporter {
	tty := false
	if f, ok := w.(*os.File); ok {
		tty = term.IsTerminal(int(f.Fd()))
	}
	return &Reporter{w: w, enabled: enabled, tty: tty}
}

// Step advances the counter for the given phase label. A label change
// flushes the previous phase's tally and restarts the counter.
func (r *Reporter) Step(label string) {
	if !r.enabled {
		return
	}
	if r.label != "" && label != r.label {
		r.flush()
	}
	r.label = label
	r.count++
	if r.tty && r.count%100 == 0 {
		fmt.Fprintf(r.w, "\r%s: %d", label, r.count)
	}
}

// Done flushes the final phase tally.
func (r *Reporter) Done() {
	if !r.enabled || r.label == "" {
		return
	}
	r.flush()
	r.label = ""
}

func (r *Reporter) flush() {
	if r.tty {
		fmt.Fprintf(r.w, "\r%s: %d - done\n", r.label, r.count)
	} else {
		fmt.Fprintf(r.w, "%s: %d - done\n", r.label, r.count)
	}
	r.count = 0
}
