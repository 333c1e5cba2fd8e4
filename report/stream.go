// Package report provides spec.Reporter implementations: a line-oriented
// colored text stream, a TAP emitter and a progress bar.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"specrun/spec"
)

// Stream writes one line per group label and one line per case result to
// an io.Writer, as they happen.
type Stream struct {
	w     io.Writer
	group *color.Color
	pass  *color.Color
	fail  *color.Color
	erred *color.Color
}

// NewStream creates a Stream writing to w.
func NewStream(w io.Writer) *Stream {
	return &Stream{
		w:     w,
		group: color.New(color.FgCyan, color.Bold),
		pass:  color.New(color.FgGreen),
		fail:  color.New(color.FgRed),
		erred: color.New(color.FgYellow),
	}
}

// BeginGroup prints the group label verbatim.
func (s *Stream) BeginGroup(label string) {
	s.group.Fprintln(s.w, label)
}

// Report prints the case label followed by its outcome.
func (s *Stream) Report(r spec.Result) {
	switch r.Outcome {
	case spec.Passed:
		s.pass.Fprintf(s.w, "%s: Passed!\n", r.Label)
	case spec.Failed:
		s.fail.Fprintf(s.w, "%s: Failed!\n", r.Label)
	case spec.Errored:
		s.erred.Fprintf(s.w, "%s: Errored! (%v)\n", r.Label, r.Err)
	}
}

// Finish prints a one-line run summary.
func (s *Stream) Finish(sum spec.Summary) {
	fmt.Fprintf(s.w, "\n%d case(s): %d passed, %d failed, %d errored in %.2fs\n",
		sum.Total, sum.Passed, sum.Failed, sum.Errored, sum.Duration.Seconds())
}
