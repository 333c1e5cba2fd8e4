package report

import (
	tap "github.com/mndrix/tap-go"

	"specrun/spec"
)

// TAP emits results in the Test Anything Protocol, one "ok"/"not ok"
// line per case; group labels and captured errors become diagnostics.
type TAP struct {
	t *tap.T
}

// NewTAP creates a TAP reporter writing to standard output.
func NewTAP() *TAP {
	t := tap.New()
	t.Header(0)
	return &TAP{t: t}
}

// BeginGroup emits the group label as a diagnostic line.
func (r *TAP) BeginGroup(label string) {
	r.t.Diagnostic(label)
}

// Report emits one test line; Errored counts as not ok.
func (r *TAP) Report(res spec.Result) {
	if res.Outcome == spec.Errored && res.Err != nil {
		r.t.Diagnostic(res.Err.Error())
	}
	r.t.Ok(res.Outcome == spec.Passed, res.Label)
}

// Finish emits the plan line based on how many tests ran.
func (r *TAP) Finish(spec.Summary) {
	r.t.AutoPlan()
}
