package spec

import "time"

// Outcome classifies the result of evaluating one Case's predicate.
type Outcome int

const (
	// Passed means the predicate returned a truthy value.
	Passed Outcome = iota
	// Failed means the predicate returned a falsy value.
	Failed
	// Errored means the predicate panicked; the recovered value is kept
	// on the Result so a single broken Case never aborts the run.
	Errored
)

// String returns the outcome name as it appears in reports.
func (o Outcome) String() string {
	switch o {
	case Passed:
		return "Passed"
	case Failed:
		return "Failed"
	case Errored:
		return "Errored"
	}
	return "Unknown"
}

// Result is the recorded outcome of evaluating one Case.
type Result struct {
	Group   string // label of the owning group, empty for top-level cases
	Label   string
	Outcome Outcome
	Err     error // recovered panic, set only when Outcome is Errored
}

// Summary contains aggregate counts for one run.
type Summary struct {
	Total    int
	Passed   int
	Failed   int
	Errored  int
	Duration time.Duration
}

// Reporter receives run events as they happen. The Runner owns all
// output routing; predicates themselves do no I/O.
type Reporter interface {
	// BeginGroup is called with a group's label before any result
	// belonging to that group.
	BeginGroup(label string)
	// Report is called once per Case, immediately after its predicate
	// is evaluated.
	Report(r Result)
	// Finish is called once after the last result.
	Finish(s Summary)
}
