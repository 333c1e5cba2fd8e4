package spec

import (
	"fmt"
	"time"
)

// Runner executes a Suite sequentially and streams results to its
// reporters.
type Runner struct {
	reporters []Reporter
}

// NewRunner creates a Runner that streams to the given reporters.
func NewRunner(reporters ...Reporter) *Runner {
	return &Runner{reporters: reporters}
}

// Run walks the suite in declaration order, invokes every predicate
// exactly once, and returns the results in the same order together with
// a summary. One predicate runs to completion before the next begins.
func (r *Runner) Run(s *Suite) ([]Result, Summary) {
	start := time.Now()

	var results []Result
	r.runGroup(&s.root, &results)

	sum := Summary{Total: len(results), Duration: time.Since(start)}
	for _, res := range results {
		switch res.Outcome {
		case Passed:
			sum.Passed++
		case Failed:
			sum.Failed++
		case Errored:
			sum.Errored++
		}
	}

	for _, rep := range r.reporters {
		rep.Finish(sum)
	}
	return results, sum
}

func (r *Runner) runGroup(g *Group, results *[]Result) {
	if g.Label != "" {
		for _, rep := range r.reporters {
			rep.BeginGroup(g.Label)
		}
	}
	for _, n := range g.children {
		if n.c != nil {
			res := evaluate(g.Label, n.c)
			*results = append(*results, res)
			for _, rep := range r.reporters {
				rep.Report(res)
			}
			continue
		}
		r.runGroup(n.g, results)
	}
}

// evaluate invokes the case's predicate once, converting a panic into an
// Errored result instead of letting it abort the remaining run.
func evaluate(group string, c *Case) (res Result) {
	res = Result{Group: group, Label: c.Label}
	defer func() {
		if v := recover(); v != nil {
			res.Outcome = Errored
			if err, ok := v.(error); ok {
				res.Err = err
			} else {
				res.Err = fmt.Errorf("%v", v)
			}
		}
	}()
	if c.pred() {
		res.Outcome = Passed
	} else {
		res.Outcome = Failed
	}
	return res
}
