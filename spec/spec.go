// Package spec is a minimal behavior-driven test declaration and run
// library. A Suite accumulates named Groups of named Cases, each Case
// holding a zero-argument predicate; a Runner walks the suite in
// declaration order, classifies every outcome as Passed, Failed or
// Errored, and streams results to pluggable reporters.
package spec

// Predicate is a deferred, argument-free check whose result determines
// whether a Case passes or fails.
type Predicate func() bool

// Case is a single named check
type Case struct {
	Label string
	pred  Predicate
}

// Group is a named collection of Cases and nested Groups. Children keep
// their declaration order.
type Group struct {
	Label    string
	children []node
}

// node is either a Case or a nested Group, never both
type node struct {
	c *Case
	g *Group
}

// Suite accumulates test declarations. Declaration is decoupled from
// execution: building a Suite runs no predicates, a Runner does that.
type Suite struct {
	// root is the implicit top-level group; its label stays empty and is
	// never reported.
	root Group
}

// New creates an empty Suite
func New() *Suite {
	return &Suite{}
}

// Group declares a named group and invokes body immediately so that
// nested Case declarations register into it. A nil body declares an
// empty group.
func (s *Suite) Group(label string, body func(*Group)) {
	s.root.Group(label, body)
}

// Case declares a check outside any group; it belongs to the implicit
// top-level group.
func (s *Suite) Case(label string, pred Predicate) {
	s.root.Case(label, pred)
}

// Check declares a check whose non-boolean result is coerced with Truthy.
func (s *Suite) Check(label string, fn func() any) {
	s.root.Check(label, fn)
}

// CaseCount returns the number of declared Cases across all groups.
func (s *Suite) CaseCount() int {
	return s.root.caseCount()
}

// Group declares a nested group and invokes body immediately.
func (g *Group) Group(label string, body func(*Group)) {
	child := &Group{Label: label}
	g.children = append(g.children, node{g: child})
	if body != nil {
		body(child)
	}
}

// Case declares a check inside this group. The predicate is not invoked
// here; the Runner invokes it exactly once per run.
func (g *Group) Case(label string, pred Predicate) {
	g.children = append(g.children, node{c: &Case{Label: label, pred: pred}})
}

// Check declares a check whose non-boolean result is coerced with Truthy.
func (g *Group) Check(label string, fn func() any) {
	g.Case(label, func() bool { return Truthy(fn()) })
}

func (g *Group) caseCount() int {
	count := 0
	for _, n := range g.children {
		if n.c != nil {
			count++
			continue
		}
		count += n.g.caseCount()
	}
	return count
}
