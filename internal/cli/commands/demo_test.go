package commands

import (
	"testing"

	"specrun/spec"
)

func TestBuildDemoSuite(t *testing.T) {
	t.Run("showcase cases all pass", func(t *testing.T) {
		s := buildDemoSuite(false)
		if got := s.CaseCount(); got != 5 {
			t.Fatalf("expected 5 cases, got %d", got)
		}

		_, sum := spec.NewRunner().Run(s)
		if sum.Passed != 5 || sum.Failed != 0 || sum.Errored != 0 {
			t.Errorf("unexpected summary: %+v", sum)
		}
	})

	t.Run("with-failures adds a failing and an erroring case", func(t *testing.T) {
		s := buildDemoSuite(true)

		_, sum := spec.NewRunner().Run(s)
		if sum.Failed != 1 {
			t.Errorf("expected 1 failed case, got %d", sum.Failed)
		}
		if sum.Errored != 1 {
			t.Errorf("expected 1 errored case, got %d", sum.Errored)
		}
		if sum.Passed != 5 {
			t.Errorf("expected the showcase cases to still pass, got %d", sum.Passed)
		}
	})
}
