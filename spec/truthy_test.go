package spec

import "testing"

func TestTruthy(t *testing.T) {
	type point struct{ X, Y int }
	var nilSlice []int
	var nilMap map[string]int
	var nilPtr *int
	n := 1

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, false},
		{"false", false, false},
		{"true", true, true},
		{"zero int", 0, false},
		{"non-zero int", 7, true},
		{"negative int", -1, true},
		{"zero uint", uint(0), false},
		{"non-zero uint", uint(3), true},
		{"zero float", 0.0, false},
		{"non-zero float", 0.5, true},
		{"empty string", "", false},
		{"non-empty string", "Fizz", true},
		{"nil slice", nilSlice, false},
		{"empty slice", []int{}, false},
		{"non-empty slice", []int{1}, true},
		{"nil map", nilMap, false},
		{"non-empty map", map[string]int{"a": 1}, true},
		{"nil pointer", nilPtr, false},
		{"non-nil pointer", &n, true},
		{"zero struct counts as non-empty object", point{}, true},
		{"struct", point{1, 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truthy(tt.value); got != tt.want {
				t.Errorf("Truthy(%v): expected %v, got %v", tt.value, tt.want, got)
			}
		})
	}
}

func TestGroup_Check(t *testing.T) {
	s := New()
	s.Group("coercion", func(g *Group) {
		g.Check("non-empty string passes", func() any { return "Fizz" })
		g.Check("empty string fails", func() any { return "" })
		g.Check("nil fails", func() any { return nil })
	})

	results, sum := NewRunner().Run(s)

	if results[0].Outcome != Passed {
		t.Errorf("expected non-empty string to pass, got %v", results[0].Outcome)
	}
	if results[1].Outcome != Failed {
		t.Errorf("expected empty string to fail, got %v", results[1].Outcome)
	}
	if results[2].Outcome != Failed {
		t.Errorf("expected nil to fail, got %v", results[2].Outcome)
	}
	if sum.Passed != 1 || sum.Failed != 2 {
		t.Errorf("unexpected summary: %+v", sum)
	}
}
