package analysis

import (
	"math"
	"testing"
)

func TestActivityPointwise(t *testing.T) {
	lambda := math.Ln2 / 10
	trace := []float64{1_000_000, 750_000, 500_000, 0, 125.5}

	act := Activity(lambda, trace)

	if len(act) != len(trace) {
		t.Fatalf("expected length %d, got %d", len(trace), len(act))
	}

	for i, n := range trace {
		if act[i] != lambda*n {
			t.Errorf("activity[%d] = %g, expected %g", i, act[i], lambda*n)
		}
	}
}

func TestActivityDoesNotMutateInput(t *testing.T) {
	trace := []float64{100, 50, 25}
	Activity(0.5, trace)

	if trace[0] != 100 || trace[1] != 50 || trace[2] != 25 {
		t.Errorf("input trace mutated: %v", trace)
	}
}

func TestActivityEmptyTrace(t *testing.T) {
	act := Activity(0.1, nil)
	if len(act) != 0 {
		t.Errorf("expected empty result, got %v", act)
	}
}
