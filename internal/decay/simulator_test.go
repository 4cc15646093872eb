package decay

import (
	"errors"
	"math"
	"testing"
)

type testSystem struct {
	lambda float64
}

func (s *testSystem) Derive(x State, t float64) State {
	return State{-s.lambda * x[0]}
}

func (s *testSystem) StateDim() int    { return 1 }
func (s *testSystem) Labels() []string { return []string{"N"} }

func TestSimulatorRun(t *testing.T) {
	sys := &testSystem{lambda: 1.0}
	sim := New(sys, NewEuler())

	g := Grid{TotalTime: 1.0, Steps: 10}
	result, err := sim.Run(State{1.0}, g)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.States) != 11 {
		t.Errorf("expected 11 states, got %d", len(result.States))
	}
	if len(result.Times) != 11 {
		t.Errorf("expected 11 times, got %d", len(result.Times))
	}

	if result.States[0][0] != 1.0 {
		t.Errorf("index 0 must equal the initial condition, got %g", result.States[0][0])
	}

	final := result.States[len(result.States)-1][0]
	expected := math.Exp(-1.0)
	if math.Abs(final-expected) > 0.2 {
		t.Errorf("expected final state ~%.4f, got %.4f", expected, final)
	}
}

func TestSimulatorInvalidGrid(t *testing.T) {
	sim := New(&testSystem{lambda: 1.0}, NewEuler())

	tests := []struct {
		name string
		grid Grid
	}{
		{"zero steps", Grid{TotalTime: 1.0, Steps: 0}},
		{"negative steps", Grid{TotalTime: 1.0, Steps: -5}},
		{"zero time", Grid{TotalTime: 0, Steps: 10}},
		{"negative time", Grid{TotalTime: -1.0, Steps: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sim.Run(State{1.0}, tt.grid)
			if !errors.Is(err, ErrDomain) {
				t.Errorf("expected domain error, got %v", err)
			}
		})
	}
}

func TestSimulatorDimensionMismatch(t *testing.T) {
	sim := New(&testSystem{lambda: 1.0}, NewEuler())

	_, err := sim.Run(State{1.0, 0.0}, Grid{TotalTime: 1.0, Steps: 10})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("expected dimension mismatch, got %v", err)
	}
}

func TestSimulatorNegativeInitial(t *testing.T) {
	sim := New(&testSystem{lambda: 1.0}, NewEuler())

	_, err := sim.Run(State{-1.0}, Grid{TotalTime: 1.0, Steps: 10})
	if !errors.Is(err, ErrDomain) {
		t.Errorf("expected domain error, got %v", err)
	}
}

func TestSimulatorZeroPopulation(t *testing.T) {
	sim := New(&testSystem{lambda: 1.0}, NewEuler())

	result, err := sim.Run(State{0}, Grid{TotalTime: 1.0, Steps: 10})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for i, s := range result.States {
		if s[0] != 0 {
			t.Fatalf("expected all-zero trace, got %g at step %d", s[0], i)
		}
	}
}

func TestSimulatorIdempotent(t *testing.T) {
	sys := &testSystem{lambda: 0.3}
	sim := New(sys, NewEuler())
	g := Grid{TotalTime: 25.0, Steps: 173}

	first, err := sim.Run(State{12345.0}, g)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := sim.Run(State{12345.0}, g)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	for i := range first.States {
		if first.States[i][0] != second.States[i][0] {
			t.Fatalf("traces differ at step %d: %v != %v", i, first.States[i][0], second.States[i][0])
		}
		if first.Times[i] != second.Times[i] {
			t.Fatalf("time axes differ at step %d", i)
		}
	}
}
