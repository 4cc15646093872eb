package models

import (
	"math"

	"github.com/zdaoudi/decaylab/internal/decay"
)

// Single models pure exponential decay of one nuclide population:
// dN/dt = -λN.
type Single struct {
	Species decay.Species
	lambda  float64
	tau     float64
}

func NewSingle(sp decay.Species) (*Single, error) {
	lambda, tau, err := decay.DecayConstants(sp.HalfLife)
	if err != nil {
		return nil, err
	}
	return &Single{Species: sp, lambda: lambda, tau: tau}, nil
}

func (m *Single) StateDim() int { return 1 }

func (m *Single) Labels() []string {
	return []string{m.Species.Symbol}
}

func (m *Single) Derive(x decay.State, t float64) decay.State {
	return decay.State{-m.lambda * x[0]}
}

// Lambdas returns the decay constant aligned with state index 0.
func (m *Single) Lambdas() []float64 {
	return []float64{m.lambda}
}

// Analytic evaluates the exact solution N(t) = N0·exp(-t/τ) on the grid.
// It is computed independently of any numerical trace but shares the same
// time axis, so the two are comparable point by point.
func (m *Single) Analytic(n0 float64, g decay.Grid) []float64 {
	times := g.Times()
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = n0 * math.Exp(-t/m.tau)
	}
	return out
}
