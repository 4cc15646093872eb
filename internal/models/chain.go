package models

import "github.com/zdaoudi/decaylab/internal/decay"

// Chain models a two-step decay chain, parent -> daughter:
//
//	dN_P/dt = -λ_P·N_P
//	dN_D/dt =  λ_P·N_P - λ_D·N_D
//
// The daughter's production uses the current parent value, keeping the
// scheme fully explicit. Mass leaving the parent each step enters the
// daughter exactly, before the daughter's own decay is subtracted.
type Chain struct {
	Parent   decay.Species
	Daughter decay.Species
	lambdaP  float64
	lambdaD  float64
}

func NewChain(parent, daughter decay.Species) (*Chain, error) {
	lambdaP, _, err := decay.DecayConstants(parent.HalfLife)
	if err != nil {
		return nil, err
	}
	lambdaD, _, err := decay.DecayConstants(daughter.HalfLife)
	if err != nil {
		return nil, err
	}
	return &Chain{Parent: parent, Daughter: daughter, lambdaP: lambdaP, lambdaD: lambdaD}, nil
}

func (m *Chain) StateDim() int { return 2 }

func (m *Chain) Labels() []string {
	return []string{m.Parent.Symbol, m.Daughter.Symbol}
}

func (m *Chain) Derive(x decay.State, t float64) decay.State {
	return decay.State{
		-m.lambdaP * x[0],
		m.lambdaP*x[0] - m.lambdaD*x[1],
	}
}

// Lambdas returns the decay constants aligned with state indices
// (parent, daughter).
func (m *Chain) Lambdas() []float64 {
	return []float64{m.lambdaP, m.lambdaD}
}

// InitialState places the whole population in the parent; the daughter
// starts empty.
func (m *Chain) InitialState(n0 float64) decay.State {
	return decay.State{n0, 0}
}
