package models

import "github.com/zdaoudi/decaylab/internal/decay"

// Branching models a parent decaying into two daughters, with the parent's
// decay split by a branching ratio pair summing to 1:
//
//	dN_P/dt = -λ_P·N_P
//	dN_A/dt =  BR_A·λ_P·N_P - λ_A·N_A
//	dN_B/dt =  BR_B·λ_P·N_P - λ_B·N_B
//
// BR_A + BR_B = 1 guarantees the two production terms sum to exactly the
// parent's loss at every step.
type Branching struct {
	Parent    decay.Species
	DaughterA decay.Species
	DaughterB decay.Species
	ratioA    float64
	ratioB    float64
	lambdaP   float64
	lambdaA   float64
	lambdaB   float64
}

// NewBranching builds the three-species system. ratioA is the fraction of
// parent decays feeding daughter A; the complement feeds daughter B.
func NewBranching(parent, daughterA, daughterB decay.Species, ratioA float64) (*Branching, error) {
	if ratioA < 0 || ratioA > 1 {
		return nil, &decay.DomainError{Param: "branchingRatioA", Value: ratioA, Reason: "must be in [0,1]"}
	}
	lambdaP, _, err := decay.DecayConstants(parent.HalfLife)
	if err != nil {
		return nil, err
	}
	lambdaA, _, err := decay.DecayConstants(daughterA.HalfLife)
	if err != nil {
		return nil, err
	}
	lambdaB, _, err := decay.DecayConstants(daughterB.HalfLife)
	if err != nil {
		return nil, err
	}
	return &Branching{
		Parent:    parent,
		DaughterA: daughterA,
		DaughterB: daughterB,
		ratioA:    ratioA,
		ratioB:    1 - ratioA,
		lambdaP:   lambdaP,
		lambdaA:   lambdaA,
		lambdaB:   lambdaB,
	}, nil
}

func (m *Branching) StateDim() int { return 3 }

func (m *Branching) Labels() []string {
	return []string{m.Parent.Symbol, m.DaughterA.Symbol, m.DaughterB.Symbol}
}

func (m *Branching) Derive(x decay.State, t float64) decay.State {
	return decay.State{
		-m.lambdaP * x[0],
		m.ratioA*m.lambdaP*x[0] - m.lambdaA*x[1],
		m.ratioB*m.lambdaP*x[0] - m.lambdaB*x[2],
	}
}

// Lambdas returns the decay constants aligned with state indices
// (parent, daughter A, daughter B).
func (m *Branching) Lambdas() []float64 {
	return []float64{m.lambdaP, m.lambdaA, m.lambdaB}
}

// Ratios returns the branching ratio pair (BR_A, BR_B).
func (m *Branching) Ratios() (float64, float64) {
	return m.ratioA, m.ratioB
}

// InitialState places the whole population in the parent; both daughters
// start empty.
func (m *Branching) InitialState(n0 float64) decay.State {
	return decay.State{n0, 0, 0}
}
