package decay

type Simulator struct {
	sys     System
	stepper Stepper
}

func New(sys System, stepper Stepper) *Simulator {
	return &Simulator{sys: sys, stepper: stepper}
}

// Run integrates the system over the grid and returns freshly allocated
// traces. The initial state appears at index 0; exactly g.Steps steps are
// taken. Inputs are captured by value, so a second call with the same
// arguments reproduces the first bit for bit.
//
// No stability check is applied: an oversized step (λ·dt > 1) produces the
// sign oscillation inherent to explicit Euler rather than an error.
func (s *Simulator) Run(x0 State, g Grid) (*Result, error) {
	if _, err := NewGrid(g.TotalTime, g.Steps); err != nil {
		return nil, err
	}
	if len(x0) != s.sys.StateDim() {
		return nil, ErrDimensionMismatch
	}
	for i, v := range x0 {
		if v < 0 {
			return nil, &DomainError{Param: s.sys.Labels()[i], Value: v, Reason: "initial population must be non-negative"}
		}
	}

	dt := g.Dt()
	result := &Result{
		Times:  make([]float64, 0, g.Steps+1),
		States: make([]State, 0, g.Steps+1),
	}

	x := x0.Clone()
	result.States = append(result.States, x.Clone())
	result.Times = append(result.Times, 0)

	for i := 0; i < g.Steps; i++ {
		x = s.stepper.Step(s.sys, x, float64(i)*dt, dt)
		result.States = append(result.States, x.Clone())
		result.Times = append(result.Times, float64(i+1)*dt)
	}

	return result, nil
}
