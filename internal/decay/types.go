package decay

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

// Species identifies a nuclide for simulation purposes. Symbol and Name are
// display labels only; the engine consumes just the half-life.
type Species struct {
	Symbol   string
	Name     string
	HalfLife float64 // years
}

// System describes a set of coupled first-order decay equations dN/dt = f(N, t).
type System interface {
	Derive(x State, t float64) State
	StateDim() int
	Labels() []string
}

// Stepper advances a state by one fixed step.
type Stepper interface {
	Step(sys System, x State, t float64, dt float64) State
}

// Result holds the population traces produced by a single run. States has one
// entry per grid point (steps+1), each owned exclusively by this result.
type Result struct {
	Times  []float64
	States []State
}

// Column extracts the trace of one species across all grid points.
func (r *Result) Column(idx int) []float64 {
	out := make([]float64, len(r.States))
	for i, s := range r.States {
		out[i] = s[idx]
	}
	return out
}
