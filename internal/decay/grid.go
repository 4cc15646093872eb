package decay

// Grid is a fixed simulation time grid: Steps intervals over TotalTime years,
// giving Steps+1 grid points at t[i] = i*dt.
type Grid struct {
	TotalTime float64
	Steps     int
}

// NewGrid validates and builds a time grid.
func NewGrid(totalTime float64, steps int) (Grid, error) {
	if totalTime <= 0 {
		return Grid{}, &DomainError{Param: "totalTime", Value: totalTime, Reason: "must be positive"}
	}
	if steps < 1 {
		return Grid{}, &DomainError{Param: "steps", Value: float64(steps), Reason: "must be at least 1"}
	}
	return Grid{TotalTime: totalTime, Steps: steps}, nil
}

func (g Grid) Dt() float64 {
	return g.TotalTime / float64(g.Steps)
}

// Times returns the full time axis, length Steps+1.
func (g Grid) Times() []float64 {
	dt := g.Dt()
	t := make([]float64, g.Steps+1)
	for i := range t {
		t[i] = float64(i) * dt
	}
	return t
}
