package nuclide

// Defaults are suggested simulation parameters for a nuclide, derived from
// its catalog record. They pre-fill prompts and flags; the user can always
// override them.
type Defaults struct {
	N0        float64
	Steps     int
	TotalTime float64 // years
}

const (
	defaultN0    = 1_000_000
	defaultSteps = 5000

	// Single decay covers a short window: the interesting Euler-vs-analytic
	// divergence happens well inside one half-life.
	singleTimeFraction = 0.01

	// Chains run long enough for the daughter to rise and fall.
	chainTimeMultiplier = 5
)

// SingleDefaults suggests parameters for a single-species run.
func SingleDefaults(n Nuclide) Defaults {
	d := Defaults{N0: defaultN0, Steps: defaultSteps, TotalTime: singleTimeFraction * n.HalfLife}
	if n.SuggestedN0 > 0 {
		d.N0 = n.SuggestedN0
	}
	if n.SuggestedSteps > 0 {
		d.Steps = n.SuggestedSteps
	}
	return d
}

// ChainDefaults suggests parameters for a chain or branching run.
func ChainDefaults(n Nuclide) Defaults {
	d := Defaults{N0: defaultN0, Steps: defaultSteps, TotalTime: chainTimeMultiplier * n.HalfLife}
	if n.SuggestedN0 > 0 {
		d.N0 = n.SuggestedN0
	}
	if n.SuggestedSteps > 0 {
		d.Steps = n.SuggestedSteps
	}
	if n.SuggestedTimeMultiplier > 0 {
		d.TotalTime = n.SuggestedTimeMultiplier * n.HalfLife
	}
	return d
}
