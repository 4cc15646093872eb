// Package experiment turns a run configuration into engine calls: it
// resolves species against the nuclide catalog, fills unset parameters from
// catalog suggestions, runs the integrator and packages labeled traces for
// presentation and storage. All state is call-scoped; running the same
// experiment twice yields identical outcomes.
package experiment

import (
	"github.com/zdaoudi/decaylab/internal/analysis"
	"github.com/zdaoudi/decaylab/internal/config"
	"github.com/zdaoudi/decaylab/internal/decay"
	"github.com/zdaoudi/decaylab/internal/models"
	"github.com/zdaoudi/decaylab/internal/nuclide"
)

// Outcome is one finished run: the shared time grid, one population trace
// per species, and the constants needed to derive secondary series.
type Outcome struct {
	Mode    string
	Labels  []string
	Lambdas []float64
	Grid    decay.Grid
	Times   []float64
	Traces  [][]float64

	// Analytic is the exact single-species solution on the same grid;
	// nil for chain and branching modes (no Bateman evaluator here).
	Analytic []float64
}

// Activities derives A = λN for every species, reusing the constants the
// traces were generated with.
func (o *Outcome) Activities() [][]float64 {
	out := make([][]float64, len(o.Traces))
	for i, trace := range o.Traces {
		out[i] = analysis.Activity(o.Lambdas[i], trace)
	}
	return out
}

// Ratio derives the daughter/parent population ratio for two-or-more
// species outcomes, daughter state index 1 against the parent.
func (o *Outcome) Ratio() ([]float64, error) {
	return analysis.Ratio(o.Traces[1], o.Traces[0])
}

// Columns flattens the outcome into named series for tabular export:
// every population trace, plus the analytic companion when present.
func (o *Outcome) Columns() ([]string, [][]float64) {
	names := make([]string, 0, len(o.Traces)+1)
	cols := make([][]float64, 0, len(o.Traces)+1)
	for i, trace := range o.Traces {
		names = append(names, o.Labels[i])
		cols = append(cols, trace)
	}
	if o.Analytic != nil {
		names = append(names, "analytic")
		cols = append(cols, o.Analytic)
	}
	return names, cols
}

type Experiment struct {
	cfg *config.Config
	sys system
}

// New resolves the configuration into a concrete decay system. Unset steps
// and total time are filled from the catalog's suggested parameters for the
// resolved parent.
func New(cfg *config.Config) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	resolved := *cfg
	registry := NewRegistry()
	build, err := registry.Get(resolved.Mode)
	if err != nil {
		return nil, err
	}
	sys, err := build(&resolved)
	if err != nil {
		return nil, err
	}

	applySuggestions(&resolved, sys)

	return &Experiment{cfg: &resolved, sys: sys}, nil
}

// Config returns the fully resolved configuration for this experiment.
func (e *Experiment) Config() config.Config {
	return *e.cfg
}

// Run integrates the system over the configured grid. Each call allocates
// fresh traces; the experiment retains nothing between calls.
func (e *Experiment) Run() (*Outcome, error) {
	g, err := decay.NewGrid(e.cfg.TotalTime, e.cfg.Steps)
	if err != nil {
		return nil, err
	}

	x0 := make(decay.State, e.sys.StateDim())
	x0[0] = e.cfg.InitialPopulation

	sim := decay.New(e.sys, decay.NewEuler())
	result, err := sim.Run(x0, g)
	if err != nil {
		return nil, err
	}

	out := &Outcome{
		Mode:    e.cfg.Mode,
		Labels:  e.sys.Labels(),
		Lambdas: e.sys.Lambdas(),
		Grid:    g,
		Times:   result.Times,
		Traces:  make([][]float64, e.sys.StateDim()),
	}
	for i := range out.Traces {
		out.Traces[i] = result.Column(i)
	}

	if single, ok := e.sys.(*models.Single); ok {
		out.Analytic = single.Analytic(e.cfg.InitialPopulation, g)
	}

	return out, nil
}

// applySuggestions fills zero steps/total time from the catalog record of
// the resolved parent, falling back to generic defaults for custom species.
func applySuggestions(cfg *config.Config, sys system) {
	parentHalfLife := halfLifeOf(sys)
	record, ok := nuclide.Get(parentSymbolOf(sys))
	if !ok {
		record = nuclide.Nuclide{HalfLife: parentHalfLife}
	}

	var d nuclide.Defaults
	if cfg.Mode == "single" {
		d = nuclide.SingleDefaults(record)
	} else {
		d = nuclide.ChainDefaults(record)
	}

	if cfg.Steps <= 0 {
		cfg.Steps = d.Steps
	}
	if cfg.TotalTime <= 0 {
		cfg.TotalTime = d.TotalTime
	}
}

func parentSymbolOf(sys system) string {
	switch m := sys.(type) {
	case *models.Single:
		return m.Species.Symbol
	case *models.Chain:
		return m.Parent.Symbol
	case *models.Branching:
		return m.Parent.Symbol
	}
	return ""
}

func halfLifeOf(sys system) float64 {
	switch m := sys.(type) {
	case *models.Single:
		return m.Species.HalfLife
	case *models.Chain:
		return m.Parent.HalfLife
	case *models.Branching:
		return m.Parent.HalfLife
	}
	return 0
}
