package experiment

import (
	"fmt"
	"sort"

	"github.com/zdaoudi/decaylab/internal/config"
	"github.com/zdaoudi/decaylab/internal/decay"
	"github.com/zdaoudi/decaylab/internal/models"
	"github.com/zdaoudi/decaylab/internal/nuclide"
)

// system is what the runner needs from a decay model: the ODE plus the true
// decay constants used to build it, so activity evaluation never has to
// re-derive λ from trace values.
type system interface {
	decay.System
	Lambdas() []float64
}

type Builder func(cfg *config.Config) (system, error)

type Registry struct {
	modes map[string]Builder
}

func NewRegistry() *Registry {
	r := &Registry{modes: make(map[string]Builder)}

	r.modes["single"] = func(cfg *config.Config) (system, error) {
		parent, err := resolveParent(cfg)
		if err != nil {
			return nil, err
		}
		return models.NewSingle(parent)
	}

	r.modes["chain"] = func(cfg *config.Config) (system, error) {
		parent, err := resolveParent(cfg)
		if err != nil {
			return nil, err
		}
		daughter, err := resolveDaughter(cfg, parent)
		if err != nil {
			return nil, err
		}
		return models.NewChain(parent, daughter)
	}

	r.modes["branching"] = func(cfg *config.Config) (system, error) {
		parent, err := resolveParent(cfg)
		if err != nil {
			return nil, err
		}
		daughterA, err := resolveDaughter(cfg, parent)
		if err != nil {
			return nil, err
		}
		daughterB := speciesFromConfig(cfg.DaughterB)
		if daughterB.HalfLife <= 0 {
			return nil, fmt.Errorf("experiment: branching mode needs daughter_b with a positive half-life")
		}
		return models.NewBranching(parent, daughterA, daughterB, cfg.BranchingRatioA)
	}

	return r
}

func (r *Registry) Get(mode string) (Builder, error) {
	b, ok := r.modes[mode]
	if !ok {
		return nil, fmt.Errorf("experiment: unknown mode %q (have %v)", mode, r.ListModes())
	}
	return b, nil
}

func (r *Registry) ListModes() []string {
	names := make([]string, 0, len(r.modes))
	for name := range r.modes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func speciesFromConfig(sc config.SpeciesConfig) decay.Species {
	return decay.Species{Symbol: sc.Symbol, Name: sc.Name, HalfLife: sc.HalfLife}
}

// resolveParent prefers an explicit parent override, then the catalog entry
// named by cfg.Nuclide.
func resolveParent(cfg *config.Config) (decay.Species, error) {
	if cfg.Parent.HalfLife > 0 {
		sp := speciesFromConfig(cfg.Parent)
		if sp.Symbol == "" {
			sp.Symbol = "parent"
		}
		return sp, nil
	}
	n, ok := nuclide.Get(cfg.Nuclide)
	if !ok {
		return decay.Species{}, fmt.Errorf("experiment: nuclide %q not in catalog and no parent half-life given", cfg.Nuclide)
	}
	return decay.Species{Symbol: n.Symbol, Name: n.Name, HalfLife: n.HalfLife}, nil
}

// resolveDaughter prefers an explicit daughter, then the parent's ideal
// daughter from the catalog.
func resolveDaughter(cfg *config.Config, parent decay.Species) (decay.Species, error) {
	if cfg.Daughter.HalfLife > 0 {
		sp := speciesFromConfig(cfg.Daughter)
		if sp.Symbol == "" {
			sp.Symbol = "daughter"
		}
		return sp, nil
	}
	n, ok := nuclide.Get(parent.Symbol)
	if ok && n.HasChainSuggestion() {
		return decay.Species{Symbol: n.IdealDaughter, Name: n.IdealDaughter, HalfLife: n.DaughterHalfLife}, nil
	}
	return decay.Species{}, fmt.Errorf("experiment: no ideal daughter for %s; set daughter.half_life", parent.Symbol)
}
