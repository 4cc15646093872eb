package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMode              = "single"
	DefaultNuclide           = "238U"
	DefaultInitialPopulation = 1_000_000
	DefaultSteps             = 5000
	DefaultBranchingRatioA   = 0.5
)

// Config describes one simulation run. Zero-valued numeric fields are
// resolved from the nuclide catalog's suggested parameters at run time.
type Config struct {
	Mode              string        `yaml:"mode"` // single, chain or branching
	Nuclide           string        `yaml:"nuclide"`
	Parent            SpeciesConfig `yaml:"parent"`
	Daughter          SpeciesConfig `yaml:"daughter"`
	DaughterB         SpeciesConfig `yaml:"daughter_b"`
	BranchingRatioA   float64       `yaml:"branching_ratio_a"`
	InitialPopulation float64       `yaml:"initial_population"`
	Steps             int           `yaml:"steps"`
	TotalTime         float64       `yaml:"total_time"` // years
}

// SpeciesConfig names a species outside the catalog, or overrides a
// catalog entry's half-life.
type SpeciesConfig struct {
	Symbol   string  `yaml:"symbol"`
	Name     string  `yaml:"name"`
	HalfLife float64 `yaml:"half_life"` // years
}

func DefaultConfig() *Config {
	return &Config{
		Mode:              DefaultMode,
		Nuclide:           DefaultNuclide,
		InitialPopulation: DefaultInitialPopulation,
		Steps:             DefaultSteps,
		BranchingRatioA:   DefaultBranchingRatioA,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks structural fields. Physical parameters (half-lives, grid,
// branching ratio) are validated again by the engine before any trace is
// allocated; this catches config mistakes early with file-level context.
func (c *Config) Validate() error {
	switch c.Mode {
	case "single", "chain", "branching":
	default:
		return fmt.Errorf("config: unknown mode %q (want single, chain or branching)", c.Mode)
	}
	if c.InitialPopulation < 0 {
		return fmt.Errorf("config: initial_population must be non-negative, got %g", c.InitialPopulation)
	}
	if c.Steps < 0 {
		return fmt.Errorf("config: steps must be non-negative, got %d", c.Steps)
	}
	if c.TotalTime < 0 {
		return fmt.Errorf("config: total_time must be non-negative, got %g", c.TotalTime)
	}
	if c.Mode == "branching" && (c.BranchingRatioA < 0 || c.BranchingRatioA > 1) {
		return fmt.Errorf("config: branching_ratio_a must be in [0,1], got %g", c.BranchingRatioA)
	}
	return nil
}
