// Package prompt collects run parameters interactively. It owns input
// format validation: anything non-numeric is rejected at the form layer
// with [ErrInputFormat], so the engine only ever sees parsed values.
package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/zdaoudi/decaylab/internal/config"
	"github.com/zdaoudi/decaylab/internal/nuclide"
)

// ErrInputFormat indicates non-numeric user input. Distinct from the
// engine's domain errors: format problems never reach the engine.
var ErrInputFormat = errors.New("prompt: input is not numeric")

// ParseFloat parses a trimmed user entry; empty input yields the fallback.
func ParseFloat(s string, fallback float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInputFormat, s)
	}
	return v, nil
}

// ParseInt parses a trimmed user entry; empty input yields the fallback.
func ParseInt(s string, fallback int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInputFormat, s)
	}
	return v, nil
}

func validFloat(s string) error {
	_, err := ParseFloat(s, 0)
	return err
}

func validInt(s string) error {
	_, err := ParseInt(s, 0)
	return err
}

// RunConfig walks the user through mode, nuclide and parameter selection
// and returns a run configuration ready for the experiment runner.
// Suggested values from the catalog pre-fill every numeric field; pressing
// enter keeps them.
func RunConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	var mode, symbol string
	modeForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Simulation type").
				Options(
					huh.NewOption("Single nuclide decay", "single"),
					huh.NewOption("Decay chain (parent -> daughter)", "chain"),
					huh.NewOption("Branching chain (parent -> A and B)", "branching"),
				).
				Value(&mode),
			huh.NewSelect[string]().
				Title("Parent nuclide").
				Options(nuclideOptions()...).
				Value(&symbol),
		),
	)
	if err := modeForm.Run(); err != nil {
		return nil, err
	}
	cfg.Mode = mode
	cfg.Nuclide = symbol

	record, ok := nuclide.Get(symbol)
	if !ok {
		return nil, fmt.Errorf("prompt: nuclide %q not in catalog", symbol)
	}

	if mode == "chain" || mode == "branching" {
		if err := daughterForm(cfg, record); err != nil {
			return nil, err
		}
	}
	if err := paramsForm(cfg, record); err != nil {
		return nil, err
	}

	return cfg, nil
}

func nuclideOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], 0)
	for _, n := range nuclide.All() {
		label := fmt.Sprintf("%s (%s), half-life %.3g years", n.Name, n.Symbol, n.HalfLife)
		opts = append(opts, huh.NewOption(label, n.Symbol))
	}
	return opts
}

func daughterForm(cfg *config.Config, record nuclide.Nuclide) error {
	daughterDefault := record.IdealDaughter
	halfLifeDefault := ""
	if record.HasChainSuggestion() {
		halfLifeDefault = strconv.FormatFloat(record.DaughterHalfLife, 'g', -1, 64)
	}

	var name, halfLife string
	fields := []huh.Field{
		huh.NewInput().
			Title("Daughter nuclide").
			Placeholder(daughterDefault).
			Value(&name),
		huh.NewInput().
			Title("Daughter half-life (years)").
			Placeholder(halfLifeDefault).
			Validate(validFloat).
			Value(&halfLife),
	}

	var nameB, halfLifeB, ratioA string
	if cfg.Mode == "branching" {
		fields = append(fields,
			huh.NewInput().
				Title("Second daughter nuclide").
				Value(&nameB),
			huh.NewInput().
				Title("Second daughter half-life (years)").
				Validate(validFloat).
				Value(&halfLifeB),
			huh.NewInput().
				Title("Branching ratio toward first daughter [0,1]").
				Placeholder(strconv.FormatFloat(config.DefaultBranchingRatioA, 'g', -1, 64)).
				Validate(validFloat).
				Value(&ratioA),
		)
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return err
	}

	hl, err := ParseFloat(halfLife, record.DaughterHalfLife)
	if err != nil {
		return err
	}
	if strings.TrimSpace(name) == "" {
		name = daughterDefault
	}
	cfg.Daughter = config.SpeciesConfig{Symbol: name, Name: name, HalfLife: hl}

	if cfg.Mode == "branching" {
		hlB, err := ParseFloat(halfLifeB, 0)
		if err != nil {
			return err
		}
		cfg.DaughterB = config.SpeciesConfig{Symbol: nameB, Name: nameB, HalfLife: hlB}
		cfg.BranchingRatioA, err = ParseFloat(ratioA, config.DefaultBranchingRatioA)
		if err != nil {
			return err
		}
	}

	return nil
}

func paramsForm(cfg *config.Config, record nuclide.Nuclide) error {
	var d nuclide.Defaults
	if cfg.Mode == "single" {
		d = nuclide.SingleDefaults(record)
	} else {
		d = nuclide.ChainDefaults(record)
	}

	var n0, steps, totalTime string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Initial number of nuclides").
				Placeholder(strconv.FormatFloat(d.N0, 'g', -1, 64)).
				Validate(validFloat).
				Value(&n0),
			huh.NewInput().
				Title("Simulation steps").
				Placeholder(strconv.Itoa(d.Steps)).
				Validate(validInt).
				Value(&steps),
			huh.NewInput().
				Title("Total simulated time (years)").
				Placeholder(strconv.FormatFloat(d.TotalTime, 'g', -1, 64)).
				Validate(validFloat).
				Value(&totalTime),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	var err error
	if cfg.InitialPopulation, err = ParseFloat(n0, d.N0); err != nil {
		return err
	}
	if cfg.Steps, err = ParseInt(steps, d.Steps); err != nil {
		return err
	}
	if cfg.TotalTime, err = ParseFloat(totalTime, d.TotalTime); err != nil {
		return err
	}

	return nil
}
