package config

var Presets = map[string]map[string]*Config{
	"single": {
		"uranium": {
			Mode: "single", Nuclide: "238U",
			InitialPopulation: 1_000_000, Steps: 5000, TotalTime: 0.01 * 4.468e9,
		},
		"tellurium": {
			Mode: "single", Nuclide: "128Te",
			InitialPopulation: 1_000_000, Steps: 5000, TotalTime: 0.01 * 2.2e24,
		},
		"coarse": {
			// One step sized so that λ·dt > 1: the Euler trace overshoots
			// below zero. Useful for demonstrating step-size instability.
			Mode:   "single",
			Parent: SpeciesConfig{Symbol: "X", Name: "Demo Nuclide", HalfLife: 10},

			InitialPopulation: 1000, Steps: 1, TotalTime: 20,
		},
	},
	"chain": {
		"uranium-thorium": {
			Mode: "chain", Nuclide: "238U",
			InitialPopulation: 1_000_000, Steps: 5000,
		},
		"uranium-protactinium": {
			Mode: "chain", Nuclide: "235U",
			InitialPopulation: 1_000_000, Steps: 5000,
		},
		"thorium-radium": {
			Mode: "chain", Nuclide: "232Th",
			InitialPopulation: 1_000_000, Steps: 5000,
		},
	},
	"branching": {
		"uranium-split": {
			Mode: "branching", Nuclide: "238U",
			Daughter:  SpeciesConfig{Symbol: "234Th", Name: "Thorium 234", HalfLife: 6.6e-2},
			DaughterB: SpeciesConfig{Symbol: "234Pa", Name: "Protactinium 234", HalfLife: 7.6e-4},

			BranchingRatioA:   0.3,
			InitialPopulation: 1_000_000, Steps: 5000,
		},
		"even-split": {
			Mode:      "branching",
			Parent:    SpeciesConfig{Symbol: "P", Name: "Parent", HalfLife: 8},
			Daughter:  SpeciesConfig{Symbol: "A", Name: "Daughter A", HalfLife: 2},
			DaughterB: SpeciesConfig{Symbol: "B", Name: "Daughter B", HalfLife: 5},

			BranchingRatioA:   0.5,
			InitialPopulation: 1_000_000, Steps: 4000, TotalTime: 40,
		},
	},
}

func GetPreset(mode, preset string) *Config {
	modePresets, ok := Presets[mode]
	if !ok {
		return nil
	}
	cfg, ok := modePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(mode string) []string {
	modePresets, ok := Presets[mode]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modePresets))
	for name := range modePresets {
		names = append(names, name)
	}
	return names
}
