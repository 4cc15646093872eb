// Package nuclide holds the built-in catalog of radioactive nuclides.
// The catalog is an immutable lookup table from symbol to record; display
// code formats it, nothing mutates it.
package nuclide

import "sort"

// Nuclide is one catalog record. Half-lives are in years. Parents with a
// well-known decay chain carry an ideal daughter plus suggested simulation
// parameters; for the rest those fields are zero.
type Nuclide struct {
	Symbol                  string
	Name                    string
	HalfLife                float64
	IdealDaughter           string
	DaughterHalfLife        float64
	SuggestedN0             float64
	SuggestedSteps          int
	SuggestedTimeMultiplier float64
}

// HasChainSuggestion reports whether the record carries an ideal daughter.
func (n Nuclide) HasChainSuggestion() bool {
	return n.IdealDaughter != ""
}

var catalog = map[string]Nuclide{
	"130Ba": {Symbol: "130Ba", Name: "Barium 130", HalfLife: 1.2e21},
	"209Bi": {Symbol: "209Bi", Name: "Bismuth 209", HalfLife: 2.01e19},
	"113Cd": {Symbol: "113Cd", Name: "Cadmium 113", HalfLife: 7.70e15},
	"116Cd": {Symbol: "116Cd", Name: "Cadmium 116", HalfLife: 3.1e19},
	"48Ca":  {Symbol: "48Ca", Name: "Calcium 48", HalfLife: 2.30e19},
	"151Eu": {Symbol: "151Eu", Name: "Europium 151", HalfLife: 5.00e18},
	"76Ge":  {Symbol: "76Ge", Name: "Germanium 76", HalfLife: 1.8e21},
	"174Hf": {Symbol: "174Hf", Name: "Hafnium 174", HalfLife: 2.00e15},
	"115In": {Symbol: "115In", Name: "Indium 115", HalfLife: 4.40e14},
	"78Kr":  {Symbol: "78Kr", Name: "Krypton 78", HalfLife: 9.2e21},
	"100Mo": {Symbol: "100Mo", Name: "Molybdenum 100", HalfLife: 7.80e18},
	"144Nd": {Symbol: "144Nd", Name: "Neodymium 144", HalfLife: 2.29e15},
	"150Nd": {Symbol: "150Nd", Name: "Neodymium 150", HalfLife: 7.90e18},
	"186Os": {Symbol: "186Os", Name: "Osmium 186", HalfLife: 2.00e15},
	"148Sm": {Symbol: "148Sm", Name: "Samarium 148", HalfLife: 7.00e15},
	"82Se":  {Symbol: "82Se", Name: "Selenium 82", HalfLife: 1.1e20},
	"128Te": {Symbol: "128Te", Name: "Tellurium 128", HalfLife: 2.2e24},
	"130Te": {Symbol: "130Te", Name: "Tellurium 130", HalfLife: 8.80e18},
	"180W":  {Symbol: "180W", Name: "Tungsten 180", HalfLife: 1.80e18},
	"50V":   {Symbol: "50V", Name: "Vanadium 50", HalfLife: 1.40e18},
	"124Xe": {Symbol: "124Xe", Name: "Xenon 124", HalfLife: 1.8e22},
	"136Xe": {Symbol: "136Xe", Name: "Xenon 136", HalfLife: 2.38e21},
	"96Zr":  {Symbol: "96Zr", Name: "Zirconium 96", HalfLife: 2.00e19},
	"238U": {
		Symbol: "238U", Name: "Uranium 238", HalfLife: 4.468e9,
		IdealDaughter: "234Th", DaughterHalfLife: 6.6e-2, // ~24 days
		SuggestedN0: 1_000_000, SuggestedSteps: 5000, SuggestedTimeMultiplier: 5,
	},
	"235U": {
		Symbol: "235U", Name: "Uranium 235", HalfLife: 7.04e8,
		IdealDaughter: "231Pa", DaughterHalfLife: 0.0013, // ~11 hours
		SuggestedN0: 1_000_000, SuggestedSteps: 5000, SuggestedTimeMultiplier: 5,
	},
	"232Th": {
		Symbol: "232Th", Name: "Thorium 232", HalfLife: 1.405e10,
		IdealDaughter: "228Ra", DaughterHalfLife: 5.75,
		SuggestedN0: 1_000_000, SuggestedSteps: 5000, SuggestedTimeMultiplier: 5,
	},
}

// Get looks up a nuclide by symbol.
func Get(symbol string) (Nuclide, bool) {
	n, ok := catalog[symbol]
	return n, ok
}

// Symbols returns all catalog symbols sorted by name for stable display.
func Symbols() []string {
	syms := make([]string, 0, len(catalog))
	for s := range catalog {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool {
		return catalog[syms[i]].Name < catalog[syms[j]].Name
	})
	return syms
}

// All returns the catalog records sorted by name.
func All() []Nuclide {
	out := make([]Nuclide, 0, len(catalog))
	for _, s := range Symbols() {
		out = append(out, catalog[s])
	}
	return out
}
