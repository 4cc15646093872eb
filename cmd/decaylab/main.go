package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zdaoudi/decaylab/internal/config"
	"github.com/zdaoudi/decaylab/internal/decay"
	"github.com/zdaoudi/decaylab/internal/experiment"
	"github.com/zdaoudi/decaylab/internal/models"
	"github.com/zdaoudi/decaylab/internal/nuclide"
	"github.com/zdaoudi/decaylab/internal/prompt"
	"github.com/zdaoudi/decaylab/internal/storage"
	"github.com/zdaoudi/decaylab/internal/tui"
	"github.com/zdaoudi/decaylab/internal/viz"
)

var (
	dataDir string

	parentSymbol      string
	initialPopulation float64
	steps             int
	totalTime         float64

	daughterName      string
	daughterHalfLife  float64
	daughterBName     string
	daughterBHalfLife float64
	branchingRatioA   float64

	configFile  string
	presetName  string
	interactive bool
	noSave      bool

	compareSteps []int
)

// main registers commands and flags and executes the root command. Running
// with no subcommand starts the interactive terminal UI.
func main() {
	rootCmd := &cobra.Command{
		Use:   "decaylab",
		Short: "radioactive decay simulation lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".decaylab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [mode]",
		Short: "run a simulation (single, chain or branching)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVar(&parentSymbol, "nuclide", config.DefaultNuclide, "parent nuclide symbol")
	runCmd.Flags().Float64Var(&initialPopulation, "n0", config.DefaultInitialPopulation, "initial parent population")
	runCmd.Flags().IntVar(&steps, "steps", 0, "number of integration steps (0 = suggested)")
	runCmd.Flags().Float64Var(&totalTime, "time", 0, "total simulated time in years (0 = suggested)")
	runCmd.Flags().StringVar(&daughterName, "daughter", "", "daughter nuclide (chain/branching; default: catalog suggestion)")
	runCmd.Flags().Float64Var(&daughterHalfLife, "daughter-half-life", 0, "daughter half-life in years")
	runCmd.Flags().StringVar(&daughterBName, "daughter-b", "", "second daughter nuclide (branching)")
	runCmd.Flags().Float64Var(&daughterBHalfLife, "daughter-b-half-life", 0, "second daughter half-life in years")
	runCmd.Flags().Float64Var(&branchingRatioA, "br-a", config.DefaultBranchingRatioA, "branching ratio toward the first daughter")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&presetName, "preset", "", "use preset configuration")
	runCmd.Flags().BoolVar(&interactive, "interactive", false, "prompt for parameters instead of using flags")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not persist the run")

	nuclidesCmd := &cobra.Command{
		Use:   "nuclides",
		Short: "list the built-in nuclide catalog",
		RunE:  listNuclides,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run traces to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run traces to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [nuclide]",
		Short: "compare euler accuracy against the analytic solution at several step counts",
		Args:  cobra.ExactArgs(1),
		RunE:  compareStepCounts,
	}
	compareCmd.Flags().Float64Var(&initialPopulation, "n0", config.DefaultInitialPopulation, "initial population")
	compareCmd.Flags().Float64Var(&totalTime, "time", 0, "total simulated time in years (0 = suggested)")
	compareCmd.Flags().IntSliceVar(&compareSteps, "steps", []int{10, 100, 1000, 10000}, "step counts to compare")

	presetsCmd := &cobra.Command{
		Use:   "presets [mode]",
		Short: "list available presets for a mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for mode: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	rootCmd.AddCommand(runCmd, nuclidesCmd, listCmd, plotCmd, exportCmd, exportCSVCmd, exportJSONCmd, compareCmd, presetsCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// buildRunConfig assembles the run configuration: preset first, then config
// file, then flags. Explicitly set flags win over both.
func buildRunConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	if interactive {
		return prompt.RunConfig()
	}

	cfg := config.DefaultConfig()
	if len(args) == 1 {
		cfg.Mode = args[0]
	}

	if presetName != "" {
		p := config.GetPreset(cfg.Mode, presetName)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets(cfg.Mode))
		}
		preset := *p
		cfg = &preset
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if len(args) == 1 {
			loaded.Mode = args[0]
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("nuclide") || (cfg.Nuclide == "" && cfg.Parent.HalfLife <= 0) {
		cfg.Nuclide = parentSymbol
	}
	if cmd.Flags().Changed("n0") {
		cfg.InitialPopulation = initialPopulation
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("time") {
		cfg.TotalTime = totalTime
	}
	if cmd.Flags().Changed("daughter") || cmd.Flags().Changed("daughter-half-life") {
		cfg.Daughter = config.SpeciesConfig{Symbol: daughterName, Name: daughterName, HalfLife: daughterHalfLife}
	}
	if cmd.Flags().Changed("daughter-b") || cmd.Flags().Changed("daughter-b-half-life") {
		cfg.DaughterB = config.SpeciesConfig{Symbol: daughterBName, Name: daughterBName, HalfLife: daughterBHalfLife}
	}
	if cmd.Flags().Changed("br-a") {
		cfg.BranchingRatioA = branchingRatioA
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildRunConfig(cmd, args)
	if err != nil {
		return err
	}

	exp, err := experiment.New(cfg)
	if err != nil {
		return err
	}
	resolved := exp.Config()

	outcome, err := exp.Run()
	if err != nil {
		return err
	}

	fmt.Println(viz.Header(fmt.Sprintf("%s run", resolved.Mode)))
	fmt.Println()

	if outcome.Analytic != nil {
		fmt.Println(viz.NumericalVsAnalytic(outcome.Labels[0], outcome.Traces[0], outcome.Analytic, outcome.Grid.TotalTime))
	} else {
		fmt.Println(viz.Populations(outcome.Labels, outcome.Traces, outcome.Grid.TotalTime))
	}
	fmt.Println()
	fmt.Println(viz.Activities(outcome.Labels, outcome.Activities(), outcome.Grid.TotalTime))
	fmt.Println()

	for i, label := range outcome.Labels {
		final := outcome.Traces[i][len(outcome.Traces[i])-1]
		fmt.Println(viz.SummaryLine(label, fmt.Sprintf("final %.6g   λ %.6g /y", final, outcome.Lambdas[i])))
	}
	fmt.Println(viz.SummaryLine("grid", fmt.Sprintf("%d steps, dt %.6g y over %.6g y", outcome.Grid.Steps, outcome.Grid.Dt(), outcome.Grid.TotalTime)))

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(storage.RunMetadata{
		Mode:              resolved.Mode,
		Parent:            outcome.Labels[0],
		InitialPopulation: resolved.InitialPopulation,
		Steps:             resolved.Steps,
		Dt:                outcome.Grid.Dt(),
		TotalTime:         resolved.TotalTime,
		BranchingRatioA:   resolved.BranchingRatioA,
	}, outcome)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(viz.SummaryLine("run id", runID))
	return nil
}

func listNuclides(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SYMBOL\tNAME\tHALF-LIFE (y)\tCHAIN DAUGHTER")

	for _, n := range nuclide.All() {
		daughter := "-"
		if n.HasChainSuggestion() {
			daughter = fmt.Sprintf("%s (t½ %.3g y)", n.IdealDaughter, n.DaughterHalfLife)
		}
		fmt.Fprintf(w, "%s\t%s\t%.4g\t%s\n", n.Symbol, n.Name, n.HalfLife, daughter)
	}

	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMODE\tPARENT\tTIME\tSTEPS\tDT (y)\tTOTAL (y)")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%.4g\t%.4g\n",
			run.ID,
			run.Mode,
			run.Parent,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Dt,
			run.TotalTime,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	_, names, cols, err := st.LoadTraces(runID)
	if err != nil {
		return err
	}
	if len(cols) == 0 || len(cols[0]) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Println(viz.Header(fmt.Sprintf("%s  (%s, parent %s)", meta.ID, meta.Mode, meta.Parent)))
	fmt.Println()
	fmt.Println(viz.Graph(fmt.Sprintf("populations over %.4g years", meta.TotalTime), names, cols))

	// Activity plots reuse the decay constants recorded at save time, matched
	// to columns by label. The analytic column has no constant and is skipped.
	lambdaByLabel := make(map[string]float64, len(meta.Labels))
	for i, label := range meta.Labels {
		if i < len(meta.Lambdas) {
			lambdaByLabel[label] = meta.Lambdas[i]
		}
	}

	actNames := make([]string, 0, len(names))
	actCols := make([][]float64, 0, len(names))
	for i, name := range names {
		lambda, ok := lambdaByLabel[name]
		if !ok {
			continue
		}
		act := make([]float64, len(cols[i]))
		for j, v := range cols[i] {
			act[j] = lambda * v
		}
		actNames = append(actNames, name+" activity")
		actCols = append(actCols, act)
	}
	if len(actCols) > 0 {
		fmt.Println()
		fmt.Println(viz.Graph(fmt.Sprintf("activity (decays/year) over %.4g years", meta.TotalTime), actNames, actCols))
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	times, names, cols, err := st.LoadTraces(args[0])
	if err != nil {
		return err
	}

	return storage.WriteCSV(os.Stdout, times, names, cols)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	times, names, cols, err := st.LoadTraces(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSONStdout(meta, times, names, cols)
}

// compareStepCounts integrates the same single-nuclide decay at a range of
// step counts and reports the error against the exact solution, showing
// first-order convergence and the coarse-grid overshoot.
func compareStepCounts(cmd *cobra.Command, args []string) error {
	record, ok := nuclide.Get(args[0])
	if !ok {
		return fmt.Errorf("unknown nuclide: %s (see 'decaylab nuclides')", args[0])
	}

	d := nuclide.SingleDefaults(record)
	if cmd.Flags().Changed("n0") {
		d.N0 = initialPopulation
	}
	if cmd.Flags().Changed("time") {
		d.TotalTime = totalTime
	}

	sys, err := models.NewSingle(decay.Species{Symbol: record.Symbol, Name: record.Name, HalfLife: record.HalfLife})
	if err != nil {
		return err
	}

	fmt.Printf("euler vs analytic for %s (N0=%.4g, time=%.4g y)\n\n", record.Name, d.N0, d.TotalTime)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEPS\tDT (y)\tλ·DT\tFINAL (EULER)\tFINAL (EXACT)\tREL ERROR")

	for _, n := range compareSteps {
		g, err := decay.NewGrid(d.TotalTime, n)
		if err != nil {
			return err
		}

		sim := decay.New(sys, decay.NewEuler())
		result, err := sim.Run(decay.State{d.N0}, g)
		if err != nil {
			return err
		}

		exact := sys.Analytic(d.N0, g)
		final := result.States[len(result.States)-1][0]
		exactFinal := exact[len(exact)-1]

		relErr := 0.0
		if exactFinal != 0 {
			relErr = (final - exactFinal) / exactFinal
		}

		fmt.Fprintf(w, "%d\t%.4g\t%.4g\t%.8g\t%.8g\t%+.3e\n",
			n, g.Dt(), sys.Lambdas()[0]*g.Dt(), final, exactFinal, relErr)
	}

	return w.Flush()
}
