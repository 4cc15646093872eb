// Package tui is the interactive front end: choose a mode and nuclide,
// adjust parameters pre-filled with catalog suggestions, run, inspect the
// plots and run again. The engine stays call-scoped; each run builds a
// fresh experiment, so the loop here is iterative, never re-entrant.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zdaoudi/decaylab/internal/config"
	"github.com/zdaoudi/decaylab/internal/experiment"
	"github.com/zdaoudi/decaylab/internal/nuclide"
	"github.com/zdaoudi/decaylab/internal/viz"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

var modeInfo = map[string]string{
	"single":    "one nuclide, euler vs analytic",
	"chain":     "parent -> daughter",
	"branching": "parent -> A and B",
}

type state int

const (
	stateMenu state = iota
	stateNuclide
	stateParams
	stateResults
)

type resultView int

const (
	viewPopulations resultView = iota
	viewActivities
	viewRatio
)

type model struct {
	state  state
	cursor int

	modes    []string
	mode     string
	nuclides []nuclide.Nuclide
	parent   nuclide.Nuclide

	params      map[string]float64
	paramNames  []string
	paramCursor int
	editing     bool
	editBuf     string

	outcome *experiment.Outcome
	view    resultView
	runErr  error

	width  int
	height int
}

func NewApp() *model {
	return &model{
		state:    stateMenu,
		modes:    []string{"single", "chain", "branching"},
		nuclides: nuclide.All(),
		params:   make(map[string]float64),
		width:    80,
		height:   24,
	}
}

// Run starts the interactive loop and blocks until the user quits.
func Run() error {
	p := tea.NewProgram(NewApp())
	_, err := p.Run()
	return err
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateNuclide:
		return m.nuclideKey(msg)
	case stateParams:
		return m.paramsKey(msg)
	case stateResults:
		return m.resultsKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.modes)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.mode = m.modes[m.cursor]
		m.state = stateNuclide
		m.cursor = 0
	}
	return m, nil
}

func (m model) nuclideKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateMenu
		m.cursor = 0
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.nuclides)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.parent = m.nuclides[m.cursor]
		m.setParams()
		m.state = stateParams
		m.paramCursor = 0
	}
	return m, nil
}

func (m model) paramsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			if _, err := fmt.Sscanf(m.editBuf, "%g", &val); err == nil {
				m.params[m.paramNames[m.paramCursor]] = val
			}
			m.editing = false
			m.editBuf = ""
		case "esc":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e' || c == '+' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateNuclide
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		m.editing = true
		m.editBuf = ""
	case "s", "r":
		m.run()
		if m.runErr == nil {
			m.state = stateResults
			m.view = viewPopulations
		}
		return m, tea.ClearScreen
	}
	return m, nil
}

func (m model) resultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "p":
		m.view = viewPopulations
	case "a":
		m.view = viewActivities
	case "d":
		if m.mode != "single" {
			m.view = viewRatio
		}
	case "r":
		m.run()
		return m, tea.ClearScreen
	case "esc", "c":
		m.state = stateParams
		return m, tea.ClearScreen
	case "n", "enter":
		m.state = stateMenu
		m.cursor = 0
		m.outcome = nil
		m.runErr = nil
		return m, tea.ClearScreen
	}
	return m, nil
}

func (m *model) setParams() {
	var d nuclide.Defaults
	if m.mode == "single" {
		d = nuclide.SingleDefaults(m.parent)
	} else {
		d = nuclide.ChainDefaults(m.parent)
	}

	m.params = map[string]float64{
		"population": d.N0,
		"steps":      float64(d.Steps),
		"total time": d.TotalTime,
	}
	m.paramNames = []string{"population", "steps", "total time"}

	if m.mode == "chain" || m.mode == "branching" {
		hl := m.parent.DaughterHalfLife
		if hl <= 0 {
			hl = 1.0
		}
		m.params["daughter t½"] = hl
		m.paramNames = append(m.paramNames, "daughter t½")
	}
	if m.mode == "branching" {
		m.params["daughter B t½"] = 1.0
		m.params["ratio A"] = config.DefaultBranchingRatioA
		m.paramNames = append(m.paramNames, "daughter B t½", "ratio A")
	}
}

func (m *model) run() {
	cfg := config.DefaultConfig()
	cfg.Mode = m.mode
	cfg.Nuclide = m.parent.Symbol
	cfg.InitialPopulation = m.params["population"]
	cfg.Steps = int(m.params["steps"])
	cfg.TotalTime = m.params["total time"]

	if m.mode == "chain" || m.mode == "branching" {
		sym := m.parent.IdealDaughter
		if sym == "" {
			sym = "daughter"
		}
		cfg.Daughter = config.SpeciesConfig{Symbol: sym, Name: sym, HalfLife: m.params["daughter t½"]}
	}
	if m.mode == "branching" {
		cfg.DaughterB = config.SpeciesConfig{Symbol: "daughter B", Name: "daughter B", HalfLife: m.params["daughter B t½"]}
		cfg.BranchingRatioA = m.params["ratio A"]
	}

	exp, err := experiment.New(cfg)
	if err != nil {
		m.runErr = err
		return
	}
	m.outcome, m.runErr = exp.Run()
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateNuclide:
		return m.viewNuclide()
	case stateParams:
		return m.viewParams()
	case stateResults:
		return m.viewResults()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("         " + cyan.Render("d e c a y l a b") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")

	for i, name := range m.modes {
		desc := modeInfo[name]
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-12s", name)) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-12s", name)) + dimmer.Render(desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter next   q quit") + "\n")

	return b.String()
}

func (m model) viewNuclide() string {
	var b strings.Builder

	b.WriteString("\n      " + cyan.Render(m.mode) + "  " + dim.Render("choose the parent nuclide") + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 44)) + "\n\n")

	// Keep the cursor visible in a window of rows.
	window := m.height - 10
	if window < 5 {
		window = 5
	}
	start := 0
	if m.cursor >= window {
		start = m.cursor - window + 1
	}
	end := start + window
	if end > len(m.nuclides) {
		end = len(m.nuclides)
	}

	for i := start; i < end; i++ {
		n := m.nuclides[i]
		line := fmt.Sprintf("%-18s %-8s t½ %.3g y", n.Name, n.Symbol, n.HalfLife)
		if n.HasChainSuggestion() {
			line += "  → " + n.IdealDaughter
		}
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(line) + "\n")
		} else {
			b.WriteString("        " + dim.Render(line) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter next   esc back   q quit") + "\n")

	return b.String()
}

func (m model) viewParams() string {
	var b strings.Builder

	b.WriteString("\n      " + cyan.Render(m.parent.Name) + "  " + dim.Render(m.mode) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 36)) + "\n\n")

	for i, name := range m.paramNames {
		val := fmt.Sprintf("%12.6g", m.params[name])
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%12s", m.editBuf+"▋")
		}
		if i == m.paramCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-16s", name)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-16s", name)) + dim.Render(val) + "\n")
		}
	}

	if m.runErr != nil {
		b.WriteString("\n      " + red.Render(m.runErr.Error()) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  enter edit  s run  esc back  q quit") + "\n")

	return b.String()
}

func (m model) viewResults() string {
	if m.outcome == nil {
		return "\n      " + dim.Render("no results") + "\n"
	}
	out := m.outcome

	var b strings.Builder
	b.WriteString("\n      " + cyan.Render(m.parent.Name) + "  " + dim.Render(m.mode) + "\n\n")

	switch m.view {
	case viewActivities:
		b.WriteString(viz.Activities(out.Labels, out.Activities(), out.Grid.TotalTime))
	case viewRatio:
		ratio, err := out.Ratio()
		if err == nil {
			caption := fmt.Sprintf("%s/%s population ratio", out.Labels[1], out.Labels[0])
			b.WriteString(viz.Graph(caption, []string{"ratio"}, [][]float64{ratio}))
		}
	default:
		if out.Analytic != nil {
			b.WriteString(viz.NumericalVsAnalytic(out.Labels[0], out.Traces[0], out.Analytic, out.Grid.TotalTime))
		} else {
			b.WriteString(viz.Populations(out.Labels, out.Traces, out.Grid.TotalTime))
		}
	}

	b.WriteString("\n\n")
	for i, label := range out.Labels {
		final := out.Traces[i][len(out.Traces[i])-1]
		b.WriteString(viz.SummaryLine(label, fmt.Sprintf("final %.6g   λ %.6g /y", final, out.Lambdas[i])) + "\n")
	}
	b.WriteString(viz.SummaryLine("grid", fmt.Sprintf("%d steps, dt %.6g y", out.Grid.Steps, out.Grid.Dt())) + "\n")

	b.WriteString("\n")
	keys := "p populations  a activity  r rerun  c params  n new  q quit"
	if m.mode != "single" {
		keys = "p populations  a activity  d ratio  r rerun  c params  n new  q quit"
	}
	b.WriteString(dim.Render("      "+keys) + "\n")

	return b.String()
}
