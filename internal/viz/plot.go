package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

const (
	plotWidth  = 80
	plotHeight = 12
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Cyan,
	asciigraph.Goldenrod,
	asciigraph.Orchid,
	asciigraph.SpringGreen,
}

// Graph plots one or more equally long series on a shared axis, with a
// legend entry per series.
func Graph(caption string, names []string, series [][]float64) string {
	if len(series) == 0 {
		return ""
	}

	colors := make([]asciigraph.AnsiColor, len(series))
	for i := range series {
		colors[i] = seriesColors[i%len(seriesColors)]
	}

	return asciigraph.PlotMany(series,
		asciigraph.Height(plotHeight),
		asciigraph.Width(plotWidth),
		asciigraph.Caption(caption),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(names...),
	)
}

// Populations renders the population traces over time.
func Populations(names []string, traces [][]float64, totalTime float64) string {
	caption := fmt.Sprintf("nuclide populations over %.4g years", totalTime)
	return Graph(caption, names, traces)
}

// Activities renders the A = λN series per species.
func Activities(names []string, activities [][]float64, totalTime float64) string {
	legend := make([]string, len(names))
	for i, n := range names {
		legend[i] = n + " activity"
	}
	caption := fmt.Sprintf("activity (decays/year) over %.4g years", totalTime)
	return Graph(caption, legend, activities)
}

// NumericalVsAnalytic overlays the Euler trace and the exact solution.
func NumericalVsAnalytic(label string, numerical, analytic []float64, totalTime float64) string {
	caption := fmt.Sprintf("%s decay over %.4g years", label, totalTime)
	return Graph(caption, []string{"numerical (euler)", "analytical"}, [][]float64{numerical, analytic})
}

// SummaryLine formats one labeled stat for plot footers.
func SummaryLine(label string, value string) string {
	return "  " + Label.Render(fmt.Sprintf("%-18s", label)) + Value.Render(value)
}

// Header renders a section title with a rule underneath.
func Header(text string) string {
	return Title.Render(text) + "\n" + Dimmer.Render(strings.Repeat("─", len(text)))
}
