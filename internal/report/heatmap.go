// internal/report/heatmap.go
package report

import (
	"math"
	"strings"

	"github.com/benchlens/benchlens/internal/metrics"
	"github.com/benchlens/benchlens/internal/util"
	"github.com/charmbracelet/lipgloss"
)

const (
	heatmapCellWidth  = 9
	heatmapLabelWidth = 24
)

// heatRamp is the low-to-high color scale for heatmap cells.
var heatRamp = []lipgloss.Color{"17", "24", "31", "72", "178", "208", "196"}

var (
	heatLabelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	heatHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230"))
	heatEmptyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	heatTitleStyle  = lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
)

// RenderHeatmap renders a dense models×prompts matrix as a colored grid.
// The color scale spans the matrix min/max; NaN cells render dim. The
// matrix must have been built for the given model and prompt orderings.
func RenderHeatmap(matrix [][]float64, models, prompts []string, metric metrics.MetricKind) string {
	min, max := metrics.MinMax(matrix)

	var b strings.Builder

	title := metric.Label()
	if unit := metric.Unit(); unit != "" {
		title += " (" + unit + ")"
	}
	b.WriteString(heatTitleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(strings.Repeat(" ", heatmapLabelWidth))
	for _, prompt := range prompts {
		b.WriteString(heatHeaderStyle.Render(util.PadRight(prompt, heatmapCellWidth)))
	}
	b.WriteString("\n")

	for i, model := range models {
		b.WriteString(heatLabelStyle.Render(util.PadRight(model, heatmapLabelWidth)))
		for j := range prompts {
			b.WriteString(renderCell(matrix[i][j], min, max))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderCell(v, min, max float64) string {
	if math.IsNaN(v) {
		return heatEmptyStyle.Render(util.PadRight("·", heatmapCellWidth))
	}
	text := util.PadRight(util.FormatFloat(v, 3), heatmapCellWidth)
	style := lipgloss.NewStyle().
		Background(rampColor(v, min, max)).
		Foreground(lipgloss.Color("232"))
	return style.Render(text)
}

// rampColor maps v onto the heat ramp given the matrix bounds. A flat
// matrix (min == max) lands in the middle of the ramp.
func rampColor(v, min, max float64) lipgloss.Color {
	frac := 0.5
	if max > min {
		frac = (v - min) / (max - min)
	}
	idx := int(frac * float64(len(heatRamp)))
	if idx < 0 {
		idx = 0
	}
	if idx > len(heatRamp)-1 {
		idx = len(heatRamp) - 1
	}
	return heatRamp[idx]
}
