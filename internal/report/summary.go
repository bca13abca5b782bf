// internal/report/summary.go
// Package report renders engine output for the terminal and exports it to
// CSV/JSON. It is a pure consumer of the metrics package: long relations,
// KPI summaries, and dense matrices go in, styled strings and files come
// out.
package report

import (
	"fmt"

	"github.com/benchlens/benchlens/internal/metrics"
	"github.com/benchlens/benchlens/internal/util"
	"github.com/charmbracelet/lipgloss"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1).
			MarginRight(1)
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	cardValueStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230"))
	naStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// kpiValue renders one summary field, using "n/a" for missing data.
func kpiValue(v *float64, decimals int, unit string) string {
	if v == nil {
		return naStyle.Render("n/a")
	}
	text := util.FormatFloat(*v, decimals)
	if unit != "" {
		text += " " + unit
	}
	return cardValueStyle.Render(text)
}

// RenderKpiCards renders the KPI summary as a row of bordered cards.
func RenderKpiCards(summary metrics.KpiSummary) string {
	cards := []struct {
		title string
		value string
	}{
		{"Mean Quality", kpiValue(summary.MeanQuality, 2, "")},
		{"Mean Latency", kpiValue(summary.MeanLatency, 3, "s")},
		{"P95 Latency", kpiValue(summary.P95Latency, 3, "s")},
		{"Mean Energy", kpiValue(summary.MeanEnergy, 4, "Wh")},
		{"Total Energy", kpiValue(summary.TotalEnergy, 4, "Wh")},
		{"Quality/Wh", kpiValue(summary.QualityPerWh, 2, "")},
	}

	rendered := make([]string, 0, len(cards))
	for _, card := range cards {
		body := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(card.title), card.value)
		rendered = append(rendered, cardStyle.Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
