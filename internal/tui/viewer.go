// internal/tui/viewer.go
// Package tui provides the interactive terminal viewer for benchmark data.
// It is a thin Bubble Tea shell over the metrics engine: every selection
// change recomputes the KPI summary and heatmap from the in-memory long
// relation.
package tui

import (
	"fmt"
	"strings"

	"github.com/benchlens/benchlens/internal/metrics"
	"github.com/benchlens/benchlens/internal/report"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// allModels is the selector entry that keeps every model in scope.
const allModels = "All models"

// viewState represents the current view or screen of the application.
type viewState int

const (
	// viewModelSelector is the state where the user picks a model scope.
	viewModelSelector viewState = iota
	// viewDashboard is the state showing the heatmap and KPI cards.
	viewDashboard
)

var (
	headerStyle = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// item represents a selectable entry in the model list.
type item struct {
	title string
	desc  string
}

// Title returns the title of the list item.
func (i item) Title() string { return i.title }

// Description returns the description of the list item.
func (i item) Description() string { return i.desc }

// FilterValue returns the title of the item, used for filtering.
func (i item) FilterValue() string { return i.title }

// model is the main application model for the Bubble Tea UI.
type model struct {
	records       []metrics.LongRecord
	state         viewState
	modelList     list.Model
	viewport      viewport.Model
	selectedModel string
	metricIdx     int
	width, height int
}

// initialModel creates and initializes a new model over the long relation.
func initialModel(records []metrics.LongRecord) *model {
	items := []list.Item{item{title: allModels, desc: "Aggregate across every model"}}
	for _, name := range metrics.Models(records) {
		items = append(items, item{title: name, desc: "Restrict the view to this model"})
	}

	modelList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	modelList.Title = "Select a model scope"

	return &model{
		records:   records,
		state:     viewModelSelector,
		modelList: modelList,
		viewport:  viewport.New(100, 20),
	}
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update is the central update function for the Bubble Tea model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.state == viewDashboard {
				m.state = viewModelSelector
				return m, nil
			}
		case "tab":
			if m.state == viewDashboard {
				m.metricIdx = nextMetric(m.metricIdx)
				m.refreshContent()
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.modelList.SetSize(msg.Width-2, msg.Height-4)
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 4
	}

	switch m.state {
	case viewModelSelector:
		m.modelList, cmd = m.modelList.Update(msg)
		cmds = append(cmds, cmd)
		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
			if selected, ok := m.modelList.SelectedItem().(item); ok {
				m.selectedModel = selected.Title()
				if m.selectedModel == allModels {
					m.selectedModel = ""
				}
				m.state = viewDashboard
				m.refreshContent()
			}
		}

	case viewDashboard:
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// refreshContent recomputes the dashboard for the current scope and metric.
func (m *model) refreshContent() {
	m.viewport.SetContent(dashboardContent(m.records, m.selectedModel, currentMetric(m.metricIdx)))
	m.viewport.GotoTop()
}

// View renders the application's UI based on the current state of the model.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.state {
	case viewModelSelector:
		return lipgloss.NewStyle().Margin(1, 2).Render(m.modelList.View())

	case viewDashboard:
		scope := m.selectedModel
		if scope == "" {
			scope = allModels
		}
		header := lipgloss.JoinHorizontal(lipgloss.Top,
			headerStyle.Render(fmt.Sprintf("Scope: %s", scope)),
			headerStyle.MarginLeft(1).Render(fmt.Sprintf("Metric: %s", currentMetric(m.metricIdx))),
		)
		help := helpStyle.Render(" (tab to cycle metric, esc to change scope, q to quit)")
		return header + help + "\n\n" + m.viewport.View()

	default:
		return "Unknown state"
	}
}

// currentMetric maps a cycling index onto the metric enumeration.
func currentMetric(idx int) metrics.MetricKind {
	return metrics.AllMetricKinds[idx%len(metrics.AllMetricKinds)]
}

// nextMetric advances the cycling index, wrapping at the end.
func nextMetric(idx int) int {
	return (idx + 1) % len(metrics.AllMetricKinds)
}

// dashboardContent builds the KPI cards plus heatmap for one scope/metric.
func dashboardContent(records []metrics.LongRecord, selectedModel string, kind metrics.MetricKind) string {
	slice := metrics.FilterModel(records, selectedModel)
	if len(slice) == 0 {
		return "No usable records in scope."
	}

	var b strings.Builder
	b.WriteString(report.RenderKpiCards(metrics.ComputeKpis(slice)))
	b.WriteString("\n\n")

	models := metrics.Models(slice)
	prompts := metrics.Prompts(slice)
	matrix := metrics.BuildMatrix(slice, kind, models, prompts)
	b.WriteString(report.RenderHeatmap(matrix, models, prompts, kind))
	return b.String()
}

// Start runs the interactive viewer over an already-loaded long relation.
func Start(records []metrics.LongRecord) error {
	p := tea.NewProgram(initialModel(records), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running viewer: %w", err)
	}
	return nil
}
