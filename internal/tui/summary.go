package tui

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Ensure summaryView implements the view interface.
var _ view = (*summaryView)(nil)

var (
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("12")).
				BorderBottom(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("240"))

	tableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("12")).
				Bold(true)

	tableCellStyle = lipgloss.NewStyle()
)

// summaryView lists every layer with binding counts.
type summaryView struct {
	table table.Model
}

func newSummaryView(tabs []layerTab, active, width, height int) summaryView {
	t := table.New(
		table.WithColumns(buildColumns(summaryColumns, width)),
		table.WithRows(summaryRows(tabs)),
		table.WithFocused(true),
		table.WithHeight(summaryHeight(height)),
		table.WithWidth(width),
	)
	s := table.DefaultStyles()
	s.Header = tableHeaderStyle
	s.Selected = tableSelectedStyle
	s.Cell = tableCellStyle
	t.SetStyles(s)
	t.SetCursor(active)
	return summaryView{table: t}
}

// summaryHeight returns the table height for a terminal height.
func summaryHeight(height int) int {
	// Reserve: tab bar (2) + status bar (1) + header (2)
	return max(height-5, 3)
}

func (v summaryView) title() string {
	return "Summary"
}

// setSize updates the table dimensions.
func (v *summaryView) setSize(width, height int) {
	v.table.SetColumns(buildColumns(summaryColumns, width))
	v.table.SetWidth(width)
	v.table.SetHeight(summaryHeight(height))
}

// selected returns the layer index under the cursor.
func (v summaryView) selected() int {
	return v.table.Cursor()
}

// Update handles table navigation.
func (v *summaryView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return cmd
}

// View renders the table.
func (v summaryView) View() string {
	return v.table.View()
}
