package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
)

// columnDef holds display metadata for a summary column.
type columnDef struct {
	title    string
	minWidth int
	flex     bool // if true, absorbs remaining space
}

// summaryColumns are the columns of the layer summary, in display order.
var summaryColumns = []columnDef{
	{title: "#", minWidth: 3},
	{title: "Layer", minWidth: 12, flex: true},
	{title: "Keys", minWidth: 6},
	{title: "Trans", minWidth: 6},
	{title: "None", minWidth: 6},
	{title: "Layer keys", minWidth: 11},
	{title: "Errors", minWidth: 7},
}

// buildColumns creates bubbles table columns, auto-sizing to the given
// total width.
func buildColumns(defs []columnDef, totalWidth int) []table.Column {
	cols := make([]table.Column, len(defs))
	fixedTotal := 0
	flexCount := 0

	for i, def := range defs {
		cols[i] = table.Column{Title: def.title, Width: def.minWidth}
		if def.flex {
			flexCount++
		} else {
			fixedTotal += def.minWidth
		}
	}

	// Distribute remaining width to flex columns
	if flexCount > 0 {
		// Reserve a small gap per column for padding
		padding := len(defs) * 2
		remaining := totalWidth - fixedTotal - padding
		if remaining < 0 {
			remaining = 0
		}
		perFlex := remaining / flexCount
		for i, def := range defs {
			if def.flex {
				cols[i].Width = max(perFlex, def.minWidth)
			}
		}
	}

	return cols
}

// summaryRows converts layer tabs to table rows.
func summaryRows(tabs []layerTab) []table.Row {
	rows := make([]table.Row, len(tabs))
	for i := range tabs {
		s := tabs[i].stats()
		rows[i] = table.Row{
			strconv.Itoa(tabs[i].index + 1),
			tabs[i].name,
			strconv.Itoa(s.keys),
			strconv.Itoa(s.transparent),
			strconv.Itoa(s.disabled),
			strconv.Itoa(s.layerKeys),
			strconv.Itoa(s.errors),
		}
	}
	return rows
}
