package tui

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jbeckham/keymap-tui/internal/keymap"
	"github.com/jbeckham/keymap-tui/internal/layout"
)

const (
	keyWidth  = 9   // inner width of a key cell
	mmPerLine = 6.0 // physical stagger represented by one terminal line
	halfGap   = "    "
)

// board draws a layer on its physical layout.
type board struct {
	layout  layout.Layout
	tint    lipgloss.Color
	showRaw bool
}

// render draws every key of t. selected is the highlighted key index (-1
// for none); matches marks keys hit by the quick filter.
func (b board) render(t *layerTab, selected int, matches map[int]bool) string {
	n := len(b.layout.ColumnStagger)
	columns := make([][]layout.Position, 2*n)
	var leftThumbs, rightThumbs []layout.Position

	for _, p := range b.layout.Positions {
		switch {
		case p.Row == b.layout.ThumbRow && p.Side == layout.Left:
			leftThumbs = append(leftThumbs, p)
		case p.Row == b.layout.ThumbRow:
			rightThumbs = append(rightThumbs, p)
		default:
			x := b.layout.GridX(p)
			if x >= 0 && x < len(columns) {
				columns[x] = append(columns[x], p)
			}
		}
	}

	renderColumn := func(ps []layout.Position) string {
		if len(ps) == 0 {
			return ""
		}
		sort.Slice(ps, func(i, j int) bool { return ps[i].Row < ps[j].Row })
		cells := make([]string, len(ps))
		for i, p := range ps {
			cells[i] = b.renderKey(t, p, selected, matches)
		}
		pad := b.layout.StaggerLines(ps[0], mmPerLine)
		return lipgloss.NewStyle().PaddingTop(pad).Render(lipgloss.JoinVertical(lipgloss.Left, cells...))
	}

	renderThumbs := func(ps []layout.Position) string {
		sort.Slice(ps, func(i, j int) bool { return b.layout.GridX(ps[i]) < b.layout.GridX(ps[j]) })
		cells := make([]string, len(ps))
		for i, p := range ps {
			th := b.layout.ThumbFor(p)
			pad := int(math.Round((th.Top - b.layout.InnerThumb.Top) / mmPerLine))
			if pad < 0 {
				pad = 0
			}
			cells[i] = lipgloss.NewStyle().PaddingTop(pad).Render(b.renderKey(t, p, selected, matches))
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}

	leftCols := make([]string, 0, n)
	rightCols := make([]string, 0, n)
	for x := 0; x < n; x++ {
		leftCols = append(leftCols, renderColumn(columns[x]))
		rightCols = append(rightCols, renderColumn(columns[n+x]))
	}

	left := lipgloss.JoinVertical(lipgloss.Right,
		lipgloss.JoinHorizontal(lipgloss.Top, leftCols...),
		renderThumbs(leftThumbs),
	)
	right := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, rightCols...),
		renderThumbs(rightThumbs),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, halfGap, right)
}

// renderKey draws a single key cell: role marker, primary label, hold
// label and optionally the raw binding.
func (b board) renderKey(t *layerTab, p layout.Position, selected int, matches map[int]bool) string {
	style := keyStyle
	if p.Nub {
		style = keyNubStyle
	}

	c, ok := t.cell(p.Index)
	if !ok {
		return keyEmptyStyle.Render(b.lines("", "", "", ""))
	}

	var marker, primary, hold string
	switch {
	case c.err != nil:
		primary = keyErrorStyle.Render("?")
		hold = keyErrorStyle.Render(c.token)
	default:
		marker = markerStyle.Render(roleMarker(c.desc))
		primary = renderLabel(c.primary())
		if h, ok := c.hold(); ok {
			hold = renderLabel(h)
			if c.desc.Layer == keymap.LayerHold {
				hold = markerStyle.Render(iconGlyph(keymap.IconAnglesUp, keymap.TransformNone)) + " " + hold
			}
			hold = holdStyle.Render(hold)
		}
	}

	border := b.tint
	if c.err == nil && c.desc.Transparent {
		border = lipgloss.Color("238")
	}
	switch {
	case p.Index == selected:
		style = style.BorderForeground(keySelectedBorder).Bold(true)
	case matches[p.Index]:
		style = style.BorderForeground(keyMatchBorder)
	default:
		style = style.BorderForeground(border)
	}

	return style.Render(b.lines(marker, primary, hold, rawStyle.Render(c.token)))
}

// lines joins the label rows of a key, truncating each to fit. The raw row
// is dropped unless showRaw is set.
func (b board) lines(marker, primary, hold, raw string) string {
	rows := []string{marker, primary, hold}
	if b.showRaw {
		rows = append(rows, raw)
	}
	for i, r := range rows {
		rows[i] = ansi.Truncate(r, keyWidth, "…")
	}
	return strings.Join(rows, "\n")
}
