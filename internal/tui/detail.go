package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jbeckham/keymap-tui/internal/keymap"
	"github.com/jbeckham/keymap-tui/internal/layout"
)

// Ensure keyDetailView implements the view interface.
var _ view = (*keyDetailView)(nil)

// --- Styles for detail view ---

var (
	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("12"))

	detailSectionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				MarginTop(1)

	detailLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Width(14)

	detailValueStyle = lipgloss.NewStyle()

	detailCurrentStyle = detailLabelStyle.
				Foreground(lipgloss.Color("11")) // yellow
)

// behaviorNames are the long names shown next to binding names.
var behaviorNames = map[keymap.Behavior]string{
	keymap.BehaviorKeyPress:       "key press",
	keymap.BehaviorModTap:         "mod-tap",
	keymap.BehaviorStickyKey:      "sticky key",
	keymap.BehaviorBluetooth:      "bluetooth",
	keymap.BehaviorOutput:         "output select",
	keymap.BehaviorTransparent:    "transparent",
	keymap.BehaviorNone:           "none",
	keymap.BehaviorLayerTap:       "layer-tap",
	keymap.BehaviorToLayer:        "to layer",
	keymap.BehaviorStickyLayer:    "sticky layer",
	keymap.BehaviorMomentaryLayer: "momentary layer",
}

// positionBinding is the binding at one key position on some layer.
type positionBinding struct {
	layer string
	token string
}

// keyDetailView shows everything known about one key.
type keyDetailView struct {
	layer    string
	cell     keyCell
	pos      layout.Position
	hasPos   bool
	others   []positionBinding // same position on every layer
	viewport viewport.Model
	width    int
	height   int
}

func newKeyDetailView(layer string, cell keyCell, pos layout.Position, hasPos bool, others []positionBinding, width, height int) keyDetailView {
	v := keyDetailView{
		layer:  layer,
		cell:   cell,
		pos:    pos,
		hasPos: hasPos,
		others: others,
		width:  width,
		height: height,
	}
	v.buildViewport()
	return v
}

func (v keyDetailView) title() string {
	return fmt.Sprintf("%s #%d", v.layer, v.cell.index)
}

// setSize rebuilds the viewport for a new terminal size.
func (v *keyDetailView) setSize(width, height int) {
	v.width = width
	v.height = height
	v.buildViewport()
}

// buildViewport creates the viewport with rendered content.
func (v *keyDetailView) buildViewport() {
	// Height available for the viewport: total height minus tab bar (2) and status bar (1)
	vpHeight := v.height - 3
	if vpHeight < 3 {
		vpHeight = 3
	}

	vp := viewport.New(v.width, vpHeight)
	vp.SetContent(v.renderContent())
	vp.KeyMap.Up.SetKeys("up", "k")
	vp.KeyMap.Down.SetKeys("down", "j")
	v.viewport = vp
}

// renderContent builds the full detail text.
func (v *keyDetailView) renderContent() string {
	var b strings.Builder
	c := v.cell

	b.WriteString(detailTitleStyle.Render(fmt.Sprintf("%s  key %d", v.layer, c.index)))
	b.WriteString("\n\n")

	row := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(detailLabelStyle.Render(label))
		b.WriteString(detailValueStyle.Render(value))
		b.WriteString("\n")
	}

	if v.hasPos {
		row("Position", fmt.Sprintf("%s half, row %d, col %d", v.pos.Side, v.pos.Row, v.pos.Col))
		if v.pos.Nub {
			row("", "homing key")
		}
	}
	row("Binding", c.token)

	if c.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(c.err.Error()))
		b.WriteString("\n")
	} else {
		d := c.desc
		row("Behavior", fmt.Sprintf("%s (%s)", d.Behavior, behaviorNames[d.Behavior]))
		if d.Primary != "" {
			row("Tap", fmt.Sprintf("%s  (%s)", renderLabel(c.primary()), d.Primary))
		}
		if h, ok := c.hold(); ok {
			row("Hold", fmt.Sprintf("%s  (%s)", renderLabel(h), d.Hold))
		}
		row("Layer", d.Layer.String())
		row("Bluetooth", d.Bluetooth.String())
		if d.Transparent {
			row("Transparent", "falls through to the next active layer")
		}
		if d.Disabled {
			row("Disabled", "does nothing")
		}
	}

	if len(v.others) > 0 {
		b.WriteString(detailSectionStyle.Render("Same position on every layer"))
		b.WriteString("\n")
		for _, o := range v.others {
			name := detailLabelStyle.Render(o.layer)
			if o.layer == v.layer {
				name = detailCurrentStyle.Render(o.layer)
			}
			b.WriteString(name)
			b.WriteString(o.token)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// Update handles viewport scrolling.
func (v *keyDetailView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return cmd
}

// View renders the detail view.
func (v keyDetailView) View() string {
	return v.viewport.View()
}
