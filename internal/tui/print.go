package tui

import (
	"fmt"
	"strings"

	"github.com/jbeckham/keymap-tui/internal/keymap"
	"github.com/jbeckham/keymap-tui/internal/layout"
)

// RenderAll draws every layer of m one after another, for printing outside
// the interactive viewer. Unlike the viewer it stops at the first binding
// that fails to decode.
func RenderAll(m *keymap.LayerMap, opts Options) (string, error) {
	if opts.Layout.Size() == 0 {
		opts.Layout = layout.Ferris()
	}
	tabs := newLayerTabs(m)

	var b strings.Builder
	for i := range tabs {
		t := &tabs[i]
		if err := t.firstError(); err != nil {
			return "", fmt.Errorf("layer %s: %w", t.name, err)
		}
		tint := tintFor(opts.Tints, t.name)
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(titleStyle.Foreground(tint).Render(fmt.Sprintf("%s (%d)", t.name, i+1)))
		b.WriteString("\n")
		brd := board{layout: opts.Layout, tint: tint, showRaw: opts.ShowRaw}
		b.WriteString(brd.render(t, -1, nil))
	}
	return b.String(), nil
}
