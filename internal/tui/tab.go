package tui

import (
	"strings"

	"github.com/jbeckham/keymap-tui/internal/keymap"
)

// keyCell is one binding of a layer, decoded.
type keyCell struct {
	index int
	token string
	desc  keymap.KeyDescriptor
	err   error // decode failure; desc is zero when set
}

// primary returns the label drawn in the middle of the key.
func (c keyCell) primary() keymap.Label {
	return keymap.LabelFor(c.desc.Primary)
}

// hold returns the label drawn at the bottom of the key, if any.
func (c keyCell) hold() (keymap.Label, bool) {
	if !c.desc.HasHold {
		return keymap.Label{}, false
	}
	return keymap.LabelFor(c.desc.Hold), true
}

// matches reports whether the binding or its labels contain q, which must
// already be lower-case.
func (c keyCell) matches(q string) bool {
	if strings.Contains(strings.ToLower(c.token), q) {
		return true
	}
	if c.err != nil {
		return false
	}
	if strings.Contains(strings.ToLower(plainLabel(c.primary())), q) {
		return true
	}
	if h, ok := c.hold(); ok {
		return strings.Contains(strings.ToLower(plainLabel(h)), q)
	}
	return false
}

// layerTab holds one decoded layer.
type layerTab struct {
	name   string
	index  int
	cells  []keyCell
	errors int // cells that failed to decode
}

// newLayerTab decodes every binding of a layer. Failures are kept per key
// so the rest of the layer still renders.
func newLayerTab(index int, l keymap.Layer) layerTab {
	t := layerTab{
		name:  l.Name,
		index: index,
		cells: make([]keyCell, len(l.Keys)),
	}
	for i, tok := range l.Keys {
		desc, err := keymap.Decode(tok)
		t.cells[i] = keyCell{index: i, token: tok, desc: desc, err: err}
		if err != nil {
			t.errors++
		}
	}
	return t
}

// newLayerTabs builds one tab per layer in the map.
func newLayerTabs(m *keymap.LayerMap) []layerTab {
	layers := m.Layers()
	tabs := make([]layerTab, len(layers))
	for i, l := range layers {
		tabs[i] = newLayerTab(i, l)
	}
	return tabs
}

// cell returns the binding at key index i.
func (t *layerTab) cell(i int) (keyCell, bool) {
	if i < 0 || i >= len(t.cells) {
		return keyCell{}, false
	}
	return t.cells[i], true
}

// firstError returns the first decode failure in the layer.
func (t *layerTab) firstError() error {
	for _, c := range t.cells {
		if c.err != nil {
			return c.err
		}
	}
	return nil
}

// layerStats counts binding kinds in a layer.
type layerStats struct {
	keys        int
	transparent int
	disabled    int
	layerKeys   int
	errors      int
}

func (t *layerTab) stats() layerStats {
	s := layerStats{keys: len(t.cells), errors: t.errors}
	for _, c := range t.cells {
		switch {
		case c.err != nil:
		case c.desc.Transparent:
			s.transparent++
		case c.desc.Disabled:
			s.disabled++
		case c.desc.Layer != keymap.LayerNone:
			s.layerKeys++
		}
	}
	return s
}
