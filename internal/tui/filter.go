package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// filterState tracks whether the filter bar is active and/or focused.
type filterState int

const (
	filterInactive filterState = iota // no filter bar visible
	filterFocused                     // filter bar visible, text input focused
	filterApplied                     // filter bar visible, text input blurred (confirmed)
)

// keyFilter highlights keys of the active layer that match a query.
type keyFilter struct {
	state   filterState
	input   textinput.Model
	query   string // the confirmed or live query
	total   int    // keys in the layer
	matched map[int]bool
}

// newKeyFilter creates an inactive filter.
func newKeyFilter() keyFilter {
	ti := textinput.New()
	ti.Placeholder = "type to highlight keys..."
	ti.Prompt = "/ "
	ti.PromptStyle = filterPromptStyle
	ti.CharLimit = 64
	return keyFilter{
		state: filterInactive,
		input: ti,
	}
}

// activate shows the filter bar and focuses the text input.
func (f *keyFilter) activate() {
	f.state = filterFocused
	f.input.Focus()
}

// apply confirms the filter and blurs the input.
// If the query is empty, the filter is cleared instead.
func (f *keyFilter) apply(t *layerTab) {
	q := strings.TrimSpace(f.input.Value())
	if q == "" {
		f.clear()
		return
	}
	f.query = q
	f.state = filterApplied
	f.input.Blur()
	f.refresh(t)
}

// clear removes the filter entirely.
func (f *keyFilter) clear() {
	f.state = filterInactive
	f.query = ""
	f.input.SetValue("")
	f.input.Blur()
	f.matched = nil
	f.total = 0
}

// updateQuery live-filters as the user types.
func (f *keyFilter) updateQuery(t *layerTab) {
	f.query = strings.TrimSpace(f.input.Value())
	f.refresh(t)
}

// refresh recomputes matches against a layer, e.g. after switching layers.
func (f *keyFilter) refresh(t *layerTab) {
	f.matched = nil
	f.total = 0
	if t == nil {
		return
	}
	f.total = len(t.cells)
	if f.query == "" {
		return
	}
	f.matched = matchKeys(t, f.query)
}

// isActive returns true if a filter is visible (focused or applied).
func (f *keyFilter) isActive() bool {
	return f.state != filterInactive
}

// isFocused returns true if the text input has focus.
func (f *keyFilter) isFocused() bool {
	return f.state == filterFocused
}

// matchKeys returns the indexes of keys whose binding or labels contain the
// query (case-insensitive).
func matchKeys(t *layerTab, query string) map[int]bool {
	q := strings.ToLower(query)
	matched := make(map[int]bool)
	for _, c := range t.cells {
		if c.matches(q) {
			matched[c.index] = true
		}
	}
	return matched
}
