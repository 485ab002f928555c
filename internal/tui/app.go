package tui

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jbeckham/keymap-tui/internal/keymap"
	"github.com/jbeckham/keymap-tui/internal/layout"
	"github.com/jbeckham/keymap-tui/internal/source"
)

// --- Messages ---

// keymapLoadedMsg delivers a parsed keymap (or the load error).
type keymapLoadedMsg struct {
	layers *keymap.LayerMap
	reload bool
	err    error
}

// --- View stack ---

// view is a stacked view that renders on top of the tab bar.
type view interface {
	// title returns a label for the view (e.g., layer and key index).
	title() string
}

// Options configures how the keymap is drawn.
type Options struct {
	Layout  layout.Layout
	Tints   map[string]string // layer name -> lipgloss color
	ShowRaw bool
}

// --- App model ---

// App is the root bubbletea model for keymap-tui.
type App struct {
	width  int
	height int
	ready  bool

	loader   *source.Client
	location string
	loading  bool
	loadErr  error

	opts      Options
	layers    *keymap.LayerMap
	tabs      []layerTab
	activeTab int
	cursor    int // selected key index on the active layer
	viewStack []view

	overlay overlay // active overlay (nil = none)
	filter  keyFilter

	flash      string // transient status message
	flashIsErr bool   // true if the flash is an error
	warnings   []string

	keys Keymap
	help help.Model
}

// NewApp creates a new App model that loads its keymap from location.
// Pass a nil loader to run without loading anything (for testing).
func NewApp(loader *source.Client, location string, opts Options) App {
	if opts.Layout.Size() == 0 {
		opts.Layout = layout.Ferris()
	}
	return App{
		loader:   loader,
		location: location,
		loading:  loader != nil,
		opts:     opts,
		filter:   newKeyFilter(),
		keys:     DefaultKeymap(),
		help:     help.New(),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.loader == nil {
		return nil
	}
	return a.loadKeymap(false)
}

// loadKeymap returns a Cmd that reads and parses the keymap.
func (a App) loadKeymap(reload bool) tea.Cmd {
	if a.loader == nil {
		return nil
	}
	loader := a.loader
	location := a.location
	return func() tea.Msg {
		data, err := loader.Load(context.Background(), location)
		if err != nil {
			return keymapLoadedMsg{reload: reload, err: err}
		}
		return keymapLoadedMsg{layers: keymap.Parse(string(data)), reload: reload}
	}
}

// setKeymap replaces the displayed layers, keeping the active layer and
// cursor where possible.
func (a *App) setKeymap(m *keymap.LayerMap) {
	a.layers = m
	a.tabs = newLayerTabs(m)
	if a.activeTab >= len(a.tabs) {
		a.activeTab = 0
	}
	if a.cursor >= a.opts.Layout.Size() {
		a.cursor = 0
	}
	a.viewStack = nil
	a.warnings = checkKeymap(m, a.opts.Layout)
	a.filter.refresh(a.activeLayer())
	for _, w := range a.warnings {
		log.Printf("warning: %s", w)
	}
}

// checkKeymap reports problems that don't stop the keymap from rendering.
func checkKeymap(m *keymap.LayerMap, l layout.Layout) []string {
	var warnings []string
	for _, name := range m.Uneven(l.Size()) {
		keys, _ := m.Find(name)
		warnings = append(warnings, fmt.Sprintf("%s has %d keys, layout %s has %d", name, len(keys), l.Name, l.Size()))
	}
	for _, ref := range m.References() {
		warnings = append(warnings, fmt.Sprintf("%s key %d refers to unknown layer %s", ref.Layer, ref.Position, ref.Target))
	}
	return warnings
}

// activeLayer returns the displayed layer tab, or nil.
func (a *App) activeLayer() *layerTab {
	if a.activeTab < 0 || a.activeTab >= len(a.tabs) {
		return nil
	}
	return &a.tabs[a.activeTab]
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.help.Width = msg.Width
		// Resize the view on top of the stack
		if len(a.viewStack) > 0 {
			switch v := a.viewStack[len(a.viewStack)-1].(type) {
			case *keyDetailView:
				v.setSize(a.width, a.height)
			case *summaryView:
				v.setSize(a.width, a.height)
			}
		}

	case keymapLoadedMsg:
		a.loading = false
		if msg.err != nil {
			log.Printf("loading %s: %v", a.location, msg.err)
			if msg.reload && a.layers != nil {
				// Keep showing the old keymap
				a.flash = msg.err.Error()
				a.flashIsErr = true
				return a, nil
			}
			a.loadErr = msg.err
			return a, nil
		}
		log.Printf("loaded %s: %d layers", a.location, msg.layers.Len())
		a.loadErr = nil
		a.setKeymap(msg.layers)
		if msg.reload {
			a.flash = fmt.Sprintf("Reloaded %d layers", msg.layers.Len())
			a.flashIsErr = false
		}

	case tea.KeyMsg:
		a.flash = "" // clear flash on any keypress
		return a.handleKey(msg)
	}
	return a, nil
}

// handleKey processes key input.
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys always work
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	// If an overlay is active, route ALL keys to it
	if a.overlay != nil {
		var cmd tea.Cmd
		a.overlay, cmd = a.overlay.Update(msg)
		if isDone, result := a.overlay.done(); isDone {
			return a.handleOverlayResult(result)
		}
		return a, cmd
	}

	// If a view is on the stack, handle stack-specific keys
	if len(a.viewStack) > 0 {
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Back):
			a.viewStack = a.viewStack[:len(a.viewStack)-1]
			return a, nil
		}
		switch v := a.viewStack[len(a.viewStack)-1].(type) {
		case *keyDetailView:
			if key.Matches(msg, a.keys.Copy) {
				return a.copyBinding(v.cell), nil
			}
			return a, v.Update(msg)
		case *summaryView:
			if key.Matches(msg, a.keys.Open) {
				a.switchLayer(v.selected())
				a.viewStack = a.viewStack[:len(a.viewStack)-1]
				return a, nil
			}
			return a, v.Update(msg)
		}
		return a, nil
	}

	// If filter input is focused, route keypresses to the text input
	if a.filter.isFocused() {
		return a.handleFilterKey(msg)
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll

	case key.Matches(msg, a.keys.Back):
		// If a filter is applied, clear it
		if a.filter.isActive() {
			a.filter.clear()
		}

	case key.Matches(msg, a.keys.Reload):
		if a.loader != nil {
			a.loading = true
			a.flash = "Reloading..."
			a.flashIsErr = false
			return a, a.loadKeymap(true)
		}

	case len(a.tabs) == 0:
		// Nothing below applies without layers

	case key.Matches(msg, a.keys.Filter):
		a.filter.activate()
		return a, a.filter.input.Focus()

	case key.Matches(msg, a.keys.NextLayer):
		a.switchLayer((a.activeTab + 1) % len(a.tabs))

	case key.Matches(msg, a.keys.PrevLayer):
		a.switchLayer((a.activeTab - 1 + len(a.tabs)) % len(a.tabs))

	case key.Matches(msg, a.keys.Jump):
		a.overlay = newSelectionOverlay("Go to Layer", a.layerItems())

	case key.Matches(msg, a.keys.Summary):
		sv := newSummaryView(a.tabs, a.activeTab, a.width, a.height)
		a.viewStack = append(a.viewStack, &sv)

	case key.Matches(msg, a.keys.Open):
		if t := a.activeLayer(); t != nil {
			if c, ok := t.cell(a.cursor); ok {
				dv := a.newDetailView(t, c)
				a.viewStack = append(a.viewStack, &dv)
			}
		}

	case key.Matches(msg, a.keys.Copy):
		if t := a.activeLayer(); t != nil {
			if c, ok := t.cell(a.cursor); ok {
				return a.copyBinding(c), nil
			}
		}

	case key.Matches(msg, a.keys.Left):
		a.moveCursor(-1, 0)
	case key.Matches(msg, a.keys.Right):
		a.moveCursor(1, 0)
	case key.Matches(msg, a.keys.Up):
		a.moveCursor(0, -1)
	case key.Matches(msg, a.keys.Down):
		a.moveCursor(0, 1)

	default:
		if k := msg.String(); len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
			if idx := int(k[0]-'0') - 1; idx < len(a.tabs) {
				a.switchLayer(idx)
			}
		}
	}

	return a, nil
}

// handleFilterKey routes keypresses when the filter input is focused.
func (a App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		// Confirm filter (or clear if empty)
		a.filter.apply(a.activeLayer())
		return a, nil

	case "esc":
		// Cancel filter entirely
		a.filter.clear()
		return a, nil
	}

	// Forward to text input
	var cmd tea.Cmd
	a.filter.input, cmd = a.filter.input.Update(msg)

	// Live filter as user types
	a.filter.updateQuery(a.activeLayer())

	return a, cmd
}

// handleOverlayResult processes the result of a completed overlay.
func (a App) handleOverlayResult(result interface{}) (tea.Model, tea.Cmd) {
	a.overlay = nil
	if item, ok := result.(*selectionItem); ok && item != nil {
		a.switchLayer(item.Index)
	}
	return a, nil
}

// switchLayer makes layer idx the active tab.
func (a *App) switchLayer(idx int) {
	if idx < 0 || idx >= len(a.tabs) {
		return
	}
	a.activeTab = idx
	a.filter.refresh(a.activeLayer())
}

// moveCursor moves the key selection across the physical layout.
func (a *App) moveCursor(dx, dy int) {
	if next, ok := a.opts.Layout.Neighbor(a.cursor, dx, dy); ok {
		a.cursor = next
	}
}

// copyBinding puts a key's raw binding on the clipboard.
func (a App) copyBinding(c keyCell) App {
	if err := clipboard.WriteAll(c.token); err != nil {
		a.flash = "Clipboard unavailable"
		a.flashIsErr = true
	} else {
		a.flash = "Copied " + c.token
		a.flashIsErr = false
	}
	return a
}

// layerItems lists the layers for the jump overlay.
func (a App) layerItems() []selectionItem {
	items := make([]selectionItem, len(a.tabs))
	for i := range a.tabs {
		s := a.tabs[i].stats()
		items[i] = selectionItem{
			Index: i,
			Label: fmt.Sprintf("%d %s", i+1, a.tabs[i].name),
			Desc:  fmt.Sprintf("%d keys, %d transparent", s.keys, s.transparent),
		}
	}
	return items
}

// newDetailView builds the detail view for a key on layer t.
func (a App) newDetailView(t *layerTab, c keyCell) keyDetailView {
	others := make([]positionBinding, 0, len(a.tabs))
	for i := range a.tabs {
		if oc, ok := a.tabs[i].cell(c.index); ok {
			others = append(others, positionBinding{layer: a.tabs[i].name, token: oc.token})
		}
	}
	pos, hasPos := a.opts.Layout.Position(c.index)
	return newKeyDetailView(t.name, c, pos, hasPos, others, a.width, a.height)
}

// tint returns the accent color for a layer.
func (a App) tint(name string) lipgloss.Color {
	return tintFor(a.opts.Tints, name)
}

// --- View ---

// View implements tea.Model.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var sections []string

	// Tab bar
	sections = append(sections, a.renderTabBar())

	// Main content area
	switch {
	case a.overlay != nil:
		sections = append(sections, a.overlay.View(a.width, a.height-2))
	case len(a.viewStack) > 0:
		sections = append(sections, a.renderStackView())
	case a.loading && a.layers == nil:
		sections = append(sections, loadingStyle.Render("Loading keymap..."))
	case a.loadErr != nil:
		sections = append(sections, errorStyle.Render(
			fmt.Sprintf("Failed to load keymap: %v", a.loadErr),
		))
	case len(a.tabs) == 0:
		sections = append(sections, emptyStyle.Render("No layers found"))
	default:
		sections = append(sections, a.renderActiveLayer())
	}

	// Status bar
	sections = append(sections, a.renderStatusBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderTabBar draws the layer strip across the top.
func (a App) renderTabBar() string {
	title := titleStyle.UnsetMarginBottom().Render("keymap-tui")
	if len(a.tabs) == 0 {
		return tabBarStyle.Render(title)
	}

	tabs := []string{title, " "}
	for i, t := range a.tabs {
		label := fmt.Sprintf(" %d %s ", i+1, t.name)
		if i == a.activeTab {
			tabs = append(tabs, activeTabStyle.Background(a.tint(t.name)).Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	return tabBarStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// renderActiveLayer draws the board for the active layer.
func (a App) renderActiveLayer() string {
	t := a.activeLayer()
	if t == nil {
		return ""
	}
	b := board{layout: a.opts.Layout, tint: a.tint(t.name), showRaw: a.opts.ShowRaw}
	parts := []string{b.render(t, a.cursor, a.filter.matched)}

	// Filter bar (if active)
	if a.filter.isActive() {
		parts = append(parts, a.renderFilterBar())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderFilterBar draws the quick filter bar.
func (a App) renderFilterBar() string {
	var bar string
	if a.filter.isFocused() {
		bar = a.filter.input.View()
	} else {
		// Show confirmed filter text dimmed
		bar = filterPromptStyle.Render("/ ") + helpStyle.Render(a.filter.query)
	}

	// Append match count
	count := filterCountStyle.Render(
		fmt.Sprintf("  %d of %d keys", len(a.filter.matched), a.filter.total),
	)

	return filterBarStyle.Render(bar + count)
}

// renderStackView draws the top view on the stack.
func (a App) renderStackView() string {
	if len(a.viewStack) == 0 {
		return ""
	}
	switch v := a.viewStack[len(a.viewStack)-1].(type) {
	case *keyDetailView:
		return v.View()
	case *summaryView:
		return v.View()
	}
	return ""
}

// renderStatusBar draws the bottom help/status line.
func (a App) renderStatusBar() string {
	var parts []string

	if t := a.activeLayer(); t != nil && len(a.viewStack) == 0 {
		parts = append(parts, successStyle.Render(t.name+" key "+strconv.Itoa(a.cursor)))
		if t.errors > 0 {
			parts = append(parts, errorStyle.Render(fmt.Sprintf("%d undecodable", t.errors)))
		}
	}

	if len(a.warnings) > 0 {
		w := a.warnings[0]
		if len(a.warnings) > 1 {
			w += fmt.Sprintf(" (+%d more)", len(a.warnings)-1)
		}
		parts = append(parts, warningStyle.Render(w))
	}

	// Flash message (transient feedback)
	if a.flash != "" {
		if a.flashIsErr {
			parts = append(parts, errorStyle.Render(a.flash))
		} else {
			parts = append(parts, successStyle.Render(a.flash))
		}
	}

	if len(a.viewStack) > 0 {
		parts = append(parts, helpStyle.Render("j/k: scroll  esc: back  q: quit"))
	} else {
		parts = append(parts, a.help.View(a.keys))
	}

	return strings.Join(parts, helpStyle.Render("  │  "))
}
