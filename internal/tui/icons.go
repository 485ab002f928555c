package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jbeckham/keymap-tui/internal/keymap"
)

// iconDef holds the terminal glyph and optional color for an icon.
type iconDef struct {
	glyph string
	color lipgloss.Color
}

// iconMap maps icon markers to terminal glyphs. Glyphs are single-width so
// labels line up inside key cells.
var iconMap = map[keymap.Icon]iconDef{
	keymap.IconChevronUp:  {glyph: "⌃"},
	keymap.IconUpLong:     {glyph: "⇧"},
	keymap.IconCaretDown:  {glyph: "▼"},
	keymap.IconCaretLeft:  {glyph: "◀"},
	keymap.IconCaretRight: {glyph: "▶"},
	keymap.IconCaretUp:    {glyph: "▲"},
	keymap.IconVolumeLow:  {glyph: "♪-", color: lipgloss.Color("#36B37E")},
	keymap.IconVolumeHigh: {glyph: "♪+", color: lipgloss.Color("#36B37E")},
	keymap.IconVolumeMute: {glyph: "♪×", color: lipgloss.Color("#36B37E")},
	keymap.IconBackward:   {glyph: "◀◀", color: lipgloss.Color("#36B37E")},
	keymap.IconForward:    {glyph: "▶▶", color: lipgloss.Color("#36B37E")},
	keymap.IconPlay:       {glyph: "▶‖", color: lipgloss.Color("#36B37E")},
	keymap.IconDeleteLeft: {glyph: "⌫"},
	keymap.IconCamera:     {glyph: "⎙"},
	keymap.IconList:       {glyph: "☰"},
	keymap.IconBan:        {glyph: "⊘", color: lipgloss.Color("#FF5630")},
	keymap.IconTurnDown:   {glyph: "⤵"},
	keymap.IconArrowsSwap: {glyph: "⇄"},
	keymap.IconBluetooth:  {glyph: "ᛒ", color: lipgloss.Color("#2684FF")},
	keymap.IconUSB:        {glyph: "USB", color: lipgloss.Color("#6B778C")},
	keymap.IconAnglesUp:   {glyph: "⇑"},
}

// transformedIcon overrides the glyph for an icon drawn with a transform.
type transformedIcon struct {
	icon      keymap.Icon
	transform keymap.Transform
}

var transformedGlyphs = map[transformedIcon]string{
	{keymap.IconDeleteLeft, keymap.TransformFlipX}:  "⌦",
	{keymap.IconTurnDown, keymap.TransformRotate90}: "↵",
}

// iconGlyph returns the plain glyph for an icon. Falls back to the icon's
// name if unknown.
func iconGlyph(icon keymap.Icon, t keymap.Transform) string {
	if g, ok := transformedGlyphs[transformedIcon{icon, t}]; ok {
		return g
	}
	if def, ok := iconMap[icon]; ok {
		return def.glyph
	}
	return string(icon)
}

// plainLabel returns the label as unstyled text on a single line.
func plainLabel(l keymap.Label) string {
	switch l.Kind {
	case keymap.LabelIcon:
		return iconGlyph(l.Icon, l.Transform)
	case keymap.LabelComposite:
		parts := make([]string, len(l.Parts))
		for i, p := range l.Parts {
			parts[i] = plainLabel(p)
		}
		return strings.Join(parts, " ")
	}
	return strings.ReplaceAll(l.Text, "\n", " ")
}

// renderLabel returns the label with icon colors applied.
func renderLabel(l keymap.Label) string {
	switch l.Kind {
	case keymap.LabelIcon:
		glyph := iconGlyph(l.Icon, l.Transform)
		style := lipgloss.NewStyle()
		if def, ok := iconMap[l.Icon]; ok && def.color != "" {
			style = style.Foreground(def.color)
		}
		if l.Transform == keymap.TransformSmall {
			style = style.Faint(true)
		}
		return style.Render(glyph)
	case keymap.LabelComposite:
		parts := make([]string, len(l.Parts))
		for i, p := range l.Parts {
			parts[i] = renderLabel(p)
		}
		return strings.Join(parts, " ")
	case keymap.LabelGlyph:
		return lipgloss.NewStyle().Bold(true).Render(strings.ReplaceAll(l.Text, "\n", " "))
	}
	return l.Text
}

// roleMarker returns the small glyph drawn above a key's primary label.
func roleMarker(d keymap.KeyDescriptor) string {
	switch {
	case d.Bluetooth != keymap.BluetoothNone:
		return iconGlyph(keymap.IconBluetooth, keymap.TransformNone)
	case d.Disabled:
		return iconGlyph(keymap.IconBan, keymap.TransformNone)
	case d.Layer != keymap.LayerNone && d.Layer != keymap.LayerHold:
		return iconGlyph(keymap.IconAnglesUp, keymap.TransformNone)
	}
	return ""
}
