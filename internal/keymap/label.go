package keymap

import "strings"

// LabelKind distinguishes the forms a Label can take.
type LabelKind int

const (
	LabelText      LabelKind = iota // literal key name
	LabelGlyph                      // substituted characters
	LabelIcon                       // render as an icon
	LabelComposite                  // sequence of parts
)

// Icon names an icon a renderer should draw.
type Icon string

const (
	IconChevronUp  Icon = "chevron-up"
	IconUpLong     Icon = "up-long"
	IconCaretDown  Icon = "caret-down"
	IconCaretLeft  Icon = "caret-left"
	IconCaretRight Icon = "caret-right"
	IconCaretUp    Icon = "caret-up"
	IconVolumeLow  Icon = "volume-low"
	IconVolumeHigh Icon = "volume-high"
	IconVolumeMute Icon = "volume-xmark"
	IconBackward   Icon = "backward-fast"
	IconForward    Icon = "forward-fast"
	IconPlay       Icon = "play"
	IconDeleteLeft Icon = "delete-left"
	IconCamera     Icon = "camera"
	IconList       Icon = "rectangle-list"
	IconBan        Icon = "ban"
	IconTurnDown   Icon = "turn-down"
	IconArrowsSwap Icon = "arrow-right-arrow-left"
	IconBluetooth  Icon = "bluetooth"
	IconUSB        Icon = "usb"
	IconAnglesUp   Icon = "angles-up"
)

// Transform is applied to an icon when it is drawn.
type Transform int

const (
	TransformNone Transform = iota
	TransformFlipX
	TransformRotate90
	TransformSmall
)

// Label is the display form of a key name.
type Label struct {
	Kind      LabelKind
	Text      string    // LabelText, LabelGlyph
	Icon      Icon      // LabelIcon
	Transform Transform // LabelIcon
	Parts     []Label   // LabelComposite
}

// TextLabel returns a literal label.
func TextLabel(s string) Label { return Label{Kind: LabelText, Text: s} }

// GlyphLabel returns a substituted-character label.
func GlyphLabel(s string) Label { return Label{Kind: LabelGlyph, Text: s} }

// IconLabel returns an icon label.
func IconLabel(icon Icon, t Transform) Label {
	return Label{Kind: LabelIcon, Icon: icon, Transform: t}
}

// CompositeLabel returns a label made of several parts.
func CompositeLabel(parts ...Label) Label {
	return Label{Kind: LabelComposite, Parts: parts}
}

// IsEmpty reports whether the label has nothing to draw.
func (l Label) IsEmpty() bool {
	switch l.Kind {
	case LabelText, LabelGlyph:
		return l.Text == ""
	case LabelComposite:
		return len(l.Parts) == 0
	}
	return false
}

// String returns a plain-text form of the label. Icons render as their name
// in brackets.
func (l Label) String() string {
	switch l.Kind {
	case LabelIcon:
		return "[" + string(l.Icon) + "]"
	case LabelComposite:
		var b strings.Builder
		for i, p := range l.Parts {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(p.String())
		}
		return b.String()
	}
	return l.Text
}

var glyphSubs = map[string]string{
	"EXCL": "!", "AT": "@", "HASH": "#", "DLLR": "$",
	"PRCT": "%", "CARET": "^", "AMPS": "&", "ASTRK": "*", "ASTERISK": "*",

	"UNDER": "_", "MINUS": "-", "PLUS": "+", "EQL": "=",
	"DOT": ".", "CMMA": ",", "SLASH": "/", "BSLH": `\`,
	"COLN": ":", "SEMI": ";", "APOS": "'", "GRAVE": "`",

	"LT": "<", "GT": ">", "LBKT": "[", "RBKT": "]",
	"LPAR": "(", "RPAR": ")", "LBRC": "{", "RBRC": "}",

	"LALT": "⌥", "RALT": "⌥",
	"LGUI": "⌘", "RGUI": "⌘", // same symbol on every OS
	"SPC": "␣", "SPACE": "␣",

	"KP_NUM": "NUM\nLOCK",
	"SLCK":   "SCRL\nLOCK",
}

var iconSubs = map[string]Icon{
	"LCTL": IconChevronUp, "RCTL": IconChevronUp,
	"LSFT": IconUpLong, "RSFT": IconUpLong,
	"DARW":   IconCaretDown,
	"LARW":   IconCaretLeft,
	"RARW":   IconCaretRight,
	"UARW":   IconCaretUp,
	"MVDN":   IconVolumeLow,
	"MVUP":   IconVolumeHigh,
	"MVNO":   IconVolumeMute,
	"MPRV":   IconBackward,
	"MNXT":   IconForward,
	"MSTP":   IconPlay,
	"BKSP":   IconDeleteLeft,
	"PSCRN":  IconCamera,
	"K_APP":  IconList,
	"BT_CLR": IconBan,
}

const (
	numberPrefix = "N"
	keypadPrefix = "KP_"
)

// KeypadMarker precedes keypad key labels.
const KeypadMarker = "#"

// LabelFor maps a key name such as "LSFT" or "KP_N7" to its display label.
// Unknown names are returned as text.
func LabelFor(atom string) Label {
	if g, ok := glyphSubs[atom]; ok {
		return GlyphLabel(g)
	}
	if icon, ok := iconSubs[atom]; ok {
		return IconLabel(icon, TransformNone)
	}
	// N0-N9 only; anything else with an N prefix is left alone.
	if len(atom) == 2 && strings.HasPrefix(atom, numberPrefix) && atom[1] >= '0' && atom[1] <= '9' {
		return TextLabel(atom[1:])
	}
	if rest, ok := strings.CutPrefix(atom, keypadPrefix); ok {
		return CompositeLabel(GlyphLabel(KeypadMarker), LabelFor(rest))
	}

	switch atom {
	case "BLE":
		return CompositeLabel(IconLabel(IconArrowsSwap, TransformSmall), IconLabel(IconBluetooth, TransformNone))
	case "USB":
		return CompositeLabel(IconLabel(IconArrowsSwap, TransformSmall), IconLabel(IconUSB, TransformNone))
	case "DEL":
		return IconLabel(IconDeleteLeft, TransformFlipX)
	case "ENTER":
		return IconLabel(IconTurnDown, TransformRotate90)
	}
	return TextLabel(atom)
}
