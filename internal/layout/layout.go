// Package layout describes where each key position sits on the physical
// board.
package layout

import (
	"fmt"
	"math"
	"sort"
)

// Side is the half of a split keyboard a key belongs to.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Right {
		return "right"
	}
	return "left"
}

// Position is one physical key. In the main cluster Col counts left to
// right within each half; on the thumb row it counts from the inner key
// outwards.
type Position struct {
	Index int
	Side  Side
	Row   int
	Col   int
	Nub   bool // homing bump
}

// Thumb holds the placement of a thumb key, in millimeters.
type Thumb struct {
	Top      float64
	Inset    float64
	Rotation float64 // degrees
}

// Layout is a named physical key arrangement.
type Layout struct {
	Name      string
	Positions []Position
	// ColumnStagger is the vertical offset in mm of each main-cluster
	// column on the left half. The right half mirrors it.
	ColumnStagger []float64
	InnerThumb    Thumb
	OuterThumb    Thumb
	ThumbRow      int
}

// Ferris returns the 34-key Ferris/Cradio layout.
func Ferris() Layout {
	l := Layout{
		Name:          "ferris",
		ColumnStagger: []float64{17.6, 7, 0, 6, 8},
		InnerThumb:    Thumb{Top: 59, Inset: 66, Rotation: 20},
		OuterThumb:    Thumb{Top: 67, Inset: 86, Rotation: 30},
		ThumbRow:      3,
	}
	idx := 0
	for row := 0; row < 3; row++ {
		for _, side := range []Side{Left, Right} {
			for col := 0; col < 5; col++ {
				l.Positions = append(l.Positions, Position{Index: idx, Side: side, Row: row, Col: col})
				idx++
			}
		}
	}
	l.Positions[13].Nub = true
	l.Positions[16].Nub = true

	l.Positions = append(l.Positions,
		Position{Index: 30, Side: Left, Row: 3, Col: 0},  // left inner thumb
		Position{Index: 31, Side: Left, Row: 3, Col: 1},  // left outer thumb
		Position{Index: 32, Side: Right, Row: 3, Col: 1}, // right outer thumb
		Position{Index: 33, Side: Right, Row: 3, Col: 0}, // right inner thumb
	)
	return l
}

var layouts = map[string]func() Layout{
	"ferris": Ferris,
}

// ByName returns a known layout.
func ByName(name string) (Layout, error) {
	fn, ok := layouts[name]
	if !ok {
		return Layout{}, fmt.Errorf("unknown layout %q (known: %v)", name, Names())
	}
	return fn(), nil
}

// Names lists the known layout names, sorted.
func Names() []string {
	names := make([]string, 0, len(layouts))
	for n := range layouts {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Size is the number of key positions.
func (l Layout) Size() int {
	return len(l.Positions)
}

// Position returns the position for key index i.
func (l Layout) Position(i int) (Position, bool) {
	if i < 0 || i >= len(l.Positions) {
		return Position{}, false
	}
	return l.Positions[i], true
}

// OuterCol returns the column counted from the outside edge of the board,
// so column 0 is the pinky column on both halves.
func (l Layout) OuterCol(p Position) int {
	if p.Side == Right && p.Row != l.ThumbRow {
		return len(l.ColumnStagger) - 1 - p.Col
	}
	return p.Col
}

// StaggerLines converts a position's column stagger into whole terminal
// lines, given the height of one line in mm. Thumb keys have no stagger.
func (l Layout) StaggerLines(p Position, mmPerLine float64) int {
	if p.Row == l.ThumbRow || mmPerLine <= 0 {
		return 0
	}
	col := l.OuterCol(p)
	if col < 0 || col >= len(l.ColumnStagger) {
		return 0
	}
	return int(math.Round(l.ColumnStagger[col] / mmPerLine))
}

// Find returns the key index at the given side, row and column.
func (l Layout) Find(side Side, row, col int) (int, bool) {
	for _, p := range l.Positions {
		if p.Side == side && p.Row == row && p.Col == col {
			return p.Index, true
		}
	}
	return -1, false
}

// GridX returns the key's horizontal slot on a board drawn as a grid, with
// the left half in slots 0-4 and the right half in slots 5-9.
func (l Layout) GridX(p Position) int {
	n := len(l.ColumnStagger)
	switch {
	case p.Side == Left && p.Row == l.ThumbRow:
		return n - 1 - p.Col
	case p.Side == Left:
		return p.Col
	default:
		return n + p.Col
	}
}

// Neighbor returns the key reached by moving dx slots across or dy rows
// down from key i. Moving between rows picks the key with the nearest slot.
func (l Layout) Neighbor(i, dx, dy int) (int, bool) {
	from, ok := l.Position(i)
	if !ok {
		return -1, false
	}
	row, x := from.Row+dy, l.GridX(from)+dx

	best, bestDist := -1, math.MaxInt
	for _, p := range l.Positions {
		if p.Row != row {
			continue
		}
		px := l.GridX(p)
		if dx != 0 && px != x {
			continue
		}
		d := px - x
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = p.Index, d
		}
	}
	return best, best >= 0
}

// ThumbFor returns the placement of a thumb-row key: column 0 is the inner
// thumb, anything further out uses the outer placement.
func (l Layout) ThumbFor(p Position) Thumb {
	if p.Col == 0 {
		return l.InnerThumb
	}
	return l.OuterThumb
}
