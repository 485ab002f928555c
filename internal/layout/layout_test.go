package layout

import "testing"

func TestFerrisPositions(t *testing.T) {
	l := Ferris()
	if l.Size() != 34 {
		t.Fatalf("Size() = %d, want 34", l.Size())
	}
	for i, p := range l.Positions {
		if p.Index != i {
			t.Errorf("Positions[%d].Index = %d", i, p.Index)
		}
	}

	tests := []struct {
		index int
		side  Side
		row   int
		col   int
		nub   bool
	}{
		{0, Left, 0, 0, false},
		{5, Right, 0, 0, false},
		{9, Right, 0, 4, false},
		{13, Left, 1, 3, true},
		{16, Right, 1, 1, true},
		{29, Right, 2, 4, false},
		{30, Left, 3, 0, false},
		{32, Right, 3, 1, false},
		{33, Right, 3, 0, false},
	}
	for _, tt := range tests {
		p, ok := l.Position(tt.index)
		if !ok {
			t.Fatalf("Position(%d) not found", tt.index)
		}
		if p.Side != tt.side || p.Row != tt.row || p.Col != tt.col || p.Nub != tt.nub {
			t.Errorf("Position(%d) = %+v, want side=%v row=%d col=%d nub=%v",
				tt.index, p, tt.side, tt.row, tt.col, tt.nub)
		}
	}

	if _, ok := l.Position(34); ok {
		t.Error("Position(34) should not exist")
	}
	if _, ok := l.Position(-1); ok {
		t.Error("Position(-1) should not exist")
	}
}

func TestByName(t *testing.T) {
	l, err := ByName("ferris")
	if err != nil {
		t.Fatalf("ByName(ferris): %v", err)
	}
	if l.Name != "ferris" {
		t.Errorf("Name = %q", l.Name)
	}
	if _, err := ByName("planck"); err == nil {
		t.Error("expected error for unknown layout")
	}
}

func TestStaggerMirrors(t *testing.T) {
	l := Ferris()
	// Left pinky (index 0) and right pinky (index 9) share an offset.
	left, _ := l.Position(0)
	right, _ := l.Position(9)
	if l.OuterCol(left) != 0 || l.OuterCol(right) != 0 {
		t.Errorf("OuterCol: left=%d right=%d, want 0 and 0", l.OuterCol(left), l.OuterCol(right))
	}
	if got, want := l.StaggerLines(left, 4), l.StaggerLines(right, 4); got != want || got != 4 {
		t.Errorf("StaggerLines pinky: left=%d right=%d, want 4", got, want)
	}
	middle, _ := l.Position(2)
	if got := l.StaggerLines(middle, 4); got != 0 {
		t.Errorf("StaggerLines middle = %d, want 0", got)
	}
	thumb, _ := l.Position(30)
	if got := l.StaggerLines(thumb, 4); got != 0 {
		t.Errorf("StaggerLines thumb = %d, want 0", got)
	}
}

func TestGridX(t *testing.T) {
	l := Ferris()
	want := map[int]int{0: 0, 4: 4, 5: 5, 9: 9, 30: 4, 31: 3, 32: 6, 33: 5}
	for i, x := range want {
		p, _ := l.Position(i)
		if got := l.GridX(p); got != x {
			t.Errorf("GridX(%d) = %d, want %d", i, got, x)
		}
	}
}

func TestNeighbor(t *testing.T) {
	l := Ferris()
	tests := []struct {
		from, dx, dy int
		want         int
		ok           bool
	}{
		{0, 1, 0, 1, true},
		{4, 1, 0, 5, true},
		{0, -1, 0, -1, false},
		{9, 1, 0, -1, false},
		{0, 0, 1, 10, true},
		{20, 0, 1, 31, true}, // pinky drops to the nearest thumb
		{30, 1, 0, 33, true},
		{33, 0, -1, 25, true},
		{0, 0, -1, -1, false},
	}
	for _, tt := range tests {
		got, ok := l.Neighbor(tt.from, tt.dx, tt.dy)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Neighbor(%d, %d, %d) = %d, %v; want %d, %v", tt.from, tt.dx, tt.dy, got, ok, tt.want, tt.ok)
		}
	}
}

func TestFind(t *testing.T) {
	l := Ferris()
	if i, ok := l.Find(Right, 1, 1); !ok || i != 16 {
		t.Errorf("Find(Right, 1, 1) = %d, %v; want 16", i, ok)
	}
	if _, ok := l.Find(Left, 3, 2); ok {
		t.Error("Find(Left, 3, 2) should not exist")
	}
}

func TestThumbFor(t *testing.T) {
	l := Ferris()
	inner, _ := l.Position(33)
	outer, _ := l.Position(31)
	if got := l.ThumbFor(inner); got != l.InnerThumb {
		t.Errorf("ThumbFor(33) = %+v, want inner", got)
	}
	if got := l.ThumbFor(outer); got != l.OuterThumb {
		t.Errorf("ThumbFor(31) = %+v, want outer", got)
	}
}
