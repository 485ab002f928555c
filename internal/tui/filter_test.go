package tui

import (
	"reflect"
	"testing"
)

func TestMatchKeys(t *testing.T) {
	base := testTabs()[0]
	tests := []struct {
		query string
		want  map[int]bool
	}{
		{"kp", map[int]bool{0: true, 1: true}},
		{"KP", map[int]bool{0: true, 1: true}},
		{"trans", map[int]bool{4: true}},
		{"␣", map[int]bool{3: true}},
		{"nothing-like-this", map[int]bool{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := matchKeys(&base, tt.query)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("matchKeys(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestKeyFilterLifecycle(t *testing.T) {
	tabs := testTabs()
	f := newKeyFilter()

	if f.isActive() {
		t.Error("new filter should be inactive")
	}

	// Activate
	f.activate()
	if !f.isActive() || !f.isFocused() {
		t.Error("expected active and focused after activate()")
	}

	// Live filter
	f.input.SetValue("kp")
	f.updateQuery(&tabs[0])
	if len(f.matched) != 2 {
		t.Errorf("expected 2 matches, got %d", len(f.matched))
	}
	if f.total != 7 {
		t.Errorf("expected total 7, got %d", f.total)
	}

	// Confirm
	f.apply(&tabs[0])
	if !f.isActive() || f.isFocused() {
		t.Error("expected active but not focused after apply()")
	}
	if f.query != "kp" {
		t.Errorf("expected query 'kp', got %q", f.query)
	}

	// Switching layers keeps the query
	f.refresh(&tabs[1])
	if f.total != 4 {
		t.Errorf("expected total 4 after refresh, got %d", f.total)
	}
	if !reflect.DeepEqual(f.matched, map[int]bool{0: true, 1: true}) {
		t.Errorf("unexpected matches on LOWER: %v", f.matched)
	}

	// Clear
	f.clear()
	if f.isActive() {
		t.Error("expected inactive after clear()")
	}
	if f.matched != nil || f.query != "" {
		t.Errorf("expected empty filter after clear(), got query %q matched %v", f.query, f.matched)
	}
}

func TestKeyFilterApplyEmptyClears(t *testing.T) {
	tabs := testTabs()
	f := newKeyFilter()
	f.activate()
	f.input.SetValue("   ")
	f.apply(&tabs[0])
	if f.isActive() {
		t.Error("applying an empty query should clear the filter")
	}
}

func TestKeyFilterRefreshNilLayer(t *testing.T) {
	f := newKeyFilter()
	f.query = "kp"
	f.refresh(nil)
	if f.matched != nil || f.total != 0 {
		t.Errorf("expected no matches for nil layer, got %v (total %d)", f.matched, f.total)
	}
}
