package keymap

import (
	"os"
	"reflect"
	"testing"
)

func loadFixture(t *testing.T) *LayerMap {
	t.Helper()
	data, err := os.ReadFile("testdata/cradio.keymap")
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	return Parse(string(data))
}

func TestParseFixtureLayers(t *testing.T) {
	m := loadFixture(t)
	want := []string{"BASE", "LOWER", "RAISE", "ADJUST", "NUMPAD", "GAME", "GAME_L", "GAME_R"}
	if got := m.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	if m.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", m.Len(), len(want))
	}
	for _, l := range m.Layers() {
		if len(l.Keys) != 34 {
			t.Errorf("layer %s has %d keys, want 34", l.Name, len(l.Keys))
		}
	}
	if uneven := m.Uneven(34); len(uneven) != 0 {
		t.Errorf("Uneven(34) = %v, want none", uneven)
	}
}

func TestParseFixtureTokens(t *testing.T) {
	m := loadFixture(t)
	keys, ok := m.Find("BASE")
	if !ok {
		t.Fatal("BASE not found")
	}
	checks := map[int]string{
		0:  "&kp Q",
		11: "&mt LSFT S",
		27: "&mt SEMI CMMA",
		30: "&sk LCTL",
		31: "&lt LOWER SPC",
		33: "&sk LSFT",
	}
	for i, want := range checks {
		if keys[i] != want {
			t.Errorf("BASE[%d] = %q, want %q", i, keys[i], want)
		}
	}

	adjust, _ := m.Find("ADJUST")
	if adjust[7] != "&bt BT_SEL 0" {
		t.Errorf("ADJUST[7] = %q, want %q", adjust[7], "&bt BT_SEL 0")
	}
}

func TestParseBlockShape(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []Layer
	}{
		{
			name: "single line",
			raw:  `BASE { bindings = < &kp A &kp B >; };`,
			want: []Layer{{Name: "BASE", Keys: []string{"&kp A", "&kp B"}}},
		},
		{
			name: "newlines and extra whitespace",
			raw: "junk before\nFN {\n\tbindings   =   <\n  &kp   F1\n\n &mt  LSFT\n  S\n>;\n};\njunk after",
			want: []Layer{{Name: "FN", Keys: []string{"&kp F1", "&mt LSFT S"}}},
		},
		{
			name: "no whitespace",
			raw:  `X{bindings=<&trans&none>;};`,
			want: []Layer{{Name: "X", Keys: []string{"&trans", "&none"}}},
		},
		{
			name: "lowercase node name",
			raw:  `default_layer { bindings = <&kp Q>; };`,
			want: []Layer{{Name: "default_layer", Keys: []string{"&kp Q"}}},
		},
		{
			name: "empty bindings",
			raw:  `EMPTY { bindings = < >; };`,
			want: []Layer{{Name: "EMPTY", Keys: []string{}}},
		},
		{
			name: "comments inside bindings",
			raw:  "L { bindings = <\n&kp A // &kp B\n/* &kp C */ &kp D\n>; };",
			want: []Layer{{Name: "L", Keys: []string{"&kp A", "&kp D"}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw).Layers()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseSkipsNonMatchingBlocks(t *testing.T) {
	raw := `
combos {
    compatible = "zmk,combos";
    combo_esc { timeout-ms = <50>; key-positions = <0 1>; bindings = <&kp ESC>; };
};
UNCLOSED { bindings = < &kp A
MACRO { wait-ms = <30>; bindings = <&kp B>; };
GOOD { bindings = < &kp G >; };
`
	m := Parse(raw)
	if got := m.Names(); !reflect.DeepEqual(got, []string{"GOOD"}) {
		t.Errorf("Names() = %v, want [GOOD]", got)
	}
}

func TestParseNoBlocks(t *testing.T) {
	for _, raw := range []string{"", "// nothing here", "FOO { bar = <1>; };"} {
		m := Parse(raw)
		if m.Len() != 0 {
			t.Errorf("Parse(%q) found %d layers, want 0", raw, m.Len())
		}
		if names := m.Names(); len(names) != 0 {
			t.Errorf("Parse(%q).Names() = %v, want empty", raw, names)
		}
	}
}

func TestFindAndLayerIndex(t *testing.T) {
	m := Parse(`
A { bindings = <&kp ONE>; };
B { bindings = <&kp TWO>; };
A { bindings = <&kp THREE>; };
`)
	keys, ok := m.Find("A")
	if !ok || !reflect.DeepEqual(keys, []string{"&kp ONE"}) {
		t.Errorf("Find(A) = %v, %v; want first A", keys, ok)
	}
	if i, ok := m.LayerIndex("B"); !ok || i != 1 {
		t.Errorf("LayerIndex(B) = %d, %v; want 1, true", i, ok)
	}
	if i, ok := m.LayerIndex("A"); !ok || i != 0 {
		t.Errorf("LayerIndex(A) = %d, %v; want 0, true", i, ok)
	}
	if _, ok := m.Find("MISSING"); ok {
		t.Error("Find(MISSING) should not be found")
	}
	if i, ok := m.LayerIndex("MISSING"); ok || i != -1 {
		t.Errorf("LayerIndex(MISSING) = %d, %v; want -1, false", i, ok)
	}
}

func TestReferences(t *testing.T) {
	m := Parse(`
BASE { bindings = <&lt NAV SPC &to GONE &mo BASE &sl NOPE &kp A &bogus X>; };
NAV { bindings = <&to BASE &trans>; };
`)
	want := []Reference{
		{Layer: "BASE", Position: 1, Target: "GONE"},
		{Layer: "BASE", Position: 3, Target: "NOPE"},
	}
	if got := m.References(); !reflect.DeepEqual(got, want) {
		t.Errorf("References() = %v, want %v", got, want)
	}

	if refs := loadFixture(t).References(); len(refs) != 0 {
		t.Errorf("fixture has unresolved references: %v", refs)
	}
}

func TestUneven(t *testing.T) {
	m := Parse(`
A { bindings = <&kp A &kp B>; };
B { bindings = <&kp A>; };
`)
	if got := m.Uneven(2); !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("Uneven(2) = %v, want [B]", got)
	}
}
