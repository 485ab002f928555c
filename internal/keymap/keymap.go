// Package keymap extracts layers from keymap source text and decodes
// individual bindings into key descriptors.
//
// The extractor is a scanner, not a full devicetree parser. It looks for
// blocks shaped like
//
//	NAME {
//	    bindings = < &kp Q &mt LSFT S ... >;
//	};
//
// and silently skips everything else (comments, macros, combos, other
// nodes).
package keymap

import (
	"regexp"
	"strings"
)

// layerPattern matches one layer block. Group 1 is the layer name, group 2
// the raw binding blob.
var layerPattern = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_]*)\s*\{\s*bindings\s*=\s*<([^>]*)>\s*;\s*\}\s*;`)

// commentPattern matches // line comments and /* */ block comments.
var commentPattern = regexp.MustCompile(`(?s)//[^\n]*|/\*.*?\*/`)

// Layer is a named set of bindings. Keys[i] is the binding for physical
// position i.
type Layer struct {
	Name string
	Keys []string
}

// LayerMap is the ordered set of layers found in a keymap.
type LayerMap struct {
	layers []Layer
}

// Parse scans raw keymap text and returns the layers it contains, in source
// order. Regions that don't match the layer block shape are ignored; Parse
// never fails.
func Parse(raw string) *LayerMap {
	m := &LayerMap{}
	for _, match := range layerPattern.FindAllStringSubmatch(raw, -1) {
		if len(match) != 3 || match[1] == "" {
			continue
		}
		m.layers = append(m.layers, Layer{
			Name: match[1],
			Keys: splitBindings(match[2]),
		})
	}
	return m
}

// splitBindings turns a binding blob into tokens, each starting with '&'.
func splitBindings(blob string) []string {
	blob = commentPattern.ReplaceAllString(blob, " ")
	keys := []string{}
	for _, frag := range strings.Split(blob, "&") {
		fields := strings.Fields(frag)
		if len(fields) == 0 {
			continue
		}
		keys = append(keys, "&"+strings.Join(fields, " "))
	}
	return keys
}

// Layers returns the layers in source order.
func (m *LayerMap) Layers() []Layer {
	return m.layers
}

// Len returns the number of layers.
func (m *LayerMap) Len() int {
	return len(m.layers)
}

// Names returns the layer names in source order.
func (m *LayerMap) Names() []string {
	names := make([]string, len(m.layers))
	for i, l := range m.layers {
		names[i] = l.Name
	}
	return names
}

// Find returns the bindings of the named layer. If several layers share a
// name, the first one wins.
func (m *LayerMap) Find(name string) ([]string, bool) {
	i, ok := m.LayerIndex(name)
	if !ok {
		return nil, false
	}
	return m.layers[i].Keys, true
}

// LayerIndex returns the position of the named layer in source order.
func (m *LayerMap) LayerIndex(name string) (int, bool) {
	for i, l := range m.layers {
		if l.Name == name {
			return i, true
		}
	}
	return -1, false
}

// Reference is a layer-switch binding whose target layer does not exist.
type Reference struct {
	Layer    string // layer containing the binding
	Position int    // key index within that layer
	Target   string // referenced layer name
}

// References reports layer-switch bindings (&lt, &to, &sl, &mo) that name a
// layer missing from the map. Bindings that fail to decode are skipped.
func (m *LayerMap) References() []Reference {
	var refs []Reference
	for _, l := range m.layers {
		for i, tok := range l.Keys {
			target, ok := layerTarget(tok)
			if !ok {
				continue
			}
			if _, found := m.LayerIndex(target); !found {
				refs = append(refs, Reference{Layer: l.Name, Position: i, Target: target})
			}
		}
	}
	return refs
}

// layerTarget returns the layer a layer-switch binding activates.
func layerTarget(token string) (string, bool) {
	d, err := Decode(token)
	if err != nil {
		return "", false
	}
	switch d.Layer {
	case LayerHold:
		return d.Hold, true
	case LayerPrimary, LayerPrimarySticky, LayerPrimaryHold:
		return d.Primary, true
	}
	return "", false
}

// Uneven returns the names of layers whose key count differs from want.
func (m *LayerMap) Uneven(want int) []string {
	var names []string
	for _, l := range m.layers {
		if len(l.Keys) != want {
			names = append(names, l.Name)
		}
	}
	return names
}
