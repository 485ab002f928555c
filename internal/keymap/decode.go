package keymap

import (
	"errors"
	"fmt"
	"strings"
)

// Behavior identifies the kind of a binding.
type Behavior int

const (
	BehaviorUnknown Behavior = iota
	BehaviorKeyPress
	BehaviorModTap
	BehaviorStickyKey
	BehaviorBluetooth
	BehaviorOutput
	BehaviorTransparent
	BehaviorNone
	BehaviorLayerTap
	BehaviorToLayer
	BehaviorStickyLayer
	BehaviorMomentaryLayer
)

// behaviorSpec is the binding name and argument count of a behavior.
type behaviorSpec struct {
	kind    Behavior
	name    string
	minArgs int
	maxArgs int
}

var behaviorSpecs = []behaviorSpec{
	{kind: BehaviorKeyPress, name: "kp", minArgs: 1, maxArgs: 1},
	{kind: BehaviorModTap, name: "mt", minArgs: 2, maxArgs: 2},
	{kind: BehaviorStickyKey, name: "sk", minArgs: 1, maxArgs: 1},
	{kind: BehaviorBluetooth, name: "bt", minArgs: 1, maxArgs: 2},
	{kind: BehaviorOutput, name: "out", minArgs: 1, maxArgs: 1},
	{kind: BehaviorTransparent, name: "trans"},
	{kind: BehaviorNone, name: "none"},
	{kind: BehaviorLayerTap, name: "lt", minArgs: 2, maxArgs: 2},
	{kind: BehaviorToLayer, name: "to", minArgs: 1, maxArgs: 1},
	{kind: BehaviorStickyLayer, name: "sl", minArgs: 1, maxArgs: 1},
	{kind: BehaviorMomentaryLayer, name: "mo", minArgs: 1, maxArgs: 1},
}

// lookupBehavior finds the arity entry for a binding name such as "kp".
func lookupBehavior(name string) (behaviorSpec, bool) {
	for _, s := range behaviorSpecs {
		if s.name == name {
			return s, true
		}
	}
	return behaviorSpec{}, false
}

// String returns the binding name of the behavior, e.g. "kp".
func (b Behavior) String() string {
	for _, s := range behaviorSpecs {
		if s.kind == b {
			return s.name
		}
	}
	return "unknown"
}

// BluetoothRole marks bluetooth and output-selection bindings.
type BluetoothRole int

const (
	BluetoothNone BluetoothRole = iota
	BluetoothClear
	BluetoothSelect
	BluetoothOut
)

func (r BluetoothRole) String() string {
	switch r {
	case BluetoothClear:
		return "clear"
	case BluetoothSelect:
		return "select"
	case BluetoothOut:
		return "out"
	}
	return ""
}

// LayerRole describes how a binding activates a layer.
type LayerRole int

const (
	LayerNone LayerRole = iota
	LayerPrimary
	LayerHold
	LayerPrimarySticky
	LayerPrimaryHold
)

func (r LayerRole) String() string {
	switch r {
	case LayerPrimary:
		return "primary"
	case LayerHold:
		return "hold"
	case LayerPrimarySticky:
		return "primary-sticky"
	case LayerPrimaryHold:
		return "primary-hold"
	}
	return ""
}

// KeyDescriptor is a decoded binding. At most one of Bluetooth,
// Transparent, Disabled and Layer is set.
type KeyDescriptor struct {
	Behavior    Behavior
	Primary     string
	Hold        string
	HasHold     bool
	Bluetooth   BluetoothRole
	Transparent bool
	Disabled    bool
	Layer       LayerRole
}

// BluetoothClearArg is the bluetooth argument that clears a profile.
const BluetoothClearArg = "BT_CLR"

// outputPrefix is stripped from output-selection arguments (OUT_BLE -> BLE).
const outputPrefix = "OUT_"

var (
	// ErrUnknownBehavior is returned for a binding name Decode doesn't know.
	ErrUnknownBehavior = errors.New("unknown behavior")
	// ErrArity is returned when a binding has the wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")
	// ErrNoSigil is returned for a token that doesn't start with '&'.
	ErrNoSigil = errors.New("binding must start with &")
)

// DecodeError reports a binding that could not be decoded.
type DecodeError struct {
	Token    string
	Behavior string
	Args     []string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("can't decode %q: %v (behavior %q, args %q)", e.Token, e.Err, e.Behavior, e.Args)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decode turns a binding token like "&mt LSFT S" into a KeyDescriptor.
func Decode(token string) (KeyDescriptor, error) {
	fields := strings.Fields(token)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "&") {
		de := &DecodeError{Token: token, Err: ErrNoSigil}
		if len(fields) > 0 {
			de.Behavior, de.Args = fields[0], fields[1:]
		}
		return KeyDescriptor{}, de
	}
	name, args := strings.TrimPrefix(fields[0], "&"), fields[1:]

	spec, ok := lookupBehavior(name)
	if !ok {
		return KeyDescriptor{}, &DecodeError{Token: token, Behavior: name, Args: args, Err: ErrUnknownBehavior}
	}
	if len(args) < spec.minArgs || len(args) > spec.maxArgs {
		return KeyDescriptor{}, &DecodeError{Token: token, Behavior: name, Args: args, Err: ErrArity}
	}

	d := KeyDescriptor{Behavior: spec.kind}
	switch spec.kind {
	case BehaviorKeyPress, BehaviorStickyKey:
		d.Primary = args[0]
	case BehaviorModTap:
		d.Primary, d.Hold, d.HasHold = args[1], args[0], true
	case BehaviorBluetooth:
		d.Primary = args[len(args)-1]
		d.Bluetooth = BluetoothSelect
		if args[0] == BluetoothClearArg {
			d.Bluetooth = BluetoothClear
		}
	case BehaviorOutput:
		d.Primary = strings.Replace(args[0], outputPrefix, "", 1)
		d.Bluetooth = BluetoothOut
	case BehaviorTransparent:
		d.Transparent = true
	case BehaviorNone:
		d.Disabled = true
	case BehaviorLayerTap:
		d.Primary, d.Hold, d.HasHold = args[1], args[0], true
		d.Layer = LayerHold
	case BehaviorToLayer:
		d.Primary = args[0]
		d.Layer = LayerPrimary
	case BehaviorStickyLayer:
		d.Primary = args[0]
		d.Layer = LayerPrimarySticky
	case BehaviorMomentaryLayer:
		d.Primary = args[0]
		d.Layer = LayerPrimaryHold
	default:
		return KeyDescriptor{}, &DecodeError{Token: token, Behavior: name, Args: args, Err: ErrUnknownBehavior}
	}
	return d, nil
}
