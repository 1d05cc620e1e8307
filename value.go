package vidgen

import (
	"fmt"
	"maps"
	"slices"
)

// Kind tags how a Value was written in the scene description. It is
// independent of the payload alternative the Value carries.
type Kind uint8

const (
	KindFloat      Kind = iota // numeric literal
	KindString                 // quoted string literal
	KindIdentifier             // name of a constant or attribute, resolved late
	KindRGB                    // colour literal, ARGB packed
	KindTimespec               // time literal, milliseconds
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindIdentifier:
		return "identifier"
	case KindRGB:
		return "rgb"
	case KindTimespec:
		return "timespec"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// RGB is a packed 0xAARRGGBB colour.
type RGB uint32

// A returns the alpha channel.
func (c RGB) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c RGB) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c RGB) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c RGB) B() uint8 { return uint8(c) }

// ARGB packs four channels into an RGB.
func ARGB(a, r, g, b uint8) RGB {
	return RGB(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Scalar is the set of payload alternatives a Value can carry.
type Scalar interface {
	int | float64 | RGB | string
}

// Value is a tagged scalar flowing from the scene description into entities.
// The zero Value is a float-kinded int 0.
type Value struct {
	Kind Kind
	data any // int, float64, RGB or string
}

// NewValue pairs an arbitrary kind with a payload alternative.
func NewValue[T Scalar](kind Kind, payload T) Value {
	return Value{Kind: kind, data: payload}
}

// FloatValue returns a float literal.
func FloatValue(f float64) Value { return Value{Kind: KindFloat, data: f} }

// IntValue returns a float-kinded literal carried as an int.
func IntValue(i int) Value { return Value{Kind: KindFloat, data: i} }

// StringValue returns a string literal.
func StringValue(s string) Value { return Value{Kind: KindString, data: s} }

// IdentValue returns an identifier to be resolved later.
func IdentValue(name string) Value { return Value{Kind: KindIdentifier, data: name} }

// ColorValue returns a colour literal.
func ColorValue(c RGB) Value { return Value{Kind: KindRGB, data: c} }

// TimespecValue returns a time literal in milliseconds.
func TimespecValue(ms int) Value { return Value{Kind: KindTimespec, data: ms} }

// Payload returns the raw payload (int, float64, RGB or string).
func (v Value) Payload() any {
	if v.data == nil {
		return 0
	}
	return v.data
}

// Identifier returns the name an identifier value refers to.
func (v Value) Identifier() (string, bool) {
	if v.Kind != KindIdentifier {
		return "", false
	}
	s, ok := v.data.(string)
	return s, ok
}

func (v Value) String() string {
	return fmt.Sprintf("%s(%v)", v.Kind, v.Payload())
}

// As extracts the payload as T. It reports false when the payload carries a
// different alternative.
func As[T Scalar](v Value) (T, bool) {
	t, ok := v.Payload().(T)
	return t, ok
}

// SameAlternative reports whether a and b carry the same payload alternative.
func SameAlternative(a, b Value) bool {
	switch a.Payload().(type) {
	case int:
		_, ok := b.Payload().(int)
		return ok
	case float64:
		_, ok := b.Payload().(float64)
		return ok
	case RGB:
		_, ok := b.Payload().(RGB)
		return ok
	case string:
		_, ok := b.Payload().(string)
		return ok
	}
	return false
}

// alternativeName names the payload alternative of T for diagnostics.
func alternativeName[T Scalar]() string {
	var zero T
	switch any(zero).(type) {
	case int:
		return "int"
	case float64:
		return "float"
	case RGB:
		return "rgb"
	default:
		return "string"
	}
}

// Params maps parameter names to values. Keys are case-sensitive.
type Params map[string]Value

// Clone returns a shallow copy; values are immutable so this is a full copy.
func (p Params) Clone() Params {
	if p == nil {
		return Params{}
	}
	return maps.Clone(p)
}

// MergeInto copies every entry into dst, overwriting existing keys.
func (p Params) MergeInto(dst Params) {
	maps.Copy(dst, p)
}

// Remove deletes the given keys.
func (p Params) Remove(keys ...string) {
	for _, k := range keys {
		delete(p, k)
	}
}

// Attributes is the set of parameter names an entity declares resolvable.
type Attributes map[string]struct{}

// NewAttributes builds a set from names.
func NewAttributes(names ...string) Attributes {
	a := make(Attributes, len(names))
	for _, n := range names {
		a[n] = struct{}{}
	}
	return a
}

// Add inserts names into the set.
func (a Attributes) Add(names ...string) {
	for _, n := range names {
		a[n] = struct{}{}
	}
}

// Has reports whether name is in the set.
func (a Attributes) Has(name string) bool {
	_, ok := a[name]
	return ok
}

// Merge adds every name of other.
func (a Attributes) Merge(other Attributes) {
	for n := range other {
		a[n] = struct{}{}
	}
}

// Names returns the names in sorted order.
func (a Attributes) Names() []string {
	return slices.Sorted(maps.Keys(a))
}
