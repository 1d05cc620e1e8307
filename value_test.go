package vidgen

import (
	"slices"
	"testing"
)

func TestZeroValue(t *testing.T) {
	var v Value
	if v.Kind != KindFloat {
		t.Errorf("Kind = %v, want float", v.Kind)
	}
	if got, ok := As[int](v); !ok || got != 0 {
		t.Errorf("As[int] = %v, %v, want 0, true", got, ok)
	}
}

func TestKindIndependentOfPayload(t *testing.T) {
	v := NewValue(KindTimespec, 250)
	if v.Kind != KindTimespec {
		t.Errorf("Kind = %v, want timespec", v.Kind)
	}
	if ms, ok := As[int](v); !ok || ms != 250 {
		t.Errorf("As[int] = %v, %v, want 250, true", ms, ok)
	}
	if _, ok := As[float64](v); ok {
		t.Error("As[float64] succeeded on an int payload")
	}
}

func TestAs(t *testing.T) {
	if f, ok := As[float64](FloatValue(1.5)); !ok || f != 1.5 {
		t.Errorf("As[float64] = %v, %v", f, ok)
	}
	if s, ok := As[string](StringValue("hi")); !ok || s != "hi" {
		t.Errorf("As[string] = %q, %v", s, ok)
	}
	if c, ok := As[RGB](ColorValue(0xff102030)); !ok || c != 0xff102030 {
		t.Errorf("As[RGB] = %#x, %v", c, ok)
	}
	if _, ok := As[int](FloatValue(1)); ok {
		t.Error("As[int] succeeded on a float payload")
	}
}

func TestSameAlternative(t *testing.T) {
	tests := []struct {
		a, b Value
		want bool
	}{
		{IntValue(1), TimespecValue(2), true},
		{FloatValue(1), FloatValue(2), true},
		{IntValue(1), FloatValue(1), false},
		{ColorValue(1), ColorValue(2), true},
		{StringValue("a"), IdentValue("b"), true},
		{StringValue("a"), ColorValue(2), false},
	}
	for _, tt := range tests {
		if got := SameAlternative(tt.a, tt.b); got != tt.want {
			t.Errorf("SameAlternative(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIdentifier(t *testing.T) {
	if name, ok := IdentValue("speed").Identifier(); !ok || name != "speed" {
		t.Errorf("Identifier = %q, %v, want speed, true", name, ok)
	}
	if _, ok := StringValue("speed").Identifier(); ok {
		t.Error("string literal reported as identifier")
	}
}

func TestRGBChannels(t *testing.T) {
	c := ARGB(0x80, 0x11, 0x22, 0x33)
	if c != 0x80112233 {
		t.Errorf("ARGB = %#x, want 0x80112233", uint32(c))
	}
	if c.A() != 0x80 || c.R() != 0x11 || c.G() != 0x22 || c.B() != 0x33 {
		t.Errorf("channels = %x %x %x %x", c.A(), c.R(), c.G(), c.B())
	}
}

func TestValueString(t *testing.T) {
	if got := TimespecValue(500).String(); got != "timespec(500)" {
		t.Errorf("String = %q, want timespec(500)", got)
	}
	if got := Kind(42).String(); got != "kind(42)" {
		t.Errorf("Kind(42).String = %q", got)
	}
}

func TestParamsCloneIndependent(t *testing.T) {
	p := Params{"x": FloatValue(1), "y": FloatValue(2)}
	c := p.Clone()
	c.Remove("x")
	if _, ok := p["x"]; !ok {
		t.Error("Remove on clone affected original")
	}
	if got := Params(nil).Clone(); got == nil {
		t.Error("Clone of nil returned nil map")
	}

	dst := Params{"x": FloatValue(9)}
	p.MergeInto(dst)
	if dst["x"].Payload() != 1.0 || dst["y"].Payload() != 2.0 {
		t.Errorf("MergeInto = %v", dst)
	}
}

func TestAttributes(t *testing.T) {
	a := NewAttributes("fill")
	a.Add("stroke")
	a.Merge(NewAttributes("r", "fill"))
	if !a.Has("r") || a.Has("x") {
		t.Errorf("attributes = %v", a.Names())
	}
	if got := a.Names(); !slices.Equal(got, []string{"fill", "r", "stroke"}) {
		t.Errorf("Names = %v", got)
	}
}
