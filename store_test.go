package vidgen

import (
	"errors"
	"testing"
)

func testConsts(t *testing.T, kv map[string]Value) *Constants {
	t.Helper()
	c := NewConstants()
	for k, v := range kv {
		if err := c.Define(k, v); err != nil {
			t.Fatalf("Define(%q): %v", k, err)
		}
	}
	return c
}

func TestConstantsCaseInsensitive(t *testing.T) {
	c := testConsts(t, map[string]Value{"Speed": FloatValue(3)})
	if v, ok := c.Lookup("SPEED"); !ok || v.Payload() != 3.0 {
		t.Errorf("Lookup(SPEED) = %v, %v", v, ok)
	}
	if err := c.Define("speed", FloatValue(4)); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Define duplicate err = %v, want ErrDuplicate", err)
	}
}

func TestBuildConstants(t *testing.T) {
	red := ColorValue(0xffff0000)
	tests := []struct {
		name    string
		cmds    []*Command
		wantErr error
	}{
		{"ok", []*Command{{Ident: "a", Value: &red}}, nil},
		{"unnamed", []*Command{{Value: &red}}, ErrMissingIdentifier},
		{"no value", []*Command{{Ident: "a"}}, ErrMissingValue},
		{"duplicate", []*Command{{Ident: "a", Value: &red}, {Ident: "A", Value: &red}}, ErrDuplicate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewConstants()
			err := c.BuildConstants(&Command{Children: tt.cmds})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNilConstants(t *testing.T) {
	var c *Constants
	if _, ok := c.Lookup("x"); ok {
		t.Error("nil table reported a hit")
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
}

func TestResolve(t *testing.T) {
	consts := testConsts(t, map[string]Value{"speed": FloatValue(3), "fill": ColorValue(0xff00ff00)})
	s := NewValueStore(consts)
	s.Set("x", FloatValue(7))
	s.Set("y", IdentValue("speed"))
	s.Set("bad", IdentValue("missing"))

	tests := []struct {
		name    string
		want    any
		wantErr error
	}{
		{"x", 7.0, nil},
		{"y", 3.0, nil},
		{"fill", RGB(0xff00ff00), nil},
		{"bad", nil, ErrUnresolved},
		{"nothing", nil, ErrUnresolved},
	}
	for _, tt := range tests {
		v, err := s.Resolve(tt.name)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Resolve(%q) err = %v, want %v", tt.name, err, tt.wantErr)
			}
			continue
		}
		if err != nil || v.Payload() != tt.want {
			t.Errorf("Resolve(%q) = %v, %v, want %v", tt.name, v, err, tt.want)
		}
	}
}

func TestResolveDoesNotChain(t *testing.T) {
	// A constant holding an identifier is returned as is.
	consts := testConsts(t, map[string]Value{"a": IdentValue("b"), "b": FloatValue(1)})
	s := NewValueStore(consts)
	s.Set("k", IdentValue("a"))
	v, err := s.Resolve("k")
	if err != nil {
		t.Fatal(err)
	}
	if name, ok := v.Identifier(); !ok || name != "b" {
		t.Errorf("Resolve = %v, want identifier(b)", v)
	}
}

func TestGetTypeMismatch(t *testing.T) {
	s := NewValueStore(nil)
	s.Set("x", StringValue("wide"))
	if _, err := Get[float64](s, "x"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("err = %v, want ErrTypeMismatch", err)
	}
	if got, err := Get[string](s, "x"); err != nil || got != "wide" {
		t.Errorf("Get[string] = %q, %v", got, err)
	}
}

func TestMergeWithKeepsLocal(t *testing.T) {
	s := NewValueStore(nil)
	s.Set("fill", ColorValue(1))
	other := NewValueStore(nil)
	other.Set("fill", ColorValue(2))
	other.Set("r", FloatValue(5))

	s.MergeWith(other)
	s.MergeWith(other)
	s.MergeWith(s)

	if v, _ := s.Raw("fill"); v.Payload() != RGB(1) {
		t.Errorf("fill = %v, want local value kept", v)
	}
	if v, ok := s.Raw("r"); !ok || v.Payload() != 5.0 {
		t.Errorf("r = %v, %v, want merged 5", v, ok)
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d, want 2", s.Len())
	}
}

func TestStoreCloneIndependent(t *testing.T) {
	s := NewValueStore(nil)
	s.Set("a", FloatValue(1))
	c := s.Clone()
	c.Set("a", FloatValue(2))
	if v, _ := s.Raw("a"); v.Payload() != 1.0 {
		t.Errorf("original a = %v, want 1", v)
	}
}
