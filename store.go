package vidgen

import (
	"fmt"
	"maps"

	"golang.org/x/text/cases"
)

// foldName case-folds a name for the case-insensitive registries
// (constants, factory names, prototypes).
func foldName(name string) string {
	return cases.Fold().String(name)
}

// Constants is the process-wide constant table. It is populated once from a
// consts block and read-only afterwards. Keys are case-folded.
type Constants struct {
	values map[string]Value
}

// NewConstants returns an empty table.
func NewConstants() *Constants {
	return &Constants{values: make(map[string]Value)}
}

// BuildConstants fills the table from the children of a consts command.
// Every child must be named, carry a literal value, and be unique after
// case folding.
func (c *Constants) BuildConstants(cmd *Command) error {
	if cmd == nil {
		return nil
	}
	for _, sc := range cmd.Children {
		if sc.Ident == "" {
			return ErrMissingIdentifier
		}
		key := foldName(sc.Ident)
		if _, dup := c.values[key]; dup {
			return fmt.Errorf("constant %q: %w", sc.Ident, ErrDuplicate)
		}
		if sc.Value == nil {
			return fmt.Errorf("constant %q: %w", sc.Ident, ErrMissingValue)
		}
		c.values[key] = *sc.Value
	}
	return nil
}

// Define adds a single constant. Used by tests and programmatic scenes.
func (c *Constants) Define(name string, v Value) error {
	key := foldName(name)
	if _, dup := c.values[key]; dup {
		return fmt.Errorf("constant %q: %w", name, ErrDuplicate)
	}
	c.values[key] = v
	return nil
}

// Lookup returns the constant bound to key.
func (c *Constants) Lookup(key string) (Value, bool) {
	if c == nil {
		return Value{}, false
	}
	v, ok := c.values[foldName(key)]
	return v, ok
}

// Len returns the number of constants.
func (c *Constants) Len() int {
	if c == nil {
		return 0
	}
	return len(c.values)
}

// ValueStore is the per-entity scope of bound values. Lookups that miss
// locally fall back to the constants table.
type ValueStore struct {
	values map[string]Value
	consts *Constants
}

// NewValueStore returns an empty store backed by consts (which may be nil).
func NewValueStore(consts *Constants) *ValueStore {
	return &ValueStore{values: make(map[string]Value), consts: consts}
}

// Set binds name to v, replacing any previous binding.
func (s *ValueStore) Set(name string, v Value) {
	s.values[name] = v
}

// Raw returns the local binding for name without resolving it.
func (s *ValueStore) Raw(name string) (Value, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Len returns the number of local bindings.
func (s *ValueStore) Len() int {
	return len(s.values)
}

// Resolve returns the effective value for name: a local identifier binding is
// looked up in the constants, any other local binding is returned as is, and
// a missing name is looked up in the constants directly.
func (s *ValueStore) Resolve(name string) (Value, error) {
	if v, ok := s.values[name]; ok {
		ident, isIdent := v.Identifier()
		if !isIdent {
			return v, nil
		}
		c, ok := s.consts.Lookup(ident)
		if !ok {
			return Value{}, fmt.Errorf("%q bound to %q: %w", name, ident, ErrUnresolved)
		}
		return c, nil
	}
	c, ok := s.consts.Lookup(name)
	if !ok {
		return Value{}, fmt.Errorf("%q: %w", name, ErrUnresolved)
	}
	return c, nil
}

// MergeWith copies every binding of other that is absent locally. Existing
// bindings are never overwritten, so repeated merges are idempotent.
func (s *ValueStore) MergeWith(other *ValueStore) {
	if other == nil || other == s {
		return
	}
	for k, v := range other.values {
		if _, ok := s.values[k]; !ok {
			s.values[k] = v
		}
	}
}

// Clone returns an independent copy sharing the constants table.
func (s *ValueStore) Clone() *ValueStore {
	return &ValueStore{values: maps.Clone(s.values), consts: s.consts}
}

// Get resolves name in s and extracts its payload as T.
func Get[T Scalar](s *ValueStore, name string) (T, error) {
	var zero T
	v, err := s.Resolve(name)
	if err != nil {
		return zero, err
	}
	t, ok := As[T](v)
	if !ok {
		return zero, fmt.Errorf("%q wants %s, got %s: %w", name, alternativeName[T](), v, ErrTypeMismatch)
	}
	return t, nil
}
