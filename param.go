package vidgen

import "fmt"

// Param is a deferred parameter cell. It holds either a literal T or the
// name of a binding that is looked up in a ValueStore every time the value
// is read.
type Param[T Scalar] struct {
	value T
	kind  Kind
	key   string
	keyed bool
}

// NewParam returns a cell holding a literal default.
func NewParam[T Scalar](v T) Param[T] {
	return Param[T]{value: v, kind: defaultKind[T]()}
}

func defaultKind[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case RGB:
		return KindRGB
	case string:
		return KindString
	default:
		return KindFloat
	}
}

// Set binds a literal. A resolve key, if any, stays in effect.
func (p *Param[T]) Set(v T) {
	p.value = v
}

// SetResolveKey makes the cell resolve key against the store on every read.
func (p *Param[T]) SetResolveKey(key string) {
	p.key = key
	p.keyed = true
}

// ResolveKey returns the resolve key, if one is set.
func (p *Param[T]) ResolveKey() (string, bool) {
	return p.key, p.keyed
}

// Get returns the cell's value. A keyed cell re-queries store on every call
// and refreshes its cache; a literal cell ignores the store.
func (p *Param[T]) Get(store *ValueStore) (T, error) {
	if !p.keyed {
		return p.value, nil
	}
	v, err := Get[T](store, p.key)
	if err != nil {
		return p.value, err
	}
	p.value = v
	return v, nil
}

// Value returns the literal (or last resolved value) as a tagged Value.
func (p *Param[T]) Value() Value {
	return Value{Kind: p.kind, data: p.value}
}

// SetTyped writes v into the cell when its payload is a T. Mismatched
// payloads are ignored and reported as false.
func (p *Param[T]) SetTyped(v Value) bool {
	t, ok := As[T](v)
	if !ok {
		return false
	}
	p.value = t
	return true
}

// bind applies params[key] to the cell. Identifiers become resolve keys and
// are never looked up here; literals must carry a T payload.
func (p *Param[T]) bind(params Params, key string) error {
	v, ok := params[key]
	if !ok {
		return nil
	}
	if ident, isIdent := v.Identifier(); isIdent {
		p.SetResolveKey(ident)
		return nil
	}
	t, ok := As[T](v)
	if !ok {
		return &ParamTypeError{Key: key, Want: alternativeName[T](), Got: v}
	}
	p.value = t
	p.kind = v.Kind
	return nil
}

// cell is the type-erased view of a Param used for cross-entity access.
type cell interface {
	current(store *ValueStore) (Value, error)
	setTyped(v Value) bool
}

func (p *Param[T]) current(store *ValueStore) (Value, error) {
	if !p.keyed {
		return p.Value(), nil
	}
	v, err := store.Resolve(p.key)
	if err != nil {
		return Value{}, err
	}
	if _, ok := As[T](v); !ok {
		return Value{}, fmt.Errorf("%q wants %s, got %s: %w", p.key, alternativeName[T](), v, ErrTypeMismatch)
	}
	p.value, _ = As[T](v)
	return v, nil
}

func (p *Param[T]) setTyped(v Value) bool {
	return p.SetTyped(v)
}

// ParamRef is a handle to an exposed parameter of an entity, paired with the
// store the parameter resolves against.
type ParamRef struct {
	cell  cell
	store *ValueStore
}

// Value returns the parameter's current value, resolving keyed cells
// through the owning entity's store.
func (r ParamRef) Value() (Value, error) {
	return r.cell.current(r.store)
}

// SetTyped writes v back into the parameter if the payload alternative matches.
func (r ParamRef) SetTyped(v Value) bool {
	return r.cell.setTyped(v)
}

// namedCell couples an exposed parameter name with its cell.
type namedCell struct {
	name string
	cell cell
}
