package vidgen

import (
	"errors"
	"maps"
	"math"
)

// EntityType distinguishes the three entity variants.
type EntityType uint8

const (
	EntityObject  EntityType = iota // drawable object
	EntityWait                      // synchronization barrier
	EntityAnimate                   // parameter interpolation
)

func (t EntityType) String() string {
	switch t {
	case EntityObject:
		return "object"
	case EntityWait:
		return "wait"
	case EntityAnimate:
		return "animate"
	default:
		return "unknown"
	}
}

// ObjectType distinguishes drawable shapes. Mostly useful for diagnostics.
type ObjectType uint8

const (
	ObjectRectangle ObjectType = iota
	ObjectCircle
	ObjectComposite
)

// ExecResult is the outcome of executing an entity for one frame.
type ExecResult uint8

const (
	Pass    ExecResult = iota // nothing blocks the scene
	Suspend                   // hold activation at this entity until it passes
)

func (r ExecResult) String() string {
	if r == Suspend {
		return "suspend"
	}
	return "pass"
}

// Entity is a node of a scene. The set of implementations is closed:
// *Rectangle, *Circle, *Composite, *Wait and *Animate.
type Entity interface {
	// Type returns the variant tag.
	Type() EntityType
	// Store returns the entity's value store.
	Store() *ValueStore
	// Attributes returns the names the entity declares resolvable.
	Attributes() Attributes
	// ObjectRef returns the name of the object the entity acts upon.
	ObjectRef() (string, bool)
	// SetObjectRef sets the name of the object the entity acts upon.
	SetObjectRef(name string)
	// ApplyParameters binds the parameter table. Mismatched literals are
	// skipped and reported as joined *ParamTypeError values; the rest of the
	// table is still applied.
	ApplyParameters(p Params) error
	// ApplyAttributes merges names into the attribute set.
	ApplyAttributes(a Attributes)
	// ApplyBody builds nested entities from cmd. Only containers use it.
	ApplyBody(cmd *Command, f *Factory) error
	// Param returns a handle to an exposed parameter.
	Param(name string) (ParamRef, bool)
	// Clone returns a deep copy.
	Clone() Entity
	// Execute drives time-dependent state for the scene's current frame.
	Execute(s *Scene) (ExecResult, error)

	sealed()
}

// entityBase holds the state shared by every variant.
type entityBase struct {
	kind   EntityType
	store  *ValueStore
	attrs  Attributes
	ref    string
	hasRef bool
}

func newEntityBase(kind EntityType, consts *Constants) entityBase {
	return entityBase{
		kind:  kind,
		store: NewValueStore(consts),
		attrs: make(Attributes),
	}
}

func (b *entityBase) Type() EntityType       { return b.kind }
func (b *entityBase) Store() *ValueStore     { return b.store }
func (b *entityBase) Attributes() Attributes { return b.attrs }

func (b *entityBase) ObjectRef() (string, bool) {
	return b.ref, b.hasRef
}

func (b *entityBase) SetObjectRef(name string) {
	b.ref = name
	b.hasRef = name != ""
}

func (b *entityBase) ApplyAttributes(a Attributes) {
	b.attrs.Merge(a)
}

func (b *entityBase) ApplyBody(*Command, *Factory) error {
	return nil
}

func (b *entityBase) sealed() {}

// cloneBase copies the shared state; the store and attributes are not shared
// with the original.
func (b *entityBase) cloneBase() entityBase {
	return entityBase{
		kind:   b.kind,
		store:  b.store.Clone(),
		attrs:  maps.Clone(b.attrs),
		ref:    b.ref,
		hasRef: b.hasRef,
	}
}

func lookupParam(cells []namedCell, store *ValueStore, name string) (ParamRef, bool) {
	for _, c := range cells {
		if c.name == name {
			return ParamRef{cell: c.cell, store: store}, true
		}
	}
	return ParamRef{}, false
}

// object is the drawable base: position, rotation in degrees and scale.
type object struct {
	entityBase
	shape ObjectType

	x, y   Param[float64]
	rotate Param[float64]
	scale  Param[float64]
}

func newObject(shape ObjectType, consts *Constants) object {
	return object{
		entityBase: newEntityBase(EntityObject, consts),
		shape:      shape,
		x:          NewParam(0.0),
		y:          NewParam(0.0),
		rotate:     NewParam(0.0),
		scale:      NewParam(1.0),
	}
}

// Shape returns the drawable's shape tag.
func (o *object) Shape() ObjectType { return o.shape }

// Execute always passes: drawables carry no time-dependent state.
func (o *object) Execute(*Scene) (ExecResult, error) {
	return Pass, nil
}

func (o *object) bindObject(p Params) []error {
	return collect(
		o.x.bind(p, "x"),
		o.y.bind(p, "y"),
		o.rotate.bind(p, "rotate"),
		o.scale.bind(p, "scale"),
	)
}

func (o *object) objectCells() []namedCell {
	return []namedCell{
		{"x", &o.x},
		{"y", &o.y},
		{"rotate", &o.rotate},
		{"scale", &o.scale},
	}
}

// LocalTransform resolves the object's own transform against its store.
// Rotation is converted from degrees to radians.
func (o *object) LocalTransform() (Transform, error) {
	x, err := o.x.Get(o.store)
	if err != nil {
		return Transform{}, err
	}
	y, err := o.y.Get(o.store)
	if err != nil {
		return Transform{}, err
	}
	rot, err := o.rotate.Get(o.store)
	if err != nil {
		return Transform{}, err
	}
	scale, err := o.scale.Get(o.store)
	if err != nil {
		return Transform{}, err
	}
	return Transform{X: x, Y: y, Rotate: rot * math.Pi / 180, Scale: scale}, nil
}

// collect drops nil errors.
func collect(errs ...error) []error {
	out := errs[:0]
	for _, err := range errs {
		if err != nil {
			out = append(out, err)
		}
	}
	return out
}

// joinParamErrors folds bind failures into a single error, nil when none.
func joinParamErrors(groups ...[]error) error {
	var all []error
	for _, g := range groups {
		all = append(all, g...)
	}
	return errors.Join(all...)
}

// renderEntity paints e if it is a drawable and reports whether it did.
func renderEntity(e Entity, c Canvas, parent Transform) (bool, error) {
	switch d := e.(type) {
	case *Rectangle:
		return true, d.Render(c, parent)
	case *Circle:
		return true, d.Render(c, parent)
	case *Composite:
		return true, d.Render(c, parent)
	default:
		return false, nil
	}
}

// IsDrawable reports whether e paints when rendered.
func IsDrawable(e Entity) bool {
	switch e.(type) {
	case *Rectangle, *Circle, *Composite:
		return true
	}
	return false
}
