package vidgen

import (
	"fmt"
	"io"
	"log"
)

// Constructor builds a fresh entity bound to the given constants table.
type Constructor func(consts *Constants) Entity

// Factory creates entities by name. Names are case-insensitive. A name is
// first matched against registered constructors and then against
// prototypes, which are handed out as deep clones only.
type Factory struct {
	consts     *Constants
	ctors      map[string]Constructor
	prototypes map[string]Entity
	logger     *log.Logger
}

// NewFactory returns a factory with the built-in entities registered:
// rectangle, circle, composite, wait and animate.
func NewFactory(consts *Constants) *Factory {
	f := &Factory{
		consts:     consts,
		ctors:      make(map[string]Constructor),
		prototypes: make(map[string]Entity),
		logger:     log.New(io.Discard, "", 0),
	}
	f.Register("rectangle", func(c *Constants) Entity { return NewRectangle(c) })
	f.Register("circle", func(c *Constants) Entity { return NewCircle(c) })
	f.Register("composite", func(c *Constants) Entity { return NewComposite(c) })
	f.Register("wait", func(c *Constants) Entity { return NewWait(c) })
	f.Register("animate", func(c *Constants) Entity { return NewAnimate(c) })
	return f
}

// Register binds a constructor to name, replacing any previous one.
func (f *Factory) Register(name string, ctor Constructor) {
	f.ctors[foldName(name)] = ctor
}

// RegisterPrototype stores e as the template for name. Creating name later
// returns clones of e; e itself is never handed out.
func (f *Factory) RegisterPrototype(name string, e Entity) error {
	key := foldName(name)
	if _, dup := f.prototypes[key]; dup {
		return fmt.Errorf("prototype %q: %w", name, ErrDuplicate)
	}
	f.prototypes[key] = e
	return nil
}

// HasPrototype reports whether a prototype is registered under name.
func (f *Factory) HasPrototype(name string) bool {
	_, ok := f.prototypes[foldName(name)]
	return ok
}

// Create returns a new entity for name.
func (f *Factory) Create(name string) (Entity, error) {
	key := foldName(name)
	if ctor, ok := f.ctors[key]; ok {
		return ctor(f.consts), nil
	}
	if proto, ok := f.prototypes[key]; ok {
		return proto.Clone(), nil
	}
	return nil, fmt.Errorf("%q: %w", name, ErrNoFactory)
}

// configure applies a command's body, parameters, attributes and object
// reference to e, in that order. Parameter type failures are logged and
// skipped; anything else fails the build.
func (f *Factory) configure(e Entity, cmd *Command) error {
	if len(cmd.Children) > 0 {
		if err := e.ApplyBody(cmd, f); err != nil {
			return err
		}
	}
	if cmd.Params != nil {
		if err := e.ApplyParameters(cmd.Params); err != nil {
			f.logger.Printf("warning: %s: %v", cmd.label(), err)
		}
	}
	if cmd.Attributes != nil {
		e.ApplyAttributes(cmd.Attributes)
	}
	if cmd.ObjectRef != "" {
		e.SetObjectRef(cmd.ObjectRef)
	}
	return nil
}
