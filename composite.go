package vidgen

import (
	"errors"
	"fmt"
)

// Composite is a drawable that owns an ordered list of child entities and
// shares its resolvable attributes with them.
type Composite struct {
	object
	children []Entity
}

// NewComposite returns an empty composite.
func NewComposite(consts *Constants) *Composite {
	return &Composite{object: newObject(ObjectComposite, consts)}
}

// Children returns the owned child entities in declaration order.
func (c *Composite) Children() []Entity {
	return c.children
}

// Add appends child to the composite. The composite takes ownership.
func (c *Composite) Add(child Entity) {
	c.children = append(c.children, child)
}

// ApplyBody builds one child per command in cmd.Children. A name the factory
// cannot resolve fails the whole body.
func (c *Composite) ApplyBody(cmd *Command, f *Factory) error {
	for _, sc := range cmd.Children {
		child, err := f.Create(sc.Entity)
		if err != nil {
			return fmt.Errorf("composite child %q: %w", sc.Entity, err)
		}
		if err := f.configure(child, sc); err != nil {
			return err
		}
		c.children = append(c.children, child)
	}
	return nil
}

// ApplyParameters binds the composite's own transform, then forwards the
// table minus x and y to every child. Keys named in the attribute set are
// also stored locally so children can resolve them at render time.
func (c *Composite) ApplyParameters(p Params) error {
	errs := c.bindObject(p)

	shared := p.Clone()
	shared.Remove("x", "y")
	for k, v := range shared {
		if c.attrs.Has(k) {
			c.store.Set(k, v)
		}
	}

	for _, child := range c.children {
		if err := child.ApplyParameters(shared); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Composite) Param(name string) (ParamRef, bool) {
	return lookupParam(c.objectCells(), c.store, name)
}

// Clone deep-copies the composite and every descendant.
func (c *Composite) Clone() Entity {
	cp := *c
	cp.entityBase = c.cloneBase()
	cp.children = make([]Entity, len(c.children))
	for i, child := range c.children {
		cp.children[i] = child.Clone()
	}
	return &cp
}

// Execute forwards execution to every child so nested animations advance.
// Child results never suspend the composite.
func (c *Composite) Execute(s *Scene) (ExecResult, error) {
	for _, child := range c.children {
		if _, err := child.Execute(s); err != nil {
			return Pass, err
		}
	}
	return Pass, nil
}

// Render merges the composite's store into each child and renders drawable
// children under the composite's own transform.
func (c *Composite) Render(cv Canvas, parent Transform) error {
	cv.Push(parent)
	defer cv.Pop()

	local, err := c.LocalTransform()
	if err != nil {
		return err
	}

	for _, child := range c.children {
		child.Store().MergeWith(c.store)
		if _, err := renderEntity(child, cv, local); err != nil {
			return err
		}
	}
	return nil
}
