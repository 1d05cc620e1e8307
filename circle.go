package vidgen

// Circle is a drawable circle centred on its local origin.
type Circle struct {
	object

	radius       Param[float64]
	fill, stroke Param[RGB]
	strokeWidth  Param[float64]
}

// NewCircle returns a zero-radius, transparent circle.
func NewCircle(consts *Constants) *Circle {
	return &Circle{
		object:      newObject(ObjectCircle, consts),
		radius:      NewParam(0.0),
		fill:        NewParam(RGB(0)),
		stroke:      NewParam(RGB(0)),
		strokeWidth: NewParam(0.0),
	}
}

func (ci *Circle) ApplyParameters(p Params) error {
	return joinParamErrors(
		ci.bindObject(p),
		collect(
			ci.radius.bind(p, "r"),
			ci.fill.bind(p, "fill"),
			ci.stroke.bind(p, "stroke"),
			ci.strokeWidth.bind(p, "strokewidth"),
		),
	)
}

func (ci *Circle) cells() []namedCell {
	return append(ci.objectCells(),
		namedCell{"r", &ci.radius},
		namedCell{"fill", &ci.fill},
		namedCell{"stroke", &ci.stroke},
		namedCell{"strokewidth", &ci.strokeWidth},
	)
}

func (ci *Circle) Param(name string) (ParamRef, bool) {
	return lookupParam(ci.cells(), ci.store, name)
}

func (ci *Circle) Clone() Entity {
	c := *ci
	c.entityBase = ci.cloneBase()
	return &c
}

// Render paints the circle under parent, outline first.
func (ci *Circle) Render(c Canvas, parent Transform) error {
	c.Push(parent)
	defer c.Pop()

	local, err := ci.LocalTransform()
	if err != nil {
		return err
	}
	c.Push(local)
	defer c.Pop()

	r, err := ci.radius.Get(ci.store)
	if err != nil {
		return err
	}
	fill, err := ci.fill.Get(ci.store)
	if err != nil {
		return err
	}
	stroke, err := ci.stroke.Get(ci.store)
	if err != nil {
		return err
	}
	sw, err := ci.strokeWidth.Get(ci.store)
	if err != nil {
		return err
	}

	c.StrokeCircle(0, 0, r, sw, stroke)
	c.FillCircle(0, 0, r, fill)
	return nil
}
