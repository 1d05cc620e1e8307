package vidgen

// Rectangle is a drawable rectangle anchored at its local origin.
type Rectangle struct {
	object

	width, height Param[float64]
	fill, stroke  Param[RGB]
	strokeWidth   Param[float64]
}

// NewRectangle returns a zero-sized, transparent rectangle.
func NewRectangle(consts *Constants) *Rectangle {
	return &Rectangle{
		object:      newObject(ObjectRectangle, consts),
		width:       NewParam(0.0),
		height:      NewParam(0.0),
		fill:        NewParam(RGB(0)),
		stroke:      NewParam(RGB(0)),
		strokeWidth: NewParam(0.0),
	}
}

func (r *Rectangle) ApplyParameters(p Params) error {
	return joinParamErrors(
		r.bindObject(p),
		collect(
			r.width.bind(p, "width"),
			r.height.bind(p, "height"),
			r.fill.bind(p, "fill"),
			r.stroke.bind(p, "stroke"),
			r.strokeWidth.bind(p, "strokewidth"),
		),
	)
}

func (r *Rectangle) cells() []namedCell {
	return append(r.objectCells(),
		namedCell{"width", &r.width},
		namedCell{"height", &r.height},
		namedCell{"fill", &r.fill},
		namedCell{"stroke", &r.stroke},
		namedCell{"strokewidth", &r.strokeWidth},
	)
}

func (r *Rectangle) Param(name string) (ParamRef, bool) {
	return lookupParam(r.cells(), r.store, name)
}

func (r *Rectangle) Clone() Entity {
	c := *r
	c.entityBase = r.cloneBase()
	return &c
}

// Render paints the rectangle under parent. The outline is drawn before the
// fill, so the fill covers the inner half of the stroke.
func (r *Rectangle) Render(c Canvas, parent Transform) error {
	c.Push(parent)
	defer c.Pop()

	local, err := r.LocalTransform()
	if err != nil {
		return err
	}
	c.Push(local)
	defer c.Pop()

	w, err := r.width.Get(r.store)
	if err != nil {
		return err
	}
	h, err := r.height.Get(r.store)
	if err != nil {
		return err
	}
	fill, err := r.fill.Get(r.store)
	if err != nil {
		return err
	}
	stroke, err := r.stroke.Get(r.store)
	if err != nil {
		return err
	}
	sw, err := r.strokeWidth.Get(r.store)
	if err != nil {
		return err
	}

	c.StrokeRect(0, 0, w, h, sw, stroke)
	c.FillRect(0, 0, w, h, fill)
	return nil
}
