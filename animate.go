package vidgen

import (
	"fmt"
	"maps"
	"math"
	"slices"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween/ease"
)

// animTarget is one parameter an Animate drives toward its bound value.
type animTarget struct {
	name     string
	initial  Value
	captured bool
}

// Animate interpolates parameters of the object named by its object
// reference from their value on first execution to the values bound on the
// animate itself. It never suspends the scene.
type Animate struct {
	entityBase
	duration Param[int]
	easing   Param[string]

	targets []animTarget
	start   int
	started bool

	objIndex int
	located  bool
}

// NewAnimate returns an animate with no targets and zero duration.
func NewAnimate(consts *Constants) *Animate {
	return &Animate{
		entityBase: newEntityBase(EntityAnimate, consts),
		duration:   NewParam(0),
		easing:     NewParam(""),
	}
}

// ApplyParameters binds duration and easing; every other key becomes an
// interpolation target. Target values are kept in the animate's store so
// identifiers resolve when the animation runs.
func (a *Animate) ApplyParameters(p Params) error {
	errs := collect(
		a.duration.bind(p, "duration"),
		a.easing.bind(p, "easing"),
	)
	for _, k := range slices.Sorted(maps.Keys(p)) {
		if k == "duration" || k == "easing" {
			continue
		}
		a.store.Set(k, p[k])
		if !slices.ContainsFunc(a.targets, func(t animTarget) bool { return t.name == k }) {
			a.targets = append(a.targets, animTarget{name: k})
		}
	}
	return joinParamErrors(errs)
}

func (a *Animate) Param(name string) (ParamRef, bool) {
	return lookupParam([]namedCell{
		{"duration", &a.duration},
		{"easing", &a.easing},
	}, a.store, name)
}

func (a *Animate) Clone() Entity {
	c := *a
	c.entityBase = a.cloneBase()
	c.targets = slices.Clone(a.targets)
	return &c
}

// Targets returns the names of the parameters the animate drives.
func (a *Animate) Targets() []string {
	names := make([]string, len(a.targets))
	for i, t := range a.targets {
		names[i] = t.name
	}
	return names
}

// Execute advances every target for the scene's current frame.
func (a *Animate) Execute(s *Scene) (ExecResult, error) {
	obj, err := a.target(s)
	if err != nil {
		return Pass, err
	}
	ms, err := a.duration.Get(a.store)
	if err != nil {
		return Pass, err
	}
	fn, err := a.curve()
	if err != nil {
		return Pass, err
	}
	total := FramesFor(ms, s.FPS())

	for i := range a.targets {
		t := &a.targets[i]
		ref, ok := obj.Param(t.name)
		if !ok {
			continue
		}
		if !t.captured {
			v, err := ref.Value()
			if err != nil {
				return Pass, fmt.Errorf("animate %q start value: %w", t.name, err)
			}
			t.initial = v
			t.captured = true
			if !a.started {
				a.start = s.Frame()
				a.started = true
			}
		}
		goal, err := a.store.Resolve(t.name)
		if err != nil {
			return Pass, err
		}
		p := progress(s.Frame()-a.start, total)
		if v, ok := interpolate(t.initial, goal, p, applyEasing(fn, p)); ok {
			ref.SetTyped(v)
		}
	}
	return Pass, nil
}

// target resolves the object reference to a scene index once and fetches
// the entity through the scene on every call.
func (a *Animate) target(s *Scene) (Entity, error) {
	if !a.located {
		name, ok := a.ObjectRef()
		if !ok {
			return nil, fmt.Errorf("animate without target: %w", ErrNoObject)
		}
		idx, err := s.IndexOf(name)
		if err != nil {
			return nil, err
		}
		a.objIndex = idx
		a.located = true
	}
	return s.Entity(a.objIndex), nil
}

func (a *Animate) curve() (ease.TweenFunc, error) {
	name, err := a.easing.Get(a.store)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, nil
	}
	return Easing(name)
}

// progress returns elapsed/total clamped to [0, 1]. A zero-length animation
// is complete immediately.
func progress(elapsed, total int) float64 {
	switch {
	case elapsed < 0:
		return 0
	case total <= 0 || elapsed >= total:
		return 1
	default:
		return float64(elapsed) / float64(total)
	}
}

// interpolate blends start toward goal. Numbers and colours use the eased
// progress; strings switch to goal only once linear progress reaches 1. The
// result carries start's kind. It reports false when the payload
// alternatives differ.
func interpolate(start, goal Value, linear, eased float64) (Value, bool) {
	switch s := start.Payload().(type) {
	case int:
		g, ok := goal.Payload().(int)
		if !ok {
			return Value{}, false
		}
		return NewValue(start.Kind, int(float64(s)+float64(g-s)*eased)), true
	case float64:
		g, ok := goal.Payload().(float64)
		if !ok {
			return Value{}, false
		}
		return NewValue(start.Kind, s+(g-s)*eased), true
	case RGB:
		g, ok := goal.Payload().(RGB)
		if !ok {
			return Value{}, false
		}
		return NewValue(start.Kind, blendRGB(s, g, eased)), true
	case string:
		g, ok := goal.Payload().(string)
		if !ok {
			return Value{}, false
		}
		if linear >= 1 {
			return NewValue(start.Kind, g), true
		}
		return NewValue(start.Kind, s), true
	}
	return Value{}, false
}

// blendRGB mixes colour channels in RGB space and alpha linearly.
func blendRGB(from, to RGB, t float64) RGB {
	c1 := colorful.Color{R: float64(from.R()) / 255, G: float64(from.G()) / 255, B: float64(from.B()) / 255}
	c2 := colorful.Color{R: float64(to.R()) / 255, G: float64(to.G()) / 255, B: float64(to.B()) / 255}
	r, g, b := c1.BlendRgb(c2, t).Clamped().RGB255()
	alpha := float64(from.A()) + (float64(to.A())-float64(from.A()))*t
	alpha = math.Max(0, math.Min(255, math.Round(alpha)))
	return ARGB(uint8(alpha), r, g, b)
}
