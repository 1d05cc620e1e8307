package vidgen

// FramesFor converts a duration in milliseconds to a frame count at fps.
// Whole seconds only: the division truncates before the multiplication.
func FramesFor(ms, fps int) int {
	return (ms / 1000) * fps
}

// Wait is a barrier that suspends scene activation for its duration,
// counted from the frame it first executes on.
type Wait struct {
	entityBase
	duration Param[int]

	start   int
	started bool
}

// NewWait returns a zero-length wait.
func NewWait(consts *Constants) *Wait {
	return &Wait{
		entityBase: newEntityBase(EntityWait, consts),
		duration:   NewParam(0),
	}
}

func (w *Wait) ApplyParameters(p Params) error {
	return joinParamErrors(collect(w.duration.bind(p, "duration")))
}

func (w *Wait) Param(name string) (ParamRef, bool) {
	return lookupParam([]namedCell{{"duration", &w.duration}}, w.store, name)
}

func (w *Wait) Clone() Entity {
	c := *w
	c.entityBase = w.cloneBase()
	return &c
}

// Execute suspends until the elapsed frame count reaches the duration.
func (w *Wait) Execute(s *Scene) (ExecResult, error) {
	if !w.started {
		w.start = s.Frame()
		w.started = true
	}
	ms, err := w.duration.Get(w.store)
	if err != nil {
		return Suspend, err
	}
	if s.Frame()-w.start >= FramesFor(ms, s.FPS()) {
		return Pass, nil
	}
	return Suspend, nil
}

// Elapsed returns the frames since the wait first executed, or -1 if it has
// not executed yet.
func (w *Wait) Elapsed(s *Scene) int {
	if !w.started {
		return -1
	}
	return s.Frame() - w.start
}
