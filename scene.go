package vidgen

import (
	"fmt"
	"io"
	"log"
	"strconv"
	"time"
)

// Scene owns an ordered list of entities and steps them through a discrete
// frame clock. Entities activate in declaration order; a suspended entity
// holds back everything declared after it until it passes.
type Scene struct {
	entities []Entity
	names    map[string]int
	counter  int

	fps      int
	frame    int
	maxFrame int

	cursor  int
	working []int

	debug  bool
	logger *log.Logger
}

// NewScene returns an empty scene clocked at fps.
func NewScene(fps int) *Scene {
	return &Scene{
		names:   make(map[string]int),
		counter: 1,
		fps:     fps,
		logger:  log.New(io.Discard, "", 0),
	}
}

// Add appends e under name and returns the name used. An empty name is
// replaced by object<N> from the scene's counter. A name already in use is
// rebound to e; the earlier entity stays in the list but can no longer be
// looked up.
func (s *Scene) Add(name string, e Entity) string {
	if name == "" {
		name = "object" + strconv.Itoa(s.counter)
		s.counter++
	}
	s.entities = append(s.entities, e)
	s.names[name] = len(s.entities) - 1
	return name
}

// SetDuration bounds the scene to the frames covered by ms.
func (s *Scene) SetDuration(ms int) {
	s.maxFrame = FramesFor(ms, s.fps)
}

// FPS returns the frame rate the scene converts durations with.
func (s *Scene) FPS() int { return s.fps }

// Frame returns the current frame number, starting at 0.
func (s *Scene) Frame() int { return s.frame }

// MaxFrame returns the frame bound. NextFrame stops once it is reached.
func (s *Scene) MaxFrame() int { return s.maxFrame }

// Len returns the number of entities, including unreachable ones.
func (s *Scene) Len() int { return len(s.entities) }

// Entity returns the entity at index i.
func (s *Scene) Entity(i int) Entity { return s.entities[i] }

// Cursor returns the index of the next entity awaiting activation.
func (s *Scene) Cursor() int { return s.cursor }

// Working returns the committed entity indices in commitment order. The
// returned slice MUST NOT be mutated.
func (s *Scene) Working() []int { return s.working }

// IndexOf returns the index bound to name.
func (s *Scene) IndexOf(name string) (int, error) {
	i, ok := s.names[name]
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrNoObject)
	}
	return i, nil
}

// Lookup returns the entity bound to name.
func (s *Scene) Lookup(name string) (Entity, error) {
	i, err := s.IndexOf(name)
	if err != nil {
		return nil, err
	}
	return s.entities[i], nil
}

// Begin rewinds the clock and runs the first activation pass.
func (s *Scene) Begin() error {
	s.frame = 0
	s.cursor = 0
	s.working = s.working[:0]
	return s.activate()
}

// NextFrame advances the clock. It reports false once the frame bound is
// reached; otherwise it runs an activation pass.
func (s *Scene) NextFrame() (bool, error) {
	s.frame++
	if s.frame >= s.maxFrame {
		return false, nil
	}
	return true, s.activate()
}

// activate executes entities from the cursor until one suspends. Entities
// that pass are committed to the working set, except waits. Committed
// entities are never reconsidered.
func (s *Scene) activate() error {
	for ; s.cursor < len(s.entities); s.cursor++ {
		e := s.entities[s.cursor]
		res, err := e.Execute(s)
		if err != nil {
			return fmt.Errorf("activate entity %d: %w", s.cursor, err)
		}
		if res == Suspend {
			return nil
		}
		if t := e.Type(); t == EntityObject || t == EntityAnimate {
			s.working = append(s.working, s.cursor)
		}
	}
	return nil
}

// RenderFrame re-executes every committed entity and renders the drawables
// with the identity transform, in commitment order.
func (s *Scene) RenderFrame(c Canvas) error {
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	for _, idx := range s.working {
		e := s.entities[idx]
		if _, err := e.Execute(s); err != nil {
			return fmt.Errorf("frame %d: execute entity %d: %w", s.frame, idx, err)
		}
		drawn, err := renderEntity(e, c, Identity())
		if err != nil {
			return fmt.Errorf("frame %d: render entity %d: %w", s.frame, idx, err)
		}
		if drawn {
			stats.drawables++
		}
	}

	if s.debug {
		stats.frame = s.frame
		stats.renderTime = time.Since(t0)
		stats.working = len(s.working)
		stats.pending = len(s.entities) - s.cursor
		if b, ok := c.(*CommandBuffer); ok {
			stats.commands = len(b.Commands())
		}
		s.debugLog(stats)
	}
	return nil
}

// SetDebugMode enables per-frame timing and activation stats, written to
// logger.
func (s *Scene) SetDebugMode(enabled bool, logger *log.Logger) {
	s.debug = enabled
	if logger != nil {
		s.logger = logger
	}
}
