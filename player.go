package vidgen

import "fmt"

// Frame is one rendered frame of a scene list.
type Frame struct {
	// Index numbers frames across all scenes, starting at 0.
	Index int
	// Scene is the position of the scene in the played list.
	Scene int
	// SceneFrame is the frame number within the scene.
	SceneFrame int
	Background RGB
	// Commands is only valid until the next call to Player.Next.
	Commands []DrawCommand
}

// FrameSink consumes rendered frames in order.
type FrameSink interface {
	WriteFrame(f Frame) error
}

// Player steps a list of scenes one frame at a time, numbering frames
// globally. Each scene runs from Begin until NextFrame reports the end.
type Player struct {
	scenes []*Scene
	bg     RGB
	buf    *CommandBuffer

	current int
	started bool
	offset  int
}

// NewPlayer returns a player over scenes. Frames are cleared to cfg's
// background colour.
func NewPlayer(scenes []*Scene, cfg Config) *Player {
	return &Player{scenes: scenes, bg: cfg.Background, buf: NewCommandBuffer()}
}

// Next renders the next frame. It reports false once every scene has
// finished.
func (p *Player) Next() (Frame, bool, error) {
	for p.current < len(p.scenes) {
		s := p.scenes[p.current]
		if !p.started {
			p.started = true
			if err := s.Begin(); err != nil {
				return Frame{}, false, fmt.Errorf("scene %d: %w", p.current, err)
			}
			return p.render(s)
		}
		more, err := s.NextFrame()
		if err != nil {
			return Frame{}, false, fmt.Errorf("scene %d: %w", p.current, err)
		}
		if more {
			return p.render(s)
		}
		p.offset += s.Frame()
		p.current++
		p.started = false
	}
	return Frame{}, false, nil
}

func (p *Player) render(s *Scene) (Frame, bool, error) {
	p.buf.Reset()
	if err := s.RenderFrame(p.buf); err != nil {
		return Frame{}, false, fmt.Errorf("scene %d: %w", p.current, err)
	}
	return Frame{
		Index:      p.offset + s.Frame(),
		Scene:      p.current,
		SceneFrame: s.Frame(),
		Background: p.bg,
		Commands:   p.buf.Commands(),
	}, true, nil
}

// RenderAll plays scenes to completion into sink and returns the number of
// frames written.
func RenderAll(scenes []*Scene, cfg Config, sink FrameSink) (int, error) {
	p := NewPlayer(scenes, cfg)
	n := 0
	for {
		f, ok, err := p.Next()
		if err != nil {
			return n, err
		}
		if !ok {
			return n, nil
		}
		if err := sink.WriteFrame(f); err != nil {
			return n, fmt.Errorf("write frame %d: %w", f.Index, err)
		}
		n++
	}
}
