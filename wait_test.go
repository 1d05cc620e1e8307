package vidgen

import "testing"

func TestFramesFor(t *testing.T) {
	tests := []struct {
		ms, fps, want int
	}{
		{1000, 30, 30},
		{2000, 25, 50},
		{1500, 30, 30},
		{500, 30, 0},
		{0, 30, 0},
	}
	for _, tt := range tests {
		if got := FramesFor(tt.ms, tt.fps); got != tt.want {
			t.Errorf("FramesFor(%d, %d) = %d, want %d", tt.ms, tt.fps, got, tt.want)
		}
	}
}

// stepTo advances s with NextFrame, rendering every frame, until it reaches
// frame.
func stepTo(t *testing.T, s *Scene, frame int) {
	t.Helper()
	b := NewCommandBuffer()
	for s.Frame() < frame {
		more, err := s.NextFrame()
		if err != nil {
			t.Fatalf("NextFrame at %d: %v", s.Frame(), err)
		}
		if !more {
			t.Fatalf("scene ended at frame %d before %d", s.Frame(), frame)
		}
		b.Reset()
		if err := s.RenderFrame(b); err != nil {
			t.Fatalf("RenderFrame at %d: %v", s.Frame(), err)
		}
	}
}

func newWait(t *testing.T, ms int) *Wait {
	t.Helper()
	w := NewWait(nil)
	if err := w.ApplyParameters(Params{"duration": TimespecValue(ms)}); err != nil {
		t.Fatal(err)
	}
	return w
}

func TestWaitSuspendsForDuration(t *testing.T) {
	s := NewScene(30)
	s.SetDuration(5000)
	w := newWait(t, 1000)
	s.Add("w", w)
	s.Add("r", NewRectangle(nil))

	if err := s.Begin(); err != nil {
		t.Fatal(err)
	}
	if s.Cursor() != 0 || len(s.Working()) != 0 {
		t.Fatalf("after Begin: cursor %d, working %v", s.Cursor(), s.Working())
	}

	stepTo(t, s, 29)
	if s.Cursor() != 0 {
		t.Errorf("frame 29: cursor = %d, want 0", s.Cursor())
	}
	if got := w.Elapsed(s); got != 29 {
		t.Errorf("Elapsed = %d, want 29", got)
	}

	stepTo(t, s, 30)
	if s.Cursor() != 2 {
		t.Errorf("frame 30: cursor = %d, want 2", s.Cursor())
	}
	// The wait itself is never committed.
	if got := s.Working(); len(got) != 1 || got[0] != 1 {
		t.Errorf("working = %v, want [1]", got)
	}
}

func TestWaitZeroDurationPassesImmediately(t *testing.T) {
	s := NewScene(30)
	s.SetDuration(1000)
	s.Add("", newWait(t, 0))
	s.Add("", NewCircle(nil))
	if err := s.Begin(); err != nil {
		t.Fatal(err)
	}
	if s.Cursor() != 2 || len(s.Working()) != 1 {
		t.Errorf("cursor %d, working %v, want 2 and one entry", s.Cursor(), s.Working())
	}
}

func TestWaitElapsedBeforeStart(t *testing.T) {
	w := NewWait(nil)
	if got := w.Elapsed(NewScene(30)); got != -1 {
		t.Errorf("Elapsed = %d, want -1", got)
	}
}

func TestWaitFloatDurationRejected(t *testing.T) {
	w := NewWait(nil)
	if err := w.ApplyParameters(Params{"duration": FloatValue(1000)}); err == nil {
		t.Error("float duration accepted")
	}
}
