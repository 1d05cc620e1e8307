package vidgen

import "testing"

func TestCommandBufferRecordsCurrentMatrix(t *testing.T) {
	b := NewCommandBuffer()
	b.FillRect(0, 0, 1, 1, 0xff000000)
	b.Push(Transform{X: 10, Y: 20, Scale: 1})
	b.FillCircle(0, 0, 5, 0xffffffff)
	b.Pop()
	b.StrokeRect(0, 0, 1, 1, 2, 0xff00ff00)

	cmds := b.Commands()
	if len(cmds) != 3 {
		t.Fatalf("commands = %d, want 3", len(cmds))
	}
	assertMatrix(t, "cmds[0]", cmds[0].Matrix, identityMatrix)
	assertMatrix(t, "cmds[1]", cmds[1].Matrix, [6]float64{1, 0, 0, 1, 10, 20})
	assertMatrix(t, "cmds[2]", cmds[2].Matrix, identityMatrix)
	if cmds[1].Type != CommandFillCircle || cmds[1].Radius != 5 {
		t.Errorf("cmds[1] = %+v, want fillcircle r=5", cmds[1])
	}
	if cmds[2].StrokeWidth != 2 {
		t.Errorf("cmds[2].StrokeWidth = %v, want 2", cmds[2].StrokeWidth)
	}
}

func TestCommandBufferNestedPush(t *testing.T) {
	b := NewCommandBuffer()
	b.Push(Transform{X: 100, Scale: 2})
	b.Push(Transform{X: 10, Scale: 1})
	if b.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", b.Depth())
	}
	b.FillRect(0, 0, 1, 1, 0xff000000)
	assertMatrix(t, "nested", b.Commands()[0].Matrix, [6]float64{2, 0, 0, 2, 120, 0})
	b.Pop()
	b.Pop()
	if b.Depth() != 0 {
		t.Errorf("Depth = %d, want 0", b.Depth())
	}
}

func TestCommandBufferUnbalancedPop(t *testing.T) {
	b := NewCommandBuffer()
	b.Pop()
	b.FillRect(0, 0, 1, 1, 0xff000000)
	assertMatrix(t, "after pop", b.Commands()[0].Matrix, identityMatrix)
}

func TestCommandBufferZeroValue(t *testing.T) {
	var b CommandBuffer
	b.FillRect(0, 0, 1, 1, 0xff000000)
	assertMatrix(t, "zero value", b.Commands()[0].Matrix, identityMatrix)
}

func TestCommandBufferReset(t *testing.T) {
	b := NewCommandBuffer()
	b.Push(Transform{X: 5, Scale: 1})
	b.FillRect(0, 0, 1, 1, 0xff000000)
	b.Reset()
	if len(b.Commands()) != 0 || b.Depth() != 0 {
		t.Errorf("after Reset: %d commands, depth %d", len(b.Commands()), b.Depth())
	}
	b.FillRect(0, 0, 1, 1, 0xff000000)
	assertMatrix(t, "after reset", b.Commands()[0].Matrix, identityMatrix)
}

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		typ  CommandType
		want string
	}{
		{CommandFillRect, "fillrect"},
		{CommandStrokeRect, "strokerect"},
		{CommandFillCircle, "fillcircle"},
		{CommandStrokeCircle, "strokecircle"},
		{CommandType(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
