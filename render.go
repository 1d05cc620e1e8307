package vidgen

// Canvas is the painting contract drawables render through. Geometry is in
// the local space established by the transforms pushed so far; an
// implementation composes them and maps the result to its output.
type Canvas interface {
	// Push composes t onto the current transform.
	Push(t Transform)
	// Pop restores the transform in effect before the matching Push.
	Pop()

	FillRect(x, y, w, h float64, c RGB)
	StrokeRect(x, y, w, h, width float64, c RGB)
	FillCircle(cx, cy, r float64, c RGB)
	StrokeCircle(cx, cy, r, width float64, c RGB)
}

// CommandType identifies the kind of draw command.
type CommandType uint8

const (
	CommandFillRect     CommandType = iota // filled axis-aligned rectangle in local space
	CommandStrokeRect                      // rectangle outline centred on its edges
	CommandFillCircle                      // filled circle
	CommandStrokeCircle                    // circle outline centred on its radius
)

func (t CommandType) String() string {
	switch t {
	case CommandFillRect:
		return "fillrect"
	case CommandStrokeRect:
		return "strokerect"
	case CommandFillCircle:
		return "fillcircle"
	case CommandStrokeCircle:
		return "strokecircle"
	default:
		return "unknown"
	}
}

// Rect is an axis-aligned rectangle in a command's local space.
type Rect struct {
	X, Y, Width, Height float64
}

// DrawCommand is a single draw instruction emitted while rendering a frame.
// Matrix maps the command's local geometry to frame space.
type DrawCommand struct {
	Type        CommandType
	Matrix      [6]float64
	Rect        Rect
	Radius      float64
	Color       RGB
	StrokeWidth float64
}

// CommandBuffer is a Canvas that records draw commands in emission order for
// a backend to replay. The zero value is ready to use.
type CommandBuffer struct {
	commands []DrawCommand
	stack    [][6]float64
	current  [6]float64
	inited   bool
}

// NewCommandBuffer returns an empty buffer.
func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{current: identityMatrix, inited: true}
}

func (b *CommandBuffer) init() {
	if !b.inited {
		b.current = identityMatrix
		b.inited = true
	}
}

// Push composes t onto the current matrix.
func (b *CommandBuffer) Push(t Transform) {
	b.init()
	b.stack = append(b.stack, b.current)
	b.current = multiplyAffine(b.current, t.Matrix())
}

// Pop restores the previous matrix. Unbalanced pops reset to identity.
func (b *CommandBuffer) Pop() {
	b.init()
	n := len(b.stack)
	if n == 0 {
		b.current = identityMatrix
		return
	}
	b.current = b.stack[n-1]
	b.stack = b.stack[:n-1]
}

// Depth returns the number of transforms currently pushed.
func (b *CommandBuffer) Depth() int {
	return len(b.stack)
}

func (b *CommandBuffer) emit(cmd DrawCommand) {
	b.init()
	cmd.Matrix = b.current
	b.commands = append(b.commands, cmd)
}

func (b *CommandBuffer) FillRect(x, y, w, h float64, c RGB) {
	b.emit(DrawCommand{Type: CommandFillRect, Rect: Rect{x, y, w, h}, Color: c})
}

func (b *CommandBuffer) StrokeRect(x, y, w, h, width float64, c RGB) {
	b.emit(DrawCommand{Type: CommandStrokeRect, Rect: Rect{x, y, w, h}, Color: c, StrokeWidth: width})
}

func (b *CommandBuffer) FillCircle(cx, cy, r float64, c RGB) {
	b.emit(DrawCommand{Type: CommandFillCircle, Rect: Rect{X: cx, Y: cy}, Radius: r, Color: c})
}

func (b *CommandBuffer) StrokeCircle(cx, cy, r, width float64, c RGB) {
	b.emit(DrawCommand{Type: CommandStrokeCircle, Rect: Rect{X: cx, Y: cy}, Radius: r, Color: c, StrokeWidth: width})
}

// Commands returns the recorded commands. The slice is reused by Reset.
func (b *CommandBuffer) Commands() []DrawCommand {
	return b.commands
}

// Reset clears recorded commands and the transform stack, keeping capacity.
func (b *CommandBuffer) Reset() {
	b.commands = b.commands[:0]
	b.stack = b.stack[:0]
	b.current = identityMatrix
	b.inited = true
}
