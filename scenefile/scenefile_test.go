package scenefile

import (
	"bytes"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/phanxgames/vidgen"
)

const sample = `
- scene:
    params: {duration: 2s}
    content:
      - id: b
        type: box
        params: {x: 10}
      - type: wait
        params: {duration: 500ms}
      - type: animate
        target: b
        params: {duration: 1s, x: $endx, easing: outquad}
- config:
    width: 320
    height: 240
    fps: 25
    defaultbackground: "#202020"
- consts:
    endx: 200
    accent: "#ff880080"
- prototypes:
    - id: box
      type: composite
      attributes: [fill]
      params: {fill: $accent}
      body:
        - type: rectangle
          params: {width: 20, height: 20, fill: $fill}
`

func discard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestParseBlocks(t *testing.T) {
	blocks, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(blocks) != 4 {
		t.Fatalf("blocks = %d, want 4", len(blocks))
	}
	wantKinds := []vidgen.BlockKind{vidgen.BlockScene, vidgen.BlockConfig, vidgen.BlockConsts, vidgen.BlockPrototypes}
	for i, b := range blocks {
		if b.Kind != wantKinds[i] {
			t.Errorf("blocks[%d].Kind = %v, want %v", i, b.Kind, wantKinds[i])
		}
		if b.Index != i {
			t.Errorf("blocks[%d].Index = %d, want %d", i, b.Index, i)
		}
	}
}

func TestParseScene(t *testing.T) {
	blocks, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	scene := blocks[0]
	if got := scene.Params["duration"]; got.Kind != vidgen.KindTimespec || got.Payload() != 2000 {
		t.Errorf("duration = %v, want timespec(2000)", got)
	}
	cmds := scene.Content.Children
	if len(cmds) != 3 {
		t.Fatalf("commands = %d, want 3", len(cmds))
	}
	if cmds[0].Ident != "b" || cmds[0].Entity != "box" {
		t.Errorf("cmds[0] = %q/%q, want b/box", cmds[0].Ident, cmds[0].Entity)
	}
	if cmds[2].ObjectRef != "b" {
		t.Errorf("animate target = %q, want b", cmds[2].ObjectRef)
	}
	if name, ok := cmds[2].Params["x"].Identifier(); !ok || name != "endx" {
		t.Errorf("animate x = %v, want identifier endx", cmds[2].Params["x"])
	}
	if got := cmds[2].Params["easing"]; got.Kind != vidgen.KindString || got.Payload() != "outquad" {
		t.Errorf("easing = %v, want string(outquad)", got)
	}
}

func TestParseConstsAndPrototypes(t *testing.T) {
	blocks, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	consts := blocks[2].Content.Children
	if len(consts) != 2 {
		t.Fatalf("consts = %d, want 2", len(consts))
	}
	if consts[0].Ident != "endx" || consts[0].Value == nil || consts[0].Value.Payload() != 200.0 {
		t.Errorf("consts[0] = %q %v, want endx float(200)", consts[0].Ident, consts[0].Value)
	}
	if got := consts[1].Value.Payload(); got != vidgen.ARGB(0x80, 0xff, 0x88, 0) {
		t.Errorf("accent = %v, want 0x80ff8800", got)
	}

	protos := blocks[3].Content.Children
	if len(protos) != 1 {
		t.Fatalf("prototypes = %d, want 1", len(protos))
	}
	p := protos[0]
	if !p.Attributes.Has("fill") {
		t.Error("prototype attributes missing fill")
	}
	if len(p.Children) != 1 || p.Children[0].Entity != "rectangle" {
		t.Errorf("prototype body = %v, want one rectangle", p.Children)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in      string
		kind    vidgen.Kind
		payload any
	}{
		{"$speed", vidgen.KindIdentifier, "speed"},
		{"#ff0000", vidgen.KindRGB, vidgen.ARGB(255, 255, 0, 0)},
		{"#f00", vidgen.KindRGB, vidgen.ARGB(255, 255, 0, 0)},
		{"#00ff0040", vidgen.KindRGB, vidgen.ARGB(0x40, 0, 255, 0)},
		{"500ms", vidgen.KindTimespec, 500},
		{"2s", vidgen.KindTimespec, 2000},
		{"1m30s", vidgen.KindTimespec, 90000},
		{"hello", vidgen.KindString, "hello"},
		{"42", vidgen.KindString, "42"},
	}
	for _, tt := range tests {
		v, err := ParseValue(tt.in)
		if err != nil {
			t.Errorf("ParseValue(%q): %v", tt.in, err)
			continue
		}
		if v.Kind != tt.kind || v.Payload() != tt.payload {
			t.Errorf("ParseValue(%q) = %v, want %v(%v)", tt.in, v, tt.kind, tt.payload)
		}
	}
}

func TestParseValueErrors(t *testing.T) {
	for _, in := range []string{"$", "#zzzzzz", "#12345"} {
		if _, err := ParseValue(in); !errors.Is(err, ErrSyntax) {
			t.Errorf("ParseValue(%q) err = %v, want ErrSyntax", in, err)
		}
	}
}

func TestParseErrorsCarryLine(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{"unknown block", "- config: {}\n- bogus: {}\n", 2},
		{"command without type", "- scene:\n    content:\n      - id: a\n", 3},
		{"unknown command key", "- scene:\n    content:\n      - type: wait\n        colour: red\n", 4},
		{"nested param", "- config:\n    width: [1, 2]\n", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("err = %v, want *Error", err)
			}
			if perr.Line != tt.line {
				t.Errorf("Line = %d, want %d (%v)", perr.Line, tt.line, err)
			}
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("err = %v, want ErrSyntax", err)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	blocks, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	if len(blocks) != 0 {
		t.Errorf("blocks = %d, want 0", len(blocks))
	}
}

func TestParseFileLoadsIntoContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	blocks, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}

	ctx := vidgen.NewContext()
	ctx.SetLogger(discard())
	scenes, err := ctx.Load(blocks)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(scenes) != 1 {
		t.Fatalf("scenes = %d, want 1", len(scenes))
	}
	if ctx.Config.Width != 320 || ctx.Config.FPS != 25 {
		t.Errorf("config = %+v, want 320 wide at 25 fps", ctx.Config)
	}
	if got := scenes[0].MaxFrame(); got != 50 {
		t.Errorf("MaxFrame = %d, want 50", got)
	}
	if _, err := scenes[0].Lookup("b"); err != nil {
		t.Errorf("Lookup(b): %v", err)
	}
}

func TestExampleScenesLoad(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "examples", "scenes", "*.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Skip("no example scenes")
	}
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			blocks, err := ParseFile(path)
			if err != nil {
				t.Fatalf("ParseFile: %v", err)
			}
			var warnings bytes.Buffer
			ctx := vidgen.NewContext()
			ctx.SetLogger(log.New(&warnings, "", 0))
			scenes, err := ctx.Load(blocks)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if warnings.Len() != 0 {
				t.Errorf("build warnings: %s", warnings.String())
			}
			n, err := vidgen.RenderAll(scenes, ctx.Config, discardSink{})
			if err != nil {
				t.Fatalf("RenderAll: %v", err)
			}
			if n == 0 {
				t.Error("no frames rendered")
			}
		})
	}
}

type discardSink struct{}

func (discardSink) WriteFrame(vidgen.Frame) error { return nil }
