// Package scenefile reads vidgen scene descriptions written in YAML.
//
// A file is a sequence of single-key mappings, one per block, in
// declaration order:
//
//	# intro.yaml
//	- config:
//	    width: 320
//	    height: 240
//	    fps: 30
//	    defaultbackground: "#202020"
//	- consts:
//	    accent: "#ff8800"
//	- prototypes:
//	    - id: box
//	      type: rectangle
//	      params: {width: 20, height: 20, fill: $accent}
//	- scene:
//	    params: {duration: 2s}
//	    content:
//	      - id: b
//	        type: box
//	      - type: wait
//	        params: {duration: 500ms}
//	      - type: animate
//	        target: b
//	        params: {duration: 1s, x: 200}
//
// Scalars are typed by their spelling: numbers are floats, "#rrggbb" and
// "#rrggbbaa" are colours, durations such as 500ms or 2s are time values in
// milliseconds, $name is an identifier, and anything else is a string.
package scenefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/vidgen"
)

// ErrSyntax reports a document that does not have the expected shape.
var ErrSyntax = errors.New("scenefile: syntax error")

// Error locates a failure in the source document.
type Error struct {
	Line int
	Err  error
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

func errorf(n *yaml.Node, format string, args ...any) error {
	line := 0
	if n != nil {
		line = n.Line
	}
	return &Error{Line: line, Err: fmt.Errorf(format+": %w", append(args, ErrSyntax)...)}
}

// ParseFile reads and parses the description at path.
func ParseFile(path string) ([]*vidgen.Block, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	blocks, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return blocks, nil
}

// Parse reads a description from data. Blocks are returned in declaration
// order with Index set; callers sort them before use.
func Parse(data []byte) ([]*vidgen.Block, error) {
	var doc yaml.Node
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, &Error{Err: fmt.Errorf("%w: %v", ErrSyntax, err)}
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, errorf(root, "top level must be a sequence of blocks")
	}

	blocks := make([]*vidgen.Block, 0, len(root.Content))
	for i, item := range root.Content {
		b, err := parseBlock(item)
		if err != nil {
			return nil, err
		}
		b.Index = i
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func parseBlock(n *yaml.Node) (*vidgen.Block, error) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return nil, errorf(n, "block must be a mapping with exactly one key")
	}
	key, body := n.Content[0], n.Content[1]
	b := &vidgen.Block{Line: key.Line, Params: vidgen.Params{}}

	switch key.Value {
	case "config":
		b.Kind = vidgen.BlockConfig
		p, err := parseParams(body)
		if err != nil {
			return nil, err
		}
		b.Params = p
	case "consts":
		b.Kind = vidgen.BlockConsts
		content, err := parseConsts(body)
		if err != nil {
			return nil, err
		}
		b.Content = content
	case "prototypes":
		b.Kind = vidgen.BlockPrototypes
		children, err := parseCommands(body)
		if err != nil {
			return nil, err
		}
		b.Content = &vidgen.Command{Children: children, Line: key.Line}
	case "scene":
		b.Kind = vidgen.BlockScene
		if err := parseScene(body, b); err != nil {
			return nil, err
		}
	default:
		return nil, errorf(key, "unknown block %q", key.Value)
	}
	return b, nil
}

func parseScene(n *yaml.Node, b *vidgen.Block) error {
	if n.Kind != yaml.MappingNode {
		return errorf(n, "scene must be a mapping")
	}
	b.Content = &vidgen.Command{Line: n.Line}
	for i := 0; i < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		switch key.Value {
		case "params":
			p, err := parseParams(val)
			if err != nil {
				return err
			}
			b.Params = p
		case "content":
			children, err := parseCommands(val)
			if err != nil {
				return err
			}
			b.Content.Children = children
		default:
			return errorf(key, "unknown scene key %q", key.Value)
		}
	}
	return nil
}

func parseConsts(n *yaml.Node) (*vidgen.Command, error) {
	if n.Kind != yaml.MappingNode {
		return nil, errorf(n, "consts must be a mapping")
	}
	cmd := &vidgen.Command{Line: n.Line}
	for i := 0; i < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		c := &vidgen.Command{Ident: key.Value, Line: key.Line}
		if !isNull(val) {
			v, err := parseScalar(val)
			if err != nil {
				return nil, err
			}
			c.Value = &v
		}
		cmd.Children = append(cmd.Children, c)
	}
	return cmd, nil
}

func parseCommands(n *yaml.Node) ([]*vidgen.Command, error) {
	if isNull(n) {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, errorf(n, "expected a sequence of commands")
	}
	out := make([]*vidgen.Command, 0, len(n.Content))
	for _, item := range n.Content {
		c, err := parseCommand(item)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func parseCommand(n *yaml.Node) (*vidgen.Command, error) {
	if n.Kind != yaml.MappingNode {
		return nil, errorf(n, "command must be a mapping")
	}
	c := &vidgen.Command{Line: n.Line}
	for i := 0; i < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		var err error
		switch key.Value {
		case "id":
			c.Ident, err = plainString(val)
		case "type":
			c.Entity, err = plainString(val)
		case "target":
			c.ObjectRef, err = plainString(val)
		case "params":
			c.Params, err = parseParams(val)
		case "attributes":
			c.Attributes, err = parseAttributes(val)
		case "body":
			c.Children, err = parseCommands(val)
		default:
			err = errorf(key, "unknown command key %q", key.Value)
		}
		if err != nil {
			return nil, err
		}
	}
	if c.Entity == "" {
		return nil, errorf(n, "command without type")
	}
	return c, nil
}

func parseParams(n *yaml.Node) (vidgen.Params, error) {
	p := vidgen.Params{}
	if isNull(n) {
		return p, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, errorf(n, "params must be a mapping")
	}
	for i := 0; i < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		v, err := parseScalar(val)
		if err != nil {
			return nil, err
		}
		p[key.Value] = v
	}
	return p, nil
}

func parseAttributes(n *yaml.Node) (vidgen.Attributes, error) {
	a := vidgen.NewAttributes()
	if isNull(n) {
		return a, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, errorf(n, "attributes must be a sequence of names")
	}
	for _, item := range n.Content {
		name, err := plainString(item)
		if err != nil {
			return nil, err
		}
		a.Add(name)
	}
	return a, nil
}

func plainString(n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", errorf(n, "expected a name")
	}
	return n.Value, nil
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}

// parseScalar types a YAML scalar by its spelling.
func parseScalar(n *yaml.Node) (vidgen.Value, error) {
	if n.Kind != yaml.ScalarNode {
		return vidgen.Value{}, errorf(n, "expected a scalar value")
	}
	switch n.Tag {
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return vidgen.Value{}, errorf(n, "bad number %q", n.Value)
		}
		return vidgen.FloatValue(f), nil
	case "!!str":
		v, err := ParseValue(n.Value)
		if err != nil {
			return vidgen.Value{}, &Error{Line: n.Line, Err: err}
		}
		return v, nil
	default:
		return vidgen.Value{}, errorf(n, "unsupported value %q", n.Value)
	}
}

// ParseValue types a string the way scalars in a scene file are typed,
// except that bare numbers stay strings.
func ParseValue(s string) (vidgen.Value, error) {
	switch {
	case strings.HasPrefix(s, "$"):
		name := s[1:]
		if name == "" {
			return vidgen.Value{}, fmt.Errorf("empty identifier: %w", ErrSyntax)
		}
		return vidgen.IdentValue(name), nil
	case strings.HasPrefix(s, "#"):
		c, err := ParseColor(s)
		if err != nil {
			return vidgen.Value{}, err
		}
		return vidgen.ColorValue(c), nil
	}
	if ms, ok := parseMillis(s); ok {
		return vidgen.TimespecValue(ms), nil
	}
	return vidgen.StringValue(s), nil
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa". Colours without an
// alpha component are opaque.
func ParseColor(s string) (vidgen.RGB, error) {
	alpha := uint8(255)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("colour %q: %w", s, ErrSyntax)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("colour %q: %w", s, ErrSyntax)
	}
	r, g, b := c.RGB255()
	return vidgen.ARGB(alpha, r, g, b), nil
}

// parseMillis accepts Go duration syntax with an explicit unit.
func parseMillis(s string) (int, bool) {
	if !strings.ContainsFunc(s, unicode.IsLetter) {
		return 0, false
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, false
	}
	return int(d / time.Millisecond), true
}
