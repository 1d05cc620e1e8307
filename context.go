package vidgen

import (
	"fmt"
	"log"
	"os"
	"slices"
)

// Context carries the state shared by one build pipeline: output settings,
// the constants table and the entity factory. Blocks are loaded into it in
// order and scenes are built against it.
type Context struct {
	Config  Config
	Consts  *Constants
	Factory *Factory
	Logger  *log.Logger
	// Debug enables per-frame stats on every scene built afterwards.
	Debug bool

	haveConfig     bool
	haveConsts     bool
	havePrototypes bool
}

// NewContext returns a context with default settings, an empty constants
// table and the built-in entities registered. Diagnostics go to stderr.
func NewContext() *Context {
	consts := NewConstants()
	ctx := &Context{
		Config:  DefaultConfig(),
		Consts:  consts,
		Factory: NewFactory(consts),
	}
	ctx.SetLogger(log.New(os.Stderr, "[vidgen] ", 0))
	return ctx
}

// SetLogger routes build warnings and debug stats to l.
func (c *Context) SetLogger(l *log.Logger) {
	c.Logger = l
	c.Factory.logger = l
}

// ApplyConfig reads the output settings from a config block. Only one
// config block is accepted per context.
func (c *Context) ApplyConfig(b *Block) error {
	if c.haveConfig {
		return &BuildError{Block: BlockConfig, Err: fmt.Errorf("multiple config blocks: %w", ErrDuplicate)}
	}
	c.haveConfig = true
	cfg := c.Config
	if err := cfg.Apply(b.Params); err != nil {
		return &BuildError{Block: BlockConfig, Err: err}
	}
	c.Config = cfg
	return nil
}

// LoadConstants fills the constants table from a consts block. Only one
// consts block is accepted per context.
func (c *Context) LoadConstants(b *Block) error {
	if c.haveConsts {
		return &BuildError{Block: BlockConsts, Err: fmt.Errorf("multiple consts blocks: %w", ErrDuplicate)}
	}
	c.haveConsts = true
	if err := c.Consts.BuildConstants(b.Content); err != nil {
		return &BuildError{Block: BlockConsts, Err: err}
	}
	return nil
}

// LoadPrototypes builds every command of a prototypes block from its
// declared type and registers it under its own identifier. Only one
// prototypes block is accepted per context.
func (c *Context) LoadPrototypes(b *Block) error {
	if c.havePrototypes {
		return &BuildError{Block: BlockPrototypes, Err: fmt.Errorf("multiple prototypes blocks: %w", ErrDuplicate)}
	}
	c.havePrototypes = true
	if b.Content == nil {
		return nil
	}
	for _, cmd := range b.Content.Children {
		if cmd.Ident == "" {
			return &BuildError{Block: BlockPrototypes, Command: cmd.Entity, Err: ErrMissingIdentifier}
		}
		e, err := c.Factory.Create(cmd.Entity)
		if err != nil {
			return &BuildError{Block: BlockPrototypes, Command: cmd.Ident, Err: err}
		}
		if err := c.Factory.configure(e, cmd); err != nil {
			return &BuildError{Block: BlockPrototypes, Command: cmd.Ident, Err: err}
		}
		if err := c.Factory.RegisterPrototype(cmd.Ident, e); err != nil {
			return &BuildError{Block: BlockPrototypes, Command: cmd.Ident, Err: err}
		}
	}
	return nil
}

// BuildScene instantiates every command of a scene block in declaration
// order. Every object reference must name an entity of the scene. An
// optional duration parameter, in milliseconds, bounds the scene.
func (c *Context) BuildScene(b *Block) (*Scene, error) {
	s := NewScene(c.Config.FPS)
	if c.Debug {
		s.SetDebugMode(true, c.Logger)
	}
	if b.Content != nil {
		for _, cmd := range b.Content.Children {
			e, err := c.Factory.Create(cmd.Entity)
			if err != nil {
				return nil, &BuildError{Block: BlockScene, Command: cmd.Entity, Err: err}
			}
			if err := c.Factory.configure(e, cmd); err != nil {
				return nil, &BuildError{Block: BlockScene, Command: cmd.Entity, Err: err}
			}
			name := s.Add(cmd.Ident, e)
			if c.Debug {
				debugCheckTree(c.Logger, name, e)
			}
		}
	}

	for i := range s.Len() {
		if ref, ok := s.Entity(i).ObjectRef(); ok {
			if _, err := s.IndexOf(ref); err != nil {
				return nil, &BuildError{Block: BlockScene, Command: ref, Err: err}
			}
		}
	}

	if v, ok := b.Params["duration"]; ok {
		ms, err := c.sceneDuration(v)
		if err != nil {
			return nil, &BuildError{Block: BlockScene, Err: err}
		}
		s.SetDuration(ms)
	}
	return s, nil
}

// sceneDuration extracts a millisecond count from a literal or a constant.
func (c *Context) sceneDuration(v Value) (int, error) {
	if ident, ok := v.Identifier(); ok {
		cv, ok := c.Consts.Lookup(ident)
		if !ok {
			return 0, fmt.Errorf("duration bound to %q: %w", ident, ErrUnresolved)
		}
		v = cv
	}
	ms, ok := As[int](v)
	if !ok {
		return 0, &ParamTypeError{Key: "duration", Want: "int", Got: v}
	}
	return ms, nil
}

// Load sorts blocks into consumption order and builds them: config, then
// constants, then prototypes, then every scene in declaration order. The
// first failure aborts the load.
func (c *Context) Load(blocks []*Block) ([]*Scene, error) {
	sorted := slices.Clone(blocks)
	SortBlocks(sorted)

	var scenes []*Scene
	for _, b := range sorted {
		var err error
		switch b.Kind {
		case BlockConfig:
			err = c.ApplyConfig(b)
		case BlockConsts:
			err = c.LoadConstants(b)
		case BlockPrototypes:
			err = c.LoadPrototypes(b)
		case BlockScene:
			var s *Scene
			s, err = c.BuildScene(b)
			if err == nil {
				scenes = append(scenes, s)
			}
		default:
			err = fmt.Errorf("unknown block kind %d", b.Kind)
		}
		if err != nil {
			return nil, err
		}
	}
	return scenes, nil
}
