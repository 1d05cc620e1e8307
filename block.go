package vidgen

import (
	"cmp"
	"fmt"
	"slices"
)

// BlockKind is the type of a top-level declaration. The order of the
// constants is the order blocks are consumed in.
type BlockKind uint8

const (
	BlockConfig BlockKind = iota
	BlockConsts
	BlockPrototypes
	BlockScene
)

func (k BlockKind) String() string {
	switch k {
	case BlockConfig:
		return "config"
	case BlockConsts:
		return "consts"
	case BlockPrototypes:
		return "prototypes"
	case BlockScene:
		return "scene"
	default:
		return fmt.Sprintf("block(%d)", uint8(k))
	}
}

// Block is one top-level declaration of a scene description.
type Block struct {
	Kind BlockKind
	// Index is the declaration position in the source.
	Index   int
	Params  Params
	Content *Command
	// Line is the source line of the declaration, zero when unknown.
	Line int
}

// Command is one node of a block's content tree: a request to instantiate
// an entity, or a constant definition.
type Command struct {
	Ident      string
	Entity     string
	ObjectRef  string
	Params     Params
	Attributes Attributes
	// Value is the literal of a constant definition.
	Value    *Value
	Children []*Command
	Line     int
}

func (c *Command) label() string {
	name := c.Entity
	if c.Ident != "" {
		name = c.Ident + " (" + c.Entity + ")"
	}
	if c.Line > 0 {
		return fmt.Sprintf("line %d: %s", c.Line, name)
	}
	return name
}

// SortBlocks orders blocks by declaration index, then stably by kind, so
// config precedes constants, constants precede prototypes and prototypes
// precede scenes. Scenes keep their declaration order.
func SortBlocks(blocks []*Block) {
	slices.SortStableFunc(blocks, func(a, b *Block) int {
		return cmp.Compare(a.Index, b.Index)
	})
	slices.SortStableFunc(blocks, func(a, b *Block) int {
		return cmp.Compare(a.Kind, b.Kind)
	})
}
