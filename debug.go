package vidgen

import (
	"log"
	"time"
)

// debugStats holds per-frame timing and activation metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	frame      int
	renderTime time.Duration
	working    int
	pending    int
	drawables  int
	commands   int
}

// debugLog prints timing and activation stats through the scene logger.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	s.logger.Printf("frame %d | render: %v | working: %d | pending: %d",
		stats.frame, stats.renderTime, stats.working, stats.pending)
	s.logger.Printf("frame %d | drawables: %d | commands: %d",
		stats.frame, stats.drawables, stats.commands)
}

// debugMaxDepth is the nesting depth above which a built entity tree is
// reported.
const debugMaxDepth = 32

// debugMaxChildren is the child count above which a composite is reported.
const debugMaxChildren = 1000

// debugCheckTree warns when a composite tree nests too deeply or a
// composite owns too many children. Called for every built scene entity in
// debug mode.
func debugCheckTree(logger *log.Logger, name string, e Entity) {
	var walk func(e Entity, depth int)
	walk = func(e Entity, depth int) {
		c, ok := e.(*Composite)
		if !ok {
			return
		}
		if depth > debugMaxDepth {
			logger.Printf("warning: tree depth %d exceeds %d (entity %q)", depth, debugMaxDepth, name)
			return
		}
		if n := len(c.children); n > debugMaxChildren {
			logger.Printf("warning: entity %q has %d children (threshold %d)", name, n, debugMaxChildren)
		}
		for _, child := range c.children {
			walk(child, depth+1)
		}
	}
	walk(e, 1)
}
