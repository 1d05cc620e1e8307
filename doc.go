// Package vidgen turns a declarative scene description into a sequence of
// animation frames.
//
// A description is a list of [Block] values: an optional config block, an
// optional consts block, an optional prototypes block, and any number of
// scenes. The [scenefile] package parses them from YAML; programs may also
// build them directly.
//
// # Quick start
//
//	blocks, err := scenefile.ParseFile("intro.yaml")
//	if err != nil { ... }
//
//	ctx := vidgen.NewContext()
//	scenes, err := ctx.Load(blocks)
//	if err != nil { ... }
//
//	r := raster.New(ctx.Config.Width, ctx.Config.Height)
//	sink, err := raster.NewPNGSink("out", r)
//	if err != nil { ... }
//	n, err := vidgen.RenderAll(scenes, ctx.Config, sink)
//
// # Entities
//
// Every scene node is an [Entity]: a drawable ([Rectangle], [Circle],
// [Composite]), a [Wait] barrier, or an [Animate] interpolation. Parameters
// are either literals or identifiers; identifiers are resolved against the
// entity's [ValueStore] every time they are read, falling back to the
// constants table.
//
// # Scheduling
//
// A [Scene] activates its entities in declaration order. A Wait suspends
// activation until its duration has elapsed; everything declared after it
// waits too. Activated drawables and animations join the working set and are
// executed and rendered every frame until the scene's duration runs out.
//
// # Rendering
//
// Drawables paint through the [Canvas] interface. [CommandBuffer] records
// [DrawCommand] values for a backend to replay; the raster package turns
// them into images and the preview package into an ebiten window.
//
// [scenefile]: https://pkg.go.dev/github.com/phanxgames/vidgen/scenefile
package vidgen
