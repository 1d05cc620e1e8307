// Package raster paints vidgen draw commands into RGBA images on the CPU.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/phanxgames/vidgen"
)

// minCircleSegments and maxCircleSegments bound the polygon used to
// approximate a circle of any on-screen size.
const (
	minCircleSegments = 16
	maxCircleSegments = 512
)

// Rasterizer fills polygons for draw commands. It is not safe for
// concurrent use.
type Rasterizer struct {
	width, height int
	z             *vector.Rasterizer
}

// New returns a rasterizer producing width x height images.
func New(width, height int) *Rasterizer {
	return &Rasterizer{width: width, height: height, z: vector.NewRasterizer(width, height)}
}

// Size returns the output dimensions.
func (r *Rasterizer) Size() (int, int) {
	return r.width, r.height
}

// NewImage allocates an image matching the rasterizer's size.
func (r *Rasterizer) NewImage() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, r.width, r.height))
}

// Render clears dst to the frame's background and replays its commands in
// order. dst must match the rasterizer's size.
func (r *Rasterizer) Render(dst *image.RGBA, f vidgen.Frame) {
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: NRGBA(f.Background)}, image.Point{}, draw.Src)
	for i := range f.Commands {
		r.Draw(dst, &f.Commands[i])
	}
}

// Draw paints a single command over dst.
func (r *Rasterizer) Draw(dst *image.RGBA, cmd *vidgen.DrawCommand) {
	if cmd.Color.A() == 0 {
		return
	}
	r.z.Reset(r.width, r.height)
	r.z.DrawOp = draw.Over

	m := cmd.Matrix
	switch cmd.Type {
	case vidgen.CommandFillRect:
		rc := cmd.Rect
		if rc.Width <= 0 || rc.Height <= 0 {
			return
		}
		r.rect(m, rc.X, rc.Y, rc.X+rc.Width, rc.Y+rc.Height, false)
	case vidgen.CommandStrokeRect:
		if cmd.StrokeWidth <= 0 {
			return
		}
		rc := cmd.Rect
		h := cmd.StrokeWidth / 2
		r.rect(m, rc.X-h, rc.Y-h, rc.X+rc.Width+h, rc.Y+rc.Height+h, false)
		if rc.Width > cmd.StrokeWidth && rc.Height > cmd.StrokeWidth {
			r.rect(m, rc.X+h, rc.Y+h, rc.X+rc.Width-h, rc.Y+rc.Height-h, true)
		}
	case vidgen.CommandFillCircle:
		if cmd.Radius <= 0 {
			return
		}
		r.circle(m, cmd.Rect.X, cmd.Rect.Y, cmd.Radius, false)
	case vidgen.CommandStrokeCircle:
		if cmd.StrokeWidth <= 0 {
			return
		}
		h := cmd.StrokeWidth / 2
		r.circle(m, cmd.Rect.X, cmd.Rect.Y, cmd.Radius+h, false)
		if inner := cmd.Radius - h; inner > 0 {
			r.circle(m, cmd.Rect.X, cmd.Rect.Y, inner, true)
		}
	default:
		return
	}

	r.z.Draw(dst, dst.Bounds(), &image.Uniform{C: NRGBA(cmd.Color)}, image.Point{})
}

// rect adds the contour (x0,y0)-(x1,y1) mapped through m. A reversed
// contour winds the other way and cuts a hole in an enclosing one.
func (r *Rasterizer) rect(m [6]float64, x0, y0, x1, y1 float64, reverse bool) {
	pts := [4][2]float64{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
	if reverse {
		pts[1], pts[3] = pts[3], pts[1]
	}
	r.contour(m, pts[:])
}

// circle adds a polygonal circle contour mapped through m.
func (r *Rasterizer) circle(m [6]float64, cx, cy, radius float64, reverse bool) {
	n := circleSegments(radius * vidgen.MatrixScale(m))
	pts := make([][2]float64, n)
	step := 2 * math.Pi / float64(n)
	if reverse {
		step = -step
	}
	for i := range pts {
		sin, cos := math.Sincos(float64(i) * step)
		pts[i] = [2]float64{cx + radius*cos, cy + radius*sin}
	}
	r.contour(m, pts)
}

func (r *Rasterizer) contour(m [6]float64, pts [][2]float64) {
	for i, p := range pts {
		x, y := vidgen.TransformPoint(m, p[0], p[1])
		if i == 0 {
			r.z.MoveTo(float32(x), float32(y))
		} else {
			r.z.LineTo(float32(x), float32(y))
		}
	}
	r.z.ClosePath()
}

// circleSegments picks a segment count so that each edge spans roughly two
// pixels of circumference.
func circleSegments(screenRadius float64) int {
	n := int(math.Ceil(math.Pi * screenRadius))
	return max(minCircleSegments, min(n, maxCircleSegments))
}

// NRGBA converts a packed ARGB colour to a straight-alpha colour.
func NRGBA(c vidgen.RGB) color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}
