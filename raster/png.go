package raster

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/phanxgames/vidgen"
)

// FramePattern is the file name pattern of written frames, in the printf
// form ffmpeg's image sequence demuxer accepts.
const FramePattern = "frame_%06d.png"

// FrameName returns the file name of the frame with global index i.
func FrameName(i int) string {
	return fmt.Sprintf(FramePattern, i)
}

// PNGSink rasterizes frames and writes each one as a PNG file in Dir.
type PNGSink struct {
	Dir string

	r   *Rasterizer
	img *image.RGBA
}

// NewPNGSink creates dir if needed and returns a sink writing into it.
func NewPNGSink(dir string, r *Rasterizer) (*PNGSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &PNGSink{Dir: dir, r: r, img: r.NewImage()}, nil
}

// WriteFrame renders f and writes it to Dir under FrameName(f.Index).
func (s *PNGSink) WriteFrame(f vidgen.Frame) error {
	s.r.Render(s.img, f)
	return writePNG(filepath.Join(s.Dir, FrameName(f.Index)), s.img)
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
