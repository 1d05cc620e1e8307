// Package preview plays vidgen scenes in an ebiten window at their frame
// rate instead of writing them to disk.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/vidgen"
	"github.com/phanxgames/vidgen/raster"
)

// Options configures a preview window.
type Options struct {
	Title string
	// ShowStats overlays the frame number and the actual tick rate.
	ShowStats bool
	// ExitOnEnd closes the window after the last frame instead of holding it.
	ExitOnEnd bool
}

// Game implements ebiten.Game. Each Update renders the next frame; the last
// frame stays on screen once every scene has finished.
type Game struct {
	opts Options

	player *vidgen.Player
	r      *raster.Rasterizer
	cfg    vidgen.Config
	pixels *image.RGBA
	frame  *ebiten.Image
	stats  *ebiten.Image
	index  int
	done   bool
	err    error
}

// New returns a game playing scenes with cfg's size and background.
func New(scenes []*vidgen.Scene, cfg vidgen.Config, opts Options) *Game {
	r := raster.New(cfg.Width, cfg.Height)
	g := &Game{
		opts:   opts,
		player: vidgen.NewPlayer(scenes, cfg),
		r:      r,
		cfg:    cfg,
		pixels: r.NewImage(),
		frame:  ebiten.NewImage(cfg.Width, cfg.Height),
	}
	if opts.ShowStats {
		// 120x32 is enough for "frame: 000000\nTPS: 60.0"
		g.stats = ebiten.NewImage(120, 32)
	}
	return g
}

// Update advances playback by one frame.
func (g *Game) Update() error {
	if g.done {
		if g.opts.ExitOnEnd {
			return ebiten.Termination
		}
		return nil
	}
	f, ok, err := g.player.Next()
	if err != nil {
		g.err = err
		return err
	}
	if !ok {
		g.done = true
		return nil
	}
	g.r.Render(g.pixels, f)
	g.frame.WritePixels(g.pixels.Pix)
	g.index = f.Index
	return nil
}

// Draw copies the current frame to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.frame, nil)
	if g.stats == nil {
		return
	}
	g.stats.Clear()
	// Semi-transparent background for readability
	g.stats.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(g.stats, fmt.Sprintf("frame: %d\nTPS: %.1f", g.index, ebiten.ActualTPS()))
	screen.DrawImage(g.stats, nil)
}

// Layout keeps the logical screen at the configured frame size.
func (g *Game) Layout(int, int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Frame returns the global index of the frame on screen.
func (g *Game) Frame() int { return g.index }

// Done reports whether every scene has finished.
func (g *Game) Done() bool { return g.done }

// Err returns the error that stopped playback, if any.
func (g *Game) Err() error { return g.err }

// Run opens a window and plays scenes until the window is closed.
func Run(scenes []*vidgen.Scene, cfg vidgen.Config, opts Options) error {
	g := New(scenes, cfg, opts)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return g.Err()
}
