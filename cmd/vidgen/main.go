// Command vidgen renders a YAML scene description to numbered PNG frames,
// optionally encoding them into a video with ffmpeg or playing them in a
// window.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/phanxgames/vidgen"
	"github.com/phanxgames/vidgen/preview"
	"github.com/phanxgames/vidgen/raster"
	"github.com/phanxgames/vidgen/scenefile"
)

// Exit codes, one per pipeline stage.
const (
	exitOK     = 0
	exitParse  = 1
	exitBuild  = 2
	exitRender = 3
	exitStitch = 4
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	logger := log.New(stderr, "[vidgen] ", 0)

	cfg, rest, err := loadConfig(args, stderr)
	if err != nil {
		logger.Printf("config: %v", err)
		return exitParse
	}
	if len(rest) != 1 {
		logger.Printf("expected exactly one scene file, got %d", len(rest))
		return exitParse
	}

	blocks, err := scenefile.ParseFile(rest[0])
	if err != nil {
		logger.Printf("parse: %v", err)
		return exitParse
	}

	vctx := vidgen.NewContext()
	vctx.SetLogger(logger)
	vctx.Debug = cfg.Debug
	scenes, err := vctx.Load(blocks)
	if err != nil {
		logger.Printf("build: %v", err)
		return exitBuild
	}

	if cfg.Preview {
		opts := preview.Options{Title: "vidgen - " + filepath.Base(rest[0]), ShowStats: cfg.Debug}
		if err := preview.Run(scenes, vctx.Config, opts); err != nil {
			logger.Printf("preview: %v", err)
			return exitRender
		}
		return exitOK
	}

	sink, err := raster.NewPNGSink(cfg.OutDir, raster.New(vctx.Config.Width, vctx.Config.Height))
	if err != nil {
		logger.Printf("render: %v", err)
		return exitRender
	}
	n, err := vidgen.RenderAll(scenes, vctx.Config, sink)
	if err != nil {
		logger.Printf("render: %v", err)
		return exitRender
	}
	logger.Printf("wrote %d frames to %s", n, cfg.OutDir)

	if cfg.Stitch {
		if err := stitch(ctx, cfg, vctx.Config.FPS, stderr); err != nil {
			logger.Printf("stitch: %v", err)
			return exitStitch
		}
		logger.Printf("encoded %s", filepath.Join(cfg.OutDir, cfg.Video))
	}
	return exitOK
}

// stitchArgs returns the ffmpeg arguments encoding the frame sequence in
// cfg.OutDir at fps.
func stitchArgs(cfg appConfig, fps int) []string {
	return []string{
		"-y",
		"-framerate", strconv.Itoa(fps),
		"-pattern_type", "sequence",
		"-i", filepath.Join(cfg.OutDir, raster.FramePattern),
		"-c:v", "libx264",
		"-pix_fmt", "yuv420p",
		filepath.Join(cfg.OutDir, cfg.Video),
	}
}

func stitch(ctx context.Context, cfg appConfig, fps int, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, cfg.FFmpeg, stitchArgs(cfg, fps)...)
	cmd.Stderr = stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", cfg.FFmpeg, err)
	}
	return nil
}
