package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// defaultConfigFile is read when -config is not given. Its absence is not
// an error.
const defaultConfigFile = "vidgen.yaml"

// appConfig holds the command's settings. Values come from the environment,
// then the config file, then flags, each overriding the previous source.
type appConfig struct {
	FFmpeg  string `env:"VIDGEN_FFMPEG" envDefault:"ffmpeg" yaml:"ffmpeg"`
	OutDir  string `env:"VIDGEN_OUT" envDefault:"frames" yaml:"out"`
	Video   string `env:"VIDGEN_VIDEO" envDefault:"out.mp4" yaml:"video"`
	Stitch  bool   `env:"VIDGEN_STITCH" yaml:"stitch"`
	Preview bool   `env:"VIDGEN_PREVIEW" yaml:"preview"`
	Debug   bool   `env:"VIDGEN_DEBUG" yaml:"debug"`
}

// parseEnv loads configuration from environment variables.
func parseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// loadFile overlays the keys present in the YAML file at path onto cfg.
func loadFile(path string, cfg *appConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// loadConfig resolves the settings for one invocation and returns the
// remaining positional arguments.
func loadConfig(args []string, stderr io.Writer) (appConfig, []string, error) {
	var cfg appConfig
	if err := parseEnv(&cfg); err != nil {
		return cfg, nil, err
	}

	fset := flag.NewFlagSet("vidgen", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.Usage = func() {
		fmt.Fprintln(stderr, "usage: vidgen [flags] scene.yaml")
		fset.PrintDefaults()
	}
	configPath := fset.String("config", defaultConfigFile, "settings file")
	out := fset.String("out", cfg.OutDir, "frame output directory")
	ffmpeg := fset.String("ffmpeg", cfg.FFmpeg, "ffmpeg binary used by -stitch")
	video := fset.String("video", cfg.Video, "video file name written by -stitch, relative to -out")
	stitch := fset.Bool("stitch", cfg.Stitch, "encode the frames into a video with ffmpeg")
	preview := fset.Bool("preview", cfg.Preview, "play the scenes in a window instead of writing frames")
	debug := fset.Bool("debug", cfg.Debug, "log per-frame stats")
	if err := fset.Parse(args); err != nil {
		return cfg, nil, err
	}

	explicit := make(map[string]bool)
	fset.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if err := loadFile(*configPath, &cfg); err != nil {
		if !errors.Is(err, fs.ErrNotExist) || explicit["config"] {
			return cfg, nil, err
		}
	}

	if explicit["out"] {
		cfg.OutDir = *out
	}
	if explicit["ffmpeg"] {
		cfg.FFmpeg = *ffmpeg
	}
	if explicit["video"] {
		cfg.Video = *video
	}
	if explicit["stitch"] {
		cfg.Stitch = *stitch
	}
	if explicit["preview"] {
		cfg.Preview = *preview
	}
	if explicit["debug"] {
		cfg.Debug = *debug
	}
	return cfg, fset.Args(), nil
}
