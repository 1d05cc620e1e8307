package vidgen

import (
	"errors"
	"fmt"
)

// Config holds the output settings shared by every scene.
type Config struct {
	Width      int
	Height     int
	FPS        int
	Background RGB
}

// DefaultConfig returns the settings used when no config block is given.
func DefaultConfig() Config {
	return Config{Width: 100, Height: 100, FPS: 30}
}

// Apply overlays the settings present in p: width, height and fps as
// numbers, defaultbackground as a colour. Absent keys keep their value.
func (c *Config) Apply(p Params) error {
	var errs []error
	dim := func(key string, dst *int) {
		v, ok := p[key]
		if !ok {
			return
		}
		switch n := v.Payload().(type) {
		case float64:
			*dst = int(n)
		case int:
			*dst = n
		default:
			errs = append(errs, &ParamTypeError{Key: key, Want: "float", Got: v})
		}
	}
	dim("width", &c.Width)
	dim("height", &c.Height)
	dim("fps", &c.FPS)
	if v, ok := p["defaultbackground"]; ok {
		if bg, ok := As[RGB](v); ok {
			c.Background = bg
		} else {
			errs = append(errs, &ParamTypeError{Key: "defaultbackground", Want: "rgb", Got: v})
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return c.Validate()
}

// Validate rejects zero or negative dimensions and frame rates.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("width %d: %w", c.Width, ErrInvalidConfig)
	case c.Height <= 0:
		return fmt.Errorf("height %d: %w", c.Height, ErrInvalidConfig)
	case c.FPS <= 0:
		return fmt.Errorf("fps %d: %w", c.FPS, ErrInvalidConfig)
	}
	return nil
}
