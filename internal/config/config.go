// Package config loads animation settings from an optional rainbow.yaml and
// RAINBOW_* environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/irfansharif/rainbow/internal/anim"
	"github.com/irfansharif/rainbow/internal/hsv"
)

// DefaultPath is the config file read when no path is given.
const DefaultPath = "rainbow.yaml"

// Config represents the optional rainbow.yaml configuration. Pointer fields
// distinguish "unset" from zero.
type Config struct {
	Animation AnimationConfig `yaml:"animation"`
	Window    WindowConfig    `yaml:"window"`
}

// AnimationConfig contains the hue animation parameters.
type AnimationConfig struct {
	Speed      *float64 `yaml:"speed,omitempty"`      // degrees per second
	Saturation *float64 `yaml:"saturation,omitempty"` // 0-1
	Value      *float64 `yaml:"value,omitempty"`      // 0-1
	SeedColor  string   `yaml:"seed_color,omitempty"` // "#rrggbb", starting hue
}

// WindowConfig contains window settings.
type WindowConfig struct {
	Width  int  `yaml:"width,omitempty"`
	Height int  `yaml:"height,omitempty"`
	Wheel  bool `yaml:"wheel,omitempty"` // draw the hue wheel overlay
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Animation anim.Config
	Seed      *hsv.RGBA // nil: start at hue 0
	Width     int
	Height    int
	Wheel     bool
}

// LoadOptional reads the config file at path if present.
func LoadOptional(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Resolve loads the config file (if present), applies environment overrides
// and fills in defaults.
func Resolve(path string, getenv func(string) string) (*Resolved, error) {
	if path == "" {
		path = DefaultPath
	}
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg, err := LoadOptional(path)
	if err != nil {
		return nil, err
	}

	res := &Resolved{
		Animation: anim.DefaultConfig(),
		Width:     1280,
		Height:    960,
		Wheel:     cfg.Window.Wheel,
	}
	if cfg.Window.Width > 0 {
		res.Width = cfg.Window.Width
	}
	if cfg.Window.Height > 0 {
		res.Height = cfg.Window.Height
	}

	a := cfg.Animation
	if a.Speed != nil {
		res.Animation.Speed = *a.Speed
	}
	if a.Saturation != nil {
		res.Animation.Saturation = *a.Saturation
	}
	if a.Value != nil {
		res.Animation.Value = *a.Value
	}
	seed := a.SeedColor

	overrides := []struct {
		name string
		dst  *float64
	}{
		{"RAINBOW_SPEED", &res.Animation.Speed},
		{"RAINBOW_SATURATION", &res.Animation.Saturation},
		{"RAINBOW_VALUE", &res.Animation.Value},
	}
	for _, o := range overrides {
		s := strings.TrimSpace(getenv(o.name))
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value '%s': %w", o.name, s, err)
		}
		*o.dst = v
	}
	if s := strings.TrimSpace(getenv("RAINBOW_SEED_COLOR")); s != "" {
		seed = s
	}

	if err := validate(res.Animation); err != nil {
		return nil, err
	}

	if seed != "" {
		c, err := hsv.ParseHex(seed)
		if err != nil {
			return nil, fmt.Errorf("invalid seed color: %w", err)
		}
		res.Seed = &c
	}
	return res, nil
}

func validate(c anim.Config) error {
	fields := []struct {
		name string
		v    float64
	}{
		{"speed", c.Speed},
		{"saturation", c.Saturation},
		{"value", c.Value},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%s must be finite, got %v", f.name, f.v)
		}
	}
	return nil
}
