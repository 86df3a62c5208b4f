// Package config holds the render configuration of the ringdemo command:
// defaults, TOML or YAML files, and command line overrides.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/ring"
	"github.com/gogpu/ring/internal/compose"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Kind names accepted by Config.Kind.
const (
	KindDeterminate1 = "determinate1"
	KindDeterminate2 = "determinate2"
)

// Stop is one palette entry: an angle in degrees and a hex color.
// Color accepts #RRGGBB (alpha from Alpha, in percent) or #AARRGGBB.
// A nil Alpha is fully opaque.
type Stop struct {
	Angle float64  `toml:"angle" yaml:"angle"`
	Color string   `toml:"color" yaml:"color"`
	Alpha *float64 `toml:"alpha,omitempty" yaml:"alpha,omitempty"`
}

// AlphaPercent returns the stop's alpha percent, 100 when unset.
func (s Stop) AlphaPercent() float64 {
	if s.Alpha == nil {
		return 100
	}
	return *s.Alpha
}

// Config holds render settings.
type Config struct {
	Output string

	Kind  string
	Size  string
	Value float64

	// Radius and Thickness override the preset when positive.
	Radius    float64
	Thickness float64

	// Raw renders only the gradient raster at Resolution x Resolution.
	Raw        bool
	Resolution int

	Texture int
	Workers int

	TrackColor      string
	TrackAlpha      float64
	ForegroundColor string
	NoGradient      bool

	AngleOffset float64
	Stops       []Stop
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Output:          "ring.png",
		Kind:            KindDeterminate1,
		Size:            ring.SizeXLarge.String(),
		Value:           50,
		Resolution:      256,
		TrackColor:      "#17171A",
		TrackAlpha:      10,
		ForegroundColor: "#387AFF",
		AngleOffset:     ring.DefaultAngleOffset,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output) == "" {
		return fmt.Errorf("%w: output is required", ErrInvalidConfig)
	}
	if math.IsNaN(c.Value) || math.IsInf(c.Value, 0) {
		return fmt.Errorf("%w: value %v is not finite", ErrInvalidConfig, c.Value)
	}
	if c.Radius < 0 || c.Thickness < 0 {
		return fmt.Errorf("%w: radius and thickness must not be negative", ErrInvalidConfig)
	}
	if c.Raw && c.Resolution <= 0 {
		return fmt.Errorf("%w: resolution must be positive", ErrInvalidConfig)
	}
	if c.Texture < 0 || c.Workers < 0 {
		return fmt.Errorf("%w: texture and workers must not be negative", ErrInvalidConfig)
	}
	if _, err := c.Preset(); err != nil {
		return err
	}
	if _, err := c.Style(); err != nil {
		return err
	}
	return nil
}

// Preset resolves Kind and Size, then applies the Radius and Thickness
// overrides.
func (c *Config) Preset() (ring.Preset, error) {
	var kind ring.Kind
	switch strings.ToLower(c.Kind) {
	case KindDeterminate1, "":
		kind = ring.Determinate1
	case KindDeterminate2:
		kind = ring.Determinate2
	default:
		return ring.Preset{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidConfig, c.Kind)
	}

	size, ok := ring.ParseSize(strings.ToLower(c.Size))
	if !ok && kind == ring.Determinate1 {
		return ring.Preset{}, fmt.Errorf("%w: unknown size %q", ErrInvalidConfig, c.Size)
	}

	p, ok := ring.LookupPreset(kind, size)
	if !ok {
		return ring.Preset{}, fmt.Errorf("%w: no preset for %s/%s", ErrInvalidConfig, c.Kind, c.Size)
	}
	if c.Radius > 0 {
		p.Radius = c.Radius
	}
	if c.Thickness > 0 {
		p.Thickness = c.Thickness
	}
	return p, nil
}

// Gradient builds the palette. Without stops the default palette is used,
// rotated by AngleOffset.
func (c *Config) Gradient() (*ring.Gradient, error) {
	stops := ring.DefaultStops()
	if len(c.Stops) > 0 {
		stops = make([]ring.ColorStop, 0, len(c.Stops))
		for i, s := range c.Stops {
			col, err := ring.ParseHexColor(s.Color, s.AlphaPercent())
			if err != nil {
				return nil, fmt.Errorf("stop %d: %w", i, err)
			}
			stops = append(stops, ring.ColorStop{Angle: s.Angle, Color: col})
		}
	}
	return ring.NewGradient(stops, c.AngleOffset)
}

// Style returns the compose style for the configured colors and palette.
func (c *Config) Style() (compose.Style, error) {
	track, err := ring.ParseHexColor(c.TrackColor, c.TrackAlpha)
	if err != nil {
		return compose.Style{}, fmt.Errorf("track color: %w", err)
	}
	fg, err := ring.ParseHexColor(c.ForegroundColor, 100)
	if err != nil {
		return compose.Style{}, fmt.Errorf("foreground color: %w", err)
	}

	style := compose.Style{
		Track:       track,
		Foreground:  fg,
		TextureSize: c.Texture,
		Tolerance:   ring.DefaultTolerance,
		Workers:     c.Workers,
	}
	if !c.NoGradient {
		g, err := c.Gradient()
		if err != nil {
			return compose.Style{}, err
		}
		style.Gradient = g
	}
	return style, nil
}
