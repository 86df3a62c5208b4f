package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for config files that are neither TOML
// nor YAML.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// FileConfig mirrors Config for TOML and YAML files. Pointer fields
// distinguish "absent" from a zero value.
type FileConfig struct {
	Output          string   `toml:"output" yaml:"output"`
	Kind            string   `toml:"kind" yaml:"kind"`
	Size            string   `toml:"size" yaml:"size"`
	Value           *float64 `toml:"value" yaml:"value"`
	Radius          float64  `toml:"radius" yaml:"radius"`
	Thickness       float64  `toml:"thickness" yaml:"thickness"`
	Raw             *bool    `toml:"raw" yaml:"raw"`
	Resolution      int      `toml:"resolution" yaml:"resolution"`
	Texture         int      `toml:"texture" yaml:"texture"`
	Workers         int      `toml:"workers" yaml:"workers"`
	TrackColor      string   `toml:"track_color" yaml:"track_color"`
	TrackAlpha      *float64 `toml:"track_alpha" yaml:"track_alpha"`
	ForegroundColor string   `toml:"foreground_color" yaml:"foreground_color"`
	NoGradient      *bool    `toml:"no_gradient" yaml:"no_gradient"`
	AngleOffset     *float64 `toml:"angle_offset" yaml:"angle_offset"`
	Stops           []Stop   `toml:"stops" yaml:"stops"`
}

// LoadFile reads a TOML (.toml) or YAML (.yaml, .yml) file.
func LoadFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(b, &fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &fc)
	default:
		return fc, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return fc, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}

// ApplyFile copies file values into cfg. Values whose flag was set on the
// command line (changed map, keyed by flag name) are left alone.
func ApplyFile(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := setter{changed: changed}

	s.setString("output", fc.Output, &cfg.Output)
	s.setString("kind", fc.Kind, &cfg.Kind)
	s.setString("size", fc.Size, &cfg.Size)
	s.setString("track-color", fc.TrackColor, &cfg.TrackColor)
	s.setString("foreground", fc.ForegroundColor, &cfg.ForegroundColor)

	s.setFloatPtr("value", fc.Value, &cfg.Value)
	s.setFloatPtr("track-alpha", fc.TrackAlpha, &cfg.TrackAlpha)
	s.setFloatPtr("angle-offset", fc.AngleOffset, &cfg.AngleOffset)
	s.setFloat("radius", fc.Radius, &cfg.Radius)
	s.setFloat("thickness", fc.Thickness, &cfg.Thickness)

	s.setInt("resolution", fc.Resolution, &cfg.Resolution)
	s.setInt("texture", fc.Texture, &cfg.Texture)
	s.setInt("workers", fc.Workers, &cfg.Workers)

	s.setBool("raw", fc.Raw, &cfg.Raw)
	s.setBool("no-gradient", fc.NoGradient, &cfg.NoGradient)

	if len(fc.Stops) > 0 {
		cfg.Stops = append([]Stop(nil), fc.Stops...)
	}
}

// setter applies file values unless the matching flag was set explicitly.
type setter struct {
	changed map[string]bool
}

func (s setter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

func (s setter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

func (s setter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

func (s setter) setFloatPtr(flag string, value *float64, dst *float64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

func (s setter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}
