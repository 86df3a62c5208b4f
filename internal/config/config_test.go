package config

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ring"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func percent(v float64) *float64 { return &v }

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	p, err := cfg.Preset()
	require.NoError(t, err)
	assert.Equal(t, 30.0, p.Radius)
	assert.Equal(t, 10.0, p.Thickness)

	style, err := cfg.Style()
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x17, G: 0x17, B: 0x1A, A: 26}, style.Track)
	assert.Equal(t, color.NRGBA{R: 0x38, G: 0x7A, B: 0xFF, A: 255}, style.Foreground)
	require.NotNil(t, style.Gradient)
	assert.Equal(t, ring.DefaultGradient().Stops(), style.Gradient.Stops())
	assert.Equal(t, ring.DefaultAngleOffset, style.Gradient.AngleOffset())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty output", func(c *Config) { c.Output = " " }},
		{"NaN value", func(c *Config) { c.Value = math.NaN() }},
		{"negative radius", func(c *Config) { c.Radius = -1 }},
		{"raw without resolution", func(c *Config) { c.Raw = true; c.Resolution = 0 }},
		{"negative workers", func(c *Config) { c.Workers = -2 }},
		{"unknown kind", func(c *Config) { c.Kind = "spinner" }},
		{"unknown size", func(c *Config) { c.Size = "huge" }},
		{"bad track color", func(c *Config) { c.TrackColor = "#12" }},
		{"bad stop color", func(c *Config) { c.Stops = []Stop{{Angle: 0, Color: "nope"}, {Angle: 90, Color: "#FFFFFF"}} }},
		{"single stop", func(c *Config) { c.Stops = []Stop{{Angle: 0, Color: "#FFFFFF"}} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidate_ErrorKinds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = "huge"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.ForegroundColor = "blue"
	assert.ErrorIs(t, cfg.Validate(), ring.ErrInvalidColor)

	cfg = DefaultConfig()
	cfg.Stops = []Stop{{Angle: 10, Color: "#FFFFFF"}, {Angle: 10, Color: "#000000"}}
	assert.ErrorIs(t, cfg.Validate(), ring.ErrInvalidGradientSpec)
}

func TestPreset_Overrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Kind = "Determinate2"
	cfg.Size = "anything"
	cfg.Thickness = 9

	p, err := cfg.Preset()
	require.NoError(t, err)
	assert.Equal(t, ring.Determinate2, p.Kind)
	assert.Equal(t, 31.0, p.Radius)
	assert.Equal(t, 9.0, p.Thickness)
}

func TestGradient_CustomStops(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AngleOffset = 0
	cfg.Stops = []Stop{
		{Angle: 180, Color: "#0000FF"},
		{Angle: 0, Color: "#FF0000", Alpha: percent(50)},
		{Angle: 90, Color: "#00FF00", Alpha: percent(0)},
	}

	g, err := cfg.Gradient()
	require.NoError(t, err)
	stops := g.Stops()
	require.Len(t, stops, 3)
	assert.Equal(t, color.NRGBA{R: 255, A: 128}, stops[0].Color)
	assert.Equal(t, color.NRGBA{G: 255, A: 0}, stops[1].Color, "explicit zero alpha is transparent")
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, stops[2].Color, "unset alpha is opaque")
}

func TestStop_AlphaPercent(t *testing.T) {
	assert.Equal(t, 100.0, Stop{Color: "#FFFFFF"}.AlphaPercent())
	assert.Equal(t, 0.0, Stop{Color: "#FFFFFF", Alpha: percent(0)}.AlphaPercent())
	assert.Equal(t, 35.0, Stop{Color: "#FFFFFF", Alpha: percent(35)}.AlphaPercent())
}

func TestLoadFile_TOML(t *testing.T) {
	p := writeFile(t, "ring.toml", `
output = "out.png"
size = "small"
value = 0.0
track_alpha = 25.0
angle_offset = 0.0

[[stops]]
angle = 0.0
color = "#FF0000"
alpha = 0.0

[[stops]]
angle = 120.0
color = "#8000FF00"
`)
	fc, err := LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "out.png", fc.Output)
	assert.Equal(t, "small", fc.Size)
	require.NotNil(t, fc.Value)
	assert.Equal(t, 0.0, *fc.Value)
	require.Len(t, fc.Stops, 2)
	require.NotNil(t, fc.Stops[0].Alpha)
	assert.Equal(t, 0.0, *fc.Stops[0].Alpha)
	assert.Nil(t, fc.Stops[1].Alpha)
	assert.Equal(t, "#8000FF00", fc.Stops[1].Color)

	cfg := DefaultConfig()
	ApplyFile(&cfg, fc, map[string]bool{})
	assert.Equal(t, 0.0, cfg.Value)
	assert.Equal(t, 25.0, cfg.TrackAlpha)
	assert.Equal(t, 0.0, cfg.AngleOffset)
	require.NoError(t, cfg.Validate())

	g, err := cfg.Gradient()
	require.NoError(t, err)
	assert.Equal(t, uint8(0), g.Stops()[0].Color.A, "alpha = 0.0 in the file is transparent")
	assert.Equal(t, uint8(0x80), g.Stops()[1].Color.A)
}

func TestLoadFile_YAML(t *testing.T) {
	for _, name := range []string{"ring.yaml", "ring.YML"} {
		p := writeFile(t, name, `
kind: determinate2
value: 75.5
raw: true
resolution: 512
stops:
  - angle: 10
    color: "#112233"
    alpha: 40
  - angle: 200
    color: "#445566"
`)
		fc, err := LoadFile(p)
		require.NoError(t, err, name)
		assert.Equal(t, "determinate2", fc.Kind)
		require.NotNil(t, fc.Raw)
		assert.True(t, *fc.Raw)
		assert.Equal(t, 512, fc.Resolution)
		require.Len(t, fc.Stops, 2)
		require.NotNil(t, fc.Stops[0].Alpha, name)
		assert.Equal(t, 40.0, *fc.Stops[0].Alpha)
		assert.Nil(t, fc.Stops[1].Alpha)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadFile(writeFile(t, "ring.json", `{}`))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadFile(writeFile(t, "bad.toml", `value = [`))
	assert.Error(t, err)

	_, err = LoadFile(writeFile(t, "bad.yaml", "value: [1, 2"))
	assert.Error(t, err)
}

func TestApplyFile_RespectsChangedFlags(t *testing.T) {
	value := 10.0
	raw := true
	fc := FileConfig{
		Output: "file.png",
		Size:   "medium",
		Value:  &value,
		Raw:    &raw,
		Radius: 12,
	}

	cfg := DefaultConfig()
	cfg.Output = "flag.png"
	cfg.Value = 90
	ApplyFile(&cfg, fc, map[string]bool{"output": true, "value": true})

	assert.Equal(t, "flag.png", cfg.Output, "flag wins")
	assert.Equal(t, 90.0, cfg.Value, "flag wins")
	assert.Equal(t, "medium", cfg.Size)
	assert.True(t, cfg.Raw)
	assert.Equal(t, 12.0, cfg.Radius)
	assert.Equal(t, 10.0, cfg.TrackAlpha, "absent in file keeps default")
}

func TestFileExists(t *testing.T) {
	assert.True(t, FileExists(writeFile(t, "x.toml", "")))
	assert.False(t, FileExists(filepath.Join(t.TempDir(), "nope")))
}
