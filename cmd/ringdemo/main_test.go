package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ring"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { ring.SetLogger(nil) })

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func decodePNG(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestRender_Preset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring.png")
	out, err := run(t, "render", "--size", "large", "--value", "72", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+path)

	w, h := decodePNG(t, path)
	assert.Equal(t, 50, w)
	assert.Equal(t, 50, h)
}

func TestRender_Raw(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gradient.png")
	_, err := run(t, "render", "--raw", "--resolution", "32", "--workers", "2", "-o", path)
	require.NoError(t, err)

	w, h := decodePNG(t, path)
	assert.Equal(t, 32, w)
	assert.Equal(t, 32, h)
}

func TestRender_ConfigFileAndFlagPrecedence(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "ring.toml")
	fileOut := filepath.Join(dir, "from-file.png")
	flagOut := filepath.Join(dir, "from-flag.png")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
output = "`+filepath.ToSlash(fileOut)+`"
size = "small"
value = 30.0
`), 0o644))

	_, err := run(t, "render", "--config", cfgPath, "--output", flagOut)
	require.NoError(t, err)

	assert.NoFileExists(t, fileOut)
	w, _ := decodePNG(t, flagOut)
	assert.Equal(t, 20, w, "size from the file")
}

func TestRender_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := run(t, "render", "--size", "huge", "-o", filepath.Join(dir, "x.png"))
	assert.Error(t, err)

	_, err = run(t, "render", "--watch", "-o", filepath.Join(dir, "y.png"))
	assert.ErrorContains(t, err, "--watch needs --config")

	_, err = run(t, "--log-level", "loud", "arc")
	assert.Error(t, err)
}

func TestSample_Angle(t *testing.T) {
	out, err := run(t, "sample", "--angle", "136.8", "--angle-offset", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "color=#E63DCC87")
}

func TestSample_Point(t *testing.T) {
	out, err := run(t, "sample", "--x", "35", "--y", "60", "--width", "70", "--height", "70")
	require.NoError(t, err)
	assert.Contains(t, out, "angle=313.8000")
}

func TestArc(t *testing.T) {
	out, err := run(t, "arc", "--size", "xlarge", "--value", "50")
	require.NoError(t, err)
	assert.Contains(t, out, "sweep      176.4000 deg")
	assert.Contains(t, out, "side       70")
	assert.Contains(t, out, "large=false")
	assert.Contains(t, out, "clip       1 contour(s)")

	out, err = run(t, "arc", "--value", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "progress   none")
	assert.Contains(t, out, "clip       none")

	out, err = run(t, "--log-level", "debug", "arc", "--value", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "clip       2 contour(s)")
	assert.Contains(t, out, "clip outline rebuilt")
}

func TestDots(t *testing.T) {
	out, err := run(t, "dots", "--size", "small")
	require.NoError(t, err)
	assert.Contains(t, out, "preset     small grid=24 scale=1 diameter=4.5")
	assert.Contains(t, out, "top        (12.0000, 3.7500) #")
	assert.Contains(t, out, "right      (20.2500, 12.0000) #")
	assert.Contains(t, out, "bottom     (12.0000, 20.2500) #")
	assert.Contains(t, out, "left       (3.7500, 12.0000) #")

	_, err = run(t, "dots", "--size", "tiny")
	assert.ErrorContains(t, err, "unknown size")
}

func TestBar(t *testing.T) {
	out, err := run(t, "bar", "--width", "200", "--value", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "ratio      0.25000")
	assert.Contains(t, out, "indicator  50.000 of 200")
	assert.Contains(t, out, "gradient   scale-x=4")

	out, err = run(t, "bar", "--value", "25", "--vertical")
	require.NoError(t, err)
	assert.Contains(t, out, "gradient   scale-x=1\n")
}
