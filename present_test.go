package ring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	var got *RasterBuffer
	p := PresenterFunc(func(buf *RasterBuffer) error {
		got = buf
		return nil
	})

	require.NoError(t, Render(DefaultGradient(), 8, 6, p, WithWorkers(2)))
	require.NotNil(t, got)
	assert.Equal(t, 8, got.Width)
	assert.Equal(t, 6, got.Height)

	want, err := DefaultGradient().Rasterize(8, 6)
	require.NoError(t, err)
	assert.Equal(t, want.Pix, got.Pix)
}

func TestRender_PresentError(t *testing.T) {
	errSurface := errors.New("surface lost")
	p := PresenterFunc(func(*RasterBuffer) error { return errSurface })

	err := Render(DefaultGradient(), 4, 4, p)
	require.Error(t, err)
	assert.ErrorIs(t, err, errSurface)
	assert.Contains(t, err.Error(), "4x4")
}

func TestRender_InvalidDimensions(t *testing.T) {
	called := false
	p := PresenterFunc(func(*RasterBuffer) error {
		called = true
		return nil
	})

	err := Render(DefaultGradient(), 0, 4, p)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	assert.False(t, called)
}
