// Package compose draws complete progress ring frames: the background track,
// then the conic gradient layer clipped to the progress outline.
package compose

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/ring"
	"github.com/gogpu/ring/internal/cache"
	"github.com/gogpu/ring/internal/mask"
)

// Default track and foreground colors.
var (
	DefaultTrack      = color.NRGBA{R: 0x17, G: 0x17, B: 0x1A, A: 26} // #17171A at 10%
	DefaultForeground = color.NRGBA{R: 0x38, G: 0x7A, B: 0xFF, A: 0xFF}
)

// Style controls how frames are painted.
type Style struct {
	// Gradient fills the progress band. Nil fills it with Foreground.
	Gradient *ring.Gradient

	Track      color.NRGBA
	Foreground color.NRGBA

	// TextureSize, when positive, rasterizes the gradient once at
	// TextureSize x TextureSize and resamples it to each frame size.
	// Zero rasterizes directly at the frame size.
	TextureSize int

	// Tolerance is the flattening tolerance in pixels (<= 0: ring.DefaultTolerance).
	Tolerance float64

	// Workers > 0 rasterizes gradient rows on that many goroutines.
	Workers int
}

// DefaultStyle returns the reference palette and colors.
func DefaultStyle() Style {
	return Style{
		Gradient:   ring.DefaultGradient(),
		Track:      DefaultTrack,
		Foreground: DefaultForeground,
		Tolerance:  ring.DefaultTolerance,
	}
}

// layerCacheSize bounds how many frame sizes keep a rasterized gradient layer.
const layerCacheSize = 8

// Composer renders frames for one style. It keeps the clip outline cache
// and the gradient layers between frames, so animating the value only
// re-strokes the clip when the sweep actually moves.
//
// A Composer is not safe for concurrent use.
type Composer struct {
	style   Style
	builder *ring.ArcGeometryBuilder

	texture *image.RGBA
	layers  *cache.Cache[int, *image.RGBA] // keyed by frame side
}

// New creates a Composer.
func New(style Style) *Composer {
	return &Composer{
		style:   style,
		builder: ring.NewArcGeometryBuilder(style.Tolerance),
		layers:  cache.New[int, *image.RGBA](layerCacheSize),
	}
}

// Style returns the composer's style.
func (c *Composer) Style() Style { return c.style }

// Rebuilds reports how many clip outlines have been computed.
func (c *Composer) Rebuilds() int { return c.builder.Rebuilds() }

// Side returns the frame edge length for a ring: 2*radius + thickness,
// rounded up to whole pixels.
func Side(radius, thickness float64) int {
	return int(math.Ceil(2*radius + thickness))
}

// Frame paints one ring of the given radius and thickness at value percent
// into a new square image of Side(radius, thickness) pixels. The ring is
// centered in the frame.
func (c *Composer) Frame(radius, thickness, value float64) (*image.RGBA, error) {
	if !(radius > 0) || !(thickness > 0) || math.IsInf(radius, 0) || math.IsInf(thickness, 0) {
		return nil, fmt.Errorf("%w: ring radius %v thickness %v", ring.ErrInvalidDimensions, radius, thickness)
	}
	side := Side(radius, thickness)
	half := float64(side) / 2
	spec := ring.ArcSpec{
		Center:    ring.Pt(half, half),
		Radius:    radius,
		Thickness: thickness,
		Value:     value,
	}

	geom, err := c.builder.Build(spec)
	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	tol := c.builder.Tolerance

	track, err := mask.Fill(geom.Track.Stroke(thickness, tol), side, side, tol)
	if err != nil {
		return nil, err
	}
	draw.DrawMask(dst, dst.Bounds(), image.NewUniform(c.style.Track), image.Point{}, track.Alpha(), image.Point{}, draw.Over)

	if !geom.Visible() {
		return dst, nil
	}

	clip, err := mask.Fill(geom.Clip, side, side, tol)
	if err != nil {
		return nil, err
	}
	src, err := c.source(side)
	if err != nil {
		return nil, err
	}
	draw.DrawMask(dst, dst.Bounds(), src, image.Point{}, clip.Alpha(), image.Point{}, draw.Over)

	ring.Logger().Debug("compose: frame",
		"side", side,
		"value", value,
		"sweep", geom.Sweep,
		"covered", clip.Covered())
	return dst, nil
}

// source returns the image painted through the clip mask.
func (c *Composer) source(side int) (image.Image, error) {
	if c.style.Gradient == nil {
		return image.NewUniform(c.style.Foreground), nil
	}
	return c.layers.GetOrCreate(side, func() (*image.RGBA, error) {
		return c.gradientLayer(side)
	})
}

// gradientLayer rasterizes the gradient for a side x side frame.
func (c *Composer) gradientLayer(side int) (*image.RGBA, error) {
	if c.style.TextureSize > 0 {
		tex, err := c.textureImage()
		if err != nil {
			return nil, err
		}
		layer := image.NewRGBA(image.Rect(0, 0, side, side))
		draw.CatmullRom.Scale(layer, layer.Bounds(), tex, tex.Bounds(), draw.Src, nil)
		return layer, nil
	}

	buf, err := c.style.Gradient.Rasterize(side, side, c.rasterOptions()...)
	if err != nil {
		return nil, err
	}
	return buf.ToRGBA(), nil
}

func (c *Composer) textureImage() (*image.RGBA, error) {
	if c.texture != nil {
		return c.texture, nil
	}
	n := c.style.TextureSize
	buf, err := c.style.Gradient.Rasterize(n, n, c.rasterOptions()...)
	if err != nil {
		return nil, fmt.Errorf("compose: gradient texture: %w", err)
	}
	c.texture = buf.ToRGBA()
	return c.texture, nil
}

func (c *Composer) rasterOptions() []ring.RasterOption {
	if c.style.Workers > 0 {
		return []ring.RasterOption{ring.WithWorkers(c.style.Workers)}
	}
	return nil
}
