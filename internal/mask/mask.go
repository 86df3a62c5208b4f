// Package mask rasterizes filled ring outlines into 8-bit coverage masks.
//
// Outlines are flattened to polygons and scan converted with
// golang.org/x/image/vector. Coverage follows the magnitude of the
// accumulated winding, so the opposite-oriented inner ring of a stroked
// closed circle leaves a hole.
package mask

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/vector"

	"github.com/gogpu/ring"
)

// Mask is an alpha coverage mask. Values range from 0 (uncovered) to 255
// (fully covered).
type Mask struct {
	width  int
	height int
	data   []uint8
}

// New creates an empty mask with the given dimensions.
func New(width, height int) (*Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: mask %dx%d", ring.ErrInvalidDimensions, width, height)
	}
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}, nil
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the coverage at (x, y), or 0 outside the mask.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Covered returns the number of pixels with non-zero coverage.
func (m *Mask) Covered() int {
	n := 0
	for _, v := range m.data {
		if v != 0 {
			n++
		}
	}
	return n
}

// Alpha returns the mask as an *image.Alpha sharing the mask's storage.
func (m *Mask) Alpha() *image.Alpha {
	return &image.Alpha{
		Pix:    m.data,
		Stride: m.width,
		Rect:   m.Bounds(),
	}
}

// Fill rasterizes the filled region of p into a new width x height mask.
// Open subpaths are closed implicitly. A nil or empty path gives an empty
// mask. tolerance is the arc flattening tolerance (<= 0 uses
// ring.DefaultTolerance).
func Fill(p *ring.Path, width, height int, tolerance float64) (*Mask, error) {
	m, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if p == nil || p.IsEmpty() {
		return m, nil
	}

	z := vector.NewRasterizer(width, height)
	z.DrawOp = draw.Src
	segments := 0
	for _, c := range p.Flatten(tolerance) {
		if len(c.Points) < 3 {
			continue
		}
		z.MoveTo(float32(c.Points[0].X), float32(c.Points[0].Y))
		for _, q := range c.Points[1:] {
			z.LineTo(float32(q.X), float32(q.Y))
		}
		z.ClosePath()
		segments += len(c.Points)
	}
	if segments == 0 {
		return m, nil
	}

	z.Draw(m.Alpha(), m.Bounds(), image.Opaque, image.Point{})
	ring.Logger().Debug("mask: filled outline",
		"width", width,
		"height", height,
		"segments", segments)
	return m, nil
}
