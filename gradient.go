package ring

import (
	"fmt"
	"image/color"
	"math"
	"sort"
)

// ColorStop anchors a straight-alpha color at an angle in degrees.
type ColorStop struct {
	Angle float64     // Position on the ring, in [0, 360)
	Color color.NRGBA // Color at this position (straight alpha)
}

// Gradient is an immutable conic color ramp.
//
// Colors are interpolated in premultiplied space between neighboring stops
// and wrap around from the last stop to the first. AngleOffset rotates the
// whole ramp for point sampling and rasterization.
//
// A Gradient is safe for concurrent use.
type Gradient struct {
	stops  []ColorStop
	offset float64

	// premultiplied endpoints, parallel to stops
	pm []premul
}

// premul is a stop color in premultiplied [0, 1] floats.
type premul struct {
	a, r, g, b float64
}

// NewGradient creates a gradient from stops and an angle offset in degrees.
// The stops are copied and sorted by angle. It fails with
// ErrInvalidGradientSpec when there are fewer than two stops, when two stops
// share an angle, or when an angle lies outside [0, 360).
func NewGradient(stops []ColorStop, angleOffset float64) (*Gradient, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 stops, got %d", ErrInvalidGradientSpec, len(stops))
	}
	if math.IsNaN(angleOffset) || math.IsInf(angleOffset, 0) {
		return nil, fmt.Errorf("%w: angle offset %v is not finite", ErrInvalidGradientSpec, angleOffset)
	}

	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Angle < sorted[j].Angle
	})

	for i, s := range sorted {
		if !(s.Angle >= 0 && s.Angle < 360) {
			return nil, fmt.Errorf("%w: stop angle %v outside [0, 360)", ErrInvalidGradientSpec, s.Angle)
		}
		if i > 0 && sorted[i-1].Angle == s.Angle {
			return nil, fmt.Errorf("%w: duplicate stop angle %v", ErrInvalidGradientSpec, s.Angle)
		}
	}

	g := &Gradient{
		stops:  sorted,
		offset: angleOffset,
		pm:     make([]premul, len(sorted)),
	}
	for i, s := range sorted {
		a := float64(s.Color.A) / 255
		g.pm[i] = premul{
			a: a,
			r: premulChannel(s.Color.R, a),
			g: premulChannel(s.Color.G, a),
			b: premulChannel(s.Color.B, a),
		}
	}
	return g, nil
}

// MustGradient is like NewGradient but panics on error.
// It is intended for package-level palettes.
func MustGradient(stops []ColorStop, angleOffset float64) *Gradient {
	g, err := NewGradient(stops, angleOffset)
	if err != nil {
		panic(err)
	}
	return g
}

// Stops returns a copy of the sorted stop table.
func (g *Gradient) Stops() []ColorStop {
	out := make([]ColorStop, len(g.stops))
	copy(out, g.stops)
	return out
}

// AngleOffset returns the rotation applied before lookup, in degrees.
func (g *Gradient) AngleOffset() float64 {
	return g.offset
}

// EvaluateAtAngle returns the premultiplied color at angle degrees.
// Any finite angle is accepted and normalized to [0, 360).
//
// Angles below the first stop or at/after the last stop interpolate between
// the last and the first stop across the 0/360 seam. An angle equal to the
// last stop's angle therefore belongs to that wrap segment.
func (g *Gradient) EvaluateAtAngle(deg float64) color.RGBA {
	deg = mod360(deg)

	n := len(g.stops)
	var (
		prev, next           int
		prevAngle, nextAngle float64
	)
	switch {
	case deg < g.stops[0].Angle:
		prev, next = n-1, 0
		prevAngle = g.stops[prev].Angle - 360
		nextAngle = g.stops[next].Angle
	case deg >= g.stops[n-1].Angle:
		prev, next = n-1, 0
		prevAngle = g.stops[prev].Angle
		nextAngle = g.stops[next].Angle + 360
	default:
		// First stop strictly above deg; exists because deg < last angle.
		next = sort.Search(n, func(i int) bool { return g.stops[i].Angle > deg })
		prev = next - 1
		prevAngle = g.stops[prev].Angle
		nextAngle = g.stops[next].Angle
	}

	t := clamp01((deg - prevAngle) / (nextAngle - prevAngle))
	p0, p1 := g.pm[prev], g.pm[next]

	return color.RGBA{
		R: toByte(lerp(p0.r, p1.r, t) * 255),
		G: toByte(lerp(p0.g, p1.g, t) * 255),
		B: toByte(lerp(p0.b, p1.b, t) * 255),
		A: toByte(lerp(p0.a, p1.a, t) * 255),
	}
}

// AngleAt returns the ramp angle for an offset (dx, dy) from the center.
// The raw angle is atan2(-dx, dy) mapped to [0, 360) degrees, then rotated
// by the angle offset. Rasterization and point sampling share this mapping.
func (g *Gradient) AngleAt(dx, dy float64) float64 {
	return offsetAngle(dx, dy, g.offset)
}

// SampleColorAtPoint returns the straight-alpha color the gradient shows at
// point for a ring centered at center.
func (g *Gradient) SampleColorAtPoint(point, center Point) color.NRGBA {
	c := g.EvaluateAtAngle(g.AngleAt(point.X-center.X, point.Y-center.Y))
	return Unpremultiply(c)
}

// offsetAngle keeps the argument order of atan2(-dx, dy) exactly.
func offsetAngle(dx, dy, offset float64) float64 {
	rad := math.Atan2(-dx, dy)
	if rad < 0 {
		rad += 2 * math.Pi
	}
	return mod360(rad*(180/math.Pi) + offset)
}

// mod360 wraps deg into [0, 360). NaN and infinities map to 0.
func mod360(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if math.IsNaN(deg) {
		return 0
	}
	if deg < 0 {
		deg += 360
	}
	// -tiny + 360 rounds to 360 in float64.
	if deg >= 360 {
		deg = 0
	}
	return deg
}
