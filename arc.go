package ring

import "math"

const radians = math.Pi / 180

// Arc sweep constants, in degrees unless noted.
const (
	// SweepCorrection pulls the arc end back from full closure so the round
	// end cap does not run into the start of the track.
	SweepCorrection = 0.98

	// MaxOpenSweep is the largest sweep of an arc that must stay open. The
	// track is drawn with it so arc renderers never see an exact 360.
	MaxOpenSweep = 359.999

	// MinVisibleSweep is the sweep at or below which there is no progress
	// geometry at all.
	MinVisibleSweep = 0.001
)

// SweepAngle converts a progress value in percent to the arc sweep in
// degrees. The value is clamped to [0, 100]; NaN counts as 0.
//
// 0 maps to exactly 0 and 100 to exactly 360. Values in between are scaled
// by SweepCorrection and capped at MaxOpenSweep, so only 100 ever yields a
// closed ring.
func SweepAngle(valuePercent float64) float64 {
	v := clampPercent(valuePercent)
	if v <= 0 {
		return 0
	}
	if v >= 100 {
		return 360
	}
	return math.Min(v*SweepCorrection/100*360, MaxOpenSweep)
}

// PointOnCircle returns the point at deg degrees on the circle (center,
// radius), with 0 at the top and angles growing clockwise.
func PointOnCircle(center Point, deg, radius float64) Point {
	sin, cos := math.Sincos(deg * radians)
	return Point{
		X: center.X + sin*radius,
		Y: center.Y - cos*radius,
	}
}

// TrackOutline returns the full background circle as one open arc from the
// top sweeping MaxOpenSweep degrees clockwise, with the large-arc flag set.
func TrackOutline(center Point, radius float64) *Path {
	p := NewPath()
	p.MoveTo(PointOnCircle(center, 0, radius))
	p.Arc(center, radius, 0, MaxOpenSweep)
	return p
}

// ProgressOutline returns the open centerline arc for sweep degrees,
// starting at the top and running clockwise. It returns nil when
// sweep <= MinVisibleSweep. The large-arc flag is set above 180 degrees.
func ProgressOutline(center Point, radius, sweep float64) *Path {
	if !(sweep > MinVisibleSweep) {
		return nil
	}
	sweep = math.Min(sweep, 360)
	p := NewPath()
	p.MoveTo(PointOnCircle(center, 0, radius))
	p.Arc(center, radius, 0, sweep)
	return p
}

// Circle returns a true closed circle made of two half arcs.
func Circle(center Point, radius float64) *Path {
	p := NewPath()
	p.MoveTo(PointOnCircle(center, 0, radius))
	p.Arc(center, radius, 0, 180)
	p.Arc(center, radius, 180, 180)
	p.Close()
	return p
}

// ArcSpec describes one progress ring.
type ArcSpec struct {
	Center    Point
	Radius    float64
	Thickness float64
	Value     float64 // progress in percent, clamped to [0, 100]
}

// Sweep returns SweepAngle(s.Value).
func (s ArcSpec) Sweep() float64 {
	return SweepAngle(s.Value)
}

// Side returns the edge length of the square that holds the ring and its
// stroke: 2*Radius + Thickness.
func (s ArcSpec) Side() float64 {
	return 2*s.Radius + s.Thickness
}

// CenterFor returns the ring center inside its bounding square, which keeps
// the stroke fully visible.
func CenterFor(radius, thickness float64) Point {
	c := radius + thickness/2
	return Point{X: c, Y: c}
}

// ArcGeometry is the renderable geometry of one ArcSpec.
type ArcGeometry struct {
	Sweep float64

	// Track is always present: the full background ring centerline.
	Track *Path

	// Progress is the open centerline of the filled part; nil for no progress.
	Progress *Path

	// Clip is the filled region the gradient layer is clipped to; nil for no
	// progress, a seamless band for a full ring.
	Clip *Path
}

// Visible reports whether there is any progress to draw.
func (g ArcGeometry) Visible() bool {
	return g.Clip != nil
}
