package stroke

import "math"

// Point represents a 2D point (internal copy to avoid an import cycle).
type Point struct {
	X, Y float64
}

// Add returns p translated by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negated vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (z-component of 3D cross).
func (v Vec2) Cross(w Vec2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Perp returns the vector rotated by +90 degrees.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Rotate returns the vector rotated by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos}
}

// Style describes a round-capped, round-joined stroke.
type Style struct {
	// Width is the full pen width.
	Width float64

	// Tolerance is the maximum distance between a flattened cap or join and
	// the true circle. Default: 0.05.
	Tolerance float64
}

// DefaultTolerance is used when Style.Tolerance is not positive.
const DefaultTolerance = 0.05

// Expander converts polylines to filled outlines.
// An Expander is not safe for concurrent use; it reuses its buffers.
type Expander struct {
	halfWidth  float64
	tolerance  float64
	joinThresh float64
	arcStep    float64

	forward  []Point
	backward []Point

	startPt   Point
	startNorm Vec2
	lastTan   Vec2
	lastNorm  Vec2
}

// NewExpander creates an expander for style. A non-positive width yields
// an expander that produces no outlines.
func NewExpander(style Style) *Expander {
	tol := style.Tolerance
	if !(tol > 0) {
		tol = DefaultTolerance
	}
	e := &Expander{
		halfWidth: style.Width / 2,
		tolerance: tol,
	}
	if e.halfWidth > 0 {
		e.joinThresh = 2 * tol / style.Width
		e.arcStep = arcStep(e.halfWidth, tol)
	}
	return e
}

// arcStep returns the largest angle whose chord on a circle of radius r
// stays within tol of the arc.
func arcStep(r, tol float64) float64 {
	if tol >= r {
		return math.Pi / 2
	}
	step := 2 * math.Acos(1-tol/r)
	if step > math.Pi/2 {
		step = math.Pi / 2
	}
	return step
}

// Open strokes an open polyline and returns a single closed contour (the
// first point is not repeated at the end). A polyline that collapses to a
// single point yields a round dot of diameter Width.
func (e *Expander) Open(pts []Point) [][]Point {
	pts = dedupe(pts, false)
	if e.halfWidth <= 0 || len(pts) == 0 {
		return nil
	}
	if len(pts) == 1 {
		return [][]Point{e.dot(pts[0])}
	}

	e.reset()
	e.startPt = pts[0]
	for i := 1; i < len(pts); i++ {
		e.segment(pts[i-1], pts[i])
	}

	out := make([]Point, 0, len(e.forward)+len(e.backward)+16)
	out = append(out, e.forward...)

	// End cap: from the forward side around the tip to the backward side.
	last := pts[len(pts)-1]
	out = e.appendArc(out, last, e.lastNorm.Neg(), math.Pi)

	for i := len(e.backward) - 1; i >= 0; i-- {
		out = append(out, e.backward[i])
	}

	// Start cap: from the backward side around the tail to the forward side.
	// The final point equals forward[0] and is dropped since it closes.
	out = e.appendArc(out, e.startPt, e.startNorm, math.Pi)
	out = out[:len(out)-1]

	return [][]Point{out}
}

// Closed strokes a closed polygon and returns two contours, the forward
// offset ring and the reversed backward ring, so a nonzero fill leaves the
// interior of the polygon empty.
func (e *Expander) Closed(pts []Point) [][]Point {
	pts = dedupe(pts, true)
	if e.halfWidth <= 0 || len(pts) == 0 {
		return nil
	}
	if len(pts) < 3 {
		return e.Open(pts)
	}

	e.reset()
	e.startPt = pts[0]
	for i := 1; i < len(pts); i++ {
		e.segment(pts[i-1], pts[i])
	}
	e.segment(pts[len(pts)-1], pts[0])

	// Join the closing segment back to the first one.
	first := pts[1].Sub(pts[0])
	e.join(pts[0], first, e.normal(first))

	fwd := make([]Point, len(e.forward)-1)
	copy(fwd, e.forward[:len(e.forward)-1])

	back := make([]Point, 0, len(e.backward)-1)
	for i := len(e.backward) - 2; i >= 0; i-- {
		back = append(back, e.backward[i])
	}
	return [][]Point{fwd, back}
}

func (e *Expander) reset() {
	e.forward = e.forward[:0]
	e.backward = e.backward[:0]
	e.startNorm = Vec2{}
	e.lastTan = Vec2{}
	e.lastNorm = Vec2{}
}

// normal returns the tangent's perpendicular scaled to half the width.
func (e *Expander) normal(tan Vec2) Vec2 {
	return tan.Perp().Scale(e.halfWidth / tan.Length())
}

// segment extends both offset paths along p0 -> p1.
func (e *Expander) segment(p0, p1 Point) {
	tan := p1.Sub(p0)
	norm := e.normal(tan)

	if len(e.forward) == 0 {
		e.forward = append(e.forward, p0.Add(norm.Neg()))
		e.backward = append(e.backward, p0.Add(norm))
		e.startNorm = norm
	} else {
		e.join(p0, tan, norm)
	}

	e.forward = append(e.forward, p1.Add(norm.Neg()))
	e.backward = append(e.backward, p1.Add(norm))
	e.lastTan = tan
	e.lastNorm = norm
}

// join connects the previous segment to one starting at p0 with tangent
// tan. The outer side of the turn gets a round join; the inner side is a
// straight connection that the nonzero fill absorbs.
func (e *Expander) join(p0 Point, tan, norm Vec2) {
	cross := e.lastTan.Cross(tan)
	dot := e.lastTan.Dot(tan)
	hypot := math.Hypot(cross, dot)

	// Insignificant angle change: continue both paths to keep them
	// connected, without a join arc.
	if dot > 0 && math.Abs(cross) < hypot*e.joinThresh {
		e.forward = append(e.forward, p0.Add(norm.Neg()))
		e.backward = append(e.backward, p0.Add(norm))
		return
	}

	angle := math.Atan2(cross, dot)
	if angle > 0 {
		e.backward = append(e.backward, p0.Add(norm))
		e.forward = e.appendArc(e.forward, p0, e.lastNorm.Neg(), angle)
	} else {
		e.forward = append(e.forward, p0.Add(norm.Neg()))
		e.backward = e.appendArc(e.backward, p0, e.lastNorm, angle)
	}
}

// appendArc appends the points of an arc around center that starts at
// center+from and turns by angle radians. The start point is assumed to be
// present already and is not repeated.
func (e *Expander) appendArc(out []Point, center Point, from Vec2, angle float64) []Point {
	n := int(math.Ceil(math.Abs(angle) / e.arcStep))
	if n < 1 {
		n = 1
	}
	step := angle / float64(n)
	for i := 1; i <= n; i++ {
		out = append(out, center.Add(from.Rotate(step*float64(i))))
	}
	return out
}

// dot returns a full circle of radius halfWidth around p.
func (e *Expander) dot(p Point) []Point {
	from := Vec2{X: e.halfWidth}
	pts := make([]Point, 0, 16)
	pts = append(pts, p.Add(from))
	pts = e.appendArc(pts, p, from, 2*math.Pi)
	return pts[:len(pts)-1]
}

// samePointEps is the distance below which two points are merged.
const samePointEps = 1e-9

func samePoint(a, b Point) bool {
	return math.Abs(a.X-b.X) <= samePointEps && math.Abs(a.Y-b.Y) <= samePointEps
}

// dedupe drops consecutive duplicate points. For closed input a trailing
// point equal to the first one is dropped as well.
func dedupe(pts []Point, closed bool) []Point {
	if len(pts) == 0 {
		return nil
	}
	out := make([]Point, 0, len(pts))
	out = append(out, pts[0])
	for _, p := range pts[1:] {
		if !samePoint(p, out[len(out)-1]) {
			out = append(out, p)
		}
	}
	if closed && len(out) > 1 && samePoint(out[len(out)-1], out[0]) {
		out = out[:len(out)-1]
	}
	return out
}
