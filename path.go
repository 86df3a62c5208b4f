package ring

import (
	"math"

	"github.com/gogpu/ring/internal/stroke"
)

// DefaultTolerance is the flattening tolerance, in pixels, used for arcs
// and stroke outlines when none is given.
const DefaultTolerance = 0.05

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// ArcTo draws a circular arc from the current point.
//
// End, Radius, LargeArc and Clockwise carry the endpoint form used by
// SVG and XAML arc segments. Center, StartAngle and Sweep carry the same
// arc in center form (ring degrees: 0 at top, clockwise positive), which is
// what Flatten uses.
type ArcTo struct {
	End       Point
	Radius    float64
	LargeArc  bool
	Clockwise bool

	Center     Point
	StartAngle float64
	Sweep      float64
}

func (ArcTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is a sequence of subpaths. Paths returned by ring are shared
// values and must be treated as read-only; use Clone before editing.
type Path struct {
	elements []PathElement
	start    Point
	current  Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{elements: make([]PathElement, 0, 4)}
}

// MoveTo starts a new subpath at p.
func (p *Path) MoveTo(pt Point) {
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to pt.
func (p *Path) LineTo(pt Point) {
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// Arc draws an arc of the circle (center, radius) from startDeg sweeping
// sweepDeg degrees (positive is clockwise). The caller is responsible for
// the current point lying at PointOnCircle(center, startDeg, radius).
func (p *Path) Arc(center Point, radius, startDeg, sweepDeg float64) {
	end := PointOnCircle(center, startDeg+sweepDeg, radius)
	p.elements = append(p.elements, ArcTo{
		End:        end,
		Radius:     radius,
		LargeArc:   math.Abs(sweepDeg) > 180,
		Clockwise:  sweepDeg >= 0,
		Center:     center,
		StartAngle: startDeg,
		Sweep:      sweepDeg,
	})
	p.current = end
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Start returns the first point of the last subpath.
func (p *Path) Start() Point {
	return p.start
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.elements) == 0
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	elems := make([]PathElement, len(p.elements))
	copy(elems, p.elements)
	return &Path{elements: elems, start: p.start, current: p.current}
}

// Contour is a flattened subpath.
type Contour struct {
	Points []Point
	Closed bool
}

// Flatten converts the path into polylines. Arcs are split so that no
// chord strays more than tolerance from the circle; tolerance <= 0 uses
// DefaultTolerance.
func (p *Path) Flatten(tolerance float64) []Contour {
	if !(tolerance > 0) {
		tolerance = DefaultTolerance
	}

	var (
		out []Contour
		cur []Point
	)
	flush := func(closed bool) {
		if len(cur) > 0 {
			out = append(out, Contour{Points: cur, Closed: closed})
		}
		cur = nil
	}

	for _, el := range p.elements {
		switch e := el.(type) {
		case MoveTo:
			flush(false)
			cur = append(cur, e.Point)
		case LineTo:
			cur = append(cur, e.Point)
		case ArcTo:
			cur = appendArcPoints(cur, e, tolerance)
		case Close:
			flush(true)
		}
	}
	flush(false)
	return out
}

// appendArcPoints appends the flattened arc, excluding its start point.
func appendArcPoints(pts []Point, a ArcTo, tolerance float64) []Point {
	n := arcSegments(a.Radius, a.Sweep, tolerance)
	for i := 1; i < n; i++ {
		deg := a.StartAngle + a.Sweep*float64(i)/float64(n)
		pts = append(pts, PointOnCircle(a.Center, deg, a.Radius))
	}
	// The stored endpoint is exact; reuse it instead of recomputing.
	return append(pts, a.End)
}

// arcSegments returns how many chords approximate an arc within tolerance.
func arcSegments(radius, sweepDeg, tolerance float64) int {
	step := math.Pi / 2
	if tolerance < radius {
		step = math.Min(step, 2*math.Acos(1-tolerance/radius))
	}
	n := int(math.Ceil(math.Abs(sweepDeg) * radians / step))
	if n < 1 {
		n = 1
	}
	return n
}

// Stroke returns the filled outline of the path drawn with a pen of the
// given width, round caps and round joins. Open subpaths become one closed
// contour each; closed subpaths become an outer and an inner ring.
func (p *Path) Stroke(width, tolerance float64) *Path {
	if !(tolerance > 0) {
		tolerance = DefaultTolerance
	}
	exp := stroke.NewExpander(stroke.Style{Width: width, Tolerance: tolerance})

	out := NewPath()
	for _, c := range p.Flatten(tolerance) {
		pts := toStrokePoints(c.Points)
		var rings [][]stroke.Point
		if c.Closed {
			rings = exp.Closed(pts)
		} else {
			rings = exp.Open(pts)
		}
		for _, poly := range rings {
			appendPolygon(out, poly)
		}
	}
	return out
}

func toStrokePoints(pts []Point) []stroke.Point {
	out := make([]stroke.Point, len(pts))
	for i, p := range pts {
		out[i] = stroke.Point{X: p.X, Y: p.Y}
	}
	return out
}

func appendPolygon(p *Path, pts []stroke.Point) {
	if len(pts) == 0 {
		return
	}
	p.MoveTo(Pt(pts[0].X, pts[0].Y))
	for _, q := range pts[1:] {
		p.LineTo(Pt(q.X, q.Y))
	}
	p.Close()
}
