package ring

import "image/color"

// Dot metrics of the indeterminate ring at scale 1. A preset multiplies
// them by its Scale.
const (
	DotBaseDiameter            = 4.5
	DotBaseMinOffset           = 1.5
	DotBaseMaxOffset           = 6.5
	DotBaseDisplacement        = 5.0
	DotBaseReverseDisplacement = -4.0
)

// DefaultDotGrid is the box edge used when no layout size is known.
const DefaultDotGrid = 24.0

// Dot indexes the four indeterminate dots.
type Dot int

const (
	DotTop Dot = iota
	DotRight
	DotBottom
	DotLeft
)

// String returns the dot name.
func (d Dot) String() string {
	switch d {
	case DotTop:
		return "top"
	case DotRight:
		return "right"
	case DotBottom:
		return "bottom"
	case DotLeft:
		return "left"
	default:
		return "unknown"
	}
}

// IndeterminatePreset is the layout of the spinning-dots ring for one size.
type IndeterminatePreset struct {
	Size        Size
	Orientation Orientation
	Scale       float64
	GridSize    float64 // edge of the square box holding the dots
}

// DotDiameter returns the scaled dot diameter.
func (p IndeterminatePreset) DotDiameter() float64 { return DotBaseDiameter * p.Scale }

// DotMinOffset returns the scaled inset of a resting dot from the box edge.
func (p IndeterminatePreset) DotMinOffset() float64 { return DotBaseMinOffset * p.Scale }

// DotMaxOffset returns the scaled inset at the far end of a dot's travel.
func (p IndeterminatePreset) DotMaxOffset() float64 { return DotBaseMaxOffset * p.Scale }

// Displacement returns the scaled forward travel of a dot.
func (p IndeterminatePreset) Displacement() float64 { return DotBaseDisplacement * p.Scale }

// ReverseDisplacement returns the scaled backward travel of a dot.
func (p IndeterminatePreset) ReverseDisplacement() float64 {
	return DotBaseReverseDisplacement * p.Scale
}

// DotPositions returns the resting dot centers inside the preset's box.
func (p IndeterminatePreset) DotPositions() [4]Point {
	return DotPositions(p.GridSize, p.GridSize, p.DotDiameter(), p.DotMinOffset())
}

// DotColors samples g at the preset's dot centers.
func (p IndeterminatePreset) DotColors(g *Gradient) [4]color.NRGBA {
	return DotColors(g, p.GridSize, p.GridSize, p.DotDiameter(), p.DotMinOffset())
}

var indeterminatePresets = []IndeterminatePreset{
	{Size: SizeXLarge, Orientation: Vertical, Scale: 3.75, GridSize: 90},
	{Size: SizeLarge, Orientation: Vertical, Scale: 2.5, GridSize: 60},
	{Size: SizeMedium, Orientation: Vertical, Scale: 2.0, GridSize: 48},
	{Size: SizeSmall, Orientation: Horizontal, Scale: 1.0, GridSize: 24},
	{Size: SizeSmallTitle, Orientation: Horizontal, Scale: 0.67, GridSize: 16},
}

// LookupIndeterminatePreset returns the indeterminate layout for size.
func LookupIndeterminatePreset(size Size) (IndeterminatePreset, bool) {
	for _, p := range indeterminatePresets {
		if p.Size == size {
			return p, true
		}
	}
	return IndeterminatePreset{}, false
}

// DotPositions places the four dots of a width x height box, indexed by Dot.
// Each sits minOffset plus half a diameter in from its edge, on the box's
// center lines. A non-positive width or height falls back to a
// DefaultDotGrid square.
func DotPositions(width, height, diameter, minOffset float64) [4]Point {
	if !(width > 0) || !(height > 0) {
		width, height = DefaultDotGrid, DefaultDotGrid
	}
	cx, cy := width*0.5, height*0.5
	in := minOffset + diameter*0.5

	var pts [4]Point
	pts[DotTop] = Pt(cx, in)
	pts[DotRight] = Pt(width-in, cy)
	pts[DotBottom] = Pt(cx, height-in)
	pts[DotLeft] = Pt(in, cy)
	return pts
}

// DotColors freezes the conic gradient onto the dots: each dot takes the
// color g shows at its center for a ring centered in the box.
func DotColors(g *Gradient, width, height, diameter, minOffset float64) [4]color.NRGBA {
	if !(width > 0) || !(height > 0) {
		width, height = DefaultDotGrid, DefaultDotGrid
	}
	center := Pt(width*0.5, height*0.5)

	var colors [4]color.NRGBA
	for i, p := range DotPositions(width, height, diameter, minOffset) {
		colors[i] = g.SampleColorAtPoint(p, center)
	}
	return colors
}
