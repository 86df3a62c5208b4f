package ring

import (
	"fmt"
	"log/slog"
	"math"
)

// clipEpsilon is the per-field tolerance of the clip outline cache.
const clipEpsilon = 1e-4

// clipKey identifies one clip outline.
type clipKey struct {
	center    Point
	radius    float64
	thickness float64
	sweep     float64
}

func (k clipKey) near(o clipKey) bool {
	return math.Abs(k.sweep-o.sweep) < clipEpsilon &&
		math.Abs(k.radius-o.radius) < clipEpsilon &&
		math.Abs(k.thickness-o.thickness) < clipEpsilon &&
		math.Abs(k.center.X-o.center.X) < clipEpsilon &&
		math.Abs(k.center.Y-o.center.Y) < clipEpsilon
}

// clipCache holds the last computed clip outline.
type clipCache struct {
	valid bool
	key   clipKey
	path  *Path
}

// ArcGeometryBuilder builds progress ring geometry and remembers the last
// clip outline, which is the expensive part. A new outline is computed only
// when the sweep, radius, thickness or center moves by 1e-4 or more.
//
// The zero value is ready to use. An ArcGeometryBuilder must not be used
// from several goroutines at once.
type ArcGeometryBuilder struct {
	// Tolerance is the flattening tolerance for the clip outline, in
	// pixels. Zero means DefaultTolerance.
	Tolerance float64

	cache    clipCache
	rebuilds int
}

// NewArcGeometryBuilder returns a builder with the given flattening
// tolerance (<= 0 selects DefaultTolerance).
func NewArcGeometryBuilder(tolerance float64) *ArcGeometryBuilder {
	return &ArcGeometryBuilder{Tolerance: tolerance}
}

// Rebuilds returns how many clip outlines the builder has computed.
func (b *ArcGeometryBuilder) Rebuilds() int {
	return b.rebuilds
}

// Reset drops the cached clip outline.
func (b *ArcGeometryBuilder) Reset() {
	b.cache = clipCache{}
}

// ClipOutline returns the filled region covered by the progress arc.
//
//   - sweep <= MinVisibleSweep: nil (hide the gradient layer). The cache is cleared.
//   - sweep >= MaxOpenSweep: the closed circle of the given radius stroked
//     to thickness, a full band with no caps and no seam.
//   - otherwise: the progress centerline stroked to thickness with round caps
//     and joins.
//
// In both stroked cases the edges follow the circle at radius +/- thickness/2.
//
// Radius and thickness must be positive; otherwise ErrInvalidDimensions is
// returned.
func (b *ArcGeometryBuilder) ClipOutline(center Point, radius, thickness, sweep float64) (*Path, error) {
	if err := checkRing(radius, thickness); err != nil {
		return nil, err
	}
	if !(sweep > MinVisibleSweep) {
		b.Reset()
		return nil, nil
	}

	key := clipKey{center: center, radius: radius, thickness: thickness, sweep: sweep}
	if b.cache.valid && b.cache.key.near(key) {
		return b.cache.path, nil
	}

	centerline := ProgressOutline(center, radius, sweep)
	if sweep >= MaxOpenSweep {
		centerline = Circle(center, radius)
	}
	clip := centerline.Stroke(thickness, b.tolerance())

	b.cache = clipCache{valid: true, key: key, path: clip}
	b.rebuilds++
	Logger().Debug("ring: clip outline rebuilt",
		slog.Float64("sweep", sweep),
		slog.Float64("radius", radius),
		slog.Float64("thickness", thickness),
		slog.Int("elements", len(clip.Elements())))
	return clip, nil
}

// Build returns the track, progress and clip geometry for spec.
func (b *ArcGeometryBuilder) Build(spec ArcSpec) (ArcGeometry, error) {
	if err := checkRing(spec.Radius, spec.Thickness); err != nil {
		return ArcGeometry{}, err
	}

	sweep := spec.Sweep()
	clip, err := b.ClipOutline(spec.Center, spec.Radius, spec.Thickness, sweep)
	if err != nil {
		return ArcGeometry{}, err
	}
	return ArcGeometry{
		Sweep:    sweep,
		Track:    TrackOutline(spec.Center, spec.Radius),
		Progress: ProgressOutline(spec.Center, spec.Radius, sweep),
		Clip:     clip,
	}, nil
}

// BuildArcGeometry is a one-shot Build with a fresh builder.
func BuildArcGeometry(valuePercent float64, center Point, radius, thickness float64) (ArcGeometry, error) {
	var b ArcGeometryBuilder
	return b.Build(ArcSpec{Center: center, Radius: radius, Thickness: thickness, Value: valuePercent})
}

func (b *ArcGeometryBuilder) tolerance() float64 {
	if b.Tolerance > 0 {
		return b.Tolerance
	}
	return DefaultTolerance
}

func checkRing(radius, thickness float64) error {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return fmt.Errorf("%w: radius %v", ErrInvalidDimensions, radius)
	}
	if !(thickness > 0) || math.IsInf(thickness, 0) {
		return fmt.Errorf("%w: thickness %v", ErrInvalidDimensions, thickness)
	}
	return nil
}
