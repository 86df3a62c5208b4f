package ring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// winding returns the nonzero winding number of p against the flattened
// contours of path.
func winding(path *Path, p Point) int {
	w := 0
	for _, c := range path.Flatten(0) {
		pts := c.Points
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			cross := (b.X-a.X)*(p.Y-a.Y) - (p.X-a.X)*(b.Y-a.Y)
			switch {
			case a.Y <= p.Y && b.Y > p.Y && cross > 0:
				w++
			case a.Y > p.Y && b.Y <= p.Y && cross < 0:
				w--
			}
		}
	}
	return w
}

func filled(path *Path, p Point) bool {
	return winding(path, p) != 0
}

func TestClipOutline_NoProgress(t *testing.T) {
	b := NewArcGeometryBuilder(0.01)
	for _, sweep := range []float64{0, MinVisibleSweep, -10, math.NaN()} {
		clip, err := b.ClipOutline(Pt(0, 0), 10, 2, sweep)
		require.NoError(t, err)
		assert.Nil(t, clip, "sweep=%v", sweep)
	}
	assert.Equal(t, 0, b.Rebuilds())
}

func TestClipOutline_InvalidDimensions(t *testing.T) {
	b := NewArcGeometryBuilder(0)
	_, err := b.ClipOutline(Pt(0, 0), 0, 2, 90)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = b.ClipOutline(Pt(0, 0), 10, -2, 90)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
	assert.Equal(t, 0, b.Rebuilds())
}

func TestClipOutline_Band(t *testing.T) {
	const r, th = 10.0, 2.0
	c := Pt(0, 0)
	b := NewArcGeometryBuilder(0.01)

	clip, err := b.ClipOutline(c, r, th, 176.4)
	require.NoError(t, err)
	require.NotNil(t, clip)
	require.Len(t, clip.Flatten(0), 1, "open arc strokes to a single contour")

	tests := []struct {
		name   string
		deg    float64
		radius float64
		want   bool
	}{
		{"centerline", 90, r, true},
		{"near outer edge", 90, r + th/2 - 0.15, true},
		{"past outer edge", 90, r + th/2 + 0.1, false},
		{"near inner edge", 90, r - th/2 + 0.15, true},
		{"past inner edge", 90, r - th/2 - 0.1, false},
		{"end of sweep", 176, r, true},
		{"beyond end cap", 200, r, false},
		{"inside start cap", 357, r, true},
		{"beyond start cap", 350, r, false},
		{"opposite side", 270, r, false},
		{"ring center", 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PointOnCircle(c, tt.deg, tt.radius)
			assert.Equal(t, tt.want, filled(clip, p), "point %v", p)
		})
	}
}

func TestClipOutline_EdgesFollowCircle(t *testing.T) {
	const r, th = 30.0, 10.0
	c := CenterFor(r, th)
	clip, err := NewArcGeometryBuilder(0.01).ClipOutline(c, r, th, 250)
	require.NoError(t, err)

	for _, contour := range clip.Flatten(0) {
		for _, p := range contour.Points {
			d := p.Distance(c)
			assert.GreaterOrEqual(t, d, r-th/2-0.05)
			assert.LessOrEqual(t, d, r+th/2+1e-9)
		}
	}
}

func TestClipOutline_FullRing(t *testing.T) {
	const r, th = 10.0, 4.0
	c := Pt(12, 12)
	b := NewArcGeometryBuilder(0.01)

	for _, sweep := range []float64{MaxOpenSweep, 360} {
		b.Reset()
		clip, err := b.ClipOutline(c, r, th, sweep)
		require.NoError(t, err)
		require.Len(t, clip.Flatten(0), 2, "sweep=%v", sweep)

		assert.False(t, filled(clip, c), "center must stay empty")
		assert.False(t, filled(clip, PointOnCircle(c, 45, r-th/2-0.2)))
		assert.False(t, filled(clip, PointOnCircle(c, 45, r+th/2+0.1)))
		for _, deg := range []float64{0, 0.0005, 90, 180, 359.9995} {
			assert.True(t, filled(clip, PointOnCircle(c, deg, r)), "sweep=%v deg=%v", sweep, deg)
		}
	}
}

func TestClipOutline_Cache(t *testing.T) {
	c := Pt(20, 20)
	b := NewArcGeometryBuilder(0.01)

	first, err := b.ClipOutline(c, 10, 2, 90)
	require.NoError(t, err)
	assert.Equal(t, 1, b.Rebuilds())

	tests := []struct {
		name              string
		center            Point
		radius, thickness float64
		sweep             float64
		rebuild           bool
	}{
		{"same inputs", c, 10, 2, 90, false},
		{"within tolerance", c, 10, 2, 90 + 5e-5, false},
		{"sweep moved", c, 10, 2, 90 + 2e-4, true},
		{"radius moved", c, 10.001, 2, 90 + 2e-4, true},
		{"thickness moved", c, 10.001, 2.5, 90 + 2e-4, true},
		{"center moved", Pt(21, 20), 10.001, 2.5, 90 + 2e-4, true},
		{"repeat", Pt(21, 20), 10.001, 2.5, 90 + 2e-4, false},
	}

	prev := first
	for _, tt := range tests {
		before := b.Rebuilds()
		clip, err := b.ClipOutline(tt.center, tt.radius, tt.thickness, tt.sweep)
		require.NoError(t, err, tt.name)
		if tt.rebuild {
			assert.Equal(t, before+1, b.Rebuilds(), tt.name)
			assert.NotSame(t, prev, clip, tt.name)
		} else {
			assert.Equal(t, before, b.Rebuilds(), tt.name)
			assert.Same(t, prev, clip, tt.name)
		}
		prev = clip
	}
}

func TestClipOutline_NoProgressClearsCache(t *testing.T) {
	c := Pt(0, 0)
	b := NewArcGeometryBuilder(0.01)

	a, err := b.ClipOutline(c, 10, 2, 120)
	require.NoError(t, err)

	none, err := b.ClipOutline(c, 10, 2, 0)
	require.NoError(t, err)
	assert.Nil(t, none)

	again, err := b.ClipOutline(c, 10, 2, 120)
	require.NoError(t, err)
	assert.NotSame(t, a, again)
	assert.Equal(t, 2, b.Rebuilds())
}

func TestArcGeometryBuilder_Build(t *testing.T) {
	var b ArcGeometryBuilder
	spec := ArcSpec{Center: CenterFor(17, 6), Radius: 17, Thickness: 6, Value: 42}

	g1, err := b.Build(spec)
	require.NoError(t, err)
	g2, err := b.Build(spec)
	require.NoError(t, err)

	assert.Same(t, g1.Clip, g2.Clip)
	assert.Equal(t, 1, b.Rebuilds())
	assert.Equal(t, SweepAngle(42), g1.Sweep)

	spec.Value = 43
	g3, err := b.Build(spec)
	require.NoError(t, err)
	assert.NotSame(t, g1.Clip, g3.Clip)
	assert.Equal(t, 2, b.Rebuilds())
}
