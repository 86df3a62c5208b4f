package ring

import "math"

// MinBarRatio bounds the fill ratio used for gradient scaling so an empty
// bar does not divide by zero.
const MinBarRatio = 1e-5

// horizontalEpsilon is how close the Y coordinates of a gradient axis must
// be for the axis to count as horizontal.
const horizontalEpsilon = 1e-6

// BarRatio returns value/maximum clamped to [0, 1]. It is 0 when maximum is
// not positive or either input is NaN.
func BarRatio(value, maximum float64) float64 {
	if !(maximum > 0) {
		return 0
	}
	r := value / maximum
	if math.IsNaN(r) || r < 0 {
		return 0
	}
	return math.Min(r, 1)
}

// BarIndicatorWidth returns the width of the filled part of a linear bar
// trackWidth wide.
func BarIndicatorWidth(trackWidth, value, maximum float64) float64 {
	return trackWidth * BarRatio(value, maximum)
}

// IsHorizontalAxis reports whether the gradient axis from start to end runs
// horizontally.
func IsHorizontalAxis(start, end Point) bool {
	return math.Abs(start.Y-end.Y) < horizontalEpsilon
}

// BarGradientScale returns the X scale applied to a linear gradient with
// axis start-end, in the indicator's relative space, so the gradient keeps
// the geometry of the full track while the indicator shrinks. Non-horizontal
// axes are left unscaled.
func BarGradientScale(start, end Point, value, maximum float64) float64 {
	if !IsHorizontalAxis(start, end) {
		return 1
	}
	return 1 / math.Max(BarRatio(value, maximum), MinBarRatio)
}
