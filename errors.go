package ring

import "errors"

// Sentinel errors. Functions wrap them with context, so compare with errors.Is.
var (
	// ErrInvalidGradientSpec is returned when a gradient has fewer than two
	// stops, duplicate stop angles, or an angle outside [0, 360).
	ErrInvalidGradientSpec = errors.New("ring: invalid gradient spec")

	// ErrInvalidDimensions is returned for a non-positive raster size,
	// radius or thickness.
	ErrInvalidDimensions = errors.New("ring: invalid dimensions")

	// ErrInvalidColor is returned when a hex color string cannot be parsed.
	ErrInvalidColor = errors.New("ring: invalid color")
)
