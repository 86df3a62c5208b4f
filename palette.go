package ring

import "image/color"

// DefaultResolution is the square raster size used for the default
// gradient texture.
const DefaultResolution = 2048

// DefaultAngleOffset rotates the default palette so its brightest band
// sits where the progress arc starts.
const DefaultAngleOffset = -46.2

// defaultStops is the blue/teal/green ring palette (straight ARGB).
var defaultStops = []ColorStop{
	{Angle: 25.2, Color: color.NRGBA{A: 0x99, R: 0x38, G: 0x7A, B: 0xFF}},
	{Angle: 72.0, Color: color.NRGBA{A: 0xE6, R: 0x3C, G: 0xB9, B: 0xA2}},
	{Angle: 136.8, Color: color.NRGBA{A: 0xE6, R: 0x3D, G: 0xCC, B: 0x87}},
	{Angle: 208.8, Color: color.NRGBA{A: 0xE6, R: 0x38, G: 0x7A, B: 0xFF}},
	{Angle: 306.0, Color: color.NRGBA{A: 0x99, R: 0x3B, G: 0xA3, B: 0xC3}},
	{Angle: 345.6, Color: color.NRGBA{A: 0x99, R: 0x3D, G: 0xCC, B: 0x87}},
}

var defaultGradient = MustGradient(defaultStops, DefaultAngleOffset)

// DefaultGradient returns the built-in ring palette.
// The returned value is shared; Gradient is immutable so this is safe.
func DefaultGradient() *Gradient {
	return defaultGradient
}

// DefaultStops returns a copy of the built-in palette's stops.
func DefaultStops() []ColorStop {
	out := make([]ColorStop, len(defaultStops))
	copy(out, defaultStops)
	return out
}
