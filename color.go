package ring

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// Premultiply converts a straight-alpha color to premultiplied form using
// the same arithmetic as [Gradient.EvaluateAtAngle].
func Premultiply(c color.NRGBA) color.RGBA {
	a := float64(c.A) / 255
	return color.RGBA{
		R: toByte(premulChannel(c.R, a) * 255),
		G: toByte(premulChannel(c.G, a) * 255),
		B: toByte(premulChannel(c.B, a) * 255),
		A: toByte(a * 255),
	}
}

// Unpremultiply converts a premultiplied color back to straight alpha.
// A zero alpha yields fully transparent black.
func Unpremultiply(c color.RGBA) color.NRGBA {
	if c.A == 0 {
		return color.NRGBA{}
	}
	af := float64(c.A) / 255
	return color.NRGBA{
		R: toByte(float64(c.R) / af),
		G: toByte(float64(c.G) / af),
		B: toByte(float64(c.B) / af),
		A: c.A,
	}
}

// ParseHexColor parses "#RRGGBB" or "#AARRGGBB" (the leading '#' is
// optional). For the six digit form the alpha comes from alphaPercent
// in [0, 100]; the eight digit form ignores alphaPercent.
func ParseHexColor(s string, alphaPercent float64) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	var c color.NRGBA
	switch len(hex) {
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return c, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		c.A = toByte(clampPercent(alphaPercent) / 100 * 255)
		c.R = uint8(v >> 16)
		c.G = uint8(v >> 8)
		c.B = uint8(v)
	case 8:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return c, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		c.A = uint8(v >> 24)
		c.R = uint8(v >> 16)
		c.G = uint8(v >> 8)
		c.B = uint8(v)
	default:
		return c, fmt.Errorf("%w: %q: use #RRGGBB or #AARRGGBB", ErrInvalidColor, s)
	}
	return c, nil
}

// FormatHexColor renders c as "#AARRGGBB".
func FormatHexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}

// premulChannel returns channel/255 * alpha as a value in [0, 1].
func premulChannel(channel uint8, alpha float64) float64 {
	return float64(channel) / 255 * alpha
}

// toByte rounds half to even and clamps to [0, 255]. NaN maps to 0.
func toByte(v float64) uint8 {
	r := math.RoundToEven(v)
	switch {
	case !(r > 0):
		return 0
	case r > 255:
		return 255
	default:
		return uint8(r)
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
