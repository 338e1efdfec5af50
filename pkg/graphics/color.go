package graphics

import "github.com/chewxy/math32"

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue, alpha bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float32) {
	return float32(uint8(c>>16)) / maxByte,
		float32(uint8(c>>8)) / maxByte,
		float32(uint8(c)) / maxByte,
		float32(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-255).
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// WithOpacity returns a copy with alpha scaled by opacity in [0, 1].
func (c Color) WithOpacity(opacity float32) Color {
	opacity = math32.Max(0, math32.Min(1, opacity))
	a := float32(uint8(c>>24)) * opacity
	return c.WithAlpha(uint8(a + 0.5))
}

// Level scales the RGB channels by the given factor, clamping at white.
// Factors above 1 brighten, below 1 darken; alpha is preserved.
func (c Color) Level(factor float32) Color {
	scale := func(v uint8) uint8 {
		s := float32(v) * factor
		if s > maxByte {
			s = maxByte
		}
		return uint8(s + 0.5)
	}
	return RGBA(scale(uint8(c>>16)), scale(uint8(c>>8)), scale(uint8(c)), uint8(c>>24))
}

// Common colors.
var (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
)
