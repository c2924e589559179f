package colour

import "math"

// Default scales for the blend helpers.
const (
	DefaultBlendScale = 0.5
	DefaultShadeScale = 0.2
	DefaultTintScale  = 1.0
	DefaultToneScale  = 1.0
)

var (
	black   = rgba(0, 0, 0, 1)
	white   = rgba(255, 255, 255, 1)
	midGray = rgba(128, 128, 128, 1)
)

// Blend interpolates c1 towards c2 by scale in linear RGB. The result takes
// alpha as given; the inputs' alphas are ignored. A NaN scale is read as 0
// and a NaN alpha as 1.
func Blend(c1, c2 Colour, scale, alpha float64) RGBA {
	if math.IsNaN(scale) {
		scale = 0
	}
	if math.IsNaN(alpha) {
		alpha = 1
	}
	r1, g1, b1 := c1.ToRGB().linear()
	r2, g2, b2 := c2.ToRGB().linear()
	return fromLinear(
		r1+(r2-r1)*scale,
		g1+(g2-g1)*scale,
		b1+(b2-b1)*scale,
		alpha,
	)
}

// Shade blends c towards black.
func Shade(c Colour, scale float64) RGBA { return Blend(c, black, scale, 1) }

// Tint blends c towards white.
func Tint(c Colour, scale float64) RGBA { return Blend(c, white, scale, 1) }

// Tone blends c towards mid-gray (128,128,128).
func Tone(c Colour, scale float64) RGBA { return Blend(c, midGray, scale, 1) }

// Colourise blends black towards dst by the luminance of src, keeping the
// alpha of dst.
func Colourise(src, dst Colour) RGBA {
	return Blend(black, dst, Luminance(src), dst.Alpha())
}

// Invert replaces each channel with 255-channel and wraps the result back
// into [0,255]. Channels that started negative do not invert back to their
// original value.
func Invert(c Colour) RGBA {
	rgb := c.ToRGB()
	return rgba(cycle(255-rgb.r), cycle(255-rgb.g), cycle(255-rgb.b), rgb.a)
}

func cycle(v float64) float64 {
	switch {
	case v > 255:
		return math.Mod(v, 255)
	case v < 0:
		return v + 255
	}
	return v
}
