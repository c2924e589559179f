package colour

import "math"

// Luminance returns the relative luminance of c in [0,1].
func Luminance(c Colour) float64 {
	r, g, b := c.ToRGB().linear()
	return clamp(0.2126*r+0.7152*g+0.0722*b, 0, 1)
}

// ContrastRatio returns (L1+0.05)/(L2+0.05) with L1 the lighter colour. The
// result is in [1,21] and symmetric in its arguments.
func ContrastRatio(a, b Colour) float64 {
	la, lb := Luminance(a), Luminance(b)
	return (math.Max(la, lb) + 0.05) / (math.Min(la, lb) + 0.05)
}

// Grayscale replaces every channel with the luminance of c.
func Grayscale(c Colour) RGBA {
	rgb := c.ToRGB()
	y := Luminance(rgb)
	return fromLinear(y, y, y, rgb.a)
}

// Gamma raises each linear channel to the power 2.2.
func Gamma(c Colour) RGBA {
	return powLinear(c.ToRGB(), 2.2)
}

// Degamma raises each linear channel to the power 1/2.2.
func Degamma(c Colour) RGBA {
	return powLinear(c.ToRGB(), 1/2.2)
}

func powLinear(c RGBA, p float64) RGBA {
	r, g, b := c.linear()
	return fromLinear(signedPow(r, p), signedPow(g, p), signedPow(b, p), c.a)
}

// signedPow keeps the sign of negative channels, which math.Pow would turn
// into NaN for non-integer exponents.
func signedPow(v, p float64) float64 {
	if v < 0 {
		return -math.Pow(-v, p)
	}
	return math.Pow(v, p)
}
