package colour

import "math"

// HSLA is a hue/saturation/lightness colour derived from linear RGB. The
// hue is held in radians; constructors and accessors use degrees.
type HSLA struct {
	h, s, l, a float64
}

// NewHSLA reduces h modulo 360 (keeping its sign), clamps s and l to
// [-1,1] and a to [0,1].
func NewHSLA(h, s, l, a float64) (HSLA, error) {
	if err := checkFinite("hue", h); err != nil {
		return HSLA{}, err
	}
	if err := checkFinite("saturation", s); err != nil {
		return HSLA{}, err
	}
	if err := checkFinite("lightness", l); err != nil {
		return HSLA{}, err
	}
	if err := checkFinite("alpha", a); err != nil {
		return HSLA{}, err
	}
	return hsla(hueRadians(h), s, l, a), nil
}

// MustHSLA is like NewHSLA but panics on NaN input.
func MustHSLA(h, s, l, a float64) HSLA {
	c, err := NewHSLA(h, s, l, a)
	if err != nil {
		panic(err)
	}
	return c
}

func hsla(hRad, s, l, a float64) HSLA {
	return HSLA{h: hRad, s: clamp(s, -1, 1), l: clamp(l, -1, 1), a: clamp(a, 0, 1)}
}

// hueRadians reduces degrees beyond ±360 and converts to radians.
func hueRadians(deg float64) float64 {
	if math.Abs(deg) > 360 {
		deg = math.Mod(deg, 360)
	}
	return radians(deg)
}

// Hue returns the hue in degrees.
func (c HSLA) Hue() float64        { return degrees(c.h) }
func (c HSLA) HueRadians() float64 { return c.h }
func (c HSLA) Saturation() float64 { return c.s }
func (c HSLA) Lightness() float64  { return c.l }
func (c HSLA) Alpha() float64      { return c.a }

func (c HSLA) WithHue(deg float64) (HSLA, error)      { return NewHSLA(deg, c.s, c.l, c.a) }
func (c HSLA) WithSaturation(v float64) (HSLA, error) { return NewHSLA(c.Hue(), v, c.l, c.a) }
func (c HSLA) WithLightness(v float64) (HSLA, error)  { return NewHSLA(c.Hue(), c.s, v, c.a) }
func (c HSLA) WithAlpha(v float64) (HSLA, error)      { return NewHSLA(c.Hue(), c.s, c.l, v) }

func (c HSLA) ToRGB() RGBA { return hslToRGB(c.h, c.s, c.l, c.a) }

func (c HSLA) String() string {
	return "hsla(" + formatNumber(degrees(c.h), 2) + "deg, " + formatPercent(c.s) + ", " + formatPercent(c.l) + ", " + formatNumber(c.a, 3) + ")"
}

func (c HSLA) Compare(other Colour) (int, error) { return Compare(c, other) }
func (c HSLA) Equal(other Colour) bool           { return Equal(c, other) }
