package colour

// HSVA is a hue/saturation/value colour derived from linear RGB. The hue
// is held in radians; constructors and accessors use degrees.
type HSVA struct {
	h, s, v, a float64
}

// NewHSVA normalises like NewHSLA, with value in place of lightness.
func NewHSVA(h, s, v, a float64) (HSVA, error) {
	if err := checkFinite("hue", h); err != nil {
		return HSVA{}, err
	}
	if err := checkFinite("saturation", s); err != nil {
		return HSVA{}, err
	}
	if err := checkFinite("value", v); err != nil {
		return HSVA{}, err
	}
	if err := checkFinite("alpha", a); err != nil {
		return HSVA{}, err
	}
	return hsva(hueRadians(h), s, v, a), nil
}

func hsva(hRad, s, v, a float64) HSVA {
	return HSVA{h: hRad, s: clamp(s, -1, 1), v: clamp(v, -1, 1), a: clamp(a, 0, 1)}
}

func (c HSVA) Hue() float64        { return degrees(c.h) }
func (c HSVA) HueRadians() float64 { return c.h }
func (c HSVA) Saturation() float64 { return c.s }
func (c HSVA) Value() float64      { return c.v }
func (c HSVA) Alpha() float64      { return c.a }

func (c HSVA) WithHue(deg float64) (HSVA, error)      { return NewHSVA(deg, c.s, c.v, c.a) }
func (c HSVA) WithSaturation(v float64) (HSVA, error) { return NewHSVA(c.Hue(), v, c.v, c.a) }
func (c HSVA) WithValue(v float64) (HSVA, error)      { return NewHSVA(c.Hue(), c.s, v, c.a) }
func (c HSVA) WithAlpha(v float64) (HSVA, error)      { return NewHSVA(c.Hue(), c.s, c.v, v) }

func (c HSVA) ToRGB() RGBA { return hsvToRGB(c.h, c.s, c.v, c.a) }

func (c HSVA) String() string {
	return "hsva(" + formatNumber(degrees(c.h), 2) + "deg, " + formatPercent(c.s) + ", " + formatPercent(c.v) + ", " + formatNumber(c.a, 3) + ")"
}

func (c HSVA) Compare(other Colour) (int, error) { return Compare(c, other) }
func (c HSVA) Equal(other Colour) bool           { return Equal(c, other) }
