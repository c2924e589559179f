package colour

// HSIA is a hue/saturation/intensity colour computed directly on sRGB
// channels. Unlike HSLA and HSVA the hue is held in degrees.
type HSIA struct {
	h, s, i, a float64
}

// NewHSIA clamps h to [0,360] and s, i and a to [0,1].
func NewHSIA(h, s, i, a float64) (HSIA, error) {
	if err := checkFinite("hue", h); err != nil {
		return HSIA{}, err
	}
	if err := checkFinite("saturation", s); err != nil {
		return HSIA{}, err
	}
	if err := checkFinite("intensity", i); err != nil {
		return HSIA{}, err
	}
	if err := checkFinite("alpha", a); err != nil {
		return HSIA{}, err
	}
	return hsia(h, s, i, a), nil
}

func hsia(h, s, i, a float64) HSIA {
	return HSIA{h: clamp(h, 0, 360), s: clamp(s, 0, 1), i: clamp(i, 0, 1), a: clamp(a, 0, 1)}
}

func (c HSIA) Hue() float64        { return c.h }
func (c HSIA) Saturation() float64 { return c.s }
func (c HSIA) Intensity() float64  { return c.i }
func (c HSIA) Alpha() float64      { return c.a }

func (c HSIA) WithHue(deg float64) (HSIA, error)      { return NewHSIA(deg, c.s, c.i, c.a) }
func (c HSIA) WithSaturation(v float64) (HSIA, error) { return NewHSIA(c.h, v, c.i, c.a) }
func (c HSIA) WithIntensity(v float64) (HSIA, error)  { return NewHSIA(c.h, c.s, v, c.a) }
func (c HSIA) WithAlpha(v float64) (HSIA, error)      { return NewHSIA(c.h, c.s, c.i, v) }

func (c HSIA) ToRGB() RGBA { return hsiToRGB(c.h, c.s, c.i, c.a) }

func (c HSIA) String() string {
	return "hsia(" + formatNumber(c.h, 2) + ", " + formatPercent(c.s) + ", " + formatPercent(c.i) + ", " + formatNumber(c.a, 3) + ")"
}

func (c HSIA) Compare(other Colour) (int, error) { return Compare(c, other) }
func (c HSIA) Equal(other Colour) bool           { return Equal(c, other) }
