package colour

// XYZA is a CIE 1931 XYZ colour with every component in [0,1].
type XYZA struct {
	x, y, z, a float64
}

// NewXYZA clamps each component into [0,1].
func NewXYZA(x, y, z, a float64) (XYZA, error) {
	if err := checkFinite("x", x); err != nil {
		return XYZA{}, err
	}
	if err := checkFinite("y", y); err != nil {
		return XYZA{}, err
	}
	if err := checkFinite("z", z); err != nil {
		return XYZA{}, err
	}
	if err := checkFinite("alpha", a); err != nil {
		return XYZA{}, err
	}
	return xyza(x, y, z, a), nil
}

func xyza(x, y, z, a float64) XYZA {
	return XYZA{x: clamp(x, 0, 1), y: clamp(y, 0, 1), z: clamp(z, 0, 1), a: clamp(a, 0, 1)}
}

func (c XYZA) X() float64     { return c.x }
func (c XYZA) Y() float64     { return c.y }
func (c XYZA) Z() float64     { return c.z }
func (c XYZA) Alpha() float64 { return c.a }

func (c XYZA) WithX(v float64) (XYZA, error)     { return NewXYZA(v, c.y, c.z, c.a) }
func (c XYZA) WithY(v float64) (XYZA, error)     { return NewXYZA(c.x, v, c.z, c.a) }
func (c XYZA) WithZ(v float64) (XYZA, error)     { return NewXYZA(c.x, c.y, v, c.a) }
func (c XYZA) WithAlpha(v float64) (XYZA, error) { return NewXYZA(c.x, c.y, c.z, v) }

// ToRGB applies the XYZ->sRGB matrix and scales to [0,255].
func (c XYZA) ToRGB() RGBA {
	r, g, b := mulVec(xyzToRGB, c.x, c.y, c.z)
	return rgba(r*255, g*255, b*255, c.a)
}

func (c XYZA) String() string {
	return "ciexyza(" + formatPercent(c.x) + ", " + formatPercent(c.y) + ", " + formatPercent(c.z) + ", " + formatNumber(c.a, 3) + ")"
}

func (c XYZA) Compare(other Colour) (int, error) { return Compare(c, other) }
func (c XYZA) Equal(other Colour) bool           { return Equal(c, other) }
