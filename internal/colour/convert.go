package colour

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Linearize removes the sRGB transfer curve from a channel in [0,1].
func Linearize(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Delinearize applies the sRGB transfer curve to a linear channel in [0,1].
func Delinearize(c float64) float64 {
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

var (
	rgbToXYZ = mat.NewDense(3, 3, []float64{
		0.4124564, 0.3575610, 0.1804375,
		0.2126729, 0.7151522, 0.0721750,
		0.0193339, 0.1191920, 0.9503041,
	})
	xyzToRGB = mat.NewDense(3, 3, []float64{
		3.2404542, -1.5371385, -0.4985314,
		-0.9692660, 1.8760108, 0.0415560,
		0.0556434, -0.2040259, 1.0572252,
	})
)

func mulVec(m *mat.Dense, a, b, c float64) (float64, float64, float64) {
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(3, []float64{a, b, c}))
	return out.AtVec(0), out.AtVec(1), out.AtVec(2)
}

// linear returns the linearised channels of c scaled to [0,1].
func (c RGBA) linear() (r, g, b float64) {
	return Linearize(c.r / 255), Linearize(c.g / 255), Linearize(c.b / 255)
}

func fromLinear(r, g, b, a float64) RGBA {
	return rgba(Delinearize(r)*255, Delinearize(g)*255, Delinearize(b)*255, a)
}

// ToXYZ applies the sRGB->XYZ matrix to the channels scaled to [0,1].
func (c RGBA) ToXYZ() XYZA {
	x, y, z := mulVec(rgbToXYZ, c.r/255, c.g/255, c.b/255)
	return xyza(x, y, z, c.a)
}

// ToHSL derives hue, saturation and lightness from linear RGB.
func (c RGBA) ToHSL() HSLA {
	r, g, b := c.linear()
	vmax := math.Max(r, math.Max(g, b))
	vmin := math.Min(r, math.Min(g, b))
	l := (vmax + vmin) / 2
	if vmax == vmin {
		return hsla(0, 0, l, c.a)
	}
	d := vmax - vmin
	var s float64
	if l <= 0.5 {
		s = d / (vmax + vmin)
	} else {
		s = d / (2 - vmax - vmin)
	}
	return hsla(weightedHue(r, g, b, vmax, d), s, l, c.a)
}

// weightedHue measures each channel's distance from the maximum in π/3
// steps and combines the other two around the maximum's sector.
func weightedHue(r, g, b, vmax, d float64) float64 {
	del := func(v float64) float64 {
		return ((vmax-v)*math.Pi/3 + d/2) / d
	}
	dr, dg, db := del(r), del(g), del(b)
	var h float64
	switch vmax {
	case r:
		h = db - dg
	case g:
		h = 2*math.Pi/3 + dr - db
	default:
		h = 4*math.Pi/3 + dg - dr
	}
	return normaliseRadians(h)
}

// ToHSV derives hue, saturation and value from linear RGB.
func (c RGBA) ToHSV() HSVA {
	r, g, b := c.linear()
	vmax := math.Max(r, math.Max(g, b))
	vmin := math.Min(r, math.Min(g, b))
	if vmax == vmin {
		return hsva(0, 0, vmax, c.a)
	}
	d := vmax - vmin
	s := 0.0
	if vmax != 0 {
		s = d / vmax
	}
	return hsva(normaliseRadians(sectorHue(r, g, b, vmax, d)*math.Pi/3), s, vmax, c.a)
}

// ToHSI derives hue (degrees), saturation and intensity from the sRGB
// channels without linearising.
func (c RGBA) ToHSI() HSIA {
	r, g, b := c.r/255, c.g/255, c.b/255
	vmax := math.Max(r, math.Max(g, b))
	vmin := math.Min(r, math.Min(g, b))
	i := (r + g + b) / 3
	h := 0.0
	if d := vmax - vmin; d != 0 {
		h = normaliseDegrees(sectorHue(r, g, b, vmax, d) * 60)
	}
	s := 0.0
	if i != 0 {
		s = 1 - vmin/i
	}
	return hsia(h, s, i, c.a)
}

// sectorHue is the conventional six-sector hue in units of 60°.
func sectorHue(r, g, b, vmax, d float64) float64 {
	switch vmax {
	case r:
		return math.Mod((g-b)/d, 6)
	case g:
		return 2 + (b-r)/d
	}
	return 4 + (r-g)/d
}

// sector places chroma c and second component x by the 60° sector of hp,
// a hue in units of 60° within [0,6).
func sector(hp, c, x float64) (r, g, b float64) {
	switch {
	case hp < 1:
		return c, x, 0
	case hp < 2:
		return x, c, 0
	case hp < 3:
		return 0, c, x
	case hp < 4:
		return 0, x, c
	case hp < 5:
		return x, 0, c
	}
	return c, 0, x
}

func hslToRGB(h, s, l, a float64) RGBA {
	hp := normaliseRadians(h) / (math.Pi / 3)
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	m := l - c/2
	r, g, b := sector(hp, c, x)
	return fromLinear(r+m, g+m, b+m, a)
}

func hsvToRGB(h, s, v, a float64) RGBA {
	hp := normaliseRadians(h) / (math.Pi / 3)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	m := v - c
	r, g, b := sector(hp, c, x)
	return fromLinear(r+m, g+m, b+m, a)
}

func hsiToRGB(h, s, i, a float64) RGBA {
	hp := normaliseDegrees(h) / 60
	z := 1 - math.Abs(math.Mod(hp, 2)-1)
	c := 3 * i * s / (1 + z)
	r, g, b := sector(hp, c, c*z)
	m := i * (1 - s)
	return rgba((r+m)*255, (g+m)*255, (b+m)*255, a)
}

func normaliseRadians(h float64) float64 {
	h = math.Mod(h, 2*math.Pi)
	if h < 0 {
		h += 2 * math.Pi
	}
	if h >= 2*math.Pi {
		h = 0
	}
	return h
}

func normaliseDegrees(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}
