package colour

import (
	"image/color"
	"math"
)

// RGBA is an sRGB colour with channels in [-255,255] and alpha in [0,1].
//
// Negative channels are accepted so that intermediate results of blending
// and inversion survive a round trip; they pack as 0.
type RGBA struct {
	r, g, b, a float64
}

// NewRGBA clamps its arguments into range. It fails only for NaN input.
func NewRGBA(r, g, b, a float64) (RGBA, error) {
	if err := checkFinite("red", r); err != nil {
		return RGBA{}, err
	}
	if err := checkFinite("green", g); err != nil {
		return RGBA{}, err
	}
	if err := checkFinite("blue", b); err != nil {
		return RGBA{}, err
	}
	if err := checkFinite("alpha", a); err != nil {
		return RGBA{}, err
	}
	return rgba(r, g, b, a), nil
}

// MustRGBA is like NewRGBA but panics on NaN input.
func MustRGBA(r, g, b, a float64) RGBA {
	c, err := NewRGBA(r, g, b, a)
	if err != nil {
		panic(err)
	}
	return c
}

// FromColor converts a standard library colour, un-premultiplying alpha.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rgba(float64(n.R), float64(n.G), float64(n.B), float64(n.A)/255)
}

func rgba(r, g, b, a float64) RGBA {
	return RGBA{
		r: clamp(r, -255, 255),
		g: clamp(g, -255, 255),
		b: clamp(b, -255, 255),
		a: clamp(a, 0, 1),
	}
}

func (c RGBA) Red() float64   { return c.r }
func (c RGBA) Green() float64 { return c.g }
func (c RGBA) Blue() float64  { return c.b }
func (c RGBA) Alpha() float64 { return c.a }

func (c RGBA) WithRed(v float64) (RGBA, error)   { return NewRGBA(v, c.g, c.b, c.a) }
func (c RGBA) WithGreen(v float64) (RGBA, error) { return NewRGBA(c.r, v, c.b, c.a) }
func (c RGBA) WithBlue(v float64) (RGBA, error)  { return NewRGBA(c.r, c.g, v, c.a) }
func (c RGBA) WithAlpha(v float64) (RGBA, error) { return NewRGBA(c.r, c.g, c.b, v) }

// ToRGB returns c itself.
func (c RGBA) ToRGB() RGBA { return c }

// NRGBA quantises c to a non-premultiplied 8-bit standard library colour.
func (c RGBA) NRGBA() color.NRGBA {
	p := c.ToPacked()
	return color.NRGBA{R: p.Red(), G: p.Green(), B: p.Blue(), A: p.AlphaByte()}
}

// ToPacked packs c as 0xRRGGBBAA. Channels are rounded and clamped to
// [0,255]; alpha is round(a*255).
func (c RGBA) ToPacked() Packed {
	return packBytes(channelByte(c.r), channelByte(c.g), channelByte(c.b), channelByte(c.a*255))
}

// ToNamed returns the keyword whose value matches c exactly, or black.
func (c RGBA) ToNamed() Named {
	if name, ok := NameOf(c.ToPacked()); ok {
		return Named{name: name}
	}
	return Named{name: "black"}
}

func (c RGBA) String() string {
	if c.a == 1 {
		return "rgb(" + formatNumber(c.r, 2) + ", " + formatNumber(c.g, 2) + ", " + formatNumber(c.b, 2) + ")"
	}
	return "rgba(" + formatNumber(c.r, 2) + ", " + formatNumber(c.g, 2) + ", " + formatNumber(c.b, 2) + ", " + formatNumber(c.a, 3) + ")"
}

func (c RGBA) Compare(other Colour) (int, error) { return Compare(c, other) }
func (c RGBA) Equal(other Colour) bool           { return Equal(c, other) }

func channelByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(clamp(math.Round(v), 0, 255))
}
