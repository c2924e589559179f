package colour

import (
	"fmt"
	"math"
)

// Packed is a colour stored as a 32-bit 0xRRGGBBAA integer.
type Packed uint32

// NewPacked clamps v to [0, 0xFFFFFFFF] and floors it.
func NewPacked(v float64) (Packed, error) {
	if err := checkFinite("value", v); err != nil {
		return 0, err
	}
	return Packed(math.Floor(clamp(v, 0, math.MaxUint32))), nil
}

func (p Packed) Red() uint8       { return uint8(p >> 24 & 0xff) }
func (p Packed) Green() uint8     { return uint8(p >> 16 & 0xff) }
func (p Packed) Blue() uint8      { return uint8(p >> 8 & 0xff) }
func (p Packed) AlphaByte() uint8 { return uint8(p & 0xff) }

// Alpha returns the low byte scaled to [0,1].
func (p Packed) Alpha() float64 { return float64(p&0xff) / 255 }

// WithAlpha replaces the low byte with round(a*255).
func (p Packed) WithAlpha(a float64) (Packed, error) {
	if err := checkFinite("alpha", a); err != nil {
		return 0, err
	}
	return p&^0xff | Packed(channelByte(clamp(a, 0, 1)*255)), nil
}

func (p Packed) ToRGB() RGBA {
	return rgba(float64(p.Red()), float64(p.Green()), float64(p.Blue()), p.Alpha())
}

// String renders p as #rrggbbaa.
func (p Packed) String() string {
	return fmt.Sprintf("#%08x", uint32(p))
}

func (p Packed) Compare(other Colour) (int, error) { return Compare(p, other) }
func (p Packed) Equal(other Colour) bool           { return Equal(p, other) }
