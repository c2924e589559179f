package colour

import (
	"fmt"
	"math"
)

// Colour is the capability set shared by every colour representation.
type Colour interface {
	// Alpha returns the opacity in [0,1].
	Alpha() float64

	// ToRGB converts the colour to the RGBA pivot space.
	ToRGB() RGBA

	// String renders the colour in its canonical text form.
	String() string

	// Compare orders two colours by their packed 0xRRGGBBAA value.
	Compare(other Colour) (int, error)

	// Equal reports whether Compare returns 0. Comparison errors yield false.
	Equal(other Colour) bool
}

// Kind identifies a colour representation.
type Kind int

const (
	KindRGBA Kind = iota
	KindXYZA
	KindHSLA
	KindHSVA
	KindHSIA
	KindPacked
	KindNamed
)

var kindNames = map[Kind]string{
	KindRGBA:   "rgba",
	KindXYZA:   "xyza",
	KindHSLA:   "hsla",
	KindHSVA:   "hsva",
	KindHSIA:   "hsia",
	KindPacked: "packed",
	KindNamed:  "named",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a kind name ("rgba", "hsl", "hex", ...) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "rgb", "rgba":
		return KindRGBA, nil
	case "xyz", "xyza", "ciexyz", "ciexyza":
		return KindXYZA, nil
	case "hsl", "hsla":
		return KindHSLA, nil
	case "hsv", "hsva":
		return KindHSVA, nil
	case "hsi", "hsia":
		return KindHSIA, nil
	case "hex", "int", "integer", "packed":
		return KindPacked, nil
	case "name", "named", "keyword":
		return KindNamed, nil
	}
	return 0, fmt.Errorf("unknown colour kind %q: %w", s, ErrInvalidArgument)
}

// KindOf returns the representation of c.
func KindOf(c Colour) Kind {
	switch c.(type) {
	case XYZA:
		return KindXYZA
	case HSLA:
		return KindHSLA
	case HSVA:
		return KindHSVA
	case HSIA:
		return KindHSIA
	case Packed:
		return KindPacked
	case Named:
		return KindNamed
	}
	return KindRGBA
}

// Convert routes c through RGBA into the requested representation.
func Convert(c Colour, kind Kind) Colour {
	rgb := c.ToRGB()
	switch kind {
	case KindXYZA:
		return rgb.ToXYZ()
	case KindHSLA:
		return rgb.ToHSL()
	case KindHSVA:
		return rgb.ToHSV()
	case KindHSIA:
		return rgb.ToHSI()
	case KindPacked:
		return rgb.ToPacked()
	case KindNamed:
		return rgb.ToNamed()
	}
	return rgb
}

// WithAlpha returns a copy of c with its alpha replaced. Named colours have
// a fixed alpha and return ErrImmutableAlpha.
func WithAlpha(c Colour, a float64) (Colour, error) {
	switch v := c.(type) {
	case RGBA:
		return v.WithAlpha(a)
	case XYZA:
		return v.WithAlpha(a)
	case HSLA:
		return v.WithAlpha(a)
	case HSVA:
		return v.WithAlpha(a)
	case HSIA:
		return v.WithAlpha(a)
	case Packed:
		return v.WithAlpha(a)
	case Named:
		return nil, fmt.Errorf("%s: %w", v.name, ErrImmutableAlpha)
	case nil:
		return nil, fmt.Errorf("nil colour: %w", ErrInvalidArgument)
	}
	return nil, fmt.Errorf("unsupported colour %T: %w", c, ErrInvalidArgument)
}

// Compare orders a and b by the unsigned value of their packed RGBA form.
func Compare(a, b Colour) (int, error) {
	if a == nil || b == nil {
		return 0, ErrInvalidComparison
	}
	pa, pb := a.ToRGB().ToPacked(), b.ToRGB().ToPacked()
	switch {
	case pa < pb:
		return -1, nil
	case pa > pb:
		return 1, nil
	}
	return 0, nil
}

// Equal reports whether a and b pack to the same 32-bit value.
func Equal(a, b Colour) bool {
	n, err := Compare(a, b)
	if err != nil {
		return false
	}
	return n == 0
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// checkFinite rejects NaN, the only value a float64 field can hold that is
// not a number.
func checkFinite(field string, vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) {
			return fmt.Errorf("%s is not a number: %w", field, ErrInvalidArgument)
		}
	}
	return nil
}
