package colour

import (
	"fmt"
	"math"
)

// Raw is an untyped hue-bearing colour: [hue in degrees, saturation,
// lightness|value|intensity, alpha].
type Raw [4]float64

// Hued is the set of representations that carry a hue and can be rotated.
type Hued interface {
	HSLA | HSVA | HSIA | Raw
}

// Angles used by the palette generators, in radians.
const (
	DefaultSplitAngle         = math.Pi / 4
	DefaultOffComplementAngle = 2 * math.Pi / 3
	DefaultColoursStep        = math.Pi / 24
	DefaultWheelStep          = 2 * math.Pi / 48
	maxAnalogousAngle         = 2 * math.Pi / 3
	fullTurn                  = 2 * math.Pi
)

// MaxPaletteSize bounds the number of colours a generator or wheel produces.
const MaxPaletteSize = 1 << 16

// Harmonise rotates the hue of c by the sum of deltas (radians) and returns
// a value of the same representation.
func Harmonise[T Hued](c T, deltas ...float64) T {
	var sum float64
	for _, d := range deltas {
		sum += d
	}
	var out any
	switch v := any(c).(type) {
	case HSLA:
		out = hsla(normaliseRadians(v.h+sum), v.s, v.l, v.a)
	case HSVA:
		out = hsva(normaliseRadians(v.h+sum), v.s, v.v, v.a)
	case HSIA:
		out = hsia(normaliseDegrees(v.h+degrees(sum)), v.s, v.i, v.a)
	case Raw:
		v[0] = normaliseDegrees(v[0] + degrees(sum))
		out = v
	}
	return out.(T)
}

// HueOf returns the hue of c in degrees.
func HueOf[T Hued](c T) float64 {
	switch v := any(c).(type) {
	case HSLA:
		return v.Hue()
	case HSVA:
		return v.Hue()
	case HSIA:
		return v.Hue()
	case Raw:
		return v[0]
	}
	return 0
}

func withAlpha[T Hued](c T, a float64) T {
	a = clamp(a, 0, 1)
	var out any
	switch v := any(c).(type) {
	case HSLA:
		v.a = a
		out = v
	case HSVA:
		v.a = a
		out = v
	case HSIA:
		v.a = a
		out = v
	case Raw:
		v[3] = a
		out = v
	}
	return out.(T)
}

// Complement returns c and the colour opposite it on the wheel.
func Complement[T Hued](c T) []T {
	return []T{c, Harmonise(c, math.Pi)}
}

// Triadic returns c and the two colours a third of a turn away.
func Triadic[T Hued](c T) []T {
	return []T{c, Harmonise(c, 2*math.Pi/3), Harmonise(c, 4*math.Pi/3)}
}

// SplitComplement returns c and the two neighbours of its complement,
// angle either side. angle is clamped to [0, π/2].
func SplitComplement[T Hued](c T, angle float64) []T {
	angle = clamp(angle, 0, math.Pi/2)
	return []T{c, Harmonise(c, math.Pi-angle), Harmonise(c, math.Pi+angle)}
}

// DoubleComplementary returns two complementary pairs separated by angle,
// clamped to [-π/2, π/2].
func DoubleComplementary[T Hued](c T, angle float64) []T {
	angle = clamp(angle, -math.Pi/2, math.Pi/2)
	return []T{c, Harmonise(c, angle), Harmonise(c, math.Pi), Harmonise(c, math.Pi+angle)}
}

// Tetradic is DoubleComplementary with a quarter-turn separation.
func Tetradic[T Hued](c T) []T {
	return DoubleComplementary(c, math.Pi/2)
}

// TwoTone returns c and c rotated by angle, clamped to [-π/2, π/2].
func TwoTone[T Hued](c T, angle float64) []T {
	angle = clamp(angle, -math.Pi/2, math.Pi/2)
	return []T{c, Harmonise(c, angle)}
}

// OffComplementary returns c and c rotated by angle. A non-negative angle is
// clamped to [π/2, π], a negative one to [-π, -π/2].
func OffComplementary[T Hued](c T, angle float64) []T {
	if angle >= 0 {
		angle = clamp(angle, math.Pi/2, math.Pi)
	} else {
		angle = clamp(angle, -math.Pi, -math.Pi/2)
	}
	return []T{c, Harmonise(c, angle)}
}

// Analogous returns 2n+1 colours ordered by hue offset: -angle, -angle/2,
// ..., -angle/n, c, angle/n, ..., angle/2, angle. angle is capped at 2π/3.
func Analogous[T Hued](c T, angle float64, n int) ([]T, error) {
	if n < 1 || n > (MaxPaletteSize-1)/2 {
		return nil, fmt.Errorf("analogous colour count %d: %w", n, ErrRange)
	}
	angle = math.Min(angle, maxAnalogousAngle)
	out := make([]T, 0, 2*n+1)
	for i := 1; i <= n; i++ {
		out = append(out, Harmonise(c, -angle/float64(i)))
	}
	out = append(out, c)
	for i := 1; i <= n; i++ {
		out = append(out, Harmonise(c, angle/float64(n+1-i)))
	}
	return out, nil
}

// NColour returns n colours where colour i is c rotated by offset plus
// (i-1)·2π/max(i,1). A non-empty alphas must have length n and replaces each
// output's alpha in order.
func NColour[T Hued](c T, n int, alphas []float64, offset float64) ([]T, error) {
	if err := checkPalette(n, alphas); err != nil {
		return nil, err
	}
	out := make([]T, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, Harmonise(c, offset, float64(i-1)*fullTurn/math.Max(float64(i), 1)))
	}
	return applyAlphas(out, alphas), nil
}

// Colours returns n colours stepping by angle from c; the first output is
// already one step away.
func Colours[T Hued](c T, n int, alphas []float64, angle float64) ([]T, error) {
	if err := checkPalette(n, alphas); err != nil {
		return nil, err
	}
	out := make([]T, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, Harmonise(c, angle*float64(i)))
	}
	return applyAlphas(out, alphas), nil
}

func checkPalette(n int, alphas []float64) error {
	if n < 0 || n > MaxPaletteSize {
		return fmt.Errorf("colour count %d: %w", n, ErrRange)
	}
	if len(alphas) > 0 && len(alphas) != n {
		return fmt.Errorf("got %d alphas for %d colours: %w", len(alphas), n, ErrRange)
	}
	if err := checkFinite("alpha", alphas...); err != nil {
		return err
	}
	return nil
}

func applyAlphas[T Hued](cs []T, alphas []float64) []T {
	for i, a := range alphas {
		cs[i] = withAlpha(cs[i], a)
	}
	return cs
}
