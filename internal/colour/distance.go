package colour

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

func toColorful(c Colour) colorful.Color {
	rgb := c.ToRGB()
	return colorful.Color{
		R: clamp(rgb.r/255, 0, 1),
		G: clamp(rgb.g/255, 0, 1),
		B: clamp(rgb.b/255, 0, 1),
	}
}

// Distance returns the CIEDE2000 colour difference between a and b, scaled
// so that black and white are about 1 apart. Alpha is ignored and negative
// channels count as 0.
func Distance(a, b Colour) float64 {
	return toColorful(a).DistanceCIEDE2000(toColorful(b))
}

// ClosestName returns the keyword perceptually nearest to c. Unlike
// RGBA.ToNamed, which only matches exact table values, it never falls back
// to black.
func ClosestName(c Colour) (Named, float64) {
	target := toColorful(c)
	best, bestDist := "black", math.Inf(1)
	for _, name := range sortedNames {
		p := namedTable[name]
		cand := colorful.Color{
			R: float64(p.Red()) / 255,
			G: float64(p.Green()) / 255,
			B: float64(p.Blue()) / 255,
		}
		if d := target.DistanceCIEDE2000(cand); d < bestDist {
			best, bestDist = name, d
		}
	}
	return Named{name: best}, bestDist
}
