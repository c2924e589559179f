package imaging

import (
	"fmt"
	"image"
	"sort"

	"github.com/ironsheep/colour-tools-mcp/internal/colour"
)

// ColourSummary reports one colour in the engine's text formats.
//
// Hex carries alpha ("#rrggbbaa"); Name is the perceptually closest CSS
// keyword and NameDistance its CIEDE2000 distance (0 for an exact match).
type ColourSummary struct {
	Hex          string  `json:"hex"`
	RGB          string  `json:"rgb"`
	HSL          string  `json:"hsl"`
	HSV          string  `json:"hsv"`
	Name         string  `json:"name"`
	NameDistance float64 `json:"name_distance"`
	Luminance    float64 `json:"luminance"`
}

// Summarise renders c in every format reported by the image tools.
func Summarise(c colour.Colour) ColourSummary {
	rgb := c.ToRGB()
	name, dist := colour.ClosestName(rgb)
	return ColourSummary{
		Hex:          rgb.ToPacked().String(),
		RGB:          rgb.String(),
		HSL:          rgb.ToHSL().String(),
		HSV:          rgb.ToHSV().String(),
		Name:         name.String(),
		NameDistance: dist,
		Luminance:    colour.Luminance(rgb),
	}
}

// SampleColour returns the colour of the pixel at (x, y), 0-based from the
// top-left corner.
func SampleColour(img image.Image, x, y int) (*ColourSummary, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}
	s := Summarise(colour.FromColor(img.At(x, y)))
	return &s, nil
}

// LabeledPoint is a pixel coordinate with an optional label.
type LabeledPoint struct {
	X     int
	Y     int
	Label string
}

// LabeledColourResult is one sample from SampleColoursMulti.
type LabeledColourResult struct {
	Label  string        `json:"label,omitempty"`
	X      int           `json:"x"`
	Y      int           `json:"y"`
	Colour ColourSummary `json:"colour"`
}

// MultiColourResult holds samples in input order.
type MultiColourResult struct {
	Samples []LabeledColourResult `json:"samples"`
}

// SampleColoursMulti samples every point. It fails without partial results
// if any point is out of bounds.
func SampleColoursMulti(img image.Image, points []LabeledPoint) (*MultiColourResult, error) {
	results := make([]LabeledColourResult, 0, len(points))

	for _, p := range points {
		c, err := SampleColour(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColourResult{
			Label:  p.Label,
			X:      p.X,
			Y:      p.Y,
			Colour: *c,
		})
	}

	return &MultiColourResult{Samples: results}, nil
}

// Region is a rectangle with an inclusive top-left and exclusive
// bottom-right corner.
type Region struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

// ColourFrequency is a quantised colour and the share of pixels it covers.
type ColourFrequency struct {
	Colour     ColourSummary `json:"colour"`
	Percentage float64       `json:"percentage"`
}

// DominantColoursResult lists colours by descending frequency.
type DominantColoursResult struct {
	Colours []ColourFrequency `json:"colours"`
}

// DominantColours returns the count most common colours of img, or of region
// when it is non-nil.
//
// Channels are quantised to multiples of 16 before counting, so colours
// within 16 units of each other per channel group together. Alpha is
// ignored. Ties are broken by packed value to keep the output stable.
func DominantColours(img image.Image, count int, region *Region) (*DominantColoursResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}
	bounds := img.Bounds()
	if region != nil {
		if region.X1 >= region.X2 || region.Y1 >= region.Y2 {
			return nil, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
		}
		bounds = image.Rect(region.X1, region.Y1, region.X2, region.Y2).Intersect(bounds)
	}

	counts := make(map[colour.Packed]int)
	total := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			q := colour.Packed(((r>>8)/16*16)<<24 | ((g>>8)/16*16)<<16 | ((b>>8)/16*16)<<8 | 0xff)
			counts[q]++
			total++
		}
	}
	if total == 0 {
		return &DominantColoursResult{Colours: []ColourFrequency{}}, nil
	}

	keys := make([]colour.Packed, 0, len(counts))
	for p := range counts {
		keys = append(keys, p)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > count {
		keys = keys[:count]
	}

	colours := make([]ColourFrequency, 0, len(keys))
	for _, p := range keys {
		colours = append(colours, ColourFrequency{
			Colour:     Summarise(p),
			Percentage: float64(counts[p]) / float64(total) * 100,
		})
	}
	return &DominantColoursResult{Colours: colours}, nil
}

// AverageColour blends every pixel of img in linear RGB with equal weight.
// An empty image averages to transparent black.
func AverageColour(img image.Image) colour.RGBA {
	bounds := img.Bounds()
	n := bounds.Dx() * bounds.Dy()
	if n <= 0 {
		return colour.MustRGBA(0, 0, 0, 0)
	}

	var sr, sg, sb, sa float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := colour.FromColor(img.At(x, y))
			sr += colour.Linearize(c.Red() / 255)
			sg += colour.Linearize(c.Green() / 255)
			sb += colour.Linearize(c.Blue() / 255)
			sa += c.Alpha()
		}
	}
	fn := float64(n)
	return colour.MustRGBA(
		colour.Delinearize(sr/fn)*255,
		colour.Delinearize(sg/fn)*255,
		colour.Delinearize(sb/fn)*255,
		sa/fn,
	)
}
