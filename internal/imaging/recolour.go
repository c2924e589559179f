package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/adjust"

	"github.com/ironsheep/colour-tools-mcp/internal/colour"
)

// RecolourOps lists the per-pixel operations accepted by Recolour.
var RecolourOps = []string{"grayscale", "invert", "gamma", "degamma", "shade", "tint", "tone", "colourise"}

// RecolourOptions selects a per-pixel colour operation.
//
// Scale is used by shade, tint and tone; Target is the destination colour
// for colourise.
type RecolourOptions struct {
	Op     string
	Scale  float64
	Target colour.Colour
}

// Recolour applies an engine operation to every pixel of img and returns
// the result as a base64 PNG. Each pixel keeps its original alpha.
func Recolour(img image.Image, opts RecolourOptions) (*ImageResult, error) {
	fn, err := pixelFunc(opts)
	if err != nil {
		return nil, err
	}

	out := adjust.Apply(img, func(px color.RGBA) color.RGBA {
		src := colour.FromColor(px)
		res, err := fn(src).WithAlpha(src.Alpha())
		if err != nil {
			return px
		}
		return color.RGBAModel.Convert(res.NRGBA()).(color.RGBA)
	})
	return encodePNG(out, nil)
}

func pixelFunc(opts RecolourOptions) (func(colour.RGBA) colour.RGBA, error) {
	switch opts.Op {
	case "grayscale":
		return func(c colour.RGBA) colour.RGBA { return colour.Grayscale(c) }, nil
	case "invert":
		return func(c colour.RGBA) colour.RGBA { return colour.Invert(c) }, nil
	case "gamma":
		return func(c colour.RGBA) colour.RGBA { return colour.Gamma(c) }, nil
	case "degamma":
		return func(c colour.RGBA) colour.RGBA { return colour.Degamma(c) }, nil
	case "shade":
		return func(c colour.RGBA) colour.RGBA { return colour.Shade(c, opts.Scale) }, nil
	case "tint":
		return func(c colour.RGBA) colour.RGBA { return colour.Tint(c, opts.Scale) }, nil
	case "tone":
		return func(c colour.RGBA) colour.RGBA { return colour.Tone(c, opts.Scale) }, nil
	case "colourise", "colorize":
		if opts.Target == nil {
			return nil, fmt.Errorf("colourise needs a target colour")
		}
		return func(c colour.RGBA) colour.RGBA { return colour.Colourise(c, opts.Target) }, nil
	}
	return nil, fmt.Errorf("unknown recolour operation: %s", opts.Op)
}
