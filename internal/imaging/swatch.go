package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/colour-tools-mcp/internal/colour"
)

// DefaultCellSize is the edge length of one swatch cell in pixels.
const DefaultCellSize = 32

// swatchColumns is the number of cells per row before wrapping.
const swatchColumns = 12

// maxCellSize bounds the rendered image for a single cell.
const maxCellSize = 512

// ImageResult is a rendered PNG.
type ImageResult struct {
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	ImageBase64 string   `json:"image_base64"`
	MimeType    string   `json:"mime_type"`
	Colours     []string `json:"colours,omitempty"`
}

// RenderSwatch lays the colours out as square cells, twelve per row, and
// returns the strip as a base64 PNG. Translucent colours are composited over
// a light/dark checkerboard so their alpha stays visible.
func RenderSwatch(colours []colour.Colour, cellSize int) (*ImageResult, error) {
	if len(colours) == 0 {
		return nil, fmt.Errorf("no colours to render")
	}
	if cellSize <= 0 || cellSize > maxCellSize {
		return nil, fmt.Errorf("cell size must be in 1..%d, got %d", maxCellSize, cellSize)
	}

	cols := len(colours)
	if cols > swatchColumns {
		cols = swatchColumns
	}
	rows := (len(colours) + swatchColumns - 1) / swatchColumns

	dst := checkerboard(cols*cellSize, rows*cellSize, cellSize/4+1)
	names := make([]string, 0, len(colours))
	for i, c := range colours {
		cell := imaging.New(cellSize, cellSize, c.ToRGB().NRGBA())
		pos := image.Pt((i%swatchColumns)*cellSize, (i/swatchColumns)*cellSize)
		dst = imaging.Overlay(dst, cell, pos, 1.0)
		names = append(names, c.String())
	}

	return encodePNG(dst, names)
}

// RenderWheel renders every colour of a hue wheel with the given step in
// radians.
func RenderWheel(step float64, cellSize int) (*ImageResult, error) {
	w, err := colour.NewWheel(step)
	if err != nil {
		return nil, err
	}
	colours := make([]colour.Colour, 0, w.Len())
	for c := range w.All() {
		colours = append(colours, c)
	}
	return RenderSwatch(colours, cellSize)
}

func checkerboard(width, height, square int) *image.NRGBA {
	light := color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	dark := color.NRGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff}
	img := imaging.New(width, height, light)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x/square+y/square)%2 == 1 {
				img.SetNRGBA(x, y, dark)
			}
		}
	}
	return img
}

func encodePNG(img image.Image, names []string) (*ImageResult, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	b := img.Bounds()
	return &ImageResult{
		Width:       b.Dx(),
		Height:      b.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		Colours:     names,
	}, nil
}
