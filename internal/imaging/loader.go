package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"
)

// ImageCache keeps decoded images keyed by path so repeated colour queries
// against the same file skip the disk.
//
// ImageCache is safe for concurrent use.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates an empty cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load returns the cached image for path, decoding it on first use.
// PNG, JPEG and GIF are supported.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Evict drops a single path from the cache.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Clear drops every cached image.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// ImageInfo describes a loaded image and its overall colour.
type ImageInfo struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Format     string `json:"format"`
	ColorModel string `json:"color_model"` // "rgba", "rgba64", "gray", "ycbcr", "paletted", ...
	HasAlpha   bool   `json:"has_alpha"`

	// Average is the mean colour of all pixels, blended in linear RGB.
	Average ColourSummary `json:"average"`
}

// LoadImageInfo loads path through the cache and reports its dimensions,
// colour model and average colour.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()
	_, format, err := image.DecodeConfig(f)
	if err != nil {
		format = "unknown"
	}

	model, hasAlpha := describeModel(img)
	bounds := img.Bounds()
	return &ImageInfo{
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
		Format:     format,
		ColorModel: model,
		HasAlpha:   hasAlpha,
		Average:    Summarise(AverageColour(img)),
	}, nil
}

func describeModel(img image.Image) (string, bool) {
	switch img.(type) {
	case *image.RGBA, *image.NRGBA:
		return "rgba", true
	case *image.RGBA64, *image.NRGBA64:
		return "rgba64", true
	case *image.Gray:
		return "gray", false
	case *image.Gray16:
		return "gray16", false
	case *image.YCbCr:
		return "ycbcr", false
	case *image.Paletted:
		return "paletted", true
	case *image.CMYK:
		return "cmyk", false
	}
	return "unknown", false
}
