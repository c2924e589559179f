// Package imaging connects the colour engine to raster images.
//
// It samples pixel colours and reports them in the engine's text formats,
// finds dominant and average colours, renders palettes and hue wheels as PNG
// swatches, and applies engine operations (grayscale, invert, gamma, shade,
// tint, tone, colourise) to every pixel of an image.
//
// # Coordinate System
//
// Pixel coordinates are 0-based from the top-left corner. Regions include
// their top-left corner and exclude their bottom-right corner.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The other functions are stateless.
// Recolour runs its per-pixel function on several goroutines; the engine's
// operations are pure, so this needs no locking.
//
// # Output
//
// Rendered images are returned base64-encoded as PNG together with their
// dimensions, matching the shape MCP clients expect for image content.
package imaging
