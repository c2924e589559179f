package server

import "github.com/ironsheep/colour-tools-mcp/internal/imaging"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

const colourNotation = "A colour in any supported notation: #rgb, #rrggbb, #rrggbbaa, rgb(), rgba(), hsl(), hsla() or a CSS keyword"

var adjustOperations = []string{"shade", "tint", "tone", "grayscale", "gamma", "degamma", "invert"}

var harmonySchemes = []string{
	"complement", "triadic", "split_complement", "double_complementary", "tetradic",
	"two_tone", "off_complementary", "analogous", "ncolour", "colours",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Colour Values
		{
			Name:        "colour_parse",
			Description: "Parse a colour string and describe it in every representation: packed hex, rgb, CIE XYZ, HSL, HSV, HSI, exact keyword and nearest keyword.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colour": map[string]interface{}{
						"type":        "string",
						"description": colourNotation,
					},
				},
				"required": []string{"colour"},
			},
		},
		{
			Name:        "colour_convert",
			Description: "Convert a colour to another representation and return its canonical string form.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colour": map[string]interface{}{
						"type":        "string",
						"description": colourNotation,
					},
					"to": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"rgb", "xyz", "hsl", "hsv", "hsi", "hex", "name"},
						"description": "Target representation",
					},
				},
				"required": []string{"colour", "to"},
			},
		},

		// Photometry
		{
			Name:        "colour_contrast",
			Description: "Compute the relative luminance of two colours and their contrast ratio (1 to 21), with WCAG 2 pass/fail for normal and large text.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"foreground": map[string]interface{}{
						"type":        "string",
						"description": colourNotation,
					},
					"background": map[string]interface{}{
						"type":        "string",
						"description": colourNotation,
					},
				},
				"required": []string{"foreground", "background"},
			},
		},
		{
			Name:        "colour_distance",
			Description: "Perceptual CIEDE2000 difference between two colours, plus the nearest CSS keyword of each.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colour1": map[string]interface{}{
						"type":        "string",
						"description": colourNotation,
					},
					"colour2": map[string]interface{}{
						"type":        "string",
						"description": colourNotation,
					},
				},
				"required": []string{"colour1", "colour2"},
			},
		},

		// Blending
		{
			Name:        "colour_blend",
			Description: "Blend two colours in linear RGB. scale 0 returns the first colour, 1 the second.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colour1": map[string]interface{}{
						"type":        "string",
						"description": colourNotation,
					},
					"colour2": map[string]interface{}{
						"type":        "string",
						"description": colourNotation,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Blend factor. Default 0.5",
						"default":     0.5,
					},
					"alpha": map[string]interface{}{
						"type":        "number",
						"description": "Alpha of the result (0-1). Default 1",
						"default":     1.0,
					},
				},
				"required": []string{"colour1", "colour2"},
			},
		},
		{
			Name:        "colour_adjust",
			Description: "Apply a single-colour operation: shade (towards black), tint (towards white), tone (towards gray), grayscale, gamma, degamma or invert.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colour": map[string]interface{}{
						"type":        "string",
						"description": colourNotation,
					},
					"operation": map[string]interface{}{
						"type":        "string",
						"enum":        adjustOperations,
						"description": "Operation to apply",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Blend factor for shade/tint/tone. Defaults: shade 0.2, tint 1, tone 1",
					},
				},
				"required": []string{"colour", "operation"},
			},
		},

		// Harmony
		{
			Name:        "colour_harmony",
			Description: "Generate a colour scheme by rotating hue. Angles are in degrees. The result keeps the chosen hue model (hsl, hsv or hsi).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colour": map[string]interface{}{
						"type":        "string",
						"description": colourNotation,
					},
					"scheme": map[string]interface{}{
						"type":        "string",
						"enum":        harmonySchemes,
						"description": "Scheme to generate",
					},
					"model": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"hsl", "hsv", "hsi"},
						"description": "Hue model to rotate in. Default hsl",
						"default":     "hsl",
					},
					"angle": map[string]interface{}{
						"type":        "number",
						"description": "Scheme angle in degrees (split_complement, double_complementary, two_tone, off_complementary, analogous, colours) or the start offset for ncolour",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colours for analogous (per side), ncolour and colours",
					},
					"alphas": map[string]interface{}{
						"type":        "array",
						"description": "Optional alphas for ncolour/colours; must have count entries",
						"items": map[string]interface{}{
							"type": "number",
						},
					},
				},
				"required": []string{"colour", "scheme"},
			},
		},
		{
			Name:        "colour_wheel",
			Description: "List the colours of a full hue wheel at saturation 1 and lightness 0.5, optionally rendered as a PNG swatch.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"step": map[string]interface{}{
						"type":        "number",
						"description": "Hue step in degrees. Default 7.5",
						"default":     7.5,
					},
					"render": map[string]interface{}{
						"type":        "boolean",
						"description": "Also return the wheel as a base64 PNG",
						"default":     false,
					},
				},
			},
		},
		{
			Name:        "colour_swatch",
			Description: "Render a list of colours as a PNG swatch strip (twelve cells per row) and return it as base64.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"colours": map[string]interface{}{
						"type":        "array",
						"description": "Colours to render, in order",
						"items": map[string]interface{}{
							"type": "string",
						},
					},
					"cell_size": map[string]interface{}{
						"type":        "integer",
						"description": "Cell edge in pixels (1-512). Defaults to the server setting",
					},
				},
				"required": []string{"colours"},
			},
		},

		// Images
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, colour model and average colour.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_colour",
			Description: "Get the colour of a single pixel, described in every representation.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based)",
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "image_sample_colours_multi",
			Description: "Sample several labelled pixels in one call.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"points": map[string]interface{}{
						"type":        "array",
						"description": "Points to sample",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x":     map[string]interface{}{"type": "integer"},
								"y":     map[string]interface{}{"type": "integer"},
								"label": map[string]interface{}{"type": "string"},
							},
							"required": []string{"x", "y"},
						},
					},
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "image_dominant_colours",
			Description: "Find the most frequent colours of an image or a region of it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"count": map[string]interface{}{
						"type":        "integer",
						"description": "Number of colours to return. Default 5",
						"default":     5,
					},
					"region": map[string]interface{}{
						"type":        "object",
						"description": "Optional region {x1, y1, x2, y2}; x2 and y2 are exclusive",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_recolour",
			Description: "Apply a colour operation to every pixel of an image and return the result as base64 PNG. Pixel alpha is preserved.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"operation": map[string]interface{}{
						"type":        "string",
						"enum":        imaging.RecolourOps,
						"description": "Per-pixel operation",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Blend factor for shade/tint/tone. Defaults: shade 0.2, tint 1, tone 1",
					},
					"target": map[string]interface{}{
						"type":        "string",
						"description": "Destination colour for colourise",
					},
				},
				"required": []string{"path", "operation"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
