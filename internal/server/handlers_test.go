package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ironsheep/colour-tools-mcp/internal/colour"
	"github.com/ironsheep/colour-tools-mcp/internal/imaging"
)

// createTestImageFile writes a solid-colour PNG into a temp dir and returns its path
func createTestImageFile(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "handler-test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

// callTool runs a tools/call request and decodes the text content into out.
// It returns the JSON-RPC error, if any.
func callTool(t *testing.T, s *Server, name string, args map[string]interface{}, out interface{}) *MCPError {
	t.Helper()

	params := map[string]interface{}{
		"name":      name,
		"arguments": args,
	}
	paramsJSON, _ := json.Marshal(params)

	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  paramsJSON,
	})
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		return resp.Error
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) != 1 {
		t.Fatalf("content: got %v, want one entry", result["content"])
	}
	if content[0]["type"] != "text" {
		t.Errorf("content type: got %v, want text", content[0]["type"])
	}
	if out != nil {
		text, _ := content[0]["text"].(string)
		if err := json.Unmarshal([]byte(text), out); err != nil {
			t.Fatalf("failed to decode tool result %q: %v", text, err)
		}
	}
	return nil
}

func mustCallTool(t *testing.T, s *Server, name string, args map[string]interface{}, out interface{}) {
	t.Helper()
	if err := callTool(t, s, name, args, out); err != nil {
		t.Fatalf("%s: unexpected error: %s (%v)", name, err.Message, err.Data)
	}
}

func decodeImage(t *testing.T, r *imaging.ImageResult) image.Image {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(r.ImageBase64)
	if err != nil {
		t.Fatalf("invalid base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("invalid PNG: %v", err)
	}
	return img
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New()
	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  json.RawMessage(`"not an object"`),
	})

	if resp.Error == nil {
		t.Fatal("Expected error for invalid params")
	}
	if resp.Error.Code != -32602 {
		t.Errorf("Error code: got %d, want -32602", resp.Error.Code)
	}
}

func TestHandleToolsCall_UnknownTool(t *testing.T) {
	s := New()
	err := callTool(t, s, "nonexistent_tool", map[string]interface{}{}, nil)
	if err == nil {
		t.Fatal("Expected error for unknown tool")
	}
	if err.Code != -32000 {
		t.Errorf("Error code: got %d, want -32000", err.Code)
	}
	if !strings.Contains(err.Data.(string), "unknown tool") {
		t.Errorf("Error data: got %v", err.Data)
	}
}

func TestHandleToolsCall_ColourParse(t *testing.T) {
	s := New()

	var got ColourDescription
	mustCallTool(t, s, "colour_parse", map[string]interface{}{"colour": "#ff0000"}, &got)

	if got.Kind != "packed" {
		t.Errorf("Kind: got %s, want packed", got.Kind)
	}
	if got.Canonical != "#ff0000ff" {
		t.Errorf("Canonical: got %s, want #ff0000ff", got.Canonical)
	}
	if got.Exact != "red" {
		t.Errorf("Exact: got %s, want red", got.Exact)
	}
	if got.RGB != "rgb(255, 0, 0)" {
		t.Errorf("RGB: got %s, want rgb(255, 0, 0)", got.RGB)
	}
	if got.Name != "red" || got.NameDistance != 0 {
		t.Errorf("closest name: got %s (%v), want red (0)", got.Name, got.NameDistance)
	}
	if !strings.HasPrefix(got.XYZ, "ciexyza(") || !strings.HasPrefix(got.HSI, "hsia(") {
		t.Errorf("XYZ/HSI: got %s / %s", got.XYZ, got.HSI)
	}
}

func TestHandleToolsCall_ColourParse_NoExactName(t *testing.T) {
	s := New()

	var got ColourDescription
	mustCallTool(t, s, "colour_parse", map[string]interface{}{"colour": "rgb(250, 10, 10)"}, &got)

	if got.Exact != "" {
		t.Errorf("Exact: got %s, want empty", got.Exact)
	}
	if got.Name != "red" {
		t.Errorf("Name: got %s, want red", got.Name)
	}
	if got.Kind != "rgba" {
		t.Errorf("Kind: got %s, want rgba", got.Kind)
	}
}

func TestHandleToolsCall_ColourParse_Errors(t *testing.T) {
	s := New()
	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{"missing colour", map[string]interface{}{}},
		{"unknown keyword", map[string]interface{}{"colour": "notacolour"}},
		{"bad hex", map[string]interface{}{"colour": "#12345"}},
		{"wrong arity", map[string]interface{}{"colour": "rgb(1, 2)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := callTool(t, s, "colour_parse", tt.args, nil)
			if err == nil {
				t.Fatal("Expected error")
			}
			if err.Code != -32000 {
				t.Errorf("Error code: got %d, want -32000", err.Code)
			}
		})
	}
}

func TestHandleToolsCall_ColourConvert(t *testing.T) {
	s := New()
	tests := []struct {
		colour string
		to     string
		want   ConvertResult
	}{
		{"red", "hex", ConvertResult{From: "named", To: "packed", Colour: "#ff0000ff"}},
		{"rgb(0, 0, 255)", "name", ConvertResult{From: "rgba", To: "named", Colour: "blue"}},
		{"#00ff00", "rgb", ConvertResult{From: "packed", To: "rgba", Colour: "rgb(0, 255, 0)"}},
		{"rgb(1, 2, 3)", "name", ConvertResult{From: "rgba", To: "named", Colour: "black"}},
	}

	for _, tt := range tests {
		t.Run(tt.colour+"->"+tt.to, func(t *testing.T) {
			var got ConvertResult
			mustCallTool(t, s, "colour_convert", map[string]interface{}{"colour": tt.colour, "to": tt.to}, &got)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if err := callTool(t, s, "colour_convert", map[string]interface{}{"colour": "red", "to": "cmyk"}, nil); err == nil {
		t.Error("Expected error for unknown target kind")
	}
}

func TestHandleToolsCall_ColourContrast(t *testing.T) {
	s := New()

	var got ContrastResult
	mustCallTool(t, s, "colour_contrast", map[string]interface{}{
		"foreground": "black",
		"background": "white",
	}, &got)
	if math.Abs(got.Ratio-21) > 1e-9 {
		t.Errorf("Ratio: got %v, want 21", got.Ratio)
	}
	if !got.AA || !got.AALarge || !got.AAA || !got.AAALarge {
		t.Errorf("black on white should pass every level: %+v", got)
	}

	mustCallTool(t, s, "colour_contrast", map[string]interface{}{
		"foreground": "#777777",
		"background": "#777777",
	}, &got)
	if got.Ratio != 1 {
		t.Errorf("Ratio: got %v, want 1", got.Ratio)
	}
	if got.AA || got.AALarge || got.AAA || got.AAALarge {
		t.Errorf("identical colours should fail every level: %+v", got)
	}
}

func TestHandleToolsCall_ColourDistance(t *testing.T) {
	s := New()

	var got DistanceResult
	mustCallTool(t, s, "colour_distance", map[string]interface{}{"colour1": "red", "colour2": "#ff0000"}, &got)
	if got.DeltaE > 1e-9 {
		t.Errorf("DeltaE: got %v, want 0", got.DeltaE)
	}

	mustCallTool(t, s, "colour_distance", map[string]interface{}{"colour1": "black", "colour2": "white"}, &got)
	if got.DeltaE < 0.5 {
		t.Errorf("DeltaE black/white: got %v, want a large difference", got.DeltaE)
	}
	if got.Closest1 != "black" || got.Closest2 != "white" {
		t.Errorf("closest: got %s/%s, want black/white", got.Closest1, got.Closest2)
	}
}

func TestHandleToolsCall_ColourBlend(t *testing.T) {
	s := New()
	tests := []struct {
		name    string
		args    map[string]interface{}
		wantHex string
	}{
		{"default midpoint", map[string]interface{}{"colour1": "black", "colour2": "white"}, "#bcbcbcff"},
		{"scale zero", map[string]interface{}{"colour1": "black", "colour2": "white", "scale": 0}, "#000000ff"},
		{"scale one", map[string]interface{}{"colour1": "black", "colour2": "white", "scale": 1}, "#ffffffff"},
		{"alpha zero", map[string]interface{}{"colour1": "black", "colour2": "white", "scale": 0, "alpha": 0}, "#00000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got ColourResult
			mustCallTool(t, s, "colour_blend", tt.args, &got)
			if got.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", got.Hex, tt.wantHex)
			}
		})
	}

	err := callTool(t, s, "colour_blend", map[string]interface{}{"colour1": "black", "colour2": "white", "alpha": 2}, nil)
	if err == nil {
		t.Error("Expected error for alpha out of range")
	}
}

func TestHandleToolsCall_ColourAdjust(t *testing.T) {
	s := New()
	tests := []struct {
		colour    string
		operation string
		scale     *float64
		wantHex   string
	}{
		{"black", "invert", nil, "#ffffffff"},
		{"red", "tint", nil, "#ffffffff"},
		{"red", "shade", ptr(1.0), "#000000ff"},
		{"white", "grayscale", nil, "#ffffffff"},
		{"red", "tone", ptr(0.0), "#ff0000ff"},
	}

	for _, tt := range tests {
		t.Run(tt.operation+" "+tt.colour, func(t *testing.T) {
			args := map[string]interface{}{"colour": tt.colour, "operation": tt.operation}
			if tt.scale != nil {
				args["scale"] = *tt.scale
			}
			var got ColourResult
			mustCallTool(t, s, "colour_adjust", args, &got)
			if got.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", got.Hex, tt.wantHex)
			}
		})
	}

	if err := callTool(t, s, "colour_adjust", map[string]interface{}{"colour": "red", "operation": "sharpen"}, nil); err == nil {
		t.Error("Expected error for unknown operation")
	}
}

func TestHandleToolsCall_ColourAdjust_DefaultShade(t *testing.T) {
	s := New()

	var got ColourResult
	mustCallTool(t, s, "colour_adjust", map[string]interface{}{"colour": "white", "operation": "shade"}, &got)

	want := colour.Shade(colour.MustNamed("white"), colour.DefaultShadeScale).ToPacked().String()
	if got.Hex != want {
		t.Errorf("Hex: got %s, want %s", got.Hex, want)
	}
}

func TestHandleToolsCall_ColourHarmony(t *testing.T) {
	s := New()
	tests := []struct {
		name      string
		args      map[string]interface{}
		wantCount int
	}{
		{"complement", map[string]interface{}{"colour": "red", "scheme": "complement"}, 2},
		{"triadic hsv", map[string]interface{}{"colour": "red", "scheme": "triadic", "model": "hsv"}, 3},
		{"tetradic hsi", map[string]interface{}{"colour": "red", "scheme": "tetradic", "model": "hsi"}, 4},
		{"split complement", map[string]interface{}{"colour": "red", "scheme": "split_complement", "angle": 30}, 3},
		{"double complementary", map[string]interface{}{"colour": "red", "scheme": "double_complementary"}, 4},
		{"two tone", map[string]interface{}{"colour": "red", "scheme": "two_tone"}, 2},
		{"off complementary", map[string]interface{}{"colour": "red", "scheme": "off_complementary"}, 2},
		{"analogous default", map[string]interface{}{"colour": "red", "scheme": "analogous"}, 3},
		{"analogous two per side", map[string]interface{}{"colour": "red", "scheme": "analogous", "count": 2}, 5},
		{"ncolour", map[string]interface{}{"colour": "red", "scheme": "ncolour", "count": 6}, 6},
		{"colours with alphas", map[string]interface{}{"colour": "red", "scheme": "colours", "count": 2, "alphas": []float64{0.5, 1}}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got HarmonyResult
			mustCallTool(t, s, "colour_harmony", tt.args, &got)
			if len(got.Colours) != tt.wantCount || len(got.Hex) != tt.wantCount {
				t.Fatalf("count: got %d colours / %d hex, want %d", len(got.Colours), len(got.Hex), tt.wantCount)
			}
		})
	}
}

func TestHandleToolsCall_ColourHarmony_Complement(t *testing.T) {
	s := New()

	var got HarmonyResult
	mustCallTool(t, s, "colour_harmony", map[string]interface{}{"colour": "red", "scheme": "complement"}, &got)

	want := []string{"#ff0000ff", "#00ffffff"}
	if diff := cmp.Diff(want, got.Hex); diff != "" {
		t.Errorf("Hex mismatch (-want +got):\n%s", diff)
	}
	if got.Model != "hsl" {
		t.Errorf("Model: got %s, want hsl", got.Model)
	}
	if !strings.HasPrefix(got.Colours[0], "hsla(") {
		t.Errorf("Colours[0]: got %s, want hsla notation", got.Colours[0])
	}
}

func TestHandleToolsCall_ColourHarmony_Errors(t *testing.T) {
	s := New()
	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{"unknown scheme", map[string]interface{}{"colour": "red", "scheme": "rainbow"}},
		{"unknown model", map[string]interface{}{"colour": "red", "scheme": "triadic", "model": "lab"}},
		{"analogous zero", map[string]interface{}{"colour": "red", "scheme": "analogous", "count": 0}},
		{"negative count", map[string]interface{}{"colour": "red", "scheme": "ncolour", "count": -1}},
		{"alpha length", map[string]interface{}{"colour": "red", "scheme": "colours", "count": 3, "alphas": []float64{1}}},
		{"huge ncolour count", map[string]interface{}{"colour": "red", "scheme": "ncolour", "count": 100000000000000}},
		{"huge analogous count", map[string]interface{}{"colour": "red", "scheme": "analogous", "count": 100000000000000}},
		{"count over limit", map[string]interface{}{"colour": "red", "scheme": "colours", "count": maxHarmonyCount + 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := callTool(t, s, "colour_harmony", tt.args, nil)
			if err == nil {
				t.Fatal("Expected error")
			}
			if err.Code != -32000 {
				t.Errorf("Code: got %d, want -32000", err.Code)
			}
		})
	}
}

func TestHandleToolsCall_ColourWheel(t *testing.T) {
	s := New(WithSwatchCell(4))

	var got WheelResult
	mustCallTool(t, s, "colour_wheel", map[string]interface{}{}, &got)
	if len(got.Colours) != 48 {
		t.Fatalf("Colours: got %d, want 48", len(got.Colours))
	}
	if got.Colours[0] != "hsla(0deg, 100%, 50%, 1)" {
		t.Errorf("Colours[0]: got %s", got.Colours[0])
	}
	if got.Image != nil {
		t.Error("Image should be omitted unless render is set")
	}

	mustCallTool(t, s, "colour_wheel", map[string]interface{}{"step": 90, "render": true}, &got)
	if len(got.Colours) != 4 {
		t.Fatalf("Colours: got %d, want 4", len(got.Colours))
	}
	if got.Image == nil {
		t.Fatal("Image should be present when render is set")
	}
	if got.Image.Width != 16 || got.Image.Height != 4 {
		t.Errorf("Image size: got %dx%d, want 16x4", got.Image.Width, got.Image.Height)
	}

	for _, step := range []float64{0, 1e-9, 5e-324, minWheelStepDeg / 2} {
		if err := callTool(t, s, "colour_wheel", map[string]interface{}{"step": step}, nil); err == nil {
			t.Errorf("Expected error for step %v", step)
		}
	}
}

func TestHandleToolsCall_ColourSwatch(t *testing.T) {
	s := New()

	var got imaging.ImageResult
	mustCallTool(t, s, "colour_swatch", map[string]interface{}{
		"colours":   []string{"red", "#00ff00"},
		"cell_size": 10,
	}, &got)

	if got.Width != 20 || got.Height != 10 {
		t.Errorf("size: got %dx%d, want 20x10", got.Width, got.Height)
	}
	img := decodeImage(t, &got)
	if c := colour.FromColor(img.At(15, 5)).ToPacked(); c != 0x00ff00ff {
		t.Errorf("second cell: got %s, want #00ff00ff", c)
	}

	// Default cell size comes from the server
	mustCallTool(t, s, "colour_swatch", map[string]interface{}{"colours": []string{"blue"}}, &got)
	if got.Width != imaging.DefaultCellSize {
		t.Errorf("Width: got %d, want %d", got.Width, imaging.DefaultCellSize)
	}

	if err := callTool(t, s, "colour_swatch", map[string]interface{}{"colours": []string{"red", "bogus"}}, nil); err == nil {
		t.Error("Expected error for unparseable colour")
	}
	if err := callTool(t, s, "colour_swatch", map[string]interface{}{"colours": []string{}}, nil); err == nil {
		t.Error("Expected error for empty colour list")
	}
}

func TestHandleToolsCall_ImageLoad(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 100, 80, color.NRGBA{255, 0, 0, 255})

	var got imaging.ImageInfo
	mustCallTool(t, s, "image_load", map[string]interface{}{"path": imgPath}, &got)

	if got.Width != 100 || got.Height != 80 {
		t.Errorf("size: got %dx%d, want 100x80", got.Width, got.Height)
	}
	if got.Format != "png" {
		t.Errorf("Format: got %s, want png", got.Format)
	}
	if got.Average.Hex != "#ff0000ff" {
		t.Errorf("Average: got %s, want #ff0000ff", got.Average.Hex)
	}
}

func TestHandleToolsCall_ImageLoad_NonExistent(t *testing.T) {
	s := New()
	err := callTool(t, s, "image_load", map[string]interface{}{"path": "/nonexistent/image.png"}, nil)
	if err == nil {
		t.Fatal("Expected error for non-existent file")
	}
	if err.Code != -32000 {
		t.Errorf("Error code: got %d, want -32000", err.Code)
	}
}

func TestHandleToolsCall_ImageSampleColour(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 10, 10, color.NRGBA{0, 0, 255, 255})

	var got imaging.ColourSummary
	mustCallTool(t, s, "image_sample_colour", map[string]interface{}{"path": imgPath, "x": 5, "y": 5}, &got)
	if got.Hex != "#0000ffff" || got.Name != "blue" {
		t.Errorf("sample: got %s (%s), want #0000ffff (blue)", got.Hex, got.Name)
	}

	if err := callTool(t, s, "image_sample_colour", map[string]interface{}{"path": imgPath, "x": 10, "y": 0}, nil); err == nil {
		t.Error("Expected error for out-of-bounds sample")
	}
}

func TestHandleToolsCall_ImageSampleColoursMulti(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 10, 10, color.NRGBA{255, 255, 255, 255})

	var got imaging.MultiColourResult
	mustCallTool(t, s, "image_sample_colours_multi", map[string]interface{}{
		"path": imgPath,
		"points": []map[string]interface{}{
			{"x": 0, "y": 0, "label": "corner"},
			{"x": 9, "y": 9},
		},
	}, &got)

	if len(got.Samples) != 2 {
		t.Fatalf("Samples: got %d, want 2", len(got.Samples))
	}
	if got.Samples[0].Label != "corner" {
		t.Errorf("Label: got %s, want corner", got.Samples[0].Label)
	}
	if got.Samples[1].Colour.Name != "white" {
		t.Errorf("Name: got %s, want white", got.Samples[1].Colour.Name)
	}
}

func TestHandleToolsCall_ImageDominantColours(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 20, 20, color.NRGBA{0, 0, 0, 255})

	var got imaging.DominantColoursResult
	mustCallTool(t, s, "image_dominant_colours", map[string]interface{}{"path": imgPath}, &got)
	if len(got.Colours) != 1 {
		t.Fatalf("Colours: got %d, want 1", len(got.Colours))
	}
	if got.Colours[0].Percentage != 100 {
		t.Errorf("Percentage: got %v, want 100", got.Colours[0].Percentage)
	}

	mustCallTool(t, s, "image_dominant_colours", map[string]interface{}{
		"path":   imgPath,
		"count":  3,
		"region": map[string]interface{}{"x1": 0, "y1": 0, "x2": 5, "y2": 5},
	}, &got)
	if len(got.Colours) != 1 {
		t.Errorf("Colours in region: got %d, want 1", len(got.Colours))
	}
}

func TestHandleToolsCall_ImageRecolour(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 6, 6, color.NRGBA{10, 20, 30, 255})

	var got imaging.ImageResult
	mustCallTool(t, s, "image_recolour", map[string]interface{}{"path": imgPath, "operation": "invert"}, &got)

	img := decodeImage(t, &got)
	if c := colour.FromColor(img.At(3, 3)).ToPacked(); c != 0xf5ebe1ff {
		t.Errorf("inverted pixel: got %s, want #f5ebe1ff", c)
	}

	mustCallTool(t, s, "image_recolour", map[string]interface{}{
		"path":      imgPath,
		"operation": "colourise",
		"target":    "white",
	}, &got)
	want := colour.Colourise(colour.MustRGBA(10, 20, 30, 1), colour.MustNamed("white")).ToPacked()
	if c := colour.FromColor(decodeImage(t, &got).At(0, 0)).ToPacked(); c != want {
		t.Errorf("colourised pixel: got %s, want %s", c, want)
	}
}

func TestHandleToolsCall_ImageRecolour_Errors(t *testing.T) {
	s := New()
	imgPath := createTestImageFile(t, 4, 4, color.NRGBA{10, 20, 30, 255})
	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{"unknown operation", map[string]interface{}{"path": imgPath, "operation": "blur"}},
		{"colourise without target", map[string]interface{}{"path": imgPath, "operation": "colourise"}},
		{"bad target", map[string]interface{}{"path": imgPath, "operation": "colourise", "target": "nope"}},
		{"missing file", map[string]interface{}{"path": "/nonexistent.png", "operation": "invert"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := callTool(t, s, "image_recolour", tt.args, nil); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func ptr(v float64) *float64 { return &v }
