package server

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/ironsheep/colour-tools-mcp/internal/colour"
	"github.com/ironsheep/colour-tools-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "colour_parse", "image_recolour").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) (resp *MCPResponse) {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	// Panics become tool errors.
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("tool panicked", "tool", params.Name, "panic", r)
			resp = s.errorResponse(req.ID, -32000, "Tool execution failed", fmt.Sprintf("internal error: %v", r))
		}
	}()

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Info("tool failed", "tool", params.Name, "err", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}
	s.logger.Debug("tool succeeded", "tool", params.Name)

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Parses colour strings strictly, so bad input is reported rather than
//     silently read as black
//  3. Applies default values for optional parameters
//  4. Calls the colour engine or the imaging package
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Colour Values
	case "colour_parse":
		return s.handleColourParse(args)
	case "colour_convert":
		return s.handleColourConvert(args)

	// Photometry
	case "colour_contrast":
		return s.handleColourContrast(args)
	case "colour_distance":
		return s.handleColourDistance(args)

	// Blending
	case "colour_blend":
		return s.handleColourBlend(args)
	case "colour_adjust":
		return s.handleColourAdjust(args)

	// Harmony
	case "colour_harmony":
		return s.handleColourHarmony(args)
	case "colour_wheel":
		return s.handleColourWheel(args)
	case "colour_swatch":
		return s.handleColourSwatch(args)

	// Images
	case "image_load":
		return s.handleImageLoad(args)
	case "image_sample_colour":
		return s.handleImageSampleColour(args)
	case "image_sample_colours_multi":
		return s.handleImageSampleColoursMulti(args)
	case "image_dominant_colours":
		return s.handleImageDominantColours(args)
	case "image_recolour":
		return s.handleImageRecolour(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

func unmarshalArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func parseColourArg(field, s string) (colour.Colour, error) {
	if s == "" {
		return nil, fmt.Errorf("%s is required", field)
	}
	c, err := colour.ParseStrict(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return c, nil
}

func radiansOr(deg *float64, def float64) float64 {
	if deg == nil {
		return def
	}
	return *deg * math.Pi / 180
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

// === Colour Value Handlers ===

type colourArgs struct {
	Colour string `json:"colour"`
}

// ColourDescription is the result of colour_parse.
type ColourDescription struct {
	Input     string `json:"input"`
	Kind      string `json:"kind"`
	Canonical string `json:"canonical"`
	XYZ       string `json:"xyz"`
	HSI       string `json:"hsi"`
	// Exact is the keyword whose packed value matches exactly, if any.
	Exact string `json:"exact_name,omitempty"`
	imaging.ColourSummary
}

func (s *Server) handleColourParse(args json.RawMessage) (interface{}, error) {
	var a colourArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := parseColourArg("colour", a.Colour)
	if err != nil {
		return nil, err
	}
	rgb := c.ToRGB()
	desc := &ColourDescription{
		Input:         a.Colour,
		Kind:          colour.KindOf(c).String(),
		Canonical:     c.String(),
		XYZ:           rgb.ToXYZ().String(),
		HSI:           rgb.ToHSI().String(),
		ColourSummary: imaging.Summarise(c),
	}
	if name, ok := colour.NameOf(rgb.ToPacked()); ok {
		desc.Exact = name
	}
	return desc, nil
}

type colourConvertArgs struct {
	Colour string `json:"colour"`
	To     string `json:"to"`
}

// ConvertResult is the result of colour_convert.
type ConvertResult struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Colour string `json:"colour"`
}

func (s *Server) handleColourConvert(args json.RawMessage) (interface{}, error) {
	var a colourConvertArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := parseColourArg("colour", a.Colour)
	if err != nil {
		return nil, err
	}
	kind, err := colour.ParseKind(a.To)
	if err != nil {
		return nil, err
	}
	return &ConvertResult{
		From:   colour.KindOf(c).String(),
		To:     kind.String(),
		Colour: colour.Convert(c, kind).String(),
	}, nil
}

// === Photometry Handlers ===

type colourContrastArgs struct {
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

// ContrastResult is the result of colour_contrast. The pass flags use the
// WCAG 2 thresholds: 4.5 and 3 for AA, 7 and 4.5 for AAA.
type ContrastResult struct {
	Ratio               float64 `json:"ratio"`
	ForegroundLuminance float64 `json:"foreground_luminance"`
	BackgroundLuminance float64 `json:"background_luminance"`
	AA                  bool    `json:"aa"`
	AALarge             bool    `json:"aa_large"`
	AAA                 bool    `json:"aaa"`
	AAALarge            bool    `json:"aaa_large"`
}

func (s *Server) handleColourContrast(args json.RawMessage) (interface{}, error) {
	var a colourContrastArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	fg, err := parseColourArg("foreground", a.Foreground)
	if err != nil {
		return nil, err
	}
	bg, err := parseColourArg("background", a.Background)
	if err != nil {
		return nil, err
	}
	ratio := colour.ContrastRatio(fg, bg)
	return &ContrastResult{
		Ratio:               ratio,
		ForegroundLuminance: colour.Luminance(fg),
		BackgroundLuminance: colour.Luminance(bg),
		AA:                  ratio >= 4.5,
		AALarge:             ratio >= 3,
		AAA:                 ratio >= 7,
		AAALarge:            ratio >= 4.5,
	}, nil
}

type colourPairArgs struct {
	Colour1 string `json:"colour1"`
	Colour2 string `json:"colour2"`
}

// DistanceResult is the result of colour_distance.
type DistanceResult struct {
	DeltaE   float64 `json:"delta_e"`
	Closest1 string  `json:"closest1"`
	Closest2 string  `json:"closest2"`
}

func (s *Server) handleColourDistance(args json.RawMessage) (interface{}, error) {
	var a colourPairArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	c1, err := parseColourArg("colour1", a.Colour1)
	if err != nil {
		return nil, err
	}
	c2, err := parseColourArg("colour2", a.Colour2)
	if err != nil {
		return nil, err
	}
	n1, _ := colour.ClosestName(c1)
	n2, _ := colour.ClosestName(c2)
	return &DistanceResult{
		DeltaE:   colour.Distance(c1, c2),
		Closest1: n1.Name(),
		Closest2: n2.Name(),
	}, nil
}

// === Blending Handlers ===

type colourBlendArgs struct {
	Colour1 string   `json:"colour1"`
	Colour2 string   `json:"colour2"`
	Scale   *float64 `json:"scale"`
	Alpha   *float64 `json:"alpha"`
}

// ColourResult is a single derived colour.
type ColourResult struct {
	Colour string `json:"colour"`
	Hex    string `json:"hex"`
}

func newColourResult(c colour.Colour) *ColourResult {
	return &ColourResult{
		Colour: c.String(),
		Hex:    c.ToRGB().ToPacked().String(),
	}
}

func (s *Server) handleColourBlend(args json.RawMessage) (interface{}, error) {
	var a colourBlendArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	c1, err := parseColourArg("colour1", a.Colour1)
	if err != nil {
		return nil, err
	}
	c2, err := parseColourArg("colour2", a.Colour2)
	if err != nil {
		return nil, err
	}
	alpha := floatOr(a.Alpha, 1)
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return nil, fmt.Errorf("alpha must be in [0, 1], got %v", alpha)
	}
	return newColourResult(colour.Blend(c1, c2, floatOr(a.Scale, colour.DefaultBlendScale), alpha)), nil
}

type colourAdjustArgs struct {
	Colour    string   `json:"colour"`
	Operation string   `json:"operation"`
	Scale     *float64 `json:"scale"`
}

func (s *Server) handleColourAdjust(args json.RawMessage) (interface{}, error) {
	var a colourAdjustArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := parseColourArg("colour", a.Colour)
	if err != nil {
		return nil, err
	}

	var out colour.RGBA
	switch a.Operation {
	case "shade":
		out = colour.Shade(c, floatOr(a.Scale, colour.DefaultShadeScale))
	case "tint":
		out = colour.Tint(c, floatOr(a.Scale, colour.DefaultTintScale))
	case "tone":
		out = colour.Tone(c, floatOr(a.Scale, colour.DefaultToneScale))
	case "grayscale":
		out = colour.Grayscale(c)
	case "gamma":
		out = colour.Gamma(c)
	case "degamma":
		out = colour.Degamma(c)
	case "invert":
		out = colour.Invert(c)
	default:
		return nil, fmt.Errorf("unknown operation: %q (valid: %v)", a.Operation, adjustOperations)
	}
	return newColourResult(out), nil
}

// === Harmony Handlers ===

type colourHarmonyArgs struct {
	Colour string    `json:"colour"`
	Scheme string    `json:"scheme"`
	Model  string    `json:"model"`
	Angle  *float64  `json:"angle"`
	Count  *int      `json:"count"`
	Alphas []float64 `json:"alphas"`
}

// HarmonyResult is the result of colour_harmony.
type HarmonyResult struct {
	Scheme  string   `json:"scheme"`
	Model   string   `json:"model"`
	Colours []string `json:"colours"`
	Hex     []string `json:"hex"`
}

const defaultAnalogousAngle = math.Pi / 6

// Limits on client-supplied palette sizes.
const (
	maxHarmonyCount = 360
	minWheelStepDeg = 0.1
)

func (s *Server) handleColourHarmony(args json.RawMessage) (interface{}, error) {
	var a colourHarmonyArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := parseColourArg("colour", a.Colour)
	if err != nil {
		return nil, err
	}
	if a.Model == "" {
		a.Model = "hsl"
	}

	rgb := c.ToRGB()
	var out []colour.Colour
	switch a.Model {
	case "hsl":
		out, err = harmonyScheme(rgb.ToHSL(), a)
	case "hsv":
		out, err = harmonyScheme(rgb.ToHSV(), a)
	case "hsi":
		out, err = harmonyScheme(rgb.ToHSI(), a)
	default:
		return nil, fmt.Errorf("unknown model: %q (valid: hsl, hsv, hsi)", a.Model)
	}
	if err != nil {
		return nil, err
	}

	res := &HarmonyResult{Scheme: a.Scheme, Model: a.Model}
	for _, h := range out {
		res.Colours = append(res.Colours, h.String())
		res.Hex = append(res.Hex, h.ToRGB().ToPacked().String())
	}
	return res, nil
}

func harmonyScheme[T colour.HSLA | colour.HSVA | colour.HSIA](c T, a colourHarmonyArgs) ([]colour.Colour, error) {
	if a.Count != nil && *a.Count > maxHarmonyCount {
		return nil, fmt.Errorf("count %d exceeds the maximum of %d", *a.Count, maxHarmonyCount)
	}
	count := func(def int) int {
		if a.Count == nil {
			return def
		}
		return *a.Count
	}

	var (
		out []T
		err error
	)
	switch a.Scheme {
	case "complement":
		out = colour.Complement(c)
	case "triadic":
		out = colour.Triadic(c)
	case "split_complement":
		out = colour.SplitComplement(c, radiansOr(a.Angle, colour.DefaultSplitAngle))
	case "double_complementary":
		out = colour.DoubleComplementary(c, radiansOr(a.Angle, colour.DefaultSplitAngle))
	case "tetradic":
		out = colour.Tetradic(c)
	case "two_tone":
		out = colour.TwoTone(c, radiansOr(a.Angle, colour.DefaultSplitAngle))
	case "off_complementary":
		out = colour.OffComplementary(c, radiansOr(a.Angle, colour.DefaultOffComplementAngle))
	case "analogous":
		out, err = colour.Analogous(c, radiansOr(a.Angle, defaultAnalogousAngle), count(1))
	case "ncolour":
		out, err = colour.NColour(c, count(3), a.Alphas, radiansOr(a.Angle, 0))
	case "colours":
		out, err = colour.Colours(c, count(3), a.Alphas, radiansOr(a.Angle, colour.DefaultColoursStep))
	default:
		return nil, fmt.Errorf("unknown scheme: %q (valid: %v)", a.Scheme, harmonySchemes)
	}
	if err != nil {
		return nil, err
	}

	colours := make([]colour.Colour, 0, len(out))
	for _, v := range out {
		colours = append(colours, any(v).(colour.Colour))
	}
	return colours, nil
}

type colourWheelArgs struct {
	Step   *float64 `json:"step"`
	Render bool     `json:"render"`
}

// WheelResult is the result of colour_wheel.
type WheelResult struct {
	Step    float64              `json:"step"`
	Colours []string             `json:"colours"`
	Image   *imaging.ImageResult `json:"image,omitempty"`
}

func (s *Server) handleColourWheel(args json.RawMessage) (interface{}, error) {
	var a colourWheelArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Step != nil && *a.Step < minWheelStepDeg {
		return nil, fmt.Errorf("step %v is below the minimum of %v degrees", *a.Step, minWheelStepDeg)
	}
	step := radiansOr(a.Step, colour.DefaultWheelStep)
	w, err := colour.NewWheel(step)
	if err != nil {
		return nil, err
	}

	res := &WheelResult{Step: floatOr(a.Step, 7.5)}
	for c := range w.All() {
		res.Colours = append(res.Colours, c.String())
	}
	if a.Render {
		img, err := imaging.RenderWheel(step, s.swatchCell)
		if err != nil {
			return nil, err
		}
		res.Image = img
	}
	return res, nil
}

type colourSwatchArgs struct {
	Colours  []string `json:"colours"`
	CellSize int      `json:"cell_size"`
}

func (s *Server) handleColourSwatch(args json.RawMessage) (interface{}, error) {
	var a colourSwatchArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.CellSize == 0 {
		a.CellSize = s.swatchCell
	}
	colours := make([]colour.Colour, 0, len(a.Colours))
	for i, str := range a.Colours {
		c, err := parseColourArg(fmt.Sprintf("colours[%d]", i), str)
		if err != nil {
			return nil, err
		}
		colours = append(colours, c)
	}
	return imaging.RenderSwatch(colours, a.CellSize)
}

// === Image Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

type imageSampleColourArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

func (s *Server) handleImageSampleColour(args json.RawMessage) (interface{}, error) {
	var a imageSampleColourArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.SampleColour(img, a.X, a.Y)
}

type imageSampleColoursMultiArgs struct {
	Path   string `json:"path"`
	Points []struct {
		X     int    `json:"x"`
		Y     int    `json:"y"`
		Label string `json:"label"`
	} `json:"points"`
}

func (s *Server) handleImageSampleColoursMulti(args json.RawMessage) (interface{}, error) {
	var a imageSampleColoursMultiArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	points := make([]imaging.LabeledPoint, len(a.Points))
	for i, p := range a.Points {
		points[i] = imaging.LabeledPoint{X: p.X, Y: p.Y, Label: p.Label}
	}
	return imaging.SampleColoursMulti(img, points)
}

type regionArgs struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

type imageDominantColoursArgs struct {
	Path   string      `json:"path"`
	Count  int         `json:"count"`
	Region *regionArgs `json:"region"`
}

func (s *Server) handleImageDominantColours(args json.RawMessage) (interface{}, error) {
	var a imageDominantColoursArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Count == 0 {
		a.Count = 5
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	var region *imaging.Region
	if a.Region != nil {
		region = &imaging.Region{X1: a.Region.X1, Y1: a.Region.Y1, X2: a.Region.X2, Y2: a.Region.Y2}
	}
	return imaging.DominantColours(img, a.Count, region)
}

type imageRecolourArgs struct {
	Path      string   `json:"path"`
	Operation string   `json:"operation"`
	Scale     *float64 `json:"scale"`
	Target    string   `json:"target"`
}

func (s *Server) handleImageRecolour(args json.RawMessage) (interface{}, error) {
	var a imageRecolourArgs
	if err := unmarshalArgs(args, &a); err != nil {
		return nil, err
	}

	opts := imaging.RecolourOptions{Op: a.Operation}
	switch a.Operation {
	case "shade":
		opts.Scale = floatOr(a.Scale, colour.DefaultShadeScale)
	case "tint":
		opts.Scale = floatOr(a.Scale, colour.DefaultTintScale)
	case "tone":
		opts.Scale = floatOr(a.Scale, colour.DefaultToneScale)
	case "colourise", "colorize":
		target, err := parseColourArg("target", a.Target)
		if err != nil {
			return nil, err
		}
		opts.Target = target
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Recolour(img, opts)
}
