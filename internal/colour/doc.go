// Package colour implements a colour-model engine: value types for several
// colour spaces, conversions between them, a small stylesheet-compatible
// parser and formatter, and photometric, blending and harmony operations.
//
// # Colour Spaces
//
// Seven representations are provided, all implementing [Colour]:
//   - RGBA: red, green, blue in [-255,255] and alpha in [0,1]
//   - XYZA: CIE 1931 tristimulus values in [0,1]
//   - HSLA: hue (radians internally), saturation and lightness in [-1,1]
//   - HSVA: hue (radians internally), saturation and value in [-1,1]
//   - HSIA: hue in degrees [0,360], saturation and intensity in [0,1]
//   - Packed: a 32-bit 0xRRGGBBAA integer
//   - Named: a CSS keyword such as "rebeccapurple"
//
// RGBA is the pivot space: every other representation converts to and from
// RGBA, and HSL/HSV are derived from linearised RGB.
//
// # Immutability
//
// Values are immutable. Constructors and With* methods clamp numeric input
// into range and return a new value; they only fail for NaN input or unknown
// keyword names.
//
// # Text Format
//
// The accepted grammar is:
//
//	#rgb  #rrggbb  #rrggbbaa
//	rgb(r, g, b)   rgba(r, g, b, a)
//	hsl(h, s, l)   hsla(h, s, l, a)
//	<keyword>
//
// [Parse] never fails and falls back to black; [ParseStrict] reports
// [ErrUnparseable] instead.
//
// # Thread Safety
//
// All functions are pure. The only shared state is the read-only keyword
// table. A [Wheel] carries an iteration position and must not be shared
// between goroutines.
package colour
