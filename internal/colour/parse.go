package colour

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a colour from text. Input outside the grammar, including
// unknown keywords, yields the keyword black.
func Parse(s string) Colour {
	c, err := ParseStrict(s)
	if err != nil {
		return Named{name: "black"}
	}
	return c
}

// ParseStrict is like Parse but returns ErrUnparseable or ErrInvalidName
// instead of falling back to black.
func ParseStrict(s string) (Colour, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty input: %w", ErrUnparseable)
	}

	if s[0] == '#' {
		return parseHex(s[1:])
	}

	if open := strings.IndexByte(s, '('); open > 0 && strings.HasSuffix(s, ")") {
		fn := strings.ToLower(strings.TrimSpace(s[:open]))
		args := strings.Split(s[open+1:len(s)-1], ",")
		return parseFunctional(fn, args)
	}

	if isAlpha(s) {
		return NewNamed(s)
	}
	return nil, fmt.Errorf("%q: %w", s, ErrUnparseable)
}

func parseHex(digits string) (Colour, error) {
	switch len(digits) {
	case 3:
		var b strings.Builder
		for i := 0; i < 3; i++ {
			b.WriteByte(digits[i])
			b.WriteByte(digits[i])
		}
		digits = b.String() + "ff"
	case 6:
		digits += "ff"
	case 8:
	default:
		return nil, fmt.Errorf("hex colour must have 3, 6 or 8 digits, got %d: %w", len(digits), ErrUnparseable)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("bad hex digits %q: %w", digits, ErrUnparseable)
	}
	return Packed(v), nil
}

func parseFunctional(fn string, args []string) (Colour, error) {
	want := map[string]int{"rgb": 3, "rgba": 4, "hsl": 3, "hsla": 4}[fn]
	if want == 0 {
		return nil, fmt.Errorf("unknown function %q: %w", fn, ErrUnparseable)
	}
	if len(args) != want {
		return nil, fmt.Errorf("%s() takes %d components, got %d: %w", fn, want, len(args), ErrUnparseable)
	}

	isRGB := strings.HasPrefix(fn, "rgb")
	vals := make([]float64, 4)
	vals[3] = 1
	for i, arg := range args {
		percent := 0.01
		if isRGB && i < 3 {
			percent = 2.55
		}
		v, err := parseComponent(arg, percent, !isRGB && i == 0)
		if err != nil {
			return nil, fmt.Errorf("%s() component %d: %w", fn, i+1, err)
		}
		vals[i] = v
	}

	if isRGB {
		return NewRGBA(vals[0], vals[1], vals[2], vals[3])
	}
	return NewHSLA(vals[0], vals[1], vals[2], vals[3])
}

// parseComponent reads a number. A trailing % multiplies by percent; a hue
// may carry a trailing "deg".
func parseComponent(s string, percent float64, hue bool) (float64, error) {
	s = strings.TrimSpace(s)
	scale := 1.0
	switch {
	case strings.HasSuffix(s, "%"):
		s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
		scale = percent
	case hue && strings.HasSuffix(strings.ToLower(s), "deg"):
		s = strings.TrimSpace(s[:len(s)-3])
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", s, ErrUnparseable)
	}
	return v * scale, nil
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i] | 0x20
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}
