package colour

import (
	"sort"
	"strings"

	"golang.org/x/image/colornames"
)

// namedTable maps lower-case keywords to packed 0xRRGGBBAA values.
var namedTable map[string]Packed

// namedReverse maps packed values back to the first keyword, in sorted order,
// that carries them.
var namedReverse map[Packed]string

var sortedNames []string

func init() {
	namedTable = make(map[string]Packed, len(colornames.Map)+1)
	for name, c := range colornames.Map {
		namedTable[name] = packBytes(c.R, c.G, c.B, 0xff)
	}
	// CSS Color Level 4 addition, absent from the SVG 1.1 set.
	namedTable["rebeccapurple"] = packBytes(0x66, 0x33, 0x99, 0xff)

	sortedNames = make([]string, 0, len(namedTable))
	for name := range namedTable {
		sortedNames = append(sortedNames, name)
	}
	sort.Strings(sortedNames)

	namedReverse = make(map[Packed]string, len(namedTable))
	for _, name := range sortedNames {
		p := namedTable[name]
		if _, ok := namedReverse[p]; !ok {
			namedReverse[p] = name
		}
	}
}

// LookupName returns the packed value of a keyword. Matching is
// case-insensitive.
func LookupName(name string) (Packed, bool) {
	p, ok := namedTable[strings.ToLower(name)]
	return p, ok
}

// NameOf returns the keyword whose packed value is exactly p. Where several
// keywords share a value (aqua/cyan, gray/grey) the alphabetically first is
// returned.
func NameOf(p Packed) (string, bool) {
	name, ok := namedReverse[p]
	return name, ok
}

// Names returns all known keywords in sorted order.
func Names() []string {
	out := make([]string, len(sortedNames))
	copy(out, sortedNames)
	return out
}

func packBytes(r, g, b, a uint8) Packed {
	return Packed(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}
