package colour

import (
	"fmt"
	"strings"
)

// Named is a CSS colour keyword. Its alpha is always 1.
type Named struct {
	name string
}

// NewNamed validates name against the keyword table. Matching is
// case-insensitive and the stored name is lower-case.
func NewNamed(name string) (Named, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Named{}, fmt.Errorf("empty colour name: %w", ErrInvalidArgument)
	}
	if _, ok := namedTable[name]; !ok {
		return Named{}, fmt.Errorf("%q: %w", name, ErrInvalidName)
	}
	return Named{name: name}, nil
}

// MustNamed is like NewNamed but panics on an unknown name.
func MustNamed(name string) Named {
	n, err := NewNamed(name)
	if err != nil {
		panic(err)
	}
	return n
}

// Name returns the keyword. The zero Named reports "black".
func (n Named) Name() string {
	if n.name == "" {
		return "black"
	}
	return n.name
}

func (n Named) Alpha() float64 { return 1 }

// ToPacked returns the table value for the keyword.
func (n Named) ToPacked() Packed {
	return namedTable[n.Name()]
}

func (n Named) ToRGB() RGBA { return n.ToPacked().ToRGB() }

func (n Named) String() string { return n.Name() }

func (n Named) Compare(other Colour) (int, error) { return Compare(n, other) }
func (n Named) Equal(other Colour) bool           { return Equal(n, other) }
