package colour

import (
	"fmt"
	"iter"
	"math"
)

// Wheel yields fully saturated HSLA colours around the hue circle starting
// at pure red. It is single-pass: once drained it stays drained.
type Wheel struct {
	step  float64
	total int
	pos   int
}

// NewWheel returns a wheel of round(2π/step) colours. step must be positive
// and the wheel no longer than MaxPaletteSize.
func NewWheel(step float64) (*Wheel, error) {
	if !(step > 0) {
		return nil, fmt.Errorf("wheel step %v: %w", step, ErrRange)
	}
	total := math.Round(fullTurn / step)
	if math.IsInf(total, 0) || total > MaxPaletteSize {
		return nil, fmt.Errorf("wheel step %v gives too many colours: %w", step, ErrRange)
	}
	return &Wheel{step: step, total: int(total)}, nil
}

// Len returns the total number of colours the wheel produces.
func (w *Wheel) Len() int { return w.total }

// Remaining returns how many colours are left.
func (w *Wheel) Remaining() int { return w.total - w.pos }

// Next returns the next colour, or false once the wheel is exhausted.
func (w *Wheel) Next() (HSLA, bool) {
	if w.pos >= w.total {
		return HSLA{}, false
	}
	c := hsla(normaliseRadians(float64(w.pos)*w.step), 1, 0.5, 1)
	w.pos++
	return c, true
}

// All ranges over the colours not yet consumed.
func (w *Wheel) All() iter.Seq[HSLA] {
	return func(yield func(HSLA) bool) {
		for {
			c, ok := w.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}
