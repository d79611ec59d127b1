// Package palette derives color palettes from the hue circle. It implements
// evenly spaced rainbow palettes with shimmer effects.
package palette

import (
	"image/color"
	"math/rand"

	"github.com/irfansharif/rainbow/internal/hsv"
)

// Palette holds a sequence of RGBA colors.
type Palette []color.RGBA

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func toRGBA(c hsv.HSVA) color.RGBA {
	n := c.RGBA().NRGBA()
	return color.RGBA{R: n.R, G: n.G, B: n.B, A: 255}
}

// Rainbow returns n opaque colors with hues evenly spaced around the circle,
// starting at red.
func Rainbow(n int, saturation, value float64) Palette {
	if n <= 0 {
		return nil
	}
	p := make(Palette, n)
	step := 360.0 / float64(n)
	for i := range p {
		p[i] = toRGBA(hsv.NewOpaque(float64(i)*step, saturation, value))
	}
	return p
}

// Shimmered applies a value jitter of up to ±amount/2 to every color.
func Shimmered(p Palette, amount float64, r *rand.Rand) Palette {
	if amount <= 0 {
		return p
	}

	out := make(Palette, len(p))
	for i, c := range p {
		// Convert RGBA to HSV.
		hc := hsv.FromRGBA(hsv.FromColor(c))

		// Apply value jitter.
		hc.Value = clamp(hc.Value+(r.Float64()-0.5)*amount, 0, 1)

		// Convert back to RGBA.
		out[i] = toRGBA(hc)
	}
	return out
}
